package coze

import (
	"context"
	"encoding/json"

	"github.com/gogf/gf/v2/frame/g"
)

// ListDatasetsQuery 知识库列表查询参数
type ListDatasetsQuery struct {
	Name       string
	FormatType *int
	PageNum    int
	PageSize   int
}

// CreateDatasetParams 创建知识库参数
type CreateDatasetParams struct {
	Name        string
	Description string
	FormatType  int // 0-文本 2-图片，创建后不可修改
	Icon        string
}

// UpdateDatasetParams 修改知识库参数，nil 字段不出现在上游报文里。
// format_type 创建后不可变，因此这里没有对应字段。
type UpdateDatasetParams struct {
	Name        *string
	Description *string
	Icon        *string
}

// ListDatasets 获取知识库列表，space_id 由客户端注入
func (c *Client) ListDatasets(ctx context.Context, q ListDatasetsQuery) (json.RawMessage, error) {
	if q.PageNum <= 0 {
		q.PageNum = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = 20
	}

	params := g.Map{
		"space_id":  c.spaceID,
		"page_num":  q.PageNum,
		"page_size": q.PageSize,
	}
	if q.Name != "" {
		params["name"] = q.Name
	}
	if q.FormatType != nil {
		params["format_type"] = *q.FormatType
	}

	resp, err := c.client.Get(ctx, c.baseURL+"/v1/datasets", params)
	return c.result(ctx, resp, err)
}

// CreateDataset 创建知识库
func (c *Client) CreateDataset(ctx context.Context, p CreateDatasetParams) (json.RawMessage, error) {
	body := g.Map{
		"space_id":    c.spaceID,
		"name":        p.Name,
		"format_type": p.FormatType,
	}
	if p.Description != "" {
		body["description"] = p.Description
	}
	if p.Icon != "" {
		body["icon"] = p.Icon
	}

	resp, err := c.client.ContentJson().Post(ctx, c.baseURL+"/v1/datasets", body)
	return c.result(ctx, resp, err)
}

// UpdateDataset 修改知识库信息
func (c *Client) UpdateDataset(ctx context.Context, datasetID string, p UpdateDatasetParams) (json.RawMessage, error) {
	body := g.Map{}
	if p.Name != nil {
		body["name"] = *p.Name
	}
	if p.Description != nil {
		body["description"] = *p.Description
	}
	if p.Icon != nil {
		body["icon"] = *p.Icon
	}

	resp, err := c.client.ContentJson().Put(ctx, c.baseURL+"/v1/datasets/"+datasetID, body)
	return c.result(ctx, resp, err)
}

// DeleteDataset 删除知识库
func (c *Client) DeleteDataset(ctx context.Context, datasetID string) (json.RawMessage, error) {
	resp, err := c.client.Delete(ctx, c.baseURL+"/v1/datasets/"+datasetID)
	return c.result(ctx, resp, err)
}

package kmclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/gclient"

	"github.com/Malowking/cozekm/core/errors"
	"github.com/Malowking/cozekm/pkg/schema"
)

const defaultFallbackMessage = "请求失败"

// Client 代理服务的客户端封装，对应浏览器里的 API 层：
// 发请求、自动解包响应体、把各种失败归一成一条可读的错误消息。
type Client struct {
	baseURL string
	client  *gclient.Client
}

// New 创建客户端，baseURL 形如 http://localhost:3001
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  g.Client(),
	}
}

// do 发送请求并做第二层错误归一。
// 失败时优先取代理返回的 {error,message} 信封里的 message，
// 其次是传输层错误消息，最后兜底固定文案，保证消息永远非空。
func (c *Client) do(ctx context.Context, method, path string, data interface{}, out interface{}) error {
	var (
		resp *gclient.Response
		err  error
		url  = c.baseURL + path
	)
	switch method {
	case http.MethodGet:
		resp, err = c.client.Get(ctx, url, data)
	case http.MethodPost:
		resp, err = c.client.ContentJson().Post(ctx, url, data)
	case http.MethodPut:
		resp, err = c.client.ContentJson().Put(ctx, url, data)
	case http.MethodDelete:
		resp, err = c.client.Delete(ctx, url)
	default:
		return fmt.Errorf("unsupported method: %s", method)
	}
	if err != nil {
		return fmt.Errorf("%s", errors.NormalizeMessage("", err, defaultFallbackMessage))
	}
	defer resp.Close()

	body := resp.ReadAll()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope struct {
			Error   bool   `json:"error"`
			Message string `json:"message"`
		}
		_ = sonic.Unmarshal(body, &envelope)
		transportErr := fmt.Errorf("request failed with status code %d", resp.StatusCode)
		return fmt.Errorf("%s", errors.NormalizeMessage(envelope.Message, transportErr, defaultFallbackMessage))
	}

	if out != nil && len(body) > 0 {
		if err = sonic.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}
	return nil
}

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
	FormatType  int
	Icon        string
}

// UpdateDatasetParams 修改知识库参数。format_type 创建后不可变，
// 因此这里没有对应字段，更新报文里永远不会出现它。
type UpdateDatasetParams struct {
	Name        *string
	Description *string
	Icon        *string
}

// ListDatasets 获取知识库列表
func (c *Client) ListDatasets(ctx context.Context, q ListDatasetsQuery) (*schema.DatasetListResponse, error) {
	params := g.Map{}
	if q.Name != "" {
		params["name"] = q.Name
	}
	if q.FormatType != nil {
		params["format_type"] = *q.FormatType
	}
	if q.PageNum > 0 {
		params["page_num"] = q.PageNum
	}
	if q.PageSize > 0 {
		params["page_size"] = q.PageSize
	}

	var out schema.DatasetListResponse
	if err := c.do(ctx, http.MethodGet, "/api/datasets", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDataset 创建知识库。
// 上游对新建知识库的可见性是最终一致的：创建成功后立刻 ListDatasets
// 不保证能看到新的 dataset_id。
func (c *Client) CreateDataset(ctx context.Context, p CreateDatasetParams) (*schema.APIResponse, error) {
	body := g.Map{
		"name":        p.Name,
		"format_type": p.FormatType,
	}
	if p.Description != "" {
		body["description"] = p.Description
	}
	if p.Icon != "" {
		body["icon"] = p.Icon
	}

	var out schema.APIResponse
	if err := c.do(ctx, http.MethodPost, "/api/datasets", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDataset 修改知识库信息
func (c *Client) UpdateDataset(ctx context.Context, datasetID string, p UpdateDatasetParams) (*schema.APIResponse, error) {
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

	var out schema.APIResponse
	if err := c.do(ctx, http.MethodPut, "/api/datasets/"+datasetID, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDataset 删除知识库
func (c *Client) DeleteDataset(ctx context.Context, datasetID string) (*schema.APIResponse, error) {
	var out schema.APIResponse
	if err := c.do(ctx, http.MethodDelete, "/api/datasets/"+datasetID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

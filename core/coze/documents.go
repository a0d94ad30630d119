package coze

import (
	"context"
	"encoding/json"

	"github.com/gogf/gf/v2/frame/g"

	"github.com/Malowking/cozekm/pkg/schema"
)

// CreateDocumentParams 创建知识库文件参数
type CreateDocumentParams struct {
	DatasetID     string
	DocumentBases []*schema.DocumentBase
	ChunkStrategy *schema.ChunkStrategy // nil 时上游使用默认分段
	FormatType    *int
}

// ListDocuments 获取知识库文件列表。
// 注意：上游这是 POST 接口，参数放在 body 里。
func (c *Client) ListDocuments(ctx context.Context, datasetID string, page, size int) (json.RawMessage, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 100
	}

	resp, err := c.client.ContentJson().Post(ctx, c.baseURL+"/open_api/knowledge/document/list", g.Map{
		"dataset_id": datasetID,
		"page":       page,
		"size":       size,
	})
	return c.result(ctx, resp, err)
}

// CreateDocument 创建知识库文件（上传文件），整批一次调用
func (c *Client) CreateDocument(ctx context.Context, p CreateDocumentParams) (json.RawMessage, error) {
	body := g.Map{
		"dataset_id":     p.DatasetID,
		"document_bases": p.DocumentBases,
	}
	if p.ChunkStrategy != nil {
		body["chunk_strategy"] = p.ChunkStrategy
	}
	if p.FormatType != nil {
		body["format_type"] = *p.FormatType
	}

	resp, err := c.client.ContentJson().Post(ctx, c.baseURL+"/open_api/knowledge/document/create", body)
	return c.result(ctx, resp, err)
}

// DeleteDocuments 删除知识库文件，上游一次调用删除整批
func (c *Client) DeleteDocuments(ctx context.Context, documentIDs []string) (json.RawMessage, error) {
	resp, err := c.client.ContentJson().Post(ctx, c.baseURL+"/open_api/knowledge/document/delete", g.Map{
		"document_ids": documentIDs,
	})
	return c.result(ctx, resp, err)
}

// GetDocumentProgress 查看文件上传进度
func (c *Client) GetDocumentProgress(ctx context.Context, datasetID string, documentIDs []string) (json.RawMessage, error) {
	resp, err := c.client.ContentJson().Post(ctx, c.baseURL+"/v1/datasets/"+datasetID+"/process", g.Map{
		"document_ids": documentIDs,
	})
	return c.result(ctx, resp, err)
}

// UpdateDocument 更新知识库文件（修改文件名等）
func (c *Client) UpdateDocument(ctx context.Context, documentID string, name *string) (json.RawMessage, error) {
	body := g.Map{}
	if name != nil {
		body["name"] = *name
	}

	resp, err := c.client.ContentJson().Put(ctx, c.baseURL+"/open_api/knowledge/document/"+documentID, body)
	return c.result(ctx, resp, err)
}

package kmclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gogf/gf/v2/frame/g"

	"github.com/Malowking/cozekm/pkg/schema"
)

// DefaultPageSize 文件列表的默认分页大小
const DefaultPageSize = 100

// ListAllOptions 全量拉取选项
type ListAllOptions struct {
	PageSize int // 每页数量，默认 100
	MaxPages int // 最多拉取的页数，0 表示不限制
}

// ListDocuments 获取知识库文件列表（单页）
func (c *Client) ListDocuments(ctx context.Context, datasetID string, page, size int) (*schema.DocumentListResponse, error) {
	params := g.Map{}
	if page > 0 {
		params["page"] = page
	}
	if size > 0 {
		params["size"] = size
	}

	var out schema.DocumentListResponse
	if err := c.do(ctx, http.MethodGet, "/api/datasets/"+datasetID+"/documents", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAllDocuments 按页顺序拉取知识库下的全部文件。
// 先取第 1 页拿到总数；总数超过一页时顺序拉取余下页，按页序拼接，
// 第 N+1 页在第 N 页合并完成之前不会发出。total 缺失或为 0 时只返回第 1 页的结果。
// 任何一页失败则整体失败，不返回部分结果。
// MaxPages 用来给行为异常的上游设置上限；被截断时返回已拼接的前缀，不报错。
func (c *Client) ListAllDocuments(ctx context.Context, datasetID string, opts ListAllOptions) ([]*schema.Document, error) {
	size := opts.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}

	first, err := c.ListDocuments(ctx, datasetID, 1, size)
	if err != nil {
		return nil, err
	}

	docs := append([]*schema.Document{}, first.DocumentInfos...)
	total := first.Total
	if total <= size {
		return docs, nil
	}

	pages := (total + size - 1) / size
	for page := 2; page <= pages; page++ {
		if opts.MaxPages > 0 && page > opts.MaxPages {
			break
		}
		pageResp, err := c.ListDocuments(ctx, datasetID, page, size)
		if err != nil {
			return nil, err
		}
		docs = append(docs, pageResp.DocumentInfos...)
	}
	return docs, nil
}

// UploadOptions 上传选项
type UploadOptions struct {
	FormatType    int                   // 随 document_bases 一起回传
	ChunkStrategy *schema.ChunkStrategy // nil 表示使用上游默认分段策略（有意为之）
}

// UploadDocuments 一次调用上传整批文件。
// 没有按文件并发、也没有断点续传：调用失败时整批视为失败，由调用方整批重试。
func (c *Client) UploadDocuments(ctx context.Context, datasetID string, bases []*schema.DocumentBase, opts UploadOptions) (*schema.DocumentCreateResponse, error) {
	body := g.Map{
		"document_bases": bases,
		"format_type":    opts.FormatType,
	}
	if opts.ChunkStrategy != nil {
		body["chunk_strategy"] = opts.ChunkStrategy
	}

	var out schema.DocumentCreateResponse
	if err := c.do(ctx, http.MethodPost, "/api/datasets/"+datasetID+"/documents", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDocument 删除单个文件
func (c *Client) DeleteDocument(ctx context.Context, documentID string) (*schema.APIResponse, error) {
	var out schema.APIResponse
	if err := c.do(ctx, http.MethodDelete, "/api/documents/"+documentID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BatchDeleteDocuments 按给定顺序逐个删除文件。
// 策略：遇到第一个失败立即中止，之后的 id 不再发起删除；
// 已删除的不回滚，所以失败时批次可能只应用了一部分。
func (c *Client) BatchDeleteDocuments(ctx context.Context, documentIDs []string) error {
	if len(documentIDs) == 0 {
		return fmt.Errorf("请提供要删除的文件ID")
	}
	for _, id := range documentIDs {
		if _, err := c.DeleteDocument(ctx, id); err != nil {
			return fmt.Errorf("删除文件 %s 失败: %w", id, err)
		}
	}
	return nil
}

// GetDocumentProgress 查看文件上传进度
func (c *Client) GetDocumentProgress(ctx context.Context, datasetID string, documentIDs []string) (*schema.APIResponse, error) {
	var out schema.APIResponse
	err := c.do(ctx, http.MethodPost, "/api/documents/progress", g.Map{
		"dataset_id":   datasetID,
		"document_ids": documentIDs,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDocument 更新文件信息（改名）
func (c *Client) UpdateDocument(ctx context.Context, documentID string, name string) (*schema.APIResponse, error) {
	var out schema.APIResponse
	if err := c.do(ctx, http.MethodPut, "/api/documents/"+documentID, g.Map{"name": name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

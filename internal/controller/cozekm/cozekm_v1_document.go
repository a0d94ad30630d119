package cozekm

import (
	"context"

	"github.com/gogf/gf/v2/frame/g"

	v1 "github.com/Malowking/cozekm/api/cozekm/v1"
	"github.com/Malowking/cozekm/core/coze"
	"github.com/Malowking/cozekm/core/errors"
	"github.com/Malowking/cozekm/pkg/schema"
)

func (c *ControllerV1) DocumentList(ctx context.Context, req *v1.DocumentListReq) (res *v1.DocumentListRes, err error) {
	g.Log().Infof(ctx, "DocumentList request received - Id: %s, Page: %d, Size: %d", req.Id, req.Page, req.Size)

	raw, err := c.coze.ListDocuments(ctx, req.Id, req.Page, req.Size)
	if err != nil {
		return nil, err
	}

	return &v1.DocumentListRes{RawMessage: raw}, nil
}

func (c *ControllerV1) DocumentCreate(ctx context.Context, req *v1.DocumentCreateReq) (res *v1.DocumentCreateRes, err error) {
	g.Log().Infof(ctx, "DocumentCreate request received - Id: %s, DocumentBases: %d", req.Id, len(req.DocumentBases))

	// 数组边界在任何上游调用之前校验
	if len(req.DocumentBases) == 0 {
		return nil, errors.New(errors.ErrInvalidParameter, "请提供要上传的文件信息")
	}
	if len(req.DocumentBases) > schema.MaxDocumentsPerUpload {
		return nil, errors.New(errors.ErrTooManyDocuments, "每次最多上传10个文件")
	}

	raw, err := c.coze.CreateDocument(ctx, coze.CreateDocumentParams{
		DatasetID:     req.Id,
		DocumentBases: req.DocumentBases,
		ChunkStrategy: req.ChunkStrategy,
		FormatType:    req.FormatType,
	})
	if err != nil {
		return nil, err
	}

	return &v1.DocumentCreateRes{RawMessage: raw}, nil
}

func (c *ControllerV1) DocumentDelete(ctx context.Context, req *v1.DocumentDeleteReq) (res *v1.DocumentDeleteRes, err error) {
	g.Log().Infof(ctx, "DocumentDelete request received - Id: %s", req.Id)

	// 上游只有批量删除接口，单个删除走一个元素的批量
	raw, err := c.coze.DeleteDocuments(ctx, []string{req.Id})
	if err != nil {
		return nil, err
	}

	return &v1.DocumentDeleteRes{RawMessage: raw}, nil
}

func (c *ControllerV1) DocumentBatchDelete(ctx context.Context, req *v1.DocumentBatchDeleteReq) (res *v1.DocumentBatchDeleteRes, err error) {
	g.Log().Infof(ctx, "DocumentBatchDelete request received - DocumentIds: %d", len(req.DocumentIds))

	if len(req.DocumentIds) == 0 {
		return nil, errors.New(errors.ErrInvalidParameter, "请提供要删除的文件ID")
	}

	raw, err := c.coze.DeleteDocuments(ctx, req.DocumentIds)
	if err != nil {
		return nil, err
	}

	return &v1.DocumentBatchDeleteRes{RawMessage: raw}, nil
}

func (c *ControllerV1) DocumentProgress(ctx context.Context, req *v1.DocumentProgressReq) (res *v1.DocumentProgressRes, err error) {
	g.Log().Infof(ctx, "DocumentProgress request received - DatasetId: %s, DocumentIds: %d",
		req.DatasetId, len(req.DocumentIds))

	if req.DatasetId == "" {
		return nil, errors.New(errors.ErrInvalidParameter, "请提供知识库ID")
	}
	if len(req.DocumentIds) == 0 {
		return nil, errors.New(errors.ErrInvalidParameter, "请提供文件ID")
	}

	raw, err := c.coze.GetDocumentProgress(ctx, req.DatasetId, req.DocumentIds)
	if err != nil {
		return nil, err
	}

	return &v1.DocumentProgressRes{RawMessage: raw}, nil
}

func (c *ControllerV1) DocumentUpdate(ctx context.Context, req *v1.DocumentUpdateReq) (res *v1.DocumentUpdateRes, err error) {
	g.Log().Infof(ctx, "DocumentUpdate request received - Id: %s, Name: %v", req.Id, req.Name)

	raw, err := c.coze.UpdateDocument(ctx, req.Id, req.Name)
	if err != nil {
		return nil, err
	}

	return &v1.DocumentUpdateRes{RawMessage: raw}, nil
}

package cozekm

import (
	"context"

	"github.com/gogf/gf/v2/frame/g"

	v1 "github.com/Malowking/cozekm/api/cozekm/v1"
	"github.com/Malowking/cozekm/core/coze"
)

func (c *ControllerV1) DatasetList(ctx context.Context, req *v1.DatasetListReq) (res *v1.DatasetListRes, err error) {
	g.Log().Infof(ctx, "DatasetList request received - Name: %s, FormatType: %v, PageNum: %d, PageSize: %d",
		req.Name, req.FormatType, req.PageNum, req.PageSize)

	raw, err := c.coze.ListDatasets(ctx, coze.ListDatasetsQuery{
		Name:       req.Name,
		FormatType: req.FormatType,
		PageNum:    req.PageNum,
		PageSize:   req.PageSize,
	})
	if err != nil {
		return nil, err
	}

	return &v1.DatasetListRes{RawMessage: raw}, nil
}

func (c *ControllerV1) DatasetCreate(ctx context.Context, req *v1.DatasetCreateReq) (res *v1.DatasetCreateRes, err error) {
	g.Log().Infof(ctx, "DatasetCreate request received - Name: %s, FormatType: %d", req.Name, req.FormatType)

	raw, err := c.coze.CreateDataset(ctx, coze.CreateDatasetParams{
		Name:        req.Name,
		Description: req.Description,
		FormatType:  req.FormatType,
		Icon:        req.Icon,
	})
	if err != nil {
		return nil, err
	}

	return &v1.DatasetCreateRes{RawMessage: raw}, nil
}

func (c *ControllerV1) DatasetUpdate(ctx context.Context, req *v1.DatasetUpdateReq) (res *v1.DatasetUpdateRes, err error) {
	g.Log().Infof(ctx, "DatasetUpdate request received - Id: %s, Name: %v", req.Id, req.Name)

	raw, err := c.coze.UpdateDataset(ctx, req.Id, coze.UpdateDatasetParams{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		return nil, err
	}

	return &v1.DatasetUpdateRes{RawMessage: raw}, nil
}

func (c *ControllerV1) DatasetDelete(ctx context.Context, req *v1.DatasetDeleteReq) (res *v1.DatasetDeleteRes, err error) {
	g.Log().Infof(ctx, "DatasetDelete request received - Id: %s", req.Id)

	raw, err := c.coze.DeleteDataset(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	return &v1.DatasetDeleteRes{RawMessage: raw}, nil
}

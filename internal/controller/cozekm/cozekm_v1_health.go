package cozekm

import (
	"context"

	v1 "github.com/Malowking/cozekm/api/cozekm/v1"
)

// Health 健康检查，不访问上游
func (c *ControllerV1) Health(ctx context.Context, req *v1.HealthReq) (res *v1.HealthRes, err error) {
	return &v1.HealthRes{
		Status:  "ok",
		Message: "coze knowledge manager api is running",
	}, nil
}

package v1

import (
	"github.com/gogf/gf/v2/frame/g"
)

type HealthReq struct {
	g.Meta `path:"/health" method:"get" tags:"health" summary:"Health check"`
}

type HealthRes struct {
	g.Meta  `mime:"application/json"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

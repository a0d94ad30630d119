package cozekm

import (
	"github.com/Malowking/cozekm/core/coze"
)

// ControllerV1 代理控制器。上游客户端在进程启动时构造一次并注入进来，
// 测试时可以替换为指向假上游的客户端。
type ControllerV1 struct {
	coze *coze.Client
}

func NewV1(client *coze.Client) *ControllerV1 {
	return &ControllerV1{coze: client}
}

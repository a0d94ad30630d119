package config

import (
	"context"
	"strings"

	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/os/genv"
)

// DefaultCozeBaseURL Coze 开放平台地址
const DefaultCozeBaseURL = "https://api.coze.cn"

// DefaultServerPort 本地监听端口
const DefaultServerPort = 3001

// CozeConfig 上游 Coze API 配置，进程启动时读取一次，之后只读
type CozeConfig struct {
	BaseURL string // 上游地址
	Token   string // 固定 bearer token
	SpaceID string // 空间 ID，注入到知识库列表查询和创建请求里
	Timeout int    // 上游请求超时（秒）
}

// GetCozeConfig 读取上游配置，配置文件缺失时回落到环境变量，便于容器部署
func GetCozeConfig(ctx context.Context) *CozeConfig {
	cfg := &CozeConfig{
		BaseURL: g.Cfg().MustGet(ctx, "coze.baseURL", DefaultCozeBaseURL).String(),
		Token:   g.Cfg().MustGet(ctx, "coze.token", "").String(),
		SpaceID: g.Cfg().MustGet(ctx, "coze.spaceId", "").String(),
		Timeout: g.Cfg().MustGet(ctx, "coze.timeout", 600).Int(),
	}
	if cfg.Token == "" {
		cfg.Token = genv.Get("COZE_API_TOKEN", "").String()
	}
	if cfg.SpaceID == "" {
		cfg.SpaceID = genv.Get("COZE_SPACE_ID", "").String()
	}
	return cfg
}

// GetServerPort 读取本地监听端口，PORT 环境变量优先于配置文件
func GetServerPort(ctx context.Context) int {
	if p := genv.Get("PORT", 0).Int(); p > 0 {
		return p
	}
	return g.Cfg().MustGet(ctx, "server.port", DefaultServerPort).Int()
}

// ValidateConfiguration validates all required configuration items.
// token 和 spaceId 缺失只告警不阻止启动：此时所有上游调用都会以鉴权错误失败，
// 但服务本身仍可响应健康检查。
func ValidateConfiguration(ctx context.Context) error {
	var warnings []string

	cfg := GetCozeConfig(ctx)
	if cfg.Token == "" {
		warnings = append(warnings, "coze.token (or COZE_API_TOKEN) is not set, upstream calls will fail with an auth error")
	}
	if cfg.SpaceID == "" {
		warnings = append(warnings, "coze.spaceId (or COZE_SPACE_ID) is not set, upstream calls will fail")
	}

	// 输出警告信息
	if len(warnings) > 0 {
		g.Log().Warningf(ctx, "Configuration warnings:\n- %s", strings.Join(warnings, "\n- "))
	} else {
		g.Log().Info(ctx, "✓ All required configuration items are present")
	}

	return nil
}

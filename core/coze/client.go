package coze

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/gclient"

	"github.com/Malowking/cozekm/core/config"
	"github.com/Malowking/cozekm/core/errors"
)

const fallbackErrorMessage = "上游服务请求失败"

// Client Coze 开放平台 API 客户端。
// 进程内只构造一次，持有固定的 bearer token 和空间 ID，构造之后不再修改，
// 所以可以被所有 handler 并发共享而无需加锁。
type Client struct {
	baseURL string
	spaceID string
	client  *gclient.Client
}

// NewClient 根据配置构造上游客户端
func NewClient(cfg *config.CozeConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultCozeBaseURL
	}

	// 使用 gf 的轻量级 HTTP 客户端，配置长连接和超时
	client := g.Client()
	if cfg.Timeout > 0 {
		client.SetTimeout(time.Duration(cfg.Timeout) * time.Second)
	}
	// Content-Type 不能挂在客户端级别：gclient 对 GET 会把参数编码进 JSON body
	// 而不是 query，POST/PUT 路径各自用 ContentJson 按请求设置
	client.SetHeaderMap(map[string]string{
		"Authorization": "Bearer " + cfg.Token,
		// Coze 要求该头，int64 字段以字符串返回，避免 JS 侧精度丢失
		"Agw-Js-Conv": "str",
	})
	client.Transport = &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		DisableKeepAlives:   false,
		DisableCompression:  false,
	}

	return &Client{
		baseURL: baseURL,
		spaceID: cfg.SpaceID,
		client:  client,
	}
}

// SpaceID 返回配置的空间 ID
func (c *Client) SpaceID() string {
	return c.spaceID
}

// result 统一处理上游响应：2xx 时原样返回响应体，其余情况翻译为 UpstreamError。
// 错误消息优先取上游响应体里的 msg 字段，其次是传输层错误，最后是固定兜底文案。
func (c *Client) result(ctx context.Context, resp *gclient.Response, err error) (json.RawMessage, error) {
	if err != nil {
		g.Log().Errorf(ctx, "coze api transport error: %v", err)
		return nil, errors.NewUpstream(http.StatusInternalServerError,
			errors.NormalizeMessage("", err, fallbackErrorMessage))
	}
	defer resp.Close()

	body := resp.ReadAll()
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return json.RawMessage(body), nil
	}

	var envelope struct {
		Msg string `json:"msg"`
	}
	_ = sonic.Unmarshal(body, &envelope)

	message := errors.NormalizeMessage(envelope.Msg,
		fmt.Errorf("coze api returned status %d", resp.StatusCode), fallbackErrorMessage)
	g.Log().Errorf(ctx, "coze api error: status=%d, message=%s", resp.StatusCode, message)
	return nil, errors.NewUpstream(resp.StatusCode, message)
}

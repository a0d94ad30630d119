package cmd

import (
	"context"

	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/ghttp"
	"github.com/gogf/gf/v2/os/gcmd"

	"github.com/Malowking/cozekm/core/config"
	"github.com/Malowking/cozekm/core/coze"
	"github.com/Malowking/cozekm/internal/controller/cozekm"
)

var (
	Main = gcmd.Command{
		Name:  "main",
		Usage: "main",
		Brief: "start coze knowledge manager proxy server",
		Func: func(ctx context.Context, parser *gcmd.Parser) (err error) {
			// 校验配置：token/spaceId 缺失只告警，不阻止启动
			if err = config.ValidateConfiguration(ctx); err != nil {
				return err
			}

			// 上游客户端进程内只构造一次，注入到控制器
			cozeClient := coze.NewClient(config.GetCozeConfig(ctx))

			port := config.GetServerPort(ctx)

			s := g.Server()
			s.SetPort(port)

			s.Group("/api", func(group *ghttp.RouterGroup) {
				group.Middleware(MiddlewareRequestID, MiddlewareProxyResponse, ghttp.MiddlewareCORS)
				group.Bind(
					cozekm.NewV1(cozeClient),
				)
			})

			g.Log().Infof(ctx, "🚀 coze knowledge manager api listening on :%d", port)
			s.Run()
			return nil
		},
	}
)

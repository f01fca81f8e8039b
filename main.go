package main

import (
	"context"
	"fmt"
	"school-chat/biz/adaptor"
	"school-chat/biz/infrastructure/config"
	"school-chat/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/monitor-prometheus"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
)

func main() {
	provider.Init()
	c := config.GetConfig()

	tracer, cfg := hertztracing.NewServerTracer()
	h := server.Default(
		server.WithHostPorts(c.ListenOn),
		server.WithTracer(prometheus.NewServerTracer(
			fmt.Sprintf("%s:%d", c.Prometheus.Host, c.Prometheus.Port),
			c.Prometheus.Path,
			prometheus.WithEnableGoCollector(true))),
		tracer,
	)
	h.Use(hertztracing.ServerMiddleware(cfg))

	// 把 hertz 上下文塞进 ctx，服务层从中提取鉴权头
	h.Use(func(ctx context.Context, c *app.RequestContext) {
		ctx = adaptor.InjectContext(ctx, c)
		c.Next(ctx)
	})

	customizedRegister(h)
	h.Spin()
}

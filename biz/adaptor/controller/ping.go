package controller

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
)

func Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(http.StatusOK, map[string]any{"msg": "pong"})
}

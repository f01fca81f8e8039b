package v1

import (
	"context"
	"net/http"
	"school-chat/biz/adaptor"
	"school-chat/biz/application/dto/school/chat"
	"school-chat/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// ApplySignedUrl .
// @router /api/v1/sts/apply [POST]
func ApplySignedUrl(ctx context.Context, c *app.RequestContext) {
	var req chat.ApplySignedUrlReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.StsService.ApplySignedUrl(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusOK)
}

package v1

import (
	"context"
	"net/http"
	"school-chat/biz/adaptor"
	"school-chat/biz/application/dto/school/chat"
	"school-chat/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// SignUp .
// @router /api/v1/user [POST]
func SignUp(ctx context.Context, c *app.RequestContext) {
	var req chat.SignUpReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.UserService.SignUp(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusCreated)
}

// SignIn .
// @router /api/v1/user/login [POST]
func SignIn(ctx context.Context, c *app.RequestContext) {
	var req chat.SignInReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.UserService.SignIn(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusOK)
}

// SignOut .
// @router /api/v1/user/logout [POST]
func SignOut(ctx context.Context, c *app.RequestContext) {
	var req chat.SignOutReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.UserService.SignOut(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusOK)
}

// DeleteUser .
// @router /api/v1/user [DELETE]
func DeleteUser(ctx context.Context, c *app.RequestContext) {
	var req chat.DeleteUserReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.UserService.DeleteUser(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusOK)
}

// GetUserInfo .
// @router /api/v1/user [GET]
func GetUserInfo(ctx context.Context, c *app.RequestContext) {
	var req chat.GetUserInfoReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.UserService.GetUserInfo(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusOK)
}

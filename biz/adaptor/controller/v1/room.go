package v1

import (
	"context"
	"net/http"
	"school-chat/biz/adaptor"
	"school-chat/biz/application/dto/school/chat"
	"school-chat/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// CreateRoom .
// @router /api/v1/rooms [POST]
func CreateRoom(ctx context.Context, c *app.RequestContext) {
	var req chat.CreateRoomReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.RoomService.CreateRoom(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusCreated)
}

// GetRoomInfo .
// @router /api/v1/rooms [GET]
func GetRoomInfo(ctx context.Context, c *app.RequestContext) {
	var req chat.GetRoomInfoReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.RoomService.GetRoomInfo(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusOK)
}

// DeleteRoom .
// @router /api/v1/rooms [DELETE]
func DeleteRoom(ctx context.Context, c *app.RequestContext) {
	var req chat.DeleteRoomReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.RoomService.DeleteRoom(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusOK)
}

// AddUser .
// @router /api/v1/rooms/members [POST]
func AddUser(ctx context.Context, c *app.RequestContext) {
	var req chat.AddUserReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.RoomService.AddUser(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusOK)
}

// KickUser .
// @router /api/v1/rooms/members [DELETE]
func KickUser(ctx context.Context, c *app.RequestContext) {
	var req chat.KickUserReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.RoomService.KickUser(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusOK)
}

// PromoteAdmin .
// @router /api/v1/rooms/admins [POST]
func PromoteAdmin(ctx context.Context, c *app.RequestContext) {
	var req chat.PromoteAdminReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.RoomService.PromoteAdmin(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusOK)
}

// DemoteAdmin .
// @router /api/v1/rooms/admins [DELETE]
func DemoteAdmin(ctx context.Context, c *app.RequestContext) {
	var req chat.DemoteAdminReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.RoomService.DemoteAdmin(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusOK)
}

// CreateMessage .
// @router /api/v1/rooms/messages [POST]
func CreateMessage(ctx context.Context, c *app.RequestContext) {
	var req chat.CreateMessageReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.RoomService.CreateMessage(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusCreated)
}

// EditMessage .
// @router /api/v1/rooms/messages [PATCH]
func EditMessage(ctx context.Context, c *app.RequestContext) {
	var req chat.EditMessageReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.RoomService.EditMessage(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusOK)
}

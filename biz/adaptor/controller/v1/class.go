package v1

import (
	"context"
	"net/http"
	"school-chat/biz/adaptor"
	"school-chat/biz/application/dto/school/chat"
	"school-chat/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// CreateClass .
// @router /api/v1/classes [POST]
func CreateClass(ctx context.Context, c *app.RequestContext) {
	var req chat.CreateClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.CreateClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusCreated)
}

// GetClassInfo .
// @router /api/v1/classes [GET]
func GetClassInfo(ctx context.Context, c *app.RequestContext) {
	var req chat.GetClassInfoReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.GetClassInfo(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusOK)
}

// AddStudent .
// @router /api/v1/classes/students [POST]
func AddStudent(ctx context.Context, c *app.RequestContext) {
	var req chat.AddStudentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.AddStudent(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusOK)
}

// RemoveStudent .
// @router /api/v1/classes/students [DELETE]
func RemoveStudent(ctx context.Context, c *app.RequestContext) {
	var req chat.RemoveStudentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.RemoveStudent(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusOK)
}

// CreateNotice .
// @router /api/v1/classes/notices [POST]
func CreateNotice(ctx context.Context, c *app.RequestContext) {
	var req chat.CreateNoticeReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.CreateNotice(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusCreated)
}

// EditNotice .
// @router /api/v1/classes/notices [PATCH]
func EditNotice(ctx context.Context, c *app.RequestContext) {
	var req chat.EditNoticeReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.EditNotice(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusOK)
}

// DeleteNotice .
// @router /api/v1/classes/notices [DELETE]
func DeleteNotice(ctx context.Context, c *app.RequestContext) {
	var req chat.DeleteNoticeReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.DeleteNotice(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusOK)
}

// CreateAssignment .
// @router /api/v1/classes/assignments [POST]
func CreateAssignment(ctx context.Context, c *app.RequestContext) {
	var req chat.CreateAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.CreateAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusCreated)
}

// EditAssignment .
// @router /api/v1/classes/assignments [PATCH]
func EditAssignment(ctx context.Context, c *app.RequestContext) {
	var req chat.EditAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.EditAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusOK)
}

// DeleteAssignment .
// @router /api/v1/classes/assignments [DELETE]
func DeleteAssignment(ctx context.Context, c *app.RequestContext) {
	var req chat.DeleteAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(http.StatusNotAcceptable, map[string]any{"msg": err.Error()})
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.DeleteAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, http.StatusOK)
}

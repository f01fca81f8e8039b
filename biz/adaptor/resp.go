package adaptor

import (
	"context"
	"net/http"
	"school-chat/biz/infrastructure/util"
	"school-chat/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PostProcess 统一出口：成功时按 successCode 返回负载，
// 失败时把 Errno 携带的状态码翻译成 HTTP 状态
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error, successCode int) {
	log.CtxInfo(ctx, "[%s] req=%s, resp=%s, err=%v", c.Path(), util.JSONF(req), util.JSONF(resp), err)
	if err == nil {
		c.JSON(successCode, resp)
		return
	}
	s, ok := status.FromError(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, map[string]any{"msg": err.Error()})
		return
	}
	c.JSON(httpCode(s.Code()), map[string]any{
		"code": uint32(s.Code()),
		"msg":  s.Message(),
	})
}

func httpCode(code codes.Code) int {
	switch code {
	case codes.Unauthenticated, codes.PermissionDenied:
		return http.StatusUnauthorized
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.InvalidArgument:
		return http.StatusNotAcceptable
	default:
		return http.StatusInternalServerError
	}
}

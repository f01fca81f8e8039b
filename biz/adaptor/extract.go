package adaptor

import (
	"context"
	"errors"
	"school-chat/biz/application/dto/basic"
	"school-chat/biz/infrastructure/consts"
	"school-chat/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/mitchellh/mapstructure"
)

type contextKey string

const (
	hertzContext contextKey = "hertz_context"
	authMetaKey  contextKey = "auth_meta"
)

func InjectContext(ctx context.Context, c *app.RequestContext) context.Context {
	return context.WithValue(ctx, hertzContext, c)
}

func ExtractContext(ctx context.Context) (*app.RequestContext, error) {
	c, ok := ctx.Value(hertzContext).(*app.RequestContext)
	if !ok {
		return nil, errors.New("hertz context not found")
	}
	return c, nil
}

// InjectAuthMeta 直接注入鉴权信息，供测试或内部调用使用
func InjectAuthMeta(ctx context.Context, meta *basic.AuthMeta) context.Context {
	return context.WithValue(ctx, authMetaKey, meta)
}

// ExtractAuthMeta 取出调用方携带的令牌与身份声明。
// 令牌是不透明的，合法性由 token 集合查证，这里只做透传
func ExtractAuthMeta(ctx context.Context) (meta *basic.AuthMeta) {
	meta = new(basic.AuthMeta)
	if m, ok := ctx.Value(authMetaKey).(*basic.AuthMeta); ok {
		return m
	}
	c, err := ExtractContext(ctx)
	if err != nil {
		return
	}
	values := map[string]string{
		"token":  string(c.GetHeader(consts.HeaderAuthToken)),
		"userId": string(c.GetHeader(consts.HeaderUserId)),
	}
	if err = mapstructure.Decode(values, meta); err != nil {
		log.CtxInfo(ctx, "extract auth meta fail, err=%v", err)
	}
	return
}

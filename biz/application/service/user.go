package service

import (
	"context"
	"errors"
	"school-chat/biz/adaptor"
	"school-chat/biz/application/dto/basic"
	"school-chat/biz/application/dto/school/chat"
	"school-chat/biz/infrastructure/consts"
	"school-chat/biz/infrastructure/repository/token"
	"school-chat/biz/infrastructure/repository/user"
	"school-chat/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

type IUserService interface {
	SignUp(ctx context.Context, req *chat.SignUpReq) (*chat.SignUpResp, error)
	SignIn(ctx context.Context, req *chat.SignInReq) (*chat.SignInResp, error)
	SignOut(ctx context.Context, req *chat.SignOutReq) (*basic.Response, error)
	DeleteUser(ctx context.Context, req *chat.DeleteUserReq) (*basic.Response, error)
	GetUserInfo(ctx context.Context, req *chat.GetUserInfoReq) (*chat.GetUserInfoResp, error)
}

type UserService struct {
	UserMapper  user.Mapper
	TokenMapper token.Mapper
}

var UserServiceSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)

// SignUp 注册用户，用户名与邮箱均不可重复
func (s *UserService) SignUp(ctx context.Context, req *chat.SignUpReq) (*chat.SignUpResp, error) {
	// 查重
	existing, err := s.UserMapper.FindOneByAccount(ctx, req.UserName, req.Email)
	if err != nil && !errors.Is(err, consts.ErrNotFound) {
		log.Error("注册查重失败: %v", err)
		return nil, err
	}
	if existing != nil {
		return nil, consts.ErrSignUpConflict
	}

	// 写入用户
	u := &user.User{
		UserName: req.UserName,
		RealName: req.RealName,
		Email:    req.Email,
		Password: req.Password,
		Teacher:  req.Teacher,
		Form: user.Form{
			Year:        req.Year,
			ClassLetter: req.ClassLetter,
		},
	}
	if err = s.UserMapper.Insert(ctx, u); err != nil {
		log.Error("注册用户失败: %v", err)
		return nil, err
	}

	return &chat.SignUpResp{Id: u.ID.Hex()}, nil
}

// SignIn 登录：用户名或邮箱二选一，校验口令后签发令牌
func (s *UserService) SignIn(ctx context.Context, req *chat.SignInReq) (*chat.SignInResp, error) {
	var u *user.User
	var err error

	switch {
	case req.UserName != "":
		u, err = s.UserMapper.FindOneByUserName(ctx, req.UserName)
	case req.Email != "":
		u, err = s.UserMapper.FindOneByEmail(ctx, req.Email)
	default:
		return nil, consts.ErrMissingAccount
	}
	// 口令为明文比较，与旧系统保持一致，属已知安全缺陷
	if err != nil || u.Password != req.Password {
		return nil, consts.ErrSignIn
	}

	tok, err := s.TokenMapper.Insert(ctx, u.ID)
	if err != nil {
		log.Error("签发令牌失败: %v", err)
		return nil, err
	}

	return &chat.SignInResp{
		Id:    u.ID.Hex(),
		Token: tok,
	}, nil
}

// SignOut 登出即删除令牌，删除后立即失效
func (s *UserService) SignOut(ctx context.Context, req *chat.SignOutReq) (*basic.Response, error) {
	// 校验令牌
	meta := adaptor.ExtractAuthMeta(ctx)
	if ok, err := s.TokenMapper.Validate(ctx, meta.GetToken(), meta.GetUserId()); err != nil || !ok {
		return nil, consts.ErrNotAuthentication
	}

	if err := s.TokenMapper.Delete(ctx, meta.GetToken()); err != nil {
		return nil, consts.ErrNotAuthentication
	}

	return &basic.Response{Msg: "已登出"}, nil
}

// DeleteUser 注销账号：先登出再删除用户文档
func (s *UserService) DeleteUser(ctx context.Context, req *chat.DeleteUserReq) (*basic.Response, error) {
	// 校验令牌
	meta := adaptor.ExtractAuthMeta(ctx)
	if ok, err := s.TokenMapper.Validate(ctx, meta.GetToken(), meta.GetUserId()); err != nil || !ok {
		return nil, consts.ErrNotAuthentication
	}

	if err := s.TokenMapper.Delete(ctx, meta.GetToken()); err != nil {
		return nil, consts.ErrNotAuthentication
	}

	if err := s.UserMapper.Delete(ctx, meta.GetUserId()); err != nil {
		log.Error("删除用户失败: %v", err)
		return nil, consts.ErrDelete
	}

	return &basic.Response{Msg: "账号已注销"}, nil
}

// GetUserInfo 查询用户资料，不含口令
func (s *UserService) GetUserInfo(ctx context.Context, req *chat.GetUserInfoReq) (*chat.GetUserInfoResp, error) {
	// 校验令牌
	meta := adaptor.ExtractAuthMeta(ctx)
	if ok, err := s.TokenMapper.Validate(ctx, meta.GetToken(), meta.GetUserId()); err != nil || !ok {
		return nil, consts.ErrNotAuthentication
	}

	u, err := s.UserMapper.FindOne(ctx, req.TargetId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	return &chat.GetUserInfoResp{
		User: &chat.UserInfo{
			Id:       u.ID.Hex(),
			UserName: u.UserName,
			RealName: u.RealName,
			Email:    u.Email,
			Teacher:  u.Teacher,
			Form:     cast.ToString(u.Form.Year) + u.Form.ClassLetter,
			Classes:  lo.Map(u.Classes, hexOf),
		},
	}, nil
}

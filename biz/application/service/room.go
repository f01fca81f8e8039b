package service

import (
	"context"
	"school-chat/biz/adaptor"
	"school-chat/biz/application/dto/basic"
	"school-chat/biz/application/dto/school/chat"
	"school-chat/biz/infrastructure/consts"
	"school-chat/biz/infrastructure/repository/room"
	"school-chat/biz/infrastructure/repository/token"
	"school-chat/biz/infrastructure/repository/user"
	"school-chat/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IRoomService interface {
	CreateRoom(ctx context.Context, req *chat.CreateRoomReq) (*chat.CreateRoomResp, error)
	GetRoomInfo(ctx context.Context, req *chat.GetRoomInfoReq) (*chat.GetRoomInfoResp, error)
	DeleteRoom(ctx context.Context, req *chat.DeleteRoomReq) (*basic.Response, error)
	AddUser(ctx context.Context, req *chat.AddUserReq) (*basic.Response, error)
	KickUser(ctx context.Context, req *chat.KickUserReq) (*basic.Response, error)
	PromoteAdmin(ctx context.Context, req *chat.PromoteAdminReq) (*basic.Response, error)
	DemoteAdmin(ctx context.Context, req *chat.DemoteAdminReq) (*basic.Response, error)
	CreateMessage(ctx context.Context, req *chat.CreateMessageReq) (*chat.CreateMessageResp, error)
	EditMessage(ctx context.Context, req *chat.EditMessageReq) (*basic.Response, error)
}

type RoomService struct {
	RoomMapper  room.Mapper
	UserMapper  user.Mapper
	TokenMapper token.Mapper
}

var RoomServiceSet = wire.NewSet(
	wire.Struct(new(RoomService), "*"),
	wire.Bind(new(IRoomService), new(*RoomService)),
)

// CreateRoom 创建聊天室，创建者即群主，同时进入管理员与成员名单
func (s *RoomService) CreateRoom(ctx context.Context, req *chat.CreateRoomReq) (*chat.CreateRoomResp, error) {
	// 校验令牌
	meta := adaptor.ExtractAuthMeta(ctx)
	if ok, err := s.TokenMapper.Validate(ctx, meta.GetToken(), meta.GetUserId()); err != nil || !ok {
		return nil, consts.ErrNotAuthentication
	}

	owner, err := primitive.ObjectIDFromHex(meta.GetUserId())
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}

	r := &room.Room{
		RoomName:   req.RoomName,
		Owner:      owner,
		Admins:     []primitive.ObjectID{owner},
		AllMembers: []primitive.ObjectID{owner},
	}
	if err = s.RoomMapper.Insert(ctx, r); err != nil {
		log.Error("创建聊天室失败: %v", err)
		return nil, err
	}

	return &chat.CreateRoomResp{Id: r.ID.Hex()}, nil
}

// GetRoomInfo 查询聊天室信息
func (s *RoomService) GetRoomInfo(ctx context.Context, req *chat.GetRoomInfoReq) (*chat.GetRoomInfoResp, error) {
	// 校验令牌
	meta := adaptor.ExtractAuthMeta(ctx)
	if ok, err := s.TokenMapper.Validate(ctx, meta.GetToken(), meta.GetUserId()); err != nil || !ok {
		return nil, consts.ErrNotAuthentication
	}

	r, err := s.RoomMapper.FindOne(ctx, req.RoomId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	messages := lo.Map(r.Messages, func(m room.Message, _ int) *chat.MessageInfo {
		info := new(chat.MessageInfo)
		_ = copier.Copy(info, &m)
		info.Id = m.ID.Hex()
		info.Author = m.Author.Hex()
		if m.Reply != nil {
			info.Reply = lo.ToPtr(m.Reply.Hex())
		}
		return info
	})

	return &chat.GetRoomInfoResp{
		Room: &chat.RoomInfo{
			Id:       r.ID.Hex(),
			RoomName: r.RoomName,
			Owner:    r.Owner.Hex(),
			Admins:   lo.Map(r.Admins, hexOf),
			Members:  lo.Map(r.AllMembers, hexOf),
			Messages: messages,
		},
	}, nil
}

// DeleteRoom 解散聊天室，仅群主可操作
func (s *RoomService) DeleteRoom(ctx context.Context, req *chat.DeleteRoomReq) (*basic.Response, error) {
	// 校验令牌
	meta := adaptor.ExtractAuthMeta(ctx)
	if ok, err := s.TokenMapper.Validate(ctx, meta.GetToken(), meta.GetUserId()); err != nil || !ok {
		return nil, consts.ErrNotAuthentication
	}

	r, err := s.RoomMapper.FindOne(ctx, req.RoomId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if r.Owner.Hex() != meta.GetUserId() {
		return nil, consts.ErrNotRoomOwner
	}

	if err = s.RoomMapper.Delete(ctx, req.RoomId); err != nil {
		log.Error("解散聊天室失败: %v", err)
		return nil, err
	}

	return &basic.Response{Msg: "聊天室已解散"}, nil
}

// AddUser 管理员拉人入群
func (s *RoomService) AddUser(ctx context.Context, req *chat.AddUserReq) (*basic.Response, error) {
	// 校验令牌
	meta := adaptor.ExtractAuthMeta(ctx)
	if ok, err := s.TokenMapper.Validate(ctx, meta.GetToken(), meta.GetUserId()); err != nil || !ok {
		return nil, consts.ErrNotAuthentication
	}

	// 目标用户存在
	target, err := s.UserMapper.FindOne(ctx, req.TargetId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	// 聊天室存在且调用者是管理员
	r, err := s.RoomMapper.FindOne(ctx, req.RoomId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	caller, err := primitive.ObjectIDFromHex(meta.GetUserId())
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	if !lo.Contains(r.Admins, caller) {
		return nil, consts.ErrNotRoomAdmin
	}

	// 冲突检查
	if lo.Contains(r.AllMembers, target.ID) {
		return nil, consts.ErrMemberExists
	}

	if err = s.RoomMapper.AddMember(ctx, req.RoomId, target.ID); err != nil {
		log.Error("拉人入群失败: %v", err)
		return nil, err
	}

	return &basic.Response{Msg: "已加入聊天室"}, nil
}

// KickUser 移除成员：管理员可移除普通成员，管理员只能由群主移除，群主不可被移除
func (s *RoomService) KickUser(ctx context.Context, req *chat.KickUserReq) (*basic.Response, error) {
	// 校验令牌
	meta := adaptor.ExtractAuthMeta(ctx)
	if ok, err := s.TokenMapper.Validate(ctx, meta.GetToken(), meta.GetUserId()); err != nil || !ok {
		return nil, consts.ErrNotAuthentication
	}

	r, err := s.RoomMapper.FindOne(ctx, req.RoomId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	caller, err := primitive.ObjectIDFromHex(meta.GetUserId())
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	target, err := primitive.ObjectIDFromHex(req.TargetId)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}

	if !lo.Contains(r.Admins, caller) {
		return nil, consts.ErrNotRoomAdmin
	}
	if target == r.Owner {
		return nil, consts.ErrOwnerImmutable
	}
	if !lo.Contains(r.AllMembers, target) {
		return nil, consts.ErrMemberAbsent
	}
	// 管理员只能由群主移除
	if lo.Contains(r.Admins, target) && caller != r.Owner {
		return nil, consts.ErrNotRoomOwner
	}

	if err = s.RoomMapper.RemoveMember(ctx, req.RoomId, target); err != nil {
		log.Error("移除成员失败: %v", err)
		return nil, err
	}

	return &basic.Response{Msg: "已移出聊天室"}, nil
}

// PromoteAdmin 提升管理员，仅群主可操作
func (s *RoomService) PromoteAdmin(ctx context.Context, req *chat.PromoteAdminReq) (*basic.Response, error) {
	// 校验令牌
	meta := adaptor.ExtractAuthMeta(ctx)
	if ok, err := s.TokenMapper.Validate(ctx, meta.GetToken(), meta.GetUserId()); err != nil || !ok {
		return nil, consts.ErrNotAuthentication
	}

	r, err := s.RoomMapper.FindOne(ctx, req.RoomId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if r.Owner.Hex() != meta.GetUserId() {
		return nil, consts.ErrNotRoomOwner
	}

	target, err := primitive.ObjectIDFromHex(req.TargetId)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	if !lo.Contains(r.AllMembers, target) {
		return nil, consts.ErrMemberAbsent
	}
	if lo.Contains(r.Admins, target) {
		return nil, consts.ErrAdminExists
	}

	if err = s.RoomMapper.PromoteAdmin(ctx, req.RoomId, target); err != nil {
		log.Error("提升管理员失败: %v", err)
		return nil, err
	}

	return &basic.Response{Msg: "已提升为管理员"}, nil
}

// DemoteAdmin 撤销管理员，仅群主可操作，群主自身不可被降级
func (s *RoomService) DemoteAdmin(ctx context.Context, req *chat.DemoteAdminReq) (*basic.Response, error) {
	// 校验令牌
	meta := adaptor.ExtractAuthMeta(ctx)
	if ok, err := s.TokenMapper.Validate(ctx, meta.GetToken(), meta.GetUserId()); err != nil || !ok {
		return nil, consts.ErrNotAuthentication
	}

	r, err := s.RoomMapper.FindOne(ctx, req.RoomId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if r.Owner.Hex() != meta.GetUserId() {
		return nil, consts.ErrNotRoomOwner
	}

	target, err := primitive.ObjectIDFromHex(req.TargetId)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	if target == r.Owner {
		return nil, consts.ErrOwnerImmutable
	}
	if !lo.Contains(r.Admins, target) {
		return nil, consts.ErrAdminAbsent
	}

	if err = s.RoomMapper.DemoteAdmin(ctx, req.RoomId, target); err != nil {
		log.Error("撤销管理员失败: %v", err)
		return nil, err
	}

	return &basic.Response{Msg: "已撤销管理员"}, nil
}

// CreateMessage 发送消息，仅成员可发言
func (s *RoomService) CreateMessage(ctx context.Context, req *chat.CreateMessageReq) (*chat.CreateMessageResp, error) {
	// 校验令牌
	meta := adaptor.ExtractAuthMeta(ctx)
	if ok, err := s.TokenMapper.Validate(ctx, meta.GetToken(), meta.GetUserId()); err != nil || !ok {
		return nil, consts.ErrNotAuthentication
	}

	r, err := s.RoomMapper.FindOne(ctx, req.RoomId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	author, err := primitive.ObjectIDFromHex(meta.GetUserId())
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	if !lo.Contains(r.AllMembers, author) {
		return nil, consts.ErrNotRoomMember
	}

	var reply *primitive.ObjectID
	if req.Reply != nil {
		rid, err := primitive.ObjectIDFromHex(*req.Reply)
		if err != nil {
			return nil, consts.ErrInvalidObjectId
		}
		reply = &rid
	}

	m := &room.Message{
		ID:       primitive.NewObjectID(),
		Author:   author,
		Contents: req.Contents,
		Reply:    reply,
		Edited:   false,
	}
	if err = s.RoomMapper.AppendMessage(ctx, req.RoomId, m); err != nil {
		log.Error("发送消息失败: %v", err)
		return nil, err
	}

	return &chat.CreateMessageResp{Id: m.ID.Hex()}, nil
}

// EditMessage 编辑消息，仅作者本人可编辑，编辑后 edited 永久置真
func (s *RoomService) EditMessage(ctx context.Context, req *chat.EditMessageReq) (*basic.Response, error) {
	// 校验令牌
	meta := adaptor.ExtractAuthMeta(ctx)
	if ok, err := s.TokenMapper.Validate(ctx, meta.GetToken(), meta.GetUserId()); err != nil || !ok {
		return nil, consts.ErrNotAuthentication
	}

	if _, err := s.RoomMapper.FindOne(ctx, req.RoomId); err != nil {
		return nil, consts.ErrNotFound
	}

	author, err := primitive.ObjectIDFromHex(meta.GetUserId())
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	messageId, err := primitive.ObjectIDFromHex(req.MessageId)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}

	if err = s.RoomMapper.EditMessage(ctx, req.RoomId, messageId, author, req.NewContents); err != nil {
		return nil, err
	}

	return &basic.Response{Msg: "消息已更新"}, nil
}

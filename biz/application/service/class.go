package service

import (
	"context"
	"school-chat/biz/adaptor"
	"school-chat/biz/application/dto/basic"
	"school-chat/biz/application/dto/school/chat"
	"school-chat/biz/infrastructure/consts"
	"school-chat/biz/infrastructure/repository/class"
	"school-chat/biz/infrastructure/repository/token"
	"school-chat/biz/infrastructure/repository/user"
	"school-chat/biz/infrastructure/util/log"
	"time"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IClassService interface {
	CreateClass(ctx context.Context, req *chat.CreateClassReq) (*chat.CreateClassResp, error)
	GetClassInfo(ctx context.Context, req *chat.GetClassInfoReq) (*chat.GetClassInfoResp, error)
	AddStudent(ctx context.Context, req *chat.AddStudentReq) (*basic.Response, error)
	RemoveStudent(ctx context.Context, req *chat.RemoveStudentReq) (*basic.Response, error)
	CreateNotice(ctx context.Context, req *chat.CreateNoticeReq) (*chat.CreateNoticeResp, error)
	EditNotice(ctx context.Context, req *chat.EditNoticeReq) (*basic.Response, error)
	DeleteNotice(ctx context.Context, req *chat.DeleteNoticeReq) (*basic.Response, error)
	CreateAssignment(ctx context.Context, req *chat.CreateAssignmentReq) (*chat.CreateAssignmentResp, error)
	EditAssignment(ctx context.Context, req *chat.EditAssignmentReq) (*basic.Response, error)
	DeleteAssignment(ctx context.Context, req *chat.DeleteAssignmentReq) (*basic.Response, error)
}

type ClassService struct {
	ClassMapper class.Mapper
	UserMapper  user.Mapper
	TokenMapper token.Mapper
}

var ClassServiceSet = wire.NewSet(
	wire.Struct(new(ClassService), "*"),
	wire.Bind(new(IClassService), new(*ClassService)),
)

// CreateClass 创建班级，仅教师可操作，创建者即任课教师
func (s *ClassService) CreateClass(ctx context.Context, req *chat.CreateClassReq) (*chat.CreateClassResp, error) {
	// 校验令牌
	meta := adaptor.ExtractAuthMeta(ctx)
	if ok, err := s.TokenMapper.Validate(ctx, meta.GetToken(), meta.GetUserId()); err != nil || !ok {
		return nil, consts.ErrNotAuthentication
	}

	// 校验教师身份
	u, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if !u.Teacher {
		return nil, consts.ErrNotTeacher
	}

	c := &class.Class{
		ClassName: req.ClassName,
		Teacher:   u.ID,
	}
	if err = s.ClassMapper.Insert(ctx, c); err != nil {
		log.Error("创建班级失败: %v", err)
		return nil, err
	}

	return &chat.CreateClassResp{Id: c.ID.Hex()}, nil
}

// GetClassInfo 查询班级信息
func (s *ClassService) GetClassInfo(ctx context.Context, req *chat.GetClassInfoReq) (*chat.GetClassInfoResp, error) {
	// 校验令牌
	meta := adaptor.ExtractAuthMeta(ctx)
	if ok, err := s.TokenMapper.Validate(ctx, meta.GetToken(), meta.GetUserId()); err != nil || !ok {
		return nil, consts.ErrNotAuthentication
	}

	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	notices := lo.Map(c.Notices, func(n class.Notice, _ int) *chat.NoticeInfo {
		info := new(chat.NoticeInfo)
		_ = copier.Copy(info, &n)
		info.Id = n.ID.Hex()
		info.Author = n.Author.Hex()
		return info
	})
	assignments := lo.Map(c.Assignments, func(a class.Assignment, _ int) *chat.AssignmentInfo {
		info := new(chat.AssignmentInfo)
		_ = copier.Copy(info, &a)
		info.Id = a.ID.Hex()
		info.Author = a.Author.Hex()
		info.DueDate = a.DueDate.Unix()
		return info
	})

	return &chat.GetClassInfoResp{
		Class: &chat.ClassInfo{
			Id:          c.ID.Hex(),
			ClassName:   c.ClassName,
			Teacher:     c.Teacher.Hex(),
			Students:    lo.Map(c.Students, hexOf),
			Notices:     notices,
			Assignments: assignments,
		},
	}, nil
}

// AddStudent 任课教师把学生加入班级，教师身份的用户不能作为学生
func (s *ClassService) AddStudent(ctx context.Context, req *chat.AddStudentReq) (*basic.Response, error) {
	// 校验令牌
	meta := adaptor.ExtractAuthMeta(ctx)
	if ok, err := s.TokenMapper.Validate(ctx, meta.GetToken(), meta.GetUserId()); err != nil || !ok {
		return nil, consts.ErrNotAuthentication
	}

	// 目标用户存在且不是教师
	target, err := s.UserMapper.FindOne(ctx, req.TargetId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if target.Teacher {
		return nil, consts.ErrTargetTeacher
	}

	// 班级存在且调用者是任课教师
	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if c.Teacher.Hex() != meta.GetUserId() {
		return nil, consts.ErrNotClassTeacher
	}

	// 冲突检查
	if lo.Contains(c.Students, target.ID) {
		return nil, consts.ErrStudentExists
	}

	if err = s.ClassMapper.AddStudent(ctx, req.ClassId, target.ID); err != nil {
		log.Error("添加学生失败: %v", err)
		return nil, err
	}

	return &basic.Response{Msg: "已加入班级"}, nil
}

// RemoveStudent 任课教师把学生移出班级
func (s *ClassService) RemoveStudent(ctx context.Context, req *chat.RemoveStudentReq) (*basic.Response, error) {
	// 校验令牌
	meta := adaptor.ExtractAuthMeta(ctx)
	if ok, err := s.TokenMapper.Validate(ctx, meta.GetToken(), meta.GetUserId()); err != nil || !ok {
		return nil, consts.ErrNotAuthentication
	}

	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if c.Teacher.Hex() != meta.GetUserId() {
		return nil, consts.ErrNotClassTeacher
	}

	target, err := primitive.ObjectIDFromHex(req.TargetId)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	if !lo.Contains(c.Students, target) {
		return nil, consts.ErrStudentAbsent
	}

	if err = s.ClassMapper.RemoveStudent(ctx, req.ClassId, target); err != nil {
		log.Error("移除学生失败: %v", err)
		return nil, err
	}

	return &basic.Response{Msg: "已移出班级"}, nil
}

// CreateNotice 发布班级公告，仅任课教师可操作
func (s *ClassService) CreateNotice(ctx context.Context, req *chat.CreateNoticeReq) (*chat.CreateNoticeResp, error) {
	// 校验令牌
	meta := adaptor.ExtractAuthMeta(ctx)
	if ok, err := s.TokenMapper.Validate(ctx, meta.GetToken(), meta.GetUserId()); err != nil || !ok {
		return nil, consts.ErrNotAuthentication
	}

	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if c.Teacher.Hex() != meta.GetUserId() {
		return nil, consts.ErrNotClassTeacher
	}

	n := &class.Notice{
		ID:          primitive.NewObjectID(),
		Author:      c.Teacher,
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
	}
	if err = s.ClassMapper.AppendNotice(ctx, req.ClassId, n); err != nil {
		log.Error("发布公告失败: %v", err)
		return nil, err
	}

	return &chat.CreateNoticeResp{Id: n.ID.Hex()}, nil
}

// EditNotice 局部更新公告，只写入请求中给出的字段
func (s *ClassService) EditNotice(ctx context.Context, req *chat.EditNoticeReq) (*basic.Response, error) {
	// 校验令牌
	meta := adaptor.ExtractAuthMeta(ctx)
	if ok, err := s.TokenMapper.Validate(ctx, meta.GetToken(), meta.GetUserId()); err != nil || !ok {
		return nil, consts.ErrNotAuthentication
	}

	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if c.Teacher.Hex() != meta.GetUserId() {
		return nil, consts.ErrNotClassTeacher
	}

	noticeId, err := primitive.ObjectIDFromHex(req.NoticeId)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}

	patch := bson.M{}
	if req.Title != nil {
		patch["title"] = *req.Title
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.Image != nil {
		patch["image"] = *req.Image
	}
	if len(patch) == 0 {
		return nil, consts.ErrInvalidParams
	}

	if err = s.ClassMapper.UpdateNotice(ctx, req.ClassId, noticeId, patch); err != nil {
		return nil, err
	}

	return &basic.Response{Msg: "公告已更新"}, nil
}

// DeleteNotice 删除公告
func (s *ClassService) DeleteNotice(ctx context.Context, req *chat.DeleteNoticeReq) (*basic.Response, error) {
	// 校验令牌
	meta := adaptor.ExtractAuthMeta(ctx)
	if ok, err := s.TokenMapper.Validate(ctx, meta.GetToken(), meta.GetUserId()); err != nil || !ok {
		return nil, consts.ErrNotAuthentication
	}

	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if c.Teacher.Hex() != meta.GetUserId() {
		return nil, consts.ErrNotClassTeacher
	}

	noticeId, err := primitive.ObjectIDFromHex(req.NoticeId)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}

	if err = s.ClassMapper.RemoveNotice(ctx, req.ClassId, noticeId); err != nil {
		return nil, err
	}

	return &basic.Response{Msg: "公告已删除"}, nil
}

// CreateAssignment 布置作业，仅任课教师可操作
func (s *ClassService) CreateAssignment(ctx context.Context, req *chat.CreateAssignmentReq) (*chat.CreateAssignmentResp, error) {
	// 校验令牌
	meta := adaptor.ExtractAuthMeta(ctx)
	if ok, err := s.TokenMapper.Validate(ctx, meta.GetToken(), meta.GetUserId()); err != nil || !ok {
		return nil, consts.ErrNotAuthentication
	}

	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if c.Teacher.Hex() != meta.GetUserId() {
		return nil, consts.ErrNotClassTeacher
	}

	a := &class.Assignment{
		ID:          primitive.NewObjectID(),
		Author:      c.Teacher,
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		DueDate:     time.Unix(req.DueDate, 0),
	}
	if err = s.ClassMapper.AppendAssignment(ctx, req.ClassId, a); err != nil {
		log.Error("布置作业失败: %v", err)
		return nil, err
	}

	return &chat.CreateAssignmentResp{Id: a.ID.Hex()}, nil
}

// EditAssignment 局部更新作业，只写入请求中给出的字段
func (s *ClassService) EditAssignment(ctx context.Context, req *chat.EditAssignmentReq) (*basic.Response, error) {
	// 校验令牌
	meta := adaptor.ExtractAuthMeta(ctx)
	if ok, err := s.TokenMapper.Validate(ctx, meta.GetToken(), meta.GetUserId()); err != nil || !ok {
		return nil, consts.ErrNotAuthentication
	}

	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if c.Teacher.Hex() != meta.GetUserId() {
		return nil, consts.ErrNotClassTeacher
	}

	assignmentId, err := primitive.ObjectIDFromHex(req.AssignmentId)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}

	patch := bson.M{}
	if req.Title != nil {
		patch["title"] = *req.Title
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.Image != nil {
		patch["image"] = *req.Image
	}
	if req.DueDate != nil {
		patch["dueDate"] = time.Unix(*req.DueDate, 0)
	}
	if len(patch) == 0 {
		return nil, consts.ErrInvalidParams
	}

	if err = s.ClassMapper.UpdateAssignment(ctx, req.ClassId, assignmentId, patch); err != nil {
		return nil, err
	}

	return &basic.Response{Msg: "作业已更新"}, nil
}

// DeleteAssignment 删除作业
func (s *ClassService) DeleteAssignment(ctx context.Context, req *chat.DeleteAssignmentReq) (*basic.Response, error) {
	// 校验令牌
	meta := adaptor.ExtractAuthMeta(ctx)
	if ok, err := s.TokenMapper.Validate(ctx, meta.GetToken(), meta.GetUserId()); err != nil || !ok {
		return nil, consts.ErrNotAuthentication
	}

	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if c.Teacher.Hex() != meta.GetUserId() {
		return nil, consts.ErrNotClassTeacher
	}

	assignmentId, err := primitive.ObjectIDFromHex(req.AssignmentId)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}

	if err = s.ClassMapper.RemoveAssignment(ctx, req.ClassId, assignmentId); err != nil {
		return nil, err
	}

	return &basic.Response{Msg: "作业已删除"}, nil
}

package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 定义常量错误
var (
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("forbidden"))
	ErrNotAuthentication = NewErrno(codes.Unauthenticated, errors.New("not authentication"))
	ErrSignUpConflict    = NewErrno(codes.AlreadyExists, errors.New("该用户名或邮箱已被注册"))
	ErrSignIn            = NewErrno(codes.Unauthenticated, errors.New("用户名或密码错误"))
	ErrMissingAccount    = NewErrno(codes.InvalidArgument, errors.New("用户名和邮箱至少填写一项"))
	ErrNotTeacher        = NewErrno(codes.PermissionDenied, errors.New("仅教师可以执行该操作"))
	ErrNotClassTeacher   = NewErrno(codes.PermissionDenied, errors.New("仅任课教师可以执行该操作"))
	ErrTargetTeacher     = NewErrno(codes.PermissionDenied, errors.New("教师不能作为学生加入班级"))
	ErrStudentExists     = NewErrno(codes.AlreadyExists, errors.New("该学生已在班级中"))
	ErrStudentAbsent     = NewErrno(codes.AlreadyExists, errors.New("该学生不在班级中"))
	ErrNotRoomOwner      = NewErrno(codes.PermissionDenied, errors.New("仅群主可以执行该操作"))
	ErrNotRoomAdmin      = NewErrno(codes.PermissionDenied, errors.New("仅管理员可以执行该操作"))
	ErrNotRoomMember     = NewErrno(codes.PermissionDenied, errors.New("用户不在聊天室中"))
	ErrOwnerImmutable    = NewErrno(codes.PermissionDenied, errors.New("不能移除或降级群主"))
	ErrAdminExists       = NewErrno(codes.AlreadyExists, errors.New("该成员已是管理员"))
	ErrAdminAbsent       = NewErrno(codes.AlreadyExists, errors.New("该成员不是管理员"))
	ErrMemberExists      = NewErrno(codes.AlreadyExists, errors.New("该用户已在聊天室中"))
	ErrMemberAbsent      = NewErrno(codes.AlreadyExists, errors.New("该用户不在聊天室中"))
	ErrApplySignedUrl    = NewErrno(codes.Internal, errors.New("申请加签上传地址失败"))
)

// ErrInvalidParams 调用时错误
var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("参数错误"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("无效的id "))
	ErrInsert          = NewErrno(codes.Internal, errors.New("写入失败"))
	ErrUpdate          = NewErrno(codes.Internal, errors.New("更新失败"))
	ErrDelete          = NewErrno(codes.Internal, errors.New("删除失败"))
)

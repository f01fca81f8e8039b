package service

import (
	"context"
	"errors"
	"school-chat/biz/application/dto/school/chat"
	"school-chat/biz/infrastructure/consts"
	"school-chat/biz/infrastructure/repository/user"
	"testing"

	"github.com/samber/lo"
)

type classFixture struct {
	users   *fakeUserMapper
	tokens  *fakeTokenMapper
	classes *fakeClassMapper
	svc     *ClassService
}

func newClassFixture() *classFixture {
	f := &classFixture{
		users:   newFakeUserMapper(),
		tokens:  newFakeTokenMapper(),
		classes: newFakeClassMapper(),
	}
	f.svc = &ClassService{
		ClassMapper: f.classes,
		UserMapper:  f.users,
		TokenMapper: f.tokens,
	}
	return f
}

func (f *classFixture) addUser(t *testing.T, name string, teacher bool) (string, context.Context) {
	t.Helper()
	u := &user.User{UserName: name, Email: name + "@school.edu", Password: "pw", Teacher: teacher}
	if err := f.users.Insert(context.Background(), u); err != nil {
		t.Fatalf("insert user %s: %v", name, err)
	}
	tok, err := f.tokens.Insert(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("issue token for %s: %v", name, err)
	}
	return u.ID.Hex(), authedCtx(tok, u.ID.Hex())
}

func (f *classFixture) createClass(t *testing.T, ctx context.Context, name string) string {
	t.Helper()
	resp, err := f.svc.CreateClass(ctx, &chat.CreateClassReq{ClassName: name})
	if err != nil {
		t.Fatalf("CreateClass(%s) failed: %v", name, err)
	}
	return resp.Id
}

func TestCreateClass(t *testing.T) {
	f := newClassFixture()
	teacherId, teacherCtx := f.addUser(t, "teacher", true)
	_, studentCtx := f.addUser(t, "student", false)

	classId := f.createClass(t, teacherCtx, "7A")
	c, err := f.classes.FindOne(context.Background(), classId)
	if err != nil {
		t.Fatalf("class not stored: %v", err)
	}
	if c.Teacher.Hex() != teacherId {
		t.Errorf("class teacher = %s, want creator %s", c.Teacher.Hex(), teacherId)
	}

	// 学生不能创建班级
	if _, err = f.svc.CreateClass(studentCtx, &chat.CreateClassReq{ClassName: "7B"}); !errors.Is(err, consts.ErrNotTeacher) {
		t.Errorf("student CreateClass = %v, want ErrNotTeacher", err)
	}

	// 未登录一律拒绝
	if _, err = f.svc.CreateClass(context.Background(), &chat.CreateClassReq{ClassName: "7C"}); !errors.Is(err, consts.ErrNotAuthentication) {
		t.Errorf("anonymous CreateClass = %v, want ErrNotAuthentication", err)
	}
}

func TestAddStudent(t *testing.T) {
	f := newClassFixture()
	_, teacherCtx := f.addUser(t, "teacher", true)
	otherTeacherId, otherTeacherCtx := f.addUser(t, "other", true)
	studentId, _ := f.addUser(t, "student", false)
	classId := f.createClass(t, teacherCtx, "7A")

	if _, err := f.svc.AddStudent(teacherCtx, &chat.AddStudentReq{ClassId: classId, TargetId: studentId}); err != nil {
		t.Fatalf("AddStudent failed: %v", err)
	}

	tests := []struct {
		name    string
		ctx     context.Context
		req     *chat.AddStudentReq
		wantErr error
	}{
		{"duplicate add", teacherCtx, &chat.AddStudentReq{ClassId: classId, TargetId: studentId}, consts.ErrStudentExists},
		{"teacher as student", teacherCtx, &chat.AddStudentReq{ClassId: classId, TargetId: otherTeacherId}, consts.ErrTargetTeacher},
		{"not the class teacher", otherTeacherCtx, &chat.AddStudentReq{ClassId: classId, TargetId: studentId}, consts.ErrNotClassTeacher},
		{"unknown target", teacherCtx, &chat.AddStudentReq{ClassId: classId, TargetId: "0123456789abcdef01234567"}, consts.ErrNotFound},
		{"unknown class", teacherCtx, &chat.AddStudentReq{ClassId: "0123456789abcdef01234567", TargetId: studentId}, consts.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.svc.AddStudent(tt.ctx, tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("AddStudent = %v, want %v", err, tt.wantErr)
			}
		})
	}

	// 失败的调用不得改动名单
	c, _ := f.classes.FindOne(context.Background(), classId)
	if len(c.Students) != 1 {
		t.Errorf("students = %d, want 1", len(c.Students))
	}
}

func TestRemoveStudent(t *testing.T) {
	f := newClassFixture()
	_, teacherCtx := f.addUser(t, "teacher", true)
	studentId, _ := f.addUser(t, "student", false)
	classId := f.createClass(t, teacherCtx, "7A")

	// 不在班级中时移除应报冲突
	if _, err := f.svc.RemoveStudent(teacherCtx, &chat.RemoveStudentReq{ClassId: classId, TargetId: studentId}); !errors.Is(err, consts.ErrStudentAbsent) {
		t.Errorf("RemoveStudent absent = %v, want ErrStudentAbsent", err)
	}

	if _, err := f.svc.AddStudent(teacherCtx, &chat.AddStudentReq{ClassId: classId, TargetId: studentId}); err != nil {
		t.Fatalf("AddStudent failed: %v", err)
	}
	if _, err := f.svc.RemoveStudent(teacherCtx, &chat.RemoveStudentReq{ClassId: classId, TargetId: studentId}); err != nil {
		t.Fatalf("RemoveStudent failed: %v", err)
	}

	c, _ := f.classes.FindOne(context.Background(), classId)
	if len(c.Students) != 0 {
		t.Errorf("students = %d, want 0", len(c.Students))
	}
}

func TestNoticeLifecycle(t *testing.T) {
	f := newClassFixture()
	_, teacherCtx := f.addUser(t, "teacher", true)
	studentId, studentCtx := f.addUser(t, "student", false)
	classId := f.createClass(t, teacherCtx, "7A")
	if _, err := f.svc.AddStudent(teacherCtx, &chat.AddStudentReq{ClassId: classId, TargetId: studentId}); err != nil {
		t.Fatalf("AddStudent failed: %v", err)
	}

	// 学生发公告应被拒，且公告列表不变
	if _, err := f.svc.CreateNotice(studentCtx, &chat.CreateNoticeReq{ClassId: classId, Title: "t", Description: "d"}); !errors.Is(err, consts.ErrNotClassTeacher) {
		t.Errorf("student CreateNotice = %v, want ErrNotClassTeacher", err)
	}
	c, _ := f.classes.FindOne(context.Background(), classId)
	if len(c.Notices) != 0 {
		t.Fatalf("notices = %d after rejected create, want 0", len(c.Notices))
	}

	created, err := f.svc.CreateNotice(teacherCtx, &chat.CreateNoticeReq{ClassId: classId, Title: "运动会", Description: "周五举行"})
	if err != nil {
		t.Fatalf("CreateNotice failed: %v", err)
	}

	// 局部更新：只改标题，描述保持原样
	if _, err = f.svc.EditNotice(teacherCtx, &chat.EditNoticeReq{ClassId: classId, NoticeId: created.Id, Title: lo.ToPtr("运动会改期")}); err != nil {
		t.Fatalf("EditNotice failed: %v", err)
	}
	c, _ = f.classes.FindOne(context.Background(), classId)
	if c.Notices[0].Title != "运动会改期" || c.Notices[0].Description != "周五举行" {
		t.Errorf("notice after edit = %+v", c.Notices[0])
	}

	// 空补丁视为参数错误
	if _, err = f.svc.EditNotice(teacherCtx, &chat.EditNoticeReq{ClassId: classId, NoticeId: created.Id}); !errors.Is(err, consts.ErrInvalidParams) {
		t.Errorf("empty patch = %v, want ErrInvalidParams", err)
	}

	// 不存在的公告
	if _, err = f.svc.EditNotice(teacherCtx, &chat.EditNoticeReq{ClassId: classId, NoticeId: "0123456789abcdef01234567", Title: lo.ToPtr("x")}); !errors.Is(err, consts.ErrNotFound) {
		t.Errorf("edit unknown notice = %v, want ErrNotFound", err)
	}

	if _, err = f.svc.DeleteNotice(teacherCtx, &chat.DeleteNoticeReq{ClassId: classId, NoticeId: created.Id}); err != nil {
		t.Fatalf("DeleteNotice failed: %v", err)
	}
	if _, err = f.svc.DeleteNotice(teacherCtx, &chat.DeleteNoticeReq{ClassId: classId, NoticeId: created.Id}); !errors.Is(err, consts.ErrNotFound) {
		t.Errorf("double delete = %v, want ErrNotFound", err)
	}
}

func TestAssignmentLifecycle(t *testing.T) {
	f := newClassFixture()
	_, teacherCtx := f.addUser(t, "teacher", true)
	classId := f.createClass(t, teacherCtx, "7A")

	created, err := f.svc.CreateAssignment(teacherCtx, &chat.CreateAssignmentReq{
		ClassId:     classId,
		Title:       "数学作业",
		Description: "练习册第三章",
		DueDate:     1760000000,
	})
	if err != nil {
		t.Fatalf("CreateAssignment failed: %v", err)
	}

	if _, err = f.svc.EditAssignment(teacherCtx, &chat.EditAssignmentReq{
		ClassId:      classId,
		AssignmentId: created.Id,
		DueDate:      lo.ToPtr(int64(1761000000)),
	}); err != nil {
		t.Fatalf("EditAssignment failed: %v", err)
	}
	c, _ := f.classes.FindOne(context.Background(), classId)
	if got := c.Assignments[0].DueDate.Unix(); got != 1761000000 {
		t.Errorf("dueDate = %d, want 1761000000", got)
	}
	if c.Assignments[0].Title != "数学作业" {
		t.Errorf("title changed by partial edit: %s", c.Assignments[0].Title)
	}

	if _, err = f.svc.DeleteAssignment(teacherCtx, &chat.DeleteAssignmentReq{ClassId: classId, AssignmentId: created.Id}); err != nil {
		t.Fatalf("DeleteAssignment failed: %v", err)
	}
}

func TestGetClassInfo(t *testing.T) {
	f := newClassFixture()
	teacherId, teacherCtx := f.addUser(t, "teacher", true)
	classId := f.createClass(t, teacherCtx, "7A")
	if _, err := f.svc.CreateNotice(teacherCtx, &chat.CreateNoticeReq{ClassId: classId, Title: "t", Description: "d"}); err != nil {
		t.Fatalf("CreateNotice failed: %v", err)
	}

	resp, err := f.svc.GetClassInfo(teacherCtx, &chat.GetClassInfoReq{ClassId: classId})
	if err != nil {
		t.Fatalf("GetClassInfo failed: %v", err)
	}
	if resp.Class.ClassName != "7A" || resp.Class.Teacher != teacherId {
		t.Errorf("class info = %+v", resp.Class)
	}
	if len(resp.Class.Notices) != 1 || resp.Class.Notices[0].Title != "t" {
		t.Errorf("notices = %+v", resp.Class.Notices)
	}

	if _, err = f.svc.GetClassInfo(teacherCtx, &chat.GetClassInfoReq{ClassId: "0123456789abcdef01234567"}); !errors.Is(err, consts.ErrNotFound) {
		t.Errorf("unknown class = %v, want ErrNotFound", err)
	}
}

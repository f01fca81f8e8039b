package service

import (
	"context"
	"school-chat/biz/infrastructure/consts"
	"school-chat/biz/infrastructure/repository/class"
	"school-chat/biz/infrastructure/repository/room"
	"school-chat/biz/infrastructure/repository/user"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 内存版 mapper，语义与 Mongo 实现保持一致：
// 条件更新失败时返回同样的领域错误

type fakeTokenMapper struct {
	tokens map[string]string
}

func newFakeTokenMapper() *fakeTokenMapper {
	return &fakeTokenMapper{tokens: map[string]string{}}
}

func (f *fakeTokenMapper) Insert(_ context.Context, u primitive.ObjectID) (string, error) {
	tok := primitive.NewObjectID().Hex()
	f.tokens[tok] = u.Hex()
	return tok, nil
}

func (f *fakeTokenMapper) Validate(_ context.Context, token, u string) (bool, error) {
	owner, ok := f.tokens[token]
	return ok && owner == u, nil
}

func (f *fakeTokenMapper) Delete(_ context.Context, token string) error {
	if _, ok := f.tokens[token]; !ok {
		return consts.ErrNotFound
	}
	delete(f.tokens, token)
	return nil
}

type fakeUserMapper struct {
	users map[string]*user.User
}

func newFakeUserMapper() *fakeUserMapper {
	return &fakeUserMapper{users: map[string]*user.User{}}
}

func (f *fakeUserMapper) Insert(_ context.Context, u *user.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.Classes == nil {
		u.Classes = []primitive.ObjectID{}
	}
	if u.Rooms == nil {
		u.Rooms = []primitive.ObjectID{}
	}
	f.users[u.ID.Hex()] = u
	return nil
}

func (f *fakeUserMapper) FindOne(_ context.Context, id string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserMapper) FindOneByUserName(_ context.Context, userName string) (*user.User, error) {
	for _, u := range f.users {
		if u.UserName == userName {
			return u, nil
		}
	}
	return nil, consts.ErrNotFound
}

func (f *fakeUserMapper) FindOneByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, consts.ErrNotFound
}

func (f *fakeUserMapper) FindOneByAccount(_ context.Context, userName, email string) (*user.User, error) {
	for _, u := range f.users {
		if u.UserName == userName || u.Email == email {
			return u, nil
		}
	}
	return nil, consts.ErrNotFound
}

func (f *fakeUserMapper) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return consts.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeClassMapper struct {
	classes map[string]*class.Class
}

func newFakeClassMapper() *fakeClassMapper {
	return &fakeClassMapper{classes: map[string]*class.Class{}}
}

func (f *fakeClassMapper) Insert(_ context.Context, c *class.Class) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if c.Students == nil {
		c.Students = []primitive.ObjectID{}
	}
	if c.Notices == nil {
		c.Notices = []class.Notice{}
	}
	if c.Assignments == nil {
		c.Assignments = []class.Assignment{}
	}
	f.classes[c.ID.Hex()] = c
	return nil
}

func (f *fakeClassMapper) FindOne(_ context.Context, id string) (*class.Class, error) {
	c, ok := f.classes[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return c, nil
}

func (f *fakeClassMapper) AddStudent(_ context.Context, id string, target primitive.ObjectID) error {
	c, ok := f.classes[id]
	if !ok {
		return consts.ErrNotFound
	}
	if lo.Contains(c.Students, target) {
		return consts.ErrStudentExists
	}
	c.Students = append(c.Students, target)
	return nil
}

func (f *fakeClassMapper) RemoveStudent(_ context.Context, id string, target primitive.ObjectID) error {
	c, ok := f.classes[id]
	if !ok {
		return consts.ErrNotFound
	}
	if !lo.Contains(c.Students, target) {
		return consts.ErrStudentAbsent
	}
	c.Students = lo.Without(c.Students, target)
	return nil
}

func (f *fakeClassMapper) AppendNotice(_ context.Context, id string, n *class.Notice) error {
	c, ok := f.classes[id]
	if !ok {
		return consts.ErrNotFound
	}
	c.Notices = append(c.Notices, *n)
	return nil
}

func (f *fakeClassMapper) UpdateNotice(_ context.Context, id string, noticeId primitive.ObjectID, patch bson.M) error {
	c, ok := f.classes[id]
	if !ok {
		return consts.ErrNotFound
	}
	for i := range c.Notices {
		if c.Notices[i].ID != noticeId {
			continue
		}
		if v, ok := patch["title"]; ok {
			c.Notices[i].Title = v.(string)
		}
		if v, ok := patch["description"]; ok {
			c.Notices[i].Description = v.(string)
		}
		if v, ok := patch["image"]; ok {
			img := v.(string)
			c.Notices[i].Image = &img
		}
		return nil
	}
	return consts.ErrNotFound
}

func (f *fakeClassMapper) RemoveNotice(_ context.Context, id string, noticeId primitive.ObjectID) error {
	c, ok := f.classes[id]
	if !ok {
		return consts.ErrNotFound
	}
	before := len(c.Notices)
	c.Notices = lo.Filter(c.Notices, func(n class.Notice, _ int) bool { return n.ID != noticeId })
	if len(c.Notices) == before {
		return consts.ErrNotFound
	}
	return nil
}

func (f *fakeClassMapper) AppendAssignment(_ context.Context, id string, a *class.Assignment) error {
	c, ok := f.classes[id]
	if !ok {
		return consts.ErrNotFound
	}
	c.Assignments = append(c.Assignments, *a)
	return nil
}

func (f *fakeClassMapper) UpdateAssignment(_ context.Context, id string, assignmentId primitive.ObjectID, patch bson.M) error {
	c, ok := f.classes[id]
	if !ok {
		return consts.ErrNotFound
	}
	for i := range c.Assignments {
		if c.Assignments[i].ID != assignmentId {
			continue
		}
		if v, ok := patch["title"]; ok {
			c.Assignments[i].Title = v.(string)
		}
		if v, ok := patch["description"]; ok {
			c.Assignments[i].Description = v.(string)
		}
		if v, ok := patch["image"]; ok {
			img := v.(string)
			c.Assignments[i].Image = &img
		}
		if v, ok := patch["dueDate"]; ok {
			c.Assignments[i].DueDate = v.(time.Time)
		}
		return nil
	}
	return consts.ErrNotFound
}

func (f *fakeClassMapper) RemoveAssignment(_ context.Context, id string, assignmentId primitive.ObjectID) error {
	c, ok := f.classes[id]
	if !ok {
		return consts.ErrNotFound
	}
	before := len(c.Assignments)
	c.Assignments = lo.Filter(c.Assignments, func(a class.Assignment, _ int) bool { return a.ID != assignmentId })
	if len(c.Assignments) == before {
		return consts.ErrNotFound
	}
	return nil
}

type fakeRoomMapper struct {
	rooms map[string]*room.Room
}

func newFakeRoomMapper() *fakeRoomMapper {
	return &fakeRoomMapper{rooms: map[string]*room.Room{}}
}

func (f *fakeRoomMapper) Insert(_ context.Context, r *room.Room) error {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	if r.Messages == nil {
		r.Messages = []room.Message{}
	}
	f.rooms[r.ID.Hex()] = r
	return nil
}

func (f *fakeRoomMapper) FindOne(_ context.Context, id string) (*room.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return r, nil
}

func (f *fakeRoomMapper) Delete(_ context.Context, id string) error {
	if _, ok := f.rooms[id]; !ok {
		return consts.ErrNotFound
	}
	delete(f.rooms, id)
	return nil
}

func (f *fakeRoomMapper) AddMember(_ context.Context, id string, target primitive.ObjectID) error {
	r, ok := f.rooms[id]
	if !ok {
		return consts.ErrNotFound
	}
	if lo.Contains(r.AllMembers, target) {
		return consts.ErrMemberExists
	}
	r.AllMembers = append(r.AllMembers, target)
	return nil
}

func (f *fakeRoomMapper) RemoveMember(_ context.Context, id string, target primitive.ObjectID) error {
	r, ok := f.rooms[id]
	if !ok {
		return consts.ErrNotFound
	}
	if target == r.Owner || !lo.Contains(r.AllMembers, target) {
		return consts.ErrMemberAbsent
	}
	r.AllMembers = lo.Without(r.AllMembers, target)
	r.Admins = lo.Without(r.Admins, target)
	return nil
}

func (f *fakeRoomMapper) PromoteAdmin(_ context.Context, id string, target primitive.ObjectID) error {
	r, ok := f.rooms[id]
	if !ok {
		return consts.ErrNotFound
	}
	if !lo.Contains(r.AllMembers, target) || lo.Contains(r.Admins, target) {
		return consts.ErrAdminExists
	}
	r.Admins = append(r.Admins, target)
	return nil
}

func (f *fakeRoomMapper) DemoteAdmin(_ context.Context, id string, target primitive.ObjectID) error {
	r, ok := f.rooms[id]
	if !ok {
		return consts.ErrNotFound
	}
	if target == r.Owner || !lo.Contains(r.Admins, target) {
		return consts.ErrAdminAbsent
	}
	r.Admins = lo.Without(r.Admins, target)
	return nil
}

func (f *fakeRoomMapper) AppendMessage(_ context.Context, id string, m *room.Message) error {
	r, ok := f.rooms[id]
	if !ok {
		return consts.ErrNotFound
	}
	r.Messages = append(r.Messages, *m)
	return nil
}

func (f *fakeRoomMapper) EditMessage(_ context.Context, id string, messageId, author primitive.ObjectID, contents string) error {
	r, ok := f.rooms[id]
	if !ok {
		return consts.ErrNotFound
	}
	for i := range r.Messages {
		if r.Messages[i].ID == messageId && r.Messages[i].Author == author {
			r.Messages[i].Contents = contents
			r.Messages[i].Edited = true
			return nil
		}
	}
	return consts.ErrNotFound
}

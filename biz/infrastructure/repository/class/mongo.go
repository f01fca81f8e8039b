package class

import (
	"context"
	"school-chat/biz/infrastructure/config"
	"school-chat/biz/infrastructure/consts"
	"school-chat/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	prefixClassCacheKey = "cache:class"
	ClassCollectionName = "classes"
)

type Mapper interface {
	Insert(ctx context.Context, class *Class) error
	FindOne(ctx context.Context, id string) (*Class, error)
	AddStudent(ctx context.Context, id string, target primitive.ObjectID) error
	RemoveStudent(ctx context.Context, id string, target primitive.ObjectID) error
	AppendNotice(ctx context.Context, id string, notice *Notice) error
	UpdateNotice(ctx context.Context, id string, noticeId primitive.ObjectID, patch bson.M) error
	RemoveNotice(ctx context.Context, id string, noticeId primitive.ObjectID) error
	AppendAssignment(ctx context.Context, id string, assignment *Assignment) error
	UpdateAssignment(ctx context.Context, id string, assignmentId primitive.ObjectID, patch bson.M) error
	RemoveAssignment(ctx context.Context, id string, assignmentId primitive.ObjectID) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewClassMongoMapper collection: %s", ClassCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, ClassCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, class *Class) error {
	if class.ID.IsZero() {
		class.ID = primitive.NewObjectID()
	}
	if class.Students == nil {
		class.Students = []primitive.ObjectID{}
	}
	if class.Notices == nil {
		class.Notices = []Notice{}
	}
	if class.Assignments == nil {
		class.Assignments = []Assignment{}
	}
	_, err := m.conn.InsertOneNoCache(ctx, class)
	if err != nil {
		return consts.ErrInsert
	}
	return nil
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Class, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var c Class
	err = m.conn.FindOneNoCache(ctx, &c, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &c, nil
}

// AddStudent 条件写入：过滤器断言目标不在名单中，并发下竞争降级为冲突而非重复
func (m *MongoMapper) AddStudent(ctx context.Context, id string, target primitive.ObjectID) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	res, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{consts.ID: oid, consts.Students: bson.M{"$ne": target}},
		bson.M{"$push": bson.M{consts.Students: target}})
	if err != nil {
		return consts.ErrUpdate
	}
	if res.ModifiedCount == 0 {
		return consts.ErrStudentExists
	}
	return nil
}

func (m *MongoMapper) RemoveStudent(ctx context.Context, id string, target primitive.ObjectID) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	res, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{consts.ID: oid, consts.Students: target},
		bson.M{"$pull": bson.M{consts.Students: target}})
	if err != nil {
		return consts.ErrUpdate
	}
	if res.ModifiedCount == 0 {
		return consts.ErrStudentAbsent
	}
	return nil
}

func (m *MongoMapper) AppendNotice(ctx context.Context, id string, notice *Notice) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateByIDNoCache(ctx, oid, bson.M{"$push": bson.M{consts.Notices: notice}})
	if err != nil {
		return consts.ErrUpdate
	}
	return nil
}

// UpdateNotice 按内嵌 _id 定位后做字段级更新，不依赖数组下标
func (m *MongoMapper) UpdateNotice(ctx context.Context, id string, noticeId primitive.ObjectID, patch bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	set := bson.M{}
	for field, value := range patch {
		set[consts.Notices+".$."+field] = value
	}
	res, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{consts.ID: oid, consts.Notices + "._id": noticeId},
		bson.M{"$set": set})
	if err != nil {
		return consts.ErrUpdate
	}
	if res.MatchedCount == 0 {
		return consts.ErrNotFound
	}
	return nil
}

func (m *MongoMapper) RemoveNotice(ctx context.Context, id string, noticeId primitive.ObjectID) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	res, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{consts.ID: oid, consts.Notices + "._id": noticeId},
		bson.M{"$pull": bson.M{consts.Notices: bson.M{"_id": noticeId}}})
	if err != nil {
		return consts.ErrUpdate
	}
	if res.MatchedCount == 0 {
		return consts.ErrNotFound
	}
	return nil
}

func (m *MongoMapper) AppendAssignment(ctx context.Context, id string, assignment *Assignment) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateByIDNoCache(ctx, oid, bson.M{"$push": bson.M{consts.Assignments: assignment}})
	if err != nil {
		return consts.ErrUpdate
	}
	return nil
}

func (m *MongoMapper) UpdateAssignment(ctx context.Context, id string, assignmentId primitive.ObjectID, patch bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	set := bson.M{}
	for field, value := range patch {
		set[consts.Assignments+".$."+field] = value
	}
	res, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{consts.ID: oid, consts.Assignments + "._id": assignmentId},
		bson.M{"$set": set})
	if err != nil {
		return consts.ErrUpdate
	}
	if res.MatchedCount == 0 {
		return consts.ErrNotFound
	}
	return nil
}

func (m *MongoMapper) RemoveAssignment(ctx context.Context, id string, assignmentId primitive.ObjectID) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	res, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{consts.ID: oid, consts.Assignments + "._id": assignmentId},
		bson.M{"$pull": bson.M{consts.Assignments: bson.M{"_id": assignmentId}}})
	if err != nil {
		return consts.ErrUpdate
	}
	if res.MatchedCount == 0 {
		return consts.ErrNotFound
	}
	return nil
}

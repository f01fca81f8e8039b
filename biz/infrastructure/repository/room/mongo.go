package room

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
	prefixRoomCacheKey = "cache:room"
	RoomCollectionName = "rooms"
)

type Mapper interface {
	Insert(ctx context.Context, room *Room) error
	FindOne(ctx context.Context, id string) (*Room, error)
	Delete(ctx context.Context, id string) error
	AddMember(ctx context.Context, id string, target primitive.ObjectID) error
	RemoveMember(ctx context.Context, id string, target primitive.ObjectID) error
	PromoteAdmin(ctx context.Context, id string, target primitive.ObjectID) error
	DemoteAdmin(ctx context.Context, id string, target primitive.ObjectID) error
	AppendMessage(ctx context.Context, id string, message *Message) error
	EditMessage(ctx context.Context, id string, messageId, author primitive.ObjectID, contents string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewRoomMongoMapper collection: %s", RoomCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, RoomCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, room *Room) error {
	if room.ID.IsZero() {
		room.ID = primitive.NewObjectID()
	}
	if room.Messages == nil {
		room.Messages = []Message{}
	}
	_, err := m.conn.InsertOneNoCache(ctx, room)
	if err != nil {
		return consts.ErrInsert
	}
	return nil
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Room, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var r Room
	err = m.conn.FindOneNoCache(ctx, &r, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &r, nil
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	count, err := m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	if err != nil {
		return consts.ErrDelete
	}
	if count == 0 {
		return consts.ErrNotFound
	}
	return nil
}

// AddMember 条件写入：过滤器断言目标尚未入群，并发下竞争降级为冲突而非重复
func (m *MongoMapper) AddMember(ctx context.Context, id string, target primitive.ObjectID) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	res, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{consts.ID: oid, consts.AllMembers: bson.M{"$ne": target}},
		bson.M{"$push": bson.M{consts.AllMembers: target}})
	if err != nil {
		return consts.ErrUpdate
	}
	if res.ModifiedCount == 0 {
		return consts.ErrMemberExists
	}
	return nil
}

// RemoveMember 同时从成员与管理员名单移除；过滤器保证群主永远不会被移除
func (m *MongoMapper) RemoveMember(ctx context.Context, id string, target primitive.ObjectID) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	res, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{
			consts.ID:         oid,
			consts.Owner:      bson.M{"$ne": target},
			consts.AllMembers: target,
		},
		bson.M{"$pull": bson.M{
			consts.AllMembers: target,
			consts.Admins:     target,
		}})
	if err != nil {
		return consts.ErrUpdate
	}
	if res.ModifiedCount == 0 {
		return consts.ErrMemberAbsent
	}
	return nil
}

func (m *MongoMapper) PromoteAdmin(ctx context.Context, id string, target primitive.ObjectID) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	res, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{
			consts.ID:         oid,
			consts.AllMembers: target,
			consts.Admins:     bson.M{"$ne": target},
		},
		bson.M{"$push": bson.M{consts.Admins: target}})
	if err != nil {
		return consts.ErrUpdate
	}
	if res.ModifiedCount == 0 {
		return consts.ErrAdminExists
	}
	return nil
}

func (m *MongoMapper) DemoteAdmin(ctx context.Context, id string, target primitive.ObjectID) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	res, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{
			consts.ID:     oid,
			consts.Owner:  bson.M{"$ne": target},
			consts.Admins: target,
		},
		bson.M{"$pull": bson.M{consts.Admins: target}})
	if err != nil {
		return consts.ErrUpdate
	}
	if res.ModifiedCount == 0 {
		return consts.ErrAdminAbsent
	}
	return nil
}

func (m *MongoMapper) AppendMessage(ctx context.Context, id string, message *Message) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateByIDNoCache(ctx, oid, bson.M{"$push": bson.M{consts.Messages: message}})
	if err != nil {
		return consts.ErrUpdate
	}
	return nil
}

// EditMessage 按消息 _id 加作者联合匹配后做定位更新，不依赖数组下标；
// 非作者与不存在同样返回 not found
func (m *MongoMapper) EditMessage(ctx context.Context, id string, messageId, author primitive.ObjectID, contents string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	res, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{
			consts.ID: oid,
			consts.Messages: bson.M{"$elemMatch": bson.M{
				"_id":    messageId,
				"author": author,
			}},
		},
		bson.M{"$set": bson.M{
			consts.Messages + ".$.contents": contents,
			consts.Messages + ".$.edited":   true,
		}})
	if err != nil {
		return consts.ErrUpdate
	}
	if res.MatchedCount == 0 {
		return consts.ErrNotFound
	}
	return nil
}

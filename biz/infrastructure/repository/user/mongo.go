package user

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
	prefixUserCacheKey = "cache:user"
	UserCollectionName = "users"
)

type Mapper interface {
	Insert(ctx context.Context, user *User) error
	FindOne(ctx context.Context, id string) (*User, error)
	FindOneByUserName(ctx context.Context, userName string) (*User, error)
	FindOneByEmail(ctx context.Context, email string) (*User, error)
	FindOneByAccount(ctx context.Context, userName, email string) (*User, error)
	Delete(ctx context.Context, id string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewUserMongoMapper collection: %s", UserCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, UserCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, user *User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.Classes == nil {
		user.Classes = []primitive.ObjectID{}
	}
	if user.Rooms == nil {
		user.Rooms = []primitive.ObjectID{}
	}
	_, err := m.conn.InsertOneNoCache(ctx, user)
	if err != nil {
		return consts.ErrInsert
	}
	return nil
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var u User
	err = m.conn.FindOneNoCache(ctx, &u, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &u, nil
}

func (m *MongoMapper) FindOneByUserName(ctx context.Context, userName string) (*User, error) {
	var u User
	err := m.conn.FindOneNoCache(ctx, &u, bson.M{
		consts.UserName: userName,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &u, nil
}

func (m *MongoMapper) FindOneByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := m.conn.FindOneNoCache(ctx, &u, bson.M{
		consts.Email: email,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &u, nil
}

// FindOneByAccount 按用户名或邮箱查重，注册前使用
func (m *MongoMapper) FindOneByAccount(ctx context.Context, userName, email string) (*User, error) {
	var u User
	err := m.conn.FindOneNoCache(ctx, &u, bson.M{
		"$or": bson.A{
			bson.M{consts.UserName: userName},
			bson.M{consts.Email: email},
		},
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &u, nil
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

package token

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
	prefixTokenCacheKey = "cache:token"
	TokenCollectionName = "tokens"
)

type Mapper interface {
	Insert(ctx context.Context, user primitive.ObjectID) (string, error)
	Validate(ctx context.Context, token, user string) (bool, error)
	Delete(ctx context.Context, token string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewTokenMongoMapper collection: %s", TokenCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, TokenCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

// Insert 签发一个新令牌，返回其十六进制形式
func (m *MongoMapper) Insert(ctx context.Context, user primitive.ObjectID) (string, error) {
	t := &Token{
		ID:   primitive.NewObjectID(),
		User: user,
	}
	_, err := m.conn.InsertOneNoCache(ctx, t)
	if err != nil {
		return "", consts.ErrInsert
	}
	return t.ID.Hex(), nil
}

// Validate 令牌存在且属主一致才算有效
func (m *MongoMapper) Validate(ctx context.Context, token, user string) (bool, error) {
	tid, err := primitive.ObjectIDFromHex(token)
	if err != nil {
		return false, nil
	}
	uid, err := primitive.ObjectIDFromHex(user)
	if err != nil {
		return false, nil
	}
	var t Token
	err = m.conn.FindOneNoCache(ctx, &t, bson.M{
		consts.ID: tid,
	})
	if err != nil {
		return false, nil
	}
	return t.User == uid, nil
}

// Delete 删除令牌即吊销
func (m *MongoMapper) Delete(ctx context.Context, token string) error {
	tid, err := primitive.ObjectIDFromHex(token)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	count, err := m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: tid})
	if err != nil {
		return consts.ErrDelete
	}
	if count == 0 {
		return consts.ErrNotFound
	}
	return nil
}

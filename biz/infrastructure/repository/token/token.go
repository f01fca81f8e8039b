package token

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Token 登录令牌，_id 即令牌本身，删除后立即失效
type Token struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User primitive.ObjectID `bson:"user" json:"user"`
}

package user

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Form struct {
	Year        int    `bson:"year" json:"year"`
	ClassLetter string `bson:"classLetter" json:"classLetter"`
}

// User 用户。Password 为明文存储，与旧系统保持一致，属已知安全缺陷
type User struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserName string               `bson:"userName" json:"userName"`
	RealName string               `bson:"realName" json:"realName"`
	Email    string               `bson:"email" json:"email"`
	Password string               `bson:"password" json:"-"`
	Teacher  bool                 `bson:"teacher" json:"teacher"`
	Form     Form                 `bson:"form" json:"form"`
	Classes  []primitive.ObjectID `bson:"classes" json:"classes"`
	Rooms    []primitive.ObjectID `bson:"rooms" json:"rooms"`
}

package room

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message 聊天消息，内嵌在聊天室文档中。Edited 置真后不可回退
type Message struct {
	ID       primitive.ObjectID  `bson:"_id" json:"id"`
	Author   primitive.ObjectID  `bson:"author" json:"author"`
	Contents string              `bson:"contents" json:"contents"`
	Reply    *primitive.ObjectID `bson:"reply" json:"reply,omitempty"`
	Edited   bool                `bson:"edited" json:"edited"`
}

// Room 聊天室。Owner 创建后不可变更，且始终同时是管理员和成员；
// AllMembers 是 Admins 的超集
type Room struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	RoomName   string               `bson:"roomName" json:"roomName"`
	Owner      primitive.ObjectID   `bson:"owner" json:"owner"`
	Admins     []primitive.ObjectID `bson:"admins" json:"admins"`
	AllMembers []primitive.ObjectID `bson:"allMembers" json:"allMembers"`
	Messages   []Message            `bson:"messages" json:"messages"`
}

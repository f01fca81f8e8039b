package class

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notice 班级公告，内嵌在班级文档中
type Notice struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Author      primitive.ObjectID `bson:"author" json:"author"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Image       *string            `bson:"image" json:"image,omitempty"`
}

// Assignment 作业，即带截止时间的公告
type Assignment struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Author      primitive.ObjectID `bson:"author" json:"author"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Image       *string            `bson:"image" json:"image,omitempty"`
	DueDate     time.Time          `bson:"dueDate" json:"dueDate"`
}

// Class 班级。Teacher 创建后不可变更
type Class struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	ClassName   string               `bson:"className" json:"className"`
	Teacher     primitive.ObjectID   `bson:"teacher" json:"teacher"`
	Students    []primitive.ObjectID `bson:"students" json:"students"`
	Notices     []Notice             `bson:"notices" json:"notices"`
	Assignments []Assignment         `bson:"assignments" json:"assignments"`
}

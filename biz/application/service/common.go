package service

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func hexOf(id primitive.ObjectID, _ int) string {
	return id.Hex()
}

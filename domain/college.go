package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type College struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Code   string             `bson:"code" json:"code"`
	Status string             `bson:"status" json:"status"`
}

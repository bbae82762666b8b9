package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionHealthChecks = "healthchecks"
)

type Health struct {
	ID             *primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ValidatorID    string              `bson:"validator_id" json:"validator_id"`
	Hostname       string              `bson:"hostname" json:"hostname"`
	Role           string              `bson:"role" json:"role"`
	LockAddress    string              `bson:"lock_address" json:"lock_address"`
	CkbAddress     string              `bson:"ckb_address" json:"ckb_address"`
	Healthy        bool                `bson:"healthy" json:"healthy"`
	ServiceHealths []ServiceHealth     `bson:"service_healths" json:"service_healths"`
	CreatedAt      time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time           `bson:"updated_at" json:"updated_at"`
}

package models

import (
	"time"
)

type RunnerStatus struct {
	Healthy   bool   `bson:"healthy" json:"healthy"`
	LastError string `bson:"last_error" json:"last_error"`
	Processed int64  `bson:"processed" json:"processed"`
}

type ServiceHealth struct {
	Name         string    `bson:"name" json:"name"`
	LastSyncTime time.Time `bson:"last_sync_time" json:"last_sync_time"`
	NextSyncTime time.Time `bson:"next_sync_time" json:"next_sync_time"`
	Healthy      bool      `bson:"healthy" json:"healthy"`
	LastError    string    `bson:"last_error" json:"last_error"`
	Processed    int64     `bson:"processed" json:"processed"`
}

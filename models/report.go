package models

import "time"

// LockRecord joins a lock with the mint it produced.
type LockRecord struct {
	Sender     string    `bson:"sender" json:"sender"`
	Recipient  string    `bson:"recipient" json:"recipient"`
	LockAmount string    `bson:"lock_amount" json:"lock_amount"`
	MintAmount string    `bson:"mint_amount" json:"mint_amount"`
	LockHash   string    `bson:"lock_hash" json:"lock_hash"`
	MintHash   string    `bson:"mint_hash" json:"mint_hash"`
	LockTime   time.Time `bson:"lock_time" json:"lock_time"`
	MintTime   time.Time `bson:"mint_time" json:"mint_time"`
	Status     string    `bson:"status" json:"status"`
	Asset      string    `bson:"asset" json:"asset"`
	Message    string    `bson:"message" json:"message"`
}

// UnlockRecord joins a burn with the unlock paying it out.
type UnlockRecord struct {
	Sender       string    `bson:"sender" json:"sender"`
	Recipient    string    `bson:"recipient" json:"recipient"`
	BurnAmount   string    `bson:"burn_amount" json:"burn_amount"`
	UnlockAmount string    `bson:"unlock_amount" json:"unlock_amount"`
	BurnHash     string    `bson:"burn_hash" json:"burn_hash"`
	UnlockHash   string    `bson:"unlock_hash" json:"unlock_hash"`
	BurnTime     time.Time `bson:"burn_time" json:"burn_time"`
	UnlockTime   time.Time `bson:"unlock_time" json:"unlock_time"`
	Status       string    `bson:"status" json:"status"`
	Asset        string    `bson:"asset" json:"asset"`
	Message      string    `bson:"message" json:"message"`
}

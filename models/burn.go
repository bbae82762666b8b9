package models

import (
	"time"
)

const (
	CollectionBurns = "ckb_burns"
)

// CkbBurn is written by the ckb burn handler. It is only read here to
// report burns alongside their unlocks.
type CkbBurn struct {
	CkbTxHash        string    `bson:"_id" json:"ckb_tx_hash"`
	Chain            ChainType `bson:"chain" json:"chain"`
	Asset            string    `bson:"asset" json:"asset"`
	Amount           string    `bson:"amount" json:"amount"`
	SenderLockHash   string    `bson:"sender_lock_hash" json:"sender_lock_hash"`
	RecipientAddress string    `bson:"recipient_address" json:"recipient_address"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
}

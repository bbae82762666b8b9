package models

import (
	"time"
)

const (
	CollectionUnlocks = "ada_unlocks"
)

const (
	UnlockStatusTodo    = "todo"
	UnlockStatusPending = "pending"
	UnlockStatusError   = "error"
	UnlockStatusSuccess = "success"
)

// AdaUnlock is a release of funds on cardano for a burn on ckb, keyed by
// the ckb burn transaction hash.
type AdaUnlock struct {
	CkbTxHash        string    `bson:"_id" json:"ckb_tx_hash"`
	Chain            ChainType `bson:"chain" json:"chain"`
	Asset            string    `bson:"asset" json:"asset"`
	Amount           string    `bson:"amount" json:"amount"`
	RecipientAddress string    `bson:"recipient_address" json:"recipient_address"`
	AdaTxHash        string    `bson:"ada_tx_hash,omitempty" json:"ada_tx_hash,omitempty"`
	Status           string    `bson:"status" json:"status"`
	Message          string    `bson:"message,omitempty" json:"message,omitempty"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
}

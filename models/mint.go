package models

import (
	"time"
)

const (
	CollectionMints = "ckb_mints"
)

// types of mint status, set by the ckb minter after the initial insert
const (
	MintStatusTodo    = "todo"
	MintStatusPending = "pending"
	MintStatusSuccess = "success"
	MintStatusError   = "error"
)

// CkbMint is queued for every lock seen by a collector, keyed by the
// cardano lock transaction id.
type CkbMint struct {
	ID                  string    `bson:"_id" json:"id"`
	Chain               ChainType `bson:"chain" json:"chain"`
	Asset               string    `bson:"asset" json:"asset"`
	Amount              string    `bson:"amount" json:"amount"`
	RecipientLockscript string    `bson:"recipient_lockscript" json:"recipient_lockscript"`
	Status              string    `bson:"status" json:"status"`
	MintHash            string    `bson:"mint_hash,omitempty" json:"mint_hash,omitempty"`
	Message             string    `bson:"message,omitempty" json:"message,omitempty"`
	CreatedAt           time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time `bson:"updated_at" json:"updated_at"`
}

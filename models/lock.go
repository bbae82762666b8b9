package models

import (
	"time"
)

const (
	CollectionLocks = "ada_locks"
)

// AdaLock status only moves forward: pending -> submitted -> settled.
const (
	LockStatusPending   = "pending"
	LockStatusSubmitted = "submitted"
	LockStatusSettled   = "settled"
)

// AdaLock is a deposit into the custodial address on cardano, keyed by the
// cardano transaction id.
type AdaLock struct {
	TxID      string    `bson:"_id" json:"tx_id"`
	Sender    string    `bson:"sender" json:"sender"`
	Amount    string    `bson:"amount" json:"amount"`
	Status    string    `bson:"status" json:"status"`
	Data      string    `bson:"data" json:"data"`
	Recipient string    `bson:"recipient" json:"recipient"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// PreviousLockStatuses returns the statuses a lock may be in before moving to status.
func PreviousLockStatuses(status string) []string {
	switch status {
	case LockStatusSubmitted:
		return []string{LockStatusPending}
	case LockStatusSettled:
		return []string{LockStatusPending, LockStatusSubmitted}
	}
	return []string{}
}

package models

// cardano-wallet transaction states
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusSubmitted TransactionStatus = "submitted"
	TransactionStatusInLedger  TransactionStatus = "in_ledger"
	TransactionStatusExpired   TransactionStatus = "expired"
)

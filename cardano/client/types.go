package client

import (
	"github.com/dan13ram/ada-bridge/models"
)

const (
	UnitLovelace = "lovelace"
	UnitBlock    = "block"
)

type Amount struct {
	Quantity uint64 `json:"quantity"`
	Unit     string `json:"unit"`
}

type Depth struct {
	Quantity int64  `json:"quantity"`
	Unit     string `json:"unit"`
}

type TxInput struct {
	ID      string  `json:"id"`
	Index   uint32  `json:"index"`
	Address string  `json:"address,omitempty"`
	Amount  *Amount `json:"amount,omitempty"`
}

type TxOutput struct {
	Address string `json:"address"`
	Amount  Amount `json:"amount"`
}

// TxMetadataValue is the detailed json schema of a transaction metadatum.
type TxMetadataValue struct {
	String string            `json:"string,omitempty"`
	Int    *int64            `json:"int,omitempty"`
	List   []TxMetadataValue `json:"list,omitempty"`
}

// TxMetadata maps a metadata label to its value.
type TxMetadata map[string]TxMetadataValue

type Transaction struct {
	ID        string                   `json:"id"`
	Amount    Amount                   `json:"amount"`
	Fee       Amount                   `json:"fee"`
	Depth     *Depth                   `json:"depth,omitempty"`
	Direction string                   `json:"direction"`
	Inputs    []TxInput                `json:"inputs"`
	Outputs   []TxOutput               `json:"outputs"`
	Status    models.TransactionStatus `json:"status"`
	Metadata  TxMetadata               `json:"metadata,omitempty"`
}

type Payment struct {
	Address string `json:"address"`
	Amount  Amount `json:"amount"`
}

type FeeEstimate struct {
	EstimatedMin Amount `json:"estimated_min"`
	EstimatedMax Amount `json:"estimated_max"`
}

type WalletBalance struct {
	Available Amount `json:"available"`
	Total     Amount `json:"total"`
	Reward    Amount `json:"reward"`
}

type Wallet struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Balance WalletBalance `json:"balance"`
}

type SyncProgress struct {
	Status string `json:"status"`
}

type NetworkTip struct {
	EpochNumber        int64 `json:"epoch_number"`
	SlotNumber         int64 `json:"slot_number"`
	AbsoluteSlotNumber int64 `json:"absolute_slot_number"`
}

type NodeTip struct {
	Height Depth `json:"height"`
}

type NetworkInfo struct {
	NetworkID     string `json:"network_id"`
	ProtocolMagic int64  `json:"protocol_magic"`
}

type NetworkInformation struct {
	SyncProgress SyncProgress `json:"sync_progress"`
	NetworkTip   *NetworkTip  `json:"network_tip,omitempty"`
	NodeTip      NodeTip      `json:"node_tip"`
	NetworkInfo  NetworkInfo  `json:"network_info"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Lovelace(quantity uint64) Amount {
	return Amount{Quantity: quantity, Unit: UnitLovelace}
}

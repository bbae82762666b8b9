package util

import (
	"strconv"
	"time"

	"github.com/dan13ram/ada-bridge/app"
	"github.com/dan13ram/ada-bridge/cardano/client"
	ckb "github.com/dan13ram/ada-bridge/ckb/client"
	"github.com/dan13ram/ada-bridge/common"
	"github.com/dan13ram/ada-bridge/models"

	log "github.com/sirupsen/logrus"
)

type ValidateTxResult struct {
	TxID       string
	TxStatus   models.TransactionStatus
	Confirmed  bool
	IsLock     bool
	Sender     string
	Amount     uint64
	Data       string
	Recipient  string
	BurnHashes []string
}

// DepositOutput is the output paying the custodial address of a lock.
func DepositOutput(outputs []client.TxOutput) *client.TxOutput {
	if len(outputs) == 0 {
		return nil
	}
	return &outputs[0]
}

// PayloadCarrier is the first output after the deposit with an address.
func PayloadCarrier(outputs []client.TxOutput) *client.TxOutput {
	if len(outputs) < 2 {
		return nil
	}
	for i := 1; i < len(outputs); i++ {
		if outputs[i].Address != "" {
			return &outputs[i]
		}
	}
	return nil
}

func IsLockTx(outputs []client.TxOutput, lockAddress string) bool {
	if len(outputs) < 2 {
		return false
	}
	deposit := DepositOutput(outputs)
	return deposit != nil && deposit.Address == lockAddress
}

func HasInputFrom(inputs []client.TxInput, address string) bool {
	for _, input := range inputs {
		if input.Address == address {
			return true
		}
	}
	return false
}

// UnlockBurnHashes returns the 0x prefixed burn hashes released by tx. Only
// spends of the custodial address with a payload carrier qualify. The carrier
// address is decoded before the metadata under label, so a carrier whose
// length is a multiple of BurnHashWidth shadows the metadata payload.
func UnlockBurnHashes(tx *client.Transaction, lockAddress string, label uint64) []string {
	if tx == nil || len(tx.Outputs) < 2 || !HasInputFrom(tx.Inputs, lockAddress) {
		return []string{}
	}

	hashes := []string{}
	if carrier := PayloadCarrier(tx.Outputs); carrier != nil {
		hashes = DecodeBurnHashes(carrier.Address)
	}
	if len(hashes) == 0 {
		hashes = DecodeBurnHashes(MetadataPayload(tx.Metadata, label))
	}

	for i := range hashes {
		hashes[i] = common.Ensure0xPrefix(hashes[i])
	}
	return hashes
}

func SenderAddress(inputs []client.TxInput) string {
	for _, input := range inputs {
		if input.Address != "" {
			return input.Address
		}
	}
	return ""
}

func ValidateTx(tx *client.Transaction, lockAddress string, confirmations int64, label uint64) *ValidateTxResult {
	logger := log.
		WithField("operation", "validateTx").
		WithField("tx_id", tx.ID)

	result := ValidateTxResult{
		TxID:       tx.ID,
		TxStatus:   tx.Status,
		Confirmed:  client.IsConfirmed(tx, confirmations),
		BurnHashes: UnlockBurnHashes(tx, lockAddress, label),
	}

	if !IsLockTx(tx.Outputs, lockAddress) {
		return &result
	}

	result.IsLock = true
	result.Sender = SenderAddress(tx.Inputs)
	result.Amount = DepositOutput(tx.Outputs).Amount.Quantity
	result.Data = MetadataPayload(tx.Metadata, label)

	recipient, err := DecodeRecipient(result.Data)
	if err != nil {
		logger.WithError(err).Debug("Found lock tx with invalid recipient")
	} else {
		result.Recipient = recipient
	}

	return &result
}

func CreateLock(result *ValidateTxResult, status string) models.AdaLock {
	now := time.Now()
	return models.AdaLock{
		TxID:      result.TxID,
		Sender:    result.Sender,
		Amount:    strconv.FormatUint(result.Amount, 10),
		Status:    status,
		Data:      result.Data,
		Recipient: result.Recipient,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateMint queues a mint of the locked amount to the recipient lock script.
func CreateMint(result *ValidateTxResult) (models.CkbMint, error) {
	lock, err := ckb.LockScriptFromAddress(result.Recipient, app.Config.Ckb.LockScript)
	if err != nil {
		return models.CkbMint{}, err
	}

	now := time.Now()
	return models.CkbMint{
		ID:                  result.TxID,
		Chain:               models.ChainTypeCardano,
		Asset:               app.Config.Bridge.Asset,
		Amount:              strconv.FormatUint(result.Amount, 10),
		RecipientLockscript: common.BytesToHex(ckb.SerializeScript(lock)),
		Status:              models.MintStatusTodo,
		CreatedAt:           now,
		UpdatedAt:           now,
	}, nil
}

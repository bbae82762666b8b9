package cardano

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dan13ram/ada-bridge/app"
	"github.com/dan13ram/ada-bridge/cardano/client"
	"github.com/dan13ram/ada-bridge/cardano/util"
	"github.com/dan13ram/ada-bridge/models"
	"github.com/dan13ram/ada-bridge/store"
	log "github.com/sirupsen/logrus"
)

// SendLock pays amount lovelace into the lock address with the ckb recipient
// attached as bridge metadata and stores the pending lock.
func SendLock(c client.WalletClient, walletID string, amount uint64, passphrase string, recipient string) (string, error) {
	if amount == 0 {
		return "", errors.New("amount must be greater than zero")
	}
	if _, err := util.DecodeRecipient(recipient); err != nil {
		return "", fmt.Errorf("invalid recipient: %w", err)
	}

	payments := []client.Payment{{
		Address: app.Config.Cardano.LockAddress,
		Amount:  client.Lovelace(amount),
	}}
	metadata := util.BridgeMetadata(app.Config.Cardano.MetadataLabel, recipient)

	if _, err := c.EstimateFee(walletID, payments, metadata); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInsufficientBalance, err)
	}

	tx, err := c.SendPayment(walletID, passphrase, payments, metadata)
	if err != nil {
		return "", err
	}
	if tx == nil || tx.ID == "" {
		return "", errors.New("wallet returned no transaction id")
	}
	log.Info("[LOCK] Submitted lock tx: ", tx.ID)

	lock := models.AdaLock{
		TxID:      tx.ID,
		Sender:    util.SenderAddress(tx.Inputs),
		Amount:    strconv.FormatUint(amount, 10),
		Status:    models.LockStatusPending,
		Data:      recipient,
		Recipient: recipient,
	}
	if err := store.CreateLocks([]models.AdaLock{lock}); err != nil {
		return tx.ID, fmt.Errorf("lock tx %s submitted but not stored: %w", tx.ID, err)
	}

	return tx.ID, nil
}

var ErrTxExpired = errors.New("transaction expired")

// WaitForTransaction polls the wallet until txID is in the ledger.
func WaitForTransaction(c client.WalletClient, walletID string, txID string, interval time.Duration, timeout time.Duration) (*client.Transaction, error) {
	deadline := time.Now().Add(timeout)
	for {
		tx, err := c.GetTransaction(walletID, txID)
		if err != nil {
			log.Debug("[LOCK] Error fetching tx: ", err)
		} else {
			switch tx.Status {
			case models.TransactionStatusInLedger:
				return tx, nil
			case models.TransactionStatusExpired:
				return tx, fmt.Errorf("%w: %s", ErrTxExpired, txID)
			}
		}

		if time.Now().Add(interval).After(deadline) {
			return nil, fmt.Errorf("timed out waiting for tx %s", txID)
		}
		time.Sleep(interval)
	}
}

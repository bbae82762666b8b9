package ckb

import (
	"errors"
	"fmt"
	"time"

	"cosmossdk.io/math"
	"github.com/dan13ram/ada-bridge/app"
	"github.com/dan13ram/ada-bridge/ckb/client"
	"github.com/dan13ram/ada-bridge/common"
	"github.com/dan13ram/ada-bridge/models"
	"github.com/dan13ram/ada-bridge/store"
	log "github.com/sirupsen/logrus"
)

// Burn builds an unsigned transaction burning amount of the bridged token
// held by ownerLock, releasing it to recipient on cardano.
func Burn(c client.CkbClient, ownerLock client.Script, recipient string, asset string, amount math.Int) (*client.Transaction, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return nil, errors.New("amount must be greater than zero")
	}
	if err := common.ValidateCardanoAddress(recipient); err != nil {
		return nil, err
	}

	sudt, err := client.ScriptFromConfig(app.Config.Ckb.SudtTypeScript)
	if err != nil {
		return nil, fmt.Errorf("invalid sudt type script: %w", err)
	}

	balance, err := c.GetTokenBalance(sudt, ownerLock)
	if err != nil {
		return nil, fmt.Errorf("error fetching token balance: %w", err)
	}
	if balance.LT(amount) {
		return nil, fmt.Errorf("%w: available %s, required %s", common.ErrInsufficientBalance, balance, amount)
	}

	return c.BuildBurnTransaction(ownerLock, recipient, asset, amount)
}

// SendBurn burns from the signer's own cells and broadcasts the signed tx.
func SendBurn(c client.CkbClient, signer common.Signer, recipient string, asset string, amount math.Int) (string, error) {
	ownerLock, err := client.LockScriptFromSigner(signer, app.Config.Ckb.LockScript)
	if err != nil {
		return "", err
	}

	tx, err := Burn(c, ownerLock, recipient, asset, amount)
	if err != nil {
		return "", err
	}

	hash, err := c.SignAndBroadcast(tx, signer)
	if err != nil {
		return "", err
	}
	log.Info("[BURN] Submitted burn tx: ", hash)
	return hash, nil
}

var ErrUnlockFailed = errors.New("unlock failed")

// WaitForUnlock polls the unlock record of a burn until it succeeds.
func WaitForUnlock(burnTxHash string, interval time.Duration, timeout time.Duration) (*models.AdaUnlock, error) {
	deadline := time.Now().Add(timeout)
	for {
		unlock, err := store.FindUnlockByKey(burnTxHash)
		if err != nil {
			log.Debug("[BURN] Error finding unlock: ", err)
		} else if unlock != nil {
			switch unlock.Status {
			case models.UnlockStatusSuccess:
				return unlock, nil
			case models.UnlockStatusError:
				return unlock, fmt.Errorf("%w: %s", ErrUnlockFailed, unlock.Message)
			}
		}

		if time.Now().Add(interval).After(deadline) {
			return nil, fmt.Errorf("timed out waiting for unlock of %s", burnTxHash)
		}
		time.Sleep(interval)
	}
}

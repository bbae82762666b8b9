package cardano

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dan13ram/ada-bridge/app"
	"github.com/dan13ram/ada-bridge/cardano/client"
	"github.com/dan13ram/ada-bridge/cardano/util"
	"github.com/dan13ram/ada-bridge/models"
	"github.com/dan13ram/ada-bridge/store"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	LockMonitorName = "LOCK MONITOR"
)

type LockMonitorRunner struct {
	client        client.WalletClient
	walletID      string
	lockAddress   string
	confirmations int64
	label         uint64
	role          string

	healthy   bool
	lastError string
	processed int64
}

func (x *LockMonitorRunner) Run() {
	x.lastError = ""
	synced := x.SyncTxs()
	updated := x.SyncLocks()
	x.healthy = synced && updated
}

func (x *LockMonitorRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		Healthy:   x.healthy,
		LastError: x.lastError,
		Processed: x.processed,
	}
}

func (x *LockMonitorRunner) fail(msg string, err error) {
	log.Error("[LOCK MONITOR] ", msg, ": ", err)
	x.lastError = fmt.Sprintf("%s: %s", msg, err)
}

// HandleUnlock settles the unlocks released by result. More than one open
// unlock for a burn hash is a consistency violation reported as ErrDuplicateUnlock.
func (x *LockMonitorRunner) HandleUnlock(result *util.ValidateTxResult) error {
	if result == nil {
		return errors.New("invalid tx result")
	}

	var failed error
	for _, hash := range result.BurnHashes {
		unlocks, err := store.FindUnlocksNotStatus(models.UnlockStatusSuccess, hash)
		if err != nil {
			x.fail("Error finding unlock", err)
			failed = err
			continue
		}

		if len(unlocks) == 0 {
			log.Debug("[LOCK MONITOR] No open unlock for burn: ", hash)
			continue
		}

		if len(unlocks) > 1 {
			return fmt.Errorf("%w: %d open unlocks for burn %s", ErrDuplicateUnlock, len(unlocks), hash)
		}

		settled, err := store.SettleUnlock(&unlocks[0], result.TxID)
		if err != nil {
			x.fail("Error settling unlock", err)
			failed = err
			continue
		}
		if !settled {
			continue
		}

		log.Info("[LOCK MONITOR] Settled unlock: ", hash, " in tx: ", result.TxID)
		x.processed++
		app.UnlocksSettled.Inc()
		unlocks[0].Status = models.UnlockStatusSuccess
		if unlocks[0].AdaTxHash == "" {
			unlocks[0].AdaTxHash = result.TxID
		}
		app.PublishEvent(app.EventUnlockSettled, unlocks[0])
	}

	return failed
}

var utilCreateMint = util.CreateMint

func (x *LockMonitorRunner) HandleLock(result *util.ValidateTxResult) bool {
	if result == nil || !result.IsLock {
		log.Debug("[LOCK MONITOR] Invalid lock result")
		return false
	}

	status := models.LockStatusSettled
	if x.role == models.RoleCollector {
		status = models.LockStatusPending

		if result.Recipient == "" {
			log.Warn("[LOCK MONITOR] Found lock tx without a valid recipient, not queuing mint: ", result.TxID)
		} else if !x.queueMint(result) {
			return false
		}
	}

	lock := util.CreateLock(result, status)

	log.Debug("[LOCK MONITOR] Storing lock tx")
	if err := store.CreateLocks([]models.AdaLock{lock}); err != nil {
		if !mongo.IsDuplicateKeyError(err) {
			x.fail("Error storing lock tx", err)
			return false
		}
		log.Info("[LOCK MONITOR] Found duplicate lock tx: ", result.TxID)
		if x.role == models.RoleWatcher {
			if _, err := store.UpdateLockStatus(result.TxID, models.LockStatusSettled); err != nil {
				x.fail("Error settling lock tx", err)
				return false
			}
		}
		return true
	}

	log.Info("[LOCK MONITOR] Stored lock tx: ", result.TxID)
	x.processed++
	app.LocksObserved.Inc()
	app.PublishEvent(app.EventLockObserved, lock)
	return true
}

func (x *LockMonitorRunner) queueMint(result *util.ValidateTxResult) bool {
	mint, err := utilCreateMint(result)
	if err != nil {
		x.fail("Error creating mint", err)
		return false
	}

	log.Debug("[LOCK MONITOR] Storing mint")
	if err := store.CreateMints([]models.CkbMint{mint}); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Info("[LOCK MONITOR] Found duplicate mint: ", result.TxID)
			return true
		}
		x.fail("Error storing mint", err)
		return false
	}

	log.Info("[LOCK MONITOR] Queued mint: ", result.TxID)
	app.MintsQueued.Inc()
	return true
}

var utilValidateTx = util.ValidateTx

func (x *LockMonitorRunner) SyncTxs() bool {
	txs, err := x.client.ListTransactions(x.walletID)
	if err != nil {
		x.fail("Error listing transactions", err)
		return false
	}
	log.Info("[LOCK MONITOR] Found ", len(txs), " txs to sync")

	success := true
	for i := range txs {
		result := utilValidateTx(&txs[i], x.lockAddress, x.confirmations, x.label)

		if !result.Confirmed {
			log.Debug("[LOCK MONITOR] Skipping unconfirmed tx: ", result.TxID)
			continue
		}

		if len(result.BurnHashes) > 0 {
			if err := x.HandleUnlock(result); err != nil {
				if errors.Is(err, ErrDuplicateUnlock) {
					x.fail("Aborting sync", err)
					return false
				}
				success = false
			}
		}

		if result.IsLock {
			success = x.HandleLock(result) && success
		}
	}

	return success
}

// SyncLocks moves open locks forward as the minter reports progress.
func (x *LockMonitorRunner) SyncLocks() bool {
	locks, err := store.FindLocksNotStatus(models.LockStatusSettled)
	if err != nil {
		x.fail("Error finding open locks", err)
		return false
	}
	log.Debug("[LOCK MONITOR] Found ", len(locks), " open locks")

	success := true
	for _, lock := range locks {
		mint, err := store.FindMintByKey(lock.TxID)
		if err != nil {
			x.fail("Error finding mint", err)
			success = false
			continue
		}
		if mint == nil {
			continue
		}

		var status string
		switch mint.Status {
		case models.MintStatusPending:
			status = models.LockStatusSubmitted
		case models.MintStatusSuccess:
			status = models.LockStatusSettled
		default:
			continue
		}

		updated, err := store.UpdateLockStatus(lock.TxID, status)
		if err != nil {
			x.fail("Error updating lock status", err)
			success = false
			continue
		}
		if updated {
			log.Info("[LOCK MONITOR] Lock ", lock.TxID, " is now ", status)
		}
	}

	return success
}

func NewLockMonitor(wg *sync.WaitGroup, lastHealth models.ServiceHealth) app.Service {
	if !app.Config.LockMonitor.Enabled {
		log.Debug("[LOCK MONITOR] Disabled")
		return app.NewEmptyService(wg)
	}

	log.Debug("[LOCK MONITOR] Initializing")

	client, err := cardanoNewClient(app.Config.Cardano)
	if err != nil {
		log.Fatal("[LOCK MONITOR] Error creating cardano wallet client: ", err)
	}

	x := &LockMonitorRunner{
		client:        client,
		walletID:      app.Config.Cardano.WalletID,
		lockAddress:   app.Config.Cardano.LockAddress,
		confirmations: app.Config.Cardano.Confirmations,
		label:         app.Config.Cardano.MetadataLabel,
		role:          app.Config.Bridge.Role,
		healthy:       true,
		processed:     lastHealth.Processed,
	}

	log.Info("[LOCK MONITOR] Initialized")

	return app.NewRunnerService(LockMonitorName, x, wg, time.Duration(app.Config.LockMonitor.IntervalMillis)*time.Millisecond)
}

var cardanoNewClient = client.NewClient

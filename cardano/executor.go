package cardano

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/dan13ram/ada-bridge/app"
	"github.com/dan13ram/ada-bridge/cardano/client"
	"github.com/dan13ram/ada-bridge/cardano/util"
	"github.com/dan13ram/ada-bridge/models"
	"github.com/dan13ram/ada-bridge/store"
	log "github.com/sirupsen/logrus"
)

const (
	UnlockExecutorName = "UNLOCK EXECUTOR"
)

type UnlockExecutorRunner struct {
	client     client.WalletClient
	walletID   string
	passphrase string
	label      uint64
	batchSize  int64

	healthy   bool
	lastError string
	processed int64
}

func (x *UnlockExecutorRunner) Run() {
	x.lastError = ""
	x.healthy = x.SyncUnlocks()
}

func (x *UnlockExecutorRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		Healthy:   x.healthy,
		LastError: x.lastError,
		Processed: x.processed,
	}
}

func (x *UnlockExecutorRunner) SyncUnlocks() bool {
	if err := app.DB.PurgeExpiredLocks(); err != nil {
		log.Error("[UNLOCK EXECUTOR] Error purging expired locks: ", err)
	}

	unlocks, err := store.FindUnlocksByStatus(models.UnlockStatusTodo, x.batchSize)
	if err != nil {
		log.Error("[UNLOCK EXECUTOR] Error finding unlocks: ", err)
		x.lastError = err.Error()
		return false
	}

	if len(unlocks) == 0 {
		log.Info("[UNLOCK EXECUTOR] No unlocks to dispatch")
		return true
	}
	log.Info("[UNLOCK EXECUTOR] Found unlocks: ", len(unlocks))

	if err := x.DispatchUnlocks(unlocks); err != nil {
		log.Error("[UNLOCK EXECUTOR] Error dispatching unlocks: ", err)
		x.lastError = err.Error()
		return false
	}

	return true
}

// lockUnlocks returns the unlocks it could lock along with their lock ids.
// An unlock held by another lock is left for a later cycle.
func (x *UnlockExecutorRunner) lockUnlocks(unlocks []models.AdaUnlock) ([]models.AdaUnlock, []string) {
	locked := make([]models.AdaUnlock, 0, len(unlocks))
	lockIDs := make([]string, 0, len(unlocks))
	for _, unlock := range unlocks {
		resourceID := fmt.Sprintf("%s/%s", models.CollectionUnlocks, unlock.CkbTxHash)
		lockID, err := app.DB.XLock(resourceID)
		if err != nil {
			log.Warn("[UNLOCK EXECUTOR] Skipping unlock ", unlock.CkbTxHash, ": ", err)
			continue
		}
		log.Debug("[UNLOCK EXECUTOR] Locked unlock: ", unlock.CkbTxHash)
		locked = append(locked, unlock)
		lockIDs = append(lockIDs, lockID)
	}
	return locked, lockIDs
}

func (x *UnlockExecutorRunner) releaseUnlocks(lockIDs []string) {
	for _, lockID := range lockIDs {
		if err := app.DB.Unlock(lockID); err != nil {
			log.Error("[UNLOCK EXECUTOR] Error unlocking unlock: ", err)
		}
	}
}

// DispatchUnlocks pays out a batch of unlocks in a single cardano transaction.
// Records are persisted as pending before anything is submitted.
func (x *UnlockExecutorRunner) DispatchUnlocks(unlocks []models.AdaUnlock) error {
	if len(unlocks) == 0 {
		return ErrEmptyBatch
	}
	if len(unlocks) > app.MaxUnlockBatchSize {
		return fmt.Errorf("%w: %d records, max %d", ErrBatchTooLarge, len(unlocks), app.MaxUnlockBatchSize)
	}

	batch, lockIDs := x.lockUnlocks(unlocks)
	defer x.releaseUnlocks(lockIDs)

	if len(batch) == 0 {
		log.Warn("[UNLOCK EXECUTOR] Every unlock in the batch is locked")
		return nil
	}

	if err := store.UpdateUnlocks(batch, models.UnlockStatusPending, "", ""); err != nil {
		return fmt.Errorf("error marking unlocks pending: %w", err)
	}

	txID, err := x.submit(batch)
	if err != nil {
		if saveErr := store.UpdateUnlocks(batch, models.UnlockStatusError, "", err.Error()); saveErr != nil {
			log.Error("[UNLOCK EXECUTOR] Error marking unlocks failed: ", saveErr)
		}
		app.UnlocksFailed.Add(float64(len(batch)))
		app.PublishEvent(app.EventUnlockFailed, batch)
		return err
	}

	log.Info("[UNLOCK EXECUTOR] Submitted unlock tx: ", txID)
	if err := store.UpdateUnlocks(batch, models.UnlockStatusPending, txID, ""); err != nil {
		return fmt.Errorf("error saving unlock tx %s: %w", txID, err)
	}

	x.processed += int64(len(batch))
	app.UnlocksDispatched.Add(float64(len(batch)))
	app.PublishEvent(app.EventUnlockDispatched, batch)
	return nil
}

func unlockPayments(unlocks []models.AdaUnlock) ([]client.Payment, []string, uint64, error) {
	payments := make([]client.Payment, 0, len(unlocks))
	keys := make([]string, 0, len(unlocks))
	var total uint64
	for _, unlock := range unlocks {
		if unlock.RecipientAddress == "" {
			return nil, nil, 0, fmt.Errorf("unlock %s has no recipient", unlock.CkbTxHash)
		}
		amount, err := strconv.ParseUint(unlock.Amount, 10, 64)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("unlock %s has invalid amount %q: %w", unlock.CkbTxHash, unlock.Amount, err)
		}
		payments = append(payments, client.Payment{
			Address: unlock.RecipientAddress,
			Amount:  client.Lovelace(amount),
		})
		keys = append(keys, unlock.CkbTxHash)
		total += amount
	}
	return payments, keys, total, nil
}

func (x *UnlockExecutorRunner) submit(unlocks []models.AdaUnlock) (string, error) {
	payments, keys, total, err := unlockPayments(unlocks)
	if err != nil {
		return "", err
	}

	balance, err := x.client.GetAvailableBalance(x.walletID)
	if err != nil {
		return "", fmt.Errorf("error fetching balance: %w", err)
	}
	if balance < total {
		return "", fmt.Errorf("%w: available %d, required %d", ErrInsufficientBalance, balance, total)
	}

	metadata := util.BridgeMetadata(x.label, util.EncodeBurnHashes(keys))

	if _, err := x.client.EstimateFee(x.walletID, payments, metadata); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInsufficientBalance, err)
	}

	tx, err := x.client.SendPayment(x.walletID, x.passphrase, payments, metadata)
	if err != nil {
		return "", err
	}
	if tx == nil || tx.ID == "" {
		return "", errors.New("wallet returned no transaction id")
	}
	return tx.ID, nil
}

func NewUnlockExecutor(wg *sync.WaitGroup, lastHealth models.ServiceHealth) app.Service {
	if !app.Config.UnlockExecutor.Enabled {
		log.Debug("[UNLOCK EXECUTOR] Disabled")
		return app.NewEmptyService(wg)
	}

	if app.Config.Bridge.Role != models.RoleCollector {
		log.Info("[UNLOCK EXECUTOR] Only runs in the collector role")
		return app.NewEmptyService(wg)
	}

	log.Debug("[UNLOCK EXECUTOR] Initializing")

	client, err := cardanoNewClient(app.Config.Cardano)
	if err != nil {
		log.Fatal("[UNLOCK EXECUTOR] Error creating cardano wallet client: ", err)
	}

	x := &UnlockExecutorRunner{
		client:     client,
		walletID:   app.Config.Cardano.WalletID,
		passphrase: app.Config.Cardano.Passphrase,
		label:      app.Config.Cardano.MetadataLabel,
		batchSize:  app.Config.UnlockExecutor.BatchSize,
		healthy:    true,
		processed:  lastHealth.Processed,
	}

	log.Info("[UNLOCK EXECUTOR] Initialized")

	return app.NewRunnerService(UnlockExecutorName, x, wg, time.Duration(app.Config.UnlockExecutor.IntervalMillis)*time.Millisecond)
}

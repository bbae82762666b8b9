package cardano

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/dan13ram/ada-bridge/app"
	appMocks "github.com/dan13ram/ada-bridge/app/mocks"
	"github.com/dan13ram/ada-bridge/cardano/client"
	"github.com/dan13ram/ada-bridge/cardano/client/mocks"
	"github.com/dan13ram/ada-bridge/cardano/util"
	ckb "github.com/dan13ram/ada-bridge/ckb/client"
	"github.com/dan13ram/ada-bridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(io.Discard)
}

const (
	testWalletID    = "wallet"
	testLockAddress = "addr_test1lock"
	testLabel       = uint64(8722)
	testBurnHash    = "0x1111111111111111111111111111111111111111111111111111111111111111"
	testRecipient   = "ckt1qyqvsv5240xeh85wvnau2eky8pwrhh4jr8ts8vyj37"
)

func NewTestLockMonitor(t *testing.T, mockClient *mocks.MockWalletClient, role string) *LockMonitorRunner {
	return &LockMonitorRunner{
		client:        mockClient,
		walletID:      testWalletID,
		lockAddress:   testLockAddress,
		confirmations: 10,
		label:         testLabel,
		role:          role,
		healthy:       true,
	}
}

func lockResult() *util.ValidateTxResult {
	return &util.ValidateTxResult{
		TxID:      "locktx",
		TxStatus:  models.TransactionStatusInLedger,
		Confirmed: true,
		IsLock:    true,
		Sender:    "addr_test1sender",
		Amount:    5000000,
		Data:      testRecipient,
		Recipient: testRecipient,
	}
}

func unlockResult() *util.ValidateTxResult {
	return &util.ValidateTxResult{
		TxID:       "unlocktx",
		TxStatus:   models.TransactionStatusInLedger,
		Confirmed:  true,
		BurnHashes: []string{testBurnHash},
	}
}

func stubCreateMint(t *testing.T, err error) {
	original := utilCreateMint
	t.Cleanup(func() { utilCreateMint = original })
	utilCreateMint = func(result *util.ValidateTxResult) (models.CkbMint, error) {
		if err != nil {
			return models.CkbMint{}, err
		}
		return models.CkbMint{ID: result.TxID, Status: models.MintStatusTodo, Amount: "5000000"}, nil
	}
}

func TestLockMonitorStatus(t *testing.T) {
	mockClient := mocks.NewMockWalletClient(t)
	x := NewTestLockMonitor(t, mockClient, models.RoleCollector)
	x.lastError = "boom"
	x.processed = 3

	status := x.Status()

	assert.True(t, status.Healthy)
	assert.Equal(t, "boom", status.LastError)
	assert.Equal(t, int64(3), status.Processed)
}

func TestLockMonitorHandleUnlock(t *testing.T) {

	t.Run("Nil result", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		x := NewTestLockMonitor(t, mockClient, models.RoleCollector)

		err := x.HandleUnlock(nil)

		assert.NotNil(t, err)
	})

	t.Run("No open unlock", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestLockMonitor(t, mockClient, models.RoleCollector)

		filter := bson.M{"_id": testBurnHash, "status": bson.M{"$ne": models.UnlockStatusSuccess}}
		mockDB.EXPECT().FindMany(models.CollectionUnlocks, filter, mock.Anything).Return(nil)

		err := x.HandleUnlock(unlockResult())

		assert.Nil(t, err)
		assert.Equal(t, int64(0), x.processed)
	})

	t.Run("Upper case burn hash", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestLockMonitor(t, mockClient, models.RoleCollector)

		filter := bson.M{"_id": testBurnHashA, "status": bson.M{"$ne": models.UnlockStatusSuccess}}
		mockDB.EXPECT().FindMany(models.CollectionUnlocks, filter, mock.Anything).Return(nil).
			Run(func(collection string, filter interface{}, result interface{}) {
				*result.(*[]models.AdaUnlock) = []models.AdaUnlock{{CkbTxHash: testBurnHashA, Status: models.UnlockStatusPending}}
			})
		mockDB.EXPECT().UpdateOne(models.CollectionUnlocks, mock.Anything, mock.Anything).Return(int64(1), nil)

		result := unlockResult()
		result.BurnHashes = []string{"0x" + strings.ToUpper(strings.TrimPrefix(testBurnHashA, "0x"))}
		err := x.HandleUnlock(result)

		assert.Nil(t, err)
		assert.Equal(t, int64(1), x.processed)
	})

	t.Run("Duplicate open unlocks", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestLockMonitor(t, mockClient, models.RoleCollector)

		mockDB.EXPECT().FindMany(models.CollectionUnlocks, mock.Anything, mock.Anything).Return(nil).
			Run(func(collection string, filter interface{}, result interface{}) {
				*result.(*[]models.AdaUnlock) = []models.AdaUnlock{{CkbTxHash: testBurnHash}, {CkbTxHash: testBurnHash}}
			})

		err := x.HandleUnlock(unlockResult())

		assert.True(t, errors.Is(err, ErrDuplicateUnlock))
	})

	t.Run("Find error", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestLockMonitor(t, mockClient, models.RoleCollector)

		mockDB.EXPECT().FindMany(models.CollectionUnlocks, mock.Anything, mock.Anything).Return(errors.New("error"))

		err := x.HandleUnlock(unlockResult())

		assert.NotNil(t, err)
		assert.False(t, errors.Is(err, ErrDuplicateUnlock))
		assert.Contains(t, x.lastError, "Error finding unlock")
	})

	t.Run("Settles and fills tx hash", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestLockMonitor(t, mockClient, models.RoleCollector)

		mockDB.EXPECT().FindMany(models.CollectionUnlocks, mock.Anything, mock.Anything).Return(nil).
			Run(func(collection string, filter interface{}, result interface{}) {
				*result.(*[]models.AdaUnlock) = []models.AdaUnlock{{CkbTxHash: testBurnHash, Status: models.UnlockStatusPending}}
			})
		mockDB.EXPECT().UpdateOne(models.CollectionUnlocks, mock.Anything, mock.Anything).Return(int64(1), nil).
			Run(func(collection string, filter interface{}, update interface{}) {
				set := update.(bson.M)["$set"].(bson.M)
				assert.Equal(t, models.UnlockStatusSuccess, set["status"])
				assert.Equal(t, "unlocktx", set["ada_tx_hash"])
			})

		err := x.HandleUnlock(unlockResult())

		assert.Nil(t, err)
		assert.Equal(t, int64(1), x.processed)
	})

	t.Run("Keeps dispatched tx hash", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestLockMonitor(t, mockClient, models.RoleCollector)

		mockDB.EXPECT().FindMany(models.CollectionUnlocks, mock.Anything, mock.Anything).Return(nil).
			Run(func(collection string, filter interface{}, result interface{}) {
				*result.(*[]models.AdaUnlock) = []models.AdaUnlock{{CkbTxHash: testBurnHash, AdaTxHash: "dispatched"}}
			})
		mockDB.EXPECT().UpdateOne(models.CollectionUnlocks, mock.Anything, mock.Anything).Return(int64(1), nil).
			Run(func(collection string, filter interface{}, update interface{}) {
				set := update.(bson.M)["$set"].(bson.M)
				_, ok := set["ada_tx_hash"]
				assert.False(t, ok)
			})

		err := x.HandleUnlock(unlockResult())

		assert.Nil(t, err)
	})

	t.Run("Already settled", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestLockMonitor(t, mockClient, models.RoleCollector)

		mockDB.EXPECT().FindMany(models.CollectionUnlocks, mock.Anything, mock.Anything).Return(nil).
			Run(func(collection string, filter interface{}, result interface{}) {
				*result.(*[]models.AdaUnlock) = []models.AdaUnlock{{CkbTxHash: testBurnHash}}
			})
		mockDB.EXPECT().UpdateOne(models.CollectionUnlocks, mock.Anything, mock.Anything).Return(int64(0), nil)

		err := x.HandleUnlock(unlockResult())

		assert.Nil(t, err)
		assert.Equal(t, int64(0), x.processed)
	})

	t.Run("Settle error", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestLockMonitor(t, mockClient, models.RoleCollector)

		mockDB.EXPECT().FindMany(models.CollectionUnlocks, mock.Anything, mock.Anything).Return(nil).
			Run(func(collection string, filter interface{}, result interface{}) {
				*result.(*[]models.AdaUnlock) = []models.AdaUnlock{{CkbTxHash: testBurnHash}}
			})
		mockDB.EXPECT().UpdateOne(models.CollectionUnlocks, mock.Anything, mock.Anything).Return(int64(0), errors.New("error"))

		err := x.HandleUnlock(unlockResult())

		assert.NotNil(t, err)
	})
}

func TestLockMonitorHandleLock(t *testing.T) {

	t.Run("Nil result", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		x := NewTestLockMonitor(t, mockClient, models.RoleCollector)

		assert.False(t, x.HandleLock(nil))
	})

	t.Run("Collector queues mint and stores pending lock", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		stubCreateMint(t, nil)
		x := NewTestLockMonitor(t, mockClient, models.RoleCollector)

		mockDB.EXPECT().InsertMany(models.CollectionMints, mock.Anything).Return(nil).
			Run(func(collection string, data []interface{}) {
				mint := data[0].(models.CkbMint)
				assert.Equal(t, "locktx", mint.ID)
				assert.Equal(t, models.MintStatusTodo, mint.Status)
			})
		mockDB.EXPECT().InsertMany(models.CollectionLocks, mock.Anything).Return(nil).
			Run(func(collection string, data []interface{}) {
				lock := data[0].(models.AdaLock)
				assert.Equal(t, "locktx", lock.TxID)
				assert.Equal(t, models.LockStatusPending, lock.Status)
				assert.Equal(t, "5000000", lock.Amount)
				assert.Equal(t, testRecipient, lock.Recipient)
			})

		success := x.HandleLock(lockResult())

		assert.True(t, success)
		assert.Equal(t, int64(1), x.processed)
	})

	t.Run("Collector skips mint without recipient", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestLockMonitor(t, mockClient, models.RoleCollector)

		result := lockResult()
		result.Recipient = ""
		mockDB.EXPECT().InsertMany(models.CollectionLocks, mock.Anything).Return(nil)

		success := x.HandleLock(result)

		assert.True(t, success)
	})

	t.Run("Collector duplicate mint", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		stubCreateMint(t, nil)
		x := NewTestLockMonitor(t, mockClient, models.RoleCollector)

		mockDB.EXPECT().InsertMany(models.CollectionMints, mock.Anything).Return(mongo.CommandError{Code: 11000})
		mockDB.EXPECT().InsertMany(models.CollectionLocks, mock.Anything).Return(mongo.CommandError{Code: 11000})

		success := x.HandleLock(lockResult())

		assert.True(t, success)
		assert.Equal(t, int64(0), x.processed)
	})

	t.Run("Collector mint error", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		stubCreateMint(t, nil)
		x := NewTestLockMonitor(t, mockClient, models.RoleCollector)

		mockDB.EXPECT().InsertMany(models.CollectionMints, mock.Anything).Return(errors.New("error"))

		success := x.HandleLock(lockResult())

		assert.False(t, success)
	})

	t.Run("Collector create mint error", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		stubCreateMint(t, errors.New("bad recipient"))
		x := NewTestLockMonitor(t, mockClient, models.RoleCollector)

		success := x.HandleLock(lockResult())

		assert.False(t, success)
		assert.Contains(t, x.lastError, "bad recipient")
	})

	t.Run("Watcher stores settled lock", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestLockMonitor(t, mockClient, models.RoleWatcher)

		mockDB.EXPECT().InsertMany(models.CollectionLocks, mock.Anything).Return(nil).
			Run(func(collection string, data []interface{}) {
				assert.Equal(t, models.LockStatusSettled, data[0].(models.AdaLock).Status)
			})

		success := x.HandleLock(lockResult())

		assert.True(t, success)
	})

	t.Run("Watcher settles existing lock", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestLockMonitor(t, mockClient, models.RoleWatcher)

		mockDB.EXPECT().InsertMany(models.CollectionLocks, mock.Anything).Return(mongo.CommandError{Code: 11000})
		mockDB.EXPECT().UpdateOne(models.CollectionLocks, mock.Anything, mock.Anything).Return(int64(1), nil).
			Run(func(collection string, filter interface{}, update interface{}) {
				assert.Equal(t, "locktx", filter.(bson.M)["_id"])
			})

		success := x.HandleLock(lockResult())

		assert.True(t, success)
	})

	t.Run("Lock insert error", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestLockMonitor(t, mockClient, models.RoleWatcher)

		mockDB.EXPECT().InsertMany(models.CollectionLocks, mock.Anything).Return(errors.New("error"))

		success := x.HandleLock(lockResult())

		assert.False(t, success)
	})
}

func TestLockMonitorSyncTxs(t *testing.T) {
	stubValidateTx := func(t *testing.T, results map[string]*util.ValidateTxResult) {
		original := utilValidateTx
		t.Cleanup(func() { utilValidateTx = original })
		utilValidateTx = func(tx *client.Transaction, lockAddress string, confirmations int64, label uint64) *util.ValidateTxResult {
			return results[tx.ID]
		}
	}

	t.Run("List error", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		x := NewTestLockMonitor(t, mockClient, models.RoleCollector)

		mockClient.EXPECT().ListTransactions(testWalletID).Return(nil, errors.New("error"))

		assert.False(t, x.SyncTxs())
		assert.Contains(t, x.lastError, "Error listing transactions")
	})

	t.Run("Skips unconfirmed", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		x := NewTestLockMonitor(t, mockClient, models.RoleCollector)

		result := lockResult()
		result.Confirmed = false
		stubValidateTx(t, map[string]*util.ValidateTxResult{"locktx": result})
		mockClient.EXPECT().ListTransactions(testWalletID).Return([]client.Transaction{{ID: "locktx"}}, nil)

		assert.True(t, x.SyncTxs())
	})

	t.Run("Handles locks and unlocks", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestLockMonitor(t, mockClient, models.RoleWatcher)

		stubValidateTx(t, map[string]*util.ValidateTxResult{
			"locktx":   lockResult(),
			"unlocktx": unlockResult(),
		})
		mockClient.EXPECT().ListTransactions(testWalletID).Return([]client.Transaction{{ID: "unlocktx"}, {ID: "locktx"}}, nil)
		mockDB.EXPECT().FindMany(models.CollectionUnlocks, mock.Anything, mock.Anything).Return(nil)
		mockDB.EXPECT().InsertMany(models.CollectionLocks, mock.Anything).Return(nil)

		assert.True(t, x.SyncTxs())
	})

	t.Run("Duplicate unlock aborts", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestLockMonitor(t, mockClient, models.RoleWatcher)

		stubValidateTx(t, map[string]*util.ValidateTxResult{
			"locktx":   lockResult(),
			"unlocktx": unlockResult(),
		})
		mockClient.EXPECT().ListTransactions(testWalletID).Return([]client.Transaction{{ID: "unlocktx"}, {ID: "locktx"}}, nil)
		mockDB.EXPECT().FindMany(models.CollectionUnlocks, mock.Anything, mock.Anything).Return(nil).
			Run(func(collection string, filter interface{}, result interface{}) {
				*result.(*[]models.AdaUnlock) = []models.AdaUnlock{{CkbTxHash: testBurnHash}, {CkbTxHash: testBurnHash}}
			})

		assert.False(t, x.SyncTxs())
		assert.Contains(t, x.lastError, ErrDuplicateUnlock.Error())
	})

	t.Run("Failure does not stop the cycle", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestLockMonitor(t, mockClient, models.RoleWatcher)

		stubValidateTx(t, map[string]*util.ValidateTxResult{
			"locktx":   lockResult(),
			"unlocktx": unlockResult(),
		})
		mockClient.EXPECT().ListTransactions(testWalletID).Return([]client.Transaction{{ID: "unlocktx"}, {ID: "locktx"}}, nil)
		mockDB.EXPECT().FindMany(models.CollectionUnlocks, mock.Anything, mock.Anything).Return(errors.New("error"))
		mockDB.EXPECT().InsertMany(models.CollectionLocks, mock.Anything).Return(nil)

		assert.False(t, x.SyncTxs())
	})
}

func setupClassifierConfig(t *testing.T) {
	original := app.Config
	t.Cleanup(func() { app.Config = original })

	app.Config.Bridge.Asset = models.AssetAda
	app.Config.Ckb.AddressPrefix = "ckt"
	app.Config.Ckb.LockScript = models.ScriptConfig{
		CodeHash: "0x9bd7e06f3ecf4be0f2fcd2188b23f1b9fcc88e5d4b65a8637b17723bbda3cce8",
		HashType: ckb.HashTypeType,
	}
}

// unlockTable keeps unlock rows in memory behind the mock database.
type unlockTable map[string]*models.AdaUnlock

func (u unlockTable) expect(mockDB *appMocks.MockDatabase) {
	mockDB.EXPECT().UpdateMany(models.CollectionUnlocks, mock.Anything, mock.Anything).
		RunAndReturn(func(collection string, filter interface{}, update interface{}) (int64, error) {
			set := update.(bson.M)["$set"].(bson.M)
			var matched int64
			for _, id := range filter.(bson.M)["_id"].(bson.M)["$in"].([]string) {
				row, ok := u[id]
				if !ok {
					continue
				}
				matched++
				row.Status = set["status"].(string)
				if hash, ok := set["ada_tx_hash"]; ok {
					row.AdaTxHash = hash.(string)
				}
			}
			return matched, nil
		})
	mockDB.EXPECT().FindMany(models.CollectionUnlocks, mock.Anything, mock.Anything).
		RunAndReturn(func(collection string, filter interface{}, result interface{}) error {
			f := filter.(bson.M)
			rows := []models.AdaUnlock{}
			if row, ok := u[f["_id"].(string)]; ok && row.Status != f["status"].(bson.M)["$ne"] {
				rows = append(rows, *row)
			}
			*result.(*[]models.AdaUnlock) = rows
			return nil
		})
	mockDB.EXPECT().UpdateOne(models.CollectionUnlocks, mock.Anything, mock.Anything).
		RunAndReturn(func(collection string, filter interface{}, update interface{}) (int64, error) {
			f := filter.(bson.M)
			row, ok := u[f["_id"].(string)]
			if !ok || row.Status == models.UnlockStatusSuccess {
				return 0, nil
			}
			set := update.(bson.M)["$set"].(bson.M)
			row.Status = set["status"].(string)
			if hash, ok := set["ada_tx_hash"]; ok {
				row.AdaTxHash = hash.(string)
			}
			return 1, nil
		})
}

func TestLockMonitorSyncTxsClassifies(t *testing.T) {

	t.Run("Lock queues mint", func(t *testing.T) {
		setupClassifierConfig(t)
		mockClient := mocks.NewMockWalletClient(t)
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestLockMonitor(t, mockClient, models.RoleCollector)

		tx := client.Transaction{
			ID:     "locktx",
			Status: models.TransactionStatusInLedger,
			Depth:  &client.Depth{Quantity: 20},
			Inputs: []client.TxInput{
				{ID: "prev", Index: 0, Address: "addr_test1sender"},
			},
			Outputs: []client.TxOutput{
				{Address: testLockAddress, Amount: client.Lovelace(5000000)},
				{Address: "addr_test1sender", Amount: client.Lovelace(1000000)},
			},
			Metadata: util.BridgeMetadata(testLabel, testRecipient),
		}
		mockClient.EXPECT().ListTransactions(testWalletID).Return([]client.Transaction{tx}, nil)

		var mint models.CkbMint
		var lock models.AdaLock
		mockDB.EXPECT().InsertMany(models.CollectionMints, mock.Anything).Return(nil).
			Run(func(collection string, data []interface{}) {
				mint = data[0].(models.CkbMint)
			})
		mockDB.EXPECT().InsertMany(models.CollectionLocks, mock.Anything).Return(nil).
			Run(func(collection string, data []interface{}) {
				lock = data[0].(models.AdaLock)
			})

		assert.True(t, x.SyncTxs())

		assert.Equal(t, "locktx", lock.TxID)
		assert.Equal(t, models.LockStatusPending, lock.Status)
		assert.Equal(t, "5000000", lock.Amount)
		assert.Equal(t, "addr_test1sender", lock.Sender)
		assert.Equal(t, testRecipient, lock.Recipient)

		assert.Equal(t, "locktx", mint.ID)
		assert.Equal(t, models.MintStatusTodo, mint.Status)
		assert.Equal(t, "5000000", mint.Amount)
		assert.NotEmpty(t, mint.RecipientLockscript)
		assert.Equal(t, int64(1), x.processed)
	})

	t.Run("Dispatched unlocks settle", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB

		table := unlockTable{}
		for _, u := range testUnlocks() {
			row := u
			table[u.CkbTxHash] = &row
		}
		table.expect(mockDB)
		mockDB.EXPECT().PurgeExpiredLocks().Return(nil)
		mockDB.EXPECT().FindManyWithLimit(models.CollectionUnlocks, bson.M{"status": models.UnlockStatusTodo}, int64(2), mock.Anything).Return(nil).
			Run(func(collection string, filter interface{}, limit int64, result interface{}) {
				*result.(*[]models.AdaUnlock) = testUnlocks()
			})
		expectLocks(mockDB)

		var sent client.Transaction
		mockClient.EXPECT().GetAvailableBalance(testWalletID).Return(uint64(5000000), nil)
		mockClient.EXPECT().EstimateFee(testWalletID, mock.Anything, mock.Anything).Return(&client.FeeEstimate{}, nil)
		mockClient.EXPECT().SendPayment(testWalletID, "passphrase", mock.Anything, mock.Anything).
			RunAndReturn(func(walletID string, passphrase string, payments []client.Payment, metadata client.TxMetadata) (*client.Transaction, error) {
				sent = client.Transaction{
					ID:       "adatx",
					Status:   models.TransactionStatusInLedger,
					Depth:    &client.Depth{Quantity: 20},
					Inputs:   []client.TxInput{{ID: "prev", Index: 0, Address: testLockAddress}},
					Metadata: metadata,
				}
				for _, payment := range payments {
					sent.Outputs = append(sent.Outputs, client.TxOutput{Address: payment.Address, Amount: payment.Amount})
				}
				sent.Outputs = append(sent.Outputs, client.TxOutput{Address: testLockAddress, Amount: client.Lovelace(1700000)})
				return &client.Transaction{ID: sent.ID}, nil
			})

		executor := NewTestUnlockExecutor(t, mockClient)
		executor.Run()

		assert.True(t, executor.Status().Healthy)
		for _, row := range table {
			assert.Equal(t, models.UnlockStatusPending, row.Status)
			assert.Equal(t, "adatx", row.AdaTxHash)
		}

		mockClient.EXPECT().ListTransactions(testWalletID).Return([]client.Transaction{sent}, nil)
		monitor := NewTestLockMonitor(t, mockClient, models.RoleCollector)

		assert.True(t, monitor.SyncTxs())

		assert.Len(t, table, 2)
		for _, row := range table {
			assert.Equal(t, models.UnlockStatusSuccess, row.Status)
			assert.Equal(t, "adatx", row.AdaTxHash)
		}
		assert.Equal(t, int64(2), monitor.processed)
	})
}

func TestLockMonitorSyncLocks(t *testing.T) {

	t.Run("Find error", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestLockMonitor(t, mockClient, models.RoleCollector)

		mockDB.EXPECT().FindMany(models.CollectionLocks, mock.Anything, mock.Anything).Return(errors.New("error"))

		assert.False(t, x.SyncLocks())
	})

	t.Run("Advances locks", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestLockMonitor(t, mockClient, models.RoleCollector)

		mockDB.EXPECT().FindMany(models.CollectionLocks, bson.M{"status": bson.M{"$ne": models.LockStatusSettled}}, mock.Anything).Return(nil).
			Run(func(collection string, filter interface{}, result interface{}) {
				*result.(*[]models.AdaLock) = []models.AdaLock{
					{TxID: "a", Status: models.LockStatusPending},
					{TxID: "b", Status: models.LockStatusSubmitted},
					{TxID: "c", Status: models.LockStatusPending},
					{TxID: "d", Status: models.LockStatusPending},
				}
			})

		mints := map[string]string{
			"a": models.MintStatusPending,
			"b": models.MintStatusSuccess,
			"c": models.MintStatusTodo,
		}
		mockDB.EXPECT().FindOne(models.CollectionMints, mock.Anything, mock.Anything).
			RunAndReturn(func(collection string, filter interface{}, result interface{}) error {
				id := filter.(bson.M)["_id"].(string)
				status, ok := mints[id]
				if !ok {
					return mongo.ErrNoDocuments
				}
				*result.(*models.CkbMint) = models.CkbMint{ID: id, Status: status}
				return nil
			})

		updates := map[string]string{}
		mockDB.EXPECT().UpdateOne(models.CollectionLocks, mock.Anything, mock.Anything).
			RunAndReturn(func(collection string, filter interface{}, update interface{}) (int64, error) {
				id := filter.(bson.M)["_id"].(string)
				updates[id] = update.(bson.M)["$set"].(bson.M)["status"].(string)
				return 1, nil
			})

		assert.True(t, x.SyncLocks())
		assert.Equal(t, map[string]string{
			"a": models.LockStatusSubmitted,
			"b": models.LockStatusSettled,
		}, updates)
	})

	t.Run("Update error", func(t *testing.T) {
		mockClient := mocks.NewMockWalletClient(t)
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestLockMonitor(t, mockClient, models.RoleCollector)

		mockDB.EXPECT().FindMany(models.CollectionLocks, mock.Anything, mock.Anything).Return(nil).
			Run(func(collection string, filter interface{}, result interface{}) {
				*result.(*[]models.AdaLock) = []models.AdaLock{{TxID: "a", Status: models.LockStatusPending}}
			})
		mockDB.EXPECT().FindOne(models.CollectionMints, mock.Anything, mock.Anything).Return(nil).
			Run(func(collection string, filter interface{}, result interface{}) {
				*result.(*models.CkbMint) = models.CkbMint{ID: "a", Status: models.MintStatusSuccess}
			})
		mockDB.EXPECT().UpdateOne(models.CollectionLocks, mock.Anything, mock.Anything).Return(int64(0), errors.New("error"))

		assert.False(t, x.SyncLocks())
	})
}

func TestLockMonitorRun(t *testing.T) {
	mockClient := mocks.NewMockWalletClient(t)
	mockDB := appMocks.NewMockDatabase(t)
	app.DB = mockDB
	x := NewTestLockMonitor(t, mockClient, models.RoleCollector)

	mockClient.EXPECT().ListTransactions(testWalletID).Return(nil, errors.New("error"))
	mockDB.EXPECT().FindMany(models.CollectionLocks, mock.Anything, mock.Anything).Return(nil)

	x.Run()

	assert.False(t, x.Status().Healthy)
}

func TestNewLockMonitor(t *testing.T) {
	original := cardanoNewClient
	defer func() {
		cardanoNewClient = original
		app.Config.LockMonitor = models.ServiceConfig{}
	}()

	t.Run("Disabled", func(t *testing.T) {
		app.Config.LockMonitor.Enabled = false

		service := NewLockMonitor(&sync.WaitGroup{}, models.ServiceHealth{})

		assert.IsType(t, &app.EmptyService{}, service)
	})

	t.Run("Client error", func(t *testing.T) {
		defer func() { log.StandardLogger().ExitFunc = nil }()
		log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

		app.Config.LockMonitor.Enabled = true
		app.Config.LockMonitor.IntervalMillis = 1000
		cardanoNewClient = func(models.CardanoConfig) (client.WalletClient, error) {
			return nil, errors.New("error")
		}

		assert.Panics(t, func() { NewLockMonitor(&sync.WaitGroup{}, models.ServiceHealth{}) })
	})

	t.Run("Enabled", func(t *testing.T) {
		app.Config.LockMonitor.Enabled = true
		app.Config.LockMonitor.IntervalMillis = 1000
		app.Config.Cardano.WalletID = testWalletID
		mockClient := mocks.NewMockWalletClient(t)
		cardanoNewClient = func(models.CardanoConfig) (client.WalletClient, error) {
			return mockClient, nil
		}

		service := NewLockMonitor(&sync.WaitGroup{}, models.ServiceHealth{Processed: 7})

		assert.IsType(t, &app.RunnerService{}, service)
		health := service.Health()
		assert.Equal(t, LockMonitorName, health.Name)
	})
}

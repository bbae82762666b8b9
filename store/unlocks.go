package store

import (
	"errors"
	"time"

	"github.com/dan13ram/ada-bridge/app"
	"github.com/dan13ram/ada-bridge/common"
	"github.com/dan13ram/ada-bridge/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateUnlocks stores unlocks keyed by the normalized burn tx hash.
func CreateUnlocks(unlocks []models.AdaUnlock) error {
	if len(unlocks) == 0 {
		return nil
	}
	now := time.Now()
	docs := make([]interface{}, 0, len(unlocks))
	for _, u := range unlocks {
		u.CkbTxHash = common.NormalizeHash(u.CkbTxHash)
		if u.CreatedAt.IsZero() {
			u.CreatedAt = now
		}
		u.UpdatedAt = now
		docs = append(docs, u)
	}
	return app.DB.InsertMany(models.CollectionUnlocks, docs)
}

// UpdateUnlocks writes status to the whole batch in a single update. The
// settlement hash and message are only written when set, so marking a batch
// as error never clears a stored ada_tx_hash.
func UpdateUnlocks(unlocks []models.AdaUnlock, status string, adaTxHash string, message string) error {
	if len(unlocks) == 0 {
		return nil
	}

	keys := make([]string, 0, len(unlocks))
	for _, u := range unlocks {
		keys = append(keys, u.CkbTxHash)
	}

	now := time.Now()
	set := bson.M{
		"status":     status,
		"updated_at": now,
	}
	if adaTxHash != "" {
		set["ada_tx_hash"] = adaTxHash
	}
	if message != "" {
		set["message"] = message
	}

	filter := bson.M{"_id": bson.M{"$in": keys}}
	if _, err := app.DB.UpdateMany(models.CollectionUnlocks, filter, bson.M{"$set": set}); err != nil {
		return err
	}

	for i := range unlocks {
		unlocks[i].Status = status
		if adaTxHash != "" {
			unlocks[i].AdaTxHash = adaTxHash
		}
		if message != "" {
			unlocks[i].Message = message
		}
		unlocks[i].UpdatedAt = now
	}
	return nil
}

// FindUnlockByKey returns nil when no unlock is stored for the burn tx hash.
func FindUnlockByKey(ckbTxHash string) (*models.AdaUnlock, error) {
	var unlock models.AdaUnlock
	err := app.DB.FindOne(models.CollectionUnlocks, bson.M{"_id": common.NormalizeHash(ckbTxHash)}, &unlock)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &unlock, nil
}

// FindUnlocksByStatus returns up to limit unlocks in status, oldest first.
func FindUnlocksByStatus(status string, limit int64) ([]models.AdaUnlock, error) {
	unlocks := []models.AdaUnlock{}
	err := app.DB.FindManyWithLimit(models.CollectionUnlocks, bson.M{"status": status}, limit, &unlocks)
	return unlocks, err
}

// FindUnlocksNotStatus returns the unlocks stored under key that are not in status.
func FindUnlocksNotStatus(status string, key string) ([]models.AdaUnlock, error) {
	unlocks := []models.AdaUnlock{}
	filter := bson.M{
		"_id":    common.NormalizeHash(key),
		"status": bson.M{"$ne": status},
	}
	err := app.DB.FindMany(models.CollectionUnlocks, filter, &unlocks)
	return unlocks, err
}

// SettleUnlock marks an unlock as success. The observed cardano tx id is
// recorded when the dispatcher did not store one.
func SettleUnlock(unlock *models.AdaUnlock, adaTxHash string) (bool, error) {
	set := bson.M{
		"status":     models.UnlockStatusSuccess,
		"updated_at": time.Now(),
	}
	if unlock.AdaTxHash == "" && adaTxHash != "" {
		set["ada_tx_hash"] = adaTxHash
	}

	filter := bson.M{
		"_id":    unlock.CkbTxHash,
		"status": bson.M{"$ne": models.UnlockStatusSuccess},
	}

	matched, err := app.DB.UpdateOne(models.CollectionUnlocks, filter, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return matched > 0, nil
}

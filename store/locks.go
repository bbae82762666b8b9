package store

import (
	"errors"
	"time"

	"github.com/dan13ram/ada-bridge/app"
	"github.com/dan13ram/ada-bridge/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateLocks inserts new locks. Existing keys surface as a duplicate key error.
func CreateLocks(locks []models.AdaLock) error {
	if len(locks) == 0 {
		return nil
	}
	now := time.Now()
	docs := make([]interface{}, 0, len(locks))
	for _, l := range locks {
		if l.CreatedAt.IsZero() {
			l.CreatedAt = now
		}
		l.UpdatedAt = now
		docs = append(docs, l)
	}
	return app.DB.InsertMany(models.CollectionLocks, docs)
}

// FindLockByKey returns nil when no lock is stored under txID.
func FindLockByKey(txID string) (*models.AdaLock, error) {
	var lock models.AdaLock
	err := app.DB.FindOne(models.CollectionLocks, bson.M{"_id": txID}, &lock)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &lock, nil
}

func FindLocksNotStatus(status string) ([]models.AdaLock, error) {
	locks := []models.AdaLock{}
	err := app.DB.FindMany(models.CollectionLocks, bson.M{"status": bson.M{"$ne": status}}, &locks)
	return locks, err
}

// UpdateLockStatus moves a lock forward to status. It reports false when the
// lock is missing or already at or past status.
func UpdateLockStatus(txID string, status string) (bool, error) {
	previous := models.PreviousLockStatuses(status)
	if len(previous) == 0 {
		return false, nil
	}

	filter := bson.M{
		"_id":    txID,
		"status": bson.M{"$in": previous},
	}
	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		},
	}

	matched, err := app.DB.UpdateOne(models.CollectionLocks, filter, update)
	if err != nil {
		return false, err
	}
	return matched > 0, nil
}

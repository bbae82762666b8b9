package store

import (
	"github.com/dan13ram/ada-bridge/app"
	"github.com/dan13ram/ada-bridge/models"
	"go.mongodb.org/mongo-driver/bson"
)

// lock -> mint, newest first
func lockRecordsPipeline(match bson.M) []bson.M {
	return []bson.M{
		{"$match": match},
		{"$sort": bson.M{"created_at": -1}},
		{"$lookup": bson.M{
			"from":         models.CollectionMints,
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "mint",
		}},
		{"$unwind": bson.M{"path": "$mint", "preserveNullAndEmptyArrays": true}},
		{"$project": bson.M{
			"_id":         0,
			"sender":      "$sender",
			"recipient":   "$recipient",
			"lock_amount": "$amount",
			"mint_amount": "$mint.amount",
			"lock_hash":   "$_id",
			"mint_hash":   "$mint.mint_hash",
			"lock_time":   "$created_at",
			"mint_time":   "$mint.updated_at",
			"status":      bson.M{"$ifNull": bson.A{"$mint.status", "$status"}},
			"asset":       "$mint.asset",
			"message":     "$mint.message",
		}},
	}
}

// burn -> unlock, newest first
func unlockRecordsPipeline(match bson.M) []bson.M {
	return []bson.M{
		{"$match": match},
		{"$sort": bson.M{"created_at": -1}},
		{"$lookup": bson.M{
			"from":         models.CollectionUnlocks,
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "unlock",
		}},
		{"$unwind": bson.M{"path": "$unlock", "preserveNullAndEmptyArrays": true}},
		{"$project": bson.M{
			"_id":           0,
			"sender":        "$sender_lock_hash",
			"recipient":     "$recipient_address",
			"burn_amount":   "$amount",
			"unlock_amount": "$unlock.amount",
			"burn_hash":     "$_id",
			"unlock_hash":   "$unlock.ada_tx_hash",
			"burn_time":     "$created_at",
			"unlock_time":   "$unlock.updated_at",
			"status":        "$unlock.status",
			"asset":         "$asset",
			"message":       "$unlock.message",
		}},
	}
}

func LockRecordsByRecipient(recipient string) ([]models.LockRecord, error) {
	records := []models.LockRecord{}
	err := app.DB.Aggregate(models.CollectionLocks, lockRecordsPipeline(bson.M{"recipient": recipient}), &records)
	return records, err
}

func LockRecordsBySender(sender string) ([]models.LockRecord, error) {
	records := []models.LockRecord{}
	err := app.DB.Aggregate(models.CollectionLocks, lockRecordsPipeline(bson.M{"sender": sender}), &records)
	return records, err
}

func UnlockRecordsBySenderLockHash(lockHash string) ([]models.UnlockRecord, error) {
	records := []models.UnlockRecord{}
	err := app.DB.Aggregate(models.CollectionBurns, unlockRecordsPipeline(bson.M{"sender_lock_hash": lockHash}), &records)
	return records, err
}

func UnlockRecordsByRecipient(recipient string) ([]models.UnlockRecord, error) {
	records := []models.UnlockRecord{}
	err := app.DB.Aggregate(models.CollectionBurns, unlockRecordsPipeline(bson.M{"recipient_address": recipient}), &records)
	return records, err
}

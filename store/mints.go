package store

import (
	"errors"
	"time"

	"github.com/dan13ram/ada-bridge/app"
	"github.com/dan13ram/ada-bridge/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func CreateMints(mints []models.CkbMint) error {
	if len(mints) == 0 {
		return nil
	}
	now := time.Now()
	docs := make([]interface{}, 0, len(mints))
	for _, m := range mints {
		if m.CreatedAt.IsZero() {
			m.CreatedAt = now
		}
		m.UpdatedAt = now
		docs = append(docs, m)
	}
	return app.DB.InsertMany(models.CollectionMints, docs)
}

// FindMintByKey returns nil when no mint is queued for id.
func FindMintByKey(id string) (*models.CkbMint, error) {
	var mint models.CkbMint
	err := app.DB.FindOne(models.CollectionMints, bson.M{"_id": id}, &mint)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &mint, nil
}

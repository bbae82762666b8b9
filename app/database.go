package app

import (
	"context"
	"time"

	"github.com/dan13ram/ada-bridge/models"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	lock "github.com/square/mongo-lock"
)

type Database interface {
	Connect() error
	SetupLocker() error
	SetupIndexes() error
	Disconnect() error

	InsertOne(collection string, data interface{}) error
	InsertMany(collection string, data []interface{}) error
	FindOne(collection string, filter interface{}, result interface{}) error
	FindMany(collection string, filter interface{}, result interface{}) error
	FindManyWithLimit(collection string, filter interface{}, limit int64, result interface{}) error
	UpdateOne(collection string, filter interface{}, update interface{}) (int64, error)
	UpdateMany(collection string, filter interface{}, update interface{}) (int64, error)
	UpsertOne(collection string, filter interface{}, update interface{}) error
	Aggregate(collection string, pipeline interface{}, result interface{}) error

	XLock(resourceID string) (string, error)
	SLock(resourceID string) (string, error)
	Unlock(lockID string) error
	PurgeExpiredLocks() error
}

// mongoDatabase is a wrapper around the mongo database
type mongoDatabase struct {
	db       *mongo.Database
	uri      string
	database string
	timeout  time.Duration
	lockTTL  uint
	locker   *lock.Client
}

var (
	DB Database
)

// Connect connects to the database
func (d *mongoDatabase) Connect() error {
	log.Debug("[DB] Connecting to database")
	wcMajority := writeconcern.Majority()

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(d.uri).SetWriteConcern(wcMajority))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}
	d.db = client.Database(d.database)

	log.Info("[DB] Connected to mongo database: ", d.database)
	return nil
}

// SetupLocker sets up the locker
func (d *mongoDatabase) SetupLocker() error {
	log.Debug("[DB] Setting up locker")

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	locker := lock.NewClient(d.db.Collection("locks"))
	if err := locker.CreateIndexes(ctx); err != nil {
		return err
	}
	d.locker = locker

	log.Info("[DB] Locker setup")
	return nil
}

// XLock locks a resource for exclusive access
func (d *mongoDatabase) XLock(resourceID string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	lockID := uuid.NewString()
	err := d.locker.XLock(ctx, resourceID, lockID, lock.LockDetails{TTL: d.lockTTL})
	return lockID, err
}

// SLock locks a resource for shared access
func (d *mongoDatabase) SLock(resourceID string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	lockID := uuid.NewString()
	err := d.locker.SLock(ctx, resourceID, lockID, lock.LockDetails{TTL: d.lockTTL}, -1)
	return lockID, err
}

// Unlock unlocks a resource
func (d *mongoDatabase) Unlock(lockID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	_, err := d.locker.Unlock(ctx, lockID)
	return err
}

// PurgeExpiredLocks deletes locks whose TTL has run out
func (d *mongoDatabase) PurgeExpiredLocks() error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	purged, err := lock.NewPurger(d.locker).Purge(ctx)
	if err != nil {
		return err
	}
	if len(purged) > 0 {
		log.Warn("[DB] Purged expired locks: ", len(purged))
	}
	return nil
}

func (d *mongoDatabase) createIndex(collection string, keys bson.D, unique bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	_, err := d.db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetUnique(unique),
	})
	return err
}

// SetupIndexes creates the lookup indexes, primary keys are the record _ids
func (d *mongoDatabase) SetupIndexes() error {
	log.Debug("[DB] Setting up indexes")

	indexes := []struct {
		collection string
		keys       bson.D
		unique     bool
	}{
		{models.CollectionLocks, bson.D{{Key: "status", Value: 1}}, false},
		{models.CollectionLocks, bson.D{{Key: "sender", Value: 1}}, false},
		{models.CollectionLocks, bson.D{{Key: "recipient", Value: 1}}, false},
		{models.CollectionUnlocks, bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}}, false},
		{models.CollectionUnlocks, bson.D{{Key: "recipient_address", Value: 1}}, false},
		{models.CollectionMints, bson.D{{Key: "recipient_lockscript", Value: 1}}, false},
		{models.CollectionBurns, bson.D{{Key: "sender_lock_hash", Value: 1}}, false},
		{models.CollectionHealthChecks, bson.D{{Key: "validator_id", Value: 1}, {Key: "hostname", Value: 1}}, true},
	}

	for _, index := range indexes {
		log.Debug("[DB] Setting up indexes for ", index.collection)
		if err := d.createIndex(index.collection, index.keys, index.unique); err != nil {
			return err
		}
	}

	log.Info("[DB] Indexes setup")

	return nil
}

// Disconnect disconnects from the database
func (d *mongoDatabase) Disconnect() error {
	log.Debug("[DB] Disconnecting from database")
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	err := d.db.Client().Disconnect(ctx)
	log.Info("[DB] Disconnected from database")
	return err
}

// method for insert single value in a collection
func (d *mongoDatabase) InsertOne(collection string, data interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	_, err := d.db.Collection(collection).InsertOne(ctx, data)
	return err
}

// method for insert multiple values in a collection, duplicates do not stop the remaining inserts
func (d *mongoDatabase) InsertMany(collection string, data []interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	_, err := d.db.Collection(collection).InsertMany(ctx, data, options.InsertMany().SetOrdered(false))
	return err
}

// method for find single value in a collection
func (d *mongoDatabase) FindOne(collection string, filter interface{}, result interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	err := d.db.Collection(collection).FindOne(ctx, filter).Decode(result)
	return err
}

// method for find multiple values in a collection
func (d *mongoDatabase) FindMany(collection string, filter interface{}, result interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	cursor, err := d.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return err
	}
	err = cursor.All(ctx, result)
	return err
}

// method for find multiple values in a collection, oldest first
func (d *mongoDatabase) FindManyWithLimit(collection string, filter interface{}, limit int64, result interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}).SetLimit(limit)
	cursor, err := d.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	err = cursor.All(ctx, result)
	return err
}

// method for update single value in a collection, returns the matched count
func (d *mongoDatabase) UpdateOne(collection string, filter interface{}, update interface{}) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	result, err := d.db.Collection(collection).UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

// method for upsert single value in a collection
func (d *mongoDatabase) UpsertOne(collection string, filter interface{}, update interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	_, err := d.db.Collection(collection).UpdateOne(ctx, filter, update, opts)
	return err
}

// method for updating every document matching filter
func (d *mongoDatabase) UpdateMany(collection string, filter interface{}, update interface{}) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	result, err := d.db.Collection(collection).UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

// method for running an aggregation pipeline on a collection
func (d *mongoDatabase) Aggregate(collection string, pipeline interface{}, result interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	cursor, err := d.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	err = cursor.All(ctx, result)
	return err
}

func newMongoDatabase() *mongoDatabase {
	return &mongoDatabase{
		uri:      Config.MongoDB.URI,
		database: Config.MongoDB.Database,
		timeout:  time.Duration(Config.MongoDB.TimeoutMillis) * time.Millisecond,
		lockTTL:  lockTTLSeconds(),
	}
}

// lockTTLSeconds outlives a dispatch cycle: a balance check, a fee estimate
// and a payment, each bounded by the wallet rpc timeout.
func lockTTLSeconds() uint {
	ttl := uint(DefaultLockTTLSeconds)
	if rpc := uint(4 * Config.Cardano.RPCTimeoutMillis / 1000); rpc > ttl {
		return rpc
	}
	return ttl
}

// InitDB creates a new database wrapper
func InitDB() {
	DB = newMongoDatabase()

	err := DB.Connect()
	if err != nil {
		log.Fatal("[DB] Error connecting to database: ", err)
	}
	err = DB.SetupIndexes()
	if err != nil {
		log.Fatal("[DB] Error setting up indexes: ", err)
	}
	err = DB.SetupLocker()
	if err != nil {
		log.Fatal("[DB] Error setting up locker: ", err)
	}
	err = DB.PurgeExpiredLocks()
	if err != nil {
		log.Error("[DB] Error purging expired locks: ", err)
	}
	log.Info("[DB] Database initialized")
}

package app

import (
	"os"
	"sync"
	"time"

	"github.com/dan13ram/ada-bridge/models"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	HealthServiceName = "HEALTH"
)

type HealthCheckRunner struct {
	validatorID string
	hostname    string
	role        string
	lockAddress string
	ckbAddress  string

	mu       sync.RWMutex
	services []Service
	healthy  bool
}

func (x *HealthCheckRunner) Run() {
	x.healthy = x.PostHealth()
}

func (x *HealthCheckRunner) Status() models.RunnerStatus {
	status := models.RunnerStatus{Healthy: x.healthy}
	if !x.healthy {
		status.LastError = "error posting health"
	}
	return status
}

func (x *HealthCheckRunner) FindLastHealth() (models.Health, error) {
	health := models.Health{}
	filter := bson.M{
		"validator_id": x.validatorID,
		"hostname":     x.hostname,
	}
	err := DB.FindOne(models.CollectionHealthChecks, filter, &health)
	return health, err
}

func (x *HealthCheckRunner) SetServices(services []Service) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.services = services
}

func (x *HealthCheckRunner) ServiceHealths() []models.ServiceHealth {
	x.mu.RLock()
	defer x.mu.RUnlock()

	var serviceHealths []models.ServiceHealth
	for _, service := range x.services {
		health := service.Health()
		if health.Name == EmptyServiceName {
			continue
		}
		serviceHealths = append(serviceHealths, health)
	}
	return serviceHealths
}

func (x *HealthCheckRunner) Healthy(serviceHealths []models.ServiceHealth) bool {
	for _, health := range serviceHealths {
		if !health.Healthy {
			return false
		}
	}
	return true
}

// Health is the snapshot served by the api.
func (x *HealthCheckRunner) Health() models.Health {
	serviceHealths := x.ServiceHealths()
	return models.Health{
		ValidatorID:    x.validatorID,
		Hostname:       x.hostname,
		Role:           x.role,
		LockAddress:    x.lockAddress,
		CkbAddress:     x.ckbAddress,
		Healthy:        x.Healthy(serviceHealths),
		ServiceHealths: serviceHealths,
		UpdatedAt:      time.Now(),
	}
}

func (x *HealthCheckRunner) PostHealth() bool {
	log.Debug("[HEALTH] Posting health")

	filter := bson.M{
		"validator_id": x.validatorID,
		"hostname":     x.hostname,
	}

	serviceHealths := x.ServiceHealths()

	onInsert := bson.M{
		"validator_id": x.validatorID,
		"hostname":     x.hostname,
		"role":         x.role,
		"lock_address": x.lockAddress,
		"ckb_address":  x.ckbAddress,
		"created_at":   time.Now(),
	}

	onUpdate := bson.M{
		"healthy":         x.Healthy(serviceHealths),
		"service_healths": serviceHealths,
		"updated_at":      time.Now(),
	}

	update := bson.M{"$set": onUpdate, "$setOnInsert": onInsert}

	err := DB.UpsertOne(models.CollectionHealthChecks, filter, update)
	if err != nil {
		log.Error("[HEALTH] Error posting health: ", err)
		return false
	}

	log.Info("[HEALTH] Posted health")
	return true
}

func NewHealthCheck() *HealthCheckRunner {
	log.Debug("[HEALTH] Initializing health")

	hostname, err := os.Hostname()
	if err != nil {
		log.Fatal("[HEALTH] Error getting hostname: ", err)
	}

	ckbAddress := ""
	if Config.Ckb.Mnemonic != "" || Config.Ckb.GcpKmsKeyName != "" {
		signer, err := CreateCkbSigner()
		if err != nil {
			log.Fatal("[HEALTH] Error initializing ckb signer: ", err)
		}
		ckbAddress, err = CkbAddress(signer)
		if err != nil {
			log.Fatal("[HEALTH] Error encoding ckb address: ", err)
		}
		signer.Destroy()
	}

	x := &HealthCheckRunner{
		validatorID: Config.Bridge.ValidatorID,
		hostname:    hostname,
		role:        Config.Bridge.Role,
		lockAddress: Config.Cardano.LockAddress,
		ckbAddress:  ckbAddress,
		healthy:     true,
	}

	log.Info("[HEALTH] Initialized health")

	return x
}

func (x *HealthCheckRunner) NewService(wg *sync.WaitGroup) Service {
	return NewRunnerService(HealthServiceName, x, wg, time.Duration(Config.HealthCheck.IntervalMillis)*time.Millisecond)
}

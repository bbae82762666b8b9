package app

import (
	"sync"
	"time"

	"github.com/dan13ram/ada-bridge/models"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	Start()
	Health() models.ServiceHealth
	Stop()
}

type EmptyService struct {
	wg *sync.WaitGroup
}

func (e *EmptyService) Start() {}

func (e *EmptyService) Stop() {
	e.wg.Done()
}

const EmptyServiceName = "empty"

func (e *EmptyService) Health() models.ServiceHealth {
	return models.ServiceHealth{
		Name:         EmptyServiceName,
		LastSyncTime: time.Now(),
		NextSyncTime: time.Now(),
		Healthy:      true,
	}
}

func NewEmptyService(wg *sync.WaitGroup) *EmptyService {
	return &EmptyService{
		wg: wg,
	}
}

// Runner is a single cycle of work, repeated by a RunnerService.
type Runner interface {
	Run()
	Status() models.RunnerStatus
}

type RunnerService struct {
	name     string
	runner   Runner
	stop     chan bool
	wg       *sync.WaitGroup
	interval time.Duration

	healthMu sync.RWMutex
	health   models.ServiceHealth
}

func (x *RunnerService) Start() {
	log.Infof("[%s] Starting service", x.name)
	stop := false
	for !stop {
		log.Infof("[%s] Starting run", x.name)

		started := time.Now()
		x.runner.Run()
		x.UpdateHealth()
		ObserveRun(x.name, x.Health().Healthy, time.Since(started))

		log.Infof("[%s] Finished run, sleeping for %s", x.name, x.interval)

		select {
		case <-x.stop:
			stop = true
			log.Infof("[%s] Stopped service", x.name)
		case <-time.After(x.interval):
		}
	}
	x.wg.Done()
}

func (x *RunnerService) Health() models.ServiceHealth {
	x.healthMu.RLock()
	defer x.healthMu.RUnlock()

	return x.health
}

func (x *RunnerService) UpdateHealth() {
	status := x.runner.Status()

	x.healthMu.Lock()
	defer x.healthMu.Unlock()

	lastSyncTime := time.Now()

	x.health = models.ServiceHealth{
		Name:         x.name,
		LastSyncTime: lastSyncTime,
		NextSyncTime: lastSyncTime.Add(x.interval),
		Healthy:      status.Healthy,
		LastError:    status.LastError,
		Processed:    status.Processed,
	}
}

func (x *RunnerService) Stop() {
	log.Debugf("[%s] Stopping service", x.name)
	x.stop <- true
}

func NewRunnerService(
	name string,
	runner Runner,
	wg *sync.WaitGroup,
	interval time.Duration,
) *RunnerService {
	if runner == nil || name == "" || interval <= 0 {
		log.Debug("[RUNNER] Invalid parameters")
		return nil
	}

	return &RunnerService{
		name:     name,
		runner:   runner,
		stop:     make(chan bool, 1),
		wg:       wg,
		interval: interval,
		health: models.ServiceHealth{
			Name:    name,
			Healthy: true,
		},
	}
}

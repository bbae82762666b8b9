package main

import (
	"io"
	"sync"
	"testing"

	"github.com/dan13ram/ada-bridge/app"
	"github.com/dan13ram/ada-bridge/cardano"
	"github.com/dan13ram/ada-bridge/models"
	"github.com/stretchr/testify/assert"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(io.Discard)
}

func TestGetServiceFactories(t *testing.T) {
	factories := GetServiceFactories()

	assert.Len(t, factories, 2)
	assert.Contains(t, factories, cardano.LockMonitorName)
	assert.Contains(t, factories, cardano.UnlockExecutorName)
}

func TestLastHealthMap(t *testing.T) {
	health := models.Health{
		ServiceHealths: []models.ServiceHealth{
			{Name: cardano.LockMonitorName, Processed: 4},
			{Name: cardano.UnlockExecutorName, Processed: 2},
		},
	}

	serviceHealthMap := LastHealthMap(health)

	assert.Equal(t, int64(4), serviceHealthMap[cardano.LockMonitorName].Processed)
	assert.Equal(t, int64(2), serviceHealthMap[cardano.UnlockExecutorName].Processed)
}

func TestCreateServicesDisabled(t *testing.T) {
	original := app.Config
	defer func() { app.Config = original }()
	app.Config.LockMonitor.Enabled = false
	app.Config.UnlockExecutor.Enabled = false

	services := CreateServices(&sync.WaitGroup{}, map[string]models.ServiceHealth{})

	assert.Len(t, services, 2)
	for _, service := range services {
		assert.IsType(t, &app.EmptyService{}, service)
	}
}

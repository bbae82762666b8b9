package main

import (
	"sync"

	"github.com/dan13ram/ada-bridge/app"
	"github.com/dan13ram/ada-bridge/cardano"
	"github.com/dan13ram/ada-bridge/models"
)

type ServiceFactory func(*sync.WaitGroup, models.ServiceHealth) app.Service

func GetServiceFactories() map[string]ServiceFactory {
	return map[string]ServiceFactory{
		cardano.LockMonitorName:    cardano.NewLockMonitor,
		cardano.UnlockExecutorName: cardano.NewUnlockExecutor,
	}
}

// LastHealthMap indexes the previously posted service healths by name.
func LastHealthMap(health models.Health) map[string]models.ServiceHealth {
	serviceHealthMap := make(map[string]models.ServiceHealth)
	for _, serviceHealth := range health.ServiceHealths {
		serviceHealthMap[serviceHealth.Name] = serviceHealth
	}
	return serviceHealthMap
}

func CreateServices(wg *sync.WaitGroup, serviceHealthMap map[string]models.ServiceHealth) []app.Service {
	var services []app.Service
	for name, factory := range GetServiceFactories() {
		services = append(services, factory(wg, serviceHealthMap[name]))
	}
	return services
}

package main

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dan13ram/ada-bridge/api"
	"github.com/dan13ram/ada-bridge/app"
	cardano "github.com/dan13ram/ada-bridge/cardano/client"
	ckb "github.com/dan13ram/ada-bridge/ckb/client"
	"github.com/dan13ram/ada-bridge/cli"
	log "github.com/sirupsen/logrus"
)

func main() {

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	if err := cli.NewRootCommand(runValidator).Execute(); err != nil {
		os.Exit(1)
	}
}

func validateNetworks() {
	walletClient, err := cardano.NewClient(app.Config.Cardano)
	if err != nil {
		log.Fatal("[MAIN] Error creating cardano wallet client: ", err)
	}
	cardano.ValidateNetwork(walletClient)

	ckbClient, err := ckb.NewClient(app.Config.Ckb)
	if err != nil {
		log.Fatal("[MAIN] Error creating ckb client: ", err)
	}
	ckb.ValidateNetwork(ckbClient)
}

func runValidator(opts *cli.RootOptions) error {
	app.InitDB()
	app.InitEvents()

	validateNetworks()

	healthcheck := app.NewHealthCheck()

	lastHealth, err := healthcheck.FindLastHealth()
	if err != nil {
		log.Warn("[MAIN] No previous health found: ", err)
	}

	var wg sync.WaitGroup

	services := CreateServices(&wg, LastHealthMap(lastHealth))
	services = append(services, api.NewServer(&wg, healthcheck.Health))
	healthcheck.SetServices(services)
	services = append(services, healthcheck.NewService(&wg))

	wg.Add(len(services))

	for _, service := range services {
		go service.Start()
	}

	log.Info("[MAIN] Started services")

	gracefulStop := make(chan os.Signal, 1)
	done := make(chan bool, 1)
	signal.Notify(gracefulStop, syscall.SIGINT, syscall.SIGTERM)
	go waitForExitSignals(gracefulStop, done)
	<-done

	log.Debug("[MAIN] Stopping services")

	for _, service := range services {
		service.Stop()
	}

	wg.Wait()

	app.Events.Close()
	app.DB.Disconnect()
	log.Info("[MAIN] Stopped services")
	return nil
}

func waitForExitSignals(gracefulStop chan os.Signal, done chan bool) {
	sig := <-gracefulStop
	log.Debug("[MAIN] Got signal: ", sig)
	done <- true
}

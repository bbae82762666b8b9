package app

import (
	"os"

	"github.com/dan13ram/ada-bridge/models"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var (
	Config models.Config
)

const (
	DefaultLockMonitorIntervalMillis    = 60000
	DefaultUnlockExecutorIntervalMillis = 20000
	DefaultUnlockBatchSize              = 2
	MaxUnlockBatchSize                  = 2
	DefaultLockTTLSeconds               = 300
)

func InitConfig(configFile string, envFile string) {
	log.Debug("[CONFIG] Initializing config")
	readConfigFromConfigFile(configFile)
	readConfigFromENV(envFile)
	readKeysFromGSM()
	validateConfig()
	log.Info("[CONFIG] Config initialized")
}

func readConfigFromConfigFile(configFile string) bool {
	if configFile == "" {
		log.Debug("[CONFIG] No config file provided")
		return false
	}

	log.Debug("[CONFIG] Reading config file")
	var yamlFile, err = os.ReadFile(configFile)
	if err != nil {
		log.Fatalf("[CONFIG] Error reading config file %q: %s\n", configFile, err.Error())
	}

	log.Debug("[CONFIG] Unmarshalling config file")
	err = yaml.Unmarshal(yamlFile, &Config)
	if err != nil {
		log.Fatalf("[CONFIG] Error unmarshalling config file %q: %s\n", configFile, err.Error())
	}

	log.Debug("[CONFIG] Config loaded from config file")
	return true
}

func validateConfig() {
	log.Debug("[CONFIG] Validating config")

	// mongodb
	if Config.MongoDB.URI == "" {
		log.Fatal("[CONFIG] MongoDB.URI is required")
	}
	if Config.MongoDB.Database == "" {
		log.Fatal("[CONFIG] MongoDB.Database is required")
	}
	if Config.MongoDB.TimeoutMillis <= 0 {
		log.Fatal("[CONFIG] MongoDB.TimeoutMillis must be positive")
	}

	// bridge
	if Config.Bridge.Role != models.RoleCollector && Config.Bridge.Role != models.RoleWatcher {
		log.Fatalf("[CONFIG] Bridge.Role must be %q or %q", models.RoleCollector, models.RoleWatcher)
	}
	if Config.Bridge.ValidatorID == "" {
		Config.Bridge.ValidatorID = uuid.NewString()
		log.Warn("[CONFIG] Bridge.ValidatorID is empty, using generated id: ", Config.Bridge.ValidatorID)
	}
	if Config.Bridge.Asset == "" {
		Config.Bridge.Asset = models.AssetAda
	}

	// cardano
	if Config.Cardano.WalletURL == "" {
		log.Fatal("[CONFIG] Cardano.WalletURL is required")
	}
	if Config.Cardano.WalletID == "" {
		log.Fatal("[CONFIG] Cardano.WalletID is required")
	}
	if Config.Cardano.LockAddress == "" {
		log.Fatal("[CONFIG] Cardano.LockAddress is required")
	}
	if Config.Cardano.Confirmations < 0 {
		log.Fatal("[CONFIG] Cardano.Confirmations cannot be negative")
	}
	if Config.Cardano.MetadataLabel == 0 {
		log.Fatal("[CONFIG] Cardano.MetadataLabel is required")
	}
	if Config.Cardano.RPCTimeoutMillis <= 0 {
		log.Fatal("[CONFIG] Cardano.RPCTimeoutMillis must be positive")
	}

	// ckb
	if Config.Ckb.RPCURL == "" {
		log.Fatal("[CONFIG] Ckb.RPCURL is required")
	}
	if Config.Ckb.RPCTimeoutMillis <= 0 {
		log.Fatal("[CONFIG] Ckb.RPCTimeoutMillis must be positive")
	}
	if Config.Ckb.AddressPrefix != "ckb" && Config.Ckb.AddressPrefix != "ckt" {
		log.Fatal("[CONFIG] Ckb.AddressPrefix must be ckb or ckt")
	}

	// lock monitor
	if Config.LockMonitor.Enabled && Config.LockMonitor.IntervalMillis == 0 {
		Config.LockMonitor.IntervalMillis = DefaultLockMonitorIntervalMillis
	}
	if Config.LockMonitor.IntervalMillis < 0 {
		log.Fatal("[CONFIG] LockMonitor.IntervalMillis must be positive")
	}

	// unlock executor
	if Config.UnlockExecutor.Enabled {
		if Config.Bridge.Role != models.RoleCollector {
			log.Fatal("[CONFIG] UnlockExecutor can only be enabled for the collector role")
		}
		if Config.Cardano.Passphrase == "" {
			log.Fatal("[CONFIG] Cardano.Passphrase is required when UnlockExecutor is enabled")
		}
		if Config.UnlockExecutor.IntervalMillis == 0 {
			Config.UnlockExecutor.IntervalMillis = DefaultUnlockExecutorIntervalMillis
		}
	}
	if Config.UnlockExecutor.IntervalMillis < 0 {
		log.Fatal("[CONFIG] UnlockExecutor.IntervalMillis must be positive")
	}
	if Config.UnlockExecutor.BatchSize == 0 {
		Config.UnlockExecutor.BatchSize = DefaultUnlockBatchSize
	}
	if Config.UnlockExecutor.BatchSize < 0 || Config.UnlockExecutor.BatchSize > MaxUnlockBatchSize {
		log.Fatalf("[CONFIG] UnlockExecutor.BatchSize must be between 1 and %d", MaxUnlockBatchSize)
	}

	// health check
	if Config.HealthCheck.IntervalMillis <= 0 {
		log.Fatal("[CONFIG] HealthCheck.IntervalMillis must be positive")
	}

	// api
	if Config.API.Enabled && Config.API.ListenAddress == "" {
		log.Fatal("[CONFIG] API.ListenAddress is required")
	}

	// nats
	if Config.Nats.Enabled && Config.Nats.URL == "" {
		log.Fatal("[CONFIG] Nats.URL is required")
	}

	log.Debug("[CONFIG] Config validated")
}

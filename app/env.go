package app

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func envString(key string, target *string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}

func envInt64(key string, target *int64) {
	value := os.Getenv(key)
	if value == "" {
		return
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Warnf("[ENV] Error parsing %s: %s", key, err.Error())
		return
	}
	*target = parsed
}

func envUint64(key string, target *uint64) {
	value := os.Getenv(key)
	if value == "" {
		return
	}
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		log.Warnf("[ENV] Error parsing %s: %s", key, err.Error())
		return
	}
	*target = parsed
}

func envBool(key string, target *bool) {
	value := os.Getenv(key)
	if value == "" {
		return
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Warnf("[ENV] Error parsing %s: %s", key, err.Error())
		return
	}
	*target = parsed
}

func readConfigFromENV(envFile string) {
	log.Debug("[ENV] Reading config from env")

	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil {
			log.Warn("[ENV] Error loading .env file: ", err.Error())
		}
	}

	// mongodb
	envString("MONGODB_URI", &Config.MongoDB.URI)
	envString("MONGODB_DATABASE", &Config.MongoDB.Database)
	envInt64("MONGODB_TIMEOUT_MS", &Config.MongoDB.TimeoutMillis)

	// bridge
	envString("BRIDGE_ROLE", &Config.Bridge.Role)
	envString("BRIDGE_VALIDATOR_ID", &Config.Bridge.ValidatorID)
	envString("BRIDGE_ASSET", &Config.Bridge.Asset)

	// cardano
	envString("CARDANO_WALLET_URL", &Config.Cardano.WalletURL)
	envString("CARDANO_WALLET_ID", &Config.Cardano.WalletID)
	envString("CARDANO_PASSPHRASE", &Config.Cardano.Passphrase)
	envString("CARDANO_LOCK_ADDRESS", &Config.Cardano.LockAddress)
	envString("CARDANO_NETWORK_TAG", &Config.Cardano.NetworkTag)
	envInt64("CARDANO_CONFIRMATIONS", &Config.Cardano.Confirmations)
	envUint64("CARDANO_METADATA_LABEL", &Config.Cardano.MetadataLabel)
	envInt64("CARDANO_RPC_TIMEOUT_MS", &Config.Cardano.RPCTimeoutMillis)

	// ckb
	envString("CKB_RPC_URL", &Config.Ckb.RPCURL)
	envInt64("CKB_RPC_TIMEOUT_MS", &Config.Ckb.RPCTimeoutMillis)
	envString("CKB_MNEMONIC", &Config.Ckb.Mnemonic)
	envString("CKB_GCP_KMS_KEY_NAME", &Config.Ckb.GcpKmsKeyName)
	envString("CKB_ADDRESS_PREFIX", &Config.Ckb.AddressPrefix)
	envUint64("CKB_TX_FEE", &Config.Ckb.TxFee)

	// lock monitor
	envBool("LOCK_MONITOR_ENABLED", &Config.LockMonitor.Enabled)
	envInt64("LOCK_MONITOR_INTERVAL_MS", &Config.LockMonitor.IntervalMillis)

	// unlock executor
	envBool("UNLOCK_EXECUTOR_ENABLED", &Config.UnlockExecutor.Enabled)
	envInt64("UNLOCK_EXECUTOR_INTERVAL_MS", &Config.UnlockExecutor.IntervalMillis)
	envInt64("UNLOCK_EXECUTOR_BATCH_SIZE", &Config.UnlockExecutor.BatchSize)

	// health check
	envInt64("HEALTH_CHECK_INTERVAL_MS", &Config.HealthCheck.IntervalMillis)

	// api
	envBool("API_ENABLED", &Config.API.Enabled)
	envString("API_LISTEN_ADDRESS", &Config.API.ListenAddress)

	// nats
	envBool("NATS_ENABLED", &Config.Nats.Enabled)
	envString("NATS_URL", &Config.Nats.URL)
	envString("NATS_SUBJECT_PREFIX", &Config.Nats.SubjectPrefix)
	envInt64("NATS_TIMEOUT_MS", &Config.Nats.TimeoutMillis)

	// logging
	envString("LOG_LEVEL", &Config.Logger.Level)
	if Config.Logger.Level == "" {
		log.Warn("[ENV] Setting LogLevel to info")
		Config.Logger.Level = "info"
	}

	// google secret manager
	envBool("GOOGLE_SECRET_MANAGER_ENABLED", &Config.GoogleSecretManager.Enabled)
	envString("GOOGLE_PROJECT_ID", &Config.GoogleSecretManager.ProjectID)
	envString("GOOGLE_MONGO_SECRET_NAME", &Config.GoogleSecretManager.MongoSecretName)
	envString("GOOGLE_CARDANO_SECRET_NAME", &Config.GoogleSecretManager.CardanoSecretName)
	envString("GOOGLE_CKB_MNEMONIC_SECRET_NAME", &Config.GoogleSecretManager.CkbMnemonicSecretName)

	log.Debug("[ENV] Config read from env")
}

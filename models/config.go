package models

type Config struct {
	GoogleSecretManager GoogleSecretManagerConfig `yaml:"google_secret_manager" json:"google_secret_manager"`
	HealthCheck         HealthCheckConfig         `yaml:"health_check" json:"health_check"`
	Logger              LoggerConfig              `yaml:"logger" json:"logger"`
	MongoDB             MongoConfig               `yaml:"mongodb" json:"mongo_db"`
	Bridge              BridgeConfig              `yaml:"bridge" json:"bridge"`
	Cardano             CardanoConfig             `yaml:"cardano" json:"cardano"`
	Ckb                 CkbConfig                 `yaml:"ckb" json:"ckb"`
	LockMonitor         ServiceConfig             `yaml:"lock_monitor" json:"lock_monitor"`
	UnlockExecutor      UnlockExecutorConfig      `yaml:"unlock_executor" json:"unlock_executor"`
	API                 APIConfig                 `yaml:"api" json:"api"`
	Nats                NatsConfig                `yaml:"nats" json:"nats"`
}

type GoogleSecretManagerConfig struct {
	Enabled               bool   `yaml:"enabled" json:"enabled"`
	ProjectID             string `yaml:"project_id" json:"project_id"`
	MongoSecretName       string `yaml:"mongo_secret_name" json:"mongo_secret_name"`
	CardanoSecretName     string `yaml:"cardano_secret_name" json:"cardano_secret_name"`
	CkbMnemonicSecretName string `yaml:"ckb_mnemonic_secret_name" json:"ckb_mnemonic_secret_name"`
}

type HealthCheckConfig struct {
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
}

type LoggerConfig struct {
	Level string `yaml:"level" json:"level"`
}

type MongoConfig struct {
	URI           string `yaml:"uri" json:"uri"`
	Database      string `yaml:"database" json:"database"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

// roles a bridge process can run as
const (
	RoleCollector = "collector"
	RoleWatcher   = "watcher"
)

type BridgeConfig struct {
	Role        string `yaml:"role" json:"role"`
	ValidatorID string `yaml:"validator_id" json:"validator_id"`
	Asset       string `yaml:"asset" json:"asset"`
}

type CardanoConfig struct {
	WalletURL        string `yaml:"wallet_url" json:"wallet_url"`
	WalletID         string `yaml:"wallet_id" json:"wallet_id"`
	Passphrase       string `yaml:"passphrase" json:"passphrase"`
	LockAddress      string `yaml:"lock_address" json:"lock_address"`
	NetworkTag       string `yaml:"network_tag" json:"network_tag"`
	Confirmations    int64  `yaml:"confirmations" json:"confirmations"`
	MetadataLabel    uint64 `yaml:"metadata_label" json:"metadata_label"`
	RPCTimeoutMillis int64  `yaml:"rpc_timeout_ms" json:"rpc_timeout_ms"`
}

type ScriptConfig struct {
	CodeHash string `yaml:"code_hash" json:"code_hash"`
	HashType string `yaml:"hash_type" json:"hash_type"`
	Args     string `yaml:"args" json:"args"`
}

type CellDepConfig struct {
	TxHash  string `yaml:"tx_hash" json:"tx_hash"`
	Index   uint32 `yaml:"index" json:"index"`
	DepType string `yaml:"dep_type" json:"dep_type"`
}

type CkbConfig struct {
	RPCURL              string          `yaml:"rpc_url" json:"rpc_url"`
	RPCTimeoutMillis    int64           `yaml:"rpc_timeout_ms" json:"rpc_timeout_ms"`
	Mnemonic            string          `yaml:"mnemonic" json:"mnemonic"`
	GcpKmsKeyName       string          `yaml:"gcp_kms_key_name" json:"gcp_kms_key_name"`
	AddressPrefix       string          `yaml:"address_prefix" json:"address_prefix"`
	TxFee               uint64          `yaml:"tx_fee" json:"tx_fee"`
	LockScript          ScriptConfig    `yaml:"lock_script" json:"lock_script"`
	SudtTypeScript      ScriptConfig    `yaml:"sudt_type_script" json:"sudt_type_script"`
	RecipientTypeScript ScriptConfig    `yaml:"recipient_type_script" json:"recipient_type_script"`
	BridgeLockScript    ScriptConfig    `yaml:"bridge_lock_script" json:"bridge_lock_script"`
	CellDeps            []CellDepConfig `yaml:"cell_deps" json:"cell_deps"`
}

type ServiceConfig struct {
	Enabled        bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
}

type UnlockExecutorConfig struct {
	Enabled        bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
	BatchSize      int64 `yaml:"batch_size" json:"batch_size"`
}

type APIConfig struct {
	Enabled       bool   `yaml:"enabled" json:"enabled"`
	ListenAddress string `yaml:"listen_address" json:"listen_address"`
}

type NatsConfig struct {
	Enabled       bool   `yaml:"enabled" json:"enabled"`
	URL           string `yaml:"url" json:"url"`
	SubjectPrefix string `yaml:"subject_prefix" json:"subject_prefix"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

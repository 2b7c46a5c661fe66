package config

import (
	"strings"
	"time"
)

var BuildVersion = "0.0.1-local"

// DefaultCrowdfundingAddress is the Sepolia deployment of the crowdfunding contract
const DefaultCrowdfundingAddress = "0x9fbff9d6448e34965347d352302b5bb042a40b1f"

// Validation tags described here: https://pkg.go.dev/github.com/go-playground/validator/v10
type Config struct {
	Blockchain struct {
		EthNodeAddress   string        `env:"ETH_NODE_ADDRESS"       flag:"eth-node-address"       validate:"required,url"`
		EthLegacyTx      bool          `env:"ETH_NODE_LEGACY_TX"     flag:"eth-node-legacy-tx"     desc:"use it to disable EIP-1559 transactions"`
		ChainID          int64         `env:"ETH_CHAIN_ID"           flag:"eth-chain-id"           validate:"omitempty,gte=0"     desc:"refuse to connect to a node serving another chain, 0 accepts any"`
		DialTimeout      time.Duration `env:"ETH_DIAL_TIMEOUT"       flag:"eth-dial-timeout"       validate:"omitempty,duration"  desc:"timeout of a single attempt to connect to the node"`
		DialInterval     time.Duration `env:"ETH_DIAL_INTERVAL"      flag:"eth-dial-interval"      validate:"omitempty,duration"  desc:"interval between attempts to connect to the node"`
		TxConfirmTimeout time.Duration `env:"ETH_TX_CONFIRM_TIMEOUT" flag:"eth-tx-confirm-timeout" validate:"omitempty,duration"  desc:"maximum time to wait for a transaction receipt"`
	}
	Contract struct {
		Address string `env:"CROWDFUNDING_ADDRESS"  flag:"crowdfunding-address"  validate:"required,eth_addr"`
		ABIPath string `env:"CROWDFUNDING_ABI_PATH" flag:"crowdfunding-abi-path" validate:"omitempty,file" desc:"overrides the embedded contract ABI"`
	}
	Environment string `env:"ENVIRONMENT" flag:"environment"`
	Log         struct {
		Color         bool   `env:"LOG_COLOR"            flag:"log-color"`
		FilePath      string `env:"LOG_FILE_PATH"        flag:"log-file-path"                                                                   desc:"enables file logging and sets the file path"`
		IsProd        bool   `env:"LOG_IS_PROD"          flag:"log-is-prod"          validate:""                                                desc:"affects the format of the log output"`
		JSON          bool   `env:"LOG_JSON"             flag:"log-json"`
		LevelApp      string `env:"LOG_LEVEL_APP"        flag:"log-level-app"        validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
		LevelContract string `env:"LOG_LEVEL_CONTRACT"   flag:"log-level-contract"   validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
		LevelSession  string `env:"LOG_LEVEL_SESSION"    flag:"log-level-session"    validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
		LevelHTTP     string `env:"LOG_LEVEL_HTTP"       flag:"log-level-http"       validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	}
	Session struct {
		SyncInterval time.Duration `env:"SESSION_SYNC_INTERVAL" flag:"session-sync-interval" validate:"omitempty,duration" desc:"interval between re-derivations of the contract session"`
	}
	Wallet struct {
		Mnemonic     string `env:"WALLET_MNEMONIC"      flag:"wallet-mnemonic"      validate:"omitempty"`
		PrivateKey   string `env:"WALLET_PRIVATE_KEY"   flag:"wallet-private-key"   validate:"omitempty,hexadecimal"`
		AccountIndex int    `env:"WALLET_ACCOUNT_INDEX" flag:"wallet-account-index" validate:"omitempty,gte=0"  desc:"index of the account derived from the mnemonic"`
		AutoConnect  bool   `env:"WALLET_AUTO_CONNECT"  flag:"wallet-auto-connect"                              desc:"connect the wallet on startup instead of waiting for the connect request"`
	}
	Web struct {
		Address string `env:"WEB_ADDRESS" flag:"web-address" validate:"required,hostname_port" desc:"http server address host:port"`
	}
}

func (cfg *Config) SetDefaults() {
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	// Blockchain

	if cfg.Blockchain.DialTimeout == 0 {
		cfg.Blockchain.DialTimeout = 10 * time.Second
	}
	if cfg.Blockchain.DialInterval == 0 {
		cfg.Blockchain.DialInterval = 5 * time.Second
	}
	if cfg.Blockchain.TxConfirmTimeout == 0 {
		cfg.Blockchain.TxConfirmTimeout = 5 * time.Minute
	}

	// Contract

	if cfg.Contract.Address == "" {
		cfg.Contract.Address = DefaultCrowdfundingAddress
	}

	// Log

	if cfg.Log.LevelApp == "" {
		cfg.Log.LevelApp = "debug"
	}
	if cfg.Log.LevelContract == "" {
		cfg.Log.LevelContract = "debug"
	}
	if cfg.Log.LevelSession == "" {
		cfg.Log.LevelSession = "info"
	}
	if cfg.Log.LevelHTTP == "" {
		cfg.Log.LevelHTTP = "info"
	}

	// Session

	if cfg.Session.SyncInterval == 0 {
		cfg.Session.SyncInterval = 5 * time.Second
	}

	// Wallet

	// normalizes private key
	cfg.Wallet.PrivateKey = strings.TrimPrefix(cfg.Wallet.PrivateKey, "0x")

	// Web

	if cfg.Web.Address == "" {
		cfg.Web.Address = "0.0.0.0:8080"
	}
}

// GetSanitized returns a copy of the config with sensitive data removed
// explicitly adding each field here to avoid accidentally leaking sensitive data
func (cfg *Config) GetSanitized() interface{} {
	publicCfg := Config{}

	publicCfg.Blockchain.EthLegacyTx = cfg.Blockchain.EthLegacyTx
	publicCfg.Blockchain.ChainID = cfg.Blockchain.ChainID
	publicCfg.Blockchain.DialTimeout = cfg.Blockchain.DialTimeout
	publicCfg.Blockchain.DialInterval = cfg.Blockchain.DialInterval
	publicCfg.Blockchain.TxConfirmTimeout = cfg.Blockchain.TxConfirmTimeout

	publicCfg.Contract.Address = cfg.Contract.Address
	publicCfg.Contract.ABIPath = cfg.Contract.ABIPath

	publicCfg.Environment = cfg.Environment

	publicCfg.Log.Color = cfg.Log.Color
	publicCfg.Log.FilePath = cfg.Log.FilePath
	publicCfg.Log.IsProd = cfg.Log.IsProd
	publicCfg.Log.JSON = cfg.Log.JSON
	publicCfg.Log.LevelApp = cfg.Log.LevelApp
	publicCfg.Log.LevelContract = cfg.Log.LevelContract
	publicCfg.Log.LevelSession = cfg.Log.LevelSession
	publicCfg.Log.LevelHTTP = cfg.Log.LevelHTTP

	publicCfg.Session.SyncInterval = cfg.Session.SyncInterval

	publicCfg.Wallet.AccountIndex = cfg.Wallet.AccountIndex
	publicCfg.Wallet.AutoConnect = cfg.Wallet.AutoConnect

	publicCfg.Web.Address = cfg.Web.Address

	return publicCfg
}

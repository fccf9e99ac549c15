package configloader

import (
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds server-specific configurations.
type ServerConfig struct {
	Port                string   `yaml:"port"`
	ReadTimeoutSeconds  int      `yaml:"readTimeoutSeconds"`
	WriteTimeoutSeconds int      `yaml:"writeTimeoutSeconds"`
	IdleTimeoutSeconds  int      `yaml:"idleTimeoutSeconds"`
	AllowedOrigins      []string `yaml:"allowedOrigins"`
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// PerformanceConfig holds timeouts applied to outbound calls.
type PerformanceConfig struct {
	RPCCallTimeoutSeconds    int `yaml:"rpcCallTimeoutSeconds"`
	ConnectionTimeoutSeconds int `yaml:"connectionTimeoutSeconds"`
}

// PriceConfig holds the market statistics endpoint settings.
type PriceConfig struct {
	BaseURL              string `yaml:"baseURL"`
	StatisticsPath       string `yaml:"statisticsPath"`
	Symbol               string `yaml:"symbol"`
	Lang                 string `yaml:"lang"`
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// SwaggerConfig holds configuration for Swagger UI.
// SpecFile overrides the embedded spec; a relative path is resolved against the working directory.
type SwaggerConfig struct {
	Enabled  bool   `yaml:"enabled"`
	SpecFile string `yaml:"specFile"`
}

// NetworkNodeConfig holds configuration for a specific blockchain network.
type NetworkNodeConfig struct {
	Name             string `yaml:"name"`         // e.g., "zkSync Era"
	Identifier       string `yaml:"identifier"`   // e.g., "zksync"
	ChainID          uint64 `yaml:"chainID"`      // e.g., 324
	RPCURL           string `yaml:"rpcURL"`       // e.g., "https://mainnet.era.zksync.io"
	TokenAddress     string `yaml:"tokenAddress"` // ERC-20 contract on this network
	SupplyMultiplier int64  `yaml:"supplyMultiplier"`
	BlockExplorerURL string `yaml:"blockExplorerURL"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server      ServerConfig        `yaml:"server"`
	Logging     LoggingConfig       `yaml:"logging"`
	Performance PerformanceConfig   `yaml:"performance"`
	Price       PriceConfig         `yaml:"price"`
	Metrics     MetricsConfig       `yaml:"metrics"`
	Swagger     SwaggerConfig       `yaml:"swagger"`
	Networks    []NetworkNodeConfig `yaml:"networks"`
}

// Default returns the compiled-in configuration.
func Default() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Port:                "3000",
			ReadTimeoutSeconds:  15,
			WriteTimeoutSeconds: 30,
			IdleTimeoutSeconds:  60,
			AllowedOrigins:      []string{"*"},
		},
		Logging: LoggingConfig{Level: "info"},
		Performance: PerformanceConfig{
			RPCCallTimeoutSeconds:    10,
			ConnectionTimeoutSeconds: 10,
		},
		Price: PriceConfig{
			BaseURL:              "https://www.kucoin.com",
			StatisticsPath:       "/_api/grey-market-trade/grey/market/statistics",
			Symbol:               "CARV-USDT",
			Lang:                 "en_US",
			RequestTimeoutMillis: 10000,
		},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
		Swagger: SwaggerConfig{Enabled: false},
		Networks: []NetworkNodeConfig{
			{
				Name:             "Ronin",
				Identifier:       "ronin",
				ChainID:          2020,
				RPCURL:           "https://api.roninchain.com/rpc",
				TokenAddress:     "0xc39a2430b0b6f1edad1681672b47c857c1be0998",
				SupplyMultiplier: 1,
				BlockExplorerURL: "https://app.roninchain.com",
			},
			{
				Name:             "opBNB",
				Identifier:       "opbnb",
				ChainID:          204,
				RPCURL:           "https://opbnb-mainnet-rpc.bnbchain.org",
				TokenAddress:     "0xc32338e7f84f4c01864c1d5b2b0c0c7c697c25dc",
				SupplyMultiplier: 1,
				BlockExplorerURL: "https://opbnbscan.com",
			},
			{
				Name:             "zkSync Era Mainnet",
				Identifier:       "zksync",
				ChainID:          324,
				RPCURL:           "https://mainnet.era.zksync.io",
				TokenAddress:     "0x5155704BB41fDe152Ad3e1aE402e8E8b9bA335D3",
				SupplyMultiplier: 10,
				BlockExplorerURL: "https://explorer.zksync.io",
			},
			{
				Name:             "Linea Mainnet",
				Identifier:       "linea",
				ChainID:          59144,
				RPCURL:           "https://rpc.linea.build",
				TokenAddress:     "0xC5Cb997016c9A3AC91cBe306e59B048a812C056f",
				SupplyMultiplier: 1,
				BlockExplorerURL: "https://lineascan.build",
			},
		},
	}
	return cfg
}

// Load reads the YAML configuration file from the given path and overlays it onto Default().
// An empty path returns the compiled-in configuration.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		logrus.Info("No config file given, using compiled-in configuration.")
		return cfg, nil
	}

	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("Failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		logrus.Errorf("Failed to unmarshal config data from %s: %v", path, err)
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	logrus.Info("Configuration loaded successfully.")
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.Server.Port == "" {
		cfg.Server.Port = def.Server.Port
	}
	if cfg.Server.ReadTimeoutSeconds <= 0 {
		cfg.Server.ReadTimeoutSeconds = def.Server.ReadTimeoutSeconds
	}
	if cfg.Server.WriteTimeoutSeconds <= 0 {
		cfg.Server.WriteTimeoutSeconds = def.Server.WriteTimeoutSeconds
	}
	if cfg.Server.IdleTimeoutSeconds <= 0 {
		cfg.Server.IdleTimeoutSeconds = def.Server.IdleTimeoutSeconds
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = def.Server.AllowedOrigins
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}

	if cfg.Performance.RPCCallTimeoutSeconds <= 0 {
		cfg.Performance.RPCCallTimeoutSeconds = def.Performance.RPCCallTimeoutSeconds
		logrus.Infof("performance.rpcCallTimeoutSeconds not set, defaulting to %d", cfg.Performance.RPCCallTimeoutSeconds)
	}
	if cfg.Performance.ConnectionTimeoutSeconds <= 0 {
		cfg.Performance.ConnectionTimeoutSeconds = def.Performance.ConnectionTimeoutSeconds
	}

	if cfg.Price.BaseURL == "" {
		cfg.Price.BaseURL = def.Price.BaseURL
		logrus.Infof("price.baseURL not set, defaulting to %s", cfg.Price.BaseURL)
	}
	if cfg.Price.StatisticsPath == "" {
		cfg.Price.StatisticsPath = def.Price.StatisticsPath
	}
	if cfg.Price.Symbol == "" {
		cfg.Price.Symbol = def.Price.Symbol
	}
	if cfg.Price.Lang == "" {
		cfg.Price.Lang = def.Price.Lang
	}
	if cfg.Price.RequestTimeoutMillis <= 0 {
		cfg.Price.RequestTimeoutMillis = def.Price.RequestTimeoutMillis
		logrus.Infof("price.requestTimeoutMillis not set, defaulting to %d ms", cfg.Price.RequestTimeoutMillis)
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = def.Metrics.Path
	}

	for i := range cfg.Networks {
		n := &cfg.Networks[i]
		if strings.TrimSpace(n.Identifier) == "" {
			n.Identifier = strings.ReplaceAll(n.Name, " ", "_")
		}
		// identifiers are case-insensitive keys
		n.Identifier = strings.ToLower(strings.TrimSpace(n.Identifier))
		if n.SupplyMultiplier == 0 {
			n.SupplyMultiplier = 1
		}
	}
}

// Validate checks the network list and required fields.
func (c *Config) Validate() error {
	if len(c.Networks) == 0 {
		return fmt.Errorf("at least one network must be configured")
	}

	seen := make(map[string]struct{}, len(c.Networks))
	for i, n := range c.Networks {
		if n.Name == "" {
			return fmt.Errorf("networks[%d]: name is required", i)
		}
		if n.RPCURL == "" {
			return fmt.Errorf("network %q: rpcURL is required", n.Name)
		}
		if !common.IsHexAddress(n.TokenAddress) {
			return fmt.Errorf("network %q: invalid tokenAddress %q", n.Name, n.TokenAddress)
		}
		if n.SupplyMultiplier < 1 {
			return fmt.Errorf("network %q: supplyMultiplier must be >= 1, got %d", n.Name, n.SupplyMultiplier)
		}
		id := strings.ToLower(n.Identifier)
		if _, dup := seen[id]; dup {
			return fmt.Errorf("network %q: duplicate identifier %q", n.Name, n.Identifier)
		}
		seen[id] = struct{}{}
	}
	return nil
}

package metadata

import (
	"time"

	"github.com/spacemeshos/go-chief/common/retryhttp"
)

type Config struct {
	// URL of an etherscan compatible api endpoint.
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api-key"`
	// CacheDir keeps downloaded interfaces. Empty disables the disk cache.
	CacheDir string `mapstructure:"cache-dir"`
	// MemoryCache is the number of interfaces kept in memory.
	MemoryCache int `mapstructure:"memory-cache"`

	retryhttp.Config `mapstructure:",squash"`
}

func DefaultConfig() Config {
	cfg := Config{
		URL:         "https://api.etherscan.io/api",
		CacheDir:    "./abi",
		MemoryCache: 256,
		Config:      retryhttp.DefaultConfig(),
	}
	cfg.Timeout = 30 * time.Second
	return cfg
}

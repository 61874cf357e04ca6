package config

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

const testKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

func load(t *testing.T, path, content string, cfg *Config) error {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o600))
	vip := viper.New()
	if err := LoadConfig(fs, path, vip); err != nil {
		return err
	}
	return Unmarshal(vip, cfg)
}

func TestLoadConfigToml(t *testing.T) {
	cfg := DefaultConfig()
	err := load(t, "/etc/chief.toml", `
[rpc]
url = "wss://node.example.org"
timeout = "45s"
log-chunk-size = 5000

[chief]
address = "0x9eF05f7F6deB616fd37aC3c959a2dDD25A54E4F5"
from-block = 7705361
concurrency = 4

[trigger]
cast = true
`, &cfg)
	require.NoError(t, err)
	require.Equal(t, "wss://node.example.org", cfg.RPC.URL)
	require.Equal(t, 45*time.Second, cfg.RPC.Timeout)
	require.EqualValues(t, 5000, cfg.RPC.LogChunkSize)
	require.Equal(t, common.HexToAddress("0x9eF05f7F6deB616fd37aC3c959a2dDD25A54E4F5"), cfg.Chief.Address)
	require.EqualValues(t, 7705361, cfg.Chief.FromBlock)
	require.Equal(t, 4, cfg.Chief.Concurrency)
	// untouched values keep their defaults
	require.Equal(t, DefaultConfig().Chief.ProbeLimit, cfg.Chief.ProbeLimit)
	require.Equal(t, DefaultConfig().RPC.MaxRetries, cfg.RPC.MaxRetries)
	require.True(t, cfg.Trigger.Cast)
	require.False(t, cfg.Trigger.Lift)
}

func TestLoadConfigJSON(t *testing.T) {
	cfg := DefaultConfig()
	err := load(t, "chief.json", `{"metadata": {"cache-dir": "/var/cache/chief", "memory-cache": 16}}`, &cfg)
	require.NoError(t, err)
	require.Equal(t, "/var/cache/chief", cfg.Metadata.CacheDir)
	require.Equal(t, 16, cfg.Metadata.MemoryCache)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		err := LoadConfig(afero.NewMemMapFs(), "/missing.toml", viper.New())
		require.ErrorContains(t, err, "failed to read config file")
	})
	t.Run("unknown key", func(t *testing.T) {
		cfg := DefaultConfig()
		err := load(t, "chief.toml", "[chief]\naddres = \"0x01\"\n", &cfg)
		require.ErrorContains(t, err, "addres")
	})
	t.Run("bad address", func(t *testing.T) {
		cfg := DefaultConfig()
		err := load(t, "chief.toml", "[chief]\naddress = \"chief\"\n", &cfg)
		require.Error(t, err)
	})
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("CHIEF_SIGNER_KEY", testKey)
	t.Setenv("CHIEF_RPC_URL", "http://10.0.0.1:8545")

	cfg := DefaultConfig()
	cfg.Metadata.APIKey = "from-file"
	require.NoError(t, ApplyEnv(&cfg))
	require.Equal(t, testKey, cfg.Signer.Key)
	require.Equal(t, "http://10.0.0.1:8545", cfg.RPC.URL)
	require.Equal(t, "from-file", cfg.Metadata.APIKey)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg := MainnetConfig()
		return cfg
	}
	t.Run("valid", func(t *testing.T) {
		cfg := valid()
		require.NoError(t, cfg.Validate())
	})
	t.Run("cast implies lift", func(t *testing.T) {
		cfg := valid()
		cfg.Trigger.Cast = true
		cfg.Signer.Key = "0x" + testKey
		require.NoError(t, cfg.Validate())
		require.True(t, cfg.Trigger.Lift)
	})
	t.Run("lift without key", func(t *testing.T) {
		cfg := valid()
		cfg.Trigger.Lift = true
		err := cfg.Validate()
		require.ErrorIs(t, err, ErrInvalid)
		require.ErrorContains(t, err, "signer.key")
	})
	t.Run("missing chief", func(t *testing.T) {
		cfg := DefaultConfig()
		err := cfg.Validate()
		require.ErrorIs(t, err, ErrInvalid)
		require.ErrorContains(t, err, "chief.address")
	})
	t.Run("bad key", func(t *testing.T) {
		cfg := valid()
		cfg.Signer.Key = "nothex"
		require.ErrorIs(t, cfg.Validate(), ErrInvalid)
	})
	t.Run("bad encoder", func(t *testing.T) {
		cfg := valid()
		cfg.Logging.Encoder = "xml"
		require.ErrorIs(t, cfg.Validate(), ErrInvalid)
	})
}

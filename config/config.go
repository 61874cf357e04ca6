// Package config contains the configuration of the chief tool.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/spacemeshos/go-chief/chain"
	"github.com/spacemeshos/go-chief/chief"
	"github.com/spacemeshos/go-chief/log"
	"github.com/spacemeshos/go-chief/metadata"
	"github.com/spacemeshos/go-chief/trigger"
)

// EnvPrefix prefixes environment variables that override the configuration.
const EnvPrefix = "CHIEF"

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid configuration")

// Config defines the top level configuration of the tool.
type Config struct {
	ConfigFile string `mapstructure:"config"`
	Preset     string `mapstructure:"preset"`

	RPC      chain.Config       `mapstructure:"rpc"`
	Chief    chief.Config       `mapstructure:"chief"`
	Metadata metadata.Config    `mapstructure:"metadata"`
	Trigger  trigger.Config     `mapstructure:"trigger"`
	Signer   chain.SignerConfig `mapstructure:"signer"`
	Metrics  MetricsConfig      `mapstructure:"metrics"`
	Logging  LoggerConfig       `mapstructure:"logging"`
	Output   OutputConfig       `mapstructure:"output"`
}

// MetricsConfig controls the push of metrics at the end of a run.
type MetricsConfig struct {
	// PushURL of a prometheus pushgateway. Empty disables the push.
	PushURL string `mapstructure:"push-url"`
	Job     string `mapstructure:"job"`
}

type OutputConfig struct {
	JSON bool `mapstructure:"json"`
}

// Env lists the settings that can be passed through the environment.
// Secrets should be passed this way rather than in files or flags.
type Env struct {
	SignerKey      string `envconfig:"SIGNER_KEY"`
	RPCURL         string `envconfig:"RPC_URL"`
	MetadataAPIKey string `envconfig:"METADATA_API_KEY"`
}

func DefaultConfig() Config {
	return Config{
		RPC:      chain.DefaultConfig(),
		Chief:    chief.DefaultConfig(),
		Metadata: metadata.DefaultConfig(),
		Trigger:  trigger.DefaultConfig(),
		Metrics:  MetricsConfig{Job: "chief"},
		Logging:  DefaultLoggingConfig(),
	}
}

// LoadConfig reads the config file at path into vip.
func LoadConfig(fs afero.Fs, path string, vip *viper.Viper) error {
	vip.SetFs(fs)
	vip.SetConfigFile(path)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

// Unmarshal decodes the values loaded into vip over cfg.
func Unmarshal(vip *viper.Viper, cfg *Config) error {
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	)
	opts := []viper.DecoderConfigOption{
		viper.DecodeHook(hook),
		WithZeroFields(),
		WithIgnoreUntagged(),
		WithErrorUnused(),
	}
	if err := vip.Unmarshal(cfg, opts...); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}

func WithZeroFields() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.ZeroFields = true
	}
}

func WithIgnoreUntagged() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.IgnoreUntaggedFields = true
	}
}

func WithErrorUnused() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.ErrorUnused = true
	}
}

// ApplyEnv overrides cfg with the non empty CHIEF_* environment variables.
func ApplyEnv(cfg *Config) error {
	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	if env.SignerKey != "" {
		cfg.Signer.Key = env.SignerKey
	}
	if env.RPCURL != "" {
		cfg.RPC.URL = env.RPCURL
	}
	if env.MetadataAPIKey != "" {
		cfg.Metadata.APIKey = env.MetadataAPIKey
	}
	return nil
}

// Validate normalizes the configuration and checks that it can be used for a run.
func (cfg *Config) Validate() error {
	cfg.Trigger = cfg.Trigger.Normalize()

	var problems []string
	if cfg.RPC.URL == "" {
		problems = append(problems, "rpc.url is required")
	}
	if cfg.Chief.Address == (common.Address{}) {
		problems = append(problems, "chief.address is required")
	}
	if cfg.Chief.Concurrency <= 0 {
		problems = append(problems, "chief.concurrency must be positive")
	}
	if cfg.Chief.ProbeLimit <= 0 {
		problems = append(problems, "chief.probe-limit must be positive")
	}
	if cfg.Metadata.MemoryCache <= 0 {
		problems = append(problems, "metadata.memory-cache must be positive")
	}
	if cfg.Trigger.Lift && cfg.Signer.Key == "" {
		problems = append(problems, "signer.key is required to lift or cast")
	}
	if _, err := cfg.Signer.PrivateKey(); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := log.Encoder(cfg.Logging.Encoder); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

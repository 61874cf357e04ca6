package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/pflag"

	"github.com/spacemeshos/go-chief/config"
	"github.com/spacemeshos/go-chief/config/presets"
)

// AddFlags binds command line flags to the fields of cfg.
// Secrets (signer key, metadata api key) are only read from the file or the environment.
func AddFlags(flagSet *pflag.FlagSet, cfg *config.Config) {
	flagSet.StringVarP(&cfg.Preset, "preset", "p", cfg.Preset,
		fmt.Sprintf("preset overwrites default values of the config. options %+s", presets.Options()))
	flagSet.StringVarP(&cfg.ConfigFile, "config", "c", cfg.ConfigFile,
		"load configuration from file")

	/** ======================== RPC Flags ========================== **/

	flagSet.StringVar(&cfg.RPC.URL, "rpc", cfg.RPC.URL,
		"url of the ethereum node (http, https, ws, wss or ipc path)")
	flagSet.DurationVar(&cfg.RPC.Timeout, "rpc-timeout", cfg.RPC.Timeout,
		"timeout of a single request to the node")
	flagSet.IntVar(&cfg.RPC.MaxRetries, "rpc-max-retries", cfg.RPC.MaxRetries,
		"number of retries of a failed http request to the node")
	flagSet.DurationVar(&cfg.RPC.RetryDelay, "rpc-retry-delay", cfg.RPC.RetryDelay,
		"base delay between retries")
	flagSet.DurationVar(&cfg.RPC.MaxRetryDelay, "rpc-max-retry-delay", cfg.RPC.MaxRetryDelay,
		"maximum delay between retries")
	flagSet.IntVar(&cfg.RPC.RequestsPerInterval, "rpc-requests-per-interval", cfg.RPC.RequestsPerInterval,
		"maximum number of requests to the node per interval. 0 disables the limit")
	flagSet.DurationVar(&cfg.RPC.Interval, "rpc-interval", cfg.RPC.Interval,
		"interval of the request limit")
	flagSet.Uint64Var(&cfg.RPC.LogChunkSize, "log-chunk-size", cfg.RPC.LogChunkSize,
		"query logs in block ranges of this size. 0 queries the whole range at once")

	/** ======================== Chief Flags ========================== **/

	flagSet.Var(&addressValue{addr: &cfg.Chief.Address}, "chief",
		"address of the chief contract")
	flagSet.Uint64Var(&cfg.Chief.FromBlock, "from-block", cfg.Chief.FromBlock,
		"first block of the vote log scan")
	flagSet.IntVar(&cfg.Chief.Concurrency, "concurrency", cfg.Chief.Concurrency,
		"number of concurrent reads from the node")
	flagSet.IntVar(&cfg.Chief.ProbeLimit, "probe-limit", cfg.Chief.ProbeLimit,
		"largest number of proposals resolved for a slate")

	/** ======================== Metadata Flags ========================== **/

	flagSet.StringVar(&cfg.Metadata.URL, "etherscan", cfg.Metadata.URL,
		"url of the etherscan compatible api")
	flagSet.StringVar(&cfg.Metadata.CacheDir, "abi-cache", cfg.Metadata.CacheDir,
		"directory for downloaded contract interfaces. empty disables the disk cache")
	flagSet.IntVar(&cfg.Metadata.MemoryCache, "abi-memory-cache", cfg.Metadata.MemoryCache,
		"number of contract interfaces kept in memory")

	/** ======================== Trigger Flags ========================== **/

	flagSet.BoolVar(&cfg.Trigger.Lift, "lift", cfg.Trigger.Lift,
		"lift the leading proposal if it has more weight than the hat")
	flagSet.BoolVar(&cfg.Trigger.Cast, "cast", cfg.Trigger.Cast,
		"cast the hat spell if it is recognized and not executed. implies --lift")
	flagSet.DurationVar(&cfg.Trigger.ConfirmTimeout, "confirm-timeout", cfg.Trigger.ConfirmTimeout,
		"how long to wait for a submitted transaction to be mined")

	/** ======================== Output Flags ========================== **/

	flagSet.BoolVar(&cfg.Output.JSON, "json", cfg.Output.JSON,
		"print the report as json")
	flagSet.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level,
		"log level")
	flagSet.StringVar(&cfg.Logging.Encoder, "log-encoder", cfg.Logging.Encoder,
		"log encoder (console or json)")
	flagSet.StringVar(&cfg.Metrics.PushURL, "metrics-push", cfg.Metrics.PushURL,
		"push metrics to this pushgateway url after the run")
	flagSet.StringVar(&cfg.Metrics.Job, "metrics-job", cfg.Metrics.Job,
		"job name used when pushing metrics")
}

// addressValue implements pflag.Value for an ethereum address.
type addressValue struct {
	addr *common.Address
}

func (v *addressValue) String() string {
	if v.addr == nil || *v.addr == (common.Address{}) {
		return ""
	}
	return v.addr.Hex()
}

func (v *addressValue) Set(s string) error {
	if !common.IsHexAddress(s) {
		return fmt.Errorf("invalid address %q", s)
	}
	*v.addr = common.HexToAddress(s)
	return nil
}

func (v *addressValue) Type() string {
	return "address"
}

// Command chief reconstructs the state of a chief governance vote, prints the tally
// and, when allowed, lifts the leading proposal and casts the hat.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-chief/chain"
	"github.com/spacemeshos/go-chief/chief"
	cmdp "github.com/spacemeshos/go-chief/cmd"
	"github.com/spacemeshos/go-chief/config"
	"github.com/spacemeshos/go-chief/log"
	"github.com/spacemeshos/go-chief/metadata"
	"github.com/spacemeshos/go-chief/metrics"
	"github.com/spacemeshos/go-chief/report"
	"github.com/spacemeshos/go-chief/spell"
	"github.com/spacemeshos/go-chief/trigger"
)

var (
	version string
	commit  string
	branch  string
)

var conf = config.DefaultConfig()

// Cmd is the root command of the tool.
var Cmd = &cobra.Command{
	Use:           "chief",
	Short:         "tally the chief vote and optionally lift or cast the winning spell",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(c *cobra.Command, _ []string) error {
		if err := cmdp.Configure(afero.NewOsFs(), c.Flags(), os.Args[1:], &conf); err != nil {
			return fmt.Errorf("configure: %w", err)
		}
		logger, err := log.New("chief", conf.Logging.Level, conf.Logging.Encoder)
		if err != nil {
			return err
		}
		defer logger.Sync()
		logger = logger.With(zap.String("run", uuid.NewString()))

		ctx, cancel := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return run(ctx, logger, &conf)
	},
}

// VersionCmd prints the build version.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	Run: func(c *cobra.Command, _ []string) {
		fmt.Println(cmdp.VersionString())
	},
}

func init() {
	cmdp.AddFlags(Cmd.Flags(), &conf)
	Cmd.AddCommand(VersionCmd)
}

func run(ctx context.Context, logger *zap.Logger, conf *config.Config) error {
	logger.Info("starting",
		zap.String("version", cmdp.VersionString()),
		zap.String("preset", conf.Preset),
		zap.Stringer("chief", conf.Chief.Address),
		zap.Bool("lift", conf.Trigger.Lift),
		zap.Bool("cast", conf.Trigger.Cast),
	)
	if len(conf.Metrics.PushURL) > 0 {
		defer func() {
			grouping := map[string]string{"chief": conf.Chief.Address.Hex()}
			if perr := metrics.Push(context.WithoutCancel(ctx), conf.Metrics.PushURL, conf.Metrics.Job, grouping, nil); perr != nil {
				logger.Warn("failed to push metrics", zap.Error(perr))
			}
		}()
	}

	key, err := conf.Signer.PrivateKey()
	if err != nil {
		return err
	}
	opts := []chain.Opt{chain.WithLogger(logger.Named("chain"))}
	if key != nil {
		opts = append(opts, chain.WithKey(key))
	}
	client, err := chain.Dial(ctx, conf.RPC, opts...)
	if err != nil {
		return err
	}
	defer client.Close()

	fetcher, err := metadata.NewEtherscan(conf.Metadata,
		metadata.WithEtherscanLogger(logger.Named("etherscan")),
	)
	if err != nil {
		return err
	}
	store, err := metadata.NewStore(fetcher,
		metadata.WithStoreLogger(logger.Named("metadata")),
		metadata.WithCacheDir(conf.Metadata.CacheDir),
		metadata.WithMemoryCache(conf.Metadata.MemoryCache),
	)
	if err != nil {
		return err
	}
	decoder := spell.New(client, metadata.NewInterfaces(store),
		spell.WithLogger(logger.Named("spell")),
		spell.WithConcurrency(conf.Chief.Concurrency),
	)
	actuator := trigger.New(client, conf.Chief.Address, conf.Trigger,
		trigger.WithLogger(logger.Named("trigger")),
	)
	engine := chief.New(conf.Chief, client, client, decoder, actuator,
		chief.WithLogger(logger.Named("engine")),
	)

	rep, err := engine.Run(ctx)
	if err != nil {
		return err
	}
	if conf.Output.JSON {
		return report.JSON(os.Stdout, rep)
	}
	return report.Text(os.Stdout, rep)
}

func main() {
	cmdp.Version = version
	cmdp.Commit = commit
	cmdp.Branch = branch
	if err := Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/spacemeshos/go-chief/config"
	"github.com/spacemeshos/go-chief/config/presets"
)

// LoadConfig builds the configuration from the defaults, the named preset and the file at path.
// Both preset and path are optional.
func LoadConfig(fs afero.Fs, preset, path string) (config.Config, error) {
	conf := config.DefaultConfig()
	if len(preset) > 0 {
		p, err := presets.Get(preset)
		if err != nil {
			return config.Config{}, err
		}
		conf = p
	}
	if len(path) == 0 {
		return conf, nil
	}
	vip := viper.New()
	if err := config.LoadConfig(fs, path, vip); err != nil {
		return config.Config{}, err
	}
	if err := config.Unmarshal(vip, &conf); err != nil {
		return config.Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	conf.ConfigFile = path
	return conf, nil
}

// Configure fills conf for a run. Flags are parsed twice: the first pass finds the preset and
// the config file, the second one lets flags override the file and the environment.
func Configure(fs afero.Fs, flagSet *pflag.FlagSet, args []string, conf *config.Config) error {
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	loaded, err := LoadConfig(fs, conf.Preset, conf.ConfigFile)
	if err != nil {
		return err
	}
	*conf = loaded
	if err := config.ApplyEnv(conf); err != nil {
		return err
	}
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	return conf.Validate()
}

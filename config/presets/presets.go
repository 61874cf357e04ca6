// Package presets registers named configurations of known deployments.
package presets

import (
	"fmt"
	"sort"

	"github.com/spacemeshos/go-chief/config"
)

var presets = map[string]config.Config{}

func register(name string, preset config.Config) {
	if _, exist := presets[name]; exist {
		panic(fmt.Sprintf("preset with name %s already exists", name))
	}
	preset.Preset = name
	presets[name] = preset
}

// Options returns the names of registered presets.
func Options() []string {
	var rst []string
	for name := range presets {
		rst = append(rst, name)
	}
	sort.Strings(rst)
	return rst
}

// Get returns a registered preset.
func Get(name string) (config.Config, error) {
	preset, exist := presets[name]
	if !exist {
		return config.Config{}, fmt.Errorf("preset %s doesn't exist", name)
	}
	return preset, nil
}

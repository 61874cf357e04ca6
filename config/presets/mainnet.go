package presets

import (
	"github.com/spacemeshos/go-chief/config"
)

func init() {
	register("mainnet", config.MainnetConfig())
	register("kovan", config.KovanConfig())
}

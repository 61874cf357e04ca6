package config

import (
	"github.com/ethereum/go-ethereum/common"
)

// KovanConfig points at the chief deployed to the kovan testnet.
func KovanConfig() Config {
	conf := DefaultConfig()
	conf.Chief.Address = common.HexToAddress("0xbBFFC76e94B34F72D96D054b31f6424249c1337d")
	conf.Chief.FromBlock = 6591861
	conf.Metadata.URL = "https://api-kovan.etherscan.io/api"
	conf.Metadata.CacheDir = "./abi/kovan"
	return conf
}

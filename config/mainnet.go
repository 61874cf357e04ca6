package config

import (
	"github.com/ethereum/go-ethereum/common"
)

// MainnetConfig points at the mainnet chief and starts the scan at its deployment.
func MainnetConfig() Config {
	conf := DefaultConfig()
	conf.Chief.Address = common.HexToAddress("0x9eF05f7F6deB616fd37aC3c959a2dDD25A54E4F5")
	conf.Chief.FromBlock = 7705361
	conf.Metadata.URL = "https://api.etherscan.io/api"
	return conf
}

package model

// Coin names the chain served by the index.
type Coin string

// Network names one of the supported network profiles.
type Network string

var (
	MANGA Coin = "MANGA"
)

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
)

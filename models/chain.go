package models

// ChainType identifies the chain a cross-chain record originates from.
// Values match the asset chain discriminator stored with CKB mints and burns.
type ChainType int

const (
	ChainTypeCkb     ChainType = 0
	ChainTypeBtc     ChainType = 1
	ChainTypeCardano ChainType = 2
)

const AssetAda = "ada"

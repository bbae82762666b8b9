package client

import (
	"fmt"

	"github.com/dan13ram/ada-bridge/common"
	"github.com/dan13ram/ada-bridge/models"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	HashTypeData  = "data"
	HashTypeType  = "type"
	HashTypeData1 = "data1"

	DepTypeCode     = "code"
	DepTypeDepGroup = "dep_group"

	ScriptTypeLock = "lock"
	ScriptTypeType = "type"

	OrderAsc = "asc"

	// shannons per ckbyte
	ShannonsPerByte uint64 = 100_000_000
)

type Script struct {
	CodeHash ethcommon.Hash `json:"code_hash"`
	HashType string         `json:"hash_type"`
	Args     hexutil.Bytes  `json:"args"`
}

type OutPoint struct {
	TxHash ethcommon.Hash `json:"tx_hash"`
	Index  hexutil.Uint   `json:"index"`
}

type CellDep struct {
	OutPoint OutPoint `json:"out_point"`
	DepType  string   `json:"dep_type"`
}

type CellInput struct {
	Since          hexutil.Uint64 `json:"since"`
	PreviousOutput OutPoint       `json:"previous_output"`
}

type CellOutput struct {
	Capacity hexutil.Uint64 `json:"capacity"`
	Lock     Script         `json:"lock"`
	Type     *Script        `json:"type"`
}

type Transaction struct {
	Version     hexutil.Uint     `json:"version"`
	CellDeps    []CellDep        `json:"cell_deps"`
	HeaderDeps  []ethcommon.Hash `json:"header_deps"`
	Inputs      []CellInput      `json:"inputs"`
	Outputs     []CellOutput     `json:"outputs"`
	OutputsData []hexutil.Bytes  `json:"outputs_data"`
	Witnesses   []hexutil.Bytes  `json:"witnesses"`
}

type WitnessArgs struct {
	Lock       []byte
	InputType  []byte
	OutputType []byte
}

type SearchKeyFilter struct {
	Script             *Script          `json:"script,omitempty"`
	ScriptLenRange     []hexutil.Uint64 `json:"script_len_range,omitempty"`
	OutputDataLenRange []hexutil.Uint64 `json:"output_data_len_range,omitempty"`
}

type SearchKey struct {
	Script     Script           `json:"script"`
	ScriptType string           `json:"script_type"`
	Filter     *SearchKeyFilter `json:"filter,omitempty"`
	WithData   bool             `json:"with_data"`
}

type Cell struct {
	Output      CellOutput     `json:"output"`
	OutputData  hexutil.Bytes  `json:"output_data"`
	OutPoint    OutPoint       `json:"out_point"`
	BlockNumber hexutil.Uint64 `json:"block_number"`
	TxIndex     hexutil.Uint   `json:"tx_index"`
}

type CellsPage struct {
	LastCursor string `json:"last_cursor"`
	Objects    []Cell `json:"objects"`
}

// RecipientCellData is the data of the cell recording where a burn is paid out.
type RecipientCellData struct {
	RecipientAddress string
	Chain            models.ChainType
	Asset            string
	Amount           [16]byte
	OwnerLockHash    [32]byte
}

func ScriptFromConfig(config models.ScriptConfig) (Script, error) {
	codeHash, err := common.HexToBytes(config.CodeHash)
	if err != nil || len(codeHash) != common.HashLength {
		return Script{}, fmt.Errorf("invalid code hash: %s", config.CodeHash)
	}
	if _, err := hashTypeByte(config.HashType); err != nil {
		return Script{}, err
	}
	args, err := common.HexToBytes(config.Args)
	if err != nil {
		return Script{}, fmt.Errorf("invalid args: %s", config.Args)
	}
	return Script{
		CodeHash: ethcommon.BytesToHash(codeHash),
		HashType: config.HashType,
		Args:     args,
	}, nil
}

func CellDepFromConfig(config models.CellDepConfig) (CellDep, error) {
	txHash, err := common.HexToBytes(config.TxHash)
	if err != nil || len(txHash) != common.HashLength {
		return CellDep{}, fmt.Errorf("invalid cell dep tx hash: %s", config.TxHash)
	}
	if config.DepType != DepTypeCode && config.DepType != DepTypeDepGroup {
		return CellDep{}, fmt.Errorf("invalid cell dep type: %s", config.DepType)
	}
	return CellDep{
		OutPoint: OutPoint{TxHash: ethcommon.BytesToHash(txHash), Index: hexutil.Uint(config.Index)},
		DepType:  config.DepType,
	}, nil
}

// Hash is the ckb hash of the serialized script.
func (s Script) Hash() ethcommon.Hash {
	return ethcommon.Hash(common.CkbHash(SerializeScript(s)))
}

// OccupiedCapacity is the capacity in shannons needed to store the cell.
func OccupiedCapacity(output CellOutput, data []byte) uint64 {
	size := uint64(8 + len(data))
	size += scriptOccupiedBytes(output.Lock)
	if output.Type != nil {
		size += scriptOccupiedBytes(*output.Type)
	}
	return size * ShannonsPerByte
}

func scriptOccupiedBytes(s Script) uint64 {
	return uint64(common.HashLength + 1 + len(s.Args))
}

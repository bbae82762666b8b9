package client

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"cosmossdk.io/math"
	"github.com/dan13ram/ada-bridge/common"
	"github.com/dan13ram/ada-bridge/models"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultPageSize uint64 = 100
)

type CkbClient interface {
	GetTipBlockNumber() (uint64, error)
	GetCells(searchKey SearchKey, limit uint64, cursor string) (*CellsPage, error)
	GetTokenBalance(typeScript Script, ownerLock Script) (math.Int, error)
	BuildBurnTransaction(ownerLock Script, recipient string, asset string, amount math.Int) (*Transaction, error)
	SendTransaction(tx *Transaction) (string, error)
	SignAndBroadcast(tx *Transaction, signer common.Signer) (string, error)
}

type ckbClient struct {
	rpc     *rpc.Client
	timeout time.Duration
	config  models.CkbConfig
}

func (c *ckbClient) call(result interface{}, method string, args ...interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	return c.rpc.CallContext(ctx, result, method, args...)
}

func (c *ckbClient) GetTipBlockNumber() (uint64, error) {
	var number hexutil.Uint64
	if err := c.call(&number, "get_tip_block_number"); err != nil {
		return 0, err
	}
	return uint64(number), nil
}

func (c *ckbClient) GetCells(searchKey SearchKey, limit uint64, cursor string) (*CellsPage, error) {
	var page CellsPage
	var after interface{}
	if cursor != "" {
		after = cursor
	}
	if err := c.call(&page, "get_cells", searchKey, OrderAsc, hexutil.Uint64(limit), after); err != nil {
		return nil, err
	}
	return &page, nil
}

// forEachCell pages through the indexer until fn returns false or cells run out.
func (c *ckbClient) forEachCell(searchKey SearchKey, fn func(cell Cell) bool) error {
	cursor := ""
	for {
		page, err := c.GetCells(searchKey, DefaultPageSize, cursor)
		if err != nil {
			return err
		}
		for _, cell := range page.Objects {
			if !fn(cell) {
				return nil
			}
		}
		if len(page.Objects) < int(DefaultPageSize) || page.LastCursor == "" {
			return nil
		}
		cursor = page.LastCursor
	}
}

func tokenSearchKey(typeScript Script, ownerLock Script) SearchKey {
	return SearchKey{
		Script:     ownerLock,
		ScriptType: ScriptTypeLock,
		Filter:     &SearchKeyFilter{Script: &typeScript},
		WithData:   true,
	}
}

func capacitySearchKey(ownerLock Script) SearchKey {
	return SearchKey{
		Script:     ownerLock,
		ScriptType: ScriptTypeLock,
		Filter: &SearchKeyFilter{
			ScriptLenRange:     []hexutil.Uint64{0, 1},
			OutputDataLenRange: []hexutil.Uint64{0, 1},
		},
		WithData: true,
	}
}

func (c *ckbClient) GetTokenBalance(typeScript Script, ownerLock Script) (math.Int, error) {
	total := math.ZeroInt()
	var parseErr error
	err := c.forEachCell(tokenSearchKey(typeScript, ownerLock), func(cell Cell) bool {
		amount, err := DecodeTokenAmount(cell.OutputData)
		if err != nil {
			parseErr = err
			return false
		}
		total = total.Add(amount)
		return true
	})
	if err != nil {
		return math.ZeroInt(), err
	}
	if parseErr != nil {
		return math.ZeroInt(), parseErr
	}
	return total, nil
}

func (c *ckbClient) SendTransaction(tx *Transaction) (string, error) {
	var txHash string
	if err := c.call(&txHash, "send_transaction", tx, "passthrough"); err != nil {
		return "", err
	}
	return txHash, nil
}

func (c *ckbClient) SignAndBroadcast(tx *Transaction, signer common.Signer) (string, error) {
	if err := SignTransaction(tx, signer); err != nil {
		return "", err
	}
	return c.SendTransaction(tx)
}

// DecodeTokenAmount reads the little endian uint128 sudt amount from cell data.
func DecodeTokenAmount(data []byte) (math.Int, error) {
	if len(data) < 16 {
		return math.ZeroInt(), fmt.Errorf("invalid sudt cell data length: %d", len(data))
	}
	be := make([]byte, 16)
	for i := 0; i < 16; i++ {
		be[i] = data[15-i]
	}
	return math.NewIntFromBigInt(new(big.Int).SetBytes(be)), nil
}

// EncodeTokenAmount writes amount as a little endian uint128.
func EncodeTokenAmount(amount math.Int) ([16]byte, error) {
	var out [16]byte
	if amount.IsNegative() || amount.BigInt().BitLen() > 128 {
		return out, fmt.Errorf("amount out of uint128 range: %s", amount)
	}
	be := amount.BigInt().FillBytes(make([]byte, 16))
	for i := 0; i < 16; i++ {
		out[i] = be[15-i]
	}
	return out, nil
}

func NewClient(config models.CkbConfig) (CkbClient, error) {
	client, err := rpc.Dial(config.RPCURL)
	if err != nil {
		return nil, err
	}
	log.Debug("[CKB] Created rpc client for ", config.RPCURL)
	return &ckbClient{
		rpc:     client,
		timeout: time.Duration(config.RPCTimeoutMillis) * time.Millisecond,
		config:  config,
	}, nil
}

// ValidateNetwork checks the ckb node is reachable.
func ValidateNetwork(client CkbClient) {
	log.Debugln("[CKB]", "Validating network")
	tip, err := client.GetTipBlockNumber()
	if err != nil {
		log.Fatalln("[CKB]", "Failed to get tip block number:", err)
	}
	log.Debugln("[CKB]", "tip", tip)
	log.Infoln("[CKB]", "Validated network")
}

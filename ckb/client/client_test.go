package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cosmossdk.io/math"
	"github.com/dan13ram/ada-bridge/common"
	"github.com/dan13ram/ada-bridge/models"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"

	log "github.com/sirupsen/logrus"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

type rpcHandler func(params []json.RawMessage) (interface{}, error)

func newTestRPCServer(t *testing.T, handlers map[string]rpcHandler) string {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		handler, ok := handlers[req.Method]
		if !ok {
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"error":{"code":-32601,"message":"method not found"}}`, req.ID)
			return
		}
		result, err := handler(req.Params)
		if err != nil {
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"error":{"code":-1,"message":%q}}`, req.ID, err.Error())
			return
		}
		bz, _ := json.Marshal(result)
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":%s}`, req.ID, bz)
	}))
	t.Cleanup(server.Close)
	return server.URL
}

func testCkbConfig(url string) models.CkbConfig {
	return models.CkbConfig{
		RPCURL:           url,
		RPCTimeoutMillis: 2000,
		TxFee:            100000,
		SudtTypeScript:   models.ScriptConfig{CodeHash: testSudtCodeHash, HashType: HashTypeType, Args: "0x" + repeatHex("aa", 32)},
		RecipientTypeScript: models.ScriptConfig{
			CodeHash: "0x" + repeatHex("01", 32),
			HashType: HashTypeType,
			Args:     "0x",
		},
		BridgeLockScript: models.ScriptConfig{
			CodeHash: "0x" + repeatHex("02", 32),
			HashType: HashTypeType,
			Args:     "0x",
		},
		CellDeps: []models.CellDepConfig{
			{TxHash: "0xf8de3bb47d055cdf460d93a2a6e1b05f7432f9777c8c474abf4eec1d4aee5d37", Index: 0, DepType: DepTypeDepGroup},
		},
	}
}

func newTestCkbClient(t *testing.T, handlers map[string]rpcHandler) CkbClient {
	client, err := NewClient(testCkbConfig(newTestRPCServer(t, handlers)))
	assert.Nil(t, err)
	return client
}

func tokenCell(index uint, capacity uint64, amount int64) Cell {
	data, _ := EncodeTokenAmount(math.NewInt(amount))
	sudt := testSudtScript()
	return Cell{
		Output:     CellOutput{Capacity: hexutil.Uint64(capacity), Lock: testLockScript(), Type: &sudt},
		OutputData: data[:],
		OutPoint:   OutPoint{TxHash: TransactionHash(testTransaction()), Index: hexutil.Uint(index)},
	}
}

func capacityCell(index uint, capacity uint64) Cell {
	return Cell{
		Output:     CellOutput{Capacity: hexutil.Uint64(capacity), Lock: testLockScript()},
		OutputData: hexutil.Bytes{},
		OutPoint:   OutPoint{TxHash: TransactionHash(testTransaction()), Index: hexutil.Uint(index)},
	}
}

// cellsHandler serves token cells for searches filtered by a type script and
// capacity cells otherwise.
func cellsHandler(tokenCells []Cell, capacityCells []Cell) rpcHandler {
	return func(params []json.RawMessage) (interface{}, error) {
		var searchKey SearchKey
		if err := json.Unmarshal(params[0], &searchKey); err != nil {
			return nil, err
		}
		if searchKey.Filter != nil && searchKey.Filter.Script != nil {
			return CellsPage{LastCursor: "0x01", Objects: tokenCells}, nil
		}
		return CellsPage{LastCursor: "0x02", Objects: capacityCells}, nil
	}
}

func TestNewClient(t *testing.T) {
	_, err := NewClient(models.CkbConfig{RPCURL: "unknown://localhost"})
	assert.NotNil(t, err)
}

func TestGetTipBlockNumber(t *testing.T) {
	client := newTestCkbClient(t, map[string]rpcHandler{
		"get_tip_block_number": func(params []json.RawMessage) (interface{}, error) {
			return "0x400", nil
		},
	})

	tip, err := client.GetTipBlockNumber()

	assert.Nil(t, err)
	assert.Equal(t, uint64(1024), tip)
}

func TestValidateNetwork(t *testing.T) {
	t.Run("Reachable", func(t *testing.T) {
		client := newTestCkbClient(t, map[string]rpcHandler{
			"get_tip_block_number": func(params []json.RawMessage) (interface{}, error) {
				return "0x1", nil
			},
		})

		assert.NotPanics(t, func() { ValidateNetwork(client) })
	})

	t.Run("Unreachable", func(t *testing.T) {
		client := newTestCkbClient(t, map[string]rpcHandler{})

		defer func() { log.StandardLogger().ExitFunc = nil }()
		log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

		assert.Panics(t, func() { ValidateNetwork(client) })
	})
}

func TestGetCells(t *testing.T) {
	client := newTestCkbClient(t, map[string]rpcHandler{
		"get_cells": func(params []json.RawMessage) (interface{}, error) {
			assert.Len(t, params, 4)
			assert.Equal(t, `"asc"`, string(params[1]))
			assert.Equal(t, `"0x64"`, string(params[2]))
			assert.Equal(t, `"0xcursor"`, string(params[3]))
			return CellsPage{LastCursor: "0xnext", Objects: []Cell{capacityCell(0, 100)}}, nil
		},
	})

	page, err := client.GetCells(capacitySearchKey(testLockScript()), DefaultPageSize, "0xcursor")

	assert.Nil(t, err)
	assert.Equal(t, "0xnext", page.LastCursor)
	assert.Equal(t, hexutil.Uint64(100), page.Objects[0].Output.Capacity)
}

func TestGetTokenBalance(t *testing.T) {
	t.Run("Sums Cells", func(t *testing.T) {
		client := newTestCkbClient(t, map[string]rpcHandler{
			"get_cells": cellsHandler([]Cell{tokenCell(0, 142, 100000), tokenCell(1, 142, 50000)}, nil),
		})

		balance, err := client.GetTokenBalance(testSudtScript(), testLockScript())

		assert.Nil(t, err)
		assert.True(t, balance.Equal(math.NewInt(150000)))
	})

	t.Run("Invalid Cell Data", func(t *testing.T) {
		cell := tokenCell(0, 142, 1)
		cell.OutputData = hexutil.Bytes{0x01}
		client := newTestCkbClient(t, map[string]rpcHandler{
			"get_cells": cellsHandler([]Cell{cell}, nil),
		})

		_, err := client.GetTokenBalance(testSudtScript(), testLockScript())

		assert.NotNil(t, err)
	})

	t.Run("Rpc Error", func(t *testing.T) {
		client := newTestCkbClient(t, map[string]rpcHandler{})

		_, err := client.GetTokenBalance(testSudtScript(), testLockScript())

		assert.NotNil(t, err)
	})
}

func TestBuildBurnTransaction(t *testing.T) {
	recipient := "addr_test1vqexample"

	t.Run("Builds Recipient And Change Cells", func(t *testing.T) {
		client := newTestCkbClient(t, map[string]rpcHandler{
			"get_cells": cellsHandler(
				[]Cell{tokenCell(0, 142*ShannonsPerByte, 150000)},
				[]Cell{capacityCell(1, 1000*ShannonsPerByte)},
			),
		})

		tx, err := client.BuildBurnTransaction(testLockScript(), recipient, models.AssetAda, math.NewInt(100000))

		assert.Nil(t, err)
		assert.Len(t, tx.Inputs, 2)
		assert.Len(t, tx.Witnesses, 2)
		assert.Len(t, tx.Outputs, 2)
		assert.Len(t, tx.CellDeps, 1)
		assert.NotNil(t, tx.HeaderDeps)

		data, err := DeserializeRecipientCellData(tx.OutputsData[0])
		assert.Nil(t, err)
		assert.Equal(t, recipient, data.RecipientAddress)
		assert.Equal(t, models.ChainTypeCardano, data.Chain)
		assert.Equal(t, models.AssetAda, data.Asset)
		assert.Equal(t, [32]byte(testLockScript().Hash()), data.OwnerLockHash)

		recipientCapacity := OccupiedCapacity(tx.Outputs[0], tx.OutputsData[0])
		assert.Equal(t, hexutil.Uint64(recipientCapacity), tx.Outputs[0].Capacity)
		assert.Equal(t, hexutil.Uint64(1142*ShannonsPerByte-recipientCapacity-100000), tx.Outputs[1].Capacity)

		change, err := DecodeTokenAmount(tx.OutputsData[1])
		assert.Nil(t, err)
		assert.True(t, change.Equal(math.NewInt(50000)))
	})

	t.Run("Insufficient Tokens", func(t *testing.T) {
		client := newTestCkbClient(t, map[string]rpcHandler{
			"get_cells": cellsHandler([]Cell{tokenCell(0, 142*ShannonsPerByte, 50000)}, nil),
		})

		tx, err := client.BuildBurnTransaction(testLockScript(), recipient, models.AssetAda, math.NewInt(100000))

		assert.Nil(t, tx)
		assert.ErrorContains(t, err, "insufficient token balance")
	})

	t.Run("Insufficient Capacity", func(t *testing.T) {
		client := newTestCkbClient(t, map[string]rpcHandler{
			"get_cells": cellsHandler([]Cell{tokenCell(0, 142*ShannonsPerByte, 150000)}, []Cell{}),
		})

		tx, err := client.BuildBurnTransaction(testLockScript(), recipient, models.AssetAda, math.NewInt(100000))

		assert.Nil(t, tx)
		assert.True(t, errors.Is(err, ErrInsufficientCapacity))
	})

	t.Run("Invalid Amount", func(t *testing.T) {
		client := newTestCkbClient(t, map[string]rpcHandler{})

		_, err := client.BuildBurnTransaction(testLockScript(), recipient, models.AssetAda, math.ZeroInt())

		assert.NotNil(t, err)
	})
}

func TestSignAndBroadcast(t *testing.T) {
	signer, err := common.NewMnemonicSigner("test test test test test test test test test test test junk")
	assert.Nil(t, err)

	client := newTestCkbClient(t, map[string]rpcHandler{
		"send_transaction": func(params []json.RawMessage) (interface{}, error) {
			assert.Equal(t, `"passthrough"`, string(params[1]))
			var tx Transaction
			if err := json.Unmarshal(params[0], &tx); err != nil {
				return nil, err
			}
			return TransactionHash(&tx).Hex(), nil
		},
	})

	tx := testTransaction()
	txHash, err := client.SignAndBroadcast(tx, signer)

	assert.Nil(t, err)
	assert.Equal(t, TransactionHash(testTransaction()).Hex(), txHash)

	message, err := SighashAllMessage(tx)
	assert.Nil(t, err)
	assert.Len(t, []byte(tx.Witnesses[0]), 85)
	signature := []byte(tx.Witnesses[0])[20:]
	assert.True(t, common.VerifySignature(message, signature, signer.PublicKey()))
}

func TestSignTransactionErrors(t *testing.T) {
	signer, _ := common.NewMnemonicSigner("test test test test test test test test test test test junk")

	tx := testTransaction()
	tx.Inputs = nil
	assert.NotNil(t, SignTransaction(tx, signer))

	tx = testTransaction()
	tx.Witnesses = nil
	assert.NotNil(t, SignTransaction(tx, signer))
}

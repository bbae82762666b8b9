package client

import (
	"errors"
	"fmt"

	"cosmossdk.io/math"
	"github.com/dan13ram/ada-bridge/common"
	"github.com/dan13ram/ada-bridge/models"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var ErrInsufficientCapacity = errors.New("insufficient capacity")

type burnScripts struct {
	sudt      Script
	recipient Script
	bridge    Script
	cellDeps  []CellDep
}

func (c *ckbClient) burnScripts() (*burnScripts, error) {
	sudt, err := ScriptFromConfig(c.config.SudtTypeScript)
	if err != nil {
		return nil, fmt.Errorf("sudt type script: %w", err)
	}
	recipient, err := ScriptFromConfig(c.config.RecipientTypeScript)
	if err != nil {
		return nil, fmt.Errorf("recipient type script: %w", err)
	}
	bridge, err := ScriptFromConfig(c.config.BridgeLockScript)
	if err != nil {
		return nil, fmt.Errorf("bridge lock script: %w", err)
	}
	cellDeps := make([]CellDep, 0, len(c.config.CellDeps))
	for _, config := range c.config.CellDeps {
		dep, err := CellDepFromConfig(config)
		if err != nil {
			return nil, err
		}
		cellDeps = append(cellDeps, dep)
	}
	return &burnScripts{sudt: sudt, recipient: recipient, bridge: bridge, cellDeps: cellDeps}, nil
}

// BuildBurnTransaction returns an unsigned transaction that destroys amount of
// the sudt held by ownerLock. The payout recipient is written into a recipient
// cell and the remaining tokens go back to the owner.
func (c *ckbClient) BuildBurnTransaction(ownerLock Script, recipient string, asset string, amount math.Int) (*Transaction, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("invalid burn amount: %s", amount)
	}
	scripts, err := c.burnScripts()
	if err != nil {
		return nil, err
	}

	amountBytes, err := EncodeTokenAmount(amount)
	if err != nil {
		return nil, err
	}
	recipientData := SerializeRecipientCellData(RecipientCellData{
		RecipientAddress: recipient,
		Chain:            models.ChainTypeCardano,
		Asset:            asset,
		Amount:           amountBytes,
		OwnerLockHash:    [32]byte(ownerLock.Hash()),
	})
	recipientOutput := CellOutput{Lock: scripts.bridge, Type: &scripts.recipient}
	recipientOutput.Capacity = hexutil.Uint64(OccupiedCapacity(recipientOutput, recipientData))

	changeOutput := CellOutput{Lock: ownerLock, Type: &scripts.sudt}
	changeCapacity := OccupiedCapacity(changeOutput, make([]byte, 16))

	var inputs []CellInput
	var inputCapacity uint64
	tokens := math.ZeroInt()
	var parseErr error

	err = c.forEachCell(tokenSearchKey(scripts.sudt, ownerLock), func(cell Cell) bool {
		cellAmount, err := DecodeTokenAmount(cell.OutputData)
		if err != nil {
			parseErr = err
			return false
		}
		inputs = append(inputs, CellInput{PreviousOutput: cell.OutPoint})
		inputCapacity += uint64(cell.Output.Capacity)
		tokens = tokens.Add(cellAmount)
		return tokens.LT(amount)
	})
	if err != nil {
		return nil, err
	}
	if parseErr != nil {
		return nil, parseErr
	}
	if tokens.LT(amount) {
		return nil, fmt.Errorf("insufficient token balance: have %s, need %s", tokens, amount)
	}

	required := uint64(recipientOutput.Capacity) + changeCapacity + c.config.TxFee
	if inputCapacity < required {
		err = c.forEachCell(capacitySearchKey(ownerLock), func(cell Cell) bool {
			inputs = append(inputs, CellInput{PreviousOutput: cell.OutPoint})
			inputCapacity += uint64(cell.Output.Capacity)
			return inputCapacity < required
		})
		if err != nil {
			return nil, err
		}
	}
	if inputCapacity < required {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientCapacity, inputCapacity, required)
	}

	changeAmount, err := EncodeTokenAmount(tokens.Sub(amount))
	if err != nil {
		return nil, err
	}
	changeOutput.Capacity = hexutil.Uint64(inputCapacity - uint64(recipientOutput.Capacity) - c.config.TxFee)

	witnesses := make([]hexutil.Bytes, len(inputs))
	witnesses[0] = SerializeWitnessArgs(WitnessArgs{Lock: make([]byte, common.SignatureLength)})
	for i := 1; i < len(witnesses); i++ {
		witnesses[i] = hexutil.Bytes{}
	}

	return &Transaction{
		Version:     0,
		CellDeps:    scripts.cellDeps,
		HeaderDeps:  []ethcommon.Hash{},
		Inputs:      inputs,
		Outputs:     []CellOutput{recipientOutput, changeOutput},
		OutputsData: []hexutil.Bytes{recipientData, changeAmount[:]},
		Witnesses:   witnesses,
	}, nil
}

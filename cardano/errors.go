package cardano

import (
	"errors"

	"github.com/dan13ram/ada-bridge/common"
)

var (
	ErrInsufficientBalance = common.ErrInsufficientBalance
	ErrBatchTooLarge       = errors.New("batch too large")
	ErrEmptyBatch          = errors.New("empty batch")
	ErrDuplicateUnlock     = errors.New("duplicate unlock")
)

package common

import "errors"

var ErrInsufficientBalance = errors.New("insufficient balance")

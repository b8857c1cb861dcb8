package exception

import "github.com/yanun0323/errors"

var (
	ErrUnknownKey        = errors.New("key not found in service")
	ErrEmptyBookSide     = errors.New("order book side is empty")
	ErrInvalidTransition = errors.New("invalid inquiry state transition")
)

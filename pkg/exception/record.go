package exception

import "github.com/yanun0323/errors"

var (
	ErrMalformedRecord  = errors.New("malformed record")
	ErrUnknownProductID = errors.New("unknown product id")
)

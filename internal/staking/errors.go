package staking

import (
	"errors"
)

var (
	ErrZeroPrincipal = errors.New("ROI is undefined for a zero principal")
)

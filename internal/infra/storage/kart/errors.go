package kart

import "errors"

var (
	ErrBuildQuery = errors.New("kart.repository: failed to build query")
	ErrExecQuery  = errors.New("kart.repository: failed to execute query")
	ErrScanRow    = errors.New("kart.repository: failed to scan row")
)

package repository

import "errors"

var (
	ErrFailedToAggregate = errors.New("failed to aggregate records")
	ErrUnsupportedLedger = errors.New("unsupported ledger")
)

package receipt

import "errors"

var (
	ErrReceiptNotFound    = errors.New("receipt not found")
	ErrPeriodAlreadyRun   = errors.New("receipts already issued for billing period")
	ErrReceiptAlreadyPaid = errors.New("receipt is already paid")
)

package unit

import "errors"

var (
	ErrUnitNotFound        = errors.New("unit not found")
	ErrIdentifierTaken     = errors.New("unit identifier already exists in condominium")
	ErrNoUnitsInCondo      = errors.New("condominium has no units")
	ErrAliquotSumMismatch  = errors.New("aliquot percentages do not sum to 100")
	ErrUnitCapacityReached = errors.New("plan unit capacity reached")
)

// Package unit models the individual apartments or offices inside a
// condominium, including the physical specs used for fee apportionment
// and the running account balance.
package unit

import (
	"fmt"
	"time"
)

// Specs carries the measurements that drive fee apportionment.
type Specs struct {
	AreaM2            float64 `json:"area_m2"`
	AliquotPercentage float64 `json:"aliquot_percentage"`
}

func (s Specs) Validate() error {
	if s.AreaM2 < 0 {
		return fmt.Errorf("area cannot be negative")
	}
	if s.AliquotPercentage < 0 || s.AliquotPercentage > 100 {
		return fmt.Errorf("aliquot percentage must be between 0 and 100")
	}
	return nil
}

// Unit is a billable property inside a condominium.
type Unit struct {
	id             uint
	condominiumID  uint
	identifier     string
	ownerID        *uint
	specs          Specs
	currentBalance float64
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

// NewUnit creates a unit. Identifier is the human label (e.g. "A-101") and
// must be unique within the condominium; the repository enforces that.
func NewUnit(condominiumID uint, identifier string, specs Specs) (*Unit, error) {
	if condominiumID == 0 {
		return nil, fmt.Errorf("condominium ID is required")
	}
	if identifier == "" {
		return nil, fmt.Errorf("unit identifier is required")
	}
	if err := specs.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Unit{
		condominiumID: condominiumID,
		identifier:    identifier,
		specs:         specs,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructUnit rebuilds a unit from persistence.
func ReconstructUnit(
	id uint,
	condominiumID uint,
	identifier string,
	ownerID *uint,
	specs Specs,
	currentBalance float64,
	version int,
	createdAt, updatedAt time.Time,
) (*Unit, error) {
	if id == 0 {
		return nil, fmt.Errorf("unit ID cannot be zero")
	}

	return &Unit{
		id:             id,
		condominiumID:  condominiumID,
		identifier:     identifier,
		ownerID:        ownerID,
		specs:          specs,
		currentBalance: currentBalance,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (u *Unit) ID() uint {
	return u.id
}

func (u *Unit) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("unit ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("unit ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *Unit) CondominiumID() uint {
	return u.condominiumID
}

func (u *Unit) Identifier() string {
	return u.identifier
}

func (u *Unit) OwnerID() *uint {
	return u.ownerID
}

func (u *Unit) Specs() Specs {
	return u.specs
}

func (u *Unit) CurrentBalance() float64 {
	return u.currentBalance
}

func (u *Unit) Version() int {
	return u.version
}

func (u *Unit) CreatedAt() time.Time {
	return u.createdAt
}

func (u *Unit) UpdatedAt() time.Time {
	return u.updatedAt
}

// AssignOwner links a resident user to the unit.
func (u *Unit) AssignOwner(ownerID uint) error {
	if ownerID == 0 {
		return fmt.Errorf("owner ID cannot be zero")
	}
	u.ownerID = &ownerID
	u.touch()
	return nil
}

// ClearOwner detaches the current owner, e.g. on sale or move-out.
func (u *Unit) ClearOwner() {
	u.ownerID = nil
	u.touch()
}

// UpdateSpecs replaces the physical measurements.
func (u *Unit) UpdateSpecs(specs Specs) error {
	if err := specs.Validate(); err != nil {
		return err
	}
	u.specs = specs
	u.touch()
	return nil
}

// ApplyCharge increases the amount the unit owes.
func (u *Unit) ApplyCharge(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("charge amount must be positive")
	}
	u.currentBalance += amount
	u.touch()
	return nil
}

// ApplyPayment decreases the amount owed. Overpayment leaves a negative
// balance, which acts as credit toward the next period.
func (u *Unit) ApplyPayment(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("payment amount must be positive")
	}
	u.currentBalance -= amount
	u.touch()
	return nil
}

func (u *Unit) touch() {
	u.updatedAt = time.Now()
	u.version++
}

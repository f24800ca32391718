// Package subscription holds the SaaS plan catalog and the per-tenant
// subscription aggregate that gates access to mutating operations.
package subscription

import (
	"fmt"
	"time"
)

var validCurrencies = map[string]bool{
	"USD": true,
	"EUR": true,
	"VES": true,
	"COP": true,
	"MXN": true,
}

// Plan is a SaaS pricing tier. Code is the unique human-facing identifier
// used by dashboards and seeding scripts.
type Plan struct {
	id                uint
	name              string
	code              string
	monthlyPrice      float64
	currency          string
	maxUnits          uint
	features          []string
	aiFeaturesEnabled bool
	version           int
	createdAt         time.Time
	updatedAt         time.Time
}

// NewPlan creates a pricing tier.
func NewPlan(name, code string, monthlyPrice float64, currency string, maxUnits uint, features []string, aiFeaturesEnabled bool) (*Plan, error) {
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if code == "" {
		return nil, fmt.Errorf("plan code is required")
	}
	if monthlyPrice < 0 {
		return nil, fmt.Errorf("monthly price cannot be negative")
	}
	if currency == "" {
		currency = "USD"
	}
	if !validCurrencies[currency] {
		return nil, fmt.Errorf("invalid currency code: %s", currency)
	}
	if maxUnits == 0 {
		return nil, fmt.Errorf("max units must be greater than 0")
	}
	if features == nil {
		features = []string{}
	}

	now := time.Now()
	return &Plan{
		name:              name,
		code:              code,
		monthlyPrice:      monthlyPrice,
		currency:          currency,
		maxUnits:          maxUnits,
		features:          features,
		aiFeaturesEnabled: aiFeaturesEnabled,
		version:           1,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// ReconstructPlan rebuilds a plan from persistence.
func ReconstructPlan(
	id uint,
	name, code string,
	monthlyPrice float64,
	currency string,
	maxUnits uint,
	features []string,
	aiFeaturesEnabled bool,
	version int,
	createdAt, updatedAt time.Time,
) (*Plan, error) {
	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if features == nil {
		features = []string{}
	}

	return &Plan{
		id:                id,
		name:              name,
		code:              code,
		monthlyPrice:      monthlyPrice,
		currency:          currency,
		maxUnits:          maxUnits,
		features:          features,
		aiFeaturesEnabled: aiFeaturesEnabled,
		version:           version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (p *Plan) ID() uint {
	return p.id
}

func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Plan) Name() string {
	return p.name
}

func (p *Plan) Code() string {
	return p.code
}

func (p *Plan) MonthlyPrice() float64 {
	return p.monthlyPrice
}

func (p *Plan) Currency() string {
	return p.currency
}

func (p *Plan) MaxUnits() uint {
	return p.maxUnits
}

func (p *Plan) Features() []string {
	return p.features
}

func (p *Plan) AIFeaturesEnabled() bool {
	return p.aiFeaturesEnabled
}

func (p *Plan) Version() int {
	return p.version
}

func (p *Plan) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Plan) UpdatedAt() time.Time {
	return p.updatedAt
}

// UpdatePricing changes the monthly price and currency.
func (p *Plan) UpdatePricing(monthlyPrice float64, currency string) error {
	if monthlyPrice < 0 {
		return fmt.Errorf("monthly price cannot be negative")
	}
	if !validCurrencies[currency] {
		return fmt.Errorf("invalid currency code: %s", currency)
	}
	p.monthlyPrice = monthlyPrice
	p.currency = currency
	p.touch()
	return nil
}

// Rename changes the display name.
func (p *Plan) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("plan name is required")
	}
	p.name = name
	p.touch()
	return nil
}

// SetMaxUnits changes the unit capacity sold with this plan.
func (p *Plan) SetMaxUnits(maxUnits uint) error {
	if maxUnits == 0 {
		return fmt.Errorf("max units must be greater than 0")
	}
	p.maxUnits = maxUnits
	p.touch()
	return nil
}

// UpdateFeatures replaces the feature list.
func (p *Plan) UpdateFeatures(features []string, aiEnabled bool) {
	if features == nil {
		features = []string{}
	}
	p.features = features
	p.aiFeaturesEnabled = aiEnabled
	p.touch()
}

func (p *Plan) touch() {
	p.updatedAt = time.Now()
	p.version++
}

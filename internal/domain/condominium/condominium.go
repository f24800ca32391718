// Package condominium holds the tenant aggregate of the platform: one
// condominium, its administrator reference and its apportionment settings.
package condominium

import (
	"fmt"
	"time"
)

// Condominium is the tenant aggregate root. AdminID and the admin user's
// condominium back-reference form a bidirectional pair that is only ever
// written inside the provisioning transaction.
type Condominium struct {
	id         uint
	name       string
	address    string
	adminID    uint
	resellerID *uint
	settings   Settings
	amenities  []string
	version    int
	createdAt  time.Time
	updatedAt  time.Time
}

// NewCondominium creates a tenant owned by an existing admin user.
func NewCondominium(name, address string, adminID uint, settings Settings) (*Condominium, error) {
	if name == "" {
		return nil, fmt.Errorf("condominium name is required")
	}
	if address == "" {
		return nil, fmt.Errorf("condominium address is required")
	}
	if adminID == 0 {
		return nil, fmt.Errorf("admin user ID is required")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Condominium{
		name:      name,
		address:   address,
		adminID:   adminID,
		settings:  settings,
		amenities: []string{},
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructCondominium rebuilds a tenant from persistence.
func ReconstructCondominium(
	id uint,
	name, address string,
	adminID uint,
	resellerID *uint,
	settings Settings,
	amenities []string,
	version int,
	createdAt, updatedAt time.Time,
) (*Condominium, error) {
	if id == 0 {
		return nil, fmt.Errorf("condominium ID cannot be zero")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if amenities == nil {
		amenities = []string{}
	}

	return &Condominium{
		id:         id,
		name:       name,
		address:    address,
		adminID:    adminID,
		resellerID: resellerID,
		settings:   settings,
		amenities:  amenities,
		version:    version,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (c *Condominium) ID() uint {
	return c.id
}

func (c *Condominium) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("condominium ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("condominium ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Condominium) Name() string {
	return c.name
}

func (c *Condominium) Address() string {
	return c.address
}

func (c *Condominium) AdminID() uint {
	return c.adminID
}

func (c *Condominium) ResellerID() *uint {
	return c.resellerID
}

func (c *Condominium) Settings() Settings {
	return c.settings
}

func (c *Condominium) Amenities() []string {
	return c.amenities
}

func (c *Condominium) Version() int {
	return c.version
}

func (c *Condominium) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Condominium) UpdatedAt() time.Time {
	return c.updatedAt
}

// Rename changes the display name.
func (c *Condominium) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("condominium name is required")
	}
	c.name = name
	c.touch()
	return nil
}

// Relocate changes the street address.
func (c *Condominium) Relocate(address string) error {
	if address == "" {
		return fmt.Errorf("condominium address is required")
	}
	c.address = address
	c.touch()
	return nil
}

// UpdateSettings replaces the tenant configuration.
func (c *Condominium) UpdateSettings(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	c.settings = settings
	c.touch()
	return nil
}

// AssignReseller attaches the tenant to a reseller portfolio.
func (c *Condominium) AssignReseller(resellerID uint) error {
	if resellerID == 0 {
		return fmt.Errorf("reseller ID cannot be zero")
	}
	c.resellerID = &resellerID
	c.touch()
	return nil
}

// AddAmenity registers a bookable amenity. Duplicates are ignored.
func (c *Condominium) AddAmenity(name string) {
	for _, a := range c.amenities {
		if a == name {
			return
		}
	}
	c.amenities = append(c.amenities, name)
	c.touch()
}

// RemoveAmenity unregisters an amenity if present.
func (c *Condominium) RemoveAmenity(name string) {
	for i, a := range c.amenities {
		if a == name {
			c.amenities = append(c.amenities[:i], c.amenities[i+1:]...)
			c.touch()
			return
		}
	}
}

func (c *Condominium) touch() {
	c.updatedAt = time.Now()
	c.version++
}

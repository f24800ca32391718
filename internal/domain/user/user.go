package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/edifai-io/edifai/internal/shared/authorization"
)

// UserStatus is the account lifecycle state.
type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
	StatusBlocked  UserStatus = "blocked"
)

func (s UserStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusBlocked:
		return true
	}
	return false
}

// NotificationChannel is the user's preferred delivery channel.
type NotificationChannel string

const (
	ChannelEmail    NotificationChannel = "email"
	ChannelWhatsApp NotificationChannel = "whatsapp"
	ChannelBoth     NotificationChannel = "both"
)

func (c NotificationChannel) IsValid() bool {
	switch c {
	case ChannelEmail, ChannelWhatsApp, ChannelBoth:
		return true
	}
	return false
}

// Profile holds the displayable identity of an account.
type Profile struct {
	FirstName string
	LastName  string
	Phone     string
}

// User is the account aggregate root. A condo admin or resident carries a
// back-reference to their condominium; platform operators and resellers do
// not belong to any tenant.
type User struct {
	id                  uint
	email               string
	passwordHash        string
	role                authorization.UserRole
	profile             Profile
	notificationChannel NotificationChannel
	status              UserStatus
	condominiumID       *uint
	version             int
	createdAt           time.Time
	updatedAt           time.Time
}

// NewUser creates an account with an already-hashed credential.
func NewUser(email, passwordHash string, role authorization.UserRole, profile Profile) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address: %s", email)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if profile.FirstName == "" {
		return nil, fmt.Errorf("first name is required")
	}

	now := time.Now()
	return &User{
		email:               email,
		passwordHash:        passwordHash,
		role:                role,
		profile:             profile,
		notificationChannel: ChannelEmail,
		status:              StatusActive,
		version:             1,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

// ReconstructUser rebuilds an account from persistence.
func ReconstructUser(
	id uint,
	email, passwordHash string,
	role authorization.UserRole,
	profile Profile,
	notificationChannel NotificationChannel,
	status UserStatus,
	condominiumID *uint,
	version int,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid user status: %s", status)
	}
	if !notificationChannel.IsValid() {
		notificationChannel = ChannelEmail
	}

	return &User{
		id:                  id,
		email:               email,
		passwordHash:        passwordHash,
		role:                role,
		profile:             profile,
		notificationChannel: notificationChannel,
		status:              status,
		condominiumID:       condominiumID,
		version:             version,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

// SetID assigns the persistence identity once, right after the initial insert.
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) Profile() Profile {
	return u.profile
}

func (u *User) NotificationChannel() NotificationChannel {
	return u.notificationChannel
}

func (u *User) Status() UserStatus {
	return u.status
}

func (u *User) CondominiumID() *uint {
	return u.condominiumID
}

func (u *User) Version() int {
	return u.version
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) IsActive() bool {
	return u.status == StatusActive
}

// AssignCondominium closes the provisioning back-reference: the admin user
// is created before its condominium exists, then pointed at it.
func (u *User) AssignCondominium(condominiumID uint) error {
	if condominiumID == 0 {
		return fmt.Errorf("condominium ID cannot be zero")
	}
	u.condominiumID = &condominiumID
	u.touch()
	return nil
}

// ChangeEmail replaces the unique login email.
func (u *User) ChangeEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email address: %s", email)
	}
	u.email = email
	u.touch()
	return nil
}

// UpdateProfile overwrites the displayable identity fields.
func (u *User) UpdateProfile(profile Profile) error {
	if profile.FirstName == "" {
		return fmt.Errorf("first name is required")
	}
	u.profile = profile
	u.touch()
	return nil
}

// SetNotificationChannel changes the preferred delivery channel.
func (u *User) SetNotificationChannel(channel NotificationChannel) error {
	if !channel.IsValid() {
		return fmt.Errorf("invalid notification channel: %s", channel)
	}
	u.notificationChannel = channel
	u.touch()
	return nil
}

// Activate re-enables a blocked or inactive account. Idempotent.
func (u *User) Activate() {
	if u.status == StatusActive {
		return
	}
	u.status = StatusActive
	u.touch()
}

// Block locks the account out. Idempotent.
func (u *User) Block() {
	if u.status == StatusBlocked {
		return
	}
	u.status = StatusBlocked
	u.touch()
}

// Deactivate soft-disables the account without locking it. Idempotent.
func (u *User) Deactivate() {
	if u.status == StatusInactive {
		return
	}
	u.status = StatusInactive
	u.touch()
}

func (u *User) touch() {
	u.updatedAt = time.Now()
	u.version++
}

package user

import (
	"fmt"
	"strings"
	"time"

	vo "deskhive/internal/domain/user/valueobjects"
	"deskhive/internal/shared/authorization"
)

// User is the member aggregate. Email uniqueness is scoped to the owning
// organization, never global: the same address may exist in two organizations
// as distinct accounts.
type User struct {
	id             uint
	organizationID uint
	email          string
	passwordHash   string
	firstName      string
	lastName       string
	role           authorization.Role
	status         vo.Status
	createdAt      time.Time
	updatedAt      time.Time
}

// NewUser creates a member in the given role and status with an
// already-hashed password.
func NewUser(organizationID uint, email, passwordHash, firstName, lastName string, role authorization.Role, status vo.Status) (*User, error) {
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	email = NormalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if firstName == "" {
		return nil, fmt.Errorf("first name is required")
	}
	if lastName == "" {
		return nil, fmt.Errorf("last name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	now := time.Now()
	return &User{
		organizationID: organizationID,
		email:          email,
		passwordHash:   passwordHash,
		firstName:      firstName,
		lastName:       lastName,
		role:           role,
		status:         status,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructUser rebuilds a member from persistence.
func ReconstructUser(id, organizationID uint, email, passwordHash, firstName, lastName string, role authorization.Role, status vo.Status, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}

	return &User{
		id:             id,
		organizationID: organizationID,
		email:          NormalizeEmail(email),
		passwordHash:   passwordHash,
		firstName:      firstName,
		lastName:       lastName,
		role:           role,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

// NormalizeEmail lowercases and trims an address so the per-organization
// uniqueness check is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) ID() uint                 { return u.id }
func (u *User) OrganizationID() uint     { return u.organizationID }
func (u *User) Email() string            { return u.email }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) FirstName() string        { return u.firstName }
func (u *User) LastName() string         { return u.lastName }
func (u *User) Role() authorization.Role { return u.role }
func (u *User) Status() vo.Status        { return u.status }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }

func (u *User) FullName() string {
	return strings.TrimSpace(u.firstName + " " + u.lastName)
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

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

// VerifyPassword checks a plaintext password against the stored hash.
func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	return hasher.Verify(password, u.passwordHash)
}

// ChangePassword replaces the stored hash.
func (u *User) ChangePassword(newHash string) error {
	if newHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = newHash
	u.updatedAt = time.Now()
	return nil
}

// UpdateName changes the display name; empty fields keep their value.
func (u *User) UpdateName(firstName, lastName string) {
	if firstName != "" {
		u.firstName = firstName
	}
	if lastName != "" {
		u.lastName = lastName
	}
	u.updatedAt = time.Now()
}

// Approve moves a pending member to active.
func (u *User) Approve() error {
	if !u.status.IsPending() {
		return fmt.Errorf("only pending users can be approved")
	}
	u.status = vo.StatusActive
	u.updatedAt = time.Now()
	return nil
}

// ChangeRole switches the member's role.
func (u *User) ChangeRole(role authorization.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.updatedAt = time.Now()
	return nil
}

// ChangeStatus sets the lifecycle state directly (admin operation).
func (u *User) ChangeStatus(status vo.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	u.status = status
	u.updatedAt = time.Now()
	return nil
}

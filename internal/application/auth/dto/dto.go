package dto

import (
	"time"

	"deskhive/internal/domain/organization"
	"deskhive/internal/domain/user"
)

// TokenPair is the credential set handed to a client on successful
// authentication. RefreshToken is the raw value; it is never recoverable
// after this response.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserDTO struct {
	ID             uint      `json:"id"`
	OrganizationID uint      `json:"organization_id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Role           string    `json:"role"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type OrganizationDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func UserToDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:             u.ID(),
		OrganizationID: u.OrganizationID(),
		Email:          u.Email(),
		FirstName:      u.FirstName(),
		LastName:       u.LastName(),
		Role:           u.Role().String(),
		Status:         u.Status().String(),
		CreatedAt:      u.CreatedAt(),
	}
}

func OrganizationToDTO(org *organization.Organization) *OrganizationDTO {
	if org == nil {
		return nil
	}
	return &OrganizationDTO{
		ID:   org.ID(),
		Name: org.Name(),
		Slug: org.Slug(),
	}
}

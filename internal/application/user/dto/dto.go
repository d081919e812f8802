package dto

import (
	"time"

	"deskhive/internal/domain/user"
)

type MemberDTO struct {
	ID             uint      `json:"id"`
	OrganizationID uint      `json:"organization_id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Role           string    `json:"role"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func MemberToDTO(u *user.User) *MemberDTO {
	if u == nil {
		return nil
	}
	return &MemberDTO{
		ID:             u.ID(),
		OrganizationID: u.OrganizationID(),
		Email:          u.Email(),
		FirstName:      u.FirstName(),
		LastName:       u.LastName(),
		Role:           u.Role().String(),
		Status:         u.Status().String(),
		CreatedAt:      u.CreatedAt(),
		UpdatedAt:      u.UpdatedAt(),
	}
}

func MembersToDTO(users []*user.User) []*MemberDTO {
	result := make([]*MemberDTO, 0, len(users))
	for _, u := range users {
		result = append(result, MemberToDTO(u))
	}
	return result
}

// Package organization holds the tenant aggregate. Every other entity in the
// system is scoped to exactly one organization.
package organization

import (
	"fmt"
	"time"
)

type Organization struct {
	id        uint
	name      string
	slug      string
	createdAt time.Time
	updatedAt time.Time
}

func NewOrganization(name, slug string) (*Organization, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("organization name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("organization name exceeds maximum length of 100 characters")
	}
	if len(slug) == 0 {
		return nil, fmt.Errorf("organization slug is required")
	}

	now := time.Now()
	return &Organization{
		name:      name,
		slug:      slug,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructOrganization(id uint, name, slug string, createdAt, updatedAt time.Time) (*Organization, error) {
	if id == 0 {
		return nil, fmt.Errorf("organization ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("organization name is required")
	}
	if len(slug) == 0 {
		return nil, fmt.Errorf("organization slug is required")
	}

	return &Organization{
		id:        id,
		name:      name,
		slug:      slug,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (o *Organization) ID() uint             { return o.id }
func (o *Organization) Name() string         { return o.name }
func (o *Organization) Slug() string         { return o.slug }
func (o *Organization) CreatedAt() time.Time { return o.createdAt }
func (o *Organization) UpdatedAt() time.Time { return o.updatedAt }

func (o *Organization) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("organization ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("organization ID cannot be zero")
	}
	o.id = id
	return nil
}

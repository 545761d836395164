package entities

import (
	"time"
)

// Entity is the contract every node persisted by the generic repository implements.
type Entity interface {
	GetID() string
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
	IsActive() bool
}

// MinTime is the sentinel used for dates missing on stored nodes.
var MinTime = time.Time{}

// BaseEntity carries identity, audit timestamps and the soft-delete flag.
type BaseEntity struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Active    bool      `json:"active"`
}

func NewBaseEntity(id string, now time.Time) BaseEntity {
	now = now.UTC()
	return BaseEntity{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
		Active:    true,
	}
}

func (b BaseEntity) GetID() string { return b.ID }

func (b BaseEntity) GetCreatedAt() time.Time { return b.CreatedAt }

func (b BaseEntity) GetUpdatedAt() time.Time { return b.UpdatedAt }

func (b BaseEntity) IsActive() bool { return b.Active }

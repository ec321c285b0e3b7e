package domain

import (
	"time"

	"github.com/google/uuid"
)

// Note belongs to exactly one user. UserID is set at creation and never
// reassigned.
type Note struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Tag         string    `json:"tag"`
	UserID      uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Skill represents a single entry in the skills section, grouped by category
// and ordered within it.
type Skill struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex"`
	Category  string    `json:"category" db:"category" gorm:"type:text;not null"`
	Level     int       `json:"level" db:"level" gorm:"not null"`
	Icon      *string   `json:"icon,omitempty" db:"icon" gorm:"type:text"`
	Order     int       `json:"order" db:"sort_order" gorm:"column:sort_order;not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// DefaultSkillLevel is the mid-scale proficiency assigned when a skill is
// created without an explicit level.
const DefaultSkillLevel = 5

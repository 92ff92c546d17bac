package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Project represents a portfolio project with its presentation metadata.
// Content holds the long description followed by feature bullet lines, each
// prefixed with "- ".
type Project struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Slug        string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	Content     string    `json:"content" db:"content" gorm:"type:text;not null"`
	Tech        []string  `json:"tech" db:"tech" gorm:"type:text;serializer:json"`
	Image       string    `json:"image" db:"image" gorm:"type:text;not null"`
	Github      *string   `json:"github,omitempty" db:"github" gorm:"type:text"`
	Demo        *string   `json:"demo,omitempty" db:"demo" gorm:"type:text"`
	Published   bool      `json:"published" db:"published" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// DefaultProjectImage is used when a project is created without an image path.
const DefaultProjectImage = "/images/projects/default.jpg"

// Features extracts the feature bullet lines from Content, with the "- "
// prefix stripped.
func (p Project) Features() []string {
	features := []string{}
	for _, line := range strings.Split(p.Content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "-") {
			features = append(features, strings.TrimSpace(strings.TrimPrefix(trimmed, "-")))
		}
	}
	return features
}

// LongDescription returns Content with the feature bullet lines removed.
func (p Project) LongDescription() string {
	var lines []string
	for _, line := range strings.Split(p.Content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "-") {
			continue
		}
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// BuildContent assembles Content from a long description and feature lines.
func BuildContent(longDescription string, features []string) string {
	content := longDescription
	if len(features) > 0 {
		bullets := make([]string, len(features))
		for i, f := range features {
			bullets[i] = "- " + f
		}
		content += "\n\n" + strings.Join(bullets, "\n")
	}
	return content
}

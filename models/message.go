package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is a contact-form submission. Messages live in the document store,
// not the relational one, so there are no gorm tags here.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

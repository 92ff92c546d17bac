package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/khushprajapati/portfolio-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler    authHandler
	projectHandler projectHandler
	skillHandler   skillHandler
	contactHandler contactHandler
	messageHandler messageHandler
}

// ProjectStore is the slice of the relational store the project routes need.
// *database.ProjectRepo satisfies it; tests substitute fakes.
type ProjectStore interface {
	FindPublished() ([]*models.Project, error)
	FindByID(id uuid.UUID) (*models.Project, error)
	Add(project *models.Project) error
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

// SkillStore is the slice of the relational store the skill routes need.
type SkillStore interface {
	FindAll() ([]*models.Skill, error)
	FindByID(id uuid.UUID) (*models.Skill, error)
	NextOrder() (int, error)
	Add(skill *models.Skill) error
	Update(skill *models.Skill) error
	Delete(id uuid.UUID) error
}

// MessageStore is the document-store surface for contact messages.
type MessageStore interface {
	Add(ctx context.Context, message *models.Message) error
	FindAll(ctx context.Context) ([]*models.Message, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Message, error)
	MarkRead(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

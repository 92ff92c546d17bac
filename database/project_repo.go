package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/khushprajapati/portfolio-backend/errs"
	"github.com/khushprajapati/portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

func (r *ProjectRepo) guard() error {
	if r.db == nil {
		return errs.ErrDatabaseConnection
	}
	return nil
}

// FindPublished returns published projects, newest first.
func (r *ProjectRepo) FindPublished() ([]*models.Project, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}
	var projects []*models.Project
	err := r.db.Where("published = ?", true).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// FindAll returns all projects, newest first, regardless of published state.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}
	var projects []*models.Project
	err := r.db.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or (nil, nil) when no row matches.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	if err := r.guard(); err != nil {
		return err
	}
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	if err := r.guard(); err != nil {
		return err
	}
	return r.db.Save(project).Error
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	if err := r.guard(); err != nil {
		return err
	}
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}

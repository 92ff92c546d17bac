package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/khushprajapati/portfolio-backend/errs"
	"github.com/khushprajapati/portfolio-backend/models"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

func (r *SkillRepo) guard() error {
	if r.db == nil {
		return errs.ErrDatabaseConnection
	}
	return nil
}

// FindAll returns all skills ordered by category, then sort order, then name.
func (r *SkillRepo) FindAll() ([]*models.Skill, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}
	var skills []*models.Skill
	err := r.db.Order("category ASC, sort_order ASC, name ASC").Find(&skills).Error
	return skills, err
}

// FindByID returns a skill by its ID, or (nil, nil) when no row matches.
func (r *SkillRepo) FindByID(id uuid.UUID) (*models.Skill, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}
	var skill models.Skill
	err := r.db.First(&skill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// NextOrder returns the sort order to assign to a newly inserted skill.
func (r *SkillRepo) NextOrder() (int, error) {
	if err := r.guard(); err != nil {
		return 0, err
	}
	var maxOrder int
	err := r.db.Model(&models.Skill{}).Select("COALESCE(MAX(sort_order), 0)").Scan(&maxOrder).Error
	if err != nil {
		return 0, err
	}
	return maxOrder + 1, nil
}

// Add inserts a new skill into the database. The unique index on name makes
// duplicate inserts fail with the driver's constraint error.
func (r *SkillRepo) Add(skill *models.Skill) error {
	if err := r.guard(); err != nil {
		return err
	}
	return r.db.Create(skill).Error
}

// Update updates an existing skill in the database
func (r *SkillRepo) Update(skill *models.Skill) error {
	if err := r.guard(); err != nil {
		return err
	}
	return r.db.Save(skill).Error
}

// Delete removes a skill from the database by id
func (r *SkillRepo) Delete(id uuid.UUID) error {
	if err := r.guard(); err != nil {
		return err
	}
	return r.db.Delete(&models.Skill{}, "id = ?", id).Error
}

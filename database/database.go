package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/khushprajapati/portfolio-backend/models"
)

type Database struct {
	projectRepo *ProjectRepo
	skillRepo   *SkillRepo
}

// New initializes a new Database struct with each repository using a shared
// GORM database instance. A nil handle is tolerated: the relational store is
// allowed to be down at startup, and each repository reports the condition
// per call instead.
func New(db *gorm.DB) Database {
	return Database{
		projectRepo: NewProjectRepo(db),
		skillRepo:   NewSkillRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

// Open connects to the relational store. driver selects between postgres (the
// deployment default) and sqlite (development and tests).
func Open(driver, dsn string) (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		})
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		return nil, err
	}

	// Verify the connection actually works before handing it out
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, err
	}

	return db, nil
}

// AutoMigrate creates or updates the schema for the relational entities.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Project{}, &models.Skill{})
}

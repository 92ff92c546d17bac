package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/khushprajapati/portfolio-backend/models"
)

func strPtr(s string) *string { return &s }

// Seed inserts the starter catalog. Projects are keyed by slug and skills by
// name, so re-running against a populated database is a no-op.
func Seed(db *gorm.DB) error {
	projects := []models.Project{
		{
			Title:       "TravelVista",
			Slug:        "travelvista",
			Description: "A comprehensive travel booking platform",
			Content:     "Full-featured travel booking application with MERN stack...",
			Tech:        []string{"React.js", "Node.js", "Express.js", "MongoDB", "Tailwind CSS"},
			Image:       models.DefaultProjectImage,
			Github:      strPtr("https://github.com/khushprajapati/travelvista"),
			Demo:        strPtr("https://travelvista-demo.vercel.app"),
			Published:   true,
		},
		{
			Title:       "CareerHub",
			Slug:        "careerhub",
			Description: "Modern job portal connecting job seekers with employers",
			Content:     "Job portal with Next.js and PostgreSQL...",
			Tech:        []string{"Next.js", "PostgreSQL", "Prisma", "Tailwind CSS"},
			Image:       models.DefaultProjectImage,
			Github:      strPtr("https://github.com/khushprajapati/careerhub"),
			Demo:        strPtr("https://careerhub-demo.vercel.app"),
			Published:   true,
		},
	}

	for i := range projects {
		projects[i].ID = uuid.New()
		err := db.Where("slug = ?", projects[i].Slug).FirstOrCreate(&projects[i]).Error
		if err != nil {
			return err
		}
	}

	skills := []models.Skill{
		{Name: "React.js", Category: "Frontend", Level: 9, Order: 1},
		{Name: "Next.js", Category: "Frontend", Level: 8, Order: 2},
		{Name: "TypeScript", Category: "Languages", Level: 8, Order: 3},
		{Name: "Node.js", Category: "Backend", Level: 8, Order: 4},
		{Name: "Express.js", Category: "Backend", Level: 8, Order: 5},
		{Name: "MongoDB", Category: "Databases", Level: 7, Order: 6},
		{Name: "PostgreSQL", Category: "Databases", Level: 7, Order: 7},
		{Name: "Tailwind CSS", Category: "Frontend", Level: 9, Order: 8},
	}

	for i := range skills {
		skills[i].ID = uuid.New()
		err := db.Where("name = ?", skills[i].Name).FirstOrCreate(&skills[i]).Error
		if err != nil {
			return err
		}
	}

	return nil
}

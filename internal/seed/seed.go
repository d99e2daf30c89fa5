package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/lifeway/lms-backend/internal/app/models"
	appRepos "github.com/lifeway/lms-backend/internal/app/repositories"
)

// CreateDefaultData inserts the default admin account and a starter set of
// courses and gallery images when the tables are empty. Errors are collected
// and returned but callers treat them as non-fatal.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)
	galleryRepo := appRepos.NewGalleryRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (Admin/Courses/Gallery)...")
	var finalErr error

	// --- Default admin --- //
	exists, err := adminRepo.UsernameExists(ctx, "admin1")
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking default admin")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		admin := &appModels.Admin{
			Username: "admin1",
			Password: "admin123",
			Name:     "Head Office Admin",
		}
		if _, err := adminRepo.Create(ctx, admin); err != nil {
			lgr.Error().Err(err).Msg("Error creating default admin")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Str("username", admin.Username).Msg("Default admin created")
		}
	}

	// --- Starter courses --- //
	courseCount, err := courseRepo.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting courses")
		finalErr = errors.Join(finalErr, err)
	} else if courseCount == 0 {
		starterCourses := []*appModels.Course{
			{
				Name:        "DCA (Diploma in Computer Applications)",
				Duration:    "6 Months",
				Fee:         "3500",
				Category:    "Computer",
				Description: "Fundamentals of computers, MS Office and internet basics.",
				Eligibility: "10th Pass",
				Img:         "https://via.placeholder.com/300x200",
				IsActive:    true,
			},
			{
				Name:        "ADCA (Advanced Diploma in Computer Applications)",
				Duration:    "12 Months",
				Fee:         "6000",
				Category:    "Computer",
				Description: "Advanced office tools, Tally and web design basics.",
				Eligibility: "12th Pass",
				Img:         "https://via.placeholder.com/300x200",
				IsActive:    true,
			},
			{
				Name:        "Certificate in Typing (Hindi/English)",
				Duration:    "3 Months",
				Fee:         "1500",
				Category:    "Typing",
				Description: "Touch typing practice with speed building.",
				Eligibility: "10th Pass",
				Img:         "https://via.placeholder.com/300x200",
				IsActive:    true,
			},
		}
		for _, course := range starterCourses {
			if _, err := courseRepo.Create(ctx, course); err != nil {
				lgr.Error().Err(err).Str("course", course.Name).Msg("Error creating starter course")
				finalErr = errors.Join(finalErr, err)
			}
		}
		if finalErr == nil {
			lgr.Info().Int("count", len(starterCourses)).Msg("Starter courses created")
		}
	}

	// --- Gallery --- //
	galleryCount, err := galleryRepo.CountAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting gallery images")
		finalErr = errors.Join(finalErr, err)
	} else if galleryCount == 0 {
		starterImages := []*appModels.GalleryImage{
			{Title: "Campus Front Gate", Img: "https://via.placeholder.com/600x400?text=Campus", IsActive: true},
			{Title: "Computer Lab", Img: "https://via.placeholder.com/600x400?text=Lab", IsActive: true},
			{Title: "Annual Function", Img: "https://via.placeholder.com/600x400?text=Function", IsActive: true},
		}
		for _, image := range starterImages {
			if _, err := galleryRepo.Create(ctx, image); err != nil {
				lgr.Error().Err(err).Str("title", image.Title).Msg("Error creating gallery image")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete.")
	}
	return finalErr
}

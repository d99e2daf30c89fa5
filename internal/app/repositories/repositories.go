package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AdminRepository      *AdminRepository
	CenterRepository     *CenterRepository
	StudentRepository    *StudentRepository
	CourseRepository     *CourseRepository
	SuggestionRepository *SuggestionRepository
	GalleryRepository    *GalleryRepository
	NoticeRepository     *NoticeRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminRepository:      NewAdminRepository(db),
		CenterRepository:     NewCenterRepository(db),
		StudentRepository:    NewStudentRepository(db),
		CourseRepository:     NewCourseRepository(db),
		SuggestionRepository: NewSuggestionRepository(db),
		GalleryRepository:    NewGalleryRepository(db),
		NoticeRepository:     NewNoticeRepository(db),
	}
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lifeway/lms-backend/internal/app/models"
	"github.com/lifeway/lms-backend/internal/app/models/dto"
	"github.com/lifeway/lms-backend/internal/app/repositories"
	"github.com/lifeway/lms-backend/internal/pkg/apperrors"
)

// AuthService defines the interface for role-based authentication
type AuthService interface {
	// Login resolves the credentials against the table named by the role
	// and returns the role-shaped profile. No session or token is issued.
	Login(ctx context.Context, role models.Role, username, password string) (interface{}, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	adminRepo   *repositories.AdminRepository
	centerRepo  *repositories.CenterRepository
	studentRepo *repositories.StudentRepository
	logger      zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	adminRepo *repositories.AdminRepository,
	centerRepo *repositories.CenterRepository,
	studentRepo *repositories.StudentRepository,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		adminRepo:   adminRepo,
		centerRepo:  centerRepo,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// Login dispatches over the closed role set. Credentials are compared
// exactly (case-sensitive, plain text) after trimming whitespace.
func (s *authServiceImpl) Login(ctx context.Context, role models.Role, username, password string) (interface{}, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	s.logger.Info().Str("role", string(role)).Str("username", username).Msg("Login attempt")

	switch role {
	case models.RoleAdmin:
		admin, err := s.adminRepo.GetByCredentials(ctx, username, password)
		if err != nil {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid Admin Credentials!")
		}
		return dto.NewAdminProfile(admin), nil

	case models.RoleCenter:
		center, err := s.centerRepo.GetByCredentials(ctx, username, password)
		if err != nil {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid Center Code or Password!")
		}
		if center.IsBlocked {
			return nil, apperrors.NewCustomError(apperrors.ErrCenterBlocked,
				"This center has been blocked by Admin. Contact HQ.")
		}
		return dto.NewCenterProfile(center), nil

	case models.RoleStudent:
		student, err := s.studentRepo.GetByCredentials(ctx, username, password)
		if err != nil {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid Roll Number or Password!")
		}
		return dto.NewStudentProfile(student), nil

	default:
		return nil, apperrors.NewCustomError(apperrors.ErrUnknownRole,
			fmt.Sprintf("Unknown role: %q. Use: student, center, or admin.", role))
	}
}

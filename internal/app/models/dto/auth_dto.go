package dto

import "github.com/lifeway/lms-backend/internal/app/models"

// LoginRequest represents login credentials for any of the three roles
type LoginRequest struct {
	Role     models.Role `json:"role" binding:"required"`
	Username string      `json:"username" binding:"required"`
	Password string      `json:"password" binding:"required"`
}

// AdminProfile is the profile returned for a successful admin login
type AdminProfile struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// CenterProfile is the profile returned for a successful center login
type CenterProfile struct {
	ID        int64  `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Director  string `json:"director"`
	Location  string `json:"location"`
	State     string `json:"state"`
	Wallet    int64  `json:"wallet"`
	ValidUpto string `json:"valid_upto"`
	Role      string `json:"role"`
}

// StudentProfile is the profile returned for a successful student login
type StudentProfile struct {
	ID         int64  `json:"id"`
	Roll       string `json:"roll"`
	Name       string `json:"name"`
	Father     string `json:"father"`
	DOB        string `json:"dob"`
	Course     string `json:"course"`
	Center     string `json:"center"`
	Img        string `json:"img"`
	FeesTotal  int64  `json:"feesTotal"`
	FeesPaid   int64  `json:"feesPaid"`
	Attendance int    `json:"attendance"`
	Mobile     string `json:"mobile"`
	Status     string `json:"status"`
	Role       string `json:"role"`
}

// LoginResponse wraps the role-shaped profile. No token is issued: the
// client holds the profile and re-sends identifying fields on later calls.
type LoginResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    interface{} `json:"user"`
}

// NewAdminProfile maps an admin row to its login profile
func NewAdminProfile(a *models.Admin) AdminProfile {
	return AdminProfile{
		ID:       a.ID,
		Name:     a.Name,
		Username: a.Username,
		Role:     string(models.RoleAdmin),
	}
}

// NewCenterProfile maps a center row to its login profile
func NewCenterProfile(c *models.Center) CenterProfile {
	return CenterProfile{
		ID:        c.ID,
		Code:      c.Code,
		Name:      c.Name,
		Director:  c.Director,
		Location:  c.Location,
		State:     c.State,
		Wallet:    c.Wallet,
		ValidUpto: c.ValidUpto,
		Role:      string(models.RoleCenter),
	}
}

// NewStudentProfile maps a student row to its login profile
func NewStudentProfile(s *models.Student) StudentProfile {
	return StudentProfile{
		ID:         s.ID,
		Roll:       s.Roll,
		Name:       s.Name,
		Father:     s.Father,
		DOB:        s.DOB,
		Course:     s.Course,
		Center:     s.Center,
		Img:        s.Img,
		FeesTotal:  s.FeesTotal,
		FeesPaid:   s.FeesPaid,
		Attendance: s.Attendance,
		Mobile:     s.Mobile,
		Status:     s.Status,
		Role:       string(models.RoleStudent),
	}
}

package dto

import "github.com/lifeway/lms-backend/internal/app/models"

// CreateCenterRequest registers a new training center. The center code
// and username are generated server-side from the state.
type CreateCenterRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
	State    string `json:"state" binding:"required"`
	Director string `json:"director"`
	Location string `json:"location"`
}

// CenterCreatedResponse returns the generated code along with the row
type CenterCreatedResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Center  *models.Center `json:"center"`
}

// CenterListResponse is the admin list-all payload
type CenterListResponse struct {
	Success bool             `json:"success"`
	Centers []*models.Center `json:"centers"`
}

// RosterStats carries the derived fee figures for a center's roster
type RosterStats struct {
	TotalStudents  int   `json:"totalStudents"`
	ActiveStudents int   `json:"activeStudents"`
	TotalCollected int64 `json:"totalCollected"`
	TotalDues      int64 `json:"totalDues"`
}

// RosterStudent is the student shape embedded in the center dashboard payload
type RosterStudent struct {
	ID         int64  `json:"id"`
	Roll       string `json:"roll"`
	Name       string `json:"name"`
	Father     string `json:"father"`
	DOB        string `json:"dob"`
	Course     string `json:"course"`
	Center     string `json:"center"`
	FeesPaid   int64  `json:"feesPaid"`
	FeesTotal  int64  `json:"feesTotal"`
	Attendance int    `json:"attendance"`
	Status     string `json:"status"`
	Img        string `json:"img"`
}

// CenterDataResponse is the center dashboard payload: the center row,
// its roster (newest first) and the derived fee stats.
type CenterDataResponse struct {
	Success  bool            `json:"success"`
	Center   *models.Center  `json:"center"`
	Students []RosterStudent `json:"students"`
	Stats    RosterStats     `json:"stats"`
}

// BlockCenterRequest toggles the blocked flag. A pointer keeps an
// explicit false distinguishable from a missing field.
type BlockCenterRequest struct {
	Blocked *bool `json:"blocked" binding:"required"`
}

// VerifiedCenter is the public verification shape
type VerifiedCenter struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	State     string `json:"state"`
	Director  string `json:"director"`
	IsBlocked bool   `json:"isBlocked"`
}

// VerifyCenterResponse is the public center lookup payload
type VerifyCenterResponse struct {
	Success bool           `json:"success"`
	Center  VerifiedCenter `json:"center"`
}

// NewRosterStudent maps a student row to the dashboard shape
func NewRosterStudent(s *models.Student) RosterStudent {
	return RosterStudent{
		ID:         s.ID,
		Roll:       s.Roll,
		Name:       s.Name,
		Father:     s.Father,
		DOB:        s.DOB,
		Course:     s.Course,
		Center:     s.Center,
		FeesPaid:   s.FeesPaid,
		FeesTotal:  s.FeesTotal,
		Attendance: s.Attendance,
		Status:     s.Status,
		Img:        s.Img,
	}
}

package models

import "time"

// Student statuses as stored in the students table.
const (
	StudentStatusActive    = "Active"
	StudentStatusCompleted = "Completed"
)

// Student represents an enrolled student. The roll number is stored
// uppercased, doubles as the login username, and is unique.
// Center is the owning center's code, kept as a free string: no foreign
// key is enforced anywhere.
type Student struct {
	ID         int64     `json:"id"`
	Roll       string    `json:"roll"`
	Username   string    `json:"username"`
	Password   string    `json:"-"`
	Name       string    `json:"name"`
	Father     string    `json:"father"`
	DOB        string    `json:"dob"`
	Course     string    `json:"course"`
	Center     string    `json:"center"`
	FeesTotal  int64     `json:"fees_total"`
	FeesPaid   int64     `json:"fees_paid"`
	Attendance int       `json:"attendance"`
	Mobile     string    `json:"mobile"`
	Img        string    `json:"img"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

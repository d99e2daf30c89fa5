package services

import (
	"testing"

	"github.com/lifeway/lms-backend/internal/app/models/dto"
)

func TestNewCourseFromRequestDefaults(t *testing.T) {
	course := NewCourseFromRequest(dto.CreateCourseRequest{Name: "  DCA  "})

	if course.Name != "DCA" {
		t.Errorf("Name = %q, want trimmed", course.Name)
	}
	if course.Fee != "0" {
		t.Errorf("Fee = %q, want \"0\"", course.Fee)
	}
	if course.Category != "Computer" {
		t.Errorf("Category = %q", course.Category)
	}
	if course.Description != "Join now to upgrade your skills." {
		t.Errorf("Description = %q", course.Description)
	}
	if course.Eligibility != "10th Pass" {
		t.Errorf("Eligibility = %q", course.Eligibility)
	}
	if course.Img == "" {
		t.Error("Img is empty, want placeholder URL")
	}
}

func TestNewCourseFromRequestKeepsProvidedValues(t *testing.T) {
	course := NewCourseFromRequest(dto.CreateCourseRequest{
		Name:        "Spoken English",
		Duration:    "3 Months",
		Fee:         "2500",
		Category:    "Language",
		Description: "Fluency for interviews",
		Eligibility: "8th Pass",
		Img:         "https://example.com/english.png",
	})

	if course.Category != "Language" || course.Eligibility != "8th Pass" {
		t.Errorf("course = %+v, provided values were overwritten", course)
	}
	if course.Fee != "2500" || course.Img != "https://example.com/english.png" {
		t.Errorf("course = %+v, provided values were overwritten", course)
	}
}

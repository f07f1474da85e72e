package dto

import (
	"time"

	"github.com/edulabs/classauth/internal/course/domain"
)

// CourseResponse is the public view of a course.
type CourseResponse struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCourseResponse builds a CourseResponse from the domain model.
func NewCourseResponse(course *domain.Course) CourseResponse {
	return CourseResponse{
		ID:        course.ID,
		Code:      course.Code,
		Name:      course.Name,
		CreatedAt: course.CreatedAt,
		UpdatedAt: course.UpdatedAt,
	}
}

// SectionResponse is the public view of a section.
type SectionResponse struct {
	ID        int64     `json:"id"`
	CourseID  int64     `json:"course_id"`
	Title     string    `json:"title"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSectionResponse builds a SectionResponse from the domain model.
func NewSectionResponse(section *domain.Section) SectionResponse {
	return SectionResponse{
		ID:        section.ID,
		CourseID:  section.CourseID,
		Title:     section.Title,
		Position:  section.Position,
		CreatedAt: section.CreatedAt,
		UpdatedAt: section.UpdatedAt,
	}
}

// ActivityResponse is the public view of an activity.
type ActivityResponse struct {
	ID        int64     `json:"id"`
	CourseID  int64     `json:"course_id"`
	SectionID int64     `json:"section_id"`
	Title     string    `json:"title"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewActivityResponse builds an ActivityResponse from the domain model.
func NewActivityResponse(activity *domain.Activity) ActivityResponse {
	return ActivityResponse{
		ID:        activity.ID,
		CourseID:  activity.CourseID,
		SectionID: activity.SectionID,
		Title:     activity.Title,
		Kind:      activity.Kind,
		CreatedAt: activity.CreatedAt,
		UpdatedAt: activity.UpdatedAt,
	}
}

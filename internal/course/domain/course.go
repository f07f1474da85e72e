// Package domain defines course content models: courses, sections, and
// activities, plus the enrollment relation that gates access to them.
//
// The content model here is deliberately thin. This service fronts the
// course store for authorization purposes; grading, completion tracking, and
// rendering belong to other systems.
package domain

import "time"

// Course is a single course offering.
type Course struct {
	ID        int64
	Code      string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Section is an ordered content block inside a course.
type Section struct {
	ID        int64
	CourseID  int64
	Title     string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Activity is a unit of course content (page, quiz, assignment) inside a section.
type Activity struct {
	ID        int64
	CourseID  int64
	SectionID int64
	Title     string
	Kind      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Enrollment links a user to a course. Its mere existence grants access;
// the privilege tier comes from the user's role, not the enrollment.
type Enrollment struct {
	UserID    int64
	CourseID  int64
	CreatedAt time.Time
}

// CreateSectionInput contains the parameters for creating a section.
type CreateSectionInput struct {
	Title    string
	Position int
}

// UpdateSectionInput contains the mutable fields of a section.
type UpdateSectionInput struct {
	Title    string
	Position int
}

// CreateActivityInput contains the parameters for creating an activity.
type CreateActivityInput struct {
	SectionID int64
	Title     string
	Kind      string
}

// UpdateActivityInput contains the mutable fields of an activity.
type UpdateActivityInput struct {
	Title string
	Kind  string
}

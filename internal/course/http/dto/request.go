// Package dto defines request and response payloads for the course endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/edulabs/classauth/internal/course/domain"

	customValidation "github.com/edulabs/classauth/internal/validation"
)

// activityKinds is the closed set of content kinds an activity can have.
var activityKinds = []interface{}{"page", "quiz", "assignment"}

// CreateSectionRequest is the payload for POST /v1/courses/:course_id/sections.
type CreateSectionRequest struct {
	Title    string `json:"title"`
	Position int    `json:"position"`
}

// Validate checks the create section request fields.
func (r CreateSectionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.Position, validation.Min(0)),
	)
}

// ToInput converts the request to the use case input.
func (r CreateSectionRequest) ToInput() domain.CreateSectionInput {
	return domain.CreateSectionInput{
		Title:    r.Title,
		Position: r.Position,
	}
}

// UpdateSectionRequest is the payload for PUT /v1/courses/:course_id/sections/:section_id.
type UpdateSectionRequest struct {
	Title    string `json:"title"`
	Position int    `json:"position"`
}

// Validate checks the update section request fields.
func (r UpdateSectionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.Position, validation.Min(0)),
	)
}

// ToInput converts the request to the use case input.
func (r UpdateSectionRequest) ToInput() domain.UpdateSectionInput {
	return domain.UpdateSectionInput{
		Title:    r.Title,
		Position: r.Position,
	}
}

// CreateActivityRequest is the payload for POST /v1/courses/:course_id/activities.
type CreateActivityRequest struct {
	SectionID int64  `json:"section_id"`
	Title     string `json:"title"`
	Kind      string `json:"kind"`
}

// Validate checks the create activity request fields.
func (r CreateActivityRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SectionID, validation.Required, customValidation.PositiveID{}),
		validation.Field(&r.Title, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.Kind, validation.Required, validation.In(activityKinds...)),
	)
}

// ToInput converts the request to the use case input.
func (r CreateActivityRequest) ToInput() domain.CreateActivityInput {
	return domain.CreateActivityInput{
		SectionID: r.SectionID,
		Title:     r.Title,
		Kind:      r.Kind,
	}
}

// UpdateActivityRequest is the payload for PUT /v1/courses/:course_id/activities/:activity_id.
type UpdateActivityRequest struct {
	Title string `json:"title"`
	Kind  string `json:"kind"`
}

// Validate checks the update activity request fields.
func (r UpdateActivityRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.Kind, validation.Required, validation.In(activityKinds...)),
	)
}

// ToInput converts the request to the use case input.
func (r UpdateActivityRequest) ToInput() domain.UpdateActivityInput {
	return domain.UpdateActivityInput{
		Title: r.Title,
		Kind:  r.Kind,
	}
}

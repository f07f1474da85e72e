// Package http provides HTTP handlers for course content operations.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authDomain "github.com/edulabs/classauth/internal/auth/domain"
	authHTTP "github.com/edulabs/classauth/internal/auth/http"
	"github.com/edulabs/classauth/internal/course/http/dto"
	courseUseCase "github.com/edulabs/classauth/internal/course/usecase"
	"github.com/edulabs/classauth/internal/httputil"

	apperrors "github.com/edulabs/classauth/internal/errors"
	customValidation "github.com/edulabs/classauth/internal/validation"
)

// CourseHandler handles HTTP requests for course content operations.
type CourseHandler struct {
	courseUseCase courseUseCase.CourseUseCase
	logger        *slog.Logger
}

// NewCourseHandler creates a new course handler with required dependencies.
func NewCourseHandler(useCase courseUseCase.CourseUseCase, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{
		courseUseCase: useCase,
		logger:        logger,
	}
}

// identity extracts the authenticated identity or fails closed.
func (h *CourseHandler) identity(c *gin.Context) (authDomain.Identity, bool) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleError(c, apperrors.ErrMissingToken, h.logger)
	}
	return identity, ok
}

// pathID parses a positive numeric path parameter. A non-numeric or
// non-positive value is a malformed request, not a missing resource.
func (h *CourseHandler) pathID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		httputil.HandleError(c,
			apperrors.Wrap(apperrors.ErrInvalidInput, name+" must be a positive integer"),
			h.logger)
		return 0, false
	}
	return id, true
}

// GetCourseHandler retrieves a course.
// GET /v1/courses/:course_id - requires authentication and read capability.
func (h *CourseHandler) GetCourseHandler(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}
	courseID, ok := h.pathID(c, "course_id")
	if !ok {
		return
	}

	course, err := h.courseUseCase.GetCourse(c.Request.Context(), identity, courseID)
	if err != nil {
		httputil.HandleError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewCourseResponse(course))
}

// CreateSectionHandler creates a section in a course.
// POST /v1/courses/:course_id/sections - requires write capability.
func (h *CourseHandler) CreateSectionHandler(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}
	courseID, ok := h.pathID(c, "course_id")
	if !ok {
		return
	}

	var req dto.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationError(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationError(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	section, err := h.courseUseCase.CreateSection(c.Request.Context(), identity, courseID, req.ToInput())
	if err != nil {
		httputil.HandleError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSectionResponse(section))
}

// GetSectionHandler retrieves a section.
// GET /v1/courses/:course_id/sections/:section_id - requires read capability.
func (h *CourseHandler) GetSectionHandler(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}
	courseID, ok := h.pathID(c, "course_id")
	if !ok {
		return
	}
	sectionID, ok := h.pathID(c, "section_id")
	if !ok {
		return
	}

	section, err := h.courseUseCase.GetSection(c.Request.Context(), identity, courseID, sectionID)
	if err != nil {
		httputil.HandleError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewSectionResponse(section))
}

// UpdateSectionHandler updates a section.
// PUT /v1/courses/:course_id/sections/:section_id - requires write capability.
func (h *CourseHandler) UpdateSectionHandler(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}
	courseID, ok := h.pathID(c, "course_id")
	if !ok {
		return
	}
	sectionID, ok := h.pathID(c, "section_id")
	if !ok {
		return
	}

	var req dto.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationError(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationError(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	section, err := h.courseUseCase.UpdateSection(
		c.Request.Context(), identity, courseID, sectionID, req.ToInput())
	if err != nil {
		httputil.HandleError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewSectionResponse(section))
}

// DeleteSectionHandler removes a section.
// DELETE /v1/courses/:course_id/sections/:section_id - requires delete capability.
func (h *CourseHandler) DeleteSectionHandler(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}
	courseID, ok := h.pathID(c, "course_id")
	if !ok {
		return
	}
	sectionID, ok := h.pathID(c, "section_id")
	if !ok {
		return
	}

	if err := h.courseUseCase.DeleteSection(c.Request.Context(), identity, courseID, sectionID); err != nil {
		httputil.HandleError(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateActivityHandler creates an activity in a course.
// POST /v1/courses/:course_id/activities - requires write capability.
func (h *CourseHandler) CreateActivityHandler(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}
	courseID, ok := h.pathID(c, "course_id")
	if !ok {
		return
	}

	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationError(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationError(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	activity, err := h.courseUseCase.CreateActivity(c.Request.Context(), identity, courseID, req.ToInput())
	if err != nil {
		httputil.HandleError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.NewActivityResponse(activity))
}

// GetActivityHandler retrieves an activity.
// GET /v1/courses/:course_id/activities/:activity_id - requires read capability.
func (h *CourseHandler) GetActivityHandler(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}
	courseID, ok := h.pathID(c, "course_id")
	if !ok {
		return
	}
	activityID, ok := h.pathID(c, "activity_id")
	if !ok {
		return
	}

	activity, err := h.courseUseCase.GetActivity(c.Request.Context(), identity, courseID, activityID)
	if err != nil {
		httputil.HandleError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewActivityResponse(activity))
}

// UpdateActivityHandler updates an activity.
// PUT /v1/courses/:course_id/activities/:activity_id - requires write capability.
func (h *CourseHandler) UpdateActivityHandler(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}
	courseID, ok := h.pathID(c, "course_id")
	if !ok {
		return
	}
	activityID, ok := h.pathID(c, "activity_id")
	if !ok {
		return
	}

	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationError(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationError(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	activity, err := h.courseUseCase.UpdateActivity(
		c.Request.Context(), identity, courseID, activityID, req.ToInput())
	if err != nil {
		httputil.HandleError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewActivityResponse(activity))
}

// DeleteActivityHandler removes an activity.
// DELETE /v1/courses/:course_id/activities/:activity_id - requires delete capability.
func (h *CourseHandler) DeleteActivityHandler(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}
	courseID, ok := h.pathID(c, "course_id")
	if !ok {
		return
	}
	activityID, ok := h.pathID(c, "activity_id")
	if !ok {
		return
	}

	if err := h.courseUseCase.DeleteActivity(c.Request.Context(), identity, courseID, activityID); err != nil {
		httputil.HandleError(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"jobportal/internal/errors"
	"jobportal/internal/service"
)

// JobHandler handles job posting endpoints.
type JobHandler struct {
	jobService service.JobService
}

// NewJobHandler creates a new job handler.
func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// CreateJobRequest represents a create request. Title, company and
// location are required; the rest is optional.
type CreateJobRequest struct {
	Title       string  `json:"title" validate:"required"`
	Company     string  `json:"company" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	Description string  `json:"description"`
	Link        string  `json:"link"`
	Contact     *string `json:"contact"`
}

// UpdateJobRequest represents a partial update. Absent fields keep
// their stored value.
type UpdateJobRequest struct {
	Title       *string `json:"title"`
	Company     *string `json:"company"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
	Contact     *string `json:"contact"`
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// List godoc
// @Summary List job postings, paginated
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page number" default(1)
// @Param limit query int false "page size" default(10)
// @Success 200 {object} model.JobPage
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.jobService.List(c.Request().Context(), page, limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, result)
}

// Create godoc
// @Summary Create a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateJobRequest true "Job fields"
// @Success 201 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrMissingRequiredFields.Error())
	}

	job, err := h.jobService.Create(c.Request().Context(), service.CreateJobInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		Link:        req.Link,
		Contact:     req.Contact,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusCreated, job)
}

// Update godoc
// @Summary Update a job posting (merge semantics)
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body UpdateJobRequest true "Fields to change"
// @Success 200 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	job, err := h.jobService.Update(c.Request().Context(), id, service.UpdateJobInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		Link:        req.Link,
		Contact:     req.Contact,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, job)
}

// Delete godoc
// @Summary Delete a job posting
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.jobService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Job deleted successfully"})
}

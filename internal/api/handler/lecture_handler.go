package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lecturehall/lecture-api/internal/api/metrics"
	"github.com/lecturehall/lecture-api/internal/core/domain"
	"github.com/lecturehall/lecture-api/internal/core/ports"
)

// videoFormField is the multipart field carrying the lecture video.
const videoFormField = "lecture"

// LectureHandler handles HTTP requests for lecture operations.
type LectureHandler struct {
	service ports.LectureService
	audit   ports.AuditSink
}

func NewLectureHandler(service ports.LectureService, audit ports.AuditSink) *LectureHandler {
	return &LectureHandler{service: service, audit: audit}
}

// List returns a page of lectures.
//
// @Summary      List lectures
// @Tags         lecture
// @Produce      json
// @Security     ApiKeyAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 20, max 100)"
// @Success      200    {object}  listLecturesResponse
// @Failure      401    {object}  messageResponse
// @Router       /lecture [get]
func (h *LectureHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	list, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	totalPages := int(list.Total) / list.Limit
	if int(list.Total)%list.Limit != 0 {
		totalPages++
	}

	return c.JSON(http.StatusOK, listLecturesResponse{
		Data: list.Lectures,
		Pagination: paginationResponse{
			Total:      list.Total,
			Page:       list.Page,
			Limit:      list.Limit,
			TotalPages: totalPages,
		},
	})
}

// Get returns a single lecture by ID.
//
// @Summary      Get lecture details
// @Tags         lecture
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      string  true  "Lecture ID"
// @Success      200  {object}  lectureResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /lecture/{id} [get]
func (h *LectureHandler) Get(c echo.Context) error {
	lecture, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, lectureResponse{
		Message: "Get lecture info successfully",
		Data:    lecture,
	})
}

// Create registers a lecture and uploads its video to the object store.
// Metadata and the video travel together in one multipart form.
//
// @Summary      Create a lecture with video upload
// @Tags         lecture
// @Accept       multipart/form-data
// @Produce      json
// @Security     ApiKeyAuth
// @Param        title        formData  string  true   "Lecture title"
// @Param        description  formData  string  false  "Lecture description"
// @Param        author       formData  string  false  "Lecture author"
// @Param        duration     formData  int     false  "Duration in minutes"
// @Param        lecture      formData  file    true   "Video file"
// @Success      201  {object}  lectureResponse
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Router       /lecture [post]
func (h *LectureHandler) Create(c echo.Context) error {
	var req createLectureRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	fileHeader, err := c.FormFile(videoFormField)
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "No video file uploaded"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = "video/mp4"
	}

	start := time.Now()
	lecture, err := h.service.Create(c.Request().Context(), ports.CreateLectureInput{
		Title:       req.Title,
		Description: req.Description,
		Author:      req.Author,
		Duration:    req.Duration,
		Video:       file,
		VideoSize:   fileHeader.Size,
		ContentType: contentType,
	})
	if err != nil {
		metrics.VideoUploadDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return err
	}
	metrics.VideoUploadDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())
	metrics.LecturesCreatedTotal.Inc()

	h.record(c, domain.ActionCreate, lecture.ID)

	return c.JSON(http.StatusCreated, lectureResponse{
		Message: "Video uploaded successfully",
		Data:    lecture,
	})
}

// Update changes lecture metadata. The video object is left untouched.
//
// @Summary      Update a lecture
// @Tags         lecture
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id    path      string                true  "Lecture ID"
// @Param        body  body      updateLectureRequest  true  "Fields to update"
// @Success      200   {object}  lectureResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /lecture/{id} [patch]
func (h *LectureHandler) Update(c echo.Context) error {
	var req updateLectureRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	id := c.Param("id")
	lecture, err := h.service.Update(c.Request().Context(), id, ports.UpdateLectureInput{
		Title:       req.Title,
		Description: req.Description,
		Author:      req.Author,
		Duration:    req.Duration,
	})
	if err != nil {
		return err
	}

	h.record(c, domain.ActionUpdate, id)

	return c.JSON(http.StatusOK, lectureResponse{
		Message: "Lecture updated successfully",
		Data:    lecture,
	})
}

// Delete removes a lecture and its stored video.
//
// @Summary      Delete a lecture
// @Tags         lecture
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      string  true  "Lecture ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /lecture/{id} [delete]
func (h *LectureHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	h.record(c, domain.ActionDelete, id)

	return c.JSON(http.StatusOK, messageResponse{Message: "Lecture deleted successfully"})
}

func (h *LectureHandler) record(c echo.Context, action domain.Action, lectureID string) {
	if h.audit == nil {
		return
	}
	_, email, _, err := ctxIdentity(c)
	if err != nil {
		return
	}
	h.audit.Enqueue(domain.AuditEvent{
		Actor:      email,
		Action:     action,
		Resource:   domain.ResourceLecture,
		ResourceID: lectureID,
		At:         time.Now().UTC(),
	})
	metrics.AuditEventsTotal.WithLabelValues(string(action), domain.ResourceLecture).Inc()
}

package handler

import "github.com/lecturehall/lecture-api/internal/core/domain"

// Lecture metadata arrives as multipart form fields on create (alongside the
// video file) and as JSON on update.

type createLectureRequest struct {
	Title       string `form:"title"       json:"title"       validate:"required,min=5,max=200"`
	Description string `form:"description" json:"description" validate:"omitempty,max=500"`
	Author      string `form:"author"      json:"author"      validate:"omitempty,max=100"`
	Duration    int    `form:"duration"    json:"duration"    validate:"omitempty,gte=0"`
}

type updateLectureRequest struct {
	Title       string `json:"title"       validate:"omitempty,min=5,max=200"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Author      string `json:"author"      validate:"omitempty,max=100"`
	Duration    int    `json:"duration"    validate:"omitempty,gte=0"`
}

type lectureResponse struct {
	Message string          `json:"message"`
	Data    *domain.Lecture `json:"data"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listLecturesResponse struct {
	Data       []domain.Lecture   `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

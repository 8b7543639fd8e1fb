package ports

import (
	"context"
	"io"
	"time"

	"github.com/lecturehall/lecture-api/internal/core/domain"
)

// CreateLectureInput carries lecture metadata plus the video payload. Video
// bytes are streamed straight to the blob store, never buffered in full.
type CreateLectureInput struct {
	Title       string
	Description string
	Author      string
	Duration    int
	Date        time.Time

	Video       io.Reader
	VideoSize   int64
	ContentType string
}

// UpdateLectureInput carries the mutable metadata fields. Empty fields are
// left unchanged; the video object is not replaced on update.
type UpdateLectureInput struct {
	Title       string
	Description string
	Author      string
	Duration    int
}

// LectureList is a page of lectures plus the total count for pagination.
type LectureList struct {
	Lectures []domain.Lecture
	Total    int64
	Page     int
	Limit    int
}

type LectureService interface {
	Get(ctx context.Context, id string) (*domain.Lecture, error)
	List(ctx context.Context, page, limit int) (*LectureList, error)
	Create(ctx context.Context, in CreateLectureInput) (*domain.Lecture, error)
	Update(ctx context.Context, id string, in UpdateLectureInput) (*domain.Lecture, error)
	Delete(ctx context.Context, id string) error
}

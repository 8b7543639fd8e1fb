package ports

import (
	"context"

	"github.com/lecturehall/lecture-api/internal/core/domain"
)

// LectureRepository defines the persistence boundary for lecture records.
type LectureRepository interface {
	Insert(ctx context.Context, lecture *domain.Lecture) (*domain.Lecture, error)
	FindByID(ctx context.Context, id string) (*domain.Lecture, error)
	FindAll(ctx context.Context, page, limit int) ([]domain.Lecture, int64, error)
	Update(ctx context.Context, lecture *domain.Lecture) (*domain.Lecture, error)
	Delete(ctx context.Context, id string) (*domain.Lecture, error)
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lecturehall/lecture-api/internal/core/domain"
	"github.com/lecturehall/lecture-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// LectureCache is the optional read-through cache in front of lecture
// lookups. A nil cache disables caching entirely.
type LectureCache interface {
	Get(ctx context.Context, id string) (*domain.Lecture, bool)
	Set(ctx context.Context, lecture *domain.Lecture)
	Invalidate(ctx context.Context, id string)
}

// LectureService orchestrates lecture records and their video objects.
type LectureService struct {
	repo   ports.LectureRepository
	blobs  ports.BlobStore
	cache  LectureCache
	prefix string
	log    zerolog.Logger
}

func NewLectureService(repo ports.LectureRepository, blobs ports.BlobStore, cache LectureCache, prefix string, log zerolog.Logger) *LectureService {
	return &LectureService{repo: repo, blobs: blobs, cache: cache, prefix: prefix, log: log}
}

func (s *LectureService) Get(ctx context.Context, id string) (*domain.Lecture, error) {
	if s.cache != nil {
		if lecture, ok := s.cache.Get(ctx, id); ok {
			return lecture, nil
		}
	}

	lecture, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, lecture)
	}
	return lecture, nil
}

func (s *LectureService) List(ctx context.Context, page, limit int) (*ports.LectureList, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	lectures, total, err := s.repo.FindAll(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &ports.LectureList{
		Lectures: lectures,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

// Create inserts the lecture record first, then streams the video to the
// blob store under a key derived from the new ID. If the upload fails the
// record is rolled back so no lecture points at a missing object.
func (s *LectureService) Create(ctx context.Context, in ports.CreateLectureInput) (*domain.Lecture, error) {
	if in.Video == nil {
		return nil, domain.ErrNoVideo
	}

	now := time.Now().UTC()
	lecture := &domain.Lecture{
		Title:       in.Title,
		Description: in.Description,
		Author:      in.Author,
		Duration:    in.Duration,
		Date:        in.Date,
		Destination: s.prefix,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Insert(ctx, lecture)
	if err != nil {
		return nil, err
	}

	if err := s.blobs.Put(ctx, created.VideoKey(), in.Video, in.VideoSize, in.ContentType); err != nil {
		if _, delErr := s.repo.Delete(ctx, created.ID); delErr != nil {
			s.log.Error().Err(delErr).Str("lecture_id", created.ID).Msg("rollback after failed upload")
		}
		return nil, fmt.Errorf("upload video: %w", err)
	}

	return created, nil
}

func (s *LectureService) Update(ctx context.Context, id string, in ports.UpdateLectureInput) (*domain.Lecture, error) {
	lecture, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		lecture.Title = in.Title
	}
	if in.Description != "" {
		lecture.Description = in.Description
	}
	if in.Author != "" {
		lecture.Author = in.Author
	}
	if in.Duration > 0 {
		lecture.Duration = in.Duration
	}
	lecture.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, lecture)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	return updated, nil
}

// Delete removes the record, then the video object. A failed object removal
// is logged but not surfaced: the record is gone and the orphaned object is
// harmless until a cleanup pass collects it.
func (s *LectureService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}

	if err := s.blobs.Remove(ctx, deleted.VideoKey()); err != nil {
		s.log.Error().Err(err).Str("key", deleted.VideoKey()).Msg("video object removal failed")
	}
	return nil
}

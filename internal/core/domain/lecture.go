package domain

import (
	"errors"
	"time"
)

var ErrLectureNotFound = errors.New("lecture not found")
var ErrNoVideo = errors.New("no video file uploaded")

// Lecture is the core record of the platform. The video itself lives in the
// object store under Destination + "/" + ID + ".mp4"; the document only keeps
// the key prefix so the bucket can be re-homed without a migration.
type Lecture struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Author      string    `json:"author,omitempty"`
	Duration    int       `json:"duration,omitempty"`
	Date        time.Time `json:"date,omitempty"`
	Destination string    `json:"destination,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VideoKey returns the object-store key holding this lecture's video.
func (l Lecture) VideoKey() string {
	return l.Destination + "/" + l.ID + ".mp4"
}

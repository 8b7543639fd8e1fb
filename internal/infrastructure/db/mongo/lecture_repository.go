package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lecturehall/lecture-api/internal/core/domain"
)

const lectureCollection = "lectures"

type MongoLectureRepository struct {
	coll *mongo.Collection
}

func NewLectureRepository(db *mongo.Database) *MongoLectureRepository {
	return &MongoLectureRepository{coll: db.Collection(lectureCollection)}
}

type mongoLecture struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Author      string             `bson:"author,omitempty"`
	Duration    int                `bson:"duration,omitempty"`
	Date        int64              `bson:"date,omitempty"`
	Destination string             `bson:"destination"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (ml mongoLecture) toDomain() domain.Lecture {
	return domain.Lecture{
		ID:          ml.ID.Hex(),
		Title:       ml.Title,
		Description: ml.Description,
		Author:      ml.Author,
		Duration:    ml.Duration,
		Date:        unixToTime(ml.Date),
		Destination: ml.Destination,
		CreatedAt:   unixToTime(ml.CreatedAt),
		UpdatedAt:   unixToTime(ml.UpdatedAt),
	}
}

func (r *MongoLectureRepository) Insert(ctx context.Context, lecture *domain.Lecture) (*domain.Lecture, error) {
	doc := mongoLecture{
		Title:       lecture.Title,
		Description: lecture.Description,
		Author:      lecture.Author,
		Duration:    lecture.Duration,
		Destination: lecture.Destination,
		CreatedAt:   lecture.CreatedAt.Unix(),
		UpdatedAt:   lecture.UpdatedAt.Unix(),
	}
	if !lecture.Date.IsZero() {
		doc.Date = lecture.Date.Unix()
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert lecture: %w", err)
	}

	created := *lecture
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoLectureRepository) FindByID(ctx context.Context, id string) (*domain.Lecture, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrLectureNotFound
	}

	var ml mongoLecture
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ml); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrLectureNotFound
		}
		return nil, fmt.Errorf("find lecture: %w", err)
	}

	lecture := ml.toDomain()
	return &lecture, nil
}

func (r *MongoLectureRepository) FindAll(ctx context.Context, page, limit int) ([]domain.Lecture, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count lectures: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list lectures: %w", err)
	}
	defer cursor.Close(ctx)

	var lectures []domain.Lecture
	for cursor.Next(ctx) {
		var ml mongoLecture
		if err := cursor.Decode(&ml); err != nil {
			return nil, 0, fmt.Errorf("decode lecture: %w", err)
		}
		lectures = append(lectures, ml.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("list lectures: %w", err)
	}

	return lectures, total, nil
}

func (r *MongoLectureRepository) Update(ctx context.Context, lecture *domain.Lecture) (*domain.Lecture, error) {
	oid, err := primitive.ObjectIDFromHex(lecture.ID)
	if err != nil {
		return nil, domain.ErrLectureNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":       lecture.Title,
		"description": lecture.Description,
		"author":      lecture.Author,
		"duration":    lecture.Duration,
		"updated_at":  lecture.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update lecture: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrLectureNotFound
	}
	return lecture, nil
}

// Delete removes the record and returns the deleted document so the caller
// can clean up the associated video object.
func (r *MongoLectureRepository) Delete(ctx context.Context, id string) (*domain.Lecture, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrLectureNotFound
	}

	var ml mongoLecture
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&ml); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrLectureNotFound
		}
		return nil, fmt.Errorf("delete lecture: %w", err)
	}

	lecture := ml.toDomain()
	return &lecture, nil
}

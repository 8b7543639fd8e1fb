package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lecturehall/lecture-api/internal/core/domain"
)

const auditCollection = "audit_log"

type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEvent struct {
	Actor      string `bson:"actor"`
	Action     string `bson:"action"`
	Resource   string `bson:"resource"`
	ResourceID string `bson:"resource_id,omitempty"`
	At         int64  `bson:"at"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, event domain.AuditEvent) error {
	doc := mongoAuditEvent{
		Actor:      event.Actor,
		Action:     string(event.Action),
		Resource:   event.Resource,
		ResourceID: event.ResourceID,
		At:         event.At.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

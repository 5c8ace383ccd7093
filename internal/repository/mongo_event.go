package repository

import (
	"context"
	"errors"
	"fmt"

	"event-dashboard-backend/internal/database"
	"event-dashboard-backend/internal/database/models"
	apperrors "event-dashboard-backend/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoEventRepository reads and writes events in the document store
type MongoEventRepository struct {
	coll *mongo.Collection
}

// Ensure MongoEventRepository implements EventRepositoryInterface
var _ EventRepositoryInterface = (*MongoEventRepository)(nil)

// NewMongoEventRepository creates a new event repository over the events collection
func NewMongoEventRepository(db *mongo.Database) *MongoEventRepository {
	return &MongoEventRepository{coll: db.Collection(database.EventsCollection)}
}

// Count returns the number of events
func (r *MongoEventRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

// ListByTitle returns every event ordered by title ascending
func (r *MongoEventRepository) ListByTitle(ctx context.Context) ([]models.Event, error) {
	return r.find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "title", Value: 1}, {Key: "_id", Value: 1}}))
}

// ListByDate returns every event ordered by date ascending
func (r *MongoEventRepository) ListByDate(ctx context.Context) ([]models.Event, error) {
	return r.find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}}))
}

// GetByID retrieves an event by its ID
func (r *MongoEventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrEventNotFound
	}
	return r.findOne(ctx, bson.D{{Key: "_id", Value: oid}}, nil)
}

// GetByIDs retrieves the events whose IDs are in ids. Unknown or malformed IDs are ignored.
func (r *MongoEventRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Event, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return []models.Event{}, nil
	}
	return r.find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}}, nil)
}

// GetByTitle retrieves the oldest event with the given title
func (r *MongoEventRepository) GetByTitle(ctx context.Context, title string) (*models.Event, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return r.findOne(ctx, bson.D{{Key: "title", Value: title}}, opts)
}

// Create inserts a new event, keeping a caller-supplied ID
func (r *MongoEventRepository) Create(ctx context.Context, event *models.Event) error {
	oid, err := objectIDOrNew(event.ID)
	if err != nil {
		return apperrors.NewValidationError("id", err.Error())
	}
	stampTimes(&event.CreatedAt, &event.UpdatedAt)

	doc := eventDocument{
		ID:                   oid,
		Title:                event.Title,
		Description:          event.Description,
		Date:                 event.Date,
		Venue:                event.Venue,
		MaxTeamSize:          event.MaxTeamSize,
		MinTeamSize:          event.MinTeamSize,
		RegistrationDeadline: event.RegistrationDeadline,
		CreatedAt:            event.CreatedAt,
		UpdatedAt:            event.UpdatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	event.ID = oid.Hex()
	return nil
}

func (r *MongoEventRepository) find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Event, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []eventDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	events := make([]models.Event, 0, len(docs))
	for i := range docs {
		events = append(events, docs[i].toModel())
	}
	return events, nil
}

func (r *MongoEventRepository) findOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (*models.Event, error) {
	var doc eventDocument
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	event := doc.toModel()
	return &event, nil
}

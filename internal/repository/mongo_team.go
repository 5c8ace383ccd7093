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

// MongoTeamRepository reads and writes teams in the document store
type MongoTeamRepository struct {
	coll *mongo.Collection
}

// Ensure MongoTeamRepository implements TeamRepositoryInterface
var _ TeamRepositoryInterface = (*MongoTeamRepository)(nil)

// NewMongoTeamRepository creates a new team repository over the teams collection
func NewMongoTeamRepository(db *mongo.Database) *MongoTeamRepository {
	return &MongoTeamRepository{coll: db.Collection(database.TeamsCollection)}
}

var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

// Count returns the number of teams
func (r *MongoTeamRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

// CountByEvent groups teams by event reference server-side
func (r *MongoTeamRepository) CountByEvent(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "event", Value: bson.D{{Key: "$ne", Value: nil}}}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$event"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		EventID primitive.ObjectID `bson:"_id"`
		Count   int64              `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.EventID.Hex()] = row.Count
	}
	return counts, nil
}

// CountForEvent returns the number of teams registered for one event
func (r *MongoTeamRepository) CountForEvent(ctx context.Context, eventID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return 0, apperrors.ErrInvalidEventID
	}
	return r.coll.CountDocuments(ctx, bson.D{{Key: "event", Value: oid}})
}

// GetRecent returns the most recently created teams
func (r *MongoTeamRepository) GetRecent(ctx context.Context, limit int) ([]models.Team, error) {
	opts := options.Find().SetSort(newestFirst).SetLimit(int64(limit))
	return r.find(ctx, bson.D{}, opts)
}

// List returns a page of teams, newest first, optionally restricted to one event
func (r *MongoTeamRepository) List(ctx context.Context, eventID *string, limit, offset int) ([]models.Team, int64, error) {
	filter := bson.D{}
	if eventID != nil {
		oid, err := primitive.ObjectIDFromHex(*eventID)
		if err != nil {
			return nil, 0, apperrors.ErrInvalidEventID
		}
		filter = bson.D{{Key: "event", Value: oid}}
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSort(newestFirst).SetSkip(int64(offset)).SetLimit(int64(limit))
	teams, err := r.find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return teams, total, nil
}

// GetByID retrieves a team by its ID
func (r *MongoTeamRepository) GetByID(ctx context.Context, id string) (*models.Team, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}

	var doc teamDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}
	team := doc.toModel()
	return &team, nil
}

// Create inserts a new team, keeping a caller-supplied ID
func (r *MongoTeamRepository) Create(ctx context.Context, team *models.Team) error {
	oid, err := objectIDOrNew(team.ID)
	if err != nil {
		return apperrors.NewValidationError("id", err.Error())
	}
	stampTimes(&team.CreatedAt, &team.UpdatedAt)

	doc := teamDocument{
		ID:   oid,
		Name: team.Name,
		Leader: leaderDocument{
			Name:  team.Leader.Name,
			Email: team.Leader.Email,
			Phone: team.Leader.Phone,
		},
		CreatedAt: team.CreatedAt,
		UpdatedAt: team.UpdatedAt,
	}
	if team.HasEvent() {
		eventOID, err := primitive.ObjectIDFromHex(*team.EventID)
		if err != nil {
			return apperrors.ErrInvalidEventID
		}
		doc.Event = &eventOID
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert team: %w", err)
	}
	team.ID = oid.Hex()
	return nil
}

func (r *MongoTeamRepository) find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Team, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []teamDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	teams := make([]models.Team, 0, len(docs))
	for i := range docs {
		teams = append(teams, docs[i].toModel())
	}
	return teams, nil
}

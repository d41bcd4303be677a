package medications

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/vitalog-org/vitalog/store"
)

const (
	SchedulesCollectionName = "schedules"
)

func NewSchedulesRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (SchedulesRepository, error) {
	repo := &schedulesRepository{
		collection: db.Collection(SchedulesCollectionName),
		logger:     logger,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type schedulesRepository struct {
	collection *mongo.Collection
	logger     *zap.SugaredLogger
}

func (r *schedulesRepository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "active", Value: 1},
			},
			Options: options.Index().
				SetName("SchedulesByUserActive"),
		},
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "suggestionId", Value: 1},
			},
			Options: options.Index().
				SetName("UniqueScheduleSuggestion").
				SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "suggestionId", Value: bson.M{"$exists": true}}}),
		},
	})
	return err
}

func (r *schedulesRepository) Create(ctx context.Context, schedule *Schedule) (*Schedule, error) {
	res, err := r.collection.InsertOne(ctx, schedule)
	if err != nil {
		return nil, fmt.Errorf("error creating schedule: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	return r.Get(ctx, schedule.UserId, id.Hex())
}

func (r *schedulesRepository) Get(ctx context.Context, userId string, id string) (*Schedule, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrScheduleNotFound
	}
	selector := bson.M{
		"_id":    objId,
		"userId": userId,
	}

	schedule := &Schedule{}
	err = r.collection.FindOne(ctx, selector).Decode(schedule)
	if err == mongo.ErrNoDocuments {
		return nil, ErrScheduleNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching schedule: %w", err)
	}

	return schedule, nil
}

func (r *schedulesRepository) List(ctx context.Context, userId string, activeOnly bool, pagination store.Pagination) ([]*Schedule, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdTime", Value: -1}}).
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Offset))

	selector := bson.M{
		"userId": userId,
	}
	if activeOnly {
		selector["active"] = true
	}

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing schedules: %w", err)
	}

	var schedules []*Schedule
	if err = cursor.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("error decoding schedules list: %w", err)
	}

	return schedules, nil
}

func (r *schedulesRepository) Deactivate(ctx context.Context, userId string, id string) (*Schedule, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrScheduleNotFound
	}
	selector := bson.M{
		"_id":    objId,
		"userId": userId,
	}
	update := bson.M{
		"$set": bson.M{
			"active": false,
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	schedule := &Schedule{}
	err = r.collection.FindOneAndUpdate(ctx, selector, update, opts).Decode(schedule)
	if err == mongo.ErrNoDocuments {
		return nil, ErrScheduleNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error deactivating schedule: %w", err)
	}

	return schedule, nil
}

func (r *schedulesRepository) Delete(ctx context.Context, userId string, id string) error {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrScheduleNotFound
	}
	selector := bson.M{
		"_id":    objId,
		"userId": userId,
	}

	res, err := r.collection.DeleteOne(ctx, selector)
	if err != nil {
		return fmt.Errorf("error deleting schedule: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

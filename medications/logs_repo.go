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
	LogsCollectionName = "medication_logs"
)

func NewLogsRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (LogsRepository, error) {
	repo := &logsRepository{
		collection: db.Collection(LogsCollectionName),
		logger:     logger,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type logsRepository struct {
	collection *mongo.Collection
	logger     *zap.SugaredLogger
}

func (r *logsRepository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "eventTime", Value: -1},
			},
			Options: options.Index().
				SetName("LogsByUserTime"),
		},
	})
	return err
}

func (r *logsRepository) Create(ctx context.Context, log *Log) (*Log, error) {
	res, err := r.collection.InsertOne(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("error creating medication log: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	selector := bson.M{
		"_id": id,
	}

	created := &Log{}
	if err := r.collection.FindOne(ctx, selector).Decode(created); err != nil {
		return nil, fmt.Errorf("error fetching medication log: %w", err)
	}

	return created, nil
}

func (r *logsRepository) List(ctx context.Context, userId string, filter *LogFilter, pagination store.Pagination) ([]*Log, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "eventTime", Value: -1}}).
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Offset))

	selector := bson.M{
		"userId": userId,
	}
	if filter != nil {
		eventTime := bson.M{}
		if filter.From != nil {
			eventTime["$gte"] = filter.From
		}
		if filter.To != nil {
			eventTime["$lte"] = filter.To
		}
		if len(eventTime) > 0 {
			selector["eventTime"] = eventTime
		}
	}

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing medication logs: %w", err)
	}

	var logs []*Log
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("error decoding medication logs: %w", err)
	}

	return logs, nil
}

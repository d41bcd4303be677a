package measurements

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/vitalog-org/vitalog/store"
)

const (
	CollectionName = "measurements"
)

func NewRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(CollectionName),
		logger:     logger,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	collection *mongo.Collection
	logger     *zap.SugaredLogger
}

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "type", Value: 1},
				{Key: "timestamp", Value: -1},
			},
			Options: options.Index().
				SetName("MeasurementsByUserTypeTime"),
		},
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "timestamp", Value: -1},
			},
			Options: options.Index().
				SetName("MeasurementsByUserTime"),
		},
	})
	return err
}

func (r *repository) Create(ctx context.Context, measurement *Measurement) (*Measurement, error) {
	res, err := r.collection.InsertOne(ctx, measurement)
	if err != nil {
		return nil, fmt.Errorf("error creating measurement: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	return r.Get(ctx, measurement.UserId, id.Hex())
}

func (r *repository) Get(ctx context.Context, userId string, id string) (*Measurement, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	selector := bson.M{
		"_id":    objId,
		"userId": userId,
	}

	measurement := &Measurement{}
	err = r.collection.FindOne(ctx, selector).Decode(measurement)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching measurement: %w", err)
	}

	return measurement, nil
}

func (r *repository) List(ctx context.Context, userId string, filter *Filter, pagination store.Pagination) ([]*Measurement, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Offset))

	selector := bson.M{
		"userId": userId,
	}
	if filter != nil {
		if filter.Type != nil {
			selector["type"] = filter.Type
		}
		if timestamp := timestampSelector(filter.From, filter.To); len(timestamp) > 0 {
			selector["timestamp"] = timestamp
		}
	}

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing measurements: %w", err)
	}

	var measurements []*Measurement
	if err = cursor.All(ctx, &measurements); err != nil {
		return nil, fmt.Errorf("error decoding measurements list: %w", err)
	}

	return measurements, nil
}

// ListWindow returns all readings of one type in [from, to], oldest first,
// which is the order the trend analyzer expects
func (r *repository) ListWindow(ctx context.Context, userId string, measurementType Type, from time.Time, to time.Time) ([]*Measurement, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: 1}})

	selector := bson.M{
		"userId": userId,
		"type":   measurementType,
		"timestamp": bson.M{
			"$gte": from,
			"$lte": to,
		},
	}

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing measurement window: %w", err)
	}

	var measurements []*Measurement
	if err = cursor.All(ctx, &measurements); err != nil {
		return nil, fmt.Errorf("error decoding measurement window: %w", err)
	}

	return measurements, nil
}

func (r *repository) LatestByType(ctx context.Context, userId string, types []Type) (map[Type]*Measurement, error) {
	if len(types) == 0 {
		types = Types
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"userId": userId,
			"type":   bson.M{"$in": types},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "timestamp", Value: -1}}}},
		{{Key: "$group", Value: bson.M{
			"_id":    "$type",
			"latest": bson.M{"$first": "$$ROOT"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating latest measurements: %w", err)
	}

	var groups []struct {
		Type   Type        `bson:"_id"`
		Latest Measurement `bson:"latest"`
	}
	if err = cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("error decoding latest measurements: %w", err)
	}

	latest := make(map[Type]*Measurement, len(groups))
	for i := range groups {
		latest[groups[i].Type] = &groups[i].Latest
	}

	return latest, nil
}

func (r *repository) Delete(ctx context.Context, userId string, id string) error {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	selector := bson.M{
		"_id":    objId,
		"userId": userId,
	}

	res, err := r.collection.DeleteOne(ctx, selector)
	if err != nil {
		return fmt.Errorf("error deleting measurement: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func timestampSelector(from *time.Time, to *time.Time) bson.M {
	selector := bson.M{}
	if from != nil {
		selector["$gte"] = from
	}
	if to != nil {
		selector["$lte"] = to
	}
	return selector
}

package insights

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
	CollectionName = "insights"
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
				{Key: "generatedTime", Value: -1},
			},
			Options: options.Index().
				SetName("InsightsByUserTime"),
		},
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "read", Value: 1},
			},
			Options: options.Index().
				SetName("InsightsByUserRead"),
		},
	})
	return err
}

func (r *repository) Create(ctx context.Context, insight *Insight) (*Insight, error) {
	res, err := r.collection.InsertOne(ctx, insight)
	if err != nil {
		return nil, fmt.Errorf("error creating insight: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	return r.getOne(ctx, bson.M{"_id": id})
}

func (r *repository) List(ctx context.Context, userId string, filter *Filter, pagination store.Pagination) ([]*Insight, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "generatedTime", Value: -1}}).
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Offset))

	selector := bson.M{
		"userId": userId,
	}
	if filter != nil {
		if filter.Kind != nil {
			selector["kind"] = filter.Kind
		}
		if filter.UnreadOnly {
			selector["read"] = false
		}
	}

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing insights: %w", err)
	}

	var insights []*Insight
	if err = cursor.All(ctx, &insights); err != nil {
		return nil, fmt.Errorf("error decoding insights list: %w", err)
	}

	return insights, nil
}

// MarkRead flips the read flag. It is the only mutation insights support.
func (r *repository) MarkRead(ctx context.Context, userId string, id string) (*Insight, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	selector := bson.M{
		"_id":    objId,
		"userId": userId,
	}
	update := bson.M{
		"$set": bson.M{
			"read": true,
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	insight := &Insight{}
	err = r.collection.FindOneAndUpdate(ctx, selector, update, opts).Decode(insight)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error marking insight read: %w", err)
	}

	return insight, nil
}

func (r *repository) getOne(ctx context.Context, selector bson.M) (*Insight, error) {
	insight := &Insight{}
	err := r.collection.FindOne(ctx, selector).Decode(insight)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching insight: %w", err)
	}

	return insight, nil
}

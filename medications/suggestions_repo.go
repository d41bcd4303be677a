package medications

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
)

const (
	SuggestionsCollectionName = "suggestions"
)

func NewSuggestionsRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (SuggestionsRepository, error) {
	repo := &suggestionsRepository{
		collection: db.Collection(SuggestionsCollectionName),
		logger:     logger,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type suggestionsRepository struct {
	collection *mongo.Collection
	logger     *zap.SugaredLogger
}

func (r *suggestionsRepository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "status", Value: 1},
				{Key: "createdTime", Value: -1},
			},
			Options: options.Index().
				SetName("SuggestionsByUserStatus"),
		},
	})
	return err
}

func (r *suggestionsRepository) Create(ctx context.Context, suggestion *Suggestion) (*Suggestion, error) {
	res, err := r.collection.InsertOne(ctx, suggestion)
	if err != nil {
		return nil, fmt.Errorf("error creating suggestion: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	return r.Get(ctx, suggestion.UserId, id.Hex())
}

func (r *suggestionsRepository) Get(ctx context.Context, userId string, id string) (*Suggestion, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrSuggestionNotFound
	}
	selector := bson.M{
		"_id":    objId,
		"userId": userId,
	}

	suggestion := &Suggestion{}
	err = r.collection.FindOne(ctx, selector).Decode(suggestion)
	if err == mongo.ErrNoDocuments {
		return nil, ErrSuggestionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching suggestion: %w", err)
	}

	return suggestion, nil
}

func (r *suggestionsRepository) ListPending(ctx context.Context, userId string) ([]*Suggestion, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdTime", Value: -1}})

	selector := bson.M{
		"userId": userId,
		"status": StatusPending,
	}

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing pending suggestions: %w", err)
	}

	var suggestions []*Suggestion
	if err = cursor.All(ctx, &suggestions); err != nil {
		return nil, fmt.Errorf("error decoding pending suggestions: %w", err)
	}

	return suggestions, nil
}

// UpdateStatusIfPending includes the pending status in the update selector,
// so the transition is atomic. Out of any number of racing responders only
// one can match the selector.
func (r *suggestionsRepository) UpdateStatusIfPending(ctx context.Context, userId string, id string, status SuggestionStatus, respondedTime time.Time) (*Suggestion, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrSuggestionNotFound
	}
	selector := bson.M{
		"_id":    objId,
		"userId": userId,
		"status": StatusPending,
	}
	update := bson.M{
		"$set": bson.M{
			"status":        status,
			"respondedTime": respondedTime,
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	suggestion := &Suggestion{}
	err = r.collection.FindOneAndUpdate(ctx, selector, update, opts).Decode(suggestion)
	if err == mongo.ErrNoDocuments {
		return nil, ErrSuggestionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error updating suggestion status: %w", err)
	}

	return suggestion, nil
}

func (r *suggestionsRepository) RevertToPending(ctx context.Context, userId string, id string) error {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrSuggestionNotFound
	}
	selector := bson.M{
		"_id":    objId,
		"userId": userId,
	}
	update := bson.M{
		"$set": bson.M{
			"status": StatusPending,
		},
		"$unset": bson.M{
			"respondedTime": "",
		},
	}

	err = r.collection.FindOneAndUpdate(ctx, selector, update).Err()
	if err == mongo.ErrNoDocuments {
		return ErrSuggestionNotFound
	} else if err != nil {
		return fmt.Errorf("error reverting suggestion to pending: %w", err)
	}

	return nil
}

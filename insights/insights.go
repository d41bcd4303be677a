package insights

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vitalog-org/vitalog/errors"
	"github.com/vitalog-org/vitalog/measurements"
	"github.com/vitalog-org/vitalog/store"
)

var ErrNotFound = fmt.Errorf("insight %w", errors.NotFound)

type Kind string

const (
	KindTrend          Kind = "trend"
	KindAlert          Kind = "alert"
	KindRecommendation Kind = "recommendation"
	KindAchievement    Kind = "achievement"
)

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
	SeveritySuccess  Severity = "success"
)

type Insight struct {
	Id            *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserId        string              `bson:"userId" json:"userId"`
	Kind          Kind                `bson:"kind" json:"kind"`
	Title         string              `bson:"title" json:"title"`
	Message       string              `bson:"message" json:"message"`
	Severity      Severity            `bson:"severity" json:"severity"`
	MetricType    measurements.Type   `bson:"metricType" json:"metricType"`
	GeneratedTime time.Time           `bson:"generatedTime" json:"generatedTime"`
	Read          bool                `bson:"read" json:"read"`
	ExpiresTime   *time.Time          `bson:"expiresTime,omitempty" json:"expiresTime,omitempty"`
}

type Filter struct {
	Kind       *Kind
	UnreadOnly bool
}

//go:generate go tool mockgen -source=./insights.go -destination=./test/mocks.go -package test

type Repository interface {
	Create(ctx context.Context, insight *Insight) (*Insight, error)
	List(ctx context.Context, userId string, filter *Filter, pagination store.Pagination) ([]*Insight, error)
	MarkRead(ctx context.Context, userId string, id string) (*Insight, error)
}

type Service interface {
	List(ctx context.Context, userId string, filter *Filter, pagination store.Pagination) ([]*Insight, error)
	MarkRead(ctx context.Context, userId string, id string) (*Insight, error)
}

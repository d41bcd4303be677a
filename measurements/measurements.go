package measurements

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vitalog-org/vitalog/errors"
	"github.com/vitalog-org/vitalog/store"
)

var (
	ErrNotFound = fmt.Errorf("measurement %w", errors.NotFound)

	MaxSystolic  = float64(300)
	MaxDiastolic = float64(200)
)

type Type string

const (
	TypeGlucose          Type = "glucose"
	TypeBloodPressure    Type = "blood_pressure"
	TypeHeartRate        Type = "heart_rate"
	TypeWeight           Type = "weight"
	TypeSleep            Type = "sleep"
	TypeSteps            Type = "steps"
	TypeWater            Type = "water"
	TypeTemperature      Type = "temperature"
	TypeOxygenSaturation Type = "oxygen_saturation"
)

var Types = []Type{
	TypeGlucose,
	TypeBloodPressure,
	TypeHeartRate,
	TypeWeight,
	TypeSleep,
	TypeSteps,
	TypeWater,
	TypeTemperature,
	TypeOxygenSaturation,
}

var defaultUnits = map[Type]string{
	TypeGlucose:          "mg/dL",
	TypeBloodPressure:    "mmHg",
	TypeHeartRate:        "bpm",
	TypeWeight:           "kg",
	TypeSleep:            "hours",
	TypeSteps:            "steps",
	TypeWater:            "ml",
	TypeTemperature:      "C",
	TypeOxygenSaturation: "%",
}

func (t Type) IsValid() bool {
	_, ok := defaultUnits[t]
	return ok
}

// Humanize returns the display name of a metric type, e.g. "Blood Pressure"
func (t Type) Humanize() string {
	words := strings.Split(string(t), "_")
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

type MeasurementSource string

const (
	SourceManual MeasurementSource = "manual"
	SourceDevice MeasurementSource = "device"
	SourceApp    MeasurementSource = "app"
)

func (s MeasurementSource) IsValid() bool {
	return s == SourceManual || s == SourceDevice || s == SourceApp
}

type Measurement struct {
	Id        *primitive.ObjectID    `bson:"_id,omitempty" json:"id,omitempty"`
	UserId    string                 `bson:"userId" json:"userId"`
	Type      Type                   `bson:"type" json:"type"`
	Value     float64                `bson:"value" json:"value"`
	Unit      string                 `bson:"unit,omitempty" json:"unit,omitempty"`
	Timestamp time.Time              `bson:"timestamp" json:"timestamp"`
	Source    MeasurementSource      `bson:"source" json:"source"`
	Note      *string                `bson:"note,omitempty" json:"note,omitempty"`
	Metadata  map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// Diastolic returns the diastolic component of a blood pressure reading,
// or nil if the reading doesn't carry one
func (m *Measurement) Diastolic() *float64 {
	if m.Metadata == nil {
		return nil
	}
	switch v := m.Metadata["diastolic"].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	case int32:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	}
	return nil
}

// Raw is an unvalidated measurement as submitted by a client
type Raw struct {
	Type      string                 `json:"type"`
	Value     *float64               `json:"value"`
	Unit      *string                `json:"unit,omitempty"`
	Timestamp *time.Time             `json:"timestamp,omitempty"`
	Source    *string                `json:"source,omitempty"`
	Note      *string                `json:"note,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// NewMeasurement validates a raw measurement and returns the record to be
// persisted. Out of range values are rejected, never clamped.
func NewMeasurement(userId string, raw Raw) (*Measurement, error) {
	if userId == "" {
		return nil, fmt.Errorf("%w: user id is missing", errors.BadRequest)
	}
	measurementType := Type(raw.Type)
	if !measurementType.IsValid() {
		return nil, fmt.Errorf("%w: unknown measurement type %q", errors.BadRequest, raw.Type)
	}
	if raw.Value == nil {
		return nil, fmt.Errorf("%w: value is required", errors.BadRequest)
	}
	if math.IsNaN(*raw.Value) || math.IsInf(*raw.Value, 0) {
		return nil, fmt.Errorf("%w: value must be a finite number", errors.BadRequest)
	}

	measurement := &Measurement{
		UserId:    userId,
		Type:      measurementType,
		Value:     *raw.Value,
		Unit:      defaultUnits[measurementType],
		Timestamp: time.Now(),
		Source:    SourceManual,
		Note:      raw.Note,
		Metadata:  raw.Metadata,
	}
	if raw.Unit != nil && *raw.Unit != "" {
		measurement.Unit = *raw.Unit
	}
	if raw.Timestamp != nil && !raw.Timestamp.IsZero() {
		measurement.Timestamp = *raw.Timestamp
	}
	if raw.Source != nil && *raw.Source != "" {
		source := MeasurementSource(*raw.Source)
		if !source.IsValid() {
			return nil, fmt.Errorf("%w: unknown measurement source %q", errors.BadRequest, *raw.Source)
		}
		measurement.Source = source
	}

	if measurementType == TypeBloodPressure {
		if measurement.Value < 0 || measurement.Value > MaxSystolic {
			return nil, fmt.Errorf("%w: systolic value %v is out of range [0, %v]", errors.BadRequest, measurement.Value, MaxSystolic)
		}
		if diastolic := measurement.Diastolic(); diastolic != nil {
			if *diastolic < 0 || *diastolic > MaxDiastolic {
				return nil, fmt.Errorf("%w: diastolic value %v is out of range [0, %v]", errors.BadRequest, *diastolic, MaxDiastolic)
			}
		}
	}

	return measurement, nil
}

type Filter struct {
	Type *Type
	From *time.Time
	To   *time.Time
}

type BatchError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

type BatchResult struct {
	Saved  []*Measurement `json:"saved"`
	Errors []BatchError   `json:"errors"`
}

//go:generate go tool mockgen -source=./measurements.go -destination=./test/mocks.go -package test

type Repository interface {
	Create(ctx context.Context, measurement *Measurement) (*Measurement, error)
	Get(ctx context.Context, userId string, id string) (*Measurement, error)
	List(ctx context.Context, userId string, filter *Filter, pagination store.Pagination) ([]*Measurement, error)
	ListWindow(ctx context.Context, userId string, measurementType Type, from time.Time, to time.Time) ([]*Measurement, error)
	LatestByType(ctx context.Context, userId string, types []Type) (map[Type]*Measurement, error)
	Delete(ctx context.Context, userId string, id string) error
}

type Service interface {
	Record(ctx context.Context, userId string, raw Raw) (*Measurement, error)
	RecordBatch(ctx context.Context, userId string, items []Raw) (*BatchResult, error)
	GetStats(ctx context.Context, userId string, measurementType Type, windowDays int) (*Stats, error)
	LatestByType(ctx context.Context, userId string, types []Type) (map[Type]*Measurement, error)
	List(ctx context.Context, userId string, filter *Filter, pagination store.Pagination) ([]*Measurement, error)
	Delete(ctx context.Context, userId string, id string) error
}

// InsightReporter is notified after every successful measurement write.
// Failures are logged and swallowed by the caller, they never propagate
// to the write path.
type InsightReporter interface {
	OnMeasurementRecorded(ctx context.Context, measurement *Measurement) error
}

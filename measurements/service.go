package measurements

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vitalog-org/vitalog/errors"
	"github.com/vitalog-org/vitalog/store"
)

const DefaultStatsWindowDays = 30

type service struct {
	repo     Repository
	reporter InsightReporter
	logger   *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(repo Repository, reporter InsightReporter, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		repo:     repo,
		reporter: reporter,
		logger:   logger,
	}, nil
}

func (s *service) Record(ctx context.Context, userId string, raw Raw) (*Measurement, error) {
	measurement, err := NewMeasurement(userId, raw)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, measurement)
	if err != nil {
		return nil, err
	}

	s.reportMeasurement(ctx, created)
	return created, nil
}

func (s *service) RecordBatch(ctx context.Context, userId string, items []Raw) (*BatchResult, error) {
	if userId == "" {
		return nil, fmt.Errorf("%w: user id is missing", errors.BadRequest)
	}

	result := &BatchResult{
		Saved:  make([]*Measurement, 0, len(items)),
		Errors: make([]BatchError, 0),
	}

	// Items are validated and persisted independently. A failed item is
	// reported with its original index and doesn't abort the rest.
	for i, item := range items {
		measurement, err := NewMeasurement(userId, item)
		if err == nil {
			measurement, err = s.repo.Create(ctx, measurement)
		}
		if err != nil {
			result.Errors = append(result.Errors, BatchError{
				Index: i,
				Error: err.Error(),
			})
			continue
		}

		result.Saved = append(result.Saved, measurement)
		s.reportMeasurement(ctx, measurement)
	}

	return result, nil
}

func (s *service) GetStats(ctx context.Context, userId string, measurementType Type, windowDays int) (*Stats, error) {
	if !measurementType.IsValid() {
		return nil, fmt.Errorf("%w: unknown measurement type %q", errors.BadRequest, measurementType)
	}
	if windowDays <= 0 {
		windowDays = DefaultStatsWindowDays
	}

	to := time.Now()
	from := to.AddDate(0, 0, -windowDays)
	readings, err := s.repo.ListWindow(ctx, userId, measurementType, from, to)
	if err != nil {
		return nil, err
	}

	stats := ComputeStats(readings, DefaultStatsOptions())
	return &stats, nil
}

func (s *service) LatestByType(ctx context.Context, userId string, types []Type) (map[Type]*Measurement, error) {
	for _, measurementType := range types {
		if !measurementType.IsValid() {
			return nil, fmt.Errorf("%w: unknown measurement type %q", errors.BadRequest, measurementType)
		}
	}
	return s.repo.LatestByType(ctx, userId, types)
}

func (s *service) List(ctx context.Context, userId string, filter *Filter, pagination store.Pagination) ([]*Measurement, error) {
	if filter != nil && filter.Type != nil && !filter.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown measurement type %q", errors.BadRequest, *filter.Type)
	}
	return s.repo.List(ctx, userId, filter, pagination)
}

func (s *service) Delete(ctx context.Context, userId string, id string) error {
	return s.repo.Delete(ctx, userId, id)
}

// reportMeasurement triggers insight generation for a successfully persisted
// measurement. Generation is best effort and must never fail the write.
func (s *service) reportMeasurement(ctx context.Context, measurement *Measurement) {
	if s.reporter == nil {
		return
	}
	if err := s.reporter.OnMeasurementRecorded(ctx, measurement); err != nil {
		s.logger.Errorw("error generating insights for measurement",
			"userId", measurement.UserId,
			"type", measurement.Type,
			zap.Error(err),
		)
	}
}

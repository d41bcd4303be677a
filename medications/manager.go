package medications

import (
	"context"
	goerrors "errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vitalog-org/vitalog/errors"
	"github.com/vitalog-org/vitalog/store"
)

// DefaultScheduleTime is the single slot materialized when the accepting
// caller doesn't supply schedule times
const DefaultScheduleTime = "09:00"

const defaultRejectionReason = "Suggestion declined by user"

type manager struct {
	suggestions SuggestionsRepository
	schedules   SchedulesRepository
	logs        LogsRepository
	logger      *zap.SugaredLogger
}

var _ Manager = &manager{}

func NewManager(suggestions SuggestionsRepository, schedules SchedulesRepository, logs LogsRepository, logger *zap.SugaredLogger) (Manager, error) {
	return &manager{
		suggestions: suggestions,
		schedules:   schedules,
		logs:        logs,
		logger:      logger,
	}, nil
}

// Propose creates a pending suggestion. Medical safety is not validated,
// only presence of the required fields.
func (m *manager) Propose(ctx context.Context, doctorId string, userId string, req ProposeRequest) (*Suggestion, error) {
	if doctorId == "" {
		return nil, fmt.Errorf("%w: doctor id is missing", errors.BadRequest)
	}
	if userId == "" {
		return nil, fmt.Errorf("%w: user id is missing", errors.BadRequest)
	}
	if req.Medication == "" {
		return nil, fmt.Errorf("%w: medication name is required", errors.BadRequest)
	}
	if req.Dosage == "" {
		return nil, fmt.Errorf("%w: dosage is required", errors.BadRequest)
	}
	if req.Frequency == "" {
		return nil, fmt.Errorf("%w: frequency is required", errors.BadRequest)
	}

	suggestion := &Suggestion{
		UserId:       userId,
		DoctorId:     doctorId,
		Medication:   req.Medication,
		Dosage:       req.Dosage,
		Frequency:    req.Frequency,
		Duration:     req.Duration,
		Instructions: req.Instructions,
		Reason:       req.Reason,
		Status:       StatusPending,
		CreatedTime:  time.Now(),
	}

	return m.suggestions.Create(ctx, suggestion)
}

func (m *manager) Respond(ctx context.Context, userId string, suggestionId string, req RespondRequest) (*Response, error) {
	switch req.Action {
	case ActionAccept:
		return m.accept(ctx, userId, suggestionId, req)
	case ActionReject:
		return m.reject(ctx, userId, suggestionId, req)
	default:
		return nil, fmt.Errorf("%w: unknown action %q", errors.BadRequest, req.Action)
	}
}

func (m *manager) ListPending(ctx context.Context, userId string) ([]*Suggestion, error) {
	return m.suggestions.ListPending(ctx, userId)
}

// accept transitions the suggestion and materializes the schedule and the
// audit log entry. The conditional status update is deliberately the first
// write: it is the serialization point for racing responders. If any later
// write fails the transition is compensated by re-marking the suggestion
// pending, so callers never observe an accepted suggestion without its
// schedule.
func (m *manager) accept(ctx context.Context, userId string, suggestionId string, req RespondRequest) (*Response, error) {
	suggestion, err := m.transition(ctx, userId, suggestionId, StatusAccepted)
	if err != nil {
		return nil, err
	}

	times := req.Times
	if len(times) == 0 {
		times = []string{DefaultScheduleTime}
	}
	schedule := &Schedule{
		UserId:       userId,
		Medication:   suggestion.Medication,
		Dosage:       suggestion.Dosage,
		Frequency:    suggestion.Frequency,
		Times:        times,
		Source:       SourceDoctorSuggestion,
		SuggestionId: suggestion.Id,
		Active:       true,
		CreatedTime:  time.Now(),
	}
	schedule, err = m.schedules.Create(ctx, schedule)
	if err != nil {
		m.compensateTransition(ctx, userId, suggestionId, nil)
		return nil, fmt.Errorf("error creating schedule for accepted suggestion: %w", err)
	}

	log := &Log{
		UserId:       userId,
		ScheduleId:   schedule.Id,
		SuggestionId: suggestion.Id,
		Medication:   suggestion.Medication,
		EventTime:    time.Now(),
		Status:       LogStatusAccepted,
		Notes:        req.Notes,
	}
	log, err = m.logs.Create(ctx, log)
	if err != nil {
		m.compensateTransition(ctx, userId, suggestionId, schedule)
		return nil, fmt.Errorf("error logging suggestion acceptance: %w", err)
	}

	return &Response{
		Suggestion: suggestion,
		Schedule:   schedule,
		Log:        log,
	}, nil
}

func (m *manager) reject(ctx context.Context, userId string, suggestionId string, req RespondRequest) (*Response, error) {
	suggestion, err := m.transition(ctx, userId, suggestionId, StatusRejected)
	if err != nil {
		return nil, err
	}

	reason := defaultRejectionReason
	if req.Reason != nil && *req.Reason != "" {
		reason = *req.Reason
	}
	log := &Log{
		UserId:       userId,
		SuggestionId: suggestion.Id,
		Medication:   suggestion.Medication,
		EventTime:    time.Now(),
		Status:       LogStatusRejected,
		Notes:        &reason,
	}
	log, err = m.logs.Create(ctx, log)
	if err != nil {
		m.compensateTransition(ctx, userId, suggestionId, nil)
		return nil, fmt.Errorf("error logging suggestion rejection: %w", err)
	}

	return &Response{
		Suggestion: suggestion,
		Log:        log,
	}, nil
}

// transition performs the conditional status update and distinguishes a
// missing suggestion from one that already left the pending state
func (m *manager) transition(ctx context.Context, userId string, suggestionId string, status SuggestionStatus) (*Suggestion, error) {
	suggestion, err := m.suggestions.UpdateStatusIfPending(ctx, userId, suggestionId, status, time.Now())
	if err == nil {
		return suggestion, nil
	}
	if !goerrors.Is(err, ErrSuggestionNotFound) {
		return nil, err
	}

	if _, getErr := m.suggestions.Get(ctx, userId, suggestionId); getErr == nil {
		// The suggestion exists but is no longer pending, either because it
		// was responded to earlier or because a racing responder won
		return nil, ErrAlreadyResponded
	}
	return nil, ErrSuggestionNotFound
}

// compensateTransition rolls a failed transition back to pending and removes the
// schedule if one was already created. Compensation failures are logged, the
// original failure is what gets surfaced to the caller.
func (m *manager) compensateTransition(ctx context.Context, userId string, suggestionId string, schedule *Schedule) {
	if schedule != nil && schedule.Id != nil {
		if err := m.schedules.Delete(ctx, userId, schedule.Id.Hex()); err != nil {
			m.logger.Errorw("error removing schedule while compensating failed accept",
				"userId", userId,
				"suggestionId", suggestionId,
				"scheduleId", schedule.Id.Hex(),
				zap.Error(err),
			)
		}
	}
	if err := m.suggestions.RevertToPending(ctx, userId, suggestionId); err != nil {
		m.logger.Errorw("error reverting suggestion to pending while compensating failed accept",
			"userId", userId,
			"suggestionId", suggestionId,
			zap.Error(err),
		)
	}
}

func (m *manager) CreateSchedule(ctx context.Context, userId string, req ScheduleRequest) (*Schedule, error) {
	if userId == "" {
		return nil, fmt.Errorf("%w: user id is missing", errors.BadRequest)
	}
	if req.Medication == "" {
		return nil, fmt.Errorf("%w: medication name is required", errors.BadRequest)
	}
	if req.Dosage == "" {
		return nil, fmt.Errorf("%w: dosage is required", errors.BadRequest)
	}
	if req.Frequency == "" {
		return nil, fmt.Errorf("%w: frequency is required", errors.BadRequest)
	}

	times := req.Times
	if len(times) == 0 {
		times = []string{DefaultScheduleTime}
	}
	schedule := &Schedule{
		UserId:      userId,
		Medication:  req.Medication,
		Dosage:      req.Dosage,
		Frequency:   req.Frequency,
		Times:       times,
		Source:      SourceManual,
		Active:      true,
		CreatedTime: time.Now(),
	}

	return m.schedules.Create(ctx, schedule)
}

func (m *manager) ListSchedules(ctx context.Context, userId string, activeOnly bool, pagination store.Pagination) ([]*Schedule, error) {
	return m.schedules.List(ctx, userId, activeOnly, pagination)
}

func (m *manager) DeactivateSchedule(ctx context.Context, userId string, id string) (*Schedule, error) {
	return m.schedules.Deactivate(ctx, userId, id)
}

func (m *manager) LogDose(ctx context.Context, userId string, req LogRequest) (*Log, error) {
	if !req.Status.IsDoseEvent() {
		return nil, fmt.Errorf("%w: status %q is not a dose event", errors.BadRequest, req.Status)
	}

	schedule, err := m.schedules.Get(ctx, userId, req.ScheduleId)
	if err != nil {
		return nil, err
	}

	log := &Log{
		UserId:        userId,
		ScheduleId:    schedule.Id,
		Medication:    schedule.Medication,
		ScheduledTime: req.ScheduledTime,
		EventTime:     time.Now(),
		Status:        req.Status,
		Notes:         req.Notes,
	}

	return m.logs.Create(ctx, log)
}

func (m *manager) ListLogs(ctx context.Context, userId string, filter *LogFilter, pagination store.Pagination) ([]*Log, error) {
	return m.logs.List(ctx, userId, filter, pagination)
}

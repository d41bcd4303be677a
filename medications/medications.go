package medications

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vitalog-org/vitalog/errors"
	"github.com/vitalog-org/vitalog/store"
)

var (
	ErrSuggestionNotFound = fmt.Errorf("suggestion %w", errors.NotFound)
	ErrScheduleNotFound   = fmt.Errorf("schedule %w", errors.NotFound)
	ErrAlreadyResponded   = fmt.Errorf("%w: suggestion is not pending", errors.InvalidState)
)

type SuggestionStatus string

const (
	StatusPending  SuggestionStatus = "pending"
	StatusAccepted SuggestionStatus = "accepted"
	StatusRejected SuggestionStatus = "rejected"
)

type ScheduleSource string

const (
	SourceDoctorSuggestion ScheduleSource = "doctor-suggestion"
	SourceManual           ScheduleSource = "manual"
)

type LogStatus string

const (
	LogStatusTaken    LogStatus = "taken"
	LogStatusMissed   LogStatus = "missed"
	LogStatusSkipped  LogStatus = "skipped"
	LogStatusAccepted LogStatus = "accepted"
	LogStatusRejected LogStatus = "rejected"
)

// IsDoseEvent reports whether the status describes a real world dose event
// as opposed to a suggestion response
func (s LogStatus) IsDoseEvent() bool {
	return s == LogStatusTaken || s == LogStatusMissed || s == LogStatusSkipped
}

// Suggestion is a clinician's proposal to start a medication. Its status
// transitions exactly once, from pending to accepted or rejected.
type Suggestion struct {
	Id            *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserId        string              `bson:"userId" json:"userId"`
	DoctorId      string              `bson:"doctorId" json:"doctorId"`
	Medication    string              `bson:"medication" json:"medication"`
	Dosage        string              `bson:"dosage" json:"dosage"`
	Frequency     string              `bson:"frequency" json:"frequency"`
	Duration      *string             `bson:"duration,omitempty" json:"duration,omitempty"`
	Instructions  *string             `bson:"instructions,omitempty" json:"instructions,omitempty"`
	Reason        *string             `bson:"reason,omitempty" json:"reason,omitempty"`
	Status        SuggestionStatus    `bson:"status" json:"status"`
	CreatedTime   time.Time           `bson:"createdTime" json:"createdTime"`
	RespondedTime *time.Time          `bson:"respondedTime,omitempty" json:"respondedTime,omitempty"`
}

// Schedule is an active instruction to take a medication. Schedules are
// deactivated when discontinued, never hard deleted.
type Schedule struct {
	Id           *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserId       string              `bson:"userId" json:"userId"`
	Medication   string              `bson:"medication" json:"medication"`
	Dosage       string              `bson:"dosage" json:"dosage"`
	Frequency    string              `bson:"frequency" json:"frequency"`
	Times        []string            `bson:"times" json:"times"`
	Source       ScheduleSource      `bson:"source" json:"source"`
	SuggestionId *primitive.ObjectID `bson:"suggestionId,omitempty" json:"suggestionId,omitempty"`
	Active       bool                `bson:"active" json:"active"`
	CreatedTime  time.Time           `bson:"createdTime" json:"createdTime"`
}

// Log is an append-only audit record, one entry per real world event
type Log struct {
	Id            *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserId        string              `bson:"userId" json:"userId"`
	ScheduleId    *primitive.ObjectID `bson:"scheduleId,omitempty" json:"scheduleId,omitempty"`
	SuggestionId  *primitive.ObjectID `bson:"suggestionId,omitempty" json:"suggestionId,omitempty"`
	Medication    string              `bson:"medication" json:"medication"`
	ScheduledTime *time.Time          `bson:"scheduledTime,omitempty" json:"scheduledTime,omitempty"`
	EventTime     time.Time           `bson:"eventTime" json:"eventTime"`
	Status        LogStatus           `bson:"status" json:"status"`
	Notes         *string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

type ProposeRequest struct {
	Medication   string  `json:"medication"`
	Dosage       string  `json:"dosage"`
	Frequency    string  `json:"frequency"`
	Duration     *string `json:"duration,omitempty"`
	Instructions *string `json:"instructions,omitempty"`
	Reason       *string `json:"reason,omitempty"`
}

type Action string

const (
	ActionAccept Action = "accept"
	ActionReject Action = "reject"
)

type RespondRequest struct {
	Action Action   `json:"action"`
	Times  []string `json:"scheduledTimes,omitempty"`
	Reason *string  `json:"reason,omitempty"`
	Notes  *string  `json:"notes,omitempty"`
}

// Response carries everything materialized by a suggestion response.
// Schedule and Log are only set on accept.
type Response struct {
	Suggestion *Suggestion `json:"suggestion"`
	Schedule   *Schedule   `json:"schedule,omitempty"`
	Log        *Log        `json:"log,omitempty"`
}

type ScheduleRequest struct {
	Medication string   `json:"medication"`
	Dosage     string   `json:"dosage"`
	Frequency  string   `json:"frequency"`
	Times      []string `json:"times,omitempty"`
}

type LogRequest struct {
	ScheduleId    string     `json:"scheduleId"`
	Status        LogStatus  `json:"status"`
	ScheduledTime *time.Time `json:"scheduledTime,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
}

type LogFilter struct {
	From *time.Time
	To   *time.Time
}

//go:generate go tool mockgen -source=./medications.go -destination=./test/mocks.go -package test

type SuggestionsRepository interface {
	Create(ctx context.Context, suggestion *Suggestion) (*Suggestion, error)
	Get(ctx context.Context, userId string, id string) (*Suggestion, error)
	ListPending(ctx context.Context, userId string) ([]*Suggestion, error)

	// UpdateStatusIfPending transitions the suggestion in a single
	// conditional write. It fails with ErrSuggestionNotFound when no
	// pending suggestion matches, so concurrent responders cannot both
	// observe pending.
	UpdateStatusIfPending(ctx context.Context, userId string, id string, status SuggestionStatus, respondedTime time.Time) (*Suggestion, error)

	// RevertToPending compensates a failed accept after the status write
	RevertToPending(ctx context.Context, userId string, id string) error
}

type SchedulesRepository interface {
	Create(ctx context.Context, schedule *Schedule) (*Schedule, error)
	Get(ctx context.Context, userId string, id string) (*Schedule, error)
	List(ctx context.Context, userId string, activeOnly bool, pagination store.Pagination) ([]*Schedule, error)
	Deactivate(ctx context.Context, userId string, id string) (*Schedule, error)

	// Delete removes a schedule outright. Only used to compensate a failed
	// accept, discontinued schedules are deactivated instead.
	Delete(ctx context.Context, userId string, id string) error
}

type LogsRepository interface {
	Create(ctx context.Context, log *Log) (*Log, error)
	List(ctx context.Context, userId string, filter *LogFilter, pagination store.Pagination) ([]*Log, error)
}

type Manager interface {
	Propose(ctx context.Context, doctorId string, userId string, req ProposeRequest) (*Suggestion, error)
	Respond(ctx context.Context, userId string, suggestionId string, req RespondRequest) (*Response, error)
	ListPending(ctx context.Context, userId string) ([]*Suggestion, error)

	CreateSchedule(ctx context.Context, userId string, req ScheduleRequest) (*Schedule, error)
	ListSchedules(ctx context.Context, userId string, activeOnly bool, pagination store.Pagination) ([]*Schedule, error)
	DeactivateSchedule(ctx context.Context, userId string, id string) (*Schedule, error)

	LogDose(ctx context.Context, userId string, req LogRequest) (*Log, error)
	ListLogs(ctx context.Context, userId string, filter *LogFilter, pagination store.Pagination) ([]*Log, error)
}

package insights

import (
	"context"
	goerrors "errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vitalog-org/vitalog/config"
	"github.com/vitalog-org/vitalog/measurements"
)

// Threshold rules are illustrative business rules, not medical advice
const (
	SystolicAlertThreshold  = float64(140)
	DiastolicAlertThreshold = float64(90)
	GlucoseAlertThreshold   = float64(180)
	HeartRateUpperThreshold = float64(100)
	HeartRateLowerThreshold = float64(60)

	// A trend insight is only emitted when the window holds at least this
	// many readings
	MinTrendReadings = 3
)

// Generator derives insights from new measurements. It runs after the
// measurement write has committed and its failures never propagate back
// to the write path.
type Generator struct {
	insights     Repository
	measurements measurements.Repository
	windowDays   int
	windowCount  int
	logger       *zap.SugaredLogger
}

var _ measurements.InsightReporter = &Generator{}

func NewGenerator(insights Repository, repo measurements.Repository, cfg *config.Config, logger *zap.SugaredLogger) (*Generator, error) {
	return &Generator{
		insights:     insights,
		measurements: repo,
		windowDays:   cfg.TrendWindowDays,
		windowCount:  cfg.TrendWindowCount,
		logger:       logger,
	}, nil
}

// OnMeasurementRecorded emits at most one trend insight and at most one
// threshold alert for the measurement. The two rules are evaluated
// independently.
func (g *Generator) OnMeasurementRecorded(ctx context.Context, measurement *measurements.Measurement) error {
	trendErr := g.generateTrendInsight(ctx, measurement)
	alertErr := g.generateThresholdAlert(ctx, measurement)
	return goerrors.Join(trendErr, alertErr)
}

func (g *Generator) generateTrendInsight(ctx context.Context, measurement *measurements.Measurement) error {
	to := measurement.Timestamp
	if now := time.Now(); now.After(to) {
		to = now
	}
	from := to.AddDate(0, 0, -g.windowDays)

	window, err := g.measurements.ListWindow(ctx, measurement.UserId, measurement.Type, from, to)
	if err != nil {
		return fmt.Errorf("error reading trend window: %w", err)
	}
	if len(window) > g.windowCount {
		window = window[len(window)-g.windowCount:]
	}
	if len(window) < MinTrendReadings {
		return nil
	}

	trend := measurements.ClassifyTrend(measurements.Values(window, measurements.DefaultStatsOptions()))
	if trend == measurements.TrendStable {
		return nil
	}

	severity := SeverityInfo
	if trend == measurements.TrendIncreasing && measurement.Type == measurements.TypeBloodPressure {
		severity = SeverityWarning
	}

	humanized := measurement.Type.Humanize()
	insight := &Insight{
		UserId:        measurement.UserId,
		Kind:          KindTrend,
		Title:         humanized + " Trend Alert",
		Message:       fmt.Sprintf("Your %s readings have been %s over your last %d measurements.", strings.ToLower(humanized), trend, len(window)),
		Severity:      severity,
		MetricType:    measurement.Type,
		GeneratedTime: time.Now(),
	}

	if _, err := g.insights.Create(ctx, insight); err != nil {
		return fmt.Errorf("error creating trend insight: %w", err)
	}
	return nil
}

func (g *Generator) generateThresholdAlert(ctx context.Context, measurement *measurements.Measurement) error {
	alert := ThresholdAlert(measurement)
	if alert == nil {
		return nil
	}

	if _, err := g.insights.Create(ctx, alert); err != nil {
		return fmt.Errorf("error creating threshold alert: %w", err)
	}
	return nil
}

// ThresholdAlert evaluates the per-type threshold rules against a single
// reading and returns the alert to emit, or nil when no rule triggers.
// Types without a rule are not an error.
func ThresholdAlert(measurement *measurements.Measurement) *Insight {
	var severity Severity
	var message string

	switch measurement.Type {
	case measurements.TypeBloodPressure:
		diastolic := measurement.Diastolic()
		if measurement.Value <= SystolicAlertThreshold && (diastolic == nil || *diastolic <= DiastolicAlertThreshold) {
			return nil
		}
		severity = SeverityWarning
		reading := fmt.Sprintf("%v", measurement.Value)
		if diastolic != nil {
			reading = fmt.Sprintf("%v/%v", measurement.Value, *diastolic)
		}
		message = fmt.Sprintf("Your latest blood pressure reading (%s %s) is above the recommended range.", reading, measurement.Unit)
	case measurements.TypeGlucose:
		if measurement.Value <= GlucoseAlertThreshold {
			return nil
		}
		severity = SeverityWarning
		message = fmt.Sprintf("Your latest glucose reading (%v %s) is above the recommended range.", measurement.Value, measurement.Unit)
	case measurements.TypeHeartRate:
		if measurement.Value >= HeartRateLowerThreshold && measurement.Value <= HeartRateUpperThreshold {
			return nil
		}
		severity = SeverityInfo
		position := "above"
		if measurement.Value < HeartRateLowerThreshold {
			position = "below"
		}
		message = fmt.Sprintf("Your latest heart rate reading (%v %s) is %s the typical resting range.", measurement.Value, measurement.Unit, position)
	default:
		return nil
	}

	return &Insight{
		UserId:        measurement.UserId,
		Kind:          KindAlert,
		Title:         measurement.Type.Humanize() + " Alert",
		Message:       message,
		Severity:      severity,
		MetricType:    measurement.Type,
		GeneratedTime: time.Now(),
	}
}

package measurements

import "math"

// TrendThresholdPercent is the percent change between the first and second
// half of a reading window below which the trend is considered stable
const TrendThresholdPercent = float64(5)

type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

type BloodPressureComponent string

const (
	ComponentSystolic  BloodPressureComponent = "systolic"
	ComponentDiastolic BloodPressureComponent = "diastolic"
)

// StatsOptions control which value of a composite reading feeds the
// analyzer. The source rules only ever looked at the systolic component
// of blood pressure readings, which remains the default.
type StatsOptions struct {
	Component BloodPressureComponent
}

func DefaultStatsOptions() StatsOptions {
	return StatsOptions{
		Component: ComponentSystolic,
	}
}

type Stats struct {
	Count   int      `json:"count"`
	Average *float64 `json:"average"`
	Min     *float64 `json:"min"`
	Max     *float64 `json:"max"`
	Trend   Trend    `json:"trend"`
}

// ComputeStats summarizes a reading sequence already filtered to a single
// user and type, ordered by time ascending. Pure function, no side effects.
func ComputeStats(readings []*Measurement, opts StatsOptions) Stats {
	values := Values(readings, opts)
	stats := Stats{
		Count: len(values),
		Trend: ClassifyTrend(values),
	}
	if len(values) == 0 {
		return stats
	}

	sum := float64(0)
	min := values[0]
	max := values[0]
	for _, value := range values {
		sum += value
		min = math.Min(min, value)
		max = math.Max(max, value)
	}
	average := sum / float64(len(values))

	stats.Average = &average
	stats.Min = &min
	stats.Max = &max
	return stats
}

// ClassifyTrend compares the mean of the first half of the sequence against
// the mean of the second half. Sequences shorter than two points are stable.
func ClassifyTrend(values []float64) Trend {
	if len(values) < 2 {
		return TrendStable
	}

	half := len(values) / 2
	firstMean := mean(values[:half])
	secondMean := mean(values[half:])
	if firstMean == 0 {
		return TrendStable
	}

	percentChange := (secondMean - firstMean) / firstMean * 100
	if math.Abs(percentChange) < TrendThresholdPercent {
		return TrendStable
	}
	if percentChange > 0 {
		return TrendIncreasing
	}
	return TrendDecreasing
}

// Values extracts the analyzable value of each reading. Blood pressure
// readings contribute the configured component; readings missing that
// component are skipped.
func Values(readings []*Measurement, opts StatsOptions) []float64 {
	values := make([]float64, 0, len(readings))
	for _, reading := range readings {
		if reading.Type == TypeBloodPressure && opts.Component == ComponentDiastolic {
			if diastolic := reading.Diastolic(); diastolic != nil {
				values = append(values, *diastolic)
			}
			continue
		}
		values = append(values, reading.Value)
	}
	return values
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := float64(0)
	for _, value := range values {
		sum += value
	}
	return sum / float64(len(values))
}

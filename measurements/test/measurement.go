package test

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vitalog-org/vitalog/measurements"
	"github.com/vitalog-org/vitalog/pointer"
	"github.com/vitalog-org/vitalog/test"
)

var sources = []measurements.MeasurementSource{
	measurements.SourceManual,
	measurements.SourceDevice,
	measurements.SourceApp,
}

func RandomUserId() string {
	return test.Faker.UUID().V4()
}

func RandomType() measurements.Type {
	return measurements.Types[test.Faker.IntBetween(0, len(measurements.Types)-1)]
}

func RandomMeasurement(userId string) measurements.Measurement {
	measurementType := RandomType()
	measurement := measurements.Measurement{
		UserId:    userId,
		Type:      measurementType,
		Value:     test.Faker.Float64(1, 40, 200),
		Unit:      "units",
		Timestamp: test.Faker.Time().TimeBetween(time.Now().AddDate(0, 0, -30), time.Now()),
		Source:    sources[test.Faker.IntBetween(0, len(sources)-1)],
	}
	if measurementType == measurements.TypeBloodPressure {
		measurement.Value = test.Faker.Float64(0, 90, 180)
		measurement.Metadata = map[string]interface{}{
			"diastolic": test.Faker.Float64(0, 50, 110),
		}
	}
	return measurement
}

func RandomRaw(measurementType measurements.Type, value float64) measurements.Raw {
	return measurements.Raw{
		Type:  string(measurementType),
		Value: &value,
	}
}

// MeasurementsOfType builds an ascending sequence of readings with the given
// values, one hour apart, newest last
func MeasurementsOfType(userId string, measurementType measurements.Type, values []float64) []*measurements.Measurement {
	readings := make([]*measurements.Measurement, len(values))
	start := time.Now().Add(-time.Duration(len(values)) * time.Hour)
	for i, value := range values {
		id := primitive.NewObjectID()
		readings[i] = &measurements.Measurement{
			Id:        &id,
			UserId:    userId,
			Type:      measurementType,
			Value:     value,
			Timestamp: start.Add(time.Duration(i) * time.Hour),
			Source:    measurements.SourceDevice,
		}
	}
	return readings
}

// BloodPressureReadings builds an ascending blood pressure sequence with the
// given systolic values and a fixed normal diastolic
func BloodPressureReadings(userId string, systolics []float64) []*measurements.Measurement {
	readings := MeasurementsOfType(userId, measurements.TypeBloodPressure, systolics)
	for _, reading := range readings {
		reading.Metadata = map[string]interface{}{
			"diastolic": float64(80),
		}
	}
	return readings
}

func Strp(s string) *string {
	return pointer.FromAny(s)
}

func Floatp(f float64) *float64 {
	return pointer.FromAny(f)
}

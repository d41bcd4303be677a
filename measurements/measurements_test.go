package measurements_test

import (
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gstruct"

	"github.com/vitalog-org/vitalog/errors"
	"github.com/vitalog-org/vitalog/measurements"
	measurementsTest "github.com/vitalog-org/vitalog/measurements/test"
	"github.com/vitalog-org/vitalog/pointer"
)

var _ = Describe("NewMeasurement", func() {
	var userId string

	BeforeEach(func() {
		userId = measurementsTest.RandomUserId()
	})

	It("builds a measurement from a minimal raw payload", func() {
		before := time.Now()
		measurement, err := measurements.NewMeasurement(userId, measurementsTest.RandomRaw(measurements.TypeGlucose, 110))

		Expect(err).ToNot(HaveOccurred())
		Expect(measurement.UserId).To(Equal(userId))
		Expect(measurement.Type).To(Equal(measurements.TypeGlucose))
		Expect(measurement.Value).To(BeNumerically("==", 110))
		Expect(measurement.Unit).To(Equal("mg/dL"))
		Expect(measurement.Source).To(Equal(measurements.SourceManual))
		Expect(measurement.Timestamp).To(BeTemporally(">=", before))
	})

	It("keeps the submitted unit, timestamp and source", func() {
		timestamp := time.Now().Add(-2 * time.Hour).Truncate(time.Millisecond)
		raw := measurementsTest.RandomRaw(measurements.TypeWeight, 82.5)
		raw.Unit = pointer.FromAny("lbs")
		raw.Timestamp = &timestamp
		raw.Source = pointer.FromAny("device")

		measurement, err := measurements.NewMeasurement(userId, raw)

		Expect(err).ToNot(HaveOccurred())
		Expect(measurement.Unit).To(Equal("lbs"))
		Expect(measurement.Timestamp).To(BeTemporally("==", timestamp))
		Expect(measurement.Source).To(Equal(measurements.SourceDevice))
	})

	It("rejects a missing user id", func() {
		_, err := measurements.NewMeasurement("", measurementsTest.RandomRaw(measurements.TypeGlucose, 110))
		Expect(err).To(MatchError(errors.BadRequest))
	})

	It("rejects an unknown type", func() {
		raw := measurements.Raw{Type: "cholesterol", Value: pointer.FromAny(float64(180))}
		_, err := measurements.NewMeasurement(userId, raw)
		Expect(err).To(MatchError(errors.BadRequest))
	})

	It("rejects a missing value", func() {
		raw := measurements.Raw{Type: string(measurements.TypeGlucose)}
		_, err := measurements.NewMeasurement(userId, raw)
		Expect(err).To(MatchError(errors.BadRequest))
	})

	It("rejects a non-finite value", func() {
		raw := measurementsTest.RandomRaw(measurements.TypeGlucose, math.NaN())
		_, err := measurements.NewMeasurement(userId, raw)
		Expect(err).To(MatchError(errors.BadRequest))
	})

	It("rejects an unknown source", func() {
		raw := measurementsTest.RandomRaw(measurements.TypeGlucose, 110)
		raw.Source = pointer.FromAny("clipboard")
		_, err := measurements.NewMeasurement(userId, raw)
		Expect(err).To(MatchError(errors.BadRequest))
	})

	It("rejects an out of range systolic value instead of clamping it", func() {
		raw := measurementsTest.RandomRaw(measurements.TypeBloodPressure, 320)
		_, err := measurements.NewMeasurement(userId, raw)
		Expect(err).To(MatchError(errors.BadRequest))
	})

	It("rejects an out of range diastolic value instead of clamping it", func() {
		raw := measurementsTest.RandomRaw(measurements.TypeBloodPressure, 120)
		raw.Metadata = map[string]interface{}{"diastolic": float64(220)}
		_, err := measurements.NewMeasurement(userId, raw)
		Expect(err).To(MatchError(errors.BadRequest))
	})

	It("accepts a blood pressure reading without a diastolic component", func() {
		measurement, err := measurements.NewMeasurement(userId, measurementsTest.RandomRaw(measurements.TypeBloodPressure, 120))
		Expect(err).ToNot(HaveOccurred())
		Expect(measurement.Diastolic()).To(BeNil())
	})
})

var _ = Describe("Measurement", func() {
	Describe("Diastolic", func() {
		It("handles integer metadata values", func() {
			measurement := &measurements.Measurement{
				Type:     measurements.TypeBloodPressure,
				Metadata: map[string]interface{}{"diastolic": int32(85)},
			}
			Expect(measurement.Diastolic()).To(gstruct.PointTo(BeNumerically("==", 85)))
		})

		It("returns nil for non-numeric metadata values", func() {
			measurement := &measurements.Measurement{
				Type:     measurements.TypeBloodPressure,
				Metadata: map[string]interface{}{"diastolic": "85"},
			}
			Expect(measurement.Diastolic()).To(BeNil())
		})
	})

	Describe("Humanize", func() {
		It("capitalizes each word of the type", func() {
			Expect(measurements.TypeBloodPressure.Humanize()).To(Equal("Blood Pressure"))
			Expect(measurements.TypeGlucose.Humanize()).To(Equal("Glucose"))
		})
	})
})

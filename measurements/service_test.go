package measurements_test

import (
	"context"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/vitalog-org/vitalog/errors"
	"github.com/vitalog-org/vitalog/measurements"
	measurementsTest "github.com/vitalog-org/vitalog/measurements/test"
	"github.com/vitalog-org/vitalog/test"
)

var _ = Describe("Measurements Service", func() {
	var ctrl *gomock.Controller
	var repo *measurementsTest.MockRepository
	var reporter *measurementsTest.MockInsightReporter
	var service measurements.Service
	var userId string

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		repo = measurementsTest.NewMockRepository(ctrl)
		reporter = measurementsTest.NewMockInsightReporter(ctrl)
		userId = measurementsTest.RandomUserId()

		var err error
		service, err = measurements.NewService(repo, reporter, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	returnCreated := func(ctx context.Context, measurement *measurements.Measurement) (*measurements.Measurement, error) {
		id := primitive.NewObjectID()
		created := *measurement
		created.Id = &id
		return &created, nil
	}

	Describe("Record", func() {
		It("persists the measurement and reports it for insight generation", func() {
			repo.EXPECT().
				Create(gomock.Any(), test.Match(func(m *measurements.Measurement) bool {
					return m.UserId == userId && m.Type == measurements.TypeGlucose
				})).
				DoAndReturn(returnCreated)
			reporter.EXPECT().
				OnMeasurementRecorded(gomock.Any(), test.Match(func(m *measurements.Measurement) bool {
					return m.Id != nil
				})).
				Return(nil)

			created, err := service.Record(context.Background(), userId, measurementsTest.RandomRaw(measurements.TypeGlucose, 110))
			Expect(err).ToNot(HaveOccurred())
			Expect(created.Id).ToNot(BeNil())
		})

		It("succeeds even when insight generation fails", func() {
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(returnCreated)
			reporter.EXPECT().
				OnMeasurementRecorded(gomock.Any(), gomock.Any()).
				Return(fmt.Errorf("insights are unavailable"))

			created, err := service.Record(context.Background(), userId, measurementsTest.RandomRaw(measurements.TypeHeartRate, 72))
			Expect(err).ToNot(HaveOccurred())
			Expect(created).ToNot(BeNil())
		})

		It("doesn't touch the repository when validation fails", func() {
			_, err := service.Record(context.Background(), userId, measurements.Raw{Type: "cholesterol"})
			Expect(err).To(MatchError(errors.BadRequest))
		})
	})

	Describe("RecordBatch", func() {
		It("persists valid items and reports invalid ones with their index", func() {
			items := []measurements.Raw{
				measurementsTest.RandomRaw(measurements.TypeGlucose, 110),
				{Type: "cholesterol", Value: measurementsTest.Floatp(180)},
				measurementsTest.RandomRaw(measurements.TypeHeartRate, 72),
			}
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(returnCreated).Times(2)
			reporter.EXPECT().OnMeasurementRecorded(gomock.Any(), gomock.Any()).Return(nil).Times(2)

			result, err := service.RecordBatch(context.Background(), userId, items)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Saved).To(HaveLen(2))
			Expect(result.Errors).To(HaveLen(1))
			Expect(result.Errors[0].Index).To(Equal(1))
			Expect(result.Errors[0].Error).ToNot(BeEmpty())
		})

		It("reports persistence failures without aborting the rest of the batch", func() {
			items := []measurements.Raw{
				measurementsTest.RandomRaw(measurements.TypeGlucose, 110),
				measurementsTest.RandomRaw(measurements.TypeGlucose, 115),
			}
			gomock.InOrder(
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("write failed")),
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(returnCreated),
			)
			reporter.EXPECT().OnMeasurementRecorded(gomock.Any(), gomock.Any()).Return(nil)

			result, err := service.RecordBatch(context.Background(), userId, items)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Saved).To(HaveLen(1))
			Expect(result.Errors).To(HaveLen(1))
			Expect(result.Errors[0].Index).To(Equal(0))
		})

		It("returns an empty result for an empty batch", func() {
			result, err := service.RecordBatch(context.Background(), userId, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Saved).To(BeEmpty())
			Expect(result.Errors).To(BeEmpty())
		})
	})

	Describe("GetStats", func() {
		It("reads the requested window and summarizes it", func() {
			readings := measurementsTest.MeasurementsOfType(userId, measurements.TypeGlucose, []float64{100, 102, 110, 112})
			repo.EXPECT().
				ListWindow(gomock.Any(), userId, measurements.TypeGlucose, gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, userId string, measurementType measurements.Type, from time.Time, to time.Time) ([]*measurements.Measurement, error) {
					Expect(to.Sub(from)).To(BeNumerically("~", 7*24*time.Hour, time.Minute))
					return readings, nil
				})

			stats, err := service.GetStats(context.Background(), userId, measurements.TypeGlucose, 7)
			Expect(err).ToNot(HaveOccurred())
			Expect(stats.Count).To(Equal(4))
			Expect(stats.Trend).To(Equal(measurements.TrendIncreasing))
		})

		It("defaults the window when not specified", func() {
			repo.EXPECT().
				ListWindow(gomock.Any(), userId, measurements.TypeWeight, gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, userId string, measurementType measurements.Type, from time.Time, to time.Time) ([]*measurements.Measurement, error) {
					Expect(to.Sub(from)).To(BeNumerically("~", 30*24*time.Hour, time.Minute))
					return nil, nil
				})

			stats, err := service.GetStats(context.Background(), userId, measurements.TypeWeight, 0)
			Expect(err).ToNot(HaveOccurred())
			Expect(stats.Count).To(Equal(0))
		})

		It("rejects an unknown type", func() {
			_, err := service.GetStats(context.Background(), userId, "cholesterol", 7)
			Expect(err).To(MatchError(errors.BadRequest))
		})
	})

	Describe("LatestByType", func() {
		It("rejects unknown types before hitting the repository", func() {
			_, err := service.LatestByType(context.Background(), userId, []measurements.Type{measurements.TypeGlucose, "cholesterol"})
			Expect(err).To(MatchError(errors.BadRequest))
		})
	})
})

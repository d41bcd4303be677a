package insights_test

import (
	"context"
	"fmt"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/vitalog-org/vitalog/config"
	"github.com/vitalog-org/vitalog/insights"
	insightsTest "github.com/vitalog-org/vitalog/insights/test"
	"github.com/vitalog-org/vitalog/measurements"
	measurementsTest "github.com/vitalog-org/vitalog/measurements/test"
	"github.com/vitalog-org/vitalog/test"
)

var _ = Describe("Generator", func() {
	var ctrl *gomock.Controller
	var insightsRepo *insightsTest.MockRepository
	var measurementsRepo *measurementsTest.MockRepository
	var generator *insights.Generator
	var userId string

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		insightsRepo = insightsTest.NewMockRepository(ctrl)
		measurementsRepo = measurementsTest.NewMockRepository(ctrl)
		userId = insightsTest.RandomUserId()

		cfg := &config.Config{
			TrendWindowDays:  7,
			TrendWindowCount: 5,
		}
		var err error
		generator, err = insights.NewGenerator(insightsRepo, measurementsRepo, cfg, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	recorded := func(measurementType measurements.Type, value float64) *measurements.Measurement {
		id := primitive.NewObjectID()
		return &measurements.Measurement{
			Id:        &id,
			UserId:    userId,
			Type:      measurementType,
			Value:     value,
			Unit:      "mg/dL",
			Timestamp: time.Now(),
			Source:    measurements.SourceDevice,
		}
	}

	returnCreated := func(ctx context.Context, insight *insights.Insight) (*insights.Insight, error) {
		id := primitive.NewObjectID()
		created := *insight
		created.Id = &id
		return &created, nil
	}

	It("emits a warning alert for out of range glucose", func() {
		measurement := recorded(measurements.TypeGlucose, 190)
		measurementsRepo.EXPECT().
			ListWindow(gomock.Any(), userId, measurements.TypeGlucose, gomock.Any(), gomock.Any()).
			Return(nil, nil)
		insightsRepo.EXPECT().
			Create(gomock.Any(), test.Match(func(insight *insights.Insight) bool {
				return insight.Kind == insights.KindAlert &&
					insight.Severity == insights.SeverityWarning &&
					insight.MetricType == measurements.TypeGlucose
			})).
			DoAndReturn(returnCreated)

		Expect(generator.OnMeasurementRecorded(context.Background(), measurement)).To(Succeed())
	})

	It("emits nothing for glucose within range", func() {
		measurement := recorded(measurements.TypeGlucose, 150)
		measurementsRepo.EXPECT().
			ListWindow(gomock.Any(), userId, measurements.TypeGlucose, gomock.Any(), gomock.Any()).
			Return(nil, nil)

		Expect(generator.OnMeasurementRecorded(context.Background(), measurement)).To(Succeed())
	})

	It("emits a warning trend insight for increasing blood pressure", func() {
		measurement := recorded(measurements.TypeBloodPressure, 138)
		window := measurementsTest.BloodPressureReadings(userId, []float64{110, 112, 130, 134, 138})
		measurementsRepo.EXPECT().
			ListWindow(gomock.Any(), userId, measurements.TypeBloodPressure, gomock.Any(), gomock.Any()).
			Return(window, nil)
		insightsRepo.EXPECT().
			Create(gomock.Any(), test.Match(func(insight *insights.Insight) bool {
				return insight.Kind == insights.KindTrend &&
					insight.Severity == insights.SeverityWarning &&
					strings.Contains(insight.Message, "increasing")
			})).
			DoAndReturn(returnCreated)

		Expect(generator.OnMeasurementRecorded(context.Background(), measurement)).To(Succeed())
	})

	It("emits an info trend insight for decreasing weight", func() {
		measurement := recorded(measurements.TypeWeight, 80)
		window := measurementsTest.MeasurementsOfType(userId, measurements.TypeWeight, []float64{90, 88, 84, 82, 80})
		measurementsRepo.EXPECT().
			ListWindow(gomock.Any(), userId, measurements.TypeWeight, gomock.Any(), gomock.Any()).
			Return(window, nil)
		insightsRepo.EXPECT().
			Create(gomock.Any(), test.Match(func(insight *insights.Insight) bool {
				return insight.Kind == insights.KindTrend &&
					insight.Severity == insights.SeverityInfo &&
					strings.Contains(insight.Message, "decreasing")
			})).
			DoAndReturn(returnCreated)

		Expect(generator.OnMeasurementRecorded(context.Background(), measurement)).To(Succeed())
	})

	It("emits no trend insight for fewer than three readings", func() {
		measurement := recorded(measurements.TypeWeight, 80)
		window := measurementsTest.MeasurementsOfType(userId, measurements.TypeWeight, []float64{90, 80})
		measurementsRepo.EXPECT().
			ListWindow(gomock.Any(), userId, measurements.TypeWeight, gomock.Any(), gomock.Any()).
			Return(window, nil)

		Expect(generator.OnMeasurementRecorded(context.Background(), measurement)).To(Succeed())
	})

	It("emits no trend insight for stable readings", func() {
		measurement := recorded(measurements.TypeWeight, 80)
		window := measurementsTest.MeasurementsOfType(userId, measurements.TypeWeight, []float64{80, 81, 80, 80, 81})
		measurementsRepo.EXPECT().
			ListWindow(gomock.Any(), userId, measurements.TypeWeight, gomock.Any(), gomock.Any()).
			Return(window, nil)

		Expect(generator.OnMeasurementRecorded(context.Background(), measurement)).To(Succeed())
	})

	It("analyzes only the newest readings of an oversized window", func() {
		measurement := recorded(measurements.TypeGlucose, 112)
		window := measurementsTest.MeasurementsOfType(userId, measurements.TypeGlucose, []float64{100, 100, 100, 100, 100, 110, 112})
		measurementsRepo.EXPECT().
			ListWindow(gomock.Any(), userId, measurements.TypeGlucose, gomock.Any(), gomock.Any()).
			Return(window, nil)
		insightsRepo.EXPECT().
			Create(gomock.Any(), test.Match(func(insight *insights.Insight) bool {
				return insight.Kind == insights.KindTrend &&
					strings.Contains(insight.Message, "your last 5 measurements")
			})).
			DoAndReturn(returnCreated)

		Expect(generator.OnMeasurementRecorded(context.Background(), measurement)).To(Succeed())
	})

	It("still evaluates threshold rules when the trend window read fails", func() {
		measurement := recorded(measurements.TypeGlucose, 190)
		measurementsRepo.EXPECT().
			ListWindow(gomock.Any(), userId, measurements.TypeGlucose, gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("connection reset"))
		insightsRepo.EXPECT().
			Create(gomock.Any(), test.Match(func(insight *insights.Insight) bool {
				return insight.Kind == insights.KindAlert
			})).
			DoAndReturn(returnCreated)

		err := generator.OnMeasurementRecorded(context.Background(), measurement)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("ThresholdAlert", func() {
	measurement := func(measurementType measurements.Type, value float64, metadata map[string]interface{}) *measurements.Measurement {
		return &measurements.Measurement{
			UserId:   "user",
			Type:     measurementType,
			Value:    value,
			Unit:     "units",
			Metadata: metadata,
		}
	}

	It("triggers on high systolic blood pressure", func() {
		alert := insights.ThresholdAlert(measurement(measurements.TypeBloodPressure, 150, map[string]interface{}{"diastolic": float64(85)}))
		Expect(alert).ToNot(BeNil())
		Expect(alert.Severity).To(Equal(insights.SeverityWarning))
		Expect(alert.Message).To(ContainSubstring("150/85"))
	})

	It("triggers on high diastolic blood pressure alone", func() {
		alert := insights.ThresholdAlert(measurement(measurements.TypeBloodPressure, 120, map[string]interface{}{"diastolic": float64(95)}))
		Expect(alert).ToNot(BeNil())
		Expect(alert.Severity).To(Equal(insights.SeverityWarning))
	})

	It("doesn't trigger on normal blood pressure", func() {
		alert := insights.ThresholdAlert(measurement(measurements.TypeBloodPressure, 120, map[string]interface{}{"diastolic": float64(80)}))
		Expect(alert).To(BeNil())
	})

	It("triggers an info alert on low heart rate", func() {
		alert := insights.ThresholdAlert(measurement(measurements.TypeHeartRate, 52, nil))
		Expect(alert).ToNot(BeNil())
		Expect(alert.Severity).To(Equal(insights.SeverityInfo))
		Expect(alert.Message).To(ContainSubstring("below"))
	})

	It("triggers an info alert on high heart rate", func() {
		alert := insights.ThresholdAlert(measurement(measurements.TypeHeartRate, 110, nil))
		Expect(alert).ToNot(BeNil())
		Expect(alert.Message).To(ContainSubstring("above"))
	})

	It("doesn't trigger on types without threshold rules", func() {
		alert := insights.ThresholdAlert(measurement(measurements.TypeSteps, 100000, nil))
		Expect(alert).To(BeNil())
	})

	It("treats threshold values as within range", func() {
		Expect(insights.ThresholdAlert(measurement(measurements.TypeGlucose, 180, nil))).To(BeNil())
		Expect(insights.ThresholdAlert(measurement(measurements.TypeHeartRate, 100, nil))).To(BeNil())
		Expect(insights.ThresholdAlert(measurement(measurements.TypeHeartRate, 60, nil))).To(BeNil())
	})
})

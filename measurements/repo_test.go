package measurements_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/vitalog-org/vitalog/measurements"
	measurementsTest "github.com/vitalog-org/vitalog/measurements/test"
	"github.com/vitalog-org/vitalog/store"
	dbTest "github.com/vitalog-org/vitalog/store/test"
)

var _ = Describe("Measurements Repository", func() {
	var repo measurements.Repository
	var collection *mongo.Collection
	var userId string

	BeforeEach(func() {
		database := dbTest.GetTestDatabase()
		collection = database.Collection(measurements.CollectionName)
		userId = measurementsTest.RandomUserId()

		var err error
		lifecycle := fxtest.NewLifecycle(GinkgoT())
		repo, err = measurements.NewRepository(database, zap.NewNop().Sugar(), lifecycle)
		Expect(err).ToNot(HaveOccurred())
		Expect(repo).ToNot(BeNil())
		lifecycle.RequireStart()
	})

	AfterEach(func() {
		_, err := collection.DeleteMany(nil, primitive.M{"userId": userId})
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("Create", func() {
		It("returns the persisted measurement", func() {
			measurement := measurementsTest.RandomMeasurement(userId)
			created, err := repo.Create(nil, &measurement)

			Expect(err).ToNot(HaveOccurred())
			Expect(created.Id).ToNot(BeNil())
			Expect(created.UserId).To(Equal(userId))
			Expect(created.Type).To(Equal(measurement.Type))
			Expect(created.Value).To(BeNumerically("==", measurement.Value))
		})
	})

	Describe("Get", func() {
		var created *measurements.Measurement

		BeforeEach(func() {
			measurement := measurementsTest.RandomMeasurement(userId)
			var err error
			created, err = repo.Create(nil, &measurement)
			Expect(err).ToNot(HaveOccurred())
		})

		It("returns the measurement by id", func() {
			found, err := repo.Get(nil, userId, created.Id.Hex())
			Expect(err).ToNot(HaveOccurred())
			Expect(found.Id).To(Equal(created.Id))
		})

		It("doesn't return another user's measurement", func() {
			_, err := repo.Get(nil, measurementsTest.RandomUserId(), created.Id.Hex())
			Expect(err).To(MatchError(measurements.ErrNotFound))
		})

		It("returns not found for a malformed id", func() {
			_, err := repo.Get(nil, userId, "not-an-object-id")
			Expect(err).To(MatchError(measurements.ErrNotFound))
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			for _, value := range []float64{100, 110, 120} {
				measurement := measurementsTest.RandomMeasurement(userId)
				measurement.Type = measurements.TypeGlucose
				measurement.Value = value
				measurement.Metadata = nil
				_, err := repo.Create(nil, &measurement)
				Expect(err).ToNot(HaveOccurred())
			}
			heartRate := measurementsTest.RandomMeasurement(userId)
			heartRate.Type = measurements.TypeHeartRate
			heartRate.Metadata = nil
			_, err := repo.Create(nil, &heartRate)
			Expect(err).ToNot(HaveOccurred())
		})

		It("returns all measurements of the user newest first", func() {
			list, err := repo.List(nil, userId, nil, store.DefaultPagination())
			Expect(err).ToNot(HaveOccurred())
			Expect(list).To(HaveLen(4))
			for i := 1; i < len(list); i++ {
				Expect(list[i].Timestamp).To(BeTemporally("<=", list[i-1].Timestamp))
			}
		})

		It("filters by type", func() {
			measurementType := measurements.TypeGlucose
			list, err := repo.List(nil, userId, &measurements.Filter{Type: &measurementType}, store.DefaultPagination())
			Expect(err).ToNot(HaveOccurred())
			Expect(list).To(HaveLen(3))
		})

		It("respects the pagination limit", func() {
			list, err := repo.List(nil, userId, nil, store.DefaultPagination().WithLimit(2))
			Expect(err).ToNot(HaveOccurred())
			Expect(list).To(HaveLen(2))
		})
	})

	Describe("ListWindow", func() {
		BeforeEach(func() {
			for _, reading := range measurementsTest.MeasurementsOfType(userId, measurements.TypeGlucose, []float64{100, 105, 110}) {
				reading.Id = nil
				_, err := repo.Create(nil, reading)
				Expect(err).ToNot(HaveOccurred())
			}
		})

		It("returns readings of the window oldest first", func() {
			window, err := repo.ListWindow(nil, userId, measurements.TypeGlucose, time.Now().AddDate(0, 0, -1), time.Now())
			Expect(err).ToNot(HaveOccurred())
			Expect(window).To(HaveLen(3))
			Expect(window[0].Value).To(BeNumerically("==", 100))
			Expect(window[2].Value).To(BeNumerically("==", 110))
		})

		It("excludes readings outside of the window", func() {
			window, err := repo.ListWindow(nil, userId, measurements.TypeGlucose, time.Now().Add(-time.Minute), time.Now())
			Expect(err).ToNot(HaveOccurred())
			Expect(window).To(BeEmpty())
		})
	})

	Describe("LatestByType", func() {
		BeforeEach(func() {
			for _, reading := range measurementsTest.MeasurementsOfType(userId, measurements.TypeGlucose, []float64{100, 105, 110}) {
				reading.Id = nil
				_, err := repo.Create(nil, reading)
				Expect(err).ToNot(HaveOccurred())
			}
			for _, reading := range measurementsTest.MeasurementsOfType(userId, measurements.TypeHeartRate, []float64{70, 72}) {
				reading.Id = nil
				_, err := repo.Create(nil, reading)
				Expect(err).ToNot(HaveOccurred())
			}
		})

		It("returns the newest reading of each requested type", func() {
			latest, err := repo.LatestByType(nil, userId, []measurements.Type{measurements.TypeGlucose, measurements.TypeHeartRate})
			Expect(err).ToNot(HaveOccurred())
			Expect(latest).To(HaveLen(2))
			Expect(latest[measurements.TypeGlucose].Value).To(BeNumerically("==", 110))
			Expect(latest[measurements.TypeHeartRate].Value).To(BeNumerically("==", 72))
		})

		It("omits types without readings", func() {
			latest, err := repo.LatestByType(nil, userId, []measurements.Type{measurements.TypeWeight})
			Expect(err).ToNot(HaveOccurred())
			Expect(latest).To(BeEmpty())
		})
	})

	Describe("Delete", func() {
		var created *measurements.Measurement

		BeforeEach(func() {
			measurement := measurementsTest.RandomMeasurement(userId)
			var err error
			created, err = repo.Create(nil, &measurement)
			Expect(err).ToNot(HaveOccurred())
		})

		It("removes the measurement", func() {
			Expect(repo.Delete(nil, userId, created.Id.Hex())).To(Succeed())
			_, err := repo.Get(nil, userId, created.Id.Hex())
			Expect(err).To(MatchError(measurements.ErrNotFound))
		})

		It("doesn't remove another user's measurement", func() {
			err := repo.Delete(nil, measurementsTest.RandomUserId(), created.Id.Hex())
			Expect(err).To(MatchError(measurements.ErrNotFound))
		})
	})
})

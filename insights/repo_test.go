package insights_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/vitalog-org/vitalog/insights"
	insightsTest "github.com/vitalog-org/vitalog/insights/test"
	"github.com/vitalog-org/vitalog/store"
	dbTest "github.com/vitalog-org/vitalog/store/test"
)

var _ = Describe("Insights Repository", func() {
	var repo insights.Repository
	var collection *mongo.Collection
	var userId string

	BeforeEach(func() {
		database := dbTest.GetTestDatabase()
		collection = database.Collection(insights.CollectionName)
		userId = insightsTest.RandomUserId()

		var err error
		lifecycle := fxtest.NewLifecycle(GinkgoT())
		repo, err = insights.NewRepository(database, zap.NewNop().Sugar(), lifecycle)
		Expect(err).ToNot(HaveOccurred())
		lifecycle.RequireStart()
	})

	AfterEach(func() {
		_, err := collection.DeleteMany(nil, primitive.M{"userId": userId})
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("Create", func() {
		It("returns the persisted insight as unread", func() {
			insight := insightsTest.RandomInsight(userId)
			created, err := repo.Create(nil, &insight)

			Expect(err).ToNot(HaveOccurred())
			Expect(created.Id).ToNot(BeNil())
			Expect(created.Read).To(BeFalse())
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			for i := 0; i < 3; i++ {
				insight := insightsTest.RandomInsight(userId)
				insight.Kind = insights.KindTrend
				_, err := repo.Create(nil, &insight)
				Expect(err).ToNot(HaveOccurred())
			}
			alert := insightsTest.RandomInsight(userId)
			alert.Kind = insights.KindAlert
			created, err := repo.Create(nil, &alert)
			Expect(err).ToNot(HaveOccurred())
			_, err = repo.MarkRead(nil, userId, created.Id.Hex())
			Expect(err).ToNot(HaveOccurred())
		})

		It("returns all insights of the user newest first", func() {
			list, err := repo.List(nil, userId, nil, store.DefaultPagination())
			Expect(err).ToNot(HaveOccurred())
			Expect(list).To(HaveLen(4))
			for i := 1; i < len(list); i++ {
				Expect(list[i].GeneratedTime).To(BeTemporally("<=", list[i-1].GeneratedTime))
			}
		})

		It("filters by kind", func() {
			kind := insights.KindAlert
			list, err := repo.List(nil, userId, &insights.Filter{Kind: &kind}, store.DefaultPagination())
			Expect(err).ToNot(HaveOccurred())
			Expect(list).To(HaveLen(1))
		})

		It("filters unread insights", func() {
			list, err := repo.List(nil, userId, &insights.Filter{UnreadOnly: true}, store.DefaultPagination())
			Expect(err).ToNot(HaveOccurred())
			Expect(list).To(HaveLen(3))
		})
	})

	Describe("MarkRead", func() {
		var created *insights.Insight

		BeforeEach(func() {
			insight := insightsTest.RandomInsight(userId)
			var err error
			created, err = repo.Create(nil, &insight)
			Expect(err).ToNot(HaveOccurred())
		})

		It("flips the read flag", func() {
			updated, err := repo.MarkRead(nil, userId, created.Id.Hex())
			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Read).To(BeTrue())
		})

		It("doesn't mark another user's insight", func() {
			_, err := repo.MarkRead(nil, insightsTest.RandomUserId(), created.Id.Hex())
			Expect(err).To(MatchError(insights.ErrNotFound))
		})
	})
})

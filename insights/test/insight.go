package test

import (
	"time"

	"github.com/vitalog-org/vitalog/insights"
	"github.com/vitalog-org/vitalog/measurements"
	"github.com/vitalog-org/vitalog/test"
)

var kinds = []insights.Kind{
	insights.KindTrend,
	insights.KindAlert,
	insights.KindRecommendation,
	insights.KindAchievement,
}

func RandomUserId() string {
	return test.Faker.UUID().V4()
}

func RandomInsight(userId string) insights.Insight {
	return insights.Insight{
		UserId:        userId,
		Kind:          kinds[test.Faker.IntBetween(0, len(kinds)-1)],
		Title:         test.Faker.Lorem().Sentence(3),
		Message:       test.Faker.Lorem().Sentence(8),
		Severity:      insights.SeverityInfo,
		MetricType:    measurements.TypeGlucose,
		GeneratedTime: test.Faker.Time().TimeBetween(time.Now().AddDate(0, 0, -7), time.Now()),
	}
}

package test

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vitalog-org/vitalog/medications"
	"github.com/vitalog-org/vitalog/pointer"
	"github.com/vitalog-org/vitalog/test"
)

var frequencies = []string{
	"once daily",
	"twice daily",
	"every 8 hours",
	"as needed",
}

func RandomUserId() string {
	return test.Faker.UUID().V4()
}

func RandomProposeRequest() medications.ProposeRequest {
	return medications.ProposeRequest{
		Medication: test.Faker.Lorem().Word(),
		Dosage:     "10mg",
		Frequency:  frequencies[test.Faker.IntBetween(0, len(frequencies)-1)],
		Reason:     pointer.FromAny(test.Faker.Lorem().Sentence(5)),
	}
}

func RandomSuggestion(userId string) medications.Suggestion {
	req := RandomProposeRequest()
	return medications.Suggestion{
		UserId:      userId,
		DoctorId:    test.Faker.UUID().V4(),
		Medication:  req.Medication,
		Dosage:      req.Dosage,
		Frequency:   req.Frequency,
		Reason:      req.Reason,
		Status:      medications.StatusPending,
		CreatedTime: time.Now(),
	}
}

func RandomSchedule(userId string) medications.Schedule {
	return medications.Schedule{
		UserId:      userId,
		Medication:  test.Faker.Lorem().Word(),
		Dosage:      "5mg",
		Frequency:   "once daily",
		Times:       []string{"09:00"},
		Source:      medications.SourceManual,
		Active:      true,
		CreatedTime: time.Now(),
	}
}

func ScheduleFromSuggestion(suggestion *medications.Suggestion) medications.Schedule {
	schedule := RandomSchedule(suggestion.UserId)
	schedule.Medication = suggestion.Medication
	schedule.Dosage = suggestion.Dosage
	schedule.Frequency = suggestion.Frequency
	schedule.Source = medications.SourceDoctorSuggestion
	schedule.SuggestionId = suggestion.Id
	return schedule
}

func RandomLog(userId string, scheduleId *primitive.ObjectID) medications.Log {
	return medications.Log{
		UserId:     userId,
		ScheduleId: scheduleId,
		Medication: test.Faker.Lorem().Word(),
		EventTime:  test.Faker.Time().TimeBetween(time.Now().AddDate(0, 0, -7), time.Now()),
		Status:     medications.LogStatusTaken,
	}
}

func Strp(s string) *string {
	return pointer.FromAny(s)
}

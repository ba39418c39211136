package mongo

import (
	"reflect"
	"testing"
	"time"

	"exercisetracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildExerciseQuery_UserOnly(t *testing.T) {
	userID := primitive.NewObjectID()

	got := buildExerciseQuery(repository.ExerciseFilter{UserID: userID})

	want := bson.M{"userId": userID}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("query: got %v, want %v", got, want)
	}
	if _, ok := got["date"]; ok {
		t.Error("no date clause expected without bounds")
	}
}

func TestBuildExerciseQuery_BothBounds(t *testing.T) {
	userID := primitive.NewObjectID()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	got := buildExerciseQuery(repository.ExerciseFilter{UserID: userID, From: &from, To: &to})

	want := bson.M{
		"userId": userID,
		"date":   bson.M{"$gte": from, "$lte": to},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("query: got %v, want %v", got, want)
	}
}

func TestBuildExerciseQuery_SingleBound(t *testing.T) {
	userID := primitive.NewObjectID()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	got := buildExerciseQuery(repository.ExerciseFilter{UserID: userID, From: &from})

	want := bson.M{
		"userId": userID,
		"date":   bson.M{"$gte": from},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("query: got %v, want %v", got, want)
	}
}

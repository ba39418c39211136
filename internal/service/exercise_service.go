package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"exercisetracker/internal/domain"
	"exercisetracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogQuery carries the raw, unvalidated query parameters of a log request.
// Parsing is tolerant: a value that cannot be parsed contributes no filter
// refinement and causes no error.
type LogQuery struct {
	From  string
	To    string
	Limit string
}

// Log is the result of a log query: the resolved user plus their matching
// exercises in ascending date order.
type Log struct {
	User      *domain.User
	Exercises []domain.Exercise
}

// --- Service Interface ---
type ExerciseService interface {
	AddExercise(ctx context.Context, userID primitive.ObjectID, description, duration, date string) (*domain.User, *domain.Exercise, error)
	GetLog(ctx context.Context, userID primitive.ObjectID, query LogQuery) (*Log, error)
}

// --- Service Implementation ---

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
	now          func() time.Time
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(userRepo repository.UserRepository, exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// AddExercise attaches a new exercise to an existing user.
//
// The user is resolved before any field validation, so an unknown user id
// yields ErrUserNotFound even when the fields are also invalid. The duration
// arrives as a raw string and must coerce to a number; the date is parsed
// best-effort with the current date substituted silently on failure.
func (s *exerciseService) AddExercise(ctx context.Context, userID primitive.ObjectID, description, duration, date string) (*domain.User, *domain.Exercise, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	if description == "" || duration == "" {
		return nil, nil, fmt.Errorf("%w: description and duration are required", ErrValidationFailed)
	}

	durationNum, err := strconv.ParseFloat(strings.TrimSpace(duration), 64)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: duration must be a number", ErrValidationFailed)
	}

	when, ok := domain.ParseDate(date)
	if !ok {
		when = s.now()
	}

	exercise := &domain.Exercise{
		UserID:      user.ID,
		Description: description,
		Duration:    durationNum,
		Date:        when,
	}

	exerciseID, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, nil, err
	}
	exercise.ID = exerciseID

	return user, exercise, nil
}

// GetLog resolves the user and returns their filtered, sorted exercise log.
//
// This is the only operation with interacting optional parameters. The rules:
// from/to refine the date range (inclusive) only when they parse; limit caps
// the result only when it parses as a positive integer; everything that does
// not parse is ignored without error.
func (s *exerciseService) GetLog(ctx context.Context, userID primitive.ObjectID, query LogQuery) (*Log, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	filter := repository.ExerciseFilter{UserID: user.ID}

	if from, ok := domain.ParseDate(query.From); ok {
		filter.From = &from
	}
	if to, ok := domain.ParseDate(query.To); ok {
		filter.To = &to
	}
	if query.Limit != "" {
		if limit, err := strconv.Atoi(query.Limit); err == nil && limit > 0 {
			filter.Limit = int64(limit)
		}
	}

	exercises, err := s.exerciseRepo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &Log{User: user, Exercises: exercises}, nil
}

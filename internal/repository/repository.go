package repository

import (
	"context"
	"time"

	"exercisetracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ExerciseFilter describes a log query against the exercises collection.
// From/To are inclusive bounds on the exercise date; nil means unbounded.
// Limit caps the result count; zero means unlimited.
type ExerciseFilter struct {
	UserID primitive.ObjectID
	From   *time.Time
	To     *time.Time
	Limit  int64
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
}

// ExerciseRepository defines the interface for interacting with exercise data.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	Find(ctx context.Context, filter ExerciseFilter) ([]domain.Exercise, error)
}

package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a single dated activity entry belonging to exactly one user.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"` // Link to the owning User
	Description string             `bson:"description" json:"description"`
	Duration    float64            `bson:"duration" json:"duration"` // Minutes
	Date        time.Time          `bson:"date" json:"date"`
}

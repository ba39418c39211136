package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account exercises are attached to.
// Usernames are not unique; the ObjectID is the only identity.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
}

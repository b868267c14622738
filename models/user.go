package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account document. Profile attributes stay nil until the user
// fills them in.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	HashedPassword string             `bson:"hashed_password" json:"-"`
	Name           string             `bson:"name" json:"name"`
	Age            *int               `bson:"age" json:"age"`
	Height         *float64           `bson:"height" json:"height"`
	Weight         *float64           `bson:"weight" json:"weight"`
	FitnessGoal    *string            `bson:"fitness_goal" json:"fitness_goal"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

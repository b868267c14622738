package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ActivityLog is a logged fitness activity. CaloriesBurned is computed
// server-side from the activity type, duration and the user's weight.
type ActivityLog struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          string             `bson:"user_id" json:"user_id"`
	ActivityType    string             `bson:"activity_type" json:"activity_type"`
	DurationMinutes int                `bson:"duration_minutes" json:"duration_minutes"`
	CaloriesBurned  float64            `bson:"calories_burned" json:"calories_burned"`
	Date            string             `bson:"date" json:"date"`
	CreatedAt       string             `bson:"created_at" json:"created_at"`
}

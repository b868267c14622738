package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Goal holds a user's calorie targets for one calendar day. At most one
// document exists per (user_id, date); writes go through the store's atomic
// upsert.
type Goal struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID                 string             `bson:"user_id" json:"user_id"`
	DailyCalorieIntakeGoal float64            `bson:"daily_calorie_intake_goal" json:"daily_calorie_intake_goal"`
	DailyCalorieBurnGoal   float64            `bson:"daily_calorie_burn_goal" json:"daily_calorie_burn_goal"`
	Date                   string             `bson:"date" json:"date"`
}

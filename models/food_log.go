package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// FoodLog is a single logged food item. UserID is the owning user's id in
// hex; Date is the calendar day as YYYY-MM-DD. Macro fields are the free-form
// strings ("35g") the vision backend estimates.
type FoodLog struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       string             `bson:"user_id" json:"user_id"`
	FoodName     string             `bson:"food_name" json:"food_name"`
	Quantity     *string            `bson:"quantity" json:"quantity"`
	Calories     float64            `bson:"calories" json:"calories"`
	Protein      *string            `bson:"protein,omitempty" json:"protein,omitempty"`
	Carbs        *string            `bson:"carbs,omitempty" json:"carbs,omitempty"`
	Fats         *string            `bson:"fats,omitempty" json:"fats,omitempty"`
	ImagePath    *string            `bson:"image_path" json:"image_path"`
	IsAIDetected bool               `bson:"is_ai_detected" json:"is_ai_detected"`
	MealType     *string            `bson:"meal_type,omitempty" json:"meal_type,omitempty"`
	Date         string             `bson:"date" json:"date"`
	CreatedAt    string             `bson:"created_at" json:"created_at"`
}

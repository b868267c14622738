package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking is a trainer session booked by a user. PaymentStatus moves from
// pending to completed once the gateway signature is verified.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          string             `bson:"user_id" json:"user_id"`
	TrainerID       string             `bson:"trainer_id" json:"trainer_id"`
	TrainerName     string             `bson:"trainer_name" json:"trainer_name"`
	SessionDate     time.Time          `bson:"session_date" json:"session_date"`
	DurationHours   float64            `bson:"duration_hours" json:"duration_hours"`
	TotalAmount     float64            `bson:"total_amount" json:"total_amount"`
	PaymentID       *string            `bson:"payment_id" json:"payment_id"`
	PaymentStatus   string             `bson:"payment_status" json:"payment_status"`
	Status          string             `bson:"status" json:"status"`
	Notes           *string            `bson:"notes" json:"notes"`
	RazorpayOrderID *string            `bson:"razorpay_order_id,omitempty" json:"razorpay_order_id,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

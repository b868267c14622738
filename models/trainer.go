package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Trainer struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	Specialization  string             `bson:"specialization" json:"specialization"`
	Bio             string             `bson:"bio" json:"bio"`
	ExperienceYears int                `bson:"experience_years" json:"experience_years"`
	Certifications  []string           `bson:"certifications" json:"certifications"`
	HourlyRate      float64            `bson:"hourly_rate" json:"hourly_rate"`
	Rating          float64            `bson:"rating" json:"rating"`
	TotalReviews    int                `bson:"total_reviews" json:"total_reviews"`
	ProfileImage    *string            `bson:"profile_image" json:"profile_image"`
	Availability    []string           `bson:"availability" json:"availability"`
	IsVerified      bool               `bson:"is_verified" json:"is_verified"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

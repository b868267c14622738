package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thasarathi1830/AI-FITNESS/middlewares"
	"github.com/thasarathi1830/AI-FITNESS/models"
	"github.com/thasarathi1830/AI-FITNESS/store"
)

const (
	trainerListLimit = 50
	bookingListLimit = 100
)

type TrainerInput struct {
	Name            string   `json:"name" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Specialization  string   `json:"specialization" binding:"required"`
	Bio             string   `json:"bio"`
	ExperienceYears int      `json:"experience_years" binding:"gte=0"`
	Certifications  []string `json:"certifications"`
	HourlyRate      float64  `json:"hourly_rate" binding:"required,gt=0"`
	ProfileImage    *string  `json:"profile_image"`
	Availability    []string `json:"availability"`
}

type BookingInput struct {
	SessionDate   string  `json:"session_date" binding:"required"`
	DurationHours float64 `json:"duration_hours" binding:"required,gt=0"`
	Notes         *string `json:"notes"`
}

type TrainerController struct {
	store store.Store
}

func NewTrainerController(st store.Store) *TrainerController {
	return &TrainerController{store: st}
}

// RegisterTrainer creates a trainer profile. Public: trainers onboard
// themselves without a user account.
func (ctl *TrainerController) RegisterTrainer(c *gin.Context) {
	var input TrainerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trainers := ctl.store.Collection(store.Trainers)

	var existing models.Trainer
	err := trainers.FindOne(c.Request.Context(), bson.M{"email": input.Email}, &existing)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "trainer email already registered"})
		return
	}
	if !errors.Is(err, store.ErrNoDocuments) {
		log.WithError(err).Error("trainer lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register trainer"})
		return
	}

	trainer := models.Trainer{
		Name:            input.Name,
		Email:           input.Email,
		Specialization:  input.Specialization,
		Bio:             input.Bio,
		ExperienceYears: input.ExperienceYears,
		Certifications:  input.Certifications,
		HourlyRate:      input.HourlyRate,
		ProfileImage:    input.ProfileImage,
		Availability:    input.Availability,
		CreatedAt:       time.Now().UTC(),
	}
	if trainer.Certifications == nil {
		trainer.Certifications = []string{}
	}
	if trainer.Availability == nil {
		trainer.Availability = []string{}
	}

	id, err := trainers.InsertOne(c.Request.Context(), &trainer)
	if err != nil {
		log.WithError(err).Error("trainer insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register trainer"})
		return
	}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		trainer.ID = oid
	}
	c.JSON(http.StatusCreated, trainer)
}

// ListTrainers returns trainers sorted by rating, filterable by
// specialization and a minimum rating.
func (ctl *TrainerController) ListTrainers(c *gin.Context) {
	filter := bson.M{}
	if spec := c.Query("specialization"); spec != "" {
		filter["specialization"] = spec
	}
	if raw := c.Query("min_rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "min_rating must be a number"})
			return
		}
		filter["rating"] = bson.M{"$gte": minRating}
	}

	var trainers []models.Trainer
	err := ctl.store.Collection(store.Trainers).Find(c.Request.Context(), filter,
		store.FindOptions{SortField: "rating", SortDesc: true, Limit: trainerListLimit}, &trainers)
	if err != nil {
		log.WithError(err).Error("trainer list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load trainers"})
		return
	}
	if trainers == nil {
		trainers = []models.Trainer{}
	}
	c.JSON(http.StatusOK, trainers)
}

// GetTrainer returns a single trainer profile by id.
func (ctl *TrainerController) GetTrainer(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trainer id"})
		return
	}

	var trainer models.Trainer
	err = ctl.store.Collection(store.Trainers).FindOne(c.Request.Context(), bson.M{"_id": oid}, &trainer)
	if errors.Is(err, store.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "trainer not found"})
		return
	}
	if err != nil {
		log.WithError(err).Error("trainer lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load trainer"})
		return
	}
	c.JSON(http.StatusOK, trainer)
}

// BookTrainer creates a pending booking for the trainer named in the path;
// payment happens afterwards through the payment endpoints.
func (ctl *TrainerController) BookTrainer(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trainer id"})
		return
	}

	var input BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sessionDate, err := time.Parse(time.RFC3339, input.SessionDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_date must be RFC3339"})
		return
	}

	var trainer models.Trainer
	err = ctl.store.Collection(store.Trainers).FindOne(c.Request.Context(), bson.M{"_id": oid}, &trainer)
	if errors.Is(err, store.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "trainer not found"})
		return
	}
	if err != nil {
		log.WithError(err).Error("trainer lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not book trainer"})
		return
	}

	booking := models.Booking{
		UserID:        user.ID.Hex(),
		TrainerID:     trainer.ID.Hex(),
		TrainerName:   trainer.Name,
		SessionDate:   sessionDate,
		DurationHours: input.DurationHours,
		TotalAmount:   trainer.HourlyRate * input.DurationHours,
		PaymentStatus: "pending",
		Status:        "pending",
		Notes:         input.Notes,
		CreatedAt:     time.Now().UTC(),
	}

	id, err := ctl.store.Collection(store.Bookings).InsertOne(c.Request.Context(), &booking)
	if err != nil {
		log.WithError(err).Error("booking insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not book trainer"})
		return
	}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		booking.ID = oid
	}
	c.JSON(http.StatusCreated, booking)
}

// MyBookings lists the current user's bookings, newest first.
func (ctl *TrainerController) MyBookings(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	var bookings []models.Booking
	err := ctl.store.Collection(store.Bookings).Find(c.Request.Context(),
		bson.M{"user_id": user.ID.Hex()},
		store.FindOptions{SortField: "created_at", SortDesc: true, Limit: bookingListLimit}, &bookings)
	if err != nil {
		log.WithError(err).Error("booking list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thasarathi1830/AI-FITNESS/middlewares"
	"github.com/thasarathi1830/AI-FITNESS/models"
	"github.com/thasarathi1830/AI-FITNESS/services"
	"github.com/thasarathi1830/AI-FITNESS/store"
)

const activityListLimit = 50

type ActivityInput struct {
	ActivityType    string `json:"activity_type" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
	Date            string `json:"date" binding:"required"`
}

type ActivityController struct {
	store store.Store
}

func NewActivityController(st store.Store) *ActivityController {
	return &ActivityController{store: st}
}

// AddActivity records an activity for the current user. Calories burned are
// computed from the activity type, duration and the user's weight; the client
// never supplies them.
func (ctl *ActivityController) AddActivity(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	var input ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	weight := 70.0
	if user.Weight != nil {
		weight = *user.Weight
	}

	entry := models.ActivityLog{
		UserID:          user.ID.Hex(),
		ActivityType:    input.ActivityType,
		DurationMinutes: input.DurationMinutes,
		CaloriesBurned:  services.EstimateCaloriesBurned(input.ActivityType, input.DurationMinutes, weight),
		Date:            input.Date,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}

	id, err := ctl.store.Collection(store.ActivityLogs).InsertOne(c.Request.Context(), &entry)
	if err != nil {
		log.WithError(err).Error("activity insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save activity"})
		return
	}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		entry.ID = oid
	}

	c.JSON(http.StatusCreated, entry)
}

// GetLogs lists the current user's activity logs, optionally filtered to a
// single day via the date query parameter, newest day first.
func (ctl *ActivityController) GetLogs(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	filter := bson.M{"user_id": user.ID.Hex()}
	if date := c.Query("date"); date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		filter["date"] = date
	}

	var logs []models.ActivityLog
	err := ctl.store.Collection(store.ActivityLogs).Find(c.Request.Context(), filter,
		store.FindOptions{SortField: "date", SortDesc: true, Limit: activityListLimit}, &logs)
	if err != nil {
		log.WithError(err).Error("activity list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load activities"})
		return
	}
	if logs == nil {
		logs = []models.ActivityLog{}
	}
	c.JSON(http.StatusOK, logs)
}

package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/thasarathi1830/AI-FITNESS/middlewares"
	"github.com/thasarathi1830/AI-FITNESS/models"
	"github.com/thasarathi1830/AI-FITNESS/store"
)

type GoalInput struct {
	DailyCalorieIntakeGoal float64 `json:"daily_calorie_intake_goal" binding:"required,gt=0"`
	DailyCalorieBurnGoal   float64 `json:"daily_calorie_burn_goal" binding:"required,gt=0"`
	Date                   string  `json:"date" binding:"required"`
}

type GoalController struct {
	store store.Store
}

func NewGoalController(st store.Store) *GoalController {
	return &GoalController{store: st}
}

// SetGoals creates or replaces the calorie goals for one day. The write is a
// single atomic upsert keyed on (user, date), so concurrent calls cannot
// leave two goal documents for the same day.
func (ctl *GoalController) SetGoals(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	var input GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	goal := models.Goal{
		UserID:                 user.ID.Hex(),
		DailyCalorieIntakeGoal: input.DailyCalorieIntakeGoal,
		DailyCalorieBurnGoal:   input.DailyCalorieBurnGoal,
		Date:                   input.Date,
	}

	goals := ctl.store.Collection(store.Goals)
	filter := bson.M{"user_id": user.ID.Hex(), "date": input.Date}
	if err := goals.UpsertOne(c.Request.Context(), filter, &goal); err != nil {
		log.WithError(err).Error("goal upsert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save goals"})
		return
	}

	var saved models.Goal
	if err := goals.FindOne(c.Request.Context(), filter, &saved); err != nil {
		log.WithError(err).Error("goal reload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load goals"})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// GetGoals returns the goals for the requested day (today by default), or
// 404 when none are set.
func (ctl *GoalController) GetGoals(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	date := c.Query("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	var goal models.Goal
	err := ctl.store.Collection(store.Goals).FindOne(c.Request.Context(),
		bson.M{"user_id": user.ID.Hex(), "date": date}, &goal)
	if errors.Is(err, store.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no goals set for this date"})
		return
	}
	if err != nil {
		log.WithError(err).Error("goal lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load goals"})
		return
	}
	c.JSON(http.StatusOK, goal)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/thasarathi1830/AI-FITNESS/middlewares"
	"github.com/thasarathi1830/AI-FITNESS/models"
	"github.com/thasarathi1830/AI-FITNESS/store"
)

// ProfileInput carries the optional profile attributes; only the fields
// present in the request body are written.
type ProfileInput struct {
	Name        *string  `json:"name"`
	Age         *int     `json:"age"`
	Height      *float64 `json:"height"`
	Weight      *float64 `json:"weight"`
	FitnessGoal *string  `json:"fitness_goal"`
}

type UserController struct {
	store store.Store
}

func NewUserController(st store.Store) *UserController {
	return &UserController{store: st}
}

func (ctl *UserController) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, middlewares.CurrentUser(c))
}

// UpdateProfile applies a partial update to the current user's profile and
// returns the refreshed document.
func (ctl *UserController) UpdateProfile(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Age != nil {
		set["age"] = *input.Age
	}
	if input.Height != nil {
		set["height"] = *input.Height
	}
	if input.Weight != nil {
		set["weight"] = *input.Weight
	}
	if input.FitnessGoal != nil {
		set["fitness_goal"] = *input.FitnessGoal
	}

	users := ctl.store.Collection(store.Users)
	if len(set) > 0 {
		if _, err := users.UpdateOne(c.Request.Context(), bson.M{"_id": user.ID}, set); err != nil {
			log.WithError(err).Error("profile update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update profile"})
			return
		}
	}

	var updated models.User
	if err := users.FindOne(c.Request.Context(), bson.M{"_id": user.ID}, &updated); err != nil {
		log.WithError(err).Error("profile reload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

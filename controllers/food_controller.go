package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
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

const (
	foodListLimit   = 50
	maxImageBytes   = 10 << 20
	defaultMealType = "Snack"
)

// Quick-add calorie presets by meal type.
var quickAddCalories = map[string]float64{
	"breakfast": 400,
	"lunch":     600,
	"dinner":    700,
	"snack":     200,
}

// FoodAnalyzer estimates nutrition for a food image.
type FoodAnalyzer interface {
	AnalyzeFoodImage(ctx context.Context, imageData []byte, mimeType string) (*services.FoodAnalysis, error)
}

type ManualFoodInput struct {
	FoodName string  `json:"food_name" binding:"required"`
	Quantity *string `json:"quantity"`
	Calories float64 `json:"calories" binding:"required,gt=0"`
	MealType *string `json:"meal_type"`
	Date     string  `json:"date" binding:"required"`
}

type FoodController struct {
	store    store.Store
	analyzer FoodAnalyzer
	uploader services.Uploader
}

func NewFoodController(st store.Store, analyzer FoodAnalyzer, uploader services.Uploader) *FoodController {
	return &FoodController{store: st, analyzer: analyzer, uploader: uploader}
}

// AddManual logs a food item the user typed in themselves.
func (ctl *FoodController) AddManual(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	var input ManualFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	entry := models.FoodLog{
		UserID:    user.ID.Hex(),
		FoodName:  input.FoodName,
		Quantity:  input.Quantity,
		Calories:  input.Calories,
		MealType:  input.MealType,
		Date:      input.Date,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	ctl.insertAndRespond(c, &entry)
}

// UploadFood analyzes an uploaded food photo, stores the image, and logs the
// detected food for the given day.
func (ctl *FoodController) UploadFood(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	date := c.PostForm("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	mealType := c.PostForm("meal_type")
	if mealType == "" {
		mealType = defaultMealType
	}

	data, contentType, ok := ctl.readImage(c)
	if !ok {
		return
	}

	analysis, err := ctl.analyzer.AnalyzeFoodImage(c.Request.Context(), data, contentType)
	if errors.Is(err, services.ErrQuotaExceeded) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "image analysis quota exceeded, try again later"})
		return
	}
	if err != nil {
		log.WithError(err).Error("food image analysis failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not analyze image"})
		return
	}

	var imagePath *string
	if path, err := ctl.uploader.Save(c.Request.Context(), data, contentType); err != nil {
		// Analysis already succeeded; log the food without the image.
		log.WithError(err).Warn("food image upload failed")
	} else {
		imagePath = &path
	}

	quantity := "1 serving"
	entry := models.FoodLog{
		UserID:       user.ID.Hex(),
		FoodName:     analysis.FoodName,
		Quantity:     &quantity,
		Calories:     analysis.Calories,
		Protein:      analysis.Protein,
		Carbs:        analysis.Carbs,
		Fats:         analysis.Fats,
		ImagePath:    imagePath,
		IsAIDetected: true,
		MealType:     &mealType,
		Date:         date,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	ctl.insertAndRespond(c, &entry)
}

// AnalyzeImage runs the vision analysis without logging anything, for
// clients that want to preview the estimate first.
func (ctl *FoodController) AnalyzeImage(c *gin.Context) {
	data, contentType, ok := ctl.readImage(c)
	if !ok {
		return
	}

	analysis, err := ctl.analyzer.AnalyzeFoodImage(c.Request.Context(), data, contentType)
	if errors.Is(err, services.ErrQuotaExceeded) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "image analysis quota exceeded, try again later"})
		return
	}
	if err != nil {
		log.WithError(err).Error("food image analysis failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not analyze image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"analysis": analysis,
	})
}

// QuickAdd logs a fixed-calorie placeholder for a meal type, for when the
// user cannot be bothered to type details.
func (ctl *FoodController) QuickAdd(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	mealType := strings.ToLower(c.Query("meal_type"))
	calories, ok := quickAddCalories[mealType]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal_type must be one of breakfast, lunch, dinner, snack"})
		return
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	quantity := "1 serving"
	name := capitalize(mealType)
	entry := models.FoodLog{
		UserID:    user.ID.Hex(),
		FoodName:  name,
		Quantity:  &quantity,
		Calories:  calories,
		MealType:  &name,
		Date:      date,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	ctl.insertAndRespond(c, &entry)
}

// GetLogs lists the current user's food logs, optionally filtered to a day.
func (ctl *FoodController) GetLogs(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	filter := bson.M{"user_id": user.ID.Hex()}
	if date := c.Query("date"); date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		filter["date"] = date
	}

	var logs []models.FoodLog
	err := ctl.store.Collection(store.FoodLogs).Find(c.Request.Context(), filter,
		store.FindOptions{SortField: "date", SortDesc: true, Limit: foodListLimit}, &logs)
	if err != nil {
		log.WithError(err).Error("food list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load food logs"})
		return
	}
	if logs == nil {
		logs = []models.FoodLog{}
	}
	c.JSON(http.StatusOK, logs)
}

// DeleteLog removes one of the current user's food logs. The filter includes
// the user id, so deleting someone else's log reports not found.
func (ctl *FoodController) DeleteLog(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	deleted, err := ctl.store.Collection(store.FoodLogs).DeleteOne(c.Request.Context(),
		bson.M{"_id": oid, "user_id": user.ID.Hex()})
	if err != nil {
		log.WithError(err).Error("food delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete food log"})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "food log not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *FoodController) insertAndRespond(c *gin.Context, entry *models.FoodLog) {
	id, err := ctl.store.Collection(store.FoodLogs).InsertOne(c.Request.Context(), entry)
	if err != nil {
		log.WithError(err).Error("food insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save food log"})
		return
	}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		entry.ID = oid
	}
	c.JSON(http.StatusCreated, entry)
}

func (ctl *FoodController) readImage(c *gin.Context) ([]byte, string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return nil, "", false
	}
	if file.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image too large"})
		return nil, "", false
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file must be an image"})
		return nil, "", false
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return nil, "", false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return nil, "", false
	}
	return data, contentType, true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

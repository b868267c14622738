package services

import (
	"context"
	"errors"

	"github.com/thasarathi1830/AI-FITNESS/models"
	"github.com/thasarathi1830/AI-FITNESS/store"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	// Used for calories_left when no intake goal is set for the day.
	defaultCalorieGoal = 2100

	// Safety bound on per-day log fetches, not a pagination contract.
	dailyLogFetchCap = 1000
)

// DailySummary is the dashboard aggregation for one calendar day. The goal
// and progress fields are null when no goal is set — absence, not zero.
type DailySummary struct {
	Date                  string   `json:"date"`
	TotalCaloriesConsumed float64  `json:"total_calories_consumed"`
	TotalCaloriesBurned   float64  `json:"total_calories_burned"`
	NetCalories           float64  `json:"net_calories"`
	CaloriesLeft          float64  `json:"calories_left"`
	CalorieIntakeGoal     *float64 `json:"calorie_intake_goal"`
	CalorieBurnGoal       *float64 `json:"calorie_burn_goal"`
	IntakeProgressPct     *float64 `json:"intake_progress_percentage"`
	BurnProgressPct       *float64 `json:"burn_progress_percentage"`
	FoodLogCount          int      `json:"food_log_count"`
	ActivityLogCount      int      `json:"activity_log_count"`
}

// SummaryService recomputes the daily summary from the stored logs on every
// call; nothing is cached.
type SummaryService struct {
	store store.Store
}

func NewSummaryService(st store.Store) *SummaryService {
	return &SummaryService{store: st}
}

// Summarize aggregates a user's food logs, activity logs and goal record for
// one calendar day. Dates match by exact string equality on YYYY-MM-DD.
func (s *SummaryService) Summarize(ctx context.Context, userID, date string) (*DailySummary, error) {
	var foodLogs []models.FoodLog
	if err := s.store.Collection(store.FoodLogs).Find(ctx,
		bson.M{"user_id": userID, "date": date},
		store.FindOptions{Limit: dailyLogFetchCap},
		&foodLogs,
	); err != nil {
		return nil, err
	}
	var totalConsumed float64
	for _, l := range foodLogs {
		totalConsumed += l.Calories
	}

	var activityLogs []models.ActivityLog
	if err := s.store.Collection(store.ActivityLogs).Find(ctx,
		bson.M{"user_id": userID, "date": date},
		store.FindOptions{Limit: dailyLogFetchCap},
		&activityLogs,
	); err != nil {
		return nil, err
	}
	var totalBurned float64
	for _, l := range activityLogs {
		totalBurned += l.CaloriesBurned
	}

	var goal models.Goal
	goalSet := true
	err := s.store.Collection(store.Goals).FindOne(ctx,
		bson.M{"user_id": userID, "date": date}, &goal)
	if errors.Is(err, store.ErrNoDocuments) {
		goalSet = false
	} else if err != nil {
		return nil, err
	}

	summary := &DailySummary{
		Date:                  date,
		TotalCaloriesConsumed: round2(totalConsumed),
		TotalCaloriesBurned:   round2(totalBurned),
		NetCalories:           round2(totalConsumed - totalBurned),
		FoodLogCount:          len(foodLogs),
		ActivityLogCount:      len(activityLogs),
	}

	effectiveGoal := float64(defaultCalorieGoal)
	if goalSet {
		intake := goal.DailyCalorieIntakeGoal
		burn := goal.DailyCalorieBurnGoal
		summary.CalorieIntakeGoal = &intake
		summary.CalorieBurnGoal = &burn

		if intake > 0 {
			effectiveGoal = intake
			pct := round2(totalConsumed / intake * 100)
			summary.IntakeProgressPct = &pct
		}
		if burn > 0 {
			pct := round2(totalBurned / burn * 100)
			summary.BurnProgressPct = &pct
		}
	}
	summary.CaloriesLeft = round2(effectiveGoal - totalConsumed + totalBurned)

	return summary, nil
}

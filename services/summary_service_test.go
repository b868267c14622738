package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thasarathi1830/AI-FITNESS/models"
	"github.com/thasarathi1830/AI-FITNESS/store"
)

func seedDay(t *testing.T, st store.Store, userID, date string) {
	t.Helper()
	ctx := context.Background()

	foods := []models.FoodLog{
		{UserID: userID, FoodName: "Oatmeal", Calories: 350, Date: date},
		{UserID: userID, FoodName: "Chicken Rice", Calories: 850, Date: date},
		{UserID: userID, FoodName: "Curd", Calories: 600, Date: date},
	}
	for i := range foods {
		_, err := st.Collection(store.FoodLogs).InsertOne(ctx, &foods[i])
		require.NoError(t, err)
	}

	activity := models.ActivityLog{UserID: userID, ActivityType: "running", DurationMinutes: 30, CaloriesBurned: 300, Date: date}
	_, err := st.Collection(store.ActivityLogs).InsertOne(ctx, &activity)
	require.NoError(t, err)
}

func TestSummarizeWithGoal(t *testing.T) {
	st := store.NewMemoryStore()
	seedDay(t, st, "user1", "2026-08-28")

	goal := models.Goal{UserID: "user1", DailyCalorieIntakeGoal: 2000, DailyCalorieBurnGoal: 400, Date: "2026-08-28"}
	_, err := st.Collection(store.Goals).InsertOne(context.Background(), &goal)
	require.NoError(t, err)

	s, err := NewSummaryService(st).Summarize(context.Background(), "user1", "2026-08-28")
	require.NoError(t, err)

	assert.Equal(t, 1800.0, s.TotalCaloriesConsumed)
	assert.Equal(t, 300.0, s.TotalCaloriesBurned)
	assert.Equal(t, 1500.0, s.NetCalories)
	assert.Equal(t, 500.0, s.CaloriesLeft) // 2000 - 1800 + 300
	assert.Equal(t, 3, s.FoodLogCount)
	assert.Equal(t, 1, s.ActivityLogCount)

	require.NotNil(t, s.CalorieIntakeGoal)
	assert.Equal(t, 2000.0, *s.CalorieIntakeGoal)
	require.NotNil(t, s.IntakeProgressPct)
	assert.Equal(t, 90.0, *s.IntakeProgressPct)
	require.NotNil(t, s.BurnProgressPct)
	assert.Equal(t, 75.0, *s.BurnProgressPct)
}

func TestSummarizeIgnoresOtherUsersAndDates(t *testing.T) {
	st := store.NewMemoryStore()
	seedDay(t, st, "user1", "2026-08-28")
	seedDay(t, st, "user2", "2026-08-28")
	seedDay(t, st, "user1", "2026-08-27")

	s, err := NewSummaryService(st).Summarize(context.Background(), "user1", "2026-08-28")
	require.NoError(t, err)

	assert.Equal(t, 1800.0, s.TotalCaloriesConsumed)
	assert.Equal(t, 3, s.FoodLogCount)
	assert.Equal(t, 1, s.ActivityLogCount)
}

func TestSummarizeWithoutGoal(t *testing.T) {
	st := store.NewMemoryStore()
	seedDay(t, st, "user1", "2026-08-28")

	s, err := NewSummaryService(st).Summarize(context.Background(), "user1", "2026-08-28")
	require.NoError(t, err)

	assert.Nil(t, s.CalorieIntakeGoal)
	assert.Nil(t, s.CalorieBurnGoal)
	assert.Nil(t, s.IntakeProgressPct)
	assert.Nil(t, s.BurnProgressPct)
	// falls back to the 2100 default goal
	assert.Equal(t, 600.0, s.CaloriesLeft) // 2100 - 1800 + 300
}

func TestSummarizeZeroGoalBehavesAsUnsetForProgress(t *testing.T) {
	st := store.NewMemoryStore()
	seedDay(t, st, "user1", "2026-08-28")

	goal := models.Goal{UserID: "user1", DailyCalorieIntakeGoal: 0, DailyCalorieBurnGoal: 0, Date: "2026-08-28"}
	_, err := st.Collection(store.Goals).InsertOne(context.Background(), &goal)
	require.NoError(t, err)

	s, err := NewSummaryService(st).Summarize(context.Background(), "user1", "2026-08-28")
	require.NoError(t, err)

	// the record exists so the goal fields are reported
	require.NotNil(t, s.CalorieIntakeGoal)
	assert.Equal(t, 0.0, *s.CalorieIntakeGoal)
	// but zero goals never produce percentages or replace the default
	assert.Nil(t, s.IntakeProgressPct)
	assert.Nil(t, s.BurnProgressPct)
	assert.Equal(t, 600.0, s.CaloriesLeft)
}

func TestSummarizeEmptyDay(t *testing.T) {
	st := store.NewMemoryStore()

	s, err := NewSummaryService(st).Summarize(context.Background(), "user1", "2026-08-28")
	require.NoError(t, err)

	assert.Equal(t, 0.0, s.TotalCaloriesConsumed)
	assert.Equal(t, 0.0, s.TotalCaloriesBurned)
	assert.Equal(t, 0, s.FoodLogCount)
	assert.Equal(t, 2100.0, s.CaloriesLeft)
}

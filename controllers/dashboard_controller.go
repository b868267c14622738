package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/thasarathi1830/AI-FITNESS/middlewares"
	"github.com/thasarathi1830/AI-FITNESS/services"
)

type DashboardController struct {
	summaries *services.SummaryService
}

func NewDashboardController(summaries *services.SummaryService) *DashboardController {
	return &DashboardController{summaries: summaries}
}

// Summary returns the recomputed daily summary for the requested day, today
// by default.
func (ctl *DashboardController) Summary(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	date := c.Query("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	summary, err := ctl.summaries.Summarize(c.Request.Context(), user.ID.Hex(), date)
	if err != nil {
		log.WithError(err).Error("daily summary failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/thasarathi1830/AI-FITNESS/controllers"
)

// Controllers bundles everything SetupRouter wires up.
type Controllers struct {
	Auth      *controllers.AuthController
	User      *controllers.UserController
	Food      *controllers.FoodController
	Activity  *controllers.ActivityController
	Goal      *controllers.GoalController
	Dashboard *controllers.DashboardController
	Trainer   *controllers.TrainerController
	Payment   *controllers.PaymentController
}

// SetupRouter builds the gin engine with CORS and the full /api surface.
// authRequired guards every route that acts on the current user.
func SetupRouter(ctl Controllers, authRequired gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "AI Fitness API is running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", ctl.Auth.Signup)
			auth.POST("/login", ctl.Auth.Login)
		}

		user := api.Group("/user", authRequired)
		{
			user.GET("/profile", ctl.User.GetProfile)
			user.PUT("/profile", ctl.User.UpdateProfile)
		}

		food := api.Group("/food", authRequired)
		{
			food.POST("/manual", ctl.Food.AddManual)
			food.POST("/upload", ctl.Food.UploadFood)
			food.POST("/upload-image", ctl.Food.AnalyzeImage)
			food.POST("/quick-add", ctl.Food.QuickAdd)
			food.GET("/logs", ctl.Food.GetLogs)
			food.DELETE("/logs/:id", ctl.Food.DeleteLog)
		}

		activity := api.Group("/activity", authRequired)
		{
			activity.POST("", ctl.Activity.AddActivity)
			activity.GET("/logs", ctl.Activity.GetLogs)
		}

		goals := api.Group("/goals", authRequired)
		{
			goals.POST("", ctl.Goal.SetGoals)
			goals.GET("", ctl.Goal.GetGoals)
		}

		api.GET("/dashboard/summary", authRequired, ctl.Dashboard.Summary)

		trainers := api.Group("/trainers")
		{
			trainers.POST("/register", ctl.Trainer.RegisterTrainer)
			trainers.GET("", ctl.Trainer.ListTrainers)
			trainers.GET("/:id", ctl.Trainer.GetTrainer)
			trainers.POST("/:id/book", authRequired, ctl.Trainer.BookTrainer)
			trainers.GET("/bookings/my-bookings", authRequired, ctl.Trainer.MyBookings)
		}

		payments := api.Group("/payments", authRequired)
		{
			payments.POST("/create-order", ctl.Payment.CreateOrder)
			payments.POST("/verify", ctl.Payment.VerifyPayment)
		}
	}

	return r
}

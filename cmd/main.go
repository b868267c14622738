package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/thasarathi1830/AI-FITNESS/config"
	"github.com/thasarathi1830/AI-FITNESS/controllers"
	"github.com/thasarathi1830/AI-FITNESS/middlewares"
	"github.com/thasarathi1830/AI-FITNESS/routes"
	"github.com/thasarathi1830/AI-FITNESS/services"
	"github.com/thasarathi1830/AI-FITNESS/store"
	"github.com/thasarathi1830/AI-FITNESS/utils"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	st, err := store.ConnectMongo(ctx, settings.DatabaseURL, settings.DatabaseName)
	cancel()
	if err != nil {
		log.Fatalf("store: %v", err)
	}

	tokens := utils.NewTokenService(settings.JWTSecret, settings.JWTExpirationHours)

	var uploader services.Uploader
	if settings.S3Bucket != "" {
		s3u, err := services.NewS3Storage(context.Background(), settings.AWSRegion, settings.S3Bucket, settings.CloudFrontURL)
		if err != nil {
			log.Fatalf("s3 storage: %v", err)
		}
		uploader = s3u
	} else {
		local, err := services.NewLocalStorage(settings.UploadDir)
		if err != nil {
			log.Fatalf("local storage: %v", err)
		}
		uploader = local
		log.WithField("dir", settings.UploadDir).Info("no S3 bucket configured, storing images locally")
	}

	vision := services.NewVisionService(settings.GeminiAPIKey, settings.GeminiModel)
	payments := services.NewPaymentService(settings.RazorpayKeyID, settings.RazorpayKeySecret)
	auth := services.NewAuthService(st, tokens)
	summaries := services.NewSummaryService(st)

	router := routes.SetupRouter(routes.Controllers{
		Auth:      controllers.NewAuthController(auth),
		User:      controllers.NewUserController(st),
		Food:      controllers.NewFoodController(st, vision, uploader),
		Activity:  controllers.NewActivityController(st),
		Goal:      controllers.NewGoalController(st),
		Dashboard: controllers.NewDashboardController(summaries),
		Trainer:   controllers.NewTrainerController(st),
		Payment:   controllers.NewPaymentController(st, payments),
	}, middlewares.AuthMiddleware(tokens, st))

	srv := &http.Server{
		Addr:    ":" + settings.Port,
		Handler: router,
	}

	go func() {
		log.WithField("port", settings.Port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
	if err := st.Close(shutdownCtx); err != nil {
		log.Errorf("store close: %v", err)
	}
}

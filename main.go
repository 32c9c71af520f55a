package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"car-doctor-server/auth"
	"car-doctor-server/config"
	"car-doctor-server/database"
	"car-doctor-server/errors"
	"car-doctor-server/handlers"
	"car-doctor-server/logger"
	"car-doctor-server/middleware"
	"car-doctor-server/router"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := database.Connect(ctx, cfg.MongoURI())
	cancel()
	if err != nil {
		zlog.Fatal("cannot reach the store", zap.Error(err))
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := database.Ping(ctx, client); err != nil {
			zlog.Error("ping failed", zap.Error(err))
			return
		}
		zlog.Info("Pinged your deployment. You successfully connected to MongoDB!")
	}()

	services := database.NewMongoServiceRepository(
		client.Database(cfg.ServicesDB).Collection(cfg.ServicesCollection))
	bookings := database.NewMongoBookingRepository(
		client.Database(cfg.BookingsDB).Collection(cfg.BookingsCollection))
	issuer := auth.NewIssuer([]byte(cfg.AccessTokenSecret), cfg.AccessTokenTTL)

	h := handlers.NewHandler(services, bookings, issuer, zlog)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errors.Handler(zlog),
	})
	router.SetupRoutes(app, h, middleware.Authorize([]byte(cfg.AccessTokenSecret)), zlog)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		zlog.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			zlog.Error("server shutdown failed", zap.Error(err))
		}
	}()

	zlog.Info("app is running", zap.String("port", cfg.Port))
	if err := app.Listen(cfg.ListenAddr()); err != nil {
		zlog.Error("server stopped", zap.Error(err))
	}

	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		zlog.Error("cannot disconnect from the store", zap.Error(err))
	}
}

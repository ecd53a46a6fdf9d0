package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"messmenu-service/internal/app/config"
	"messmenu-service/internal/app/delivery/http/controllers"
	"messmenu-service/internal/app/delivery/http/middlewares"
	"messmenu-service/internal/app/delivery/http/routers"
	"messmenu-service/internal/app/drivers/database"
	"messmenu-service/internal/app/drivers/logger"
	"messmenu-service/internal/app/drivers/messaging"
	"messmenu-service/internal/app/services/core/menu"
	"messmenu-service/internal/app/services/core/reminders"
	sharedlocker "messmenu-service/internal/app/services/shared/locker"
	sharedredis "messmenu-service/internal/app/services/shared/redis"
	"messmenu-service/internal/app/services/shared/reminderqueue"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	processLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		processLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(&bootstrap, processLog)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			processLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	processLog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		processLog.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		processLog.Printf("Error during shutdown: %v", err)
	}

	processLog.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, processLog *logrus.Logger) {
	// Redis
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	lockerService := sharedlocker.NewLockService(redisRepository, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Menu
	menuFetcher := menu.NewMenuFetcher(bootstrap.InternalConfig, bootstrap.Logger)
	menuStore := menu.NewMenuStore(menuFetcher, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	menuUsecase := menu.NewMenuUsecase(menuStore, bootstrap.InternalConfig, bootstrap.Logger)
	mealController := controllers.NewMealController(bootstrap.Logger, menuUsecase)

	// Reminders
	reminderQueue, err := reminderqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.Reminders.QueueName)
	if err != nil {
		processLog.Fatalf("Failed to initialize reminder queue: %v", err)
	}
	reminderUsecase := reminders.NewReminderUsecase(
		menuStore,
		reminderQueue,
		bootstrap.InternalConfig,
		bootstrap.Logger,
		menu.BoundariesFromConfig(bootstrap.InternalConfig),
	)
	reminderController := controllers.NewReminderController(bootstrap.Logger, reminderUsecase)

	// Background worker: periodic refetch + reminder set replacement
	worker := reminders.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, lockerService, menuStore, reminderUsecase)
	worker.Start(context.Background())
	bootstrap.WorkerStop = worker.Stop

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, mealController, reminderController)
}

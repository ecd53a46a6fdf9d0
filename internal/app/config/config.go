package config

import (
	"messmenu-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:        utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			AdminAPIKey:     utils.GetEnvString("APP_ADMIN_API_KEY", ""),
		},
		Menu: AppMenu{
			SourceURL:             utils.GetEnvString("MENU_SOURCE_URL", "http://localhost:5555/menu.json"),
			FetchTimeoutInSeconds: utils.GetEnvInt("MENU_FETCH_TIMEOUT_IN_SECONDS", 15),
			FetchBurst:            utils.GetEnvInt("MENU_FETCH_BURST", 2),
			FetchPerMinute:        utils.GetEnvInt("MENU_FETCH_PER_MINUTE", 6),
			CacheTTLInHours:       utils.GetEnvInt("MENU_CACHE_TTL_IN_HOURS", 192),
			BreakfastStartHour:    utils.GetEnvInt("MENU_BREAKFAST_START_HOUR", 0),
			LunchStartHour:        utils.GetEnvInt("MENU_LUNCH_START_HOUR", 11),
			SnacksStartHour:       utils.GetEnvInt("MENU_SNACKS_START_HOUR", 15),
			DinnerStartHour:       utils.GetEnvInt("MENU_DINNER_START_HOUR", 18),
			DayEndHour:            utils.GetEnvInt("MENU_DAY_END_HOUR", 22),
		},
		Reminders: AppReminders{
			QueueName:          utils.GetEnvString("REMINDERS_QUEUE_NAME", "meal_reminder_sets"),
			DefaultMode:        utils.GetEnvString("REMINDERS_DEFAULT_MODE", "recurring"),
			DefaultHorizonDays: utils.GetEnvInt("REMINDERS_DEFAULT_HORIZON_DAYS", 7),
			WorkerCronSpec:     utils.GetEnvString("REMINDERS_WORKER_CRON_SPEC", "@hourly"),
		},
	}
}

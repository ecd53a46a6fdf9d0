package config

type InternalConfig struct {
	App       App
	Menu      AppMenu
	Reminders AppReminders
}

type App struct {
	Env             string
	Port            string
	Version         string
	Timezone        string
	EndpointPrefix  string
	MaxRequests     int
	ShutdownTimeout int
	AdminAPIKey     string
}

type AppMenu struct {
	// SourceURL is where the weekly menu JSON document is fetched from.
	SourceURL string
	// FetchTimeoutInSeconds bounds a single fetch attempt.
	FetchTimeoutInSeconds int
	// FetchBurst and FetchPerMinute throttle outbound fetches so a refresh
	// storm from clients cannot hammer the upstream sheet.
	FetchBurst     int
	FetchPerMinute int
	// CacheTTLInHours bounds how long the redis offline copy is served.
	CacheTTLInHours int
	// Boundary table, hours of day.
	BreakfastStartHour int
	LunchStartHour     int
	SnacksStartHour    int
	DinnerStartHour    int
	DayEndHour         int
}

type AppReminders struct {
	QueueName string
	// DefaultMode is "absolute" or "recurring".
	DefaultMode        string
	DefaultHorizonDays int
	// WorkerCronSpec schedules the refresh + redispatch job (e.g. "@hourly").
	WorkerCronSpec string
}

package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"

	LoggingMenuSourceKey = "menu_source"
	LoggingWeekStartKey  = "week_start"
	LoggingSyncStateKey  = "sync_state"
	LoggingPlanModeKey   = "plan_mode"
	LoggingReminderCount = "reminder_count"
)

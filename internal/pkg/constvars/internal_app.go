package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_API_KEY_AUTH             ContextKey = "api_key_auth"
)

const (
	ResourceMeals     = "meals"
	ResourceReminders = "reminders"
)

const (
	// RedisKeyMenuDocument holds the offline copy of the last good document.
	RedisKeyMenuDocument = "messmenu:document"
	// RedisKeySyncState mirrors the store lifecycle for other instances.
	RedisKeySyncState = "messmenu:sync_state"
	// RedisKeyReminderLeaderLock guards reminder set regeneration so two
	// instances never interleave a clear/install sequence.
	RedisKeyReminderLeaderLock = "messmenu:reminders:leader"
)

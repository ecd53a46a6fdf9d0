package constvars

// Client-facing messages
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientMenuNotSyncedYet              = "menu is not available yet, please try again shortly"
	ErrClientMenuSourceUnreachable         = "menu source is unreachable right now"
	ErrClientTooManyRequests               = "too many requests, slow down"
)

// Developer-facing messages
const (
	ErrDevInvalidInput          = "invalid input"
	ErrDevValidationFailed      = "validation failed"
	ErrDevCannotParseJSON       = "cannot parse JSON"
	ErrDevCannotMarshalJSON     = "cannot marshal JSON"
	ErrDevCreateHTTPRequest     = "failed to create HTTP request"
	ErrDevSendHTTPRequest       = "failed to send HTTP request"
	ErrDevUpstreamBadStatus     = "menu source responded with non-success status"
	ErrDevDecodeMenuDocument    = "failed to decode menu document"
	ErrDevMenuDocumentInvalid   = "menu document failed validation"
	ErrDevMenuNotReady          = "menu store has no document yet"
	ErrDevMissingRequestID      = "request id missing from context"
	ErrDevInvalidBoundaryTable  = "meal boundary table is invalid"
	ErrDevInvalidPlanMode       = "unknown reminder plan mode"
	ErrDevInvalidHorizon        = "reminder horizon must be positive"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"

	ErrDevRedisSet       = "failed to set value on redis"
	ErrDevRedisGet       = "failed to get value from redis"
	ErrDevRedisDelete    = "failed to delete value from redis"
	ErrDevRedisSetNX     = "failed to setnx value on redis"
	ErrDevLockNotOwned   = "lock is held with a different token"

	ErrDevQueueDeclare = "failed to declare reminder queue"
	ErrDevQueuePublish = "failed to publish reminder set"
)

package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Menu messages
	GetCurrentMealSuccess = "current meal resolved successfully"
	GetWeekMenuSuccess    = "week menu fetched successfully"
	RefreshMenuSuccess    = "menu refreshed successfully"
	MenuSyncPending       = "menu sync is pending"

	// Reminder messages
	PlanRemindersSuccess     = "reminders planned successfully"
	DispatchRemindersSuccess = "reminder set dispatched successfully"
)

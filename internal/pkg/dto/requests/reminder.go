package requests

// PlanReminders carries the query parameters of GET /reminders/plan.
type PlanReminders struct {
	Mode        string `validate:"required,plan_mode"`
	HorizonDays int    `validate:"gte=0,lte=90"`
}

// DispatchReminders carries the body of POST /reminders/dispatch.
type DispatchReminders struct {
	Mode        string `json:"mode" validate:"required,plan_mode"`
	HorizonDays int    `json:"horizon_days" validate:"gte=0,lte=90"`
}

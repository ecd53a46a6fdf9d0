package responses

import "messmenu-service/internal/app/models"

// ReminderPlan is the payload of GET /reminders/plan.
type ReminderPlan struct {
	Mode        models.PlanMode         `json:"mode"`
	HorizonDays int                     `json:"horizon_days,omitempty"`
	Reminders   []models.ReminderRecord `json:"reminders"`
}

// ReminderDispatch is the payload of POST /reminders/dispatch.
type ReminderDispatch struct {
	SetID     string `json:"set_id"`
	Reminders int    `json:"reminders"`
}

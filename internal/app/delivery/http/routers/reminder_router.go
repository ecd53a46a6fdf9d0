package routers

import (
	"messmenu-service/internal/app/delivery/http/controllers"
	"messmenu-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachReminderRoutes(router chi.Router, middlewares *middlewares.Middlewares, reminderController *controllers.ReminderController) {
	router.Get("/plan", reminderController.PlanReminders)
	router.With(middlewares.RequireAdminAPIKey).Post("/dispatch", reminderController.DispatchReminders)
}

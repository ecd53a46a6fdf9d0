package routers

import (
	"messmenu-service/internal/app/delivery/http/controllers"
	"messmenu-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachMealRoutes(router chi.Router, middlewares *middlewares.Middlewares, mealController *controllers.MealController) {
	router.Get("/current", mealController.GetCurrentMeal)
	router.Get("/week", mealController.GetWeekMenu)
	router.With(middlewares.RequireAdminAPIKey).Post("/refresh", mealController.RefreshMenu)
}

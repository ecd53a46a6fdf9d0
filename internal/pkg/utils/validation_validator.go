package utils

import (
	"messmenu-service/internal/app/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("weekday", validateWeekday)
	validate.RegisterValidation("meal_slot", validateMealSlot)
	validate.RegisterValidation("plan_mode", validatePlanMode)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateWeekday(fl validator.FieldLevel) bool {
	return models.Weekday(fl.Field().String()).IsValid()
}

func validateMealSlot(fl validator.FieldLevel) bool {
	return models.MealSlot(fl.Field().String()).IsValid()
}

func validatePlanMode(fl validator.FieldLevel) bool {
	return models.PlanMode(fl.Field().String()).IsValid()
}

package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"min":       "must be at least %s",
	"max":       "maximum at %s",
	"gt":        "must be greater than %s",
	"gte":       "must be greater than or equal to %s",
	"lt":        "must be less than %s",
	"lte":       "must be less than or equal to %s",
	"oneof":     "must be one of [%s]",
	"url":       "must be a valid URL",
	"datetime":  "must match the %s layout",
	"weekday":   "must be a weekday name, Monday through Sunday",
	"meal_slot": "must be one of Breakfast, Lunch, Snacks, Dinner",
	"plan_mode": "must be either 'absolute' or 'recurring'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"gt":       true,
	"gte":      true,
	"lt":       true,
	"lte":      true,
	"oneof":    true,
	"datetime": true,
}

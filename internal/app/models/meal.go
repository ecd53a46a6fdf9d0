package models

// Weekday is the closed set of day names used as keys in a menu document,
// ordered Monday-first to match the week-start anchor date.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// WeekdayOrder maps a weekday name to its Monday=0 offset from the week start.
var WeekdayOrder = []Weekday{
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
	Sunday,
}

// Index returns the Monday=0 position of the weekday, or -1 for an unknown name.
func (w Weekday) Index() int {
	for i, day := range WeekdayOrder {
		if day == w {
			return i
		}
	}
	return -1
}

// Next returns the following weekday, wrapping Sunday back to Monday.
func (w Weekday) Next() Weekday {
	idx := w.Index()
	if idx < 0 {
		return w
	}
	return WeekdayOrder[(idx+1)%len(WeekdayOrder)]
}

func (w Weekday) IsValid() bool {
	return w.Index() >= 0
}

// MealSlot is one of the four named serving windows in a day, in serving order.
type MealSlot string

const (
	Breakfast MealSlot = "Breakfast"
	Lunch     MealSlot = "Lunch"
	Snacks    MealSlot = "Snacks"
	Dinner    MealSlot = "Dinner"
)

// MealSlotOrder lists the slots in the order they are served.
var MealSlotOrder = []MealSlot{
	Breakfast,
	Lunch,
	Snacks,
	Dinner,
}

// Index returns the slot's position in serving order, or -1 for an unknown name.
func (m MealSlot) Index() int {
	for i, slot := range MealSlotOrder {
		if slot == m {
			return i
		}
	}
	return -1
}

// IsLast reports whether the slot is the final serving window of the day.
func (m MealSlot) IsLast() bool {
	return m == MealSlotOrder[len(MealSlotOrder)-1]
}

func (m MealSlot) IsValid() bool {
	return m.Index() >= 0
}

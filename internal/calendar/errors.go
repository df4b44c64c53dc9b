package calendar

import "fmt"

// InvalidMonthError reports a month argument outside 1-12.
type InvalidMonthError struct {
	Month int
}

// Error implements the error interface.
func (e *InvalidMonthError) Error() string {
	return fmt.Sprintf("invalid month %d: must be between 1 and 12", e.Month)
}

// InvalidWeekdayError reports a first-weekday argument outside 0-6.
type InvalidWeekdayError struct {
	Weekday int
}

// Error implements the error interface.
func (e *InvalidWeekdayError) Error() string {
	return fmt.Sprintf("invalid first weekday %d: must be between 0 (Sunday) and 6 (Saturday)", e.Weekday)
}

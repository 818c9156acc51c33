package utils // package utils provides small helpers consumed by the inventory core

import "time"

// dueDateLayout is the wire form of every due date the system produces.
const dueDateLayout = "2006-01-02"

// DueDate returns the calendar date the given number of days after from,
// formatted as YYYY-MM-DD. AddDate carries month and year rollover, so a
// loan taken late in December lands correctly in January and February 29
// is handled on leap years.
func DueDate(from time.Time, days int) string {
    return from.AddDate(0, 0, days).Format(dueDateLayout)
}

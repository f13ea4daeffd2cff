package utils

import (
	"fmt"
	"strconv"
	"time"
)

// MessageType is a custom type used as a placeholder for various message types.
type MessageType int

// The message types used accross the CLI application.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
	EventMessage
)

// Colors used accross the CLI application.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
	EventColor   = "\x1b[33m"
)

// DecorateText shows the message types in different colors.
func DecorateText(s string, msgType MessageType) string {
	var color string
	switch msgType {
	case DefaultMessage:
		color = DefaultColor
	case StatusMessage:
		color = StatusColor
	case SuccessMessage:
		color = SuccessColor
	case ErrorMessage:
		color = ErrorColor
	case EventMessage:
		color = EventColor
	default:
		return s
	}
	return color + s + DefaultColor
}

// FormatDuration formats the gesture related durations, which are usually
// in the milliseconds range, into a human readable value.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	return fmt.Sprintf("%dm %.2fs", int64(d.Minutes()), d.Seconds()-float64(int64(d.Minutes())*60))
}

// FormatFloat prints f with at most two decimals and without trailing zeros.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(Round(f, 2), 'f', -1, 64)
}

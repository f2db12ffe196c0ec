// Package notification formats the email sent to a worker when work is
// assigned. Formatting is kept pure so it can be tested without a
// transport.
package notification

import (
	"fmt"
	"strings"
)

// Item is one line of assigned work in the message body.
type Item struct {
	HouseName string
	Quantity  int
	Comment   string
}

// Subject returns the subject line for an assignment notification.
func Subject(date string) string {
	return fmt.Sprintf("Work Assignment - %s", date)
}

// Body returns the plain-text body greeting the worker and listing the
// assigned houses with quantities and optional notes.
func Body(workerName, date string, items []Item) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hello %s,\n\n", workerName)
	fmt.Fprintf(&b, "Date: %s\n", date)
	b.WriteString("You have been assigned to the following houses:\n\n")

	for _, item := range items {
		fmt.Fprintf(&b, "- %s: %d bedding sets", item.HouseName, item.Quantity)
		if item.Comment != "" {
			fmt.Fprintf(&b, " | Note: %s", item.Comment)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nGood luck with your work!")

	return b.String()
}

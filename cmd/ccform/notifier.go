package main

import (
	"fmt"
	"io"

	"cc-details-portal/internal/form"
	"github.com/fatih/color"
)

// consoleNotifier prints notifications as coloured one-liners.
type consoleNotifier struct {
	out io.Writer
}

func (n consoleNotifier) Notify(notification form.Notification) {
	c := color.New(color.FgGreen, color.Bold)
	if notification.Variant == form.VariantDestructive {
		c = color.New(color.FgRed, color.Bold)
	}
	c.Fprintf(n.out, "%s: ", notification.Title)
	fmt.Fprintln(n.out, notification.Description)
}

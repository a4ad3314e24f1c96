package tui

import (
	"context"
	"io"

	"github.com/fatih/color"
	"github.com/geunaseh/jeumala/pkg/domain/types"
)

// colorNotifier prints success notices in green and errors in red
type colorNotifier struct {
	out     io.Writer
	success *color.Color
	failure *color.Color
}

func newColorNotifier(out io.Writer) *colorNotifier {
	return &colorNotifier{
		out:     out,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed, color.Bold),
	}
}

func (n *colorNotifier) Notify(message string, kind types.NoticeKind) {
	c := n.success
	prefix := "✓ "
	if kind == types.NoticeError {
		c = n.failure
		prefix = "✗ "
	}
	_, _ = c.Fprintln(n.out, prefix+message)
}

// driverConfirmer asks through the prompt driver; an aborted prompt declines
type driverConfirmer struct {
	driver PromptDriver
}

func (c *driverConfirmer) Confirm(ctx context.Context, message string) bool {
	ok, err := c.driver.Confirm(ctx, ConfirmConfig{Message: message})
	if err != nil {
		return false
	}
	return ok
}

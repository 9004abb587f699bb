package ui

import (
	"context"
	"fmt"

	"github.com/nzoschke/productivity/internal/ctxkeys"
)

type navLink struct {
	href  string
	label string
}

var navLinks = []navLink{
	{"/dashboard", "Dashboard"},
	{"/notes", "Notes"},
}

func appName(ctx context.Context) string {
	if cfg := ctxkeys.Config(ctx); cfg != nil && cfg.AppName != "" {
		return cfg.AppName
	}
	return "Productivity Hub"
}

func pageTitle(ctx context.Context, title string) string {
	return title + " | " + appName(ctx)
}

func fallbackNotice(n int) string {
	return fmt.Sprintf("Backend unavailable for %d tracker(s); showing saved copies.", n)
}

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/limaJavier/coursetable/internal/locale"
	"github.com/limaJavier/coursetable/pkg/model"
)

type styles struct {
	Heading lipgloss.Style
	Day     lipgloss.Style
	Muted   lipgloss.Style
	Warning lipgloss.Style
}

func newStyles() *styles {
	return &styles{
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Day:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
	}
}

// Renders the timetable with the locale's day names as styled headings
func (s *styles) timetable(timetable *model.Timetable, loc *locale.Locale) string {
	return timetable.Render(func(day time.Weekday) string {
		return s.Day.Render(loc.DayName(day))
	})
}

func (s *styles) numbered(options []string) string {
	var builder strings.Builder
	for i, option := range options {
		fmt.Fprintf(&builder, "%d. %v\n", i+1, option)
	}
	return strings.TrimSuffix(builder.String(), "\n")
}

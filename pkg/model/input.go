package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

var ErrUnknownDay = errors.New("unknown day")

type RawSlot struct {
	Day  string
	Time string // "HH:MM-HH:MM"
}

type RawSection struct {
	Code       string
	Name       string
	Section    string
	Classroom  string
	Instructor string
	Slots      []RawSlot
}

type RawCatalogInput struct {
	Sections []RawSection
}

// Reads a JSON catalog of the form {"sections": [{"code": ..., "section": ..., "slots": [{"day": "Monday", "time": "09:00-10:00"}]}]}
func CatalogFromJson(file string) (*Catalog, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog file: %w", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return nil, fmt.Errorf("cannot parse catalog file: %w", err)
	}

	var rawInput RawCatalogInput
	if err := mapstructure.Decode(inputJson, &rawInput); err != nil {
		return nil, fmt.Errorf("cannot decode catalog file: %w", err)
	}
	return ProcessRawInput(rawInput)
}

func ProcessRawInput(rawInput RawCatalogInput) (*Catalog, error) {
	catalog := NewCatalog()

	for _, rawSection := range rawInput.Sections {
		if rawSection.Code == "" || rawSection.Section == "" {
			return nil, fmt.Errorf("section must have a code and a section identifier: %+v", rawSection)
		}
		if len(rawSection.Slots) == 0 {
			return nil, fmt.Errorf("section %v has no time slots", SectionKey{rawSection.Code, rawSection.Section})
		}

		//** Manage section
		// Repeated keys extend the section first seen
		section, ok := catalog.Lookup(rawSection.Code, rawSection.Section)
		if !ok {
			section = NewSection(rawSection.Code, rawSection.Name, rawSection.Section, rawSection.Classroom, rawSection.Instructor)
			catalog.Add(section)
		}

		//** Manage slots
		for _, rawSlot := range rawSection.Slots {
			day, err := ParseWeekday(rawSlot.Day)
			if err != nil {
				return nil, fmt.Errorf("section %v: %w", section.Key(), err)
			}
			interval, err := ParseTimeInterval(rawSlot.Time)
			if err != nil {
				return nil, fmt.Errorf("section %v: %w", section.Key(), err)
			}
			section.AddTimeSlot(day, interval)
		}
	}

	return catalog, nil
}

// Parses an English weekday name ("Monday" or "Mon"), case-insensitively
func ParseWeekday(name string) (time.Weekday, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	day, ok := lo.Find(Weekdays, func(day time.Weekday) bool {
		full := strings.ToLower(day.String())
		return name == full || (len(name) == 3 && strings.HasPrefix(full, name))
	})
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDay, name)
	}
	return day, nil
}

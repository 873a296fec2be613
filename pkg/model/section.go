package model

import (
	"fmt"
	"slices"
	"time"

	"github.com/samber/lo"
)

// SectionKey identifies a section: two sections with the same key are the same section regardless of their other fields
type SectionKey struct {
	Code    string
	Section string
}

func (key SectionKey) String() string {
	return fmt.Sprintf("%v (Section: %v)", key.Code, key.Section)
}

type Section struct {
	Code       string
	Name       string
	Section    string
	Classroom  string
	Instructor string
	Schedule   map[time.Weekday][]TimeInterval // Intervals of each day are kept sorted by start
}

func NewSection(code, name, section, classroom, instructor string) *Section {
	return &Section{
		Code:       code,
		Name:       name,
		Section:    section,
		Classroom:  classroom,
		Instructor: instructor,
		Schedule:   make(map[time.Weekday][]TimeInterval),
	}
}

func (section *Section) Key() SectionKey {
	return SectionKey{Code: section.Code, Section: section.Section}
}

// Appends the interval to the day and re-sorts it by start. Duplicates are kept
func (section *Section) AddTimeSlot(day time.Weekday, interval TimeInterval) {
	if section.Schedule == nil {
		section.Schedule = make(map[time.Weekday][]TimeInterval)
	}
	section.Schedule[day] = append(section.Schedule[day], interval)
	slices.SortStableFunc(section.Schedule[day], func(a, b TimeInterval) int {
		return int(a.Start) - int(b.Start)
	})
}

// Checks whether both sections meet at overlapping times on a shared day
func (section *Section) OverlapsWith(other *Section) bool {
	for day, slots := range section.Schedule {
		otherSlots, ok := other.Schedule[day]
		if !ok {
			continue
		}
		for _, slot1 := range slots {
			for _, slot2 := range otherSlots {
				if slot1.Overlaps(slot2) {
					return true
				}
			}
		}
	}
	return false
}

// Scheduled days in rendering order
func (section *Section) Days() []time.Weekday {
	days := lo.Filter(lo.Keys(section.Schedule), func(day time.Weekday, _ int) bool {
		return len(section.Schedule[day]) > 0
	})
	sortDays(days)
	return days
}

// Label used in per-day listings
func (section *Section) Label() string {
	return section.Key().String()
}

func (section *Section) String() string {
	return fmt.Sprintf("%v %v (Section: %v)", section.Code, section.Name, section.Section)
}

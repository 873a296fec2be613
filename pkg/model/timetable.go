package model

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Timetable is a set of sections keyed by SectionKey. It holds references to sections owned by a Catalog and never mutates them
type Timetable struct {
	sections []*Section
	index    map[SectionKey]*Section
}

type DayEntry struct {
	Label    string
	Interval TimeInterval
}

type DaySchedule struct {
	Day     time.Weekday
	Entries []DayEntry
}

func NewTimetable(sections ...*Section) *Timetable {
	timetable := &Timetable{
		sections: make([]*Section, 0, len(sections)),
		index:    make(map[SectionKey]*Section, len(sections)),
	}
	timetable.add(sections...)
	return timetable
}

func (timetable *Timetable) add(sections ...*Section) {
	for _, section := range sections {
		if _, ok := timetable.index[section.Key()]; ok {
			continue
		}
		timetable.index[section.Key()] = section
		timetable.sections = append(timetable.sections, section)
	}
}

// Returns a new timetable holding the receiver's sections plus the given ones
func (timetable *Timetable) With(sections ...*Section) *Timetable {
	extended := NewTimetable(timetable.sections...)
	extended.add(sections...)
	return extended
}

// Sections in first-insertion order
func (timetable *Timetable) Sections() []*Section {
	return slices.Clone(timetable.sections)
}

func (timetable *Timetable) Len() int {
	return len(timetable.sections)
}

func (timetable *Timetable) Contains(key SectionKey) bool {
	_, ok := timetable.index[key]
	return ok
}

func (timetable *Timetable) HasCode(code string) bool {
	return lo.SomeBy(timetable.sections, func(section *Section) bool {
		return section.Code == code
	})
}

func (timetable *Timetable) Codes() []string {
	return lo.Uniq(lo.Map(timetable.sections, func(section *Section, _ int) string {
		return section.Code
	}))
}

func (timetable *Timetable) Keys() []SectionKey {
	return lo.Map(timetable.sections, func(section *Section, _ int) SectionKey {
		return section.Key()
	})
}

// Checks that no pair of sections overlaps on a shared day
func (timetable *Timetable) IsValid() bool {
	for i := range len(timetable.sections) - 1 {
		for j := i + 1; j < len(timetable.sections); j++ {
			if timetable.sections[i].OverlapsWith(timetable.sections[j]) {
				return false
			}
		}
	}
	return true
}

// Returns every pair of overlapping sections
func (timetable *Timetable) Conflicts() [][2]*Section {
	conflicts := make([][2]*Section, 0)
	for i := range len(timetable.sections) - 1 {
		for j := i + 1; j < len(timetable.sections); j++ {
			if timetable.sections[i].OverlapsWith(timetable.sections[j]) {
				conflicts = append(conflicts, [2]*Section{timetable.sections[i], timetable.sections[j]})
			}
		}
	}
	return conflicts
}

// Groups every (section, interval) entry by day. Days follow Weekdays, entries are sorted by start and empty days are omitted
func (timetable *Timetable) Daily() []DaySchedule {
	perDay := make(map[time.Weekday][]DayEntry)
	for _, section := range timetable.sections {
		for day, slots := range section.Schedule {
			for _, slot := range slots {
				perDay[day] = append(perDay[day], DayEntry{Label: section.Label(), Interval: slot})
			}
		}
	}

	daily := make([]DaySchedule, 0, len(perDay))
	for _, day := range Weekdays {
		entries, ok := perDay[day]
		if !ok || len(entries) == 0 {
			continue
		}
		// Ties keep section insertion order
		slices.SortStableFunc(entries, func(a, b DayEntry) int {
			return int(a.Interval.Start) - int(b.Interval.Start)
		})
		daily = append(daily, DaySchedule{Day: day, Entries: entries})
	}
	return daily
}

// Renders the per-day listing. dayName may be nil, in which case the English day names are used
func (timetable *Timetable) Render(dayName func(time.Weekday) string) string {
	if dayName == nil {
		dayName = time.Weekday.String
	}

	blocks := lo.Map(timetable.Daily(), func(schedule DaySchedule, _ int) string {
		lines := lo.Map(schedule.Entries, func(entry DayEntry, _ int) string {
			return fmt.Sprintf("%v %v", entry.Label, entry.Interval)
		})
		return fmt.Sprintf("%v:\n  %v", dayName(schedule.Day), strings.Join(lines, "\n  "))
	})
	return strings.Join(blocks, "\n\n")
}

func (timetable *Timetable) String() string {
	return timetable.Render(nil)
}

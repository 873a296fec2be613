package model

import (
	"slices"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	math1 := newTestSection("MATH 101", "1", slot(time.Monday, "09:00-10:00"))
	math2 := newTestSection("MATH 101", "2", slot(time.Monday, "09:30-10:30"))
	physics := newTestSection("PHYS 101", "1", slot(time.Monday, "10:00-11:00"))
	chemistry := newTestSection("CHEM 101", "1", slot(time.Tuesday, "09:00-12:00"))

	t.Run("Zero or one section", func(t *testing.T) {
		assert.True(t, NewTimetable().IsValid())
		assert.True(t, NewTimetable(math2).IsValid())
	})

	t.Run("Valid timetable", func(t *testing.T) {
		assert.True(t, NewTimetable(math1, physics, chemistry).IsValid())
	})

	t.Run("Invalid timetable", func(t *testing.T) {
		assert.False(t, NewTimetable(math2, physics, chemistry).IsValid())
	})

	t.Run("Invariant to insertion order", func(t *testing.T) {
		sections := []*Section{math1, math2, physics, chemistry}
		expected := NewTimetable(sections...).IsValid()
		for range 10 {
			slices.Reverse(sections)
			sections[0], sections[2] = sections[2], sections[0]
			assert.Equal(t, expected, NewTimetable(sections...).IsValid())
		}
	})
}

func TestTimetableSetSemantics(t *testing.T) {
	g := NewWithT(t)

	//** Arrange
	original := newTestSection("MATH 101", "1", slot(time.Monday, "09:00-10:00"))
	duplicate := NewSection("MATH 101", "Other name", "1", "B-202", "Other")
	physics := newTestSection("PHYS 101", "1", slot(time.Monday, "10:00-11:00"))

	//** Act
	timetable := NewTimetable(original, duplicate)
	extended := timetable.With(physics, original)

	//** Assert
	g.Expect(timetable.Len()).To(Equal(1))
	g.Expect(timetable.Sections()[0]).To(BeIdenticalTo(original))
	g.Expect(timetable.Contains(duplicate.Key())).To(BeTrue())
	g.Expect(extended.Len()).To(Equal(2))
	g.Expect(extended.Codes()).To(Equal([]string{"MATH 101", "PHYS 101"}))
	g.Expect(timetable.HasCode("PHYS 101")).To(BeFalse()) // With never modifies the receiver
	g.Expect(extended.HasCode("PHYS 101")).To(BeTrue())
}

func TestConflicts(t *testing.T) {
	math2 := newTestSection("MATH 101", "2", slot(time.Monday, "09:30-10:30"))
	physics := newTestSection("PHYS 101", "1", slot(time.Monday, "10:00-11:00"))
	chemistry := newTestSection("CHEM 101", "1", slot(time.Tuesday, "09:00-12:00"))

	conflicts := NewTimetable(math2, physics, chemistry).Conflicts()

	assert.Equal(t, [][2]*Section{{math2, physics}}, conflicts)
	assert.Empty(t, NewTimetable(physics, chemistry).Conflicts())
}

func TestDaily(t *testing.T) {
	//** Arrange
	timetable := NewTimetable(
		newTestSection("PHYS 101", "1", slot(time.Friday, "13:00-15:00"), slot(time.Monday, "10:00-11:00")),
		newTestSection("MATH 101", "1", slot(time.Monday, "08:00-10:00"), slot(time.Saturday, "09:00-10:00")),
	)

	//** Act
	daily := timetable.Daily()

	//** Assert
	assert.Equal(t, []DaySchedule{
		{
			Day: time.Monday,
			Entries: []DayEntry{
				{Label: "MATH 101 (Section: 1)", Interval: MustTimeInterval("08:00-10:00")},
				{Label: "PHYS 101 (Section: 1)", Interval: MustTimeInterval("10:00-11:00")},
			},
		},
		{
			Day:     time.Friday,
			Entries: []DayEntry{{Label: "PHYS 101 (Section: 1)", Interval: MustTimeInterval("13:00-15:00")}},
		},
		{
			Day:     time.Saturday,
			Entries: []DayEntry{{Label: "MATH 101 (Section: 1)", Interval: MustTimeInterval("09:00-10:00")}},
		},
	}, daily)
}

func TestRender(t *testing.T) {
	timetable := NewTimetable(
		newTestSection("PHYS 101", "1", slot(time.Wednesday, "10:00-11:00"), slot(time.Monday, "10:00-11:00")),
		newTestSection("MATH 101", "2", slot(time.Monday, "08:00-10:00")),
	)

	t.Run("Default day names", func(t *testing.T) {
		expected := "Monday:\n" +
			"  MATH 101 (Section: 2) 08:00-10:00\n" +
			"  PHYS 101 (Section: 1) 10:00-11:00\n" +
			"\n" +
			"Wednesday:\n" +
			"  PHYS 101 (Section: 1) 10:00-11:00"
		assert.Equal(t, expected, timetable.Render(nil))
		assert.Equal(t, expected, timetable.String())
	})

	t.Run("Custom day names", func(t *testing.T) {
		names := map[time.Weekday]string{time.Monday: "Pazartesi", time.Wednesday: "Çarşamba"}
		rendered := timetable.Render(func(day time.Weekday) string { return names[day] })
		assert.Contains(t, rendered, "Pazartesi:\n  MATH 101 (Section: 2) 08:00-10:00")
		assert.Contains(t, rendered, "\n\nÇarşamba:\n  PHYS 101 (Section: 1) 10:00-11:00")
	})

	t.Run("Empty timetable", func(t *testing.T) {
		assert.Equal(t, "", NewTimetable().Render(nil))
	})
}

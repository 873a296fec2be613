package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddTimeSlot(t *testing.T) {
	//** Arrange
	section := NewSection("MATH 101", "Calculus", "1", "A-101", "Instructor")

	//** Act
	section.AddTimeSlot(time.Monday, MustTimeInterval("13:00-14:00"))
	section.AddTimeSlot(time.Monday, MustTimeInterval("09:00-10:00"))
	section.AddTimeSlot(time.Monday, MustTimeInterval("09:00-10:00"))
	section.AddTimeSlot(time.Wednesday, MustTimeInterval("11:00-12:00"))

	//** Assert
	assert.Equal(t, []TimeInterval{
		MustTimeInterval("09:00-10:00"),
		MustTimeInterval("09:00-10:00"),
		MustTimeInterval("13:00-14:00"),
	}, section.Schedule[time.Monday])
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday}, section.Days())
}

func TestOverlapsWith(t *testing.T) {
	math := newTestSection("MATH 101", "1", slot(time.Monday, "09:00-10:00"), slot(time.Wednesday, "09:00-10:00"))

	t.Run("Same day overlap", func(t *testing.T) {
		physics := newTestSection("PHYS 101", "1", slot(time.Wednesday, "09:30-11:00"))
		assert.True(t, math.OverlapsWith(physics))
		assert.True(t, physics.OverlapsWith(math))
	})

	t.Run("Same time on different days", func(t *testing.T) {
		physics := newTestSection("PHYS 101", "1", slot(time.Tuesday, "09:00-10:00"))
		assert.False(t, math.OverlapsWith(physics))
	})

	t.Run("Touching slots", func(t *testing.T) {
		physics := newTestSection("PHYS 101", "1", slot(time.Monday, "10:00-11:00"), slot(time.Wednesday, "08:00-09:00"))
		assert.False(t, math.OverlapsWith(physics))
	})

	t.Run("Section without slots", func(t *testing.T) {
		assert.False(t, math.OverlapsWith(newTestSection("PHYS 101", "1")))
	})
}

func TestSectionKey(t *testing.T) {
	a := NewSection("MATH 101", "Calculus", "1", "A-101", "First")
	b := NewSection("MATH 101", "Calculus I", "1", "B-202", "Second")
	c := NewSection("MATH 101", "Calculus", "2", "A-101", "First")

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	assert.Equal(t, "MATH 101 (Section: 1)", a.Label())
	assert.Equal(t, "MATH 101 Calculus (Section: 1)", a.String())
}

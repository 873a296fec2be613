package model

import (
	"time"
)

type testSlot struct {
	day      time.Weekday
	interval string
}

func slot(day time.Weekday, interval string) testSlot {
	return testSlot{day: day, interval: interval}
}

func newTestSection(code, section string, slots ...testSlot) *Section {
	s := NewSection(code, code+" name", section, "A-101", "Instructor")
	for _, slot := range slots {
		s.AddTimeSlot(slot.day, MustTimeInterval(slot.interval))
	}
	return s
}

func newTestCatalog(sections ...*Section) *Catalog {
	catalog := NewCatalog()
	for _, section := range sections {
		catalog.Add(section)
	}
	return catalog
}

// MATH 101 §1 Mon 09:00-10:00, MATH 101 §2 Mon 09:30-10:30, PHYS 101 §1 Mon 10:00-11:00
func scenarioCatalog() *Catalog {
	return newTestCatalog(
		newTestSection("MATH 101", "1", slot(time.Monday, "09:00-10:00")),
		newTestSection("MATH 101", "2", slot(time.Monday, "09:30-10:30")),
		newTestSection("PHYS 101", "1", slot(time.Monday, "10:00-11:00")),
	)
}

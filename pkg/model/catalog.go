package model

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Catalog owns every known section, grouped by course code. It is built once and read-only afterwards
type Catalog struct {
	codes    []string // Codes in first-seen order
	sections map[string][]*Section
}

func NewCatalog() *Catalog {
	return &Catalog{
		codes:    make([]string, 0),
		sections: make(map[string][]*Section),
	}
}

// Adds the section unless its key is already tracked. Returns whether it was added
func (catalog *Catalog) Add(section *Section) bool {
	if _, ok := catalog.Lookup(section.Code, section.Section); ok {
		return false
	}

	if _, ok := catalog.sections[section.Code]; !ok {
		catalog.codes = append(catalog.codes, section.Code)
	}
	catalog.sections[section.Code] = append(catalog.sections[section.Code], section)
	return true
}

func (catalog *Catalog) Lookup(code, section string) (*Section, bool) {
	return lo.Find(catalog.sections[code], func(candidate *Section) bool {
		return candidate.Section == section
	})
}

// Sections of the course in insertion order
func (catalog *Catalog) Sections(code string) []*Section {
	return catalog.sections[code]
}

func (catalog *Catalog) Has(code string) bool {
	_, ok := catalog.sections[code]
	return ok
}

// Every section, codes in first-seen order and sections in insertion order
func (catalog *Catalog) All() []*Section {
	return lo.FlatMap(catalog.codes, func(code string, _ int) []*Section {
		return catalog.sections[code]
	})
}

// Number of distinct courses
func (catalog *Catalog) Len() int {
	return len(catalog.codes)
}

// Course codes sorted lexicographically
func (catalog *Catalog) Codes() []string {
	codes := slices.Clone(catalog.codes)
	slices.Sort(codes)
	return codes
}

// Returns "N. CODE" for each course over the sorted codes, numbered from 1
func (catalog *Catalog) NumberedCourseList() []string {
	return lo.Map(catalog.Codes(), func(code string, i int) string {
		return fmt.Sprintf("%d. %v", i+1, code)
	})
}

// Inverse of NumberedCourseList. The second value is false when number is outside [1, Len()]
func (catalog *Catalog) CodeForNumber(number int) (string, bool) {
	codes := catalog.Codes()
	if number < 1 || number > len(codes) {
		return "", false
	}
	return codes[number-1], true
}

// Maps the numbers to codes, dropping unknown numbers and repeated codes
func (catalog *Catalog) CodesForNumbers(numbers []int) []string {
	codes := lo.FilterMap(numbers, func(number int, _ int) (string, bool) {
		return catalog.CodeForNumber(number)
	})
	return lo.Uniq(codes)
}

// Codes that are not present in the catalog
func (catalog *Catalog) Unknown(codes []string) []string {
	return lo.Uniq(lo.Reject(codes, func(code string, _ int) bool {
		return catalog.Has(code)
	}))
}

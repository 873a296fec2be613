package model

import (
	"math"

	"github.com/samber/lo"
)

// Searcher enumerates the valid timetables that take exactly one section of each mandatory course.
// Codes unknown to the catalog are skipped. Timetables are returned in product order (the first code varies slowest)
type Searcher interface {
	Search(catalog *Catalog, mandatory []string) []*Timetable

	// Checks that the timetable is valid and holds exactly one section of each mandatory course known to the catalog
	Verify(timetable *Timetable, catalog *Catalog, mandatory []string) bool
}

const (
	ExhaustiveStrategy = "exhaustive"
	PrunedStrategy     = "pruned"
)

var Strategies = map[string]func() Searcher{
	ExhaustiveStrategy: NewExhaustiveSearcher,
	PrunedStrategy:     NewPrunedSearcher,
}

type SearchReport struct {
	Timetables []*Timetable
	Matched    []string // Mandatory codes present in the catalog, de-duplicated
	Unknown    []string // Mandatory codes absent from the catalog
}

// Tells an empty result caused by unknown codes apart from one where every combination conflicts
func (report SearchReport) NoCourseMatched() bool {
	return len(report.Matched) == 0
}

func Explain(searcher Searcher, catalog *Catalog, mandatory []string) SearchReport {
	codes := lo.Uniq(mandatory)
	return SearchReport{
		Timetables: searcher.Search(catalog, codes),
		Matched:    lo.Filter(codes, func(code string, _ int) bool { return catalog.Has(code) }),
		Unknown:    catalog.Unknown(codes),
	}
}

// Generate-and-test over the full Cartesian product
type exhaustiveSearcher struct{}

func NewExhaustiveSearcher() Searcher {
	return &exhaustiveSearcher{}
}

func (searcher *exhaustiveSearcher) Search(catalog *Catalog, mandatory []string) []*Timetable {
	candidates := candidateLists(catalog, mandatory)
	generator := newPermutationGenerator(domains(candidates)...)

	timetables := make([]*Timetable, 0)
	for _, permutation := range generator.ConstrainedPermutations(nil) {
		timetable := NewTimetable(pick(candidates, permutation)...)
		if timetable.IsValid() {
			timetables = append(timetables, timetable)
		}
	}
	return timetables
}

func (searcher *exhaustiveSearcher) Verify(timetable *Timetable, catalog *Catalog, mandatory []string) bool {
	return verify(timetable, catalog, mandatory)
}

// Rejects a partial assignment as soon as its newest section overlaps an earlier one. Output is identical to the exhaustive search
type prunedSearcher struct{}

func NewPrunedSearcher() Searcher {
	return &prunedSearcher{}
}

func (searcher *prunedSearcher) Search(catalog *Catalog, mandatory []string) []*Timetable {
	candidates := candidateLists(catalog, mandatory)
	generator := newPermutationGenerator(domains(candidates)...)

	constraints := []func(permutation []uint64) bool{
		// Newest(p) does not overlap p[k] for every assigned k before it
		func(permutation []uint64) bool {
			newest := lastAssigned(permutation)
			if newest <= 0 {
				return true
			}

			section := candidates[newest][permutation[newest]]
			for k := range newest {
				if section.OverlapsWith(candidates[k][permutation[k]]) {
					return false
				}
			}
			return true
		},
	}

	return lo.Map(generator.ConstrainedPermutations(constraints), func(permutation []uint64, _ int) *Timetable {
		return NewTimetable(pick(candidates, permutation)...)
	})
}

func (searcher *prunedSearcher) Verify(timetable *Timetable, catalog *Catalog, mandatory []string) bool {
	return verify(timetable, catalog, mandatory)
}

// One candidate list per distinct mandatory code known to the catalog
func candidateLists(catalog *Catalog, mandatory []string) [][]*Section {
	return lo.FilterMap(lo.Uniq(mandatory), func(code string, _ int) ([]*Section, bool) {
		sections := catalog.Sections(code)
		return sections, len(sections) > 0
	})
}

func domains(candidates [][]*Section) []uint64 {
	return lo.Map(candidates, func(sections []*Section, _ int) uint64 {
		return uint64(len(sections))
	})
}

func pick(candidates [][]*Section, permutation []uint64) []*Section {
	return lo.Map(permutation, func(choice uint64, domain int) *Section {
		return candidates[domain][choice]
	})
}

// Index of the last assigned position, -1 if none is assigned. Positions are assigned in order
func lastAssigned(permutation []uint64) int {
	for i := len(permutation) - 1; i >= 0; i-- {
		if permutation[i] != math.MaxUint64 {
			return i
		}
	}
	return -1
}

func verify(timetable *Timetable, catalog *Catalog, mandatory []string) bool {
	candidates := candidateLists(catalog, mandatory)
	if timetable.Len() != len(candidates) || !timetable.IsValid() {
		return false
	}

	// Exactly one section taken from each candidate list
	return lo.EveryBy(candidates, func(sections []*Section) bool {
		return lo.CountBy(sections, func(section *Section) bool {
			return timetable.Contains(section.Key())
		}) == 1
	})
}

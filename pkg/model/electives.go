package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Prompter answers the requests issued while extending a timetable with electives
type Prompter interface {
	// Presents the numbered options and returns the free-text answer: either the skip sentinel or a comma-separated list of 1-based numbers
	SelectElectives(options []string) (string, error)

	// Reports the selections that conflict with the base timetable and the ones that only conflict with another
	// selection of the same answer, then asks whether to choose again
	ConfirmRetry(withBase, withSelection []string) (bool, error)
}

type ElectiveOutcome int

const (
	Completed ElectiveOutcome = iota
	Skipped
	StoppedWithConflicts
	NoElectivesAvailable
)

var electiveOutcomes = map[ElectiveOutcome]string{
	Completed:            "completed",
	Skipped:              "skipped",
	StoppedWithConflicts: "stopped with conflicts",
	NoElectivesAvailable: "no electives available",
}

func (outcome ElectiveOutcome) String() string {
	if name, ok := electiveOutcomes[outcome]; ok {
		return name
	}
	return fmt.Sprintf("ElectiveOutcome(%d)", int(outcome))
}

const DefaultSkipSentinel = "S"

type ElectiveExtender struct {
	Catalog      *Catalog
	Prompter     Prompter
	SkipSentinel string // Compared case-insensitively; DefaultSkipSentinel when empty
	Logger       *zap.Logger
}

func NewElectiveExtender(catalog *Catalog, prompter Prompter, skipSentinel string, logger *zap.Logger) *ElectiveExtender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ElectiveExtender{
		Catalog:      catalog,
		Prompter:     prompter,
		SkipSentinel: skipSentinel,
		Logger:       logger,
	}
}

// Offers the sections whose course is not in base until the user completes, skips or stops.
// The returned timetable is always a new one; base is never modified
func (extender *ElectiveExtender) Extend(base *Timetable) (*Timetable, ElectiveOutcome, error) {
	logger := extender.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sentinel := extender.SkipSentinel
	if sentinel == "" {
		sentinel = DefaultSkipSentinel
	}

	selectable := lo.Reject(extender.Catalog.All(), func(section *Section, _ int) bool {
		return base.HasCode(section.Code)
	})

	for round := 1; ; round++ {
		//** Offering
		if len(selectable) == 0 {
			logger.Debug("no electives available", zap.Int("round", round))
			return base.With(), NoElectivesAvailable, nil
		}

		answer, err := extender.Prompter.SelectElectives(sectionNames(selectable))
		if err != nil {
			return nil, 0, fmt.Errorf("cannot read elective selection: %w", err)
		}

		numbers, skip := ParseSelection(answer, len(selectable), sentinel)
		if skip {
			logger.Debug("electives skipped", zap.Int("round", round))
			return base.With(), Skipped, nil
		}

		selected := lo.Map(numbers, func(number int, _ int) *Section {
			return selectable[number-1]
		})
		valid, withBase, withSelection := partition(base, selected)
		logger.Debug("electives checked",
			zap.Int("round", round),
			zap.Int("selected", len(selected)),
			zap.Int("valid", len(valid)),
			zap.Int("conflictsWithBase", len(withBase)),
			zap.Int("conflictsWithSelection", len(withSelection)),
		)

		if len(withBase) == 0 && len(withSelection) == 0 {
			return base.With(valid...), Completed, nil
		}

		retry, err := extender.Prompter.ConfirmRetry(sectionNames(withBase), sectionNames(withSelection))
		if err != nil {
			return nil, 0, fmt.Errorf("cannot read retry confirmation: %w", err)
		}
		if !retry {
			return base.With(valid...), StoppedWithConflicts, nil
		}

		// Sections that only clashed with another selection still fit base and stay on offer
		selectable = lo.Reject(selectable, func(section *Section, _ int) bool {
			return lo.Contains(withBase, section)
		})
	}
}

// Splits the selection into the sections that can be added together to base, the ones that conflict with base
// and the ones that fit base but conflict with a section accepted before them in the same selection
func partition(base *Timetable, selected []*Section) (valid, withBase, withSelection []*Section) {
	valid, withBase, withSelection = make([]*Section, 0), make([]*Section, 0), make([]*Section, 0)
	current := base
	for _, section := range selected {
		switch {
		case !base.With(section).IsValid():
			withBase = append(withBase, section)
		case !current.With(section).IsValid():
			withSelection = append(withSelection, section)
		default:
			valid = append(valid, section)
			current = current.With(section)
		}
	}
	return valid, withBase, withSelection
}

func sectionNames(sections []*Section) []string {
	return lo.Map(sections, func(section *Section, _ int) string {
		return section.String()
	})
}

// Parses a selection answer. Returns skip when the answer is the sentinel; otherwise the distinct numbers within [1, count] in the order given.
// Non-numeric and out-of-range tokens are dropped
func ParseSelection(answer string, count int, skipSentinel string) (numbers []int, skip bool) {
	answer = strings.TrimSpace(answer)
	if skipSentinel != "" && strings.EqualFold(answer, skipSentinel) {
		return nil, true
	}

	numbers = lo.FilterMap(strings.Split(answer, ","), func(token string, _ int) (int, bool) {
		token = strings.TrimSpace(token)
		if token == "" || strings.ContainsFunc(token, func(r rune) bool { return r < '0' || r > '9' }) {
			return 0, false
		}
		number, err := strconv.Atoi(token)
		return number, err == nil && number >= 1 && number <= count
	})
	return lo.Uniq(numbers), false
}

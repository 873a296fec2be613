package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limaJavier/coursetable/pkg/model"
)

func TestGetScenarios(t *testing.T) {
	scenarios := getScenarios(2)

	assert.Len(t, scenarios, 3*3*2)
	assert.Equal(t, ScenarioMetadata{Seed: 1, Courses: 3, Sections: 3, SlotsLimit: 3}, scenarios[1])
	assert.Empty(t, getScenarios(0))
}

func TestGenerateCatalog(t *testing.T) {
	scenario := ScenarioMetadata{Seed: 4, Courses: 5, Sections: 3, SlotsLimit: 3}

	first := generateCatalog(scenario)
	second := generateCatalog(scenario)

	assert.Equal(t, 5, first.Len())
	assert.Equal(t, []string{"CRS 101", "CRS 102", "CRS 103", "CRS 104", "CRS 105"}, first.Codes())
	assert.Len(t, first.All(), 15)
	for _, section := range first.All() {
		slots := 0
		for _, day := range section.Days() {
			assert.NotContains(t, []time.Weekday{time.Saturday, time.Sunday}, day)
			slots += len(section.Schedule[day])
		}
		assert.GreaterOrEqual(t, slots, 1)
		assert.LessOrEqual(t, slots, scenario.SlotsLimit)
	}

	// Same scenario, same catalog
	search := model.NewExhaustiveSearcher()
	assert.Equal(t, len(search.Search(first, first.Codes())), len(search.Search(second, second.Codes())))
	assert.Equal(t, first.All()[7].Schedule, second.All()[7].Schedule)
}

func TestToCsv(t *testing.T) {
	//** Arrange
	path := filepath.Join(t.TempDir(), "results.csv")
	results := []BenchmarkResult{{
		Strategy:   model.PrunedStrategy,
		Scenario:   ScenarioMetadata{Seed: 2, Courses: 3, Sections: 5, SlotsLimit: 3},
		Duration:   1500 * time.Microsecond,
		Timetables: 12,
	}}

	//** Act
	err := toCsv(path, results)

	//** Assert
	require.NoError(t, err)
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Strategy", "Seed", "Courses", "Sections", "Slots-Limit", "Duration(µs)", "Timetables"},
		{"pruned", "2", "3", "5", "3", "1500", "12"},
	}, records)
}

func TestToCsvErrors(t *testing.T) {
	results := []BenchmarkResult{{Strategy: model.ExhaustiveStrategy}}

	t.Run("Cannot create", func(t *testing.T) {
		err := toCsv(filepath.Join(t.TempDir(), "missing", "results.csv"), results)
		assert.ErrorContains(t, err, "cannot create CSV file")
	})

	t.Run("Failed flush", func(t *testing.T) {
		if _, err := os.Stat("/dev/full"); err != nil {
			t.Skip("/dev/full is not available")
		}
		// Every write to /dev/full fails, so the buffered records are only rejected on flush
		err := toCsv("/dev/full", results)
		assert.ErrorContains(t, err, "cannot flush CSV file")
	})
}

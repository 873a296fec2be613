package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/limaJavier/coursetable/pkg/model"
)

const (
	firstHour = 8
	lastHour  = 18
)

type ScenarioMetadata struct {
	Seed       uint64
	Courses    int
	Sections   int // Sections per course
	SlotsLimit int // Maximum weekly slots per section
}

type BenchmarkResult struct {
	Strategy   string
	Scenario   ScenarioMetadata
	Duration   time.Duration
	Timetables int
}

func main() {
	outPtr := flag.String("out", "benchmark_results.csv", "Path to the CSV file where the results will be written")
	seedsPtr := flag.Int("seeds", 3, "Number of random catalogs generated per scenario")
	flag.Parse()

	scenarios := getScenarios(*seedsPtr)
	strategies := lo.Keys(model.Strategies)
	slices.Sort(strategies)
	results := make([]BenchmarkResult, 0, len(scenarios)*len(strategies))

	for _, scenario := range scenarios {
		catalog := generateCatalog(scenario)
		mandatory := catalog.Codes()

		counts := make([]int, 0, len(strategies))
		for _, strategy := range strategies {
			fmt.Printf("Benchmarking strategy \"%v\" with %v courses, %v sections each and seed %v\n", strategy, scenario.Courses, scenario.Sections, scenario.Seed)

			searcher := model.Strategies[strategy]()
			start := time.Now()
			timetables := searcher.Search(catalog, mandatory)
			duration := time.Since(start)

			counts = append(counts, len(timetables))
			results = append(results, BenchmarkResult{
				Strategy:   strategy,
				Scenario:   scenario,
				Duration:   duration,
				Timetables: len(timetables),
			})
		}

		// Every strategy must find the same timetables
		if len(lo.Uniq(counts)) > 1 {
			log.Fatalf("strategies disagree on scenario %+v: %v", scenario, counts)
		}
	}

	if err := toCsv(*outPtr, results); err != nil {
		log.Fatal(err)
	}
}

func getScenarios(seeds int) []ScenarioMetadata {
	scenarios := make([]ScenarioMetadata, 0)
	for _, courses := range []int{3, 5, 7} {
		for _, sections := range []int{3, 5, 8} {
			for seed := range seeds {
				scenarios = append(scenarios, ScenarioMetadata{
					Seed:       uint64(seed),
					Courses:    courses,
					Sections:   sections,
					SlotsLimit: 3,
				})
			}
		}
	}
	return scenarios
}

// Builds a random catalog where each section meets between 1 and SlotsLimit times from Monday to Friday
func generateCatalog(scenario ScenarioMetadata) *model.Catalog {
	random := rand.New(rand.NewPCG(scenario.Seed, uint64(scenario.Courses*100+scenario.Sections)))
	catalog := model.NewCatalog()

	for course := range scenario.Courses {
		code := fmt.Sprintf("CRS %03d", course+101)
		for section := range scenario.Sections {
			s := model.NewSection(code, fmt.Sprintf("Course %d", course+1), fmt.Sprint(section+1), "", "")

			slots := 1 + random.IntN(scenario.SlotsLimit)
			for range slots {
				day := model.Weekdays[random.IntN(5)]
				startHour := firstHour + random.IntN(lastHour-firstHour-1)
				start := lo.Must(model.NewClock(startHour, 0))
				end := lo.Must(model.NewClock(startHour+1+random.IntN(2), 0))
				s.AddTimeSlot(day, lo.Must(model.NewTimeInterval(start, end)))
			}
			catalog.Add(s)
		}
	}
	return catalog
}

func toCsv(path string, results []BenchmarkResult) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	header := []string{"Strategy", "Seed", "Courses", "Sections", "Slots-Limit", "Duration(µs)", "Timetables"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write(toRecord(result)); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("cannot flush CSV file: %w", err)
	}
	return nil
}

func toRecord(result BenchmarkResult) []string {
	return []string{
		result.Strategy,
		fmt.Sprintf("%d", result.Scenario.Seed),
		fmt.Sprintf("%d", result.Scenario.Courses),
		fmt.Sprintf("%d", result.Scenario.Sections),
		fmt.Sprintf("%d", result.Scenario.SlotsLimit),
		fmt.Sprintf("%d", result.Duration.Microseconds()),
		fmt.Sprintf("%d", result.Timetables),
	}
}

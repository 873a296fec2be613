package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/limaJavier/coursetable/pkg/model"
)

var (
	searchMandatory []string
	searchCount     bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Print every conflict-free schedule for the mandatory courses",
	Long: `Finds every combination that takes one section of each mandatory course and
has no overlapping classes. Courses are given by code, e.g.
  coursetable search -f export.txt -m "MATH 101" -m "PHYS 101"`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringSliceVarP(&searchMandatory, "mandatory", "m", nil, "mandatory course codes (repeatable or comma-separated)")
	searchCmd.Flags().BoolVar(&searchCount, "count", false, "only print the number of schedules")
	_ = searchCmd.MarkFlagRequired("mandatory")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.loadCatalog(cmd); err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	mandatory := lo.Map(searchMandatory, func(code string, _ int) string {
		return strings.TrimSpace(code)
	})
	report := model.Explain(s.searcher, s.catalog, mandatory)

	if len(report.Unknown) > 0 {
		fmt.Fprintf(out, "%v %v\n", s.styles.Warning.Render(s.locale.UnknownCourses), strings.Join(report.Unknown, ", "))
	}

	for _, timetable := range report.Timetables {
		if !s.searcher.Verify(timetable, s.catalog, mandatory) {
			return fmt.Errorf("verification failed for schedule %v", timetable.Keys())
		}
	}

	if searchCount {
		fmt.Fprintln(out, len(report.Timetables))
		return nil
	}
	if len(report.Timetables) == 0 {
		fmt.Fprintln(out, s.styles.Warning.Render(s.locale.NoSchedule))
		return nil
	}
	printTimetables(out, s, report.Timetables)
	s.logger.Debug("search done", zap.Int("schedules", len(report.Timetables)))
	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/limaJavier/coursetable/pkg/model"
)

var coursesSections bool

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the numbered courses of the export",
	Args:  cobra.NoArgs,
	RunE:  runCourses,
}

func init() {
	coursesCmd.Flags().BoolVar(&coursesSections, "sections", false, "also list every section with its classroom, instructor and time slots")
	rootCmd.AddCommand(coursesCmd)
}

func runCourses(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.loadCatalog(cmd); err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if !coursesSections {
		fmt.Fprintln(out, strings.Join(s.catalog.NumberedCourseList(), "\n"))
		return nil
	}

	for _, code := range s.catalog.Codes() {
		fmt.Fprintln(out, s.styles.Heading.Render(code))
		for _, section := range s.catalog.Sections(code) {
			fmt.Fprintf(out, "  %v\n", section)
			fmt.Fprintf(out, "    %v / %v\n", section.Classroom, section.Instructor)
			for _, day := range section.Days() {
				slots := lo.Map(section.Schedule[day], func(slot model.TimeInterval, _ int) string {
					return slot.String()
				})
				fmt.Fprintf(out, "    %v: %v\n", s.locale.DayName(day), strings.Join(slots, ", "))
			}
		}
	}
	return nil
}

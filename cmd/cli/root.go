package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/limaJavier/coursetable/pkg/model"
)

var (
	configPath   string
	inputFile    string
	jsonCatalog  bool
	localeFlag   string
	strategyFlag string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "coursetable",
	Short: "Build a weekly class timetable from the department timetable export",
	Long: `Reads the department timetable copied from OBS (pasted on the standard input or
given with --file), lists the courses, finds every conflict-free combination of
sections for the mandatory courses and lets you add electives to the chosen one.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          runInteractive,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config.toml file (defaults to the one next to the executable, if any)")
	rootCmd.PersistentFlags().StringVarP(&inputFile, "file", "f", "", "read the timetable export from a file instead of the standard input")
	rootCmd.PersistentFlags().BoolVar(&jsonCatalog, "json", false, "treat --file as a JSON catalog instead of an OBS export")
	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", "tr", `language of the export and the prompts: "tr" or "en"`)
	rootCmd.PersistentFlags().StringVar(&strategyFlag, "strategy", model.PrunedStrategy, `search strategy: "pruned" or "exhaustive"`)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.loadCatalog(cmd); err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	//** Mandatory courses
	fmt.Fprintln(out, s.styles.Heading.Render(s.locale.AvailableCourses))
	fmt.Fprintln(out, strings.Join(s.catalog.NumberedCourseList(), "\n"))
	fmt.Fprintf(out, "\n%v\n> ", s.locale.SelectMandatory)

	answer, err := readLine(s.in)
	if err != nil {
		return fmt.Errorf("cannot read mandatory courses: %w", err)
	}
	numbers, _ := model.ParseSelection(answer, s.catalog.Len(), "")
	mandatory := s.catalog.CodesForNumbers(numbers)
	s.logger.Debug("mandatory courses selected", zap.Strings("codes", mandatory))

	//** Search
	report := model.Explain(s.searcher, s.catalog, mandatory)
	if len(report.Timetables) == 0 {
		if report.NoCourseMatched() {
			fmt.Fprintf(out, "\n%v\n", s.styles.Warning.Render(s.locale.NoCourseMatched))
		}
		fmt.Fprintf(out, "\n%v\n", s.styles.Warning.Render(s.locale.NoSchedule))
		return nil
	}

	printTimetables(out, s, report.Timetables)

	//** Choice
	fmt.Fprintf(out, "\n%v\n> ", fmt.Sprintf(s.locale.ChooseSchedule, len(report.Timetables)))
	answer, err = readLine(s.in)
	if err != nil {
		return fmt.Errorf("cannot read schedule choice: %w", err)
	}
	choice, err := strconv.Atoi(answer)
	if err != nil || choice < 1 || choice > len(report.Timetables) {
		fmt.Fprintln(out, s.styles.Warning.Render(s.locale.InvalidChoice))
		return nil
	}
	final := report.Timetables[choice-1]

	//** Electives
	fmt.Fprintf(out, "\n%v\n> ", s.locale.AskElectives)
	answer, err = readLine(s.in)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("cannot read electives answer: %w", err)
	}
	if s.locale.IsYes(answer) {
		prompter := &consolePrompter{in: s.in, out: out, locale: s.locale, styles: s.styles}
		extender := model.NewElectiveExtender(s.catalog, prompter, s.locale.Skip, s.logger)

		extended, outcome, err := extender.Extend(final)
		if err != nil {
			return err
		}
		s.logger.Debug("electives done", zap.Stringer("outcome", outcome), zap.Int("sections", extended.Len()))
		if outcome == model.NoElectivesAvailable {
			fmt.Fprintf(out, "\n%v\n", s.styles.Warning.Render(s.locale.NoElectives))
		}
		final = extended
	}

	fmt.Fprintf(out, "\n%v\n%v\n", s.styles.Heading.Render(s.locale.FinalSchedule), s.styles.timetable(final, s.locale))
	return nil
}

func printTimetables(out io.Writer, s *session, timetables []*model.Timetable) {
	fmt.Fprintf(out, "\n%v\n", s.styles.Heading.Render(fmt.Sprintf(s.locale.FoundSchedules, len(timetables))))
	for i, timetable := range timetables {
		fmt.Fprintf(out, "\n%v\n%v\n", s.styles.Heading.Render(fmt.Sprintf(s.locale.ScheduleHeading, i+1)), s.styles.timetable(timetable, s.locale))
	}
}

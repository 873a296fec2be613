// Package obs turns the department timetable copied from the student
// information system (OBS) into a model.Catalog.
//
// The copied page lists the week in pairs of days: a line naming one or two
// days is followed by one table per day, each table starting with the
// "Saat" header row. Format rewrites that layout into one block per day and
// Parse reads the blocks into sections.
package obs

import (
	"strings"

	"github.com/samber/lo"

	"github.com/limaJavier/coursetable/internal/locale"
)

const (
	HeaderMarker   = "Saat"
	StandardHeader = "Saat\tDers Kodu\tDers Adı\tDerslik\tÖğretim Elemanı"
	Columns        = 5

	// Shown by the export in place of the table of a day without classes
	emptyDayPlaceholder = "Tanımlı Ders Programı Bulunamadı!"
)

// Rewrites the pasted export into "Day\nHeader\nrows...\n" blocks separated by a blank line.
// Rows with fewer than Columns columns are padded with notEntered
func Format(raw string, notEntered string) string {
	raw = strings.ReplaceAll(raw, emptyDayPlaceholder, StandardHeader)
	lines := strings.Split(strings.TrimSpace(raw), "\n")

	output := make([]string, 0, len(lines))
	i := 0
	for i < len(lines) {
		days := dayHeading(lines[i])
		i++
		if len(days) == 0 {
			continue
		}

		// Skip to the first table
		for i < len(lines) && !isHeader(lines[i]) {
			i++
		}
		if i >= len(lines) {
			break
		}

		header := strings.TrimSpace(lines[i])
		var rows []string
		rows, i = collectRows(lines, i+1, func(line string) bool {
			return isHeader(line) || len(dayHeading(line)) > 0
		})
		output = append(output, dayBlock(days[0], header, rows, notEntered)...)

		// The second table belongs to the second day of the heading, if any
		if i < len(lines) && isHeader(lines[i]) {
			header = strings.TrimSpace(lines[i])
			rows, i = collectRows(lines, i+1, func(line string) bool {
				return len(dayHeading(line)) > 0
			})
			if len(days) > 1 {
				output = append(output, dayBlock(days[1], header, rows, notEntered)...)
			}
		}
	}

	// Drop the trailing separator
	if len(output) > 0 && output[len(output)-1] == "" {
		output = output[:len(output)-1]
	}
	return strings.Join(output, "\n")
}

// Day names found on a heading line. Table rows (tab separated) are never headings
func dayHeading(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" || strings.Contains(line, "\t") {
		return nil
	}
	return lo.Filter(strings.Fields(line), func(word string, _ int) bool {
		_, ok := locale.ParseDay(word)
		return ok
	})
}

func isHeader(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), HeaderMarker)
}

// Collects the non-blank rows starting at start until stop holds. Returns the rows and the index where it stopped
func collectRows(lines []string, start int, stop func(line string) bool) ([]string, int) {
	rows := make([]string, 0)
	i := start
	for ; i < len(lines) && !stop(lines[i]); i++ {
		if row := strings.TrimSpace(lines[i]); row != "" {
			rows = append(rows, row)
		}
	}
	return rows, i
}

func dayBlock(day, header string, rows []string, notEntered string) []string {
	block := []string{day}
	if header != "" {
		block = append(block, header)
	}
	for _, row := range rows {
		parts := strings.Split(row, "\t")
		if len(parts) < Columns {
			parts = append(parts, notEntered)
		}
		block = append(block, strings.Join(parts, "\t"))
	}
	return append(block, "")
}

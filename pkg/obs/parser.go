package obs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/limaJavier/coursetable/internal/locale"
	"github.com/limaJavier/coursetable/pkg/model"
)

var ErrEmptyCatalog = errors.New("no course could be read from the input")

// Matches "MATH 101(2)": the course code followed by the section in parentheses
var codePattern = regexp.MustCompile(`^(\p{Lu}+ \d+)\((\d+)\)`)

type Parser struct {
	Unassigned string // Instructor given to rows with a blank instructor column
	Logger     *zap.Logger
}

func NewParser(unassigned string, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{Unassigned: unassigned, Logger: logger}
}

// Reads formatted text (see Format) into a catalog. Lines that cannot be read are skipped
func (parser *Parser) Parse(text string) (*model.Catalog, error) {
	logger := parser.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	catalog := model.NewCatalog()
	var currentDay *time.Weekday

	for number, line := range strings.Split(text, "\n") {
		lineLogger := logger.With(zap.Int("line", number+1))

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, HeaderMarker+"\t") {
			continue
		}

		// Day heading
		if !strings.Contains(trimmed, "\t") {
			day, ok := locale.ParseDay(trimmed)
			if !ok {
				lineLogger.Debug("unknown day heading, skipping its rows", zap.String("heading", trimmed))
				currentDay = nil
				continue
			}
			currentDay = &day
			continue
		}

		// Only surrounding spaces are trimmed so that a blank last column is kept
		parts := strings.Split(strings.Trim(line, " \r"), "\t")
		if len(parts) != Columns {
			lineLogger.Debug("unexpected column count", zap.Int("columns", len(parts)))
			continue
		}
		timeStr, codeWithSection, name, classroom, instructor := parts[0], parts[1], parts[2], parts[3], parts[4]

		match := codePattern.FindStringSubmatch(strings.TrimSpace(codeWithSection))
		if match == nil {
			lineLogger.Debug("unrecognized course code", zap.String("code", codeWithSection))
			continue
		}
		code, sectionId := match[1], match[2]

		if currentDay == nil {
			lineLogger.Debug("row outside of a known day", zap.String("code", code))
			continue
		}

		interval, err := model.ParseTimeInterval(timeStr)
		if err != nil {
			lineLogger.Debug("invalid time", zap.String("code", code), zap.Error(err))
			continue
		}

		if strings.TrimSpace(instructor) == "" {
			instructor = parser.Unassigned
		}

		// Sections are created on first mention and extended afterwards
		section, ok := catalog.Lookup(code, sectionId)
		if !ok {
			section = model.NewSection(code, strings.TrimSpace(name), sectionId, strings.TrimSpace(classroom), strings.TrimSpace(instructor))
			catalog.Add(section)
		}
		section.AddTimeSlot(*currentDay, interval)
	}

	if catalog.Len() == 0 {
		return catalog, ErrEmptyCatalog
	}
	logger.Debug("catalog parsed", zap.Int("courses", catalog.Len()), zap.Int("sections", len(catalog.All())))
	return catalog, nil
}

// Reads pasted text until blankLines consecutive blank lines or EOF. Blank lines are dropped.
// Reading stops right after the last blank line so the reader can still serve later answers
func ReadPasted(reader *bufio.Reader, blankLines int) (string, error) {
	lines := make([]string, 0)
	blanks := 0
	for blanks < blankLines {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("cannot read pasted input: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			blanks++
		} else {
			blanks = 0
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}

		if errors.Is(err, io.EOF) {
			break
		}
	}
	return strings.Join(lines, "\n"), nil
}

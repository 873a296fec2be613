package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/limaJavier/coursetable/internal/locale"
	"github.com/limaJavier/coursetable/pkg/model"
)

var _ model.Prompter = (*consolePrompter)(nil)

// consolePrompter asks the elective questions on a line-based console
type consolePrompter struct {
	in     *bufio.Reader
	out    io.Writer
	locale *locale.Locale
	styles *styles
}

func (prompter *consolePrompter) SelectElectives(options []string) (string, error) {
	fmt.Fprintf(prompter.out, "\n%v\n", prompter.styles.Heading.Render(prompter.locale.ElectiveOptions))
	fmt.Fprintln(prompter.out, prompter.styles.numbered(options))
	fmt.Fprintf(prompter.out, "\n%v\n", prompter.locale.SelectElectives)
	return prompter.ask()
}

func (prompter *consolePrompter) ConfirmRetry(withBase, withSelection []string) (bool, error) {
	prompter.report(prompter.locale.ConflictReport, withBase)
	prompter.report(prompter.locale.SelectionConflictReport, withSelection)
	fmt.Fprintf(prompter.out, "\n%v\n", prompter.locale.AskRetry)

	answer, err := prompter.ask()
	if err != nil {
		return false, err
	}
	// Anything but an explicit no means retry
	return !prompter.locale.IsNo(answer), nil
}

func (prompter *consolePrompter) report(message string, sections []string) {
	if len(sections) == 0 {
		return
	}
	fmt.Fprintf(prompter.out, "\n%v\n", prompter.styles.Warning.Render(message))
	for _, section := range sections {
		fmt.Fprintf(prompter.out, "- %v\n", section)
	}
}

func (prompter *consolePrompter) ask() (string, error) {
	fmt.Fprint(prompter.out, "> ")
	return readLine(prompter.in)
}

// Reads one line without its terminator. A last line without a newline is returned as is
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

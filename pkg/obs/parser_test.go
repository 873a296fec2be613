package obs

import (
	"bufio"
	"strings"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/limaJavier/coursetable/pkg/model"
)

const testUnassigned = "Not yet assigned"

func TestParse(t *testing.T) {
	t.Run("Correct flow", func(t *testing.T) {
		//** Arrange
		text := lines(
			"Pazartesi",
			StandardHeader,
			"09:00-10:00\tMATH 101(1)\tCalculus\tA-101\tAda",
			"09:00-10:00\tMATH 101(2)\tCalculus\tA-102\t",
			"",
			"Çarşamba",
			StandardHeader,
			"13:00-14:00\tMATH 101(1)\tCalculus\tA-101\tAda",
			"10:00-11:00\tPHYS 101(1)\tPhysics\tB-201\tBob",
		)
		parser := NewParser(testUnassigned, nil)

		//** Act
		catalog, err := parser.Parse(text)

		//** Assert
		require.NoError(t, err)
		assert.Equal(t, []string{"1. MATH 101", "2. PHYS 101"}, catalog.NumberedCourseList())
		assert.Len(t, catalog.Sections("MATH 101"), 2)

		math1, ok := catalog.Lookup("MATH 101", "1")
		require.True(t, ok)
		assert.Equal(t, "Calculus", math1.Name)
		assert.Equal(t, "A-101", math1.Classroom)
		assert.Equal(t, "Ada", math1.Instructor)
		assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday}, math1.Days())
		assert.Equal(t, []model.TimeInterval{model.MustTimeInterval("13:00-14:00")}, math1.Schedule[time.Wednesday])

		// A blank instructor column becomes the unassigned sentinel
		math2, ok := catalog.Lookup("MATH 101", "2")
		require.True(t, ok)
		assert.Equal(t, testUnassigned, math2.Instructor)
	})

	t.Run("Formatted export", func(t *testing.T) {
		g := NewWithT(t)
		raw := lines(
			"Monday Tuesday",
			StandardHeader,
			"09:00-10:00\tMATH 101(1)\tCalculus\tA-101\tAda",
			StandardHeader,
			"10:00-11:00\tPHYS 101(1)\tPhysics\tB-201",
		)

		catalog, err := NewParser(testUnassigned, nil).Parse(Format(raw, testNotEntered))

		g.Expect(err).NotTo(HaveOccurred())
		physics, ok := catalog.Lookup("PHYS 101", "1")
		g.Expect(ok).To(BeTrue())
		g.Expect(physics.Instructor).To(Equal(testNotEntered))
		g.Expect(physics.Days()).To(Equal([]time.Weekday{time.Tuesday}))
	})

	t.Run("Unreadable lines are skipped", func(t *testing.T) {
		//** Arrange
		core, logs := observer.New(zap.DebugLevel)
		text := lines(
			"10:00-11:00\tCHEM 102(1)\tChemistry\tC-1\tBob", // Before any day
			"Pazartesi",
			"09:00-10:00\tMATH 101(1)\tCalculus",             // Missing columns
			"09:00-10:00\tmath 101(1)\tCalculus\tA-101\tAda", // Lowercase code
			"25:00-26:00\tMATH 101(1)\tCalculus\tA-101\tAda", // Invalid time
			"11:00-10:00\tMATH 101(1)\tCalculus\tA-101\tAda", // Reversed time
			"09:00-10:00\tPHYS 101(1)\tPhysics\tB-201\tBob",
			"Someday",
			"09:00-10:00\tBIO 101(1)\tBiology\tD-1\tEve", // Under an unknown heading
		)

		//** Act
		catalog, err := NewParser(testUnassigned, zap.New(core)).Parse(text)

		//** Assert
		require.NoError(t, err)
		assert.Equal(t, []string{"PHYS 101"}, catalog.Codes())
		assert.Equal(t, 1, logs.FilterMessage("unexpected column count").Len())
		assert.Equal(t, 1, logs.FilterMessage("unrecognized course code").Len())
		assert.Equal(t, 2, logs.FilterMessage("invalid time").Len())
		assert.Equal(t, 2, logs.FilterMessage("row outside of a known day").Len())
		assert.Equal(t, 1, logs.FilterMessage("unknown day heading, skipping its rows").Len())
	})

	t.Run("Empty catalog", func(t *testing.T) {
		for _, text := range []string{"", "Pazartesi\n" + StandardHeader, "just some text"} {
			_, err := NewParser(testUnassigned, nil).Parse(text)
			assert.ErrorIs(t, err, ErrEmptyCatalog)
		}
	})
}

func TestReadPasted(t *testing.T) {
	t.Run("Stops after the blank lines", func(t *testing.T) {
		//** Arrange
		reader := bufio.NewReader(strings.NewReader("a\r\nb\n\n\nc\n \n\n\n1,2\n"))

		//** Act
		text, err := ReadPasted(reader, 3)

		//** Assert
		require.NoError(t, err)
		assert.Equal(t, "a\nb\nc", text)

		// The rest of the input is left for later answers
		rest, err := reader.ReadString('\n')
		require.NoError(t, err)
		assert.Equal(t, "1,2\n", rest)
	})

	t.Run("End of input", func(t *testing.T) {
		text, err := ReadPasted(bufio.NewReader(strings.NewReader("a\nb")), 3)
		require.NoError(t, err)
		assert.Equal(t, "a\nb", text)
	})

	t.Run("Single blank line", func(t *testing.T) {
		text, err := ReadPasted(bufio.NewReader(strings.NewReader("a\n\nb\n")), 1)
		require.NoError(t, err)
		assert.Equal(t, "a", text)
	})
}

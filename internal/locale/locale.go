// Package locale holds the user-facing strings of every supported language:
// weekday names, answer sentinels and the prompts of the interactive flow.
package locale

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
)

const (
	Turkish = "tr"
	English = "en"
)

type Locale struct {
	Code string
	Days map[time.Weekday]string

	// Sentinels
	Unassigned string // Instructor of a row whose instructor column is blank
	NotEntered string // Fills missing columns of an exported row
	Skip       string
	Yes        string
	No         string

	// Messages
	Welcome          string
	AvailableCourses string
	SelectMandatory  string
	NoSchedule       string
	NoCourseMatched  string
	UnknownCourses   string
	FoundSchedules   string // Formatted with the number of schedules
	ScheduleHeading  string // Formatted with the schedule number
	ChooseSchedule   string // Formatted with the number of schedules
	InvalidChoice    string
	AskElectives     string
	ElectiveOptions  string
	SelectElectives  string
	ConflictReport   string
	AskRetry         string
	NoElectives      string
	FinalSchedule    string

	SelectionConflictReport string // Selected sections that fit the schedule but overlap each other
}

var locales = map[string]*Locale{
	Turkish: {
		Code: Turkish,
		Days: map[time.Weekday]string{
			time.Monday:    "Pazartesi",
			time.Tuesday:   "Salı",
			time.Wednesday: "Çarşamba",
			time.Thursday:  "Perşembe",
			time.Friday:    "Cuma",
			time.Saturday:  "Cumartesi",
			time.Sunday:    "Pazar",
		},
		Unassigned:       "Henüz Belirlenmemiş",
		NotEntered:       "Henüz Girilmemiştir",
		Skip:             "G",
		Yes:              "E",
		No:               "H",
		Welcome:          "OBS'deki \"Bölüm Ders Programı\" sayfasını Pazartesiden son güne kadar seçip kopyalayın, aşağıya yapıştırın ve 3 kez Enter'a basın.",
		AvailableCourses: "Mevcut dersler:",
		SelectMandatory:  "Zorunlu dersleri seçin (virgülle ayırarak numara girin, örn: 1,3,5):",
		NoSchedule:       "Uygun program bulunamadı!",
		NoCourseMatched:  "Seçilen numaralar hiçbir dersle eşleşmedi.",
		UnknownCourses:   "Bilinmeyen dersler atlandı:",
		FoundSchedules:   "%d adet olası program bulundu:",
		ScheduleHeading:  "Program %d:",
		ChooseSchedule:   "Hangi programı seçmek istersiniz? (1-%d):",
		InvalidChoice:    "Geçersiz seçim!",
		AskElectives:     "Seçmeli dersleri eklemek ister misiniz? (E/H):",
		ElectiveOptions:  "Aşağıdaki seçmeli dersler mevcut programa eklenebilir:",
		SelectElectives:  "Eklemek istediğiniz seçmeli derslerin numaralarını girin (virgülle ayırarak) veya geçmek için 'G' yazın:",
		ConflictReport:   "Seçtiğiniz bazı dersler mevcut programınızla çakışıyor:",
		AskRetry:         "Tekrar seçmek ister misiniz? (E/H)",
		NoElectives:      "Uygun seçmeli ders bulunamadı!",
		FinalSchedule:    "Nihai Ders Programınız:",

		SelectionConflictReport: "Seçtiğiniz bazı dersler seçtiğiniz diğer derslerle çakışıyor:",
	},
	English: {
		Code: English,
		Days: map[time.Weekday]string{
			time.Monday:    "Monday",
			time.Tuesday:   "Tuesday",
			time.Wednesday: "Wednesday",
			time.Thursday:  "Thursday",
			time.Friday:    "Friday",
			time.Saturday:  "Saturday",
			time.Sunday:    "Sunday",
		},
		Unassigned:       "Not yet assigned",
		NotEntered:       "Not yet entered",
		Skip:             "S",
		Yes:              "Y",
		No:               "N",
		Welcome:          "Copy the department timetable page from Monday to the last day, paste it below and press Enter 3 times.",
		AvailableCourses: "Available courses:",
		SelectMandatory:  "Select the mandatory courses (comma-separated numbers, e.g. 1,3,5):",
		NoSchedule:       "No feasible schedule found!",
		NoCourseMatched:  "The selected numbers did not match any course.",
		UnknownCourses:   "Unknown courses skipped:",
		FoundSchedules:   "%d possible schedules found:",
		ScheduleHeading:  "Schedule %d:",
		ChooseSchedule:   "Which schedule would you like to choose? (1-%d):",
		InvalidChoice:    "Invalid choice!",
		AskElectives:     "Would you like to add electives? (Y/N):",
		ElectiveOptions:  "The following electives can be added to the schedule:",
		SelectElectives:  "Enter the numbers of the electives to add (comma-separated) or 'S' to skip:",
		ConflictReport:   "Some of the selected courses conflict with your schedule:",
		AskRetry:         "Would you like to choose again? (Y/N)",
		NoElectives:      "No suitable electives found!",
		FinalSchedule:    "Your final schedule:",

		SelectionConflictReport: "Some of the selected courses conflict with other selected courses:",
	},
}

// Returns the locale registered under code
func Get(code string) (*Locale, error) {
	locale, ok := locales[strings.ToLower(code)]
	if !ok {
		return nil, fmt.Errorf("unsupported locale %q, expected one of %v", code, Codes())
	}
	return locale, nil
}

func Codes() []string {
	codes := lo.Keys(locales)
	slices.Sort(codes)
	return codes
}

func (locale *Locale) DayName(day time.Weekday) string {
	if name, ok := locale.Days[day]; ok {
		return name
	}
	return day.String()
}

// Every day name of every locale, used to recognize day headings in exported text
func AllDayNames() []string {
	return lo.Uniq(lo.FlatMap(Codes(), func(code string, _ int) []string {
		return lo.Values(locales[code].Days)
	}))
}

// Parses a day name of any supported locale, case-insensitively
func ParseDay(name string) (time.Weekday, bool) {
	name = strings.TrimSpace(name)
	for _, code := range Codes() {
		for day, dayName := range locales[code].Days {
			if strings.EqualFold(dayName, name) {
				return day, true
			}
		}
	}
	return 0, false
}

// Checks whether the answer means yes. Accepts the locale's own letter and the English one
func (locale *Locale) IsYes(answer string) bool {
	answer = strings.TrimSpace(answer)
	return strings.EqualFold(answer, locale.Yes) || strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}

func (locale *Locale) IsNo(answer string) bool {
	answer = strings.TrimSpace(answer)
	return strings.EqualFold(answer, locale.No) || strings.EqualFold(answer, "n") || strings.EqualFold(answer, "no")
}

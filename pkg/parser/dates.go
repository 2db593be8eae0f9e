package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	minFlightYear = 1990
	maxFlightYear = 2030

	isoDateLayout = "2006-01-02"
)

// dateGrammar matches one written date form and turns its submatches
// into a calendar date.
type dateGrammar struct {
	pattern *regexp.Regexp
	parse   func(groups []string) (time.Time, bool)
}

const monthAlternation = `(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`

var dateGrammars = []dateGrammar{
	{
		// 15 Jan 2025, 15-Jan-2025, 15/January/2025
		pattern: regexp.MustCompile(`(?i)\b(\d{1,2})\s*[-/]?\s*` + monthAlternation + `[a-z]*\s*[-/,]?\s*(\d{4})\b`),
		parse: func(g []string) (time.Time, bool) {
			return calendarDate(g[3], monthIndex(g[2]), g[1])
		},
	},
	{
		// Jan 15, 2025
		pattern: regexp.MustCompile(`(?i)\b` + monthAlternation + `[a-z]*\s+(\d{1,2})\s*[,]?\s*(\d{4})\b`),
		parse: func(g []string) (time.Time, bool) {
			return calendarDate(g[3], monthIndex(g[1]), g[2])
		},
	},
	{
		// 2025-01-15
		pattern: regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`),
		parse: func(g []string) (time.Time, bool) {
			m, err := strconv.Atoi(g[2])
			if err != nil {
				return time.Time{}, false
			}
			return calendarDate(g[1], m, g[3])
		},
	},
	{
		// 15/01/2025, 15-01-2025
		pattern: regexp.MustCompile(`\b(\d{2})[/-](\d{2})[/-](\d{4})\b`),
		parse: func(g []string) (time.Time, bool) {
			m, err := strconv.Atoi(g[2])
			if err != nil {
				return time.Time{}, false
			}
			return calendarDate(g[3], m, g[1])
		},
	},
}

// Text following a flight context keyword, up to the end of the line.
var dateContextPattern = regexp.MustCompile(`(?i)(?:date|departure|depart|travel|journey|flight).{0,80}`)

var months = []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

// ExtractFlightDate returns the travel date as YYYY-MM-DD, or "".
//
// Windows that follow a flight keyword are searched first, in the order
// the keywords appear, then the whole text. Within a window the grammars
// are tried in order; a grammar whose first match is not a real date, or
// falls outside the accepted year range, passes to the next grammar.
func ExtractFlightDate(text string) string {
	windows := append(dateContextPattern.FindAllString(text, -1), text)
	for _, w := range windows {
		if d := dateInWindow(w); d != "" {
			return d
		}
	}
	return ""
}

func dateInWindow(window string) string {
	for _, g := range dateGrammars {
		m := g.pattern.FindStringSubmatch(window)
		if m == nil {
			continue
		}
		t, ok := g.parse(m)
		if !ok || t.Year() < minFlightYear || t.Year() > maxFlightYear {
			continue
		}
		return t.Format(isoDateLayout)
	}
	return ""
}

// monthIndex maps a month name or abbreviation to 1..12, 0 if unknown.
func monthIndex(name string) int {
	if len(name) < 3 {
		return 0
	}
	prefix := strings.ToLower(name[:3])
	for i, m := range months {
		if m == prefix {
			return i + 1
		}
	}
	return 0
}

// calendarDate builds a date and rejects values time.Date would roll over,
// such as 31 April or month 13.
func calendarDate(year string, month int, day string) (time.Time, bool) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || d < 1 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(month), d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

package generator

import (
	"fmt"
	"time"
)

func init() {
	register("datetime.timestamp.iso_8601", genISO8601)
	register("datetime.timestamp.iso_8601_offset", genISO8601Offset)
	register("datetime.timestamp.rfc_3339", genRFC3339)
	register("datetime.timestamp.rfc_2822", genRFC2822)
	register("datetime.timestamp.rfc_2822_ordinal", genRFC2822Ordinal)

	register("datetime.date.iso", genDateISO)
	register("datetime.date.us_slash", genDateUSSlash)
	register("datetime.date.eu_slash", genDateEUSlash)
	register("datetime.date.short_mdy", genDateShortMDY)
	register("datetime.date.short_dmy", genDateShortDMY)

	register("datetime.component.year", genYear)
}

// randomDateTime mirrors the original generator's random_datetime:
// year in [2015, 2030), day capped at 28 to dodge month-length edge
// cases entirely.
func (g *Generator) randomDateTime() time.Time {
	year := 2015 + g.rng.Intn(15)
	month := 1 + g.rng.Intn(12)
	day := 1 + g.rng.Intn(28)
	hour := g.rng.Intn(24)
	minute := g.rng.Intn(60)
	second := g.rng.Intn(60)
	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
}

func genISO8601(g *Generator, _ string) string {
	return g.randomDateTime().Format("2006-01-02T15:04:05Z")
}

// genISO8601Offset emits a 'T' date/time separator with a UTC offset —
// the sole lexical discriminator against rfc_3339 (space separator).
func genISO8601Offset(g *Generator, _ string) string {
	return g.randomDateTime().Format("2006-01-02T15:04:05+00:00")
}

// genRFC3339 emits a space separator between date and time; this is
// the sole difference from iso_8601_offset per spec.md §4.C.
func genRFC3339(g *Generator, _ string) string {
	return g.randomDateTime().Format("2006-01-02 15:04:05+00:00")
}

func genRFC2822(g *Generator, _ string) string {
	return g.randomDateTime().Format("Mon, 02 Jan 2006 15:04:05 -0700")
}

func genRFC2822Ordinal(g *Generator, _ string) string {
	t := g.randomDateTime()
	return fmt.Sprintf("%s, %d%s %s %d %02d:%02d:%02d +0000",
		t.Format("Mon"), t.Day(), ordinalSuffix(t.Day()), t.Format("Jan"), t.Year(),
		t.Hour(), t.Minute(), t.Second())
}

// ordinalSuffix returns the English ordinal suffix for a day-of-month,
// handling the 11th/12th/13th exception to the usual 1/2/3 rule.
func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

func genDateISO(g *Generator, _ string) string {
	return g.randomDateTime().Format("2006-01-02")
}

func genDateUSSlash(g *Generator, _ string) string {
	t := g.randomDateTime()
	return fmt.Sprintf("%02d/%02d/%04d", t.Month(), t.Day(), t.Year())
}

func genDateEUSlash(g *Generator, _ string) string {
	t := g.randomDateTime()
	return fmt.Sprintf("%02d/%02d/%04d", t.Day(), t.Month(), t.Year())
}

func genDateShortMDY(g *Generator, _ string) string {
	t := g.randomDateTime()
	return fmt.Sprintf("%d-%d-%02d", int(t.Month()), t.Day(), t.Year()%100)
}

func genDateShortDMY(g *Generator, _ string) string {
	t := g.randomDateTime()
	return fmt.Sprintf("%d-%d-%02d", t.Day(), int(t.Month()), t.Year()%100)
}

// genYear draws from the weighted distribution in spec.md §4.C: 60%
// modern, 25% historical, 15% future.
func genYear(g *Generator, _ string) string {
	roll := g.rng.Float64()
	var year int
	switch {
	case roll < 0.60:
		year = 1900 + g.rng.Intn(126)
	case roll < 0.85:
		year = 1000 + g.rng.Intn(900)
	default:
		year = 2026 + g.rng.Intn(75)
	}
	return fmt.Sprintf("%d", year)
}

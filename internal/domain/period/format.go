package period

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

type monthNames struct {
	long  [12]string
	short [12]string
}

var supportedLocales = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
	language.Spanish,
}

var localeMatcher = language.NewMatcher(supportedLocales)

// Indexed like supportedLocales.
var localizedMonths = []monthNames{
	{
		long:  [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		short: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	},
	{
		long:  [12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
		short: [12]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"},
	},
	{
		long:  [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		short: [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
	},
}

// namesFor picks the closest supported locale, falling back to English.
func namesFor(locale string) monthNames {
	tag, err := language.Parse(locale)
	if err != nil {
		return localizedMonths[0]
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return localizedMonths[0]
	}
	return localizedMonths[idx]
}

// FormatDisplay renders a period for display.
//
//	startDay 1:            "January 2026"
//	same year:             "Jan 28 - Feb 27, 2026"
//	across a year boundary: "Dec 28, 2025 - Jan 27, 2026"
func FormatDisplay(p BudgetPeriod, startDay int, locale string) string {
	names := namesFor(locale)
	if startDay <= CalendarStartDay {
		return fmt.Sprintf("%s %d", names.long[p.Month-1], p.Year)
	}

	start, end := p.StartDate, p.EndDate
	startMon := names.short[start.Month()-time.January]
	endMon := names.short[end.Month()-time.January]
	if start.Year() != end.Year() {
		return fmt.Sprintf("%s %d, %d - %s %d, %d",
			startMon, start.Day(), start.Year(),
			endMon, end.Day(), end.Year(),
		)
	}
	return fmt.Sprintf("%s %d - %s %d, %d", startMon, start.Day(), endMon, end.Day(), end.Year())
}

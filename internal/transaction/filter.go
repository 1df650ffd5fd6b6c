package transaction

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"ledgerly-api/internal/transaction/repository"
)

// FilterParams are the raw query parameters a listing may be narrowed by.
type FilterParams struct {
	Date string
	From string
	UpTo string
	Min  string
	Max  string
}

var dateRegex = regexp.MustCompile(`([0-9]{4})-((0[0-9])|(1[0-2]))-(([0-2][0-9])|(3[0-1]))`)

// ParseFilter validates the raw parameters and turns them into a repository
// filter. A date is expanded to the whole day, and an upTo bound includes
// the named day entirely. The date parameter cannot be combined with an
// interval bound.
func ParseFilter(p FilterParams) (repository.Filter, error) {
	var f repository.Filter

	if p.Date != "" && (p.From != "" || p.UpTo != "") {
		return f, ErrDateAndInterval
	}

	for _, v := range []string{p.Date, p.From, p.UpTo} {
		if v != "" && !dateRegex.MatchString(v) {
			return f, ErrInvalidDateFormat
		}
	}

	if p.From != "" {
		from, err := parseDay(p.From)
		if err != nil {
			return f, ErrInvalidDateFormat
		}
		f.DateFrom = &from
	}
	if p.UpTo != "" {
		upTo, err := parseDay(p.UpTo)
		if err != nil {
			return f, ErrInvalidDateFormat
		}
		upTo = endOfDay(upTo)
		f.DateTo = &upTo
	}
	if p.Date != "" {
		day, err := parseDay(p.Date)
		if err != nil {
			return f, ErrInvalidDateFormat
		}
		end := endOfDay(day)
		f.DateFrom = &day
		f.DateTo = &end
	}

	if p.Min != "" {
		min, err := parseWholeAmount(p.Min)
		if err != nil {
			return f, ErrAmountNotNumber
		}
		f.MinAmount = &min
	}
	if p.Max != "" {
		max, err := parseWholeAmount(p.Max)
		if err != nil {
			return f, ErrAmountNotNumber
		}
		f.MaxAmount = &max
	}

	return f, nil
}

func parseDay(v string) (time.Time, error) {
	return time.Parse("2006-01-02", dateRegex.FindString(v))
}

func endOfDay(day time.Time) time.Time {
	return day.Add(24*time.Hour - time.Millisecond)
}

// parseWholeAmount truncates the fractional part, so min=9.9 means 9.
func parseWholeAmount(v string) (float64, error) {
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	return math.Trunc(n), nil
}

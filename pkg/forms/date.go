package forms

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Date part keys. They appear as suffixes on the input names the
// front-end date component submits: for a field named start_date with
// separator "-", the inputs are start_date-year, start_date-month and
// start_date-day.
const (
	PartYear  = "year"
	PartMonth = "month"
	PartDay   = "day"
)

// defaultPartSeparator joins the field name and the part key.
const defaultPartSeparator = "-"

// DateParts holds the three raw sub-inputs of a multi-part date.
// Absent inputs bind as empty strings.
type DateParts struct {
	Year  string
	Month string
	Day   string
}

// Empty reports whether no part was entered.
func (p DateParts) Empty() bool {
	return p.Year == "" && p.Month == "" && p.Day == ""
}

// Complete reports whether every part was entered.
func (p DateParts) Complete() bool {
	return p.Year != "" && p.Month != "" && p.Day != ""
}

// Get returns the named part.
func (p DateParts) Get(key string) string {
	switch key {
	case PartYear:
		return p.Year
	case PartMonth:
		return p.Month
	case PartDay:
		return p.Day
	}
	return ""
}

// dateFill completes a partial progressive date once per-part
// validation has passed. month supplies the month when none was
// entered; day supplies the day for the resolved month when none was
// entered. keepStrayDay controls whether an entered day survives when
// the month was not entered: period-start fills keep it, period-end
// fills recompute the day from the filled month.
type dateFill struct {
	month        func(year int) int
	day          func(year, month int) int
	keepStrayDay bool
}

func (f dateFill) complete(p DateParts) time.Time {
	year, _ := strconv.Atoi(p.Year)

	var month int
	if p.Month != "" {
		month, _ = strconv.Atoi(p.Month)
	} else {
		month = f.month(year)
		if !f.keepStrayDay {
			p.Day = ""
		}
	}

	var day int
	if p.Day != "" {
		day, _ = strconv.Atoi(p.Day)
	} else {
		day = f.day(year, month)
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// fromDateFill completes a partial date to the start of the described
// period: 2023 becomes 2023-01-01, 2023-02 becomes 2023-02-01.
var fromDateFill = dateFill{
	month:        func(int) int { return 1 },
	day:          func(int, int) int { return 1 },
	keepStrayDay: true,
}

// toDateFill completes a partial date to the end of the described
// period: 2023 becomes 2023-12-31, 2023-02 becomes 2023-02-28 (or -29
// in a leap year).
var toDateFill = dateFill{
	month: func(int) int { return 12 },
	day:   lastDayOfMonth,
}

// lastDayOfMonth returns the number of days in the given month,
// accounting for leap years.
func lastDayOfMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateField is a date input split into year, month and day parts.
//
// In progressive mode partial input is accepted, starting from the
// year: the FromDateField and ToDateField constructors attach a fill
// strategy that completes the omitted parts to the start or end of the
// described period. In non-progressive mode either all or none of the
// parts must be entered.
type DateField struct {
	BaseField
	progressive bool
	separator   string
	fill        *dateFill

	parts     DateParts
	cleaned   time.Time
	cleanedOK bool
}

// NewDateField returns an unbound multi-part date field with no fill
// strategy. It is progressive unless Progressive(false) is given; a
// progressive field without a fill strategy cleans partial input to
// nothing while keeping the raw parts available for redisplay.
func NewDateField(opts ...Option) *DateField {
	c := newFieldConfig(opts)

	progressive := true
	if c.progressive != nil {
		progressive = *c.progressive
	}
	separator := c.separator
	if separator == "" {
		separator = defaultPartSeparator
	}

	return &DateField{
		BaseField:   newBaseField(c),
		progressive: progressive,
		separator:   separator,
	}
}

// NewFromDateField returns a progressive date field that completes
// partial input to the start of the period, so a bare year includes
// the whole year in a range query. Field names are conventionally
// suffixed _from.
func NewFromDateField(opts ...Option) *DateField {
	f := NewDateField(opts...)
	fill := fromDateFill
	f.fill = &fill
	return f
}

// NewToDateField returns a progressive date field that completes
// partial input to the end of the period, so a bare year includes the
// whole year up to its last day. Field names are conventionally
// suffixed _to.
func NewToDateField(opts ...Option) *DateField {
	f := NewDateField(opts...)
	fill := toDateFill
	f.fill = &fill
	return f
}

// Bind assembles the three part sub-keys from the whole input
// collection. Each part defaults to the empty string when absent.
func (f *DateField) Bind(name string, data url.Values) {
	f.bindName(name)
	f.parts = DateParts{
		Year:  lastValue(data[name+f.separator+PartYear]),
		Month: lastValue(data[name+f.separator+PartMonth]),
		Day:   lastValue(data[name+f.separator+PartDay]),
	}
}

// IsValid cleans and validates the bound parts.
func (f *DateField) IsValid() bool {
	cleaned, ok, err := f.clean(f.parts)
	if err != nil {
		f.AddError(err.Error())
	} else {
		f.cleaned = cleaned
		f.cleanedOK = ok
	}
	return f.err.IsZero()
}

// clean validates the parts and converts them to a date. Complete
// input yields the entered date; partial input in progressive mode
// yields the fill strategy's completion, or no date when the field has
// no strategy or no year; partial or empty input in non-progressive
// mode yields no date.
func (f *DateField) clean(parts DateParts) (time.Time, bool, error) {
	if err := f.validate(parts); err != nil {
		return time.Time{}, false, err
	}

	if parts.Complete() {
		year, _ := strconv.Atoi(parts.Year)
		month, _ := strconv.Atoi(parts.Month)
		day, _ := strconv.Atoi(parts.Day)
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true, nil
	}

	if f.progressive && f.fill != nil && parts.Year != "" {
		return f.fill.complete(parts), true, nil
	}

	return time.Time{}, false, nil
}

func (f *DateField) validate(parts DateParts) error {
	if err := f.validateRequiredParts(parts); err != nil {
		return err
	}

	if !f.progressive && !parts.Empty() && !parts.Complete() {
		return validationErr(KindIncompleteDate,
			"Either all or none of the date parts (day, month, year) must be provided.")
	}

	year, err := validatePart(PartYear, parts.Year, 1, 9999)
	if err != nil {
		return err
	}
	month, err := validatePart(PartMonth, parts.Month, 1, 12)
	if err != nil {
		return err
	}
	day, err := validatePart(PartDay, parts.Day, 1, 31)
	if err != nil {
		return err
	}

	if year != 0 && month != 0 && day != 0 {
		if !isCalendarDate(year, month, day) {
			return validationErr(KindInvalidDate,
				"Entered date must be a real date, for example Year 2017, Month 9, Day 23")
		}
	}
	return nil
}

// validateRequiredParts applies the required check: progressive entry
// needs at least the year, non-progressive entry needs every part.
func (f *DateField) validateRequiredParts(parts DateParts) error {
	if !f.required {
		return nil
	}
	if f.progressive {
		if parts.Year == "" {
			return validationErr(KindRequired, "Year value is required.")
		}
		return nil
	}
	if !parts.Complete() {
		return validationErr(KindRequired, "All date parts (day, month, year) are required.")
	}
	return nil
}

// validatePart checks one non-empty part parses as an integer within
// its range. Empty parts return zero with no error; part values are
// always at least 1 when entered and valid.
func validatePart(key, value string, min, max int) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, validationErr(KindInvalidDatePart,
			fmt.Sprintf("%s must be an integer.", capitalize(key)))
	}
	if n < min || n > max {
		return 0, validationErr(KindInvalidDatePart,
			fmt.Sprintf("%s must be between %d and %d.", capitalize(key), min, max))
	}
	return n, nil
}

// isCalendarDate reports whether the parts form a real calendar date,
// rejecting combinations such as 31 April or 29 February outside leap
// years. time.Date normalises overflow, so a changed component means
// the input was not real.
func isCalendarDate(year, month, day int) bool {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// Parts returns the raw bound parts, retained for redisplay.
func (f *DateField) Parts() DateParts { return f.parts }

// Separator returns the separator between the field name and the part
// keys.
func (f *DateField) Separator() string { return f.separator }

// Progressive reports whether partial input is accepted.
func (f *DateField) Progressive() bool { return f.progressive }

// Cleaned returns the cleaned date. ok is false while an error is
// recorded or when cleaning produced no date.
func (f *DateField) Cleaned() (time.Time, bool) {
	if !f.err.IsZero() {
		return time.Time{}, false
	}
	return f.cleaned, f.cleanedOK
}

// LastCleaned returns the cleaned date even when an error was added
// after cleaning succeeded, distinguishing a field failed by
// cross-validation from one that failed its own validation.
func (f *DateField) LastCleaned() (time.Time, bool) {
	return f.cleaned, f.cleanedOK
}

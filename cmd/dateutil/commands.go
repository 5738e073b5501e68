package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/dateutil/pkg/dateutil"
	"go.uber.org/zap"
)

// run times fn, logs the figures and prints its result
func (a *app) run(cmd *cobra.Command, fn func() (texter, error)) error {
	rt, err := dateutil.RecordRuntimeWith(a.util, fn)
	if err != nil {
		return err
	}

	a.logger.Debug("Command finished",
		zap.String("command", cmd.Name()),
		zap.Float64("seconds", rt.ExecutionTime.Seconds),
		zap.Float64("milliseconds", rt.ExecutionTime.Milliseconds))

	return printResult(cmd.OutOrStdout(), a.cfg.Output, rt.Result)
}

// parseDate reads text in the configured format, then falls back to every known format
func (a *app) parseDate(text string) (time.Time, error) {
	t, err := a.util.ParseDate(text, a.format)
	if err == nil {
		return t, nil
	}
	if t, f, anyErr := a.util.ParseAny(text); anyErr == nil {
		a.logger.Debug("Parsed date with fallback format",
			zap.String("text", text),
			zap.Stringer("format", f))
		return t, nil
	}
	return time.Time{}, err
}

func (a *app) formatDate(t time.Time) string {
	return dateutil.FormatDate(t, a.format)
}

func nowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Show the current date and time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func() (texter, error) {
				now := a.util.Now()
				return nowResult{
					Now:        now.Format("2006-01-02 15:04:05.999999999 -0700 MST"),
					Formatted:  a.formatDate(now),
					WithOffset: dateutil.FormatISO8601(now),
					Summary:    a.util.Summary(),
				}, nil
			})
		},
	}
}

func diffCmd(a *app) *cobra.Command {
	var unitName string

	cmd := &cobra.Command{
		Use:   "diff START [END]",
		Short: "Difference between two dates (END defaults to now)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func() (texter, error) {
				unit, err := dateutil.ParseUnit(unitName)
				if err != nil {
					return nil, err
				}
				start, err := a.parseDate(args[0])
				if err != nil {
					return nil, err
				}
				end := a.util.Now()
				if len(args) == 2 {
					if end, err = a.parseDate(args[1]); err != nil {
						return nil, err
					}
				}

				value, err := dateutil.CalculateDifference(start, end, unit)
				if err != nil {
					return nil, err
				}
				return diffResult{
					Start: a.formatDate(start),
					End:   a.formatDate(end),
					Unit:  unit.String(),
					Value: value,
				}, nil
			})
		},
	}

	cmd.Flags().StringVarP(&unitName, "unit", "u", dateutil.Seconds.String(), "Unit: days, hours, milliseconds, minutes, months, seconds, weeks, years")

	return cmd
}

// shiftCmd builds add (sign 1) and sub (sign -1)
func shiftCmd(a *app, use, short string, sign int) *cobra.Command {
	var unitName string
	var amount int

	cmd := &cobra.Command{
		Use:   use + " DATE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func() (texter, error) {
				unit, err := dateutil.ParseUnit(unitName)
				if err != nil {
					return nil, err
				}
				date, err := a.parseDate(args[0])
				if err != nil {
					return nil, err
				}

				var result time.Time
				if sign < 0 {
					result, err = dateutil.Decrement(date, unit, amount)
				} else {
					result, err = dateutil.Increment(date, unit, amount)
				}
				if err != nil {
					return nil, err
				}
				return dateResult{Date: a.formatDate(result)}, nil
			})
		},
	}

	cmd.Flags().StringVarP(&unitName, "unit", "u", dateutil.Days.String(), "Unit: days, hours, minutes, seconds, weeks, years")
	cmd.Flags().IntVarP(&amount, "amount", "n", 1, "Number of units")

	return cmd
}

func convertCmd(a *app) *cobra.Command {
	var toName string

	cmd := &cobra.Command{
		Use:   "convert TEXT",
		Short: "Re-render a date in another format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func() (texter, error) {
				to, err := dateutil.ParseDateFormat(toName)
				if err != nil {
					return nil, err
				}
				date, err := a.util.ParseDate(args[0], a.format)
				if err != nil {
					return nil, err
				}
				return dateResult{Date: dateutil.FormatDate(date, to)}, nil
			})
		},
	}

	cmd.Flags().StringVarP(&toName, "to", "t", dateutil.ISO8601.String(), "Target format: iso8601, rfc2822, us, uk, eu, custom")

	return cmd
}

func checkFormatCmd(a *app) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "check-format TEXT",
		Short: "Check whether TEXT matches a strftime pattern (exit status 1 if not)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var valid bool
			err := a.run(cmd, func() (texter, error) {
				valid = dateutil.IsValidDateFormat(args[0], pattern)
				return boolResult{Value: valid}, nil
			})
			if err != nil {
				return err
			}
			if !valid {
				return &exitError{Code: exitGeneral}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", dateutil.DefaultValidationPattern, "strftime pattern")

	return cmd
}

func inRangeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "in-range DATE START END",
		Short: "Check START <= DATE <= END (exit status 4 if outside)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func() (texter, error) {
				dates := make([]time.Time, len(args))
				for i, arg := range args {
					date, err := a.parseDate(arg)
					if err != nil {
						return nil, err
					}
					dates[i] = date
				}
				ok, err := dateutil.IsDateInRange(dates[0], dates[1], dates[2])
				if err != nil {
					return nil, err
				}
				return boolResult{Value: ok}, nil
			})
		},
	}
}

func leapCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "leap YEAR...",
		Short: "Report whether years are leap years",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func() (texter, error) {
				var result leapResult
				for _, arg := range args {
					year, err := strconv.Atoi(arg)
					if err != nil {
						return nil, usageError(fmt.Errorf("invalid year %q", arg))
					}
					result.Years = append(result.Years, leapYear{Year: year, Leap: dateutil.IsLeapYear(year)})
				}
				return result, nil
			})
		},
	}
}

func daysInMonthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "days-in-month [MONTH YEAR]",
		Short: "Number of days in a month (default: the current month)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func() (texter, error) {
				if len(args) == 0 {
					now := a.util.Now()
					return daysInMonthResult{
						Year:  now.Year(),
						Month: int(now.Month()),
						Days:  a.util.DaysInThisMonth(),
					}, nil
				}

				month, err := strconv.Atoi(args[0])
				if err != nil {
					return nil, usageError(fmt.Errorf("invalid month %q", args[0]))
				}
				year, err := strconv.Atoi(args[1])
				if err != nil {
					return nil, usageError(fmt.Errorf("invalid year %q", args[1]))
				}
				days, err := dateutil.DaysInMonth(time.Month(month), year)
				if err != nil {
					return nil, err
				}
				return daysInMonthResult{Year: year, Month: month, Days: days}, nil
			})
		},
	}
}

func boundsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bounds [DATE]",
		Short: "Start and end of the day, week, month and year containing DATE (default: now)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func() (texter, error) {
				date := a.util.Now()
				if len(args) == 1 {
					var err error
					if date, err = a.parseDate(args[0]); err != nil {
						return nil, err
					}
				}
				dayType := "weekday"
				if dateutil.IsWeekend(date) {
					dayType = "weekend"
				}
				isoYear, isoWeek := dateutil.GetWeekNumber(date)
				return boundsResult{
					Date:         a.formatDate(date),
					StartOfDay:   a.formatDate(dateutil.StartOfDay(date)),
					EndOfDay:     a.formatDate(dateutil.EndOfDay(date)),
					StartOfWeek:  a.formatDate(dateutil.StartOfWeek(date)),
					EndOfWeek:    a.formatDate(dateutil.EndOfWeek(date)),
					StartOfMonth: a.formatDate(dateutil.StartOfMonth(date)),
					EndOfMonth:   a.formatDate(dateutil.EndOfMonth(date)),
					StartOfYear:  a.formatDate(dateutil.StartOfYear(date)),
					EndOfYear:    a.formatDate(dateutil.EndOfYear(date)),
					ISOWeek:      fmt.Sprintf("%04d-W%02d", isoYear, isoWeek),
					DayType:      dayType,
				}, nil
			})
		},
	}
}

func relativeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "relative DATE",
		Short: "Say whether DATE is today, tomorrow, yesterday or elsewhere in this week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func() (texter, error) {
				date, err := a.parseDate(args[0])
				if err != nil {
					return nil, err
				}

				relation := "other"
				switch {
				case a.util.IsToday(date):
					relation = "today"
				case a.util.IsTomorrow(date):
					relation = "tomorrow"
				case a.util.IsYesterday(date):
					relation = "yesterday"
				case dateutil.IsSameWeek(date.In(a.util.Location()), a.util.Now()):
					relation = "this week"
				}
				return relativeResult{Date: a.formatDate(date), Relation: relation}, nil
			})
		},
	}
}

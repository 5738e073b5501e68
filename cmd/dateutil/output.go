package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// texter is implemented by every command result for --output text
type texter interface {
	text() string
}

func printResult(w io.Writer, output string, result texter) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
	default:
		fmt.Fprintln(w, result.text())
	}
	return nil
}

type nowResult struct {
	Now        string `json:"now" yaml:"now"`
	Formatted  string `json:"formatted" yaml:"formatted"`
	WithOffset string `json:"with_offset" yaml:"with_offset"`
	Summary    string `json:"summary" yaml:"summary"`
}

func (r nowResult) text() string {
	return fmt.Sprintf("Current Date and Time: %s\nFormatted Date: %s\nWith offset: %s\n%s",
		r.Now, r.Formatted, r.WithOffset, r.Summary)
}

type diffResult struct {
	Start string  `json:"start" yaml:"start"`
	End   string  `json:"end" yaml:"end"`
	Unit  string  `json:"unit" yaml:"unit"`
	Value float64 `json:"value" yaml:"value"`
}

func (r diffResult) text() string {
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

type dateResult struct {
	Date string `json:"date" yaml:"date"`
}

func (r dateResult) text() string {
	return r.Date
}

type boolResult struct {
	Value bool `json:"value" yaml:"value"`
}

func (r boolResult) text() string {
	return strconv.FormatBool(r.Value)
}

type leapYear struct {
	Year int  `json:"year" yaml:"year"`
	Leap bool `json:"leap" yaml:"leap"`
}

type leapResult struct {
	Years []leapYear `json:"years" yaml:"years"`
}

func (r leapResult) text() string {
	lines := make([]string, len(r.Years))
	for i, y := range r.Years {
		lines[i] = fmt.Sprintf("%d: %t", y.Year, y.Leap)
	}
	return strings.Join(lines, "\n")
}

type daysInMonthResult struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
	Days  int `json:"days" yaml:"days"`
}

func (r daysInMonthResult) text() string {
	return strconv.Itoa(r.Days)
}

type boundsResult struct {
	Date         string `json:"date" yaml:"date"`
	StartOfDay   string `json:"start_of_day" yaml:"start_of_day"`
	EndOfDay     string `json:"end_of_day" yaml:"end_of_day"`
	StartOfWeek  string `json:"start_of_week" yaml:"start_of_week"`
	EndOfWeek    string `json:"end_of_week" yaml:"end_of_week"`
	StartOfMonth string `json:"start_of_month" yaml:"start_of_month"`
	EndOfMonth   string `json:"end_of_month" yaml:"end_of_month"`
	StartOfYear  string `json:"start_of_year" yaml:"start_of_year"`
	EndOfYear    string `json:"end_of_year" yaml:"end_of_year"`
	ISOWeek      string `json:"iso_week" yaml:"iso_week"`
	DayType      string `json:"day_type" yaml:"day_type"`
}

func (r boundsResult) text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Date:           %s\n", r.Date)
	fmt.Fprintf(&b, "Start of day:   %s\n", r.StartOfDay)
	fmt.Fprintf(&b, "End of day:     %s\n", r.EndOfDay)
	fmt.Fprintf(&b, "Start of week:  %s\n", r.StartOfWeek)
	fmt.Fprintf(&b, "End of week:    %s\n", r.EndOfWeek)
	fmt.Fprintf(&b, "Start of month: %s\n", r.StartOfMonth)
	fmt.Fprintf(&b, "End of month:   %s\n", r.EndOfMonth)
	fmt.Fprintf(&b, "Start of year:  %s\n", r.StartOfYear)
	fmt.Fprintf(&b, "End of year:    %s\n", r.EndOfYear)
	fmt.Fprintf(&b, "ISO week:       %s\n", r.ISOWeek)
	fmt.Fprintf(&b, "Day type:       %s", r.DayType)
	return b.String()
}

type relativeResult struct {
	Date     string `json:"date" yaml:"date"`
	Relation string `json:"relation" yaml:"relation"`
}

func (r relativeResult) text() string {
	return r.Relation
}

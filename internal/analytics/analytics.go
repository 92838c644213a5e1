// Package analytics serves the mock sales report of the analytics screen.
// Figures are static sample data; nothing is computed from real sales.
package analytics

import (
	"fmt"
	"strings"

	"pos-catalog/internal/domain"
)

type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Options struct {
	Products    []Option `json:"products"`
	GraphTypes  []Option `json:"graphTypes"`
	Durations   []Option `json:"durations"`
	TimePeriods []Option `json:"timePeriods"`
}

type Query struct {
	Product    string `form:"product"`
	GraphType  string `form:"graphType"`
	Duration   string `form:"duration"`
	TimePeriod string `form:"timePeriod"`
}

type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type Report struct {
	Product    string  `json:"product"`
	GraphType  string  `json:"graphType"`
	Duration   string  `json:"duration"`
	TimePeriod string  `json:"timePeriod"`
	Points     []Point `json:"points"`
}

var (
	graphTypes = []Option{
		{Label: "Bar chart", Value: "bar"},
		{Label: "Line chart", Value: "line"},
	}
	durations = []Option{
		{Label: "1 day", Value: "1day"},
		{Label: "1 week", Value: "1week"},
		{Label: "1 year", Value: "1year"},
	}
	timePeriods = []Option{
		{Label: "Today", Value: "today"},
		{Label: "This week", Value: "thisweek"},
		{Label: "This month", Value: "thismonth"},
		{Label: "This year", Value: "thisyear"},
		{Label: "Last 7 days", Value: "last7days"},
		{Label: "Last 30 days", Value: "last30days"},
		{Label: "Last 90 days", Value: "last90days"},
	}

	weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	months   = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	sample   = []float64{50, 80, 90, 70}
)

const (
	defaultGraphType  = "bar"
	defaultDuration   = "1week"
	defaultTimePeriod = "thisweek"
)

// BuildOptions returns the selector options; products come from the catalog.
func BuildOptions(products []domain.Product) Options {
	productOpts := make([]Option, 0, len(products))
	for _, p := range products {
		productOpts = append(productOpts, Option{Label: p.Name, Value: p.ID})
	}
	return Options{
		Products:    productOpts,
		GraphTypes:  graphTypes,
		Durations:   durations,
		TimePeriods: timePeriods,
	}
}

// Build returns the sample series for the query. Blank fields take the
// defaults; unknown values are rejected.
func Build(q Query, products []domain.Product) (Report, error) {
	r := Report{
		Product:    strings.TrimSpace(q.Product),
		GraphType:  orDefault(q.GraphType, defaultGraphType),
		Duration:   orDefault(q.Duration, defaultDuration),
		TimePeriod: orDefault(q.TimePeriod, defaultTimePeriod),
	}

	offset := -1
	for i, p := range products {
		if r.Product == "" || p.ID == r.Product {
			r.Product = p.ID
			offset = i
			break
		}
	}
	if offset < 0 && r.Product != "" {
		return Report{}, &domain.ValidationError{Field: "product", Message: "unknown product"}
	}
	if !known(graphTypes, r.GraphType) {
		return Report{}, &domain.ValidationError{Field: "graphType", Message: "unknown graph type"}
	}
	if !known(timePeriods, r.TimePeriod) {
		return Report{}, &domain.ValidationError{Field: "timePeriod", Message: "unknown time period"}
	}

	var labels []string
	switch r.Duration {
	case "1day":
		labels = hours()
	case "1week":
		labels = weekdays
	case "1year":
		labels = months
	default:
		return Report{}, &domain.ValidationError{Field: "duration", Message: "unknown duration"}
	}

	if offset < 0 {
		offset = 0
	}
	r.Points = make([]Point, 0, len(labels))
	for i, label := range labels {
		r.Points = append(r.Points, Point{Label: label, Value: sample[(i+offset)%len(sample)]})
	}
	return r, nil
}

func hours() []string {
	out := make([]string, 0, 24)
	for h := 0; h < 24; h++ {
		out = append(out, fmt.Sprintf("%02d:00", h))
	}
	return out
}

func known(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}

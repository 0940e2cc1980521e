package entity

import (
	"time"
)

// Post represents a wall post with its engagement counters
type Post struct {
	ID       int64     `json:"id"`
	Date     time.Time `json:"date"`
	Comments int       `json:"comments"`
	Views    int       `json:"views"`
	Likes    int       `json:"likes"`
	Shares   int       `json:"shares"`
}

// Window is the calendar month a report covers.
// Day is the day of month the report is taken on and divides the post count.
type Window struct {
	Year  int
	Month time.Month
	Day   int
}

// WindowOf returns the window containing t
func WindowOf(t time.Time) Window {
	return Window{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Contains returns true if t falls in the window's month
func (w Window) Contains(t time.Time) bool {
	return t.Year() == w.Year && t.Month() == w.Month
}

// Before returns true if t is older than the first day of the window's month
func (w Window) Before(t time.Time) bool {
	if t.Year() != w.Year {
		return t.Year() < w.Year
	}
	return t.Month() < w.Month
}

func (w Window) String() string {
	return time.Date(w.Year, w.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// FilterMonth keeps the posts published in the window, preserving order
func FilterMonth(posts []Post, w Window) []Post {
	res := make([]Post, 0, len(posts))
	for _, p := range posts {
		if w.Contains(p.Date) {
			res = append(res, p)
		}
	}
	return res
}

package entity

import (
	"math"

	wall "github.com/vadim/vk-metric/internal/domain/wall/entity"
)

// Metrics holds one value per post for every engagement counter
type Metrics struct {
	Comments []int
	Views    []int
	Likes    []int
	Shares   []int
}

// MetricsOf splits posts into parallel counter sequences
func MetricsOf(posts []wall.Post) Metrics {
	m := Metrics{
		Comments: make([]int, 0, len(posts)),
		Views:    make([]int, 0, len(posts)),
		Likes:    make([]int, 0, len(posts)),
		Shares:   make([]int, 0, len(posts)),
	}
	for _, p := range posts {
		m.Comments = append(m.Comments, p.Comments)
		m.Views = append(m.Views, p.Views)
		m.Likes = append(m.Likes, p.Likes)
		m.Shares = append(m.Shares, p.Shares)
	}
	return m
}

// MetricSummary represents aggregated values of one counter
type MetricSummary struct {
	Sum  int
	Min  int
	Max  int
	Rate float64
}

// Summary represents aggregated values of every counter
type Summary struct {
	Comments MetricSummary
	Views    MetricSummary
	Likes    MetricSummary
	Shares   MetricSummary
}

// Summarize computes sum, min and max of values. Empty input gives zeros.
//
// Rate stays zero: no formula has been agreed for it yet and reports have
// always carried zero there.
func Summarize(values []int) MetricSummary {
	if len(values) == 0 {
		return MetricSummary{}
	}

	s := MetricSummary{Min: values[0], Max: values[0]}
	for _, v := range values {
		s.Sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	return s
}

// Aggregate summarizes every counter independently
func Aggregate(m Metrics) Summary {
	return Summary{
		Comments: Summarize(m.Comments),
		Views:    Summarize(m.Views),
		Likes:    Summarize(m.Likes),
		Shares:   Summarize(m.Shares),
	}
}

// PostRate returns posts per day rounded to two decimals
func PostRate(posts, day int) (float64, error) {
	if day == 0 {
		return 0, ErrDivision
	}
	return math.Round(float64(posts)/float64(day)*100) / 100, nil
}

// Report represents the monthly statistics of one account
type Report struct {
	URL     string  `json:"url"`
	Subs    int     `json:"subs"`
	Pubs    int     `json:"pubs"`
	PubRate float64 `json:"pub_rate"`

	CommentsCount int `json:"comments_count"`
	ViewsCount    int `json:"views_count"`
	LikesCount    int `json:"likes_count"`
	SharesCount   int `json:"shares_count"`

	CommentsMin int `json:"comments_min"`
	ViewsMin    int `json:"views_min"`
	LikesMin    int `json:"likes_min"`
	SharesMin   int `json:"shares_min"`

	CommentsMax int `json:"comments_max"`
	ViewsMax    int `json:"views_max"`
	LikesMax    int `json:"likes_max"`
	SharesMax   int `json:"shares_max"`

	CommentsRate float64 `json:"comments_rate"`
	ViewsRate    float64 `json:"views_rate"`
	LikesRate    float64 `json:"likes_rate"`
	SharesRate   float64 `json:"shares_rate"`
}

// NewReport flattens an aggregate into a report
func NewReport(url string, subs, pubs int, pubRate float64, s Summary) Report {
	return Report{
		URL:     url,
		Subs:    subs,
		Pubs:    pubs,
		PubRate: pubRate,

		CommentsCount: s.Comments.Sum,
		ViewsCount:    s.Views.Sum,
		LikesCount:    s.Likes.Sum,
		SharesCount:   s.Shares.Sum,

		CommentsMin: s.Comments.Min,
		ViewsMin:    s.Views.Min,
		LikesMin:    s.Likes.Min,
		SharesMin:   s.Shares.Min,

		CommentsMax: s.Comments.Max,
		ViewsMax:    s.Views.Max,
		LikesMax:    s.Likes.Max,
		SharesMax:   s.Shares.Max,

		CommentsRate: s.Comments.Rate,
		ViewsRate:    s.Views.Rate,
		LikesRate:    s.Likes.Rate,
		SharesRate:   s.Shares.Rate,
	}
}

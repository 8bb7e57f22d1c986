package models

import (
	"strings"
	"time"
)

// Report is a user-authored markdown note about one or more stock tickers.
type Report struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Report model.
func (r Report) TableName() string {
	return "reports"
}

const descriptionLength = 64

// Description returns the first characters of the content for list views,
// with an ellipsis when the content is cut.
func (r Report) Description() string {
	content := strings.Join(strings.Fields(r.Content), " ")
	runes := []rune(content)
	if len(runes) <= descriptionLength {
		return content
	}
	return string(runes[:descriptionLength]) + "..."
}

// ReportSummary is a list entry.
type ReportSummary struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Summary converts the report to its list representation.
func (r Report) Summary() ReportSummary {
	return ReportSummary{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description(),
		Tags:        r.Tags,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Period restricts reports by creation time.
type Period string

const (
	PeriodAll   Period = "all"
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Periods lists all supported periods in menu order.
var Periods = []Period{PeriodAll, PeriodDay, PeriodWeek, PeriodMonth, PeriodYear}

// Since returns the lower creation bound for the period relative to now.
// ok is false for [PeriodAll] and unknown values.
func (p Period) Since(now time.Time) (since time.Time, ok bool) {
	switch p {
	case PeriodDay:
		return now.AddDate(0, 0, -1), true
	case PeriodWeek:
		return now.AddDate(0, 0, -7), true
	case PeriodMonth:
		return now.AddDate(0, -1, 0), true
	case PeriodYear:
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// Label is the human readable filter title.
func (p Period) Label() string {
	switch p {
	case PeriodDay:
		return "Last 24 hours"
	case PeriodWeek:
		return "Last week"
	case PeriodMonth:
		return "Last month"
	case PeriodYear:
		return "Last year"
	default:
		return "All time"
	}
}

// SortOrder orders report lists.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
	SortTitle  SortOrder = "title"
)

// SortOrders lists all supported orders in menu order.
var SortOrders = []SortOrder{SortNewest, SortOldest, SortTitle}

// Label is the human readable sort title.
func (s SortOrder) Label() string {
	switch s {
	case SortOldest:
		return "Oldest first"
	case SortTitle:
		return "Title"
	default:
		return "Newest first"
	}
}

// ReportFilter holds list query parameters. An empty Tag means all stocks.
type ReportFilter struct {
	UserID int64     `json:"-"`
	Tag    string    `json:"tag,omitempty"`
	Period Period    `json:"period,omitempty"`
	Sort   SortOrder `json:"sort,omitempty"`
}

// ReportCreateRequest is the payload for a new report.
type ReportCreateRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// ReportUpdateRequest is a partial update. Nil fields are left unchanged.
type ReportUpdateRequest struct {
	Title   *string   `json:"title,omitempty"`
	Content *string   `json:"content,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
}

// TagRequest adds a single tag to a report.
type TagRequest struct {
	Tag string `json:"tag"`
}

// ReportList is the list endpoint response.
type ReportList struct {
	Reports []ReportSummary `json:"reports"`
	Length  int             `json:"length"`
}

// NormalizeTags trims tags, drops empty ones and removes duplicates while
// keeping the first occurrence order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

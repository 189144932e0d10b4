package models

import "time"

// Default values applied when a notice is created with empty optional fields.
const (
	DefaultNoticeTitle    = "Untitled"
	DefaultNoticeClass    = "All Classes"
	DefaultNoticeCategory = "News"
)

// CategoryAll is the filter value that matches every category.
const CategoryAll = "All"

// Notice is a timed announcement on the school notice board. The category
// domain is an open string set: unknown values are stored and rendered as-is.
type Notice struct {
	ID       int        `bson:"id" json:"id"`
	Title    string     `bson:"title" json:"title"`
	Message  string     `bson:"message" json:"message"`
	PostedBy string     `bson:"postedBy" json:"postedBy"`
	Class    string     `bson:"class" json:"class"`
	Category string     `bson:"category" json:"category"`
	Date     time.Time  `bson:"date" json:"date"`
	Expiry   *time.Time `bson:"expiry,omitempty" json:"expiry,omitempty"`
	Image    *string    `bson:"image,omitempty" json:"image,omitempty"`
}

// Visible reports whether the notice passes the shared display predicate:
// not expired relative to now, and matching the category filter. This single
// predicate backs the public grid, the management list and the PDF export.
func (n Notice) Visible(category string, now time.Time) bool {
	if n.Expiry != nil && n.Expiry.Before(now) {
		return false
	}
	return category == CategoryAll || n.Category == category
}

// CategoryIcons maps known categories to their ticker icon. Categories
// outside the map render with no icon, just the label.
var CategoryIcons = map[string]string{
	"Urgent":       "⚠️",
	"Events":       "📅",
	"News":         "📰",
	"Nationalism":  "🇬🇭",
	"Godliness":    "🙏",
	"Integrity":    "💎",
	"Excellence":   "🏆",
	"Service":      "🤝",
	"Attitude":     "😊",
	"Spelling":     "📚",
	"Intelligence": "🧠",
	"Write":        "✍️",
}

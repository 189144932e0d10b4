package dto

// Placeholder texts rendered when a filtered notice set is empty.
const (
	EmptyGridPlaceholder       = "No notices in this category."
	EmptyManagementPlaceholder = "No notices posted yet."
)

// NoticeCard is one entry of the public notice grid.
type NoticeCard struct {
	Title    string  `json:"title"`
	Message  string  `json:"message"`
	Image    *string `json:"image,omitempty"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
}

// NoticeGrid is the public grid view: cards, or a placeholder when empty.
type NoticeGrid struct {
	Cards       []NoticeCard `json:"cards"`
	Placeholder string       `json:"placeholder,omitempty"`
}

// NoticeRow is one entry of the management list. It carries the delete
// affordance via the notice id.
type NoticeRow struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Message  string  `json:"message"`
	Image    *string `json:"image,omitempty"`
	Category string  `json:"category"`
	Class    string  `json:"class"`
	PostedBy string  `json:"postedBy"`
	Date     string  `json:"date"`
	Expiry   string  `json:"expiry,omitempty"`
}

// ManagementList is the administrative view, newest first.
type ManagementList struct {
	Rows        []NoticeRow `json:"rows"`
	Placeholder string      `json:"placeholder,omitempty"`
}

// TickerEntry is one line of the top-of-page ticker strip.
type TickerEntry struct {
	Icon     string `json:"icon,omitempty"`
	Category string `json:"category"`
	Title    string `json:"title"`
}

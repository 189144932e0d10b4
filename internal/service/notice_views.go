package service

import (
	"time"

	"github.com/ebegrace/zion-academy-api/internal/dto"
	"github.com/ebegrace/zion-academy-api/internal/models"
)

// tickerSize fixes how many feed entries the top strip shows.
const tickerSize = 4

const displayDateFormat = "02 Jan 2006"

// BuildGrid renders the public notice grid for a category filter. An empty
// filtered set yields a single placeholder instead of an empty container.
// Feed order is preserved.
func BuildGrid(notices []models.Notice, category string, now time.Time) dto.NoticeGrid {
	visible := FilterVisible(notices, category, now)
	if len(visible) == 0 {
		return dto.NoticeGrid{Cards: []dto.NoticeCard{}, Placeholder: dto.EmptyGridPlaceholder}
	}

	cards := make([]dto.NoticeCard, 0, len(visible))
	for _, notice := range visible {
		cards = append(cards, dto.NoticeCard{
			Title:    notice.Title,
			Message:  notice.Message,
			Image:    notice.Image,
			Category: notice.Category,
			Date:     notice.Date.Format(displayDateFormat),
		})
	}
	return dto.NoticeGrid{Cards: cards}
}

// BuildManagementList renders the administrative list: same visibility
// predicate, sorted newest first, with poster, class, expiry and the delete
// affordance exposed.
func BuildManagementList(notices []models.Notice, category string, now time.Time) dto.ManagementList {
	visible := SortNewestFirst(FilterVisible(notices, category, now))
	if len(visible) == 0 {
		return dto.ManagementList{Rows: []dto.NoticeRow{}, Placeholder: dto.EmptyManagementPlaceholder}
	}

	rows := make([]dto.NoticeRow, 0, len(visible))
	for _, notice := range visible {
		row := dto.NoticeRow{
			ID:       notice.ID,
			Title:    notice.Title,
			Message:  notice.Message,
			Image:    notice.Image,
			Category: notice.Category,
			Class:    notice.Class,
			PostedBy: notice.PostedBy,
			Date:     notice.Date.Format(displayDateFormat),
		}
		if notice.Expiry != nil {
			row.Expiry = notice.Expiry.Format(displayDateFormat)
		}
		rows = append(rows, row)
	}
	return dto.ManagementList{Rows: rows}
}

// BuildTicker renders the top-of-page strip: the first entries of the
// unfiltered feed in stored order, independent of any category filter.
// Categories outside the icon table render with an empty icon.
func BuildTicker(notices []models.Notice) []dto.TickerEntry {
	limit := tickerSize
	if len(notices) < limit {
		limit = len(notices)
	}

	entries := make([]dto.TickerEntry, 0, limit)
	for _, notice := range notices[:limit] {
		entries = append(entries, dto.TickerEntry{
			Icon:     models.CategoryIcons[notice.Category],
			Category: notice.Category,
			Title:    notice.Title,
		})
	}
	return entries
}

package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/ebegrace/zion-academy-api/internal/models"
	appErrors "github.com/ebegrace/zion-academy-api/pkg/errors"
)

const noticeFeedCacheKey = "notices:feed"

type noticeRepository interface {
	List(ctx context.Context) ([]models.Notice, error)
	NextID(ctx context.Context) (int, error)
	Insert(ctx context.Context, notice *models.Notice) error
	DeleteByID(ctx context.Context, id int) error
}

// CreateNoticeInput is the typed command built from the notice form. Empty
// optional fields are defaulted here, in one place.
type CreateNoticeInput struct {
	Title    string
	Message  string
	PostedBy string
	Class    string
	Category string
	Expiry   *time.Time
	Image    *string
}

// NoticeService handles the notice board lifecycle.
type NoticeService struct {
	repo   noticeRepository
	cache  *CacheService
	logger *zap.Logger
}

// NewNoticeService constructs the service.
func NewNoticeService(repo noticeRepository, cache *CacheService, logger *zap.Logger) *NoticeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoticeService{repo: repo, cache: cache, logger: logger}
}

// Create assigns the next id from the current collection state, stamps the
// creation time, applies defaults and persists the notice.
func (s *NoticeService) Create(ctx context.Context, input CreateNoticeInput) (*models.Notice, error) {
	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to assign notice id")
	}

	notice := &models.Notice{
		ID:       id,
		Title:    defaultIfEmpty(input.Title, models.DefaultNoticeTitle),
		Message:  input.Message,
		PostedBy: input.PostedBy,
		Class:    defaultIfEmpty(input.Class, models.DefaultNoticeClass),
		Category: defaultIfEmpty(input.Category, models.DefaultNoticeCategory),
		Date:     time.Now(),
		Expiry:   input.Expiry,
		Image:    input.Image,
	}

	if err := s.repo.Insert(ctx, notice); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create notice")
	}

	s.cache.Invalidate(ctx, noticeFeedCacheKey)
	if notice.Category == "Urgent" {
		s.logger.Info("urgent notice posted", zap.Int("id", notice.ID), zap.String("title", notice.Title))
	}
	return notice, nil
}

// Feed returns the full notice feed in stored order, served from cache when
// possible.
func (s *NoticeService) Feed(ctx context.Context) ([]models.Notice, error) {
	var cached []models.Notice
	if s.cache.Get(ctx, noticeFeedCacheKey, &cached) {
		return cached, nil
	}

	notices, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list notices")
	}

	s.cache.Set(ctx, noticeFeedCacheKey, notices)
	return notices, nil
}

// Delete removes a notice by id. Deleting an unknown id succeeds silently.
func (s *NoticeService) Delete(ctx context.Context, id int) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete notice")
	}
	s.cache.Invalidate(ctx, noticeFeedCacheKey)
	return nil
}

// FilterVisible keeps the notices passing the shared display predicate.
// Every display and export surface goes through this one function.
func FilterVisible(notices []models.Notice, category string, now time.Time) []models.Notice {
	filtered := make([]models.Notice, 0, len(notices))
	for _, notice := range notices {
		if notice.Visible(category, now) {
			filtered = append(filtered, notice)
		}
	}
	return filtered
}

// SortNewestFirst returns a copy sorted by posting date, most recent first.
// Only the management view sorts; the public grid keeps feed order.
func SortNewestFirst(notices []models.Notice) []models.Notice {
	sorted := make([]models.Notice, len(notices))
	copy(sorted, notices)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

func defaultIfEmpty(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ebegrace/zion-academy-api/internal/models"
	appErrors "github.com/ebegrace/zion-academy-api/pkg/errors"
)

type mockNoticeRepo struct {
	notices []models.Notice
	deleted []int
	listed  int
}

func (m *mockNoticeRepo) List(ctx context.Context) ([]models.Notice, error) {
	m.listed++
	out := make([]models.Notice, len(m.notices))
	copy(out, m.notices)
	return out, nil
}

func (m *mockNoticeRepo) NextID(ctx context.Context) (int, error) {
	max := 0
	for _, n := range m.notices {
		if n.ID > max {
			max = n.ID
		}
	}
	return max + 1, nil
}

func (m *mockNoticeRepo) Insert(ctx context.Context, notice *models.Notice) error {
	m.notices = append(m.notices, *notice)
	return nil
}

func (m *mockNoticeRepo) DeleteByID(ctx context.Context, id int) error {
	m.deleted = append(m.deleted, id)
	kept := m.notices[:0]
	for _, n := range m.notices {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	m.notices = kept
	return nil
}

type fakeCacheRepo struct {
	store       map[string][]byte
	invalidated []string
	setCount    int
}

func (f *fakeCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := f.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if f.store == nil {
		f.store = make(map[string][]byte)
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = raw
	f.setCount++
	return nil
}

func (f *fakeCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	f.invalidated = append(f.invalidated, pattern)
	for key := range f.store {
		delete(f.store, key)
	}
	return nil
}

func newTestCache(repo CacheRepository) *CacheService {
	return NewCacheService(repo, time.Minute, zap.NewNop(), true)
}

func TestNoticeServiceCreateAssignsFirstID(t *testing.T) {
	repo := &mockNoticeRepo{}
	svc := NewNoticeService(repo, nil, zap.NewNop())

	notice, err := svc.Create(context.Background(), CreateNoticeInput{Message: "Welcome back", PostedBy: "Admin"})
	require.NoError(t, err)
	assert.Equal(t, 1, notice.ID)
	assert.False(t, notice.Date.IsZero())
}

func TestNoticeServiceCreateIncrementsFromMax(t *testing.T) {
	repo := &mockNoticeRepo{notices: []models.Notice{{ID: 1}, {ID: 3}, {ID: 5}}}
	svc := NewNoticeService(repo, nil, zap.NewNop())

	notice, err := svc.Create(context.Background(), CreateNoticeInput{Message: "Sports day"})
	require.NoError(t, err)
	assert.Equal(t, 6, notice.ID)
}

func TestNoticeServiceCreateReusesIDAfterDelete(t *testing.T) {
	repo := &mockNoticeRepo{notices: []models.Notice{{ID: 1}, {ID: 3}, {ID: 5}}}
	svc := NewNoticeService(repo, nil, zap.NewNop())

	require.NoError(t, svc.Delete(context.Background(), 5))
	notice, err := svc.Create(context.Background(), CreateNoticeInput{Message: "Replacement"})
	require.NoError(t, err)
	assert.Equal(t, 4, notice.ID)
}

func TestNoticeServiceCreateAppliesDefaults(t *testing.T) {
	repo := &mockNoticeRepo{}
	svc := NewNoticeService(repo, nil, zap.NewNop())

	notice, err := svc.Create(context.Background(), CreateNoticeInput{Message: "Bare announcement"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultNoticeTitle, notice.Title)
	assert.Equal(t, models.DefaultNoticeClass, notice.Class)
	assert.Equal(t, models.DefaultNoticeCategory, notice.Category)
	assert.Nil(t, notice.Expiry)
}

func TestNoticeServiceDeleteUnknownIDSucceeds(t *testing.T) {
	repo := &mockNoticeRepo{notices: []models.Notice{{ID: 1}}}
	svc := NewNoticeService(repo, nil, zap.NewNop())

	require.NoError(t, svc.Delete(context.Background(), 99))
	assert.Len(t, repo.notices, 1)
}

func TestNoticeServiceFeedCachesAndInvalidates(t *testing.T) {
	repo := &mockNoticeRepo{notices: []models.Notice{{ID: 1, Title: "First"}}}
	cacheRepo := &fakeCacheRepo{}
	svc := NewNoticeService(repo, newTestCache(cacheRepo), zap.NewNop())

	first, err := svc.Feed(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, cacheRepo.setCount)

	// A direct repository write is invisible until the cache is invalidated.
	repo.notices = append(repo.notices, models.Notice{ID: 2, Title: "Second"})
	cached, err := svc.Feed(context.Background())
	require.NoError(t, err)
	assert.Len(t, cached, 1)
	assert.Equal(t, 1, repo.listed)

	_, err = svc.Create(context.Background(), CreateNoticeInput{Message: "Third"})
	require.NoError(t, err)
	assert.Contains(t, cacheRepo.invalidated, "notices:feed")

	fresh, err := svc.Feed(context.Background())
	require.NoError(t, err)
	assert.Len(t, fresh, 3)
}

func TestFilterVisible(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)
	notices := []models.Notice{
		{ID: 1, Category: "News"},
		{ID: 2, Category: "Events", Expiry: &future},
		{ID: 3, Category: "Events", Expiry: &past},
		{ID: 4, Category: "Urgent"},
	}

	all := FilterVisible(notices, models.CategoryAll, now)
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 2, 4}, []int{all[0].ID, all[1].ID, all[2].ID})

	events := FilterVisible(notices, "Events", now)
	require.Len(t, events, 1)
	assert.Equal(t, 2, events[0].ID)

	assert.Empty(t, FilterVisible(notices, "Sports", now))
}

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	notices := []models.Notice{
		{ID: 1, Date: base},
		{ID: 2, Date: base.Add(48 * time.Hour)},
		{ID: 3, Date: base.Add(24 * time.Hour)},
	}

	sorted := SortNewestFirst(notices)
	assert.Equal(t, []int{2, 3, 1}, []int{sorted[0].ID, sorted[1].ID, sorted[2].ID})
	// Input order is untouched.
	assert.Equal(t, 1, notices[0].ID)
}

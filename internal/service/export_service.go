package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ebegrace/zion-academy-api/internal/dto"
	"github.com/ebegrace/zion-academy-api/internal/models"
	appErrors "github.com/ebegrace/zion-academy-api/pkg/errors"
	"github.com/ebegrace/zion-academy-api/pkg/export"
)

type noticeRenderer interface {
	Render(doc export.NoticeDocument) ([]byte, int, error)
}

type exportStorage interface {
	Save(filename string, data []byte) (string, error)
}

// ExportService turns the filtered notice board into a stored PDF document.
type ExportService struct {
	notices    *NoticeService
	renderer   noticeRenderer
	storage    exportStorage
	logger     *zap.Logger
	schoolName string
}

// NewExportService constructs the service.
func NewExportService(notices *NoticeService, renderer noticeRenderer, storage exportStorage, logger *zap.Logger, schoolName string) *ExportService {
	if renderer == nil {
		renderer = export.NewNoticePDF()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if schoolName == "" {
		schoolName = "Ebegrace Zion Academy"
	}
	return &ExportService{
		notices:    notices,
		renderer:   renderer,
		storage:    storage,
		logger:     logger,
		schoolName: schoolName,
	}
}

// Generate renders the notices visible under the category filter into a
// paginated PDF and stores it under a deterministic filename.
func (s *ExportService) Generate(ctx context.Context, category string) (*dto.ExportResult, error) {
	if category == "" {
		category = models.CategoryAll
	}

	feed, err := s.notices.Feed(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	visible := FilterVisible(feed, category, now)

	doc := export.NoticeDocument{
		Title:       fmt.Sprintf("%s - %s Notices", s.schoolName, category),
		GeneratedAt: now,
		Blocks:      make([]export.NoticeBlock, 0, len(visible)),
	}
	for _, notice := range visible {
		doc.Blocks = append(doc.Blocks, export.NoticeBlock{
			Title:    notice.Title,
			Category: notice.Category,
			PostedBy: notice.PostedBy,
			Date:     notice.Date,
			Message:  notice.Message,
		})
	}

	payload, pages, err := s.renderer.Render(doc)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render notice document")
	}

	filename := BuildExportFilename(s.schoolName, category, now)
	path, err := s.storage.Save(filename, payload)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store notice document")
	}

	s.logger.Info("notice board exported",
		zap.String("category", category),
		zap.Int("notices", len(visible)),
		zap.Int("pages", pages),
	)

	return &dto.ExportResult{
		FileName: filename,
		Path:     path,
		Pages:    pages,
		Notices:  len(visible),
	}, nil
}

// BuildExportFilename derives the stored name from the school, the category
// filter and the generation date only, so repeated exports on the same day
// overwrite rather than accumulate.
func BuildExportFilename(schoolName, category string, on time.Time) string {
	prefix := strings.ReplaceAll(schoolName, " ", "")
	return fmt.Sprintf("%s_%s_Notices_%s.pdf", prefix, category, on.Format("2006-01-02"))
}

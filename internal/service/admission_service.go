package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/ebegrace/zion-academy-api/internal/dto"
	"github.com/ebegrace/zion-academy-api/internal/models"
	appErrors "github.com/ebegrace/zion-academy-api/pkg/errors"
)

type applicationRepository interface {
	List(ctx context.Context, status models.ApplicationStatus) ([]models.Application, error)
	GetByID(ctx context.Context, id string) (*models.Application, error)
	Insert(ctx context.Context, application *models.Application) error
	Update(ctx context.Context, application *models.Application) error
}

type studentWriter interface {
	Insert(ctx context.Context, student *models.Student) error
}

// EnrollmentConfig carries the school defaults stamped onto new students.
type EnrollmentConfig struct {
	StudentIDPrefix string
	DefaultRegion   string
}

// AdmissionService handles the admissions queue and the enrollment
// transition from accepted application to student record.
type AdmissionService struct {
	applications applicationRepository
	students     studentWriter
	notifier     AcceptanceNotifier
	validator    *validator.Validate
	logger       *zap.Logger
	cfg          EnrollmentConfig
}

// NewAdmissionService constructs the service.
func NewAdmissionService(applications applicationRepository, students studentWriter, notifier AcceptanceNotifier, validate *validator.Validate, logger *zap.Logger, cfg EnrollmentConfig) *AdmissionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = NewLogNotifier(logger)
	}
	if cfg.StudentIDPrefix == "" {
		cfg.StudentIDPrefix = "EZ"
	}
	if cfg.DefaultRegion == "" {
		cfg.DefaultRegion = "Greater Accra"
	}
	return &AdmissionService{
		applications: applications,
		students:     students,
		notifier:     notifier,
		validator:    validate,
		logger:       logger,
		cfg:          cfg,
	}
}

// Submit registers a new pending application from the admissions form.
func (s *AdmissionService) Submit(ctx context.Context, req dto.SubmitApplicationRequest) (*models.Application, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid application payload")
	}

	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "dob must be formatted YYYY-MM-DD")
	}

	application := &models.Application{
		ChildName:   req.ChildName,
		DOB:         dob,
		Program:     req.Program,
		ParentName:  req.ParentName,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		SubmittedAt: time.Now(),
		Status:      models.ApplicationPending,
	}

	if err := s.applications.Insert(ctx, application); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save application")
	}
	return application, nil
}

// List returns applications filtered by status; an empty status lists all.
func (s *AdmissionService) List(ctx context.Context, status models.ApplicationStatus) ([]models.Application, error) {
	applications, err := s.applications.List(ctx, status)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list applications")
	}
	return applications, nil
}

// Accept promotes one pending application: it mints a login credential,
// marks the application accepted and creates the student record. The two
// writes are independent; a failure after the first leaves an accepted
// application without a student, which is surfaced in the log rather than
// rolled back.
func (s *AdmissionService) Accept(ctx context.Context, id string) (*dto.AcceptResult, error) {
	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "application not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load application")
	}

	if application.Status == models.ApplicationAccepted {
		return nil, appErrors.Clone(appErrors.ErrValidation, "application already accepted")
	}

	credential, err := GenerateCredential()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to generate credential")
	}

	application.Status = models.ApplicationAccepted
	application.LoginEmail = application.Email
	application.LoginPassword = credential
	if err := s.applications.Update(ctx, application); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update application")
	}

	now := time.Now()
	student := models.Student{
		ID:             s.mintStudentID(now),
		Name:           application.ChildName,
		Age:            models.AgeAt(application.DOB, now),
		Class:          application.Program,
		Level:          models.LevelFromProgram(application.Program),
		Region:         s.cfg.DefaultRegion,
		Parent:         models.Parent{Name: application.ParentName, Phone: application.Phone, Email: application.Email},
		EnrollmentDate: now,
		Attendance:     "100%",
		ReportCard:     []models.ReportCardEntry{},
	}

	if err := s.students.Insert(ctx, &student); err != nil {
		s.logger.Warn("application accepted but student record missing",
			zap.String("application_id", application.ID.Hex()),
			zap.Error(err),
		)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student record")
	}

	if err := s.notifier.NotifyAccepted(ctx, *application, student); err != nil {
		s.logger.Warn("acceptance notification failed", zap.String("email", application.Email), zap.Error(err))
	}

	return &dto.AcceptResult{
		Success:    true,
		Message:    "Application accepted",
		StudentID:  student.ID,
		LoginEmail: application.LoginEmail,
	}, nil
}

// mintStudentID builds the roster id from the configured prefix and the
// last six digits of the current unix-millisecond clock. Sub-millisecond
// acceptances can collide; the original system shares this limitation.
func (s *AdmissionService) mintStudentID(now time.Time) string {
	millis := fmt.Sprintf("%d", now.UnixMilli())
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	return s.cfg.StudentIDPrefix + millis
}

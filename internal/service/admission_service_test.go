package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/ebegrace/zion-academy-api/internal/dto"
	"github.com/ebegrace/zion-academy-api/internal/models"
	appErrors "github.com/ebegrace/zion-academy-api/pkg/errors"
)

type mockApplicationRepo struct {
	applications map[string]models.Application
	inserted     *models.Application
	updated      *models.Application
}

func (m *mockApplicationRepo) List(ctx context.Context, status models.ApplicationStatus) ([]models.Application, error) {
	var out []models.Application
	for _, a := range m.applications {
		if status == "" || a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockApplicationRepo) GetByID(ctx context.Context, id string) (*models.Application, error) {
	if a, ok := m.applications[id]; ok {
		return &a, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockApplicationRepo) Insert(ctx context.Context, application *models.Application) error {
	if application.ID.IsZero() {
		application.ID = primitive.NewObjectID()
	}
	if m.applications == nil {
		m.applications = make(map[string]models.Application)
	}
	m.applications[application.ID.Hex()] = *application
	m.inserted = application
	return nil
}

func (m *mockApplicationRepo) Update(ctx context.Context, application *models.Application) error {
	m.applications[application.ID.Hex()] = *application
	m.updated = application
	return nil
}

type mockStudentRepo struct {
	inserted  []models.Student
	insertErr error
}

func (m *mockStudentRepo) Insert(ctx context.Context, student *models.Student) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, *student)
	return nil
}

type mockNotifier struct {
	notified []string
	err      error
}

func (m *mockNotifier) NotifyAccepted(ctx context.Context, application models.Application, student models.Student) error {
	m.notified = append(m.notified, application.Email)
	return m.err
}

func newAdmissionService(apps *mockApplicationRepo, students *mockStudentRepo, notifier AcceptanceNotifier) *AdmissionService {
	return NewAdmissionService(apps, students, notifier, validator.New(), zap.NewNop(), EnrollmentConfig{})
}

func pendingApplication() models.Application {
	return models.Application{
		ID:          primitive.NewObjectID(),
		ChildName:   "Ama Mensah",
		DOB:         time.Date(2019, 6, 15, 0, 0, 0, 0, time.UTC),
		Program:     "Primary 1",
		ParentName:  "Kofi Mensah",
		Phone:       "0244000000",
		Email:       "kofi@example.com",
		SubmittedAt: time.Now(),
		Status:      models.ApplicationPending,
	}
}

func TestAdmissionServiceSubmit(t *testing.T) {
	repo := &mockApplicationRepo{}
	svc := newAdmissionService(repo, &mockStudentRepo{}, &mockNotifier{})

	application, err := svc.Submit(context.Background(), dto.SubmitApplicationRequest{
		ChildName:  "Ama Mensah",
		DOB:        "2019-06-15",
		Program:    "Primary 1",
		ParentName: "Kofi Mensah",
		Phone:      "0244000000",
		Email:      "kofi@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, application.Status)
	assert.Equal(t, 2019, application.DOB.Year())
	assert.NotNil(t, repo.inserted)
	assert.False(t, application.SubmittedAt.IsZero())
}

func TestAdmissionServiceSubmitInvalidEmail(t *testing.T) {
	svc := newAdmissionService(&mockApplicationRepo{}, &mockStudentRepo{}, &mockNotifier{})

	_, err := svc.Submit(context.Background(), dto.SubmitApplicationRequest{
		ChildName:  "Ama Mensah",
		DOB:        "2019-06-15",
		Program:    "Primary 1",
		ParentName: "Kofi Mensah",
		Phone:      "0244000000",
		Email:      "not-an-email",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAdmissionServiceSubmitBadDOB(t *testing.T) {
	svc := newAdmissionService(&mockApplicationRepo{}, &mockStudentRepo{}, &mockNotifier{})

	_, err := svc.Submit(context.Background(), dto.SubmitApplicationRequest{
		ChildName:  "Ama Mensah",
		DOB:        "15/06/2019",
		Program:    "Primary 1",
		ParentName: "Kofi Mensah",
		Phone:      "0244000000",
		Email:      "kofi@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAdmissionServiceAccept(t *testing.T) {
	application := pendingApplication()
	repo := &mockApplicationRepo{applications: map[string]models.Application{application.ID.Hex(): application}}
	students := &mockStudentRepo{}
	notifier := &mockNotifier{}
	svc := newAdmissionService(repo, students, notifier)

	result, err := svc.Accept(context.Background(), application.ID.Hex())
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, application.Email, result.LoginEmail)

	require.NotNil(t, repo.updated)
	assert.Equal(t, models.ApplicationAccepted, repo.updated.Status)
	assert.Len(t, repo.updated.LoginPassword, 8)

	require.Len(t, students.inserted, 1)
	student := students.inserted[0]
	assert.Equal(t, result.StudentID, student.ID)
	assert.Equal(t, "EZ", student.ID[:2])
	assert.Len(t, student.ID, 8)
	assert.Equal(t, "Ama Mensah", student.Name)
	assert.Equal(t, models.LevelPrimary, student.Level)
	assert.Equal(t, "Greater Accra", student.Region)
	assert.Equal(t, "100%", student.Attendance)
	assert.NotNil(t, student.ReportCard)
	assert.Empty(t, student.ReportCard)

	assert.Equal(t, []string{application.Email}, notifier.notified)
}

func TestAdmissionServiceAcceptUnknownID(t *testing.T) {
	repo := &mockApplicationRepo{}
	students := &mockStudentRepo{}
	svc := newAdmissionService(repo, students, &mockNotifier{})

	_, err := svc.Accept(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	assert.Nil(t, repo.updated)
	assert.Empty(t, students.inserted)
}

func TestAdmissionServiceAcceptAlreadyAccepted(t *testing.T) {
	application := pendingApplication()
	application.Status = models.ApplicationAccepted
	repo := &mockApplicationRepo{applications: map[string]models.Application{application.ID.Hex(): application}}
	students := &mockStudentRepo{}
	svc := newAdmissionService(repo, students, &mockNotifier{})

	_, err := svc.Accept(context.Background(), application.ID.Hex())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Empty(t, students.inserted)
}

func TestAdmissionServiceAcceptStudentInsertFailure(t *testing.T) {
	application := pendingApplication()
	repo := &mockApplicationRepo{applications: map[string]models.Application{application.ID.Hex(): application}}
	students := &mockStudentRepo{insertErr: errors.New("write failed")}
	notifier := &mockNotifier{}
	svc := newAdmissionService(repo, students, notifier)

	_, err := svc.Accept(context.Background(), application.ID.Hex())
	require.Error(t, err)
	// The application update is not rolled back.
	require.NotNil(t, repo.updated)
	assert.Equal(t, models.ApplicationAccepted, repo.updated.Status)
	assert.Empty(t, notifier.notified)
}

func TestAdmissionServiceAcceptNotifierFailureIsSwallowed(t *testing.T) {
	application := pendingApplication()
	repo := &mockApplicationRepo{applications: map[string]models.Application{application.ID.Hex(): application}}
	svc := newAdmissionService(repo, &mockStudentRepo{}, &mockNotifier{err: errors.New("smtp down")})

	result, err := svc.Accept(context.Background(), application.ID.Hex())
	require.NoError(t, err)
	assert.True(t, result.Success)
}

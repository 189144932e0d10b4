package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ebegrace/zion-academy-api/internal/models"
)

// AcceptanceNotifier delivers the acceptance message to the applicant.
// Failures on this side channel are logged and never abort the enrollment.
type AcceptanceNotifier interface {
	NotifyAccepted(ctx context.Context, application models.Application, student models.Student) error
}

// LogNotifier records the acceptance event in the log in place of a real
// mail delivery channel.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier constructs the notifier.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

// NotifyAccepted logs the acceptance email that would be sent.
func (n *LogNotifier) NotifyAccepted(ctx context.Context, application models.Application, student models.Student) error {
	n.logger.Info("sending acceptance email",
		zap.String("email", application.Email),
		zap.String("student_id", student.ID),
	)
	return nil
}

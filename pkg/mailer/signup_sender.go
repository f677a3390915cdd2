package mailer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-signup/config"
	"github.com/oksasatya/go-ddd-signup/internal/domain/entity"
	mailtpl "github.com/oksasatya/go-ddd-signup/pkg/mailer/templates"
)

// Publisher puts a JSON message on the email queue.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// NewSignupJob builds the queued verification email for req.
func NewSignupJob(cfg *config.Config, req entity.SignupEmailRequest) EmailJob {
	return EmailJob{
		ID:       uuid.NewString(),
		To:       req.Email.String(),
		Template: mailtpl.SignupVerification,
		Data: mailtpl.NewSignupVerificationData(cfg,
			req.Username.String(),
			req.Email.String(),
			req.VerificationCode.String(),
			mailtpl.WithTime(time.Now()),
		),
	}
}

// QueueSender hands signup emails to the email worker through RabbitMQ.
type QueueSender struct {
	Pub Publisher
	Cfg *config.Config
}

func NewQueueSender(pub Publisher, cfg *config.Config) *QueueSender {
	return &QueueSender{Pub: pub, Cfg: cfg}
}

func (s *QueueSender) SendSignupEmail(ctx context.Context, req entity.SignupEmailRequest) error {
	job := NewSignupJob(s.Cfg, req)
	if err := s.Pub.PublishJSON(ctx, job); err != nil {
		return oops.Code("EMAIL_ENQUEUE_FAILED").With("job_id", job.ID).Wrap(err)
	}
	return nil
}

// DirectSender renders and sends the signup email in-process.
type DirectSender struct {
	Transport Sender
	Cfg       *config.Config
}

func NewDirectSender(t Sender, cfg *config.Config) *DirectSender {
	return &DirectSender{Transport: t, Cfg: cfg}
}

func (s *DirectSender) SendSignupEmail(ctx context.Context, req entity.SignupEmailRequest) error {
	job := NewSignupJob(s.Cfg, req)
	subject, text, html, err := mailtpl.Render(job.Template, job.Data)
	if err != nil {
		return oops.Code("EMAIL_RENDER_FAILED").With("template", job.Template).Wrap(err)
	}
	if err := s.Transport.Send(ctx, job.To, subject, text, html); err != nil {
		return oops.Code("EMAIL_SEND_FAILED").Wrap(err)
	}
	return nil
}

// LogSender only logs the verification link. Used when MAIL_SEND_ENABLED=false.
type LogSender struct {
	Logger *logrus.Logger
	Cfg    *config.Config
}

func NewLogSender(logger *logrus.Logger, cfg *config.Config) *LogSender {
	return &LogSender{Logger: logger, Cfg: cfg}
}

func (s *LogSender) SendSignupEmail(_ context.Context, req entity.SignupEmailRequest) error {
	job := NewSignupJob(s.Cfg, req)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"to":         job.To,
			"username":   req.Username.String(),
			"verify_url": job.Data["VerifyURL"],
		}).Info("mail sending disabled; signup email not sent")
	}
	return nil
}

package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	mailtpl "github.com/oksasatya/go-ddd-signup/pkg/mailer/templates"
)

// Disposition tells the consumer loop what to do with a delivery.
type Disposition int

const (
	Ack     Disposition = iota // done, or a duplicate
	Reject                     // malformed; drop without requeue
	Requeue                    // transient failure; deliver again
)

func (d Disposition) String() string {
	switch d {
	case Ack:
		return "ack"
	case Reject:
		return "reject"
	case Requeue:
		return "requeue"
	default:
		return "unknown"
	}
}

// Worker renders and sends queued email jobs.
type Worker struct {
	Transport Sender
	Redis     *redis.Client
	Logger    *logrus.Logger
	DedupeTTL time.Duration
	Timeout   time.Duration
}

func keySent(jobID string) string { return "email:sent:" + jobID }

// Handle processes one raw queue message.
func (w *Worker) Handle(ctx context.Context, body []byte) Disposition {
	var job EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		w.logger().WithError(err).Warn("bad email job payload")
		return Reject
	}
	log := w.logger().WithFields(logrus.Fields{"job_id": job.ID, "to": job.To, "template": job.Template})
	if job.To == "" {
		log.Warn("email job without recipient")
		return Reject
	}

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		var err error
		subject, text, html, err = mailtpl.Render(job.Template, job.Data)
		if err != nil {
			log.WithError(err).Warn("render failed")
			return Reject
		}
	}

	claimed, err := w.claim(ctx, job.ID)
	if err != nil {
		log.WithError(err).Warn("dedupe claim failed")
		return Requeue
	}
	if !claimed {
		log.Info("duplicate email job skipped")
		return Ack
	}

	timeout := w.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := w.Transport.Send(c, job.To, subject, text, html); err != nil {
		log.WithError(err).Error("send failed")
		w.release(ctx, job.ID)
		return Requeue
	}
	log.Info("email sent")
	return Ack
}

// claim marks jobID as being sent. It always succeeds when dedupe is off.
func (w *Worker) claim(ctx context.Context, jobID string) (bool, error) {
	if w.Redis == nil || jobID == "" {
		return true, nil
	}
	ttl := w.DedupeTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	ok, err := w.Redis.SetNX(ctx, keySent(jobID), "1", ttl).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, err
	}
	return ok, nil
}

func (w *Worker) release(ctx context.Context, jobID string) {
	if w.Redis == nil || jobID == "" {
		return
	}
	if err := w.Redis.Del(ctx, keySent(jobID)).Err(); err != nil {
		w.logger().WithError(err).WithField("job_id", jobID).Warn("release dedupe key failed")
	}
}

func (w *Worker) logger() *logrus.Logger {
	if w.Logger == nil {
		return logrus.StandardLogger()
	}
	return w.Logger
}

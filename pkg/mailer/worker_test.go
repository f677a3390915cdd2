package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T, tr Sender) (*Worker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	logger, _ := test.NewNullLogger()
	return &Worker{Transport: tr, Redis: rdb, Logger: logger, DedupeTTL: time.Hour}, mr
}

func jobBody(t *testing.T, job EmailJob) []byte {
	t.Helper()
	b, err := json.Marshal(job)
	require.NoError(t, err)
	return b
}

func TestWorker_SendsTemplateOnce(t *testing.T) {
	tr := &fakeTransport{}
	w, mr := newTestWorker(t, tr)
	body := jobBody(t, NewSignupJob(testCfg, signupEmailRequest(t)))

	assert.Equal(t, Ack, w.Handle(context.Background(), body))
	assert.Equal(t, 1, tr.calls)
	assert.Equal(t, "Acme: verify your email address", tr.subject)

	// redelivery of the same job is acknowledged without sending
	assert.Equal(t, Ack, w.Handle(context.Background(), body))
	assert.Equal(t, 1, tr.calls)
	assert.Len(t, mr.Keys(), 1)
}

func TestWorker_RawMessage(t *testing.T) {
	tr := &fakeTransport{}
	w, _ := newTestWorker(t, tr)
	body := jobBody(t, EmailJob{ID: "raw-1", To: "bob@example.com", Subject: "hello", Text: "plain"})

	assert.Equal(t, Ack, w.Handle(context.Background(), body))
	assert.Equal(t, "hello", tr.subject)
	assert.Equal(t, "plain", tr.text)
}

func TestWorker_SendFailureReleasesClaim(t *testing.T) {
	tr := &fakeTransport{err: errors.New("mailgun 503")}
	w, mr := newTestWorker(t, tr)
	body := jobBody(t, EmailJob{ID: "job-1", To: "bob@example.com", Subject: "s", Text: "t"})

	assert.Equal(t, Requeue, w.Handle(context.Background(), body))
	assert.False(t, mr.Exists("email:sent:job-1"))

	tr.err = nil
	assert.Equal(t, Ack, w.Handle(context.Background(), body))
	assert.Equal(t, 2, tr.calls)
}

func TestWorker_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{name: "invalid json", body: []byte("{")},
		{name: "no recipient", body: []byte(`{"id":"x","subject":"s","text":"t"}`)},
		{name: "unknown template", body: []byte(`{"id":"x","to":"a@b.com","template":"missing"}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &fakeTransport{}
			w, _ := newTestWorker(t, tr)
			assert.Equal(t, Reject, w.Handle(context.Background(), tt.body))
			assert.Equal(t, 0, tr.calls)
		})
	}
}

func TestWorker_RedisDownRequeues(t *testing.T) {
	tr := &fakeTransport{}
	w, mr := newTestWorker(t, tr)
	mr.Close()

	body := jobBody(t, EmailJob{ID: "job-2", To: "bob@example.com", Subject: "s", Text: "t"})
	assert.Equal(t, Requeue, w.Handle(context.Background(), body))
	assert.Equal(t, 0, tr.calls)
}

func TestWorker_WithoutRedis(t *testing.T) {
	tr := &fakeTransport{}
	w := &Worker{Transport: tr}
	body := jobBody(t, EmailJob{ID: "job-3", To: "bob@example.com", Subject: "s", Text: "t"})
	assert.Equal(t, Ack, w.Handle(context.Background(), body))
	assert.Equal(t, Ack, w.Handle(context.Background(), body))
	assert.Equal(t, 2, tr.calls)
}

func TestWithRetry(t *testing.T) {
	attempts := 0
	err := withRetry(context.Background(), 2, time.Millisecond, func(context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)

	attempts = 0
	cause := errors.New("permanent")
	err = withRetry(context.Background(), 1, time.Millisecond, func(context.Context) error {
		attempts++
		return cause
	})
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 2, attempts)
}

package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess      = "success"
	OutcomeConflict     = "conflict"
	OutcomeCreateFailed = "create_failed"
	OutcomeEmailFailed  = "email_failed"
	OutcomeNotFound     = "not_found"
	OutcomeError        = "error"
)

// Signup counts signup and verification outcomes. A nil *Signup is valid and
// records nothing.
type Signup struct {
	signups       *prometheus.CounterVec
	verifications *prometheus.CounterVec
}

// NewSignup registers the counters on reg.
func NewSignup(namespace string, reg prometheus.Registerer) *Signup {
	m := &Signup{
		signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signups_total",
			Help:      "Signup attempts by outcome.",
		}, []string{"outcome"}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verifications_total",
			Help:      "Verification code redemptions by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.signups, m.verifications)
	return m
}

func (m *Signup) ObserveSignup(outcome string) {
	if m == nil {
		return
	}
	m.signups.WithLabelValues(outcome).Inc()
}

func (m *Signup) ObserveVerification(outcome string) {
	if m == nil {
		return
	}
	m.verifications.WithLabelValues(outcome).Inc()
}

// Namespace turns an app name into a valid metric namespace.
func Namespace(appName string) string {
	ns := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, strings.ToLower(appName))
	if ns == "" || (ns[0] >= '0' && ns[0] <= '9') {
		ns = "app_" + ns
	}
	return ns
}

package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-signup/config"
	"github.com/oksasatya/go-ddd-signup/internal/application"
	"github.com/oksasatya/go-ddd-signup/pkg/metrics"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	signupMailer application.SignupMailer

	registry      *prometheus.Registry
	signupMetrics *metrics.Signup
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }
func SetPGPool(p *pgxpool.Pool)  { pgPool = p }
func GetPGPool() *pgxpool.Pool   { return pgPool }
func SetRedis(r *redis.Client)   { redisClient = r }
func GetRedis() *redis.Client    { return redisClient }

func SetMailer(m application.SignupMailer) { signupMailer = m }
func GetMailer() application.SignupMailer  { return signupMailer }

// GetMetricsRegistry lazily creates the registry on first use.
func GetMetricsRegistry() *prometheus.Registry {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	return registry
}

func GetSignupMetrics() *metrics.Signup {
	if signupMetrics == nil {
		name := "signup"
		if cfg != nil && cfg.AppName != "" {
			name = cfg.AppName
		}
		signupMetrics = metrics.NewSignup(metrics.Namespace(name), GetMetricsRegistry())
	}
	return signupMetrics
}

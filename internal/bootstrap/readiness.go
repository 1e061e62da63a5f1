package bootstrap

import (
	"log/slog"

	"github.com/init-pkg/wrapped-reports/internal/config"
)

// CheckReadiness logs the optional integrations that are switched off.
func CheckReadiness(cfg *config.Config, log *slog.Logger) {
	if cfg.Clients.OpenAI.ApiKey == "" {
		log.Warn("GROQ_API_KEY is not set, report generation will fail")
	}
	if cfg.Infrastructure.Redis.Address == "" {
		log.Info("redis address is empty, bulk jobs are kept in memory")
	}
	if cfg.Infrastructure.Amqp.Url == "" {
		log.Info("amqp url is empty, generated reports are not published")
	}
}

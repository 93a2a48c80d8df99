package http

import (
	"log/slog"
)

const serviceName = "cognivus-web"

func httpLogger() *slog.Logger {
	return slog.Default().With(
		"service", serviceName,
		"module", "http",
		"layer", "adapter",
	)
}

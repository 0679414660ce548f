package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup installs the default middleware stack. Call it before routes are
// registered.
func Setup(e *echo.Echo, log zerolog.Logger) {
	SetupWithConfig(e, log, DefaultRecoveryConfig())
}

// SetupWithConfig installs RequestID, RequestLogger and Recover, in that
// order: every log line needs the request id, and a recovered panic still
// reaches the request log as a 500.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, recoveryConfig RecoveryConfig) {
	e.Use(
		RequestID(),
		RequestLogger(log),
		RecoverWithConfig(log, recoveryConfig),
	)
}

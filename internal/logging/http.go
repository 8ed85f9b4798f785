package logging

import (
	"go.uber.org/zap"
)

// LogOutboundRequest records an outgoing HTTP call to an external service.
func LogOutboundRequest(logger *zap.Logger, method string, url string) {
	logger.Debug("outbound request", zap.String("method", method), zap.String("url", url))
}

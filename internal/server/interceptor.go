package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/joseph-ayodele/spendsync/internal/common"
)

// UnaryLoggingInterceptor tags every request with a request ID and logs the
// outcome with its latency.
func UnaryLoggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := uuid.NewString()
		ctx = common.WithRequestID(ctx, requestID)

		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		if err != nil {
			logger.Warn("rpc failed",
				"method", info.FullMethod,
				"request_id", requestID,
				"elapsed", elapsed.String(),
				"error", err)
			return resp, err
		}
		logger.Debug("rpc ok",
			"method", info.FullMethod,
			"request_id", requestID,
			"elapsed", elapsed.String())
		return resp, nil
	}
}

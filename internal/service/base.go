// Package service contains the pool orchestration logic backing the HTTP
// handlers: token scaffolding, the pool engine, and record logging.
package service

import "log/slog"

// BaseService provides common dependencies for service types.
type BaseService struct {
	logger *slog.Logger
}

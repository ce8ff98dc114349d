package domain

import (
	"context"
	"errors"
	"time"

	"github.com/voltgrid/voltgrid/pkg/db/pagination"
)

// Entry describes one audited state change. OldValues and NewValues carry
// before/after snapshots for mutations; either may be nil.
type Entry struct {
	ActorID    *string
	Action     string
	TargetType string
	TargetID   *string
	OldValues  map[string]any
	NewValues  map[string]any
}

type ListAuditLogRequest struct {
	pagination.Pagination
	Action     string
	TargetType string
	TargetID   string
	StartAt    *time.Time
	EndAt      *time.Time
}

type ListAuditLogResponse struct {
	pagination.PageInfo
	AuditLogs []AuditLog `json:"audit_logs"`
}

// Service records audit events. Log is best-effort: callers treat it as
// fire-and-forget and must not fail their own operation on error.
type Service interface {
	Log(ctx context.Context, entry Entry) error
	List(ctx context.Context, req ListAuditLogRequest) (ListAuditLogResponse, error)
}

var (
	ErrInvalidAction    = errors.New("invalid_action")
	ErrInvalidPageToken = errors.New("invalid_page_token")
	ErrInvalidTimeRange = errors.New("invalid_time_range")
)

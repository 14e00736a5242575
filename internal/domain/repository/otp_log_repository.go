package repository

import (
	"context"
	"time"

	"smartethnic/internal/domain/entity"
)

// OTPLogRepository is the spreadsheet-like record store every issued code is
// appended to.
type OTPLogRepository interface {
	Append(ctx context.Context, record *entity.OTPRecord) error
	// DeleteOlderThan removes log rows older than age and returns how many
	// were deleted.
	DeleteOlderThan(ctx context.Context, age time.Duration) (int, error)
}

package repository

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the ISO-8601 layout every adapter renders dates with.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

// NewID returns an opaque ID such as thread-3f1c...
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// FormatDate renders t in UTC with millisecond precision.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// PageVerify clamps a batch size into [1, maxPageSize].
func PageVerify(num *int) {
	if *num <= 0 {
		*num = defaultPageSize
	}
	if *num > maxPageSize {
		*num = maxPageSize
	}
}

const (
	defaultPageSize = 500
	maxPageSize     = 5000
)

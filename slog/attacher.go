package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lexso"
)

// Ensure LoggingAttacher implements lexso.Attacher.
var _ lexso.Attacher = (*LoggingAttacher)(nil)

// LoggingAttacher wraps an Attacher with logging.
type LoggingAttacher struct {
	next   lexso.Attacher
	logger *slog.Logger
}

// NewLoggingAttacher creates a new LoggingAttacher.
func NewLoggingAttacher(next lexso.Attacher, logger *slog.Logger) *LoggingAttacher {
	return &LoggingAttacher{next: next, logger: logger}
}

// AttachIdentifier delegates to the wrapped attacher and logs the call.
func (a *LoggingAttacher) AttachIdentifier(ctx context.Context, lexemeID string, foreignID lexso.ForeignID) (err error) {
	defer func(begin time.Time) {
		a.logger.Info("attach identifier",
			"lexeme", lexemeID,
			"property", foreignID.Property,
			"id", foreignID.ID,
			"noValue", foreignID.NoValue,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.AttachIdentifier(ctx, lexemeID, foreignID)
}

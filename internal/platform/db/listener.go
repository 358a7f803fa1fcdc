package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Listener turns Postgres LISTEN/NOTIFY into snapshot callbacks. A
// notification carries no payload the subscriber relies on; it only says
// "something changed", and the subscriber re-reads the full state. That
// keeps subscribers correct even when notifications coalesce or get lost
// across a reconnect, because every (re)connect fires the callback once.
type Listener struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewListener creates a listener on the given pool.
func NewListener(pool *pgxpool.Pool, logger zerolog.Logger) *Listener {
	return &Listener{pool: pool, logger: logger.With().Str("component", "db-listener").Logger()}
}

// Subscribe listens on channel until ctx is cancelled, invoking onChange
// once immediately and once per notification. Connection loss triggers a
// backoff and re-listen; the callback fires again after each reconnect so
// no change window is silently skipped. Runs in its own goroutine.
func (l *Listener) Subscribe(ctx context.Context, channel string, onChange func(ctx context.Context)) {
	go func() {
		backoff := time.Second
		for {
			if err := l.listen(ctx, channel, onChange); err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Warn().Err(err).Str("channel", channel).
					Dur("retry_in", backoff).Msg("listen connection lost")
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
		}
	}()
}

func (l *Listener) listen(ctx context.Context, channel string, onChange func(ctx context.Context)) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+sanitizeChannel(channel)); err != nil {
		return err
	}

	// Initial snapshot for this connection epoch.
	onChange(ctx)

	for {
		if _, err := conn.Conn().WaitForNotification(ctx); err != nil {
			return err
		}
		l.logger.Debug().Str("channel", channel).Msg("change notification")
		onChange(ctx)
	}
}

// sanitizeChannel keeps the identifier to a safe character set; channel
// names are compile-time constants in this codebase, so anything else is a
// programming error worth failing loudly on.
func sanitizeChannel(name string) string {
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '_':
			out = append(out, c)
		default:
			panic("invalid notification channel name: " + name)
		}
	}
	return string(out)
}

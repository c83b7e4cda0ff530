// Package queue implements the durable queue between the device pollers and
// the worker pool, backed by two Postgres tables. Delivery is at-least-once:
// a popped item stays claimed until it is acked, requeued or dead-lettered,
// and stale claims are returned to the queue by ReclaimStale.
package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const (
	Events      = "attendance_events"
	NotifyRetry = "notification_retry"
)

var (
	ErrPushFailed  = errors.New("queue push failed")
	ErrClaimFailed = errors.New("queue claim failed")
	ErrAckFailed   = errors.New("queue ack failed")
	ErrDLQFailed   = errors.New("dead letter operation failed")
	ErrCountFailed = errors.New("queue count failed")
)

type Item struct {
	ID          int64      `db:"id"`
	Queue       string     `db:"queue"`
	Payload     []byte     `db:"payload"`
	RetryCount  int        `db:"retry_count"`
	LastAttempt *time.Time `db:"last_attempt"`
	LastError   *string    `db:"last_error"`
	CreatedAt   time.Time  `db:"created_at"`
}

type DeadLetterItem struct {
	ID         int64     `db:"id"`
	Queue      string    `db:"queue"`
	Payload    []byte    `db:"payload"`
	RetryCount int       `db:"retry_count"`
	LastError  string    `db:"last_error"`
	FailedAt   time.Time `db:"failed_at"`
}

type Config struct {
	Pool *pgxpool.Pool
	Name string
	// How often PopBlocking re-checks for work. Zero means 250ms.
	PollInterval time.Duration
}

type Queue struct {
	pool         *pgxpool.Pool
	name         string
	pollInterval time.Duration
}

func New(cfg Config) *Queue {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	return &Queue{
		pool:         cfg.Pool,
		name:         cfg.Name,
		pollInterval: interval,
	}
}

func (q *Queue) Name() string {
	return q.name
}

// Push appends a payload and returns the assigned position. The item is
// durable once Push returns.
func (q *Queue) Push(ctx context.Context, payload []byte) (int64, error) {
	const fn = "Queue:Push"
	var id int64
	err := q.pool.QueryRow(ctx, `
			INSERT INTO queue_items (queue, payload)
			VALUES ($1, $2)
			RETURNING id
		`, q.name, payload).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrPushFailed, err)
	}
	return id, nil
}

// PushRetry appends a payload that has already failed before, preserving its
// retry metadata.
func (q *Queue) PushRetry(ctx context.Context, payload []byte, retryCount int, lastErr string) (int64, error) {
	const fn = "Queue:PushRetry"
	var id int64
	err := q.pool.QueryRow(ctx, `
			INSERT INTO queue_items (queue, payload, retry_count, last_attempt, last_error)
			VALUES ($1, $2, $3, now(), $4)
			RETURNING id
		`, q.name, payload, retryCount, lastErr).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrPushFailed, err)
	}
	return id, nil
}

// claimOne atomically claims the oldest ready item, or returns nil when the
// queue is empty.
func (q *Queue) claimOne(ctx context.Context) (*Item, error) {
	const fn = "Queue:claimOne"
	tx, err := q.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrClaimFailed, err)
	}
	defer tx.Rollback(ctx)

	var item Item
	err = pgxscan.Get(ctx, tx, &item, `
			SELECT id, queue, payload, retry_count, last_attempt, last_error, created_at
			FROM queue_items
			WHERE queue = $1 AND status = 'ready'
			ORDER BY id ASC
			FOR UPDATE SKIP LOCKED
			LIMIT 1
		`, q.name)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrClaimFailed, err)
	}

	_, err = tx.Exec(ctx, `
			UPDATE queue_items
			SET status = 'processing', claimed_at = now(), last_attempt = now()
			WHERE id = $1
		`, item.ID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrClaimFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrClaimFailed, err)
	}
	return &item, nil
}

// PopBlocking waits up to timeout for an item, polling the table. It returns
// (nil, nil) when the timeout elapses with nothing to do. Only the calling
// worker is suspended.
func (q *Queue) PopBlocking(ctx context.Context, timeout time.Duration) (*Item, error) {
	deadline := time.Now().Add(timeout)
	for {
		item, err := q.claimOne(ctx)
		if err != nil {
			return nil, err
		}
		if item != nil {
			return item, nil
		}
		if time.Now().After(deadline) {
			return nil, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(q.pollInterval):
		}
	}
}

// Ack removes a processed item.
func (q *Queue) Ack(ctx context.Context, id int64) error {
	const fn = "Queue:Ack"
	_, err := q.pool.Exec(ctx, `DELETE FROM queue_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrAckFailed, err)
	}
	return nil
}

// Requeue puts a claimed item back in ready state with its failure recorded.
func (q *Queue) Requeue(ctx context.Context, id int64, lastErr string) error {
	const fn = "Queue:Requeue"
	_, err := q.pool.Exec(ctx, `
			UPDATE queue_items
			SET status = 'ready',
				claimed_at = NULL,
				retry_count = retry_count + 1,
				last_attempt = now(),
				last_error = $2
			WHERE id = $1
		`, id, lastErr)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrAckFailed, err)
	}
	return nil
}

// PushToDLQ moves an exhausted item to the dead letter table in one
// transaction, retaining the original payload and the final error.
func (q *Queue) PushToDLQ(ctx context.Context, item *Item, cause error, retryCount int) error {
	const fn = "Queue:PushToDLQ"
	tx, err := q.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDLQFailed, err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
			INSERT INTO dead_letters (queue, payload, retry_count, last_error)
			VALUES ($1, $2, $3, $4)
		`, q.name, item.Payload, retryCount, cause.Error())
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDLQFailed, err)
	}
	_, err = tx.Exec(ctx, `DELETE FROM queue_items WHERE id = $1`, item.ID)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDLQFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDLQFailed, err)
	}
	return nil
}

// PeekDLQ returns up to n dead letters, oldest first, without removing them.
func (q *Queue) PeekDLQ(ctx context.Context, n int) ([]DeadLetterItem, error) {
	const fn = "Queue:PeekDLQ"
	var items []DeadLetterItem
	err := pgxscan.Select(ctx, q.pool, &items, `
			SELECT id, queue, payload, retry_count, last_error, failed_at
			FROM dead_letters
			WHERE queue = $1
			ORDER BY id ASC
			LIMIT $2
		`, q.name, n)
	if err != nil {
		if err == pgx.ErrNoRows {
			return []DeadLetterItem{}, nil
		}
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrDLQFailed, err)
	}
	return items, nil
}

// ReplayFromDLQ moves one dead letter back onto its queue. Returns false when
// the id does not exist (or belongs to another queue).
func (q *Queue) ReplayFromDLQ(ctx context.Context, id int64) (bool, error) {
	const fn = "Queue:ReplayFromDLQ"
	tx, err := q.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("%s:%w:%w", fn, ErrDLQFailed, err)
	}
	defer tx.Rollback(ctx)

	var dead DeadLetterItem
	err = pgxscan.Get(ctx, tx, &dead, `
			SELECT id, queue, payload, retry_count, last_error, failed_at
			FROM dead_letters
			WHERE id = $1 AND queue = $2
			FOR UPDATE
		`, id, q.name)
	if err != nil {
		if pgxscan.NotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("%s:%w:%w", fn, ErrDLQFailed, err)
	}

	_, err = tx.Exec(ctx, `
			INSERT INTO queue_items (queue, payload, retry_count, last_error)
			VALUES ($1, $2, 0, $3)
		`, q.name, dead.Payload, dead.LastError)
	if err != nil {
		return false, fmt.Errorf("%s:%w:%w", fn, ErrDLQFailed, err)
	}
	_, err = tx.Exec(ctx, `DELETE FROM dead_letters WHERE id = $1`, dead.ID)
	if err != nil {
		return false, fmt.Errorf("%s:%w:%w", fn, ErrDLQFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("%s:%w:%w", fn, ErrDLQFailed, err)
	}
	return true, nil
}

// ReclaimStale returns items that have been claimed for longer than the
// visibility window back to ready state, so a crashed worker's items are
// eventually redelivered.
func (q *Queue) ReclaimStale(ctx context.Context, visibility time.Duration) (int64, error) {
	const fn = "Queue:ReclaimStale"
	tag, err := q.pool.Exec(ctx, `
			UPDATE queue_items
			SET status = 'ready', claimed_at = NULL
			WHERE queue = $1
			AND status = 'processing'
			AND claimed_at < now() - $2::interval
		`, q.name, fmt.Sprintf("%d seconds", int(visibility.Seconds())))
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrClaimFailed, err)
	}
	return tag.RowsAffected(), nil
}

func (q *Queue) Len(ctx context.Context) (int, error) {
	const fn = "Queue:Len"
	var n int
	err := q.pool.QueryRow(ctx, `
			SELECT COUNT(*) FROM queue_items WHERE queue = $1
		`, q.name).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrCountFailed, err)
	}
	return n, nil
}

func (q *Queue) DLQLen(ctx context.Context) (int, error) {
	const fn = "Queue:DLQLen"
	var n int
	err := q.pool.QueryRow(ctx, `
			SELECT COUNT(*) FROM dead_letters WHERE queue = $1
		`, q.name).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrCountFailed, err)
	}
	return n, nil
}

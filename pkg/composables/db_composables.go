package composables

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/claimdesk/claimdesk/pkg/configuration"
	"github.com/claimdesk/claimdesk/pkg/constants"
	"github.com/claimdesk/claimdesk/pkg/repo"
)

var (
	ErrNoTx   = errors.New("no transaction found in context")
	ErrNoPool = errors.New("no database pool found in context")
)

func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, constants.TxKey, tx)
}

// UseTx returns the active transaction, or a pool-backed executor whose
// connection acquisition is bounded by the configured acquire timeout.
func UseTx(ctx context.Context) (repo.Tx, error) {
	tx := ctx.Value(constants.TxKey)
	if tx == nil {
		pool, err := UsePool(ctx)
		if err != nil {
			return nil, err
		}
		return boundPool{pool: pool, timeout: configuration.Use().Database.AcquireTimeout}, nil
	}
	return tx.(repo.Tx), nil
}

// withAcquireDeadline bounds connection acquisition so a saturated pool
// fails the request instead of parking it indefinitely. An existing earlier
// deadline on the context still wins.
func withAcquireDeadline(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// boundPool runs statements directly against the pool. Acquisition waits at
// most the configured timeout; the statement itself runs on the caller's
// context.
type boundPool struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func (p boundPool) acquire(ctx context.Context) (*pgxpool.Conn, error) {
	acquireCtx, cancel := withAcquireDeadline(ctx, p.timeout)
	defer cancel()
	return p.pool.Acquire(acquireCtx)
}

func (p boundPool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	conn, err := p.acquire(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		conn.Release()
		return nil, err
	}
	return &releasingRows{Rows: rows, conn: conn}, nil
}

func (p boundPool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	conn, err := p.acquire(ctx)
	if err != nil {
		return errRow{err: err}
	}
	return releasingRow{row: conn.QueryRow(ctx, sql, args...), conn: conn}
}

func (p boundPool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	conn, err := p.acquire(ctx)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	defer conn.Release()
	return conn.Exec(ctx, sql, args...)
}

// releasingRows returns the connection to the pool when the row set is
// closed.
type releasingRows struct {
	pgx.Rows
	conn *pgxpool.Conn
}

func (r *releasingRows) Close() {
	r.Rows.Close()
	if r.conn != nil {
		r.conn.Release()
		r.conn = nil
	}
}

type releasingRow struct {
	row  pgx.Row
	conn *pgxpool.Conn
}

func (r releasingRow) Scan(dest ...any) error {
	defer r.conn.Release()
	return r.row.Scan(dest...)
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

func WithPool(ctx context.Context, pool *pgxpool.Pool) context.Context {
	return context.WithValue(ctx, constants.PoolKey, pool)
}

func UsePool(ctx context.Context) (*pgxpool.Pool, error) {
	pool := ctx.Value(constants.PoolKey)
	if pool == nil {
		return nil, ErrNoPool
	}
	return pool.(*pgxpool.Pool), nil
}

func BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx := ctx.Value(constants.TxKey)
	if tx != nil {
		return tx.(pgx.Tx), nil
	}
	pool, err := UsePool(ctx)
	if err != nil {
		return nil, err
	}
	return beginBound(ctx, pool)
}

// beginBound starts a transaction with acquisition bounded by the configured
// timeout. The deadline covers Acquire and BEGIN only; the transaction
// itself runs on the caller's context.
func beginBound(ctx context.Context, pool *pgxpool.Pool) (pgx.Tx, error) {
	beginCtx, cancel := withAcquireDeadline(ctx, configuration.Use().Database.AcquireTimeout)
	defer cancel()
	return pool.Begin(beginCtx)
}

// InTx runs the given function in a transaction. ALWAYS creates a new transaction.
func InTx(ctx context.Context, fn func(context.Context) error) error {
	pool, err := UsePool(ctx)
	if err != nil {
		return err
	}

	tx, err := beginBound(ctx, pool)
	if err != nil {
		return err
	}

	txCtx := WithTx(ctx, tx)
	if err := fn(txCtx); err != nil {
		if rErr := tx.Rollback(ctx); rErr != nil {
			return errors.Join(err, rErr)
		}
		return err
	}
	return tx.Commit(ctx)
}

// InTxResult is InTx for functions that also produce a value.
func InTxResult[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	var out T
	err := InTx(ctx, func(txCtx context.Context) error {
		var innerErr error
		out, innerErr = fn(txCtx)
		return innerErr
	})
	return out, err
}

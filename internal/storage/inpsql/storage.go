// Package inpsql provides a PostgreSQL storage built on sqlx over the pgx driver.
package inpsql

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"sync"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/danilovkiri/dk_go_shortlinks/internal/config"
	"github.com/danilovkiri/dk_go_shortlinks/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_shortlinks/internal/storage/errors"
	"github.com/danilovkiri/dk_go_shortlinks/internal/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ storage.LinkStorage = (*Storage)(nil)
)

const (
	insertQuery = `INSERT INTO urls (code, url, owner_id) VALUES ($1, $2, $3)
		RETURNING id, code, url, owner_id, created_at`
	findQuery        = "SELECT id, code, url, owner_id, created_at FROM urls WHERE code = $1"
	listQuery        = "SELECT id, code, url, owner_id, created_at FROM urls ORDER BY id DESC"
	listByOwnerQuery = "SELECT id, code, url, owner_id, created_at FROM urls WHERE owner_id = $1 ORDER BY id DESC"
	deleteQuery      = "DELETE FROM urls WHERE code = $1"
)

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	Cfg *config.Config
	DB  *sqlx.DB
}

// InitStorage connects to PostgreSQL, applies migrations and starts a listener closing
// the connection pool once ctx is cancelled.
func InitStorage(ctx context.Context, wg *sync.WaitGroup, cfg *config.Config) (*Storage, error) {
	db, err := sqlx.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := migrateUp(db.DB); err != nil {
		_ = db.Close()
		return nil, err
	}
	st := &Storage{
		Cfg: cfg,
		DB:  db,
	}
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := st.CloseDB(); err != nil {
			log.Println("Closing PSQL DB:", err)
			return
		}
		log.Println("PSQL DB connection closed successfully")
	}()
	return st, nil
}

// Insert stores a new entry; the unique constraint on code rejects duplicates.
func (s *Storage) Insert(ctx context.Context, code string, URL string, ownerID *string) (modelstorage.LinkEntry, error) {
	var entry modelstorage.LinkEntry
	if err := s.DB.GetContext(ctx, &entry, insertQuery, code, URL, ownerID); err != nil {
		log.Println("Inserting link:", err)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return modelstorage.LinkEntry{}, &storageErrors.AlreadyExistsError{Code: code, Err: err}
		}
		return modelstorage.LinkEntry{}, wrapError(ctx, "insert", err)
	}
	return entry, nil
}

// FindByCode returns the entry stored under code.
func (s *Storage) FindByCode(ctx context.Context, code string) (modelstorage.LinkEntry, error) {
	var entry modelstorage.LinkEntry
	if err := s.DB.GetContext(ctx, &entry, findQuery, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return modelstorage.LinkEntry{}, &storageErrors.NotFoundError{Code: code, Err: err}
		}
		log.Println("Retrieving link:", err)
		return modelstorage.LinkEntry{}, wrapError(ctx, "query", err)
	}
	return entry, nil
}

// ListAll returns every entry, newest first.
func (s *Storage) ListAll(ctx context.Context) ([]modelstorage.LinkEntry, error) {
	entries := make([]modelstorage.LinkEntry, 0)
	if err := s.DB.SelectContext(ctx, &entries, listQuery); err != nil {
		log.Println("Listing links:", err)
		return nil, wrapError(ctx, "query", err)
	}
	return entries, nil
}

// ListByOwner returns the entries tagged with ownerID, newest first.
func (s *Storage) ListByOwner(ctx context.Context, ownerID string) ([]modelstorage.LinkEntry, error) {
	entries := make([]modelstorage.LinkEntry, 0)
	if err := s.DB.SelectContext(ctx, &entries, listByOwnerQuery, ownerID); err != nil {
		log.Println("Listing links by owner:", err)
		return nil, wrapError(ctx, "query", err)
	}
	return entries, nil
}

// DeleteByCode removes the entry stored under code and reports whether a row was removed.
func (s *Storage) DeleteByCode(ctx context.Context, code string) (bool, error) {
	res, err := s.DB.ExecContext(ctx, deleteQuery, code)
	if err != nil {
		log.Println("Deleting link:", err)
		return false, wrapError(ctx, "delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, &storageErrors.ExecutionError{Op: "delete", Err: err}
	}
	return n > 0, nil
}

// PingDB checks the connection to PostgreSQL.
func (s *Storage) PingDB(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// CloseDB closes the connection pool.
func (s *Storage) CloseDB() error {
	return s.DB.Close()
}

func wrapError(ctx context.Context, op string, err error) error {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
		return &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	return &storageErrors.ExecutionError{Op: op, Err: err}
}

// Package insqlite provides a file-backed SQLite storage built on GORM.
package insqlite

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/danilovkiri/dk_go_shortlinks/internal/config"
	"github.com/danilovkiri/dk_go_shortlinks/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_shortlinks/internal/storage/errors"
	"github.com/danilovkiri/dk_go_shortlinks/internal/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ storage.LinkStorage = (*Storage)(nil)
)

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	Cfg *config.Config
	DB  *gorm.DB
}

// InitStorage opens (or creates) the SQLite file, migrates the schema and starts a listener
// closing the database once ctx is cancelled.
func InitStorage(ctx context.Context, wg *sync.WaitGroup, cfg *config.Config) (*Storage, error) {
	if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := gorm.Open(sqlite.Open(dsn(cfg.SQLitePath)), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer; one connection keeps writes serialized in-process
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&modelstorage.LinkEntry{}); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	log.Println("SQLite DB opened:", cfg.SQLitePath)
	st := &Storage{
		Cfg: cfg,
		DB:  db,
	}
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := st.CloseDB(); err != nil {
			log.Println("Closing SQLite DB:", err)
			return
		}
		log.Println("SQLite DB closed successfully")
	}()
	return st, nil
}

// Insert stores a new entry; the unique index on code rejects duplicates.
func (s *Storage) Insert(ctx context.Context, code string, URL string, ownerID *string) (modelstorage.LinkEntry, error) {
	entry := modelstorage.LinkEntry{
		Code:    code,
		URL:     URL,
		OwnerID: ownerID,
	}
	if err := s.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Println("Inserting link:", err)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return modelstorage.LinkEntry{}, &storageErrors.AlreadyExistsError{Code: code, Err: err}
		}
		return modelstorage.LinkEntry{}, wrapError(ctx, "insert", err)
	}
	return entry, nil
}

// FindByCode returns the entry stored under code.
func (s *Storage) FindByCode(ctx context.Context, code string) (modelstorage.LinkEntry, error) {
	var entry modelstorage.LinkEntry
	err := s.DB.WithContext(ctx).Where("code = ?", code).Take(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
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
	if err := s.DB.WithContext(ctx).Order("id DESC").Find(&entries).Error; err != nil {
		log.Println("Listing links:", err)
		return nil, wrapError(ctx, "query", err)
	}
	return entries, nil
}

// ListByOwner returns the entries tagged with ownerID, newest first.
func (s *Storage) ListByOwner(ctx context.Context, ownerID string) ([]modelstorage.LinkEntry, error) {
	entries := make([]modelstorage.LinkEntry, 0)
	err := s.DB.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id DESC").Find(&entries).Error
	if err != nil {
		log.Println("Listing links by owner:", err)
		return nil, wrapError(ctx, "query", err)
	}
	return entries, nil
}

// DeleteByCode removes the entry stored under code and reports whether a row was removed.
func (s *Storage) DeleteByCode(ctx context.Context, code string) (bool, error) {
	res := s.DB.WithContext(ctx).Where("code = ?", code).Delete(&modelstorage.LinkEntry{})
	if res.Error != nil {
		log.Println("Deleting link:", res.Error)
		return false, wrapError(ctx, "delete", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// PingDB checks that the database file is still reachable.
func (s *Storage) PingDB(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// CloseDB closes the underlying connection pool.
func (s *Storage) CloseDB() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dsn(path string) string {
	return fmt.Sprintf("file:%s?_busy_timeout=5000", path)
}

func wrapError(ctx context.Context, op string, err error) error {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
		return &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	return &storageErrors.ExecutionError{Op: op, Err: err}
}

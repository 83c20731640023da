package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// registro is the single key/value row shape persisted by the SQLite backend.
type registro struct {
	Chave     string `gorm:"primaryKey"`
	Valor     []byte
	UpdatedAt time.Time
}

func (registro) TableName() string { return "registros" }

// SQLite is a Store backed by a single key/value table in a SQLite file.
type SQLite struct {
	db *gorm.DB
}

// NewSQLite opens (or creates) the SQLite database and runs migrations.
func NewSQLite(dsn string) (*SQLite, error) {
	if dsn == "" {
		dsn = "planner.db"
	}

	if err := ensureDirForSQLite(dsn); err != nil {
		return nil, err
	}

	dbLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: dbLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.AutoMigrate(&registro{}); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(ctx context.Context, chave string, out interface{}) (bool, error) {
	var r registro
	err := s.db.WithContext(ctx).First(&r, "chave = ?", chave).Error
	switch {
	case err == nil:
		if err := json.Unmarshal(r.Valor, out); err != nil {
			return false, fmt.Errorf("decode %q: %w", chave, err)
		}
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("read %q: %w", chave, err)
	}
}

func (s *SQLite) Set(ctx context.Context, chave string, valor interface{}) error {
	raw, err := json.Marshal(valor)
	if err != nil {
		return fmt.Errorf("encode %q: %w", chave, err)
	}
	row := registro{Chave: chave, Valor: raw, UpdatedAt: time.Now()}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chave"}},
		DoUpdates: clause.AssignmentColumns([]string{"valor", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("write %q: %w", chave, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ensureDirForSQLite creates the parent dir for the SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}

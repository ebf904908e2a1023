package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/tally/internal/models"
)

// stateKey is the key of the tracker snapshot in the blob table.
const stateKey = "app_state"

// Store is a sqlite-backed key/value blob store holding the tracker snapshot.
type Store struct {
	db     *gorm.DB
	logger *log.Logger
}

// Open sets up the database connection at path and runs migrations.
func Open(path string, lg *log.Logger) (*Store, error) {
	if lg == nil {
		lg = log.New(io.Discard)
	}

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.StateBlob{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db, logger: lg}, nil
}

// Load reads the saved snapshot. A missing row or a blob that does not parse
// is reported as absent, never as an error.
func (s *Store) Load() (*models.Snapshot, bool) {
	var blob models.StateBlob
	err := s.db.Where(&models.StateBlob{Key: stateKey}).First(&blob).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("failed to read saved state", "err", err)
		}
		return nil, false
	}

	var snap models.Snapshot
	if err := json.Unmarshal([]byte(blob.Data), &snap); err != nil {
		s.logger.Warn("saved state is unreadable, starting empty", "err", err)
		return nil, false
	}
	return &snap, true
}

// Save replaces the stored snapshot.
func (s *Store) Save(snap models.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	blob := models.StateBlob{
		Key:       stateKey,
		Data:      string(data),
		UpdatedAt: time.Now(),
	}
	if err := s.db.Save(&blob).Error; err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

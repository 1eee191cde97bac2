// Package session is the single read/write boundary for locally cached
// credentials: bearer tokens and the logged-in profile live in a small
// sqlite database, read at the start of every privileged request and
// cleared on logout. Nothing else in the front end touches tokens directly.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Session roles.
const (
	RoleAdmin    = "admin"
	RoleReviewer = "reviewer"
)

// ErrNotFound is returned when no session exists for an ID.
var ErrNotFound = errors.New("session not found")

// Session is one cached login: the backend bearer token plus the profile
// blob returned at login time.
type Session struct {
	ID        string    `gorm:"primaryKey;column:id"`
	Role      string    `gorm:"column:role;index"`
	Token     string    `gorm:"column:token"`
	Profile   string    `gorm:"column:profile"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Session) TableName() string { return "sessions" }

// DecodeProfile unmarshals the cached profile into v.
func (s *Session) DecodeProfile(v interface{}) error {
	if s.Profile == "" {
		return fmt.Errorf("session has no cached profile")
	}
	return json.Unmarshal([]byte(s.Profile), v)
}

// Receipt is a local convenience record of a submission made through this
// front end: the tracking token the backend issued plus the title, so the
// status page can be found again later.
type Receipt struct {
	ID            uint      `gorm:"primaryKey;autoIncrement;column:id"`
	Title         string    `gorm:"column:title"`
	TrackingToken string    `gorm:"column:tracking_token"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (Receipt) TableName() string { return "receipts" }

// Manager owns the session database.
type Manager struct {
	db *gorm.DB
}

// Open opens or creates the session database at path.
func Open(path string) (*Manager, error) {
	dsn := path + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite3",
		DSN:        dsn,
	}, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	if err := db.AutoMigrate(&Session{}, &Receipt{}); err != nil {
		return nil, fmt.Errorf("migrate session db: %w", err)
	}

	return &Manager{db: db}, nil
}

// Close closes the underlying database.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Create stores a new session for a login and returns it. profile is the
// backend's profile record, kept verbatim as JSON.
func (m *Manager) Create(role, token string, profile interface{}) (*Session, error) {
	encoded, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}

	sess := &Session{
		ID:        uuid.NewString(),
		Role:      role,
		Token:     token,
		Profile:   string(encoded),
		CreatedAt: time.Now(),
	}
	if err := m.db.Create(sess).Error; err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}

// Get loads a session by ID.
func (m *Manager) Get(id string) (*Session, error) {
	var sess Session
	if err := m.db.First(&sess, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sess, nil
}

// Delete removes a session (logout).
func (m *Manager) Delete(id string) error {
	return m.db.Delete(&Session{}, "id = ?", id).Error
}

// SaveReceipt records a submission tracking token.
func (m *Manager) SaveReceipt(title, trackingToken string) error {
	if trackingToken == "" {
		return nil
	}
	receipt := &Receipt{Title: title, TrackingToken: trackingToken, CreatedAt: time.Now()}
	return m.db.Create(receipt).Error
}

// Receipts lists locally recorded submissions, newest first.
func (m *Manager) Receipts() ([]Receipt, error) {
	var receipts []Receipt
	if err := m.db.Order("created_at DESC").Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}

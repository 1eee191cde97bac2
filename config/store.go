package config

import (
	"log"
	"os"
	"path/filepath"

	"abstract-review-web/session"
)

// Sessions is the durable local session store shared by the middleware and
// the auth controllers. It is the only place bearer tokens live on this side.
var Sessions *session.Manager

// InitSessions opens (or creates) the local session database.
func InitSessions() {
	path := os.Getenv("SESSION_DB_PATH")
	if path == "" {
		path = filepath.Join("data", "sessions.db")
	}

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		log.Printf("Warning: Failed to create session data directory: %v", err)
	}

	mgr, err := session.Open(path)
	if err != nil {
		log.Fatal("Failed to open session store:", err)
	}

	Sessions = mgr
	log.Println("Session store opened successfully")
}

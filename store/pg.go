package store

import (
	"errors"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrSelfRequest    = errors.New("cannot send a friend request to yourself")
	ErrAlreadyFriends = errors.New("already friends with this user")
	ErrRequestPending = errors.New("friend request already pending")
	ErrUsernameTaken  = errors.New("this username is already taken")
)

type Store struct {
	db *gorm.DB
}

func Open(connStr string) (*Store, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Silent,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// New wraps an existing gorm handle. Used by tests to run against sqlite.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

package testutil

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/trivia-backend/internal/data/db"
	"github.com/yungbote/trivia-backend/internal/platform/logger"
)

var (
	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB returns a freshly migrated in-memory SQLite database private to the test.
// A single connection keeps the shared-cache database alive and avoids
// table locking between pooled connections.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	url := "sqlite://file:" + uuid.NewString() + "?mode=memory&cache=shared"
	svc, err := db.Open(Logger(tb), db.Options{URL: url, MaxOpenConns: 1, Silent: true})
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}
	tb.Cleanup(func() { _ = svc.Close() })

	if err := svc.AutoMigrate(); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}
	return svc.DB()
}

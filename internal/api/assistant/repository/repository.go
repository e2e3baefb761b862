package assistantRepository

import (
	"AssistantGolang/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Users:     &userRepository{q: sqlExecutor, log: r.log},
		History:   &historyRepository{q: sqlExecutor, log: r.log},
		Shortcuts: &shortcutRepository{q: sqlExecutor, log: r.log},
		Commit:    commitFunc,
		Rollback:  rollbackFunc,
	}, nil
}

type Client struct {
	Users interface {
		GetUserByID(ctx context.Context, id string) (entity.User, error)
		UpdateLastActive(ctx context.Context, id string) error
		UpdateAssistant(ctx context.Context, id, assistantName, assistantImage string, preferences *entity.Preferences) error
	}

	History interface {
		// AppendHistory inserts an entry and trims the user's history to the
		// most recent keep entries in the same statement sequence. Run it on a
		// transactional client.
		AppendHistory(ctx context.Context, entry entity.HistoryEntry, keep int) error
		GetHistoryByUserID(ctx context.Context, userID string, limit, offset int) ([]entity.HistoryEntry, int, error)
		ClearHistory(ctx context.Context, userID string) error
		GetUsageStats(ctx context.Context, userID string) (entity.UsageStats, error)
	}

	Shortcuts interface {
		CreateShortcut(ctx context.Context, shortcut entity.Shortcut) error
		GetShortcutsByUserID(ctx context.Context, userID string) ([]entity.Shortcut, error)
	}

	Commit   func() error
	Rollback func() error
}

type userRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type historyRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type shortcutRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

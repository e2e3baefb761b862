package assistantRepository

import (
	"AssistantGolang/internal/entity"
	contextPkg "AssistantGolang/pkg/context"
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ShortcutDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	Keyword   sql.NullString `db:"keyword"`
	Action    sql.NullString `db:"action"`
	URL       sql.NullString `db:"url"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *shortcutRepository) CreateShortcut(ctx context.Context, shortcut entity.Shortcut) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":         shortcut.ID,
		"user_id":    shortcut.UserID,
		"keyword":    shortcut.Keyword,
		"action":     shortcut.Action,
		"url":        shortcut.URL,
		"created_at": shortcut.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateShortcut, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateShortcut named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating shortcut")
		return err
	}

	return nil
}

func (r *shortcutRepository) GetShortcutsByUserID(ctx context.Context, userID string) ([]entity.Shortcut, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var shortcutsDB []ShortcutDB

	query, args, err := sqlx.Named(queryGetShortcutsByUserID, map[string]interface{}{
		"user_id": userID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetShortcutsByUserID named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &shortcutsDB, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetShortcutsByUserID execution err")
		return nil, err
	}

	var shortcuts []entity.Shortcut
	for _, shortcutDB := range shortcutsDB {
		shortcuts = append(shortcuts, entity.Shortcut{
			ID:        shortcutDB.ID.String,
			UserID:    shortcutDB.UserID.String,
			Keyword:   shortcutDB.Keyword.String,
			Action:    shortcutDB.Action.String,
			URL:       shortcutDB.URL.String,
			CreatedAt: shortcutDB.CreatedAt,
		})
	}

	return shortcuts, nil
}

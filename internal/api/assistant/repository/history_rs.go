package assistantRepository

import (
	contextPkg "AssistantGolang/pkg/context"
	"AssistantGolang/internal/entity"
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type HistoryEntryDB struct {
	ID          sql.NullString `db:"id"`
	UserID      sql.NullString `db:"user_id"`
	Command     sql.NullString `db:"command"`
	Response    sql.NullString `db:"response"`
	Type        sql.NullString `db:"type"`
	ActionTaken sql.NullBool   `db:"action_taken"`
	SearchQuery sql.NullString `db:"search_query"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r *historyRepository) AppendHistory(ctx context.Context, entry entity.HistoryEntry, keep int) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":           entry.ID,
		"user_id":      entry.UserID,
		"command":      entry.Command,
		"response":     entry.Response,
		"type":         entry.Type,
		"action_taken": entry.ActionTaken,
		"search_query": entry.SearchQuery,
		"created_at":   entry.CreatedAt,
	}

	query, args, err := sqlx.Named(queryAppendHistory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AppendHistory named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when appending history entry")
		return err
	}

	if keep <= 0 {
		return nil
	}

	trimArgsKV := map[string]interface{}{
		"user_id": entry.UserID,
		"keep":    keep,
	}

	trimQuery, trimArgs, err := sqlx.Named(queryTrimHistory, trimArgsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("TrimHistory named query preparation err")
		return err
	}
	trimQuery = r.q.Rebind(trimQuery)

	if _, err := r.q.ExecContext(ctx, trimQuery, trimArgs...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when trimming history")
		return err
	}

	return nil
}

func (r *historyRepository) GetHistoryByUserID(ctx context.Context, userID string, limit, offset int) ([]entity.HistoryEntry, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var entriesDB []HistoryEntryDB
	var total int

	countQuery, countArgs, err := sqlx.Named(queryCountHistoryByUserID, map[string]interface{}{
		"user_id": userID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountHistoryByUserID named query preparation err")
		return nil, 0, err
	}
	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountHistoryByUserID execution err")
		return nil, 0, err
	}

	query, args, err := sqlx.Named(queryGetHistoryByUserID, map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
		"offset":  offset,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetHistoryByUserID named query preparation err")
		return nil, 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &entriesDB, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetHistoryByUserID execution err")
		return nil, 0, err
	}

	var entries []entity.HistoryEntry
	for _, entryDB := range entriesDB {
		entries = append(entries, makeHistoryEntry(entryDB))
	}

	return entries, total, nil
}

func (r *historyRepository) ClearHistory(ctx context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryClearHistory, map[string]interface{}{
		"user_id": userID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ClearHistory named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ClearHistory execution err")
		return err
	}

	return nil
}

func (r *historyRepository) GetUsageStats(ctx context.Context, userID string) (entity.UsageStats, error) {
	requestID := contextPkg.GetRequestID(ctx)
	stats := entity.UsageStats{
		MostUsedTypes: map[string]int{},
	}

	countQuery, countArgs, err := sqlx.Named(queryCountHistoryByUserID, map[string]interface{}{
		"user_id": userID,
	})
	if err != nil {
		return stats, err
	}
	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&stats.TotalCommands); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUsageStats total count err")
		return stats, err
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	todayQuery, todayArgs, err := sqlx.Named(queryCountHistorySince, map[string]interface{}{
		"user_id": userID,
		"since":   startOfDay,
	})
	if err != nil {
		return stats, err
	}
	todayQuery = r.q.Rebind(todayQuery)

	if err := r.q.QueryRowxContext(ctx, todayQuery, todayArgs...).Scan(&stats.CommandsToday); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUsageStats today count err")
		return stats, err
	}

	typeQuery, typeArgs, err := sqlx.Named(queryCountHistoryByType, map[string]interface{}{
		"user_id": userID,
		"limit":   5,
	})
	if err != nil {
		return stats, err
	}
	typeQuery = r.q.Rebind(typeQuery)

	var typeCounts []struct {
		Type  string `db:"type"`
		Total int    `db:"total"`
	}
	if err := r.q.SelectContext(ctx, &typeCounts, typeQuery, typeArgs...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUsageStats type count err")
		return stats, err
	}

	for _, tc := range typeCounts {
		stats.MostUsedTypes[tc.Type] = tc.Total
	}

	return stats, nil
}

func makeHistoryEntry(entryDB HistoryEntryDB) entity.HistoryEntry {
	return entity.HistoryEntry{
		ID:          entryDB.ID.String,
		UserID:      entryDB.UserID.String,
		Command:     entryDB.Command.String,
		Response:    entryDB.Response.String,
		Type:        entryDB.Type.String,
		ActionTaken: entryDB.ActionTaken.Bool,
		SearchQuery: entryDB.SearchQuery.String,
		CreatedAt:   entryDB.CreatedAt,
	}
}

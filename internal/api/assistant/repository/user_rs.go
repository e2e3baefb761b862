package assistantRepository

import (
	"AssistantGolang/internal/api/assistant"
	"AssistantGolang/internal/entity"
	contextPkg "AssistantGolang/pkg/context"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type UserDB struct {
	ID             sql.NullString `db:"id"`
	Name           sql.NullString `db:"name"`
	Email          sql.NullString `db:"email"`
	Password       sql.NullString `db:"password"`
	AssistantName  sql.NullString `db:"assistant_name"`
	AssistantImage sql.NullString `db:"assistant_image"`
	Preferences    sql.NullString `db:"preferences"`
	LastActive     time.Time      `db:"last_active"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var userDB UserDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetUserByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByID named query preparation err")
		return entity.User{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&userDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    id,
			}).Warn("GetUserByID no rows found")
			return entity.User{}, assistant.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByID execution err")
		return entity.User{}, err
	}

	return makeUser(userDB), nil
}

func (r *userRepository) UpdateLastActive(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":          id,
		"last_active": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateLastActive, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateLastActive named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateLastActive execution err")
		return err
	}

	return nil
}

func (r *userRepository) UpdateAssistant(ctx context.Context, id, assistantName, assistantImage string, preferences *entity.Preferences) error {
	requestID := contextPkg.GetRequestID(ctx)

	current, err := r.GetUserByID(ctx, id)
	if err != nil {
		return err
	}

	if assistantName == "" {
		assistantName = current.AssistantName
	}
	if assistantImage == "" {
		assistantImage = current.AssistantImage
	}
	prefs := current.Preferences
	if preferences != nil {
		prefs = *preferences
	}

	preferencesJSON, err := json.Marshal(prefs)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to marshal preferences")
		return err
	}

	argsKV := map[string]interface{}{
		"id":              id,
		"assistant_name":  assistantName,
		"assistant_image": assistantImage,
		"preferences":     string(preferencesJSON),
		"updated_at":      time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateAssistant, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateAssistant named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateAssistant execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return assistant.ErrUserNotFound
	}

	return nil
}

func makeUser(userDB UserDB) entity.User {
	preferences := entity.DefaultPreferences()
	if userDB.Preferences.Valid && userDB.Preferences.String != "" {
		json.Unmarshal([]byte(userDB.Preferences.String), &preferences)
	}

	return entity.User{
		ID:             userDB.ID.String,
		Name:           userDB.Name.String,
		Email:          userDB.Email.String,
		Password:       userDB.Password.String,
		AssistantName:  userDB.AssistantName.String,
		AssistantImage: userDB.AssistantImage.String,
		Preferences:    preferences,
		LastActive:     userDB.LastActive,
		CreatedAt:      userDB.CreatedAt,
		UpdatedAt:      userDB.UpdatedAt,
	}
}

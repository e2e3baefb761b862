package authRepository

import (
	"AssistantGolang/internal/api/auth"
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

func (r *userRepository) CreateUser(ctx context.Context, user entity.User) error {
	requestID := contextPkg.GetRequestID(ctx)

	preferencesJSON, err := json.Marshal(user.Preferences)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to marshal preferences")
		return err
	}

	argsKV := map[string]interface{}{
		"id":              user.ID,
		"name":            user.Name,
		"email":           user.Email,
		"password":        user.Password,
		"assistant_name":  user.AssistantName,
		"assistant_image": user.AssistantImage,
		"preferences":     string(preferencesJSON),
		"last_active":     user.LastActive,
		"created_at":      user.CreatedAt,
		"updated_at":      user.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateUser named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating user")
		return err
	}

	return nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var userDB UserDB

	query, args, err := sqlx.Named(queryGetUserByEmail, map[string]interface{}{
		"email": email,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByEmail named query preparation err")
		return entity.User{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&userDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, auth.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByEmail execution err")
		return entity.User{}, err
	}

	return makeUser(userDB), nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var count int

	query, args, err := sqlx.Named(queryCountUserByEmail, map[string]interface{}{
		"email": email,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("EmailExists named query preparation err")
		return false, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("EmailExists execution err")
		return false, err
	}

	return count > 0, nil
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

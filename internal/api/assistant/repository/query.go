package assistantRepository

const (
	queryGetUserByID = `
		SELECT
			id, name, email, password, assistant_name, assistant_image,
			preferences, last_active, created_at, updated_at
		FROM users
		WHERE id = :id
	`

	queryUpdateLastActive = `
		UPDATE users
		SET last_active = :last_active
		WHERE id = :id
	`

	queryUpdateAssistant = `
		UPDATE users
		SET
			assistant_name = :assistant_name,
			assistant_image = :assistant_image,
			preferences = :preferences,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryAppendHistory = `
		INSERT INTO assistant_history (
			id, user_id, command, response, type,
			action_taken, search_query, created_at
		) VALUES (
			:id, :user_id, :command, :response, :type,
			:action_taken, :search_query, :created_at
		)
	`

	queryTrimHistory = `
		DELETE FROM assistant_history
		WHERE user_id = :user_id
		AND id NOT IN (
			SELECT id FROM assistant_history
			WHERE user_id = :user_id
			ORDER BY created_at DESC, id DESC
			LIMIT :keep
		)
	`

	queryGetHistoryByUserID = `
		SELECT
			id, user_id, command, response, type,
			action_taken, search_query, created_at
		FROM assistant_history
		WHERE user_id = :user_id
		ORDER BY created_at DESC, id DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountHistoryByUserID = `
		SELECT COUNT(*)
		FROM assistant_history
		WHERE user_id = :user_id
	`

	queryClearHistory = `
		DELETE FROM assistant_history
		WHERE user_id = :user_id
	`

	queryCountHistorySince = `
		SELECT COUNT(*)
		FROM assistant_history
		WHERE user_id = :user_id
		AND created_at >= :since
	`

	queryCountHistoryByType = `
		SELECT type, COUNT(*) AS total
		FROM assistant_history
		WHERE user_id = :user_id
		GROUP BY type
		ORDER BY total DESC
		LIMIT :limit
	`

	queryCreateShortcut = `
		INSERT INTO assistant_shortcuts (
			id, user_id, keyword, action, url, created_at
		) VALUES (
			:id, :user_id, :keyword, :action, :url, :created_at
		)
	`

	queryGetShortcutsByUserID = `
		SELECT
			id, user_id, keyword, action, url, created_at
		FROM assistant_shortcuts
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`
)

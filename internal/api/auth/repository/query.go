package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id, name, email, password, assistant_name, assistant_image,
			preferences, last_active, created_at, updated_at
		) VALUES (
			:id, :name, :email, :password, :assistant_name, :assistant_image,
			:preferences, :last_active, :created_at, :updated_at
		)
	`

	queryGetUserByEmail = `
		SELECT
			id, name, email, password, assistant_name, assistant_image,
			preferences, last_active, created_at, updated_at
		FROM users
		WHERE email = :email
	`

	queryCountUserByEmail = `
		SELECT COUNT(*)
		FROM users
		WHERE email = :email
	`
)

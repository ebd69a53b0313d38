package models

import "database/sql"

// User is a row of the users table.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	NationalID   string `db:"national_id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	AuditFields

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}

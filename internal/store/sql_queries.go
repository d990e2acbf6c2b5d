package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/alternajob/user-service/models"
)

// All queries are dialect-neutral: they run unchanged on PostgreSQL and
// SQLite. Placeholders appear in ascending order so that SQLite's positional
// binding matches the $n numbering, and timestamps use CURRENT_TIMESTAMP,
// which both engines understand.
const (
	userColumns = `id, username, password_hash, role, nom, prenom, created_at, updated_at`

	getAllUsers = `SELECT ` + userColumns + `
    FROM users
    ORDER BY id;`

	getUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	existsUserByID = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1);`

	existsUserByUsername = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1);`

	existsUserByUsernameExcluding = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 AND id <> $2);`

	createUser = `INSERT INTO users (username, password_hash, role, nom, prenom)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + userColumns + `;`

	deleteUser = `DELETE FROM users WHERE id = $1;`
)

// buildUpdateQuery assembles the dynamic partial UPDATE for a [models.UserUpdate].
// Only non-nil fields become SET clauses; updated_at is refreshed
// unconditionally, so a descriptor with no fields still produces a valid
// timestamp-only UPDATE. The persisted row is returned via RETURNING.
func buildUpdateQuery(update models.UserUpdate) (string, []any, error) {
	builder := sq.Update("users").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING " + userColumns)

	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
	}
	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
	}
	if update.Role != nil {
		builder = builder.Set("role", string(*update.Role))
	}
	if update.Nom != nil {
		builder = builder.Set("nom", *update.Nom)
	}
	if update.Prenom != nil {
		builder = builder.Set("prenom", *update.Prenom)
	}

	return builder.ToSql()
}

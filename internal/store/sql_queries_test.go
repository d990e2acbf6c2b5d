// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alternajob/user-service/models"
)

func strPtr(s string) *string { return &s }

func rolePtr(r models.Role) *models.Role { return &r }

func Test_buildUpdateQuery_FullPatch(t *testing.T) {
	update := models.UserUpdate{
		ID:           7,
		Username:     strPtr("alice"),
		PasswordHash: strPtr("$2a$10$hash"),
		Role:         rolePtr(models.RoleRecruteur),
		Nom:          strPtr("enc-nom"),
		Prenom:       strPtr("enc-prenom"),
	}

	query, args, err := buildUpdateQuery(update)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update users")
	require.Contains(t, q, "updated_at = current_timestamp")
	require.Contains(t, q, "username = $1")
	require.Contains(t, q, "password_hash = $2")
	require.Contains(t, q, "role = $3")
	require.Contains(t, q, "nom = $4")
	require.Contains(t, q, "prenom = $5")
	require.Contains(t, q, "where id = $6")
	require.Contains(t, q, "returning")

	require.Equal(t, []any{"alice", "$2a$10$hash", "RECRUTEUR", "enc-nom", "enc-prenom", int64(7)}, args)
}

func Test_buildUpdateQuery_PartialPatch(t *testing.T) {
	update := models.UserUpdate{
		ID:  3,
		Nom: strPtr("enc-nom"),
	}

	query, args, err := buildUpdateQuery(update)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "nom = $1")
	require.Contains(t, q, "where id = $2")
	require.NotContains(t, q, "username =")
	require.NotContains(t, q, "password_hash =")

	require.Equal(t, []any{"enc-nom", int64(3)}, args)
}

func Test_buildUpdateQuery_EmptyPatchStillRefreshesTimestamp(t *testing.T) {
	query, args, err := buildUpdateQuery(models.UserUpdate{ID: 12})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update users")
	require.Contains(t, q, "updated_at = current_timestamp")
	require.Contains(t, q, "where id = $1")
	require.Contains(t, q, "returning")

	require.Equal(t, []any{int64(12)}, args)
}

func Test_buildUpdateQuery_ReturnsAllColumns(t *testing.T) {
	query, _, err := buildUpdateQuery(models.UserUpdate{ID: 1, Username: strPtr("bob")})
	require.NoError(t, err)

	for _, col := range []string{"id", "username", "password_hash", "role", "nom", "prenom", "created_at", "updated_at"} {
		require.Contains(t, strings.ToLower(query), col)
	}
}

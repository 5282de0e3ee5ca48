package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB builds statements for the postgres dialect without a server.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=127.0.0.1 port=1 user=pushgate dbname=pushgate"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db
}

func TestUserRepository_ActiveTokensQuery(t *testing.T) {
	appID := uuid.New()
	repo := &userRepository{db: newDryRunDB(t)}

	tests := []struct {
		name       string
		references []string
		wantIn     bool
	}{
		{name: "selected references", references: []string{"alice", "bob"}, wantIn: true},
		{name: "every user of the app", references: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokens []string
			stmt := repo.activeTokensQuery(context.Background(), appID, tt.references).
				Pluck("device_tokens.token", &tokens).Statement

			sql := stmt.SQL.String()
			assert.Contains(t, sql, "JOIN users ON users.id = device_tokens.user_id")
			assert.Contains(t, sql, "users.app_id = $1 AND users.enabled = $2 AND device_tokens.active = $3")
			assert.Contains(t, sql, "ORDER BY device_tokens.created_at ASC, device_tokens.id ASC")

			require.GreaterOrEqual(t, len(stmt.Vars), 3)
			assert.Equal(t, []any{appID, true, true}, stmt.Vars[:3])

			if tt.wantIn {
				assert.Contains(t, sql, "users.reference IN ($4,$5)")
				assert.Equal(t, []any{"alice", "bob"}, stmt.Vars[3:])
			} else {
				assert.NotContains(t, sql, "users.reference")
				assert.Len(t, stmt.Vars, 3)
			}
		})
	}
}

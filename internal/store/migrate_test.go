package store

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"migrations/002_checks_index.sql":  {Data: []byte("CREATE INDEX checks_date ON checks (date);")},
		"migrations/001_initial.sql":       {Data: []byte("CREATE TABLE restaurants (id TEXT);")},
		"migrations/README.md":             {Data: []byte("not a migration")},
		"migrations/010_notifications.sql": {Data: []byte("ALTER TABLE notifications ADD COLUMN error_text TEXT;")},
	}

	got, err := loadMigrations(fsys)
	require.NoError(t, err)

	versions := make([]string, 0, len(got))
	for _, m := range got {
		versions = append(versions, m.version)
	}
	assert.Equal(t, []string{"001_initial.sql", "002_checks_index.sql", "010_notifications.sql"}, versions)
	assert.Equal(t, "CREATE TABLE restaurants (id TEXT);", got[0].sql)
}

func TestLoadMigrations_Embedded(t *testing.T) {
	t.Parallel()

	got, err := loadMigrations(migrationsFS)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "001_initial_schema.sql", got[0].version)
	assert.Contains(t, got[0].sql, "watch_targets")
}

func TestPendingMigrations(t *testing.T) {
	t.Parallel()

	all := []migration{{version: "001.sql"}, {version: "002.sql"}, {version: "003.sql"}}

	tests := []struct {
		name    string
		applied map[string]bool
		want    []string
	}{
		{name: "fresh database", applied: map[string]bool{}, want: []string{"001.sql", "002.sql", "003.sql"}},
		{name: "partially applied", applied: map[string]bool{"001.sql": true}, want: []string{"002.sql", "003.sql"}},
		{name: "gap is filled", applied: map[string]bool{"001.sql": true, "003.sql": true}, want: []string{"002.sql"}},
		{name: "up to date", applied: map[string]bool{"001.sql": true, "002.sql": true, "003.sql": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got []string
			for _, m := range pendingMigrations(all, tt.applied) {
				got = append(got, m.version)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

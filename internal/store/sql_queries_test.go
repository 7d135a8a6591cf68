package store

import (
	"testing"

	"github.com/MKhiriev/culinary-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertUserQuery(t *testing.T) {
	query, args, err := upsertUserQuery("65a1b2c3d4e5f60718293a4b", "a@x.io", []byte(`{"email":"a@x.io"}`))
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO users")
	assert.Contains(t, query, "$3::jsonb")
	assert.Contains(t, query, "ON CONFLICT (email) DO UPDATE SET doc = users.doc || EXCLUDED.doc")
	assert.Contains(t, query, "RETURNING id, (xmax = 0) AS inserted")
	assert.Equal(t, []any{"65a1b2c3d4e5f60718293a4b", "a@x.io", `{"email":"a@x.io"}`}, args)
}

func TestSelectUsersQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    models.UserFilter
		wantWhere bool
		wantArgs  int
	}{
		{name: "all users", filter: models.UserFilter{}, wantWhere: false, wantArgs: 0},
		{name: "by role", filter: models.UserFilter{Role: models.RoleInstructor}, wantWhere: true, wantArgs: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := selectUsersQuery(tt.filter)
			require.NoError(t, err)

			assert.Contains(t, query, "SELECT id, doc FROM users")
			assert.Contains(t, query, "ORDER BY created_at")
			if tt.wantWhere {
				assert.Contains(t, query, "doc->>'role' = $1")
			} else {
				assert.NotContains(t, query, "WHERE")
			}
			assert.Len(t, args, tt.wantArgs)
		})
	}
}

func TestSelectClassesQuery(t *testing.T) {
	query, args, err := selectClassesQuery(models.ClassFilter{InstructorEmail: "i@x.io", Status: models.ClassApproved})
	require.NoError(t, err)

	assert.Contains(t, query, "doc->'instructor'->>'email' = $")
	assert.Contains(t, query, "doc->>'status' = $")
	assert.ElementsMatch(t, []any{"i@x.io", "approve"}, args)

	query, args, err = selectClassesQuery(models.ClassFilter{})
	require.NoError(t, err)
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestMergeDocumentQuery(t *testing.T) {
	query, args, err := mergeDocumentQuery("classes", "65a1b2c3d4e5f60718293a4b", []byte(`{"status":"deny"}`))
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE classes SET doc = doc || $1::jsonb WHERE id = $2")
	assert.Equal(t, []any{`{"status":"deny"}`, "65a1b2c3d4e5f60718293a4b"}, args)
}

func TestDeleteCartItemQuery(t *testing.T) {
	query, args, err := deleteCartItemQuery("65a1b2c3d4e5f60718293a4b", "s@x.io")
	require.NoError(t, err)

	assert.Contains(t, query, "DELETE FROM carts")
	assert.Contains(t, query, "email = $")
	assert.Contains(t, query, "id = $")
	assert.ElementsMatch(t, []any{"65a1b2c3d4e5f60718293a4b", "s@x.io"}, args)
}

func TestEncodeDocument_DropsID(t *testing.T) {
	raw, err := encodeDocument(models.Class{Title: "Pasta", Status: models.ClassPending})
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "_id")
	assert.Contains(t, string(raw), `"title":"Pasta"`)
	assert.Contains(t, string(raw), `"status":"pending"`)
}

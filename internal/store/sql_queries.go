package store

import (
	"github.com/MKhiriev/culinary-server/models"
	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// upsertUserQuery merges doc into the user with the same email, inserting a
// new row when there is none. The second returned column reports whether the
// row was inserted.
func upsertUserQuery(id, email string, doc []byte) (string, []any, error) {
	return psql.Insert("users").
		Columns("id", "email", "doc").
		Values(id, email, sq.Expr("?::jsonb", string(doc))).
		Suffix("ON CONFLICT (email) DO UPDATE SET doc = users.doc || EXCLUDED.doc RETURNING id, (xmax = 0) AS inserted").
		ToSql()
}

func selectUsersQuery(filter models.UserFilter) (string, []any, error) {
	q := psql.Select("id", "doc").From("users")
	if filter.Role != models.RoleUnset {
		q = q.Where(sq.Eq{"doc->>'role'": string(filter.Role)})
	}

	return q.OrderBy("created_at").ToSql()
}

func selectUserByEmailQuery(email string) (string, []any, error) {
	return psql.Select("id", "doc").
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
}

// mergeDocumentQuery emulates `$set` by merging doc over the stored document.
func mergeDocumentQuery(table, id string, doc []byte) (string, []any, error) {
	return psql.Update(table).
		Set("doc", sq.Expr("doc || ?::jsonb", string(doc))).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func insertClassQuery(id string, doc []byte) (string, []any, error) {
	return psql.Insert("classes").
		Columns("id", "doc").
		Values(id, sq.Expr("?::jsonb", string(doc))).
		ToSql()
}

func selectClassesQuery(filter models.ClassFilter) (string, []any, error) {
	where := sq.Eq{}
	if filter.InstructorEmail != "" {
		where["doc->'instructor'->>'email'"] = filter.InstructorEmail
	}
	if filter.Status != "" {
		where["doc->>'status'"] = string(filter.Status)
	}

	q := psql.Select("id", "doc").From("classes")
	if len(where) > 0 {
		q = q.Where(where)
	}

	return q.OrderBy("created_at").ToSql()
}

func insertCartItemQuery(id, email string, doc []byte) (string, []any, error) {
	return psql.Insert("carts").
		Columns("id", "email", "doc").
		Values(id, email, sq.Expr("?::jsonb", string(doc))).
		ToSql()
}

func selectCartItemsQuery(email string) (string, []any, error) {
	return psql.Select("id", "doc").
		From("carts").
		Where(sq.Eq{"email": email}).
		OrderBy("created_at").
		ToSql()
}

func deleteCartItemQuery(id, email string) (string, []any, error) {
	return psql.Delete("carts").
		Where(sq.Eq{"id": id, "email": email}).
		ToSql()
}

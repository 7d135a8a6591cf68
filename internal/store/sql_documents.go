package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// encodeDocument renders v as the JSONB document stored in the doc column.
// The id lives in its own column, so "_id" is dropped.
func encodeDocument(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	var doc map[string]any
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}
	delete(doc, "_id")

	return json.Marshal(doc)
}

// scanDocuments reads (id, doc) rows into models. setID stores the row id on
// the decoded model.
func scanDocuments[T any](rows *sql.Rows, setID func(*T, primitive.ObjectID)) ([]T, error) {
	defer rows.Close()

	docs := make([]T, 0)
	for rows.Next() {
		doc, err := scanDocument(rows, setID)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return docs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument[T any](row rowScanner, setID func(*T, primitive.ObjectID)) (T, error) {
	var (
		doc T
		id  string
		raw []byte
	)
	if err := row.Scan(&id, &raw); err != nil {
		return doc, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return doc, fmt.Errorf("%w: stored id %q: %w", ErrDecodingDocument, id, err)
	}
	setID(&doc, oid)

	return doc, nil
}

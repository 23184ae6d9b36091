package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Edit is one recorded class-attribute write.
type Edit struct {
	ID        string
	FilePath  string
	TagName   string
	Ordinal   int // -1 when the write targeted every occurrence
	OldValue  string
	HadOld    bool
	NewValue  string
	AppliedAt time.Time
}

// Record inserts an edit row, assigning it a fresh ID.
func Record(db *sql.DB, e Edit) (string, error) {
	id := uuid.NewString()

	var old any
	if e.HadOld {
		old = e.OldValue
	}

	_, err := db.Exec(`
		INSERT INTO edits (id, file_path, tag_name, ordinal, old_value, new_value)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, e.FilePath, e.TagName, e.Ordinal, old, e.NewValue)
	if err != nil {
		return "", fmt.Errorf("inserting edit: %w", err)
	}

	return id, nil
}

// List returns recorded edits, oldest first. A non-empty filePath narrows
// the result to that file.
func List(db *sql.DB, filePath string) ([]Edit, error) {
	query := `
		SELECT id, file_path, tag_name, ordinal, old_value, new_value, applied_at
		FROM edits
	`
	var args []any
	if filePath != "" {
		query += ` WHERE file_path = ?`
		args = append(args, filePath)
	}
	query += ` ORDER BY applied_at, id`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying edits: %w", err)
	}
	defer rows.Close()

	var edits []Edit
	for rows.Next() {
		var e Edit
		var old sql.NullString
		var applied string
		if err := rows.Scan(&e.ID, &e.FilePath, &e.TagName, &e.Ordinal, &old, &e.NewValue, &applied); err != nil {
			return nil, fmt.Errorf("scanning edit: %w", err)
		}
		e.OldValue, e.HadOld = old.String, old.Valid
		if t, err := time.Parse("2006-01-02 15:04:05", applied); err == nil {
			e.AppliedAt = t
		}
		edits = append(edits, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating edits: %w", err)
	}

	return edits, nil
}

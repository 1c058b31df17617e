package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/reactdict"
)

// Compile-time interface verification.
var _ reactdict.DefinitionService = (*DefinitionService)(nil)

const definitionColumns = `id, term, purpose, why, example, code, summary, details, source,
	content_hash, moderated, suggested, created_at, updated_at`

// DefinitionService implements reactdict.DefinitionService using SQLite.
type DefinitionService struct {
	db  *DB
	now func() time.Time
}

// NewDefinitionService creates a new DefinitionService.
func NewDefinitionService(db *DB) *DefinitionService {
	return &DefinitionService{db: db, now: time.Now}
}

// HashContent computes the xxHash of a definition's generated content as a hex string.
func HashContent(def *reactdict.Definition) string {
	h := xxhash.New()
	for _, s := range []string{def.Purpose, strings.Join(def.Why, "\n"), def.Example, def.Code, def.Summary} {
		_, _ = h.WriteString(s)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// CreateDefinition creates a new definition.
func (s *DefinitionService) CreateDefinition(ctx context.Context, def *reactdict.Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	s.prepare(def)

	why, err := encodeWhy(def.Why)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO definitions (`+definitionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, def.ID, def.Term, def.Purpose, why, def.Example, def.Code, def.Summary, def.Details,
		string(def.Source), def.ContentHash, def.Moderated, def.Suggested,
		formatTime(def.CreatedAt), formatTime(def.UpdatedAt))
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return reactdict.Errorf(reactdict.ECONFLICT, "definition for %q already exists", def.Term)
	}
	return nil
}

// prepare derives the ID, hash and timestamps before a write.
func (s *DefinitionService) prepare(def *reactdict.Definition) {
	now := s.now().UTC()
	def.ID = reactdict.TermID(def.Term)
	def.ContentHash = HashContent(def)
	if def.CreatedAt.IsZero() {
		def.CreatedAt = now
	}
	def.UpdatedAt = now
}

// FindDefinitionByID retrieves a definition by ID.
func (s *DefinitionService) FindDefinitionByID(ctx context.Context, id string) (*reactdict.Definition, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+definitionColumns+` FROM definitions WHERE id = ?`, id)

	def, err := scanDefinition(row)
	if err == sql.ErrNoRows {
		return nil, reactdict.Errorf(reactdict.ENOTFOUND, "definition not found")
	}
	if err != nil {
		return nil, err
	}
	return def, nil
}

// FindDefinitions retrieves definitions matching the filter.
func (s *DefinitionService) FindDefinitions(ctx context.Context, filter reactdict.DefinitionFilter) ([]*reactdict.Definition, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + definitionColumns + " FROM definitions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Term != nil {
		query.WriteString(" AND term = ? COLLATE NOCASE")
		args = append(args, strings.TrimSpace(*filter.Term))
	}
	if filter.Moderated != nil {
		query.WriteString(" AND moderated = ?")
		args = append(args, *filter.Moderated)
	}
	if filter.Suggested != nil {
		query.WriteString(" AND suggested = ?")
		args = append(args, *filter.Suggested)
	}

	switch filter.SortBy {
	case reactdict.SortByTerm:
		query.WriteString(" ORDER BY term COLLATE NOCASE ASC")
	case reactdict.SortForReview:
		query.WriteString(" ORDER BY suggested DESC, created_at DESC")
	default:
		query.WriteString(" ORDER BY created_at DESC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var defs []*reactdict.Definition
	for rows.Next() {
		def, err := scanDefinition(rows)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	return defs, rows.Err()
}

// UpdateDefinition updates an existing definition.
func (s *DefinitionService) UpdateDefinition(ctx context.Context, id string, upd reactdict.DefinitionUpdate) (*reactdict.Definition, error) {
	def, err := s.FindDefinitionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Purpose != nil {
		def.Purpose = *upd.Purpose
	}
	if upd.Why != nil {
		def.Why = *upd.Why
	}
	if upd.Example != nil {
		def.Example = *upd.Example
	}
	if upd.Code != nil {
		def.Code = *upd.Code
	}
	if upd.Summary != nil {
		def.Summary = *upd.Summary
	}
	if upd.Details != nil {
		def.Details = *upd.Details
	}
	if upd.Source != nil {
		def.Source = *upd.Source
	}
	if upd.Moderated != nil {
		def.Moderated = *upd.Moderated
	}
	if upd.Suggested != nil {
		def.Suggested = *upd.Suggested
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}

	def.ContentHash = HashContent(def)
	def.UpdatedAt = s.now().UTC()

	why, err := encodeWhy(def.Why)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE definitions
		SET purpose = ?, why = ?, example = ?, code = ?, summary = ?, details = ?, source = ?,
			content_hash = ?, moderated = ?, suggested = ?, updated_at = ?
		WHERE id = ?
	`, def.Purpose, why, def.Example, def.Code, def.Summary, def.Details, string(def.Source),
		def.ContentHash, def.Moderated, def.Suggested, formatTime(def.UpdatedAt), id)
	if err != nil {
		return nil, err
	}

	return def, nil
}

// DeleteDefinition permanently removes a definition.
func (s *DefinitionService) DeleteDefinition(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM definitions WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return reactdict.Errorf(reactdict.ENOTFOUND, "definition not found")
	}

	return nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDefinition(row scanner) (*reactdict.Definition, error) {
	var def reactdict.Definition
	var why, source, createdAt, updatedAt string

	if err := row.Scan(&def.ID, &def.Term, &def.Purpose, &why, &def.Example, &def.Code, &def.Summary,
		&def.Details, &source, &def.ContentHash, &def.Moderated, &def.Suggested,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	def.Source = reactdict.DefinitionSource(source)
	if err := json.Unmarshal([]byte(why), &def.Why); err != nil {
		return nil, fmt.Errorf("failed to decode why: %w", err)
	}

	var err error
	if def.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if def.UpdatedAt, err = parseTime(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &def, nil
}

func encodeWhy(why []string) (string, error) {
	if why == nil {
		why = []string{}
	}
	b, err := json.Marshal(why)
	if err != nil {
		return "", fmt.Errorf("failed to encode why: %w", err)
	}
	return string(b), nil
}

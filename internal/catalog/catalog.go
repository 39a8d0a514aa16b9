// Package catalog indexes parsed shells in a SQLite database.
//
// Each shell is stored with its identity fields, its directive lines and a
// roaring bitmap of the animation ids its bind groups reference, so shells
// can be searched by name or by animation id without re-parsing.
package catalog

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/RoaringBitmap/roaring"
	_ "modernc.org/sqlite"

	"github.com/ukatools/descript"
)

// ErrNotFound is returned when no shell is stored under a path.
var ErrNotFound = errors.New("catalog: shell not found")

const schema = `
CREATE TABLE IF NOT EXISTS shells (
	id INTEGER PRIMARY KEY,
	path TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	charset TEXT NOT NULL,
	craftman TEXT NOT NULL,
	lines INTEGER NOT NULL,
	animations BLOB NOT NULL,
	indexed_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_shells_name ON shells(name);

CREATE TABLE IF NOT EXISTS directives (
	shell_id INTEGER NOT NULL REFERENCES shells(id) ON DELETE CASCADE,
	line INTEGER NOT NULL,
	kind TEXT NOT NULL,
	namespace TEXT NOT NULL,
	text TEXT NOT NULL,
	PRIMARY KEY (shell_id, line)
) WITHOUT ROWID;
CREATE INDEX IF NOT EXISTS idx_directives_kind ON directives(kind);
`

// Record is one stored shell.
type Record struct {
	ID         int64
	Path       string
	Name       string
	Charset    string
	Craftman   string
	Lines      int
	Animations *roaring.Bitmap
	IndexedAt  time.Time
}

// Catalog is a SQLite-backed shell index. It is safe for concurrent use.
type Catalog struct {
	db  *sql.DB
	log *slog.Logger
}

// Open opens or creates the catalog at dbPath. A nil logger disables
// logging.
func Open(dbPath string, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	// One connection keeps ":memory:" databases and foreign keys coherent.
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{"PRAGMA foreign_keys = ON", schema} {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}

	logger.Debug("catalog opened", slog.String("path", dbPath))
	return &Catalog{db: db, log: logger}, nil
}

// Close closes the database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Put stores doc under path, replacing any previous entry for path.
func (c *Catalog) Put(ctx context.Context, path string, doc *descript.Document) (int64, error) {
	var shell descript.Shell
	if err := descript.UnmarshalDocument(doc, &shell); err != nil {
		return 0, err
	}

	var blob bytes.Buffer
	if _, err := shell.AnimationIDs().WriteTo(&blob); err != nil {
		return 0, fmt.Errorf("serialize animations for %s: %w", path, err)
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin put: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM shells WHERE path = ?", path); err != nil {
		return 0, fmt.Errorf("replace %s: %w", path, err)
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO shells (path, name, charset, craftman, lines, animations, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		path, shell.Name, shell.Charset.String(), shell.Craftman, doc.Len(), blob.Bytes(), time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("insert shell %s: %w", path, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO directives (shell_id, line, kind, namespace, text)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare directives insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	n := 0
	for i, d := range doc.Directives() {
		k := d.Kind()
		if _, err := stmt.ExecContext(ctx, id, i+1, k.String(), k.Namespace().String(), d.String()); err != nil {
			return 0, fmt.Errorf("insert directive %d of %s: %w", i+1, path, err)
		}
		n++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit %s: %w", path, err)
	}

	c.log.Debug("indexed shell",
		slog.String("path", path),
		slog.String("name", shell.Name),
		slog.Int("directives", n),
		slog.Uint64("animations", shell.AnimationIDs().GetCardinality()))
	return id, nil
}

const recordColumns = "id, path, name, charset, craftman, lines, animations, indexed_at"

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var (
		r    Record
		blob []byte
		ts   int64
	)
	if err := row.Scan(&r.ID, &r.Path, &r.Name, &r.Charset, &r.Craftman, &r.Lines, &blob, &ts); err != nil {
		return Record{}, err
	}
	r.Animations = roaring.New()
	if err := r.Animations.UnmarshalBinary(blob); err != nil {
		return Record{}, fmt.Errorf("unmarshal animations of %s: %w", r.Path, err)
	}
	r.IndexedAt = time.Unix(ts, 0)
	return r, nil
}

// Get returns the shell stored under path.
func (c *Catalog) Get(ctx context.Context, path string) (Record, error) {
	row := c.db.QueryRowContext(ctx, "SELECT "+recordColumns+" FROM shells WHERE path = ?", path)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return r, err
}

// Delete removes the shell stored under path and its directives.
func (c *Catalog) Delete(ctx context.Context, path string) error {
	res, err := c.db.ExecContext(ctx, "DELETE FROM shells WHERE path = ?", path)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return nil
}

func (c *Catalog) query(ctx context.Context, where string, args ...any) ([]Record, error) {
	rows, err := c.db.QueryContext(ctx, "SELECT "+recordColumns+" FROM shells "+where+" ORDER BY path", args...)
	if err != nil {
		return nil, fmt.Errorf("query shells: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// List returns every stored shell ordered by path.
func (c *Catalog) List(ctx context.Context) ([]Record, error) {
	return c.query(ctx, "")
}

// FindByName returns the shells whose name contains substr.
func (c *Catalog) FindByName(ctx context.Context, substr string) ([]Record, error) {
	return c.query(ctx, "WHERE instr(name, ?) > 0", substr)
}

// FindByAnimation returns the shells whose bind groups reference id.
func (c *Catalog) FindByAnimation(ctx context.Context, id descript.AnimationID) ([]Record, error) {
	all, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []Record
	for _, r := range all {
		if r.Animations.Contains(id) {
			out = append(out, r)
		}
	}
	c.log.Debug("animation lookup", slog.Uint64("id", uint64(id)), slog.Int("matches", len(out)))
	return out, nil
}

// Directive is one stored directive line.
type Directive struct {
	Path      string
	Line      int // 1-based
	Kind      string
	Namespace string
	Text      string
}

// FindByKind returns the stored directives whose kind key pattern is kind,
// e.g. "charN.bindgroupN.name".
func (c *Catalog) FindByKind(ctx context.Context, kind string) ([]Directive, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT s.path, d.line, d.kind, d.namespace, d.text
		FROM directives d JOIN shells s ON s.id = d.shell_id
		WHERE d.kind = ?
		ORDER BY s.path, d.line`, kind)
	if err != nil {
		return nil, fmt.Errorf("query directives: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Directive
	for rows.Next() {
		var d Directive
		if err := rows.Scan(&d.Path, &d.Line, &d.Kind, &d.Namespace, &d.Text); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Package store keeps parsed GFA collections in a SQLite database so their
// records can be found by name without reading the file again
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"go.uber.org/zap"

	"github.com/jjtimmons/gfa/internal/gfa"
)

// Store is a GFA index database
type Store struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

// File is a GFA file loaded into the index
type File struct {
	ID       string
	Path     string
	Version  *string
	LoadedAt string
}

// Open opens (or creates) the index at dbPath and applies the schema
func Open(dbPath string, log *zap.SugaredLogger) (*Store, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	db, err := sql.Open("sqlite3", "file:"+dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)")
	if err != nil {
		return nil, fmt.Errorf("open index db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping index db: %w", err)
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply index schema: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Load inserts every record of g, read from path, in one transaction and
// returns the ID of the new file entry
func (s *Store) Load(ctx context.Context, path string, g *gfa.GFA) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	fileID := uuid.New().String()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO files (id, path, version) VALUES (?, ?, ?)`,
		fileID, path, nullable(g.Version),
	); err != nil {
		return "", fmt.Errorf("insert file: %w", err)
	}

	for _, seg := range g.Segments {
		length := int64(len(seg.Sequence))
		if seg.Length != nil {
			length = *seg.Length
		} else if seg.Sequence == "*" {
			length = 0
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO segments (file_id, name, length, line) VALUES (?, ?, ?, ?)`,
			fileID, seg.Name, length, seg.String(),
		); err != nil {
			return "", fmt.Errorf("insert segment %s: %w", seg.Name, err)
		}
	}

	for _, l := range g.Links {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO links (file_id, from_name, from_orient, to_name, to_orient, line) VALUES (?, ?, ?, ?, ?, ?)`,
			fileID, l.From, l.FromOrient.String(), l.To, l.ToOrient.String(), l.String(),
		); err != nil {
			return "", fmt.Errorf("insert link %s-%s: %w", l.From, l.To, err)
		}
	}

	for _, c := range g.Containments {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO containments (file_id, container_name, contained_name, pos, line) VALUES (?, ?, ?, ?, ?)`,
			fileID, c.Container, c.Contained, c.Pos, c.String(),
		); err != nil {
			return "", fmt.Errorf("insert containment %s-%s: %w", c.Container, c.Contained, err)
		}
	}

	for _, p := range g.Paths {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO paths (file_id, name, steps, line) VALUES (?, ?, ?, ?)`,
			fileID, p.Name, len(p.Segments), p.String(),
		); err != nil {
			return "", fmt.Errorf("insert path %s: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit tx: %w", err)
	}

	s.log.Infow("loaded gfa into index",
		"file", path,
		"id", fileID,
		"segments", len(g.Segments),
		"links", len(g.Links),
		"containments", len(g.Containments),
		"paths", len(g.Paths),
	)
	return fileID, nil
}

// Files lists the loaded files, oldest first
func (s *Store) Files(ctx context.Context) ([]File, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, path, version, loaded_at FROM files ORDER BY loaded_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("query files: %w", err)
	}
	defer rows.Close()

	var files []File
	for rows.Next() {
		var f File
		var version sql.NullString
		if err := rows.Scan(&f.ID, &f.Path, &version, &f.LoadedAt); err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		if version.Valid {
			v := version.String
			f.Version = &v
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// Segment returns the first loaded segment called name
func (s *Store) Segment(ctx context.Context, name string) (gfa.Segment, bool, error) {
	l, ok, err := s.first(ctx, `SELECT line FROM segments WHERE name = ? ORDER BY rowid LIMIT 1`, name)
	if err != nil || !ok {
		return gfa.Segment{}, ok, err
	}
	seg, isSeg := l.(gfa.Segment)
	if !isSeg {
		return gfa.Segment{}, false, fmt.Errorf("stored segment %s is a %s", name, l.Kind())
	}
	return seg, true, nil
}

// Path returns the first loaded path called name
func (s *Store) Path(ctx context.Context, name string) (gfa.Path, bool, error) {
	l, ok, err := s.first(ctx, `SELECT line FROM paths WHERE name = ? ORDER BY rowid LIMIT 1`, name)
	if err != nil || !ok {
		return gfa.Path{}, ok, err
	}
	p, isPath := l.(gfa.Path)
	if !isPath {
		return gfa.Path{}, false, fmt.Errorf("stored path %s is a %s", name, l.Kind())
	}
	return p, true, nil
}

// Links returns every link leaving or entering the segment called name
func (s *Store) Links(ctx context.Context, name string) ([]gfa.Link, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT line FROM links WHERE from_name = ? OR to_name = ? ORDER BY rowid`, name, name)
	if err != nil {
		return nil, fmt.Errorf("query links: %w", err)
	}
	defer rows.Close()

	var links []gfa.Link
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		l, err := gfa.ParseLine(strings.Split(line, "\t"))
		if err != nil {
			return nil, fmt.Errorf("parse stored link: %w", err)
		}
		if link, ok := l.(gfa.Link); ok {
			links = append(links, link)
		}
	}
	return links, rows.Err()
}

// first parses the line of the first row of query
func (s *Store) first(ctx context.Context, query string, args ...any) (gfa.Line, bool, error) {
	var line string
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&line)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query record: %w", err)
	}

	l, err := gfa.ParseLine(strings.Split(line, "\t"))
	if err != nil {
		return nil, false, fmt.Errorf("parse stored record: %w", err)
	}
	return l, true, nil
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

//go:build cgo

package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	kuzu "github.com/kuzudb/go-kuzu"
)

// KuzuStore implements the Store interface using KuzuDB as the graph backend.
// It requires CGO because the go-kuzu driver wraps KuzuDB's C library.
//
// SourceFile nodes are keyed by full repo-relative path; FileName nodes are
// keyed by basename and carry the IMPORTS relationships, matching how the
// downstream visualization addresses graph nodes.
type KuzuStore struct {
	db   *kuzu.Database
	conn *kuzu.Connection
}

// Compile-time check that KuzuStore satisfies Store.
var _ Store = (*KuzuStore)(nil)

// NewKuzuStore creates a KuzuStore backed by an in-memory KuzuDB instance.
func NewKuzuStore() (*KuzuStore, error) {
	return openKuzu(":memory:")
}

// NewKuzuFileStore creates a KuzuStore backed by a file-based KuzuDB at the
// given directory path, so the graph survives across sessions. KuzuDB
// creates the leaf directory itself for new databases.
func NewKuzuFileStore(dbPath string) (*KuzuStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("kuzu: create parent directory: %w", err)
	}
	return openKuzu(dbPath)
}

func openKuzu(dbPath string) (*KuzuStore, error) {
	cfg := kuzu.DefaultSystemConfig()
	db, err := kuzu.OpenDatabase(dbPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("kuzu: open database: %w", err)
	}
	conn, err := kuzu.OpenConnection(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("kuzu: open connection: %w", err)
	}
	return &KuzuStore{db: db, conn: conn}, nil
}

// Close releases the KuzuDB connection and database.
func (s *KuzuStore) Close() error {
	if s.conn != nil {
		s.conn.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
	return nil
}

// ---------- Schema setup ----------

// ddlStatements defines the Cypher DDL executed by InitSchema.
// Order matters: node tables must precede relationship tables.
// List-valued inventory fields are stored JSON-encoded.
var ddlStatements = []string{
	`CREATE NODE TABLE IF NOT EXISTS SourceFile(
		path STRING,
		name STRING,
		loc INT64,
		functions STRING,
		classes STRING,
		imports STRING,
		source STRING,
		summary STRING,
		summarized BOOLEAN,
		PRIMARY KEY(path)
	)`,
	`CREATE NODE TABLE IF NOT EXISTS FileName(
		name STRING,
		PRIMARY KEY(name)
	)`,
	`CREATE NODE TABLE IF NOT EXISTS Library(
		name STRING,
		query STRING,
		results STRING,
		error STRING,
		fetched_at INT64,
		PRIMARY KEY(name)
	)`,
	`CREATE REL TABLE IF NOT EXISTS IMPORTS(FROM FileName TO FileName)`,
}

// InitSchema creates all node and relationship tables if they do not exist.
func (s *KuzuStore) InitSchema(_ context.Context) error {
	for _, stmt := range ddlStatements {
		res, err := s.conn.Query(stmt)
		if err != nil {
			return fmt.Errorf("kuzu: init schema: %w", err)
		}
		res.Close()
	}
	return nil
}

// ---------- Inventory operations ----------

// PutInventory writes a SourceFile node, replacing any prior record for the
// same path.
func (s *KuzuStore) PutInventory(_ context.Context, inv Inventory) error {
	if err := s.exec(
		"MATCH (f:SourceFile {path: $path}) DELETE f",
		map[string]any{"path": inv.Path},
	); err != nil {
		return err
	}

	summary := ""
	if inv.Summary != nil {
		summary = mustJSON(inv.Summary)
	}

	return s.exec(
		`CREATE (f:SourceFile {
			path: $path,
			name: $name,
			loc: $loc,
			functions: $functions,
			classes: $classes,
			imports: $imports,
			source: $source,
			summary: $summary,
			summarized: $summarized
		})`,
		map[string]any{
			"path":       inv.Path,
			"name":       inv.Basename(),
			"loc":        int64(inv.LOC),
			"functions":  mustJSON(inv.Functions),
			"classes":    mustJSON(inv.Classes),
			"imports":    mustJSON(inv.Imports),
			"source":     inv.Source,
			"summary":    summary,
			"summarized": inv.Summary != nil,
		},
	)
}

// GetInventory retrieves a single inventory by path, or nil if not found.
func (s *KuzuStore) GetInventory(_ context.Context, path string) (*Inventory, error) {
	rows, err := s.query(
		`MATCH (f:SourceFile {path: $path})
		 RETURN f.path, f.loc, f.functions, f.classes, f.imports, f.source, f.summary`,
		map[string]any{"path": path},
	)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rowToInventory(rows[0])
}

// Inventories returns all stored inventories ordered by path.
func (s *KuzuStore) Inventories(_ context.Context) ([]Inventory, error) {
	rows, err := s.query(
		`MATCH (f:SourceFile)
		 RETURN f.path, f.loc, f.functions, f.classes, f.imports, f.source, f.summary
		 ORDER BY f.path`,
		nil,
	)
	if err != nil {
		return nil, err
	}
	out := make([]Inventory, 0, len(rows))
	for _, r := range rows {
		inv, err := rowToInventory(r)
		if err != nil {
			return nil, err
		}
		out = append(out, *inv)
	}
	return out, nil
}

// SetSummary attaches a summary to the SourceFile at path. Missing paths are
// a no-op: the file may have been removed since the parse pass.
func (s *KuzuStore) SetSummary(_ context.Context, path string, summary Summary) error {
	return s.exec(
		`MATCH (f:SourceFile {path: $path})
		 SET f.summary = $summary, f.summarized = true`,
		map[string]any{
			"path":    path,
			"summary": mustJSON(summary),
		},
	)
}

// ---------- Edge operations ----------

// ReplaceEdges clears all IMPORTS relationships and their basename nodes,
// then bulk-inserts the new edge set.
func (s *KuzuStore) ReplaceEdges(_ context.Context, edges []Edge) error {
	if err := s.exec("MATCH (n:FileName) DETACH DELETE n", nil); err != nil {
		return err
	}

	created := make(map[string]bool)
	ensureNode := func(name string) error {
		if created[name] {
			return nil
		}
		created[name] = true
		return s.exec(
			"CREATE (n:FileName {name: $name})",
			map[string]any{"name": name},
		)
	}

	for _, e := range edges {
		if err := ensureNode(e.Source); err != nil {
			return err
		}
		if err := ensureNode(e.Target); err != nil {
			return err
		}
		if err := s.exec(
			`MATCH (a:FileName {name: $src}), (b:FileName {name: $dst})
			 CREATE (a)-[:IMPORTS]->(b)`,
			map[string]any{"src": e.Source, "dst": e.Target},
		); err != nil {
			return err
		}
	}
	return nil
}

// Edges returns all IMPORTS relationships.
func (s *KuzuStore) Edges(_ context.Context) ([]Edge, error) {
	rows, err := s.query(
		"MATCH (a:FileName)-[:IMPORTS]->(b:FileName) RETURN a.name, b.name",
		nil,
	)
	if err != nil {
		return nil, err
	}
	out := make([]Edge, 0, len(rows))
	for _, r := range rows {
		out = append(out, Edge{Source: toString(r[0]), Target: toString(r[1])})
	}
	return out, nil
}

// ---------- Library operations ----------

// PutLibrary upserts library metadata keyed by name.
func (s *KuzuStore) PutLibrary(_ context.Context, lib LibraryMetadata) error {
	if err := s.exec(
		"MATCH (l:Library {name: $name}) DELETE l",
		map[string]any{"name": lib.Name},
	); err != nil {
		return err
	}
	return s.exec(
		`CREATE (l:Library {
			name: $name,
			query: $query,
			results: $results,
			error: $error,
			fetched_at: $fetched
		})`,
		map[string]any{
			"name":    lib.Name,
			"query":   lib.Query,
			"results": mustJSON(lib.Results),
			"error":   lib.Error,
			"fetched": lib.FetchedAt,
		},
	)
}

// Libraries returns all stored library metadata ordered by name.
func (s *KuzuStore) Libraries(_ context.Context) ([]LibraryMetadata, error) {
	rows, err := s.query(
		`MATCH (l:Library)
		 RETURN l.name, l.query, l.results, l.error, l.fetched_at
		 ORDER BY l.name`,
		nil,
	)
	if err != nil {
		return nil, err
	}
	out := make([]LibraryMetadata, 0, len(rows))
	for _, r := range rows {
		lib := LibraryMetadata{
			Name:      toString(r[0]),
			Query:     toString(r[1]),
			Error:     toString(r[3]),
			FetchedAt: int64(toInt(r[4])),
		}
		if raw := toString(r[2]); raw != "" {
			if err := json.Unmarshal([]byte(raw), &lib.Results); err != nil {
				return nil, fmt.Errorf("kuzu: decode library results: %w", err)
			}
		}
		out = append(out, lib)
	}
	return out, nil
}

// ---------- Stats ----------

// Stats returns counts of stored files, edges, summaries, and libraries.
func (s *KuzuStore) Stats(_ context.Context) (*GraphStats, error) {
	files, err := s.countQuery("MATCH (f:SourceFile) RETURN count(f)")
	if err != nil {
		return nil, err
	}
	edges, err := s.countQuery("MATCH ()-[r:IMPORTS]->() RETURN count(r)")
	if err != nil {
		return nil, err
	}
	summarized, err := s.countQuery("MATCH (f:SourceFile) WHERE f.summarized RETURN count(f)")
	if err != nil {
		return nil, err
	}
	libraries, err := s.countQuery("MATCH (l:Library) RETURN count(l)")
	if err != nil {
		return nil, err
	}
	return &GraphStats{
		FileCount:       files,
		EdgeCount:       edges,
		SummarizedCount: summarized,
		LibraryCount:    libraries,
	}, nil
}

// ---------- Internal helpers ----------

// exec runs a parameterized Cypher statement that produces no result rows.
func (s *KuzuStore) exec(cypher string, params map[string]any) error {
	if len(params) == 0 {
		res, err := s.conn.Query(cypher)
		if err != nil {
			return fmt.Errorf("kuzu: execute: %w", err)
		}
		res.Close()
		return nil
	}

	stmt, err := s.conn.Prepare(cypher)
	if err != nil {
		return fmt.Errorf("kuzu: prepare: %w", err)
	}
	defer stmt.Close()

	res, err := s.conn.Execute(stmt, params)
	if err != nil {
		return fmt.Errorf("kuzu: execute: %w", err)
	}
	res.Close()
	return nil
}

// query runs a parameterized Cypher statement and collects all result rows.
// Each row is a []any slice with values in column order.
func (s *KuzuStore) query(cypher string, params map[string]any) ([][]any, error) {
	var res *kuzu.QueryResult
	var err error

	if len(params) == 0 {
		res, err = s.conn.Query(cypher)
	} else {
		var stmt *kuzu.PreparedStatement
		stmt, err = s.conn.Prepare(cypher)
		if err != nil {
			return nil, fmt.Errorf("kuzu: prepare: %w", err)
		}
		defer stmt.Close()
		res, err = s.conn.Execute(stmt, params)
	}
	if err != nil {
		return nil, fmt.Errorf("kuzu: query: %w", err)
	}
	defer res.Close()

	var rows [][]any
	for res.HasNext() {
		tuple, err := res.Next()
		if err != nil {
			return nil, fmt.Errorf("kuzu: next: %w", err)
		}
		vals, err := tuple.GetAsSlice()
		if err != nil {
			return nil, fmt.Errorf("kuzu: row values: %w", err)
		}
		rows = append(rows, vals)
	}
	return rows, nil
}

// countQuery runs a single-value count query.
func (s *KuzuStore) countQuery(cypher string) (int, error) {
	rows, err := s.query(cypher, nil)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, nil
	}
	return toInt(rows[0][0]), nil
}

// rowToInventory converts a 7-column result row into an Inventory.
// Column order: path, loc, functions, classes, imports, source, summary.
func rowToInventory(r []any) (*Inventory, error) {
	inv := &Inventory{
		Path:   toString(r[0]),
		LOC:    toInt(r[1]),
		Source: toString(r[5]),
	}
	for _, col := range []struct {
		raw  string
		dest *[]string
	}{
		{toString(r[2]), &inv.Functions},
		{toString(r[3]), &inv.Classes},
		{toString(r[4]), &inv.Imports},
	} {
		if col.raw == "" || col.raw == "null" {
			continue
		}
		if err := json.Unmarshal([]byte(col.raw), col.dest); err != nil {
			return nil, fmt.Errorf("kuzu: decode inventory list: %w", err)
		}
	}
	if raw := toString(r[6]); raw != "" && raw != "null" {
		var sum Summary
		if err := json.Unmarshal([]byte(raw), &sum); err != nil {
			return nil, fmt.Errorf("kuzu: decode summary: %w", err)
		}
		inv.Summary = &sum
	}
	return inv, nil
}

// mustJSON encodes v as JSON. The schema types contain no unencodable values.
func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}

// ---------- Type coercion helpers ----------
// KuzuDB returns typed Go values (int64, float64, bool, string).
// These helpers safely coerce any -> concrete type.

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func toInt(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	case int32:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when no conversion has the run id.
var ErrNotFound = errors.New("conversion not found")

// Conversion is one archived convert run.
type Conversion struct {
	Seq          int64  `json:"seq"`
	RunID        string `json:"run_id"`
	Source       string `json:"source"`
	FlowVersion  string `json:"flow_version,omitempty"`
	Passed       bool   `json:"passed"`
	Tests        int    `json:"tests"`
	Failures     int    `json:"failures"`
	ReportDigest string `json:"report_digest"`
	XML          string `json:"-"`
}

// Digest returns the hex SHA-256 of a raw report document.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Record appends c to the archive. A run id is generated when c.RunID is
// empty. Returns c with RunID and Seq filled in.
func (s *Store) Record(ctx context.Context, c Conversion) (Conversion, error) {
	if c.RunID == "" {
		c.RunID = s.ids.Generate()
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO conversions
		(run_id, source, flow_version, passed, tests, failures, report_digest, junit_xml)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		c.RunID,
		c.Source,
		c.FlowVersion,
		c.Passed,
		c.Tests,
		c.Failures,
		c.ReportDigest,
		c.XML,
	)
	if err != nil {
		return Conversion{}, fmt.Errorf("record conversion: %w", err)
	}

	seq, err := res.LastInsertId()
	if err != nil {
		return Conversion{}, fmt.Errorf("record conversion: %w", err)
	}
	c.Seq = seq
	return c, nil
}

// List returns up to limit conversions, newest first. limit <= 0 means all.
// XML is not loaded; use Get for the full document.
//
// Returns an empty slice (not nil) if the archive is empty.
func (s *Store) List(ctx context.Context, limit int) ([]Conversion, error) {
	query := `
		SELECT seq, run_id, source, flow_version, passed, tests, failures, report_digest
		FROM conversions
		ORDER BY seq DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query conversions: %w", err)
	}
	defer rows.Close()

	out := []Conversion{}
	for rows.Next() {
		var c Conversion
		if err := rows.Scan(&c.Seq, &c.RunID, &c.Source, &c.FlowVersion, &c.Passed, &c.Tests, &c.Failures, &c.ReportDigest); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversions: %w", err)
	}
	return out, nil
}

// Get returns the conversion with runID, including its XML.
func (s *Store) Get(ctx context.Context, runID string) (Conversion, error) {
	var c Conversion
	err := s.db.QueryRowContext(ctx, `
		SELECT seq, run_id, source, flow_version, passed, tests, failures, report_digest, junit_xml
		FROM conversions
		WHERE run_id = ?
	`, runID).Scan(&c.Seq, &c.RunID, &c.Source, &c.FlowVersion, &c.Passed, &c.Tests, &c.Failures, &c.ReportDigest, &c.XML)
	if errors.Is(err, sql.ErrNoRows) {
		return Conversion{}, fmt.Errorf("%w: %s", ErrNotFound, runID)
	}
	if err != nil {
		return Conversion{}, fmt.Errorf("get conversion: %w", err)
	}
	return c, nil
}

// Package ledger reads a delimited transactions file into a validated
// core.Ledger. The file's text encoding and field delimiter are not
// trusted: every candidate combination is tried in order and the first
// one producing a plausible table wins.
package ledger

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"cashflow/internal/core"
	"cashflow/internal/log"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// textEncoding is one decode attempt. A nil decoder means plain UTF-8
// with a byte-validity check.
type textEncoding struct {
	name    string
	decoder *encoding.Decoder
}

func candidateEncodings() []textEncoding {
	return []textEncoding{
		{name: "utf-8"},
		{name: "latin-1", decoder: charmap.ISO8859_1.NewDecoder()},
		{name: "windows-1252", decoder: charmap.Windows1252.NewDecoder()},
	}
}

// Loader turns a file path into a validated Ledger.
type Loader struct {
	// Delimiters are the field separators tried for each encoding.
	Delimiters []rune

	// Resolver supplies column names for required fields that no
	// alias matched. Nil means missing fields fail immediately.
	Resolver ColumnResolver

	log *log.Logger
}

func New(logger *log.Logger) *Loader {
	return &Loader{
		Delimiters: []rune{',', ';', '\t', '|'},
		log:        logger.WithComponent("loader"),
	}
}

// rawTable is a parsed but not yet validated table: normalized column
// names plus rows aligned to them.
type rawTable struct {
	columns []string
	rows    [][]string
}

func (t *rawTable) colIndex(name string) int {
	for i, col := range t.columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Load reads, sniffs, maps and validates the transactions file.
func (l *Loader) Load(path string) (core.Ledger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &core.LoadError{Path: path, Reason: err.Error()}
	}

	table := l.sniff(path, data)
	if table == nil {
		return nil, &core.LoadError{Path: path, Reason: "no viable encoding/delimiter combination"}
	}

	mapping, missing := ResolveColumns(table.columns, DefaultAliases)
	if len(missing) > 0 {
		l.log.Warn("columns not auto-mapped", "missing", missing, "available", table.columns)
		if err := resolveMissing(mapping, missing, table.columns, l.Resolver); err != nil {
			return nil, err
		}
	}

	return l.validate(table, mapping)
}

// sniff tries every encoding/delimiter combination in order and returns
// the first plausible table, or nil when all attempts are exhausted.
func (l *Loader) sniff(path string, data []byte) *rawTable {
	for _, enc := range candidateEncodings() {
		text, ok := decodeText(enc, data)
		if !ok {
			l.log.Debug("encoding rejected", "encoding", enc.name)
			continue
		}
		for _, delim := range l.Delimiters {
			table, skipped, ok := parseTable(text, delim)
			if !ok {
				continue
			}
			l.log.Info("file loaded",
				"path", path,
				"encoding", enc.name,
				"delimiter", string(delim),
				"rows", len(table.rows),
				"skipped_lines", skipped)
			return table
		}
	}
	return nil
}

func decodeText(enc textEncoding, data []byte) (string, bool) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if enc.decoder == nil {
		if !utf8.Valid(data) {
			return "", false
		}
		return string(data), true
	}
	decoded, err := enc.decoder.Bytes(data)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

// parseTable parses text under one delimiter. Lines whose field count
// disagrees with the header are skipped, mirroring a bad-lines-skip
// raw parse; strict per-value validation happens later. A result needs
// at least one data row and two columns to count as plausible — a
// one-column "table" means the delimiter split nothing.
func parseTable(text string, delim rune) (*rawTable, int, bool) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, 0, false
	}
	columns := make([]string, len(header))
	for i, col := range header {
		columns[i] = strings.ToLower(strings.TrimSpace(col))
	}

	var rows [][]string
	skipped := 0
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil || len(rec) != len(columns) {
			skipped++
			continue
		}
		rows = append(rows, rec)
	}

	if len(rows) == 0 || len(columns) < 2 {
		return nil, skipped, false
	}
	return dropEmptyColumns(&rawTable{columns: columns, rows: rows}), skipped, true
}

// dropEmptyColumns removes columns whose every value is blank.
func dropEmptyColumns(t *rawTable) *rawTable {
	keep := make([]int, 0, len(t.columns))
	for j := range t.columns {
		for _, row := range t.rows {
			if strings.TrimSpace(row[j]) != "" {
				keep = append(keep, j)
				break
			}
		}
	}
	if len(keep) == len(t.columns) {
		return t
	}

	out := &rawTable{columns: make([]string, len(keep))}
	for i, j := range keep {
		out.columns[i] = t.columns[j]
	}
	out.rows = make([][]string, len(t.rows))
	for ri, row := range t.rows {
		slim := make([]string, len(keep))
		for i, j := range keep {
			slim[i] = row[j]
		}
		out.rows[ri] = slim
	}
	return out
}

// validate applies the strict pass: every date and every amount must
// parse, or the whole load fails.
func (l *Loader) validate(table *rawTable, mapping map[string]string) (core.Ledger, error) {
	dateIdx := table.colIndex(mapping["date"])
	categoryIdx := table.colIndex(mapping["category"])
	amountIdx := table.colIndex(mapping["amount"])

	dates := make([]time.Time, len(table.rows))
	for i, row := range table.rows {
		d, ok := parseDate(row[dateIdx])
		if !ok {
			l.log.Warn("unparseable date", "row", i+1, "value", row[dateIdx])
			return nil, &core.ValidationError{Reason: "invalid date values"}
		}
		dates[i] = d
	}

	out := make(core.Ledger, 0, len(table.rows))
	for i, row := range table.rows {
		amount, err := core.ParseAmount(row[amountIdx])
		if err != nil {
			l.log.Warn("unparseable amount", "row", i+1, "value", row[amountIdx])
			return nil, &core.ValidationError{Reason: "invalid amount values"}
		}
		out = append(out, core.Transaction{
			Date:     dates[i],
			Category: strings.TrimSpace(row[categoryIdx]),
			Amount:   amount,
		})
	}
	return out, nil
}

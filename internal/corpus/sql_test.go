package corpus

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSQLDriver backs a real *sql.DB with an in-memory driver so sqlStore's
// ExecContext/QueryRowContext calls can be exercised without a live
// database connection, in the spirit of the standard library's own
// database/sql/fakedb_test.go rather than a third-party mocking library.
type fakeSQLDriver struct {
	mu        sync.Mutex
	execs     []string
	docFreq   map[string]int64
	totalDocs int64
}

func (d *fakeSQLDriver) Open(string) (driver.Conn, error) { return &fakeSQLConn{d: d}, nil }

type fakeSQLConn struct{ d *fakeSQLDriver }

func (c *fakeSQLConn) Prepare(query string) (driver.Stmt, error) {
	return &fakeSQLStmt{d: c.d, query: query}, nil
}
func (c *fakeSQLConn) Close() error { return nil }
func (c *fakeSQLConn) Begin() (driver.Tx, error) {
	return nil, fmt.Errorf("fakeSQLConn: transactions not supported")
}

type fakeSQLConnector struct{ d *fakeSQLDriver }

func (c *fakeSQLConnector) Connect(context.Context) (driver.Conn, error) {
	return &fakeSQLConn{d: c.d}, nil
}
func (c *fakeSQLConnector) Driver() driver.Driver { return c.d }

type fakeSQLStmt struct {
	d     *fakeSQLDriver
	query string
}

func (s *fakeSQLStmt) Close() error  { return nil }
func (s *fakeSQLStmt) NumInput() int { return -1 }

func (s *fakeSQLStmt) Exec(args []driver.Value) (driver.Result, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	s.d.execs = append(s.d.execs, s.query)
	if strings.Contains(s.query, "_meta") {
		s.d.totalDocs++
		return driver.RowsAffected(1), nil
	}
	if s.d.docFreq == nil {
		s.d.docFreq = make(map[string]int64)
	}
	if len(args) > 0 {
		s.d.docFreq[fmt.Sprint(args[0])]++
	}
	return driver.RowsAffected(1), nil
}

func (s *fakeSQLStmt) Query(args []driver.Value) (driver.Rows, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if strings.Contains(s.query, "total_docs") {
		return &fakeSQLRows{value: s.d.totalDocs}, nil
	}
	var v int64
	if len(args) > 0 {
		v = s.d.docFreq[fmt.Sprint(args[0])]
	}
	return &fakeSQLRows{value: v}, nil
}

// fakeSQLRows yields exactly one row with one int64 column, matching the
// shape of every selectSQL/countSQL statement sqlStore issues.
type fakeSQLRows struct {
	value int64
	done  bool
}

func (r *fakeSQLRows) Columns() []string { return []string{"value"} }
func (r *fakeSQLRows) Close() error      { return nil }
func (r *fakeSQLRows) Next(dest []driver.Value) error {
	if r.done {
		return io.EOF
	}
	dest[0] = r.value
	r.done = true
	return nil
}

func newFakeSQLStore(t *testing.T) (*PGStore, *fakeSQLDriver) {
	t.Helper()
	fd := &fakeSQLDriver{}
	db := sql.OpenDB(&fakeSQLConnector{d: fd})
	return NewPGStore(db, "prune_idf"), fd
}

func TestSQLStore_RecordBumpsTotalDocsMeta(t *testing.T) {
	ctx := context.Background()
	store, fd := newFakeSQLStore(t)

	require.NoError(t, store.Record(ctx, []string{"alpha", "beta", "alpha"}))

	fd.mu.Lock()
	metaExecs := 0
	tokenExecs := 0
	for _, q := range fd.execs {
		if strings.Contains(q, "_meta") {
			metaExecs++
		} else {
			tokenExecs++
		}
	}
	fd.mu.Unlock()

	assert.Equal(t, 2, tokenExecs, "expected one upsert per distinct token")
	assert.Equal(t, 1, metaExecs, "expected exactly one total-docs bump per Record call")
}

func TestSQLStore_DocFreqReflectsRecordedDocuments(t *testing.T) {
	ctx := context.Background()
	store, _ := newFakeSQLStore(t)

	require.NoError(t, store.Record(ctx, []string{"alpha", "beta"}))
	require.NoError(t, store.Record(ctx, []string{"alpha", "gamma"}))

	docFreq, totalDocs, err := store.DocFreq(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, 2, docFreq)
	assert.Equal(t, 2, totalDocs, "totalDocs must reflect the tableName_meta row bumped by Record, not stay 0 forever")

	docFreq, totalDocs, err = store.DocFreq(ctx, "beta")
	require.NoError(t, err)
	assert.Equal(t, 1, docFreq)
	assert.Equal(t, 2, totalDocs)
}

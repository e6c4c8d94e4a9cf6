package corpus

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid"
)

// DB is the subset of *sql.DB the SQL-backed stores need, mirroring the
// teacher's dbintf.go DB interface so tests can substitute a fake
// connection without standing up a real database.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

var _ DB = &sql.DB{}

// sqlStore is shared plumbing for the dialect-specific stores below; the
// dialect only changes the SQL text of its statements (placeholder syntax,
// upsert form, null-coalescing function), exactly the kind of branch the teacher's dbops.go makes on
// mssql.Driver/stdlib.Driver.
type sqlStore struct {
	db               DB
	snapshot         uuid.UUID
	tableName        string
	upsertSQL        string
	bumpTotalDocsSQL string
	selectSQL        string
	countSQL         string
}

// PGStore persists the corpus in PostgreSQL via pgx's database/sql driver
// (github.com/jackc/pgx/v5/stdlib), adapted from the teacher's
// dbops.go Postgres branch.
type PGStore struct{ sqlStore }

// NewPGStore returns a PGStore backed by db, which must be a *sql.DB opened
// with the pgx stdlib driver. tableName holds per-token document-frequency
// rows; callers are responsible for having migrated it.
func NewPGStore(db DB, tableName string) *PGStore {
	return &PGStore{sqlStore{
		db:        db,
		snapshot:  uuid.Must(uuid.NewV4()),
		tableName: tableName,
		upsertSQL: `insert into ` + tableName + ` (token, doc_freq) values ($1, 1)
			on conflict (token) do update set doc_freq = ` + tableName + `.doc_freq + 1`,
		bumpTotalDocsSQL: `insert into ` + tableName + `_meta (id, total_docs) values (1, 1)
			on conflict (id) do update set total_docs = ` + tableName + `_meta.total_docs + 1`,
		selectSQL: `select coalesce((select doc_freq from ` + tableName + ` where token = $1), 0)`,
		countSQL:  `select coalesce((select total_docs from ` + tableName + `_meta), 0)`,
	}}
}

// MSSQLStore persists the corpus in Microsoft SQL Server via
// github.com/microsoft/go-mssqldb, adapted from the teacher's dbops.go
// T-SQL branch (named-parameter stored-procedure style calls).
type MSSQLStore struct{ sqlStore }

// NewMSSQLStore returns an MSSQLStore backed by db, which must be a
// *sql.DB opened with the mssql driver.
func NewMSSQLStore(db DB, tableName string) *MSSQLStore {
	return &MSSQLStore{sqlStore{
		db:        db,
		snapshot:  uuid.Must(uuid.NewV4()),
		tableName: tableName,
		upsertSQL: `merge ` + tableName + ` as target
			using (select @p1 as token) as source on target.token = source.token
			when matched then update set doc_freq = target.doc_freq + 1
			when not matched then insert (token, doc_freq) values (source.token, 1);`,
		bumpTotalDocsSQL: `merge ` + tableName + `_meta as target
			using (select 1 as id) as source on target.id = source.id
			when matched then update set total_docs = target.total_docs + 1
			when not matched then insert (id, total_docs) values (source.id, 1);`,
		selectSQL: `select isnull((select doc_freq from ` + tableName + ` where token = @p1), 0)`,
		countSQL:  `select isnull((select total_docs from ` + tableName + `_meta), 0)`,
	}}
}

// Record implements Store by upserting every distinct token in tokens and
// bumping the corpus's total-document counter by one, inside a single round
// trip per token (matching the teacher's one-statement-per-call dbops.go
// style rather than batching, since corpus writes are off the hot
// compression path). The total-document bump hits a single-row
// tableName_meta table that countSQL reads back in DocFreq; without it,
// DocFreq's totalDocs would stay permanently zero for every SQL backend.
func (s *sqlStore) Record(ctx context.Context, tokens []string) error {
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		if _, err := s.db.ExecContext(ctx, s.upsertSQL, tok); err != nil {
			return err
		}
	}
	if _, err := s.db.ExecContext(ctx, s.bumpTotalDocsSQL); err != nil {
		return err
	}
	return nil
}

// DocFreq implements Store.
func (s *sqlStore) DocFreq(ctx context.Context, token string) (int, int, error) {
	var docFreq, totalDocs int
	if err := s.db.QueryRowContext(ctx, s.selectSQL, token).Scan(&docFreq); err != nil {
		return 0, 0, err
	}
	if err := s.db.QueryRowContext(ctx, s.countSQL).Scan(&totalDocs); err != nil {
		return 0, 0, err
	}
	return docFreq, totalDocs, nil
}

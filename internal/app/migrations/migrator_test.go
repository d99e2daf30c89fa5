package migrations

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// recordingTx captures statements issued against the transaction handle.
type recordingTx struct {
	pgx.Tx
	sql  string
	args []any
}

func (r *recordingTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	r.sql = sql
	r.args = args
	return pgconn.CommandTag{}, nil
}

func TestRecordMigrationUsesTransaction(t *testing.T) {
	m := NewMigrator(nil)
	tx := &recordingTx{}

	if err := m.recordMigration(context.Background(), tx, "001_init.sql"); err != nil {
		t.Fatalf("recordMigration: %v", err)
	}

	if !strings.Contains(tx.sql, "INSERT INTO schema_migrations") {
		t.Errorf("sql = %q, want insert into schema_migrations", tx.sql)
	}
	if len(tx.args) != 2 || tx.args[0] != "001_init.sql" {
		t.Errorf("args = %v, want version as first arg", tx.args)
	}
}

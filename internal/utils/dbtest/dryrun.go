// Package dbtest builds gorm handles for repository tests.
package dbtest

import (
	"context"
	"sync"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Statement is one rendered SQL statement and the context it ran with.
type Statement struct {
	SQL string
	Ctx context.Context
}

// Recorder collects the statements issued through a dry run handle.
type Recorder struct {
	mu         sync.Mutex
	statements []Statement
}

func (r *Recorder) record(tx *gorm.DB) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statements = append(r.statements, Statement{SQL: tx.Statement.SQL.String(), Ctx: tx.Statement.Context})
}

func (r *Recorder) Statements() []Statement {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Statement(nil), r.statements...)
}

// Last returns the most recent statement, or an empty one.
func (r *Recorder) Last() Statement {
	statements := r.Statements()
	if len(statements) == 0 {
		return Statement{}
	}
	return statements[len(statements)-1]
}

// DryRun returns a postgres handle that renders SQL without connecting and a
// recorder of every query it renders.
func DryRun(t *testing.T) (*gorm.DB, *Recorder) {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=foodgram dbname=foodgram sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("open dry run db: %v", err)
	}

	rec := &Recorder{}
	if err := db.Callback().Query().After("gorm:query").Register("dbtest:record", rec.record); err != nil {
		t.Fatalf("register recorder: %v", err)
	}
	return db, rec
}

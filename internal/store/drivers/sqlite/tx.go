package sqlite

import (
	"context"
	"database/sql"

	"github.com/showcasify/showcasify/internal/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // caller will commit/rollback; outer DB stays open

// Ping is a no-op for transactions; the connection already exists.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users                       { return &usersRepo{db: t.tx} }
func (t *txStore) ProfessionalInfo() store.ProfessionalInfo { return &professionalInfoRepo{db: t.tx} }
func (t *txStore) Educations() store.Educations             { return &educationsRepo{db: t.tx} }
func (t *txStore) Experiences() store.Experiences           { return &experiencesRepo{db: t.tx} }
func (t *txStore) Projects() store.Projects                 { return &projectsRepo{db: t.tx} }
func (t *txStore) Preferences() store.Preferences           { return &preferencesRepo{db: t.tx} }
func (t *txStore) Todos() store.Todos                       { return &todosRepo{db: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx starts

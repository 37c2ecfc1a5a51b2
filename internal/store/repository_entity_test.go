package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/connector-sync/internal/logger"
	"github.com/MKhiriev/connector-sync/migrations"
	"github.com/MKhiriev/connector-sync/models"
)

var entityColumnNames = []string{"id", "endpoint_id", "remote_id", "out_of_sync", "payload"}

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps a sqlmock connection the way NewConnectSQLite would.
func newDBFromSQL(db *sql.DB) *DB {
	return newDB(db, migrations.SQLite, logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func TestEntityRepository_Get(t *testing.T) {
	selectSQL := regexp.QuoteMeta("SELECT id, endpoint_id, remote_id, out_of_sync, payload FROM assets WHERE id = ?")

	t.Run("success restores payload and bookkeeping columns", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAssetRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(selectSQL).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(entityColumnNames).
				AddRow(int64(1), int64(7), "a-1", true, []byte(`{"id":99,"remoteId":"stale","name":"Foo","properties":{"k":"v"}}`)))

		asset, err := repo.Get(testContext(), 1)
		require.NoError(t, err)
		assert.Equal(t, models.SyncState{ID: 1, EndpointID: 7, RemoteID: "a-1", OutOfSync: true}, asset.SyncState)
		assert.Equal(t, "Foo", asset.Name)
		assert.Equal(t, map[string]any{"k": "v"}, asset.Properties)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAssetRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(selectSQL).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(entityColumnNames))

		_, err := repo.Get(testContext(), 2)
		assert.ErrorIs(t, err, ErrEntityNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupt payload", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAssetRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(selectSQL).
			WillReturnRows(sqlmock.NewRows(entityColumnNames).
				AddRow(int64(3), int64(7), "a-3", false, []byte(`{not json`)))

		_, err := repo.Get(testContext(), 3)
		assert.ErrorIs(t, err, ErrDecodingPayload)
	})
}

func TestEntityRepository_ListByEndpoint(t *testing.T) {
	listSQL := regexp.QuoteMeta("SELECT id, endpoint_id, remote_id, out_of_sync, payload FROM contract_definitions WHERE endpoint_id = ? ORDER BY id")

	t.Run("returns all rows in order", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewContractDefinitionRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(listSQL).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(entityColumnNames).
				AddRow(int64(1), int64(7), "cd-1", false, []byte(`{"accessPolicyId":"p-1","contractPolicyId":"p-2"}`)).
				AddRow(int64(2), int64(7), "cd-2", true, []byte(`{"accessPolicyId":"p-3","contractPolicyId":"p-4"}`)))

		defs, err := repo.ListByEndpoint(testContext(), 7)
		require.NoError(t, err)
		require.Len(t, defs, 2)
		assert.Equal(t, "cd-1", defs[0].RemoteID)
		assert.Equal(t, "p-1", defs[0].AccessPolicyID)
		assert.True(t, defs[1].OutOfSync)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty endpoint", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewContractDefinitionRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(listSQL).WillReturnRows(sqlmock.NewRows(entityColumnNames))

		defs, err := repo.ListByEndpoint(testContext(), 7)
		require.NoError(t, err)
		assert.Empty(t, defs)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewContractDefinitionRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(listSQL).WillReturnError(errors.New("db down"))

		_, err := repo.ListByEndpoint(testContext(), 7)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestEntityRepository_Create(t *testing.T) {
	insertSQL := regexp.QuoteMeta("INSERT INTO policy_definitions")

	t.Run("assigns generated id", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPolicyDefinitionRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(insertSQL).
			WithArgs(int64(7), "pd-1", false, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

		def := &models.PolicyDefinition{
			SyncState: models.SyncState{EndpointID: 7, RemoteID: "pd-1"},
			Policy:    map[string]any{"@type": "Set"},
		}
		require.NoError(t, repo.Create(testContext(), def))
		assert.Equal(t, int64(42), def.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate remote id", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPolicyDefinitionRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(insertSQL).
			WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})

		err := repo.Create(testContext(), &models.PolicyDefinition{SyncState: models.SyncState{EndpointID: 7, RemoteID: "pd-1"}})
		assert.ErrorIs(t, err, ErrRemoteIDAlreadyExists)
	})

	t.Run("unknown endpoint", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPolicyDefinitionRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(insertSQL).
			WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey})

		err := repo.Create(testContext(), &models.PolicyDefinition{SyncState: models.SyncState{EndpointID: 8, RemoteID: "pd-1"}})
		assert.ErrorIs(t, err, ErrEndpointNotFound)
	})
}

func TestEntityRepository_Update(t *testing.T) {
	updateSQL := regexp.QuoteMeta("UPDATE assets SET remote_id = ?, out_of_sync = ?, payload = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?")

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAssetRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(updateSQL).
			WithArgs("a-2", false, sqlmock.AnyArg(), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		asset := &models.Asset{SyncState: models.SyncState{ID: 1, RemoteID: "a-2"}, Name: "Bar"}
		require.NoError(t, repo.Update(testContext(), asset))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row matched", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAssetRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(updateSQL).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(testContext(), &models.Asset{SyncState: models.SyncState{ID: 9}})
		assert.ErrorIs(t, err, ErrEntityNotFound)
	})
}

func TestEntityRepository_SetOutOfSync(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAssetRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("UPDATE assets SET out_of_sync = ? WHERE id = ?")).
		WithArgs(true, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetOutOfSync(testContext(), 1, true))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEntityRepository_Delete(t *testing.T) {
	deleteSQL := regexp.QuoteMeta("DELETE FROM assets WHERE id = ?")

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAssetRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(deleteSQL).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(testContext(), 1))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAssetRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(deleteSQL).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(testContext(), 1), ErrEntityNotFound)
	})

	t.Run("driver error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAssetRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(deleteSQL).WillReturnError(errors.New("disk I/O error"))

		assert.ErrorIs(t, repo.Delete(testContext(), 1), ErrExecutingStatement)
	})
}

func TestPostgresDialect_UsesDollarPlaceholders(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAssetRepository(newDB(db, migrations.Postgres, logger.Nop()), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM assets WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(testContext(), 5))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestErrorClassifiers(t *testing.T) {
	tests := []struct {
		name       string
		classifier ErrorClassificator
		err        error
		want       ErrorClassification
	}{
		{"pg unique", NewPostgresErrorClassifier(), &pgconn.PgError{Code: pgerrcode.UniqueViolation}, UniqueViolation},
		{"pg foreign key", NewPostgresErrorClassifier(), &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, ForeignKeyViolation},
		{"pg other", NewPostgresErrorClassifier(), &pgconn.PgError{Code: pgerrcode.SyntaxError}, Unclassified},
		{"pg non pg error", NewPostgresErrorClassifier(), errors.New("boom"), Unclassified},
		{"sqlite unique", NewSQLiteErrorClassifier(), sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, UniqueViolation},
		{"sqlite foreign key", NewSQLiteErrorClassifier(), sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, ForeignKeyViolation},
		{"sqlite busy", NewSQLiteErrorClassifier(), sqlite3.Error{Code: sqlite3.ErrBusy}, Unclassified},
		{"sqlite non sqlite error", NewSQLiteErrorClassifier(), errors.New("boom"), Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.classifier.Classify(tt.err))
		})
	}
}

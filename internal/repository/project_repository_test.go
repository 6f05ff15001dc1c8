package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

// The id+owner filter must stay in one WHERE clause; splitting it into a
// fetch followed by an owner check would leak existence to non-owners.
func TestFindByIDAndOwner_SingleScopedQuery(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProjectRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "document_type", "outline", "content", "user_id", "created_at", "updated_at"}).
		AddRow(7, "My Report", "docx", "outline", "", 3, now, now)

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE id = \$1 AND user_id = \$2`).
		WillReturnRows(rows)

	project, err := repo.FindByIDAndOwner(7, 3)
	require.NoError(t, err)
	require.Equal(t, uint64(7), project.ID)
	require.Equal(t, uint64(3), project.UserID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDAndOwner_NotOwned(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByIDAndOwner(7, 99)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByIDAndOwner_RollsBackWhenNotOwned(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "sections" WHERE project_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "projects" WHERE id = \$1 AND user_id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteByIDAndOwner(7, 99)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByIDAndOwner_CascadesSections(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "sections" WHERE project_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "projects" WHERE id = \$1 AND user_id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteByIDAndOwner(7, 3))
	require.NoError(t, mock.ExpectationsWereMet())
}

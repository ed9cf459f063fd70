package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userColumnsPattern = `SELECT id, name, email, password_hash, created_at, updated_at`

func newMockRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewUserRepository(db), mock
}

func userRows(now time.Time, ids ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at", "updated_at"})
	for _, id := range ids {
		rows.AddRow(id, "User", "user@example.com", "hash", now, now)
	}
	return rows
}

func TestUserRepository_List(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(userColumnsPattern).
		WithArgs(5, 10).
		WillReturnRows(userRows(now, 11, 12))

	users, total, err := repo.List(3, 5)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	require.Len(t, users, 2)
	assert.Equal(t, int64(11), users[0].ID)
	assert.Equal(t, int64(12), users[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_List_CountError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnError(sql.ErrConnDone)

	_, _, err := repo.List(1, 5)
	assert.Error(t, err)
}

func TestUserRepository_FindByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(userColumnsPattern).
		WithArgs(int64(7)).
		WillReturnRows(userRows(now, 7))

	user, err := repo.FindByID(7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "user@example.com", user.Email)
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(userColumnsPattern).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_UpsertByEmail(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at", "updated_at"}).
		AddRow(1, "Ana", "ana@example.com", "hash", now, now)
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Ana", "ana@example.com", "hash").
		WillReturnRows(rows)

	user, err := repo.UpsertByEmail("Ana", "ana@example.com", "hash")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Ana", user.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpsertByEmail_StoreError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Ana", "ana@example.com", "hash").
		WillReturnError(sql.ErrConnDone)

	_, err := repo.UpsertByEmail("Ana", "ana@example.com", "hash")
	assert.Error(t, err)
}

func TestUserRepository_DeleteByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM users`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteByID(5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_DeleteByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM users`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteByID(99), ErrUserNotFound)
}

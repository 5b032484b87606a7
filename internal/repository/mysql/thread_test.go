package mysql

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/forum-api/domain"
)

func TestThread_AddThread(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `threads`").
		WithArgs(sqlmock.AnyArg(), "sebuah thread", "sebuah body thread", "user-123", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	added, err := NewThreadDBRepository(db).AddThread(context.TODO(), "user-123",
		domain.NewThread{Title: "sebuah thread", Body: "sebuah body thread"})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(added.ID, "thread-"))
	assert.Equal(t, "sebuah thread", added.Title)
	assert.Equal(t, "user-123", added.Owner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestThread_VerifyThreadAvailability(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `threads`").
			WithArgs("thread-123").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		assert.NoError(t, NewThreadDBRepository(db).VerifyThreadAvailability(context.TODO(), "thread-123"))
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `threads`").
			WithArgs("thread-404").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		err := NewThreadDBRepository(db).VerifyThreadAvailability(context.TODO(), "thread-404")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestThread_GetThreadByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		created := time.Date(2021, 8, 8, 7, 19, 9, 775_000_000, time.UTC)
		rows := sqlmock.NewRows([]string{"id", "title", "body", "created_at", "username"}).
			AddRow("thread-123", "sebuah thread", "sebuah body thread", created, "dicoding")
		mock.ExpectQuery("LEFT JOIN users ON users.id = threads.owner").WillReturnRows(rows)

		thread, err := NewThreadDBRepository(db).GetThreadByID(context.TODO(), "thread-123")

		require.NoError(t, err)
		assert.Equal(t, domain.Thread{
			ID:       "thread-123",
			Title:    "sebuah thread",
			Body:     "sebuah body thread",
			Date:     "2021-08-08T07:19:09.775Z",
			Username: "dicoding",
		}, thread)
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("LEFT JOIN users ON users.id = threads.owner").
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "created_at", "username"}))

		_, err := NewThreadDBRepository(db).GetThreadByID(context.TODO(), "thread-404")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestThread_FetchIDs(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT `id` FROM `threads` WHERE id > \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("thread-a").AddRow("thread-b"))

	ids, err := NewThreadDBRepository(db).FetchIDs(context.TODO(), "", 100)

	require.NoError(t, err)
	assert.Equal(t, []string{"thread-a", "thread-b"}, ids)
}

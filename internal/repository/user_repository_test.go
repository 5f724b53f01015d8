package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketmind/marketmind-backend/internal/model"
)

func TestUserRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Jordan", "jordan@example.com", "$2a$10$hash", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

	repo := &UserRepository{DB: db}
	user := &model.User{
		Name:         "Jordan",
		Email:        "jordan@example.com",
		PasswordHash: "$2a$10$hash",
	}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, 4, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryGetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at"}).
		AddRow(4, "Jordan", "jordan@example.com", "$2a$10$hash", time.Now())
	mock.ExpectQuery("SELECT id, name, email").
		WithArgs("jordan@example.com").
		WillReturnRows(rows)

	repo := &UserRepository{DB: db}
	user, err := repo.GetByEmail(context.Background(), "jordan@example.com")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 4, user.ID)
	assert.Equal(t, "Jordan", user.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryGetByEmailUnknown(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, email").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := &UserRepository{DB: db}
	user, err := repo.GetByEmail(context.Background(), "nobody@example.com")

	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/marketmind/marketmind-backend/internal/errors"
	"github.com/marketmind/marketmind-backend/internal/model"
)

func TestCampaignRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO campaigns").
		WithArgs("EcoBottle", "Consumer goods", "$5000", "millennials", "Instagram",
			82, "Eco-conscious shoppers", "Launch a reel series.", nil, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	repo := &CampaignRepository{DB: db}
	campaign := &model.Campaign{
		Product:            "EcoBottle",
		Industry:           "Consumer goods",
		Cost:               "$5000",
		Audience:           "millennials",
		Platform:           "Instagram",
		SuccessProbability: 82,
		TargetAudience:     "Eco-conscious shoppers",
		Content:            "Launch a reel series.",
	}
	require.NoError(t, repo.Create(context.Background(), campaign))
	assert.Equal(t, 11, campaign.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepositoryGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, product, industry").
		WithArgs(404).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := &CampaignRepository{DB: db}
	_, err = repo.GetByID(context.Background(), 404)

	var notFound *appErrors.ErrCampaignNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 404, notFound.CampaignID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepositoryCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM campaigns`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	repo := &CampaignRepository{DB: db}
	total, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 6, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVesselRepositoryGetDates(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewVesselRepository(db)

	etd := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(columns("id", "vessel_name", "voyage_number", "etd", "closing_reefer")).
		AddRow("V1", "KM Bahari", "024N", etd, nil, true, "alice", "bob", created, created)
	mock.ExpectQuery(`SELECT \* FROM "vessels"`).WillReturnRows(rows)

	vessel, err := repo.Get(context.Background(), "V1")
	require.NoError(t, err)
	assert.Equal(t, "KM Bahari", vessel.Name)
	assert.Equal(t, "024N", vessel.VoyageNumber)
	require.NotNil(t, vessel.ETD)
	assert.Equal(t, "2025-04-02", vessel.ETD.Format(time.DateOnly))
	assert.Nil(t, vessel.ClosingReefer)
	require.NotNil(t, vessel.UpdatedBy)
	assert.Equal(t, "bob", *vessel.UpdatedBy)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDateConversion(t *testing.T) {
	assert.Nil(t, toDate(nil))
	assert.Nil(t, fromDate(nil))

	in := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)
	out := fromDate(toDate(&in))
	require.NotNil(t, out)
	assert.True(t, in.Equal(*out))
}

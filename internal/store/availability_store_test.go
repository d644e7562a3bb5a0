package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-app-server/internal/models"
)

func TestCheckAvailability_DefaultOpen(t *testing.T) {
	db := openTestDB(t)
	clinic := seedClinic(t, db, "Clinica A")
	doctor := seedDoctor(t, db, clinic.ID, "Dra. Souza")

	s := NewAvailabilityStore(db, testLogger())
	available, err := s.CheckAvailability(clinic.ID, doctor.ID, "2024-03-01")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestCheckAvailability_BlockedDate(t *testing.T) {
	db := openTestDB(t)
	clinic := seedClinic(t, db, "Clinica A")
	doctor := seedDoctor(t, db, clinic.ID, "Dra. Souza")

	s := NewAvailabilityStore(db, testLogger())
	inserted, err := s.BlockDates(clinic.ID, doctor.ID, []string{"2024-03-01", "2024-03-02"}, "congresso")
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	available, err := s.CheckAvailability(clinic.ID, doctor.ID, "2024-03-01")
	require.NoError(t, err)
	assert.False(t, available)

	// Other dates and other doctors stay open
	available, err = s.CheckAvailability(clinic.ID, doctor.ID, "2024-03-03")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestCheckAvailability_OldestRowWins(t *testing.T) {
	db := openTestDB(t)
	clinic := seedClinic(t, db, "Clinica A")
	doctor := seedDoctor(t, db, clinic.ID, "Dra. Souza")

	older := models.AvailabilityException{ClinicID: clinic.ID, DoctorID: doctor.ID, Date: "2024-03-01", IsAvailable: false}
	require.NoError(t, db.Create(&older).Error)
	newer := models.AvailabilityException{ClinicID: clinic.ID, DoctorID: doctor.ID, Date: "2024-03-01", IsAvailable: true}
	require.NoError(t, db.Create(&newer).Error)
	// Force a clear created_at ordering regardless of insert timing
	require.NoError(t, db.Model(&newer).Update("created_at", older.CreatedAt.Add(1_000_000_000)).Error)

	s := NewAvailabilityStore(db, testLogger())
	available, err := s.CheckAvailability(clinic.ID, doctor.ID, "2024-03-01")
	require.NoError(t, err)
	assert.False(t, available)
}

func TestBlockDates_SkipsExistingBlocks(t *testing.T) {
	db := openTestDB(t)
	clinic := seedClinic(t, db, "Clinica A")
	doctor := seedDoctor(t, db, clinic.ID, "Dra. Souza")

	s := NewAvailabilityStore(db, testLogger())
	_, err := s.BlockDates(clinic.ID, doctor.ID, []string{"2024-03-01"}, "")
	require.NoError(t, err)

	inserted, err := s.BlockDates(clinic.ID, doctor.ID, []string{"2024-03-01", "2024-03-02"}, "")
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	var count int64
	require.NoError(t, db.Model(&models.AvailabilityException{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestUnblockDates(t *testing.T) {
	db := openTestDB(t)
	clinic := seedClinic(t, db, "Clinica A")
	doctor := seedDoctor(t, db, clinic.ID, "Dra. Souza")

	s := NewAvailabilityStore(db, testLogger())
	_, err := s.BlockDates(clinic.ID, doctor.ID, []string{"2024-03-01", "2024-03-02", "2024-03-03"}, "")
	require.NoError(t, err)

	removed, err := s.UnblockDates(clinic.ID, doctor.ID, []string{"2024-03-01", "2024-03-02"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	available, err := s.CheckAvailability(clinic.ID, doctor.ID, "2024-03-01")
	require.NoError(t, err)
	assert.True(t, available)

	available, err = s.CheckAvailability(clinic.ID, doctor.ID, "2024-03-03")
	require.NoError(t, err)
	assert.False(t, available)
}

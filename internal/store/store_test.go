package store

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"clinic-app-server/internal/models"
)

// openTestDB returns a migrated in-memory sqlite handle scoped to the
// test name so parallel tests do not share state.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	return db
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func seedClinic(t *testing.T, db *gorm.DB, name string) *models.Clinic {
	t.Helper()
	clinic := models.Clinic{Name: name, CNPJ: name + "-cnpj", Active: true}
	require.NoError(t, db.Create(&clinic).Error)
	return &clinic
}

func seedDoctor(t *testing.T, db *gorm.DB, clinicID, name string) *models.User {
	t.Helper()
	doctor := models.User{
		ClinicID: clinicID,
		Email:    name + "@clinica.test",
		FullName: name,
		Role:     models.RoleDoctor,
		Active:   true,
	}
	require.NoError(t, doctor.SetPassword("senha-forte"))
	require.NoError(t, db.Create(&doctor).Error)
	return &doctor
}

func seedPatient(t *testing.T, db *gorm.DB, clinicID, name string) *models.Patient {
	t.Helper()
	patient := models.Patient{ClinicID: clinicID, FullName: name}
	require.NoError(t, db.Create(&patient).Error)
	return &patient
}

// seedAppointment writes straight through the handle, bypassing the
// booking checks, so tests can arrange arbitrary states.
func seedAppointment(t *testing.T, db *gorm.DB, clinicID, patientID, doctorID, date, start string, status models.AppointmentStatus) *models.Appointment {
	t.Helper()
	appointment := models.Appointment{
		ClinicID:        clinicID,
		PatientID:       patientID,
		DoctorID:        doctorID,
		Date:            date,
		StartTime:       start,
		DurationMinutes: 30,
		Status:          status,
		Type:            models.TypeConsultation,
	}
	require.NoError(t, db.Create(&appointment).Error)
	return &appointment
}

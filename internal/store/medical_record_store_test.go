package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/scheduling"
)

func TestCreateFinalRecord_CompletesAppointment(t *testing.T) {
	db := openTestDB(t)
	clinic := seedClinic(t, db, "Clinica A")
	doctor := seedDoctor(t, db, clinic.ID, "Dra. Souza")
	patient := seedPatient(t, db, clinic.ID, "João Lima")
	appointment := seedAppointment(t, db, clinic.ID, patient.ID, doctor.ID, "2024-01-10", "09:00", models.StatusInProgress)

	s := NewMedicalRecordStore(db, testLogger())
	record := models.MedicalRecord{
		ClinicID:      clinic.ID,
		PatientID:     patient.ID,
		DoctorID:      doctor.ID,
		AppointmentID: appointment.ID,
		Status:        models.RecordFinal,
		Diagnosis:     "rinite alérgica",
	}
	require.NoError(t, s.Create(&record))

	var reloaded models.Appointment
	require.NoError(t, db.First(&reloaded, "id = ?", appointment.ID).Error)
	assert.Equal(t, models.StatusCompleted, reloaded.Status)
}

func TestCreateFinalRecord_IllegalCascadeRollsBack(t *testing.T) {
	db := openTestDB(t)
	clinic := seedClinic(t, db, "Clinica A")
	doctor := seedDoctor(t, db, clinic.ID, "Dra. Souza")
	patient := seedPatient(t, db, clinic.ID, "João Lima")
	appointment := seedAppointment(t, db, clinic.ID, patient.ID, doctor.ID, "2024-01-10", "09:00", models.StatusScheduled)

	s := NewMedicalRecordStore(db, testLogger())
	record := models.MedicalRecord{
		ClinicID:      clinic.ID,
		PatientID:     patient.ID,
		DoctorID:      doctor.ID,
		AppointmentID: appointment.ID,
		Status:        models.RecordFinal,
	}
	assert.ErrorIs(t, s.Create(&record), scheduling.ErrInvalidTransition)

	// Both writes rolled back: no record row, appointment untouched
	var count int64
	require.NoError(t, db.Model(&models.MedicalRecord{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	var reloaded models.Appointment
	require.NoError(t, db.First(&reloaded, "id = ?", appointment.ID).Error)
	assert.Equal(t, models.StatusScheduled, reloaded.Status)
}

func TestCreateDraftRecord_NoCascade(t *testing.T) {
	db := openTestDB(t)
	clinic := seedClinic(t, db, "Clinica A")
	doctor := seedDoctor(t, db, clinic.ID, "Dra. Souza")
	patient := seedPatient(t, db, clinic.ID, "João Lima")
	appointment := seedAppointment(t, db, clinic.ID, patient.ID, doctor.ID, "2024-01-10", "09:00", models.StatusArrived)

	s := NewMedicalRecordStore(db, testLogger())
	record := models.MedicalRecord{
		ClinicID:      clinic.ID,
		PatientID:     patient.ID,
		DoctorID:      doctor.ID,
		AppointmentID: appointment.ID,
		Status:        models.RecordDraft,
	}
	require.NoError(t, s.Create(&record))

	var reloaded models.Appointment
	require.NoError(t, db.First(&reloaded, "id = ?", appointment.ID).Error)
	assert.Equal(t, models.StatusArrived, reloaded.Status)
}

func TestUpdate_FinalizeCascades(t *testing.T) {
	db := openTestDB(t)
	clinic := seedClinic(t, db, "Clinica A")
	doctor := seedDoctor(t, db, clinic.ID, "Dra. Souza")
	patient := seedPatient(t, db, clinic.ID, "João Lima")
	appointment := seedAppointment(t, db, clinic.ID, patient.ID, doctor.ID, "2024-01-10", "09:00", models.StatusArrived)

	s := NewMedicalRecordStore(db, testLogger())
	record := models.MedicalRecord{
		ClinicID:      clinic.ID,
		PatientID:     patient.ID,
		DoctorID:      doctor.ID,
		AppointmentID: appointment.ID,
		Status:        models.RecordDraft,
	}
	require.NoError(t, s.Create(&record))

	_, err := s.Update(record.ID, map[string]interface{}{
		"status":    string(models.RecordFinal),
		"diagnosis": "amigdalite",
	})
	require.NoError(t, err)

	var reloaded models.Appointment
	require.NoError(t, db.First(&reloaded, "id = ?", appointment.ID).Error)
	assert.Equal(t, models.StatusCompleted, reloaded.Status)
}

func TestUpdate_FinalizedRecordIsImmutable(t *testing.T) {
	db := openTestDB(t)
	clinic := seedClinic(t, db, "Clinica A")
	doctor := seedDoctor(t, db, clinic.ID, "Dra. Souza")
	patient := seedPatient(t, db, clinic.ID, "João Lima")

	s := NewMedicalRecordStore(db, testLogger())
	record := models.MedicalRecord{
		ClinicID:  clinic.ID,
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Status:    models.RecordFinal,
	}
	require.NoError(t, s.Create(&record))

	_, err := s.Update(record.ID, map[string]interface{}{"diagnosis": "outro"})
	assert.ErrorIs(t, err, ErrRecordFinal)

	_, err = s.UpdateVitals(record.ID, models.Vitals{HeartRate: 80})
	assert.ErrorIs(t, err, ErrRecordFinal)
}

func TestUpdateVitals(t *testing.T) {
	db := openTestDB(t)
	clinic := seedClinic(t, db, "Clinica A")
	doctor := seedDoctor(t, db, clinic.ID, "Dra. Souza")
	patient := seedPatient(t, db, clinic.ID, "João Lima")

	s := NewMedicalRecordStore(db, testLogger())
	record := models.MedicalRecord{
		ClinicID:  clinic.ID,
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Status:    models.RecordDraft,
	}
	require.NoError(t, s.Create(&record))

	updated, err := s.UpdateVitals(record.ID, models.Vitals{
		SystolicBP:  120,
		DiastolicBP: 80,
		HeartRate:   72,
		TempDeciC:   368,
		SpO2:        98,
		WeightGrams: 72500,
	})
	require.NoError(t, err)
	assert.Equal(t, 120, updated.Vitals.SystolicBP)
	assert.Equal(t, 368, updated.Vitals.TempDeciC)
	assert.Equal(t, 72500, updated.Vitals.WeightGrams)
}

func TestListByPatient_NewestFirstAndClinicScoped(t *testing.T) {
	db := openTestDB(t)
	clinicA := seedClinic(t, db, "Clinica A")
	clinicB := seedClinic(t, db, "Clinica B")
	doctor := seedDoctor(t, db, clinicA.ID, "Dra. Souza")
	patient := seedPatient(t, db, clinicA.ID, "João Lima")

	s := NewMedicalRecordStore(db, testLogger())
	first := models.MedicalRecord{ClinicID: clinicA.ID, PatientID: patient.ID, DoctorID: doctor.ID, Diagnosis: "primeira"}
	require.NoError(t, s.Create(&first))
	second := models.MedicalRecord{ClinicID: clinicA.ID, PatientID: patient.ID, DoctorID: doctor.ID, Diagnosis: "segunda"}
	require.NoError(t, s.Create(&second))
	require.NoError(t, db.Model(&second).Update("created_at", first.CreatedAt.Add(1_000_000_000)).Error)
	other := models.MedicalRecord{ClinicID: clinicB.ID, PatientID: patient.ID, DoctorID: doctor.ID}
	require.NoError(t, s.Create(&other))

	records, err := s.ListByPatient(clinicA.ID, patient.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "segunda", records[0].Diagnosis)
}

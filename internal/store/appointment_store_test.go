package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/scheduling"
)

func TestList_ExcludesCanceled(t *testing.T) {
	db := openTestDB(t)
	clinic := seedClinic(t, db, "Clinica A")
	doctor := seedDoctor(t, db, clinic.ID, "Dra. Souza")
	patient := seedPatient(t, db, clinic.ID, "João Lima")

	seedAppointment(t, db, clinic.ID, patient.ID, doctor.ID, "2024-01-10", "09:00", models.StatusScheduled)
	seedAppointment(t, db, clinic.ID, patient.ID, doctor.ID, "2024-01-10", "10:00", models.StatusCanceled)

	s := NewAppointmentStore(db, testLogger(), true)
	appointments, err := s.List(clinic.ID, AppointmentFilters{})
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, models.StatusScheduled, appointments[0].Status)

	// The exclusion is hard-coded, not a filter option
	appointments, err = s.List(clinic.ID, AppointmentFilters{Status: models.StatusCanceled})
	require.NoError(t, err)
	assert.Empty(t, appointments)
}

func TestList_DateRangeInclusiveAndOrdered(t *testing.T) {
	db := openTestDB(t)
	clinic := seedClinic(t, db, "Clinica A")
	doctor := seedDoctor(t, db, clinic.ID, "Dra. Souza")
	patient := seedPatient(t, db, clinic.ID, "João Lima")

	seedAppointment(t, db, clinic.ID, patient.ID, doctor.ID, "2023-12-31", "09:00", models.StatusScheduled)
	seedAppointment(t, db, clinic.ID, patient.ID, doctor.ID, "2024-01-01", "08:00", models.StatusScheduled)
	seedAppointment(t, db, clinic.ID, patient.ID, doctor.ID, "2024-01-15", "09:00", models.StatusScheduled)
	seedAppointment(t, db, clinic.ID, patient.ID, doctor.ID, "2024-01-15", "14:00", models.StatusScheduled)
	seedAppointment(t, db, clinic.ID, patient.ID, doctor.ID, "2024-01-31", "10:00", models.StatusScheduled)
	seedAppointment(t, db, clinic.ID, patient.ID, doctor.ID, "2024-02-01", "10:00", models.StatusScheduled)

	s := NewAppointmentStore(db, testLogger(), true)
	appointments, err := s.List(clinic.ID, AppointmentFilters{StartDate: "2024-01-01", EndDate: "2024-01-31"})
	require.NoError(t, err)
	require.Len(t, appointments, 4)

	// Descending by (date, startTime): most recent first
	assert.Equal(t, "2024-01-31", appointments[0].Date)
	assert.Equal(t, "2024-01-15", appointments[1].Date)
	assert.Equal(t, "14:00", appointments[1].StartTime)
	assert.Equal(t, "2024-01-15", appointments[2].Date)
	assert.Equal(t, "09:00", appointments[2].StartTime)
	assert.Equal(t, "2024-01-01", appointments[3].Date)
}

func TestList_FilterByDoctorAndStatus(t *testing.T) {
	db := openTestDB(t)
	clinic := seedClinic(t, db, "Clinica A")
	doctorA := seedDoctor(t, db, clinic.ID, "Dra. Souza")
	doctorB := seedDoctor(t, db, clinic.ID, "Dr. Prado")
	patient := seedPatient(t, db, clinic.ID, "João Lima")

	seedAppointment(t, db, clinic.ID, patient.ID, doctorA.ID, "2024-01-10", "09:00", models.StatusConfirmed)
	seedAppointment(t, db, clinic.ID, patient.ID, doctorB.ID, "2024-01-10", "09:00", models.StatusConfirmed)
	seedAppointment(t, db, clinic.ID, patient.ID, doctorA.ID, "2024-01-10", "11:00", models.StatusScheduled)

	s := NewAppointmentStore(db, testLogger(), true)
	appointments, err := s.List(clinic.ID, AppointmentFilters{DoctorID: doctorA.ID, Status: models.StatusConfirmed})
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, doctorA.ID, appointments[0].DoctorID)
	assert.Equal(t, "09:00", appointments[0].StartTime)
}

func TestCreate_AllowsOverlapByDefault(t *testing.T) {
	db := openTestDB(t)
	clinic := seedClinic(t, db, "Clinica A")
	doctor := seedDoctor(t, db, clinic.ID, "Dra. Souza")
	patient := seedPatient(t, db, clinic.ID, "João Lima")

	s := NewAppointmentStore(db, testLogger(), true)
	for _, start := range []string{"09:00", "14:00", "09:15"} {
		appointment := models.Appointment{
			ClinicID:        clinic.ID,
			PatientID:       patient.ID,
			DoctorID:        doctor.ID,
			Date:            "2024-01-05",
			StartTime:       start,
			DurationMinutes: 30,
			Status:          models.StatusScheduled,
		}
		// Overlapping 09:15 must succeed: double-booking absorbs walk-ins
		require.NoError(t, s.Create(&appointment), "start %s", start)
	}
}

func TestCreate_RejectsOverlapWhenPolicyStrict(t *testing.T) {
	db := openTestDB(t)
	clinic := seedClinic(t, db, "Clinica A")
	doctor := seedDoctor(t, db, clinic.ID, "Dra. Souza")
	patient := seedPatient(t, db, clinic.ID, "João Lima")

	s := NewAppointmentStore(db, testLogger(), false)
	first := models.Appointment{
		ClinicID: clinic.ID, PatientID: patient.ID, DoctorID: doctor.ID,
		Date: "2024-01-05", StartTime: "09:00", DurationMinutes: 30,
		Status: models.StatusScheduled,
	}
	require.NoError(t, s.Create(&first))

	overlapping := models.Appointment{
		ClinicID: clinic.ID, PatientID: patient.ID, DoctorID: doctor.ID,
		Date: "2024-01-05", StartTime: "09:15", DurationMinutes: 30,
		Status: models.StatusScheduled,
	}
	assert.ErrorIs(t, s.Create(&overlapping), ErrSlotTaken)

	// Back-to-back is not an overlap
	adjacent := models.Appointment{
		ClinicID: clinic.ID, PatientID: patient.ID, DoctorID: doctor.ID,
		Date: "2024-01-05", StartTime: "09:30", DurationMinutes: 30,
		Status: models.StatusScheduled,
	}
	assert.NoError(t, s.Create(&adjacent))
}

func TestCreate_RejectsClinicMismatch(t *testing.T) {
	db := openTestDB(t)
	clinicA := seedClinic(t, db, "Clinica A")
	clinicB := seedClinic(t, db, "Clinica B")
	doctor := seedDoctor(t, db, clinicB.ID, "Dra. Souza")
	patient := seedPatient(t, db, clinicA.ID, "João Lima")

	s := NewAppointmentStore(db, testLogger(), true)
	appointment := models.Appointment{
		ClinicID: clinicA.ID, PatientID: patient.ID, DoctorID: doctor.ID,
		Date: "2024-01-05", StartTime: "09:00", DurationMinutes: 30,
		Status: models.StatusScheduled,
	}
	assert.ErrorIs(t, s.Create(&appointment), ErrClinicMismatch)
}

func TestUpdateStatus_CheckInPersistsPaymentAtomically(t *testing.T) {
	db := openTestDB(t)
	clinic := seedClinic(t, db, "Clinica A")
	doctor := seedDoctor(t, db, clinic.ID, "Dra. Souza")
	patient := seedPatient(t, db, clinic.ID, "João Lima")
	appointment := seedAppointment(t, db, clinic.ID, patient.ID, doctor.ID, "2024-01-10", "09:00", models.StatusConfirmed)

	s := NewAppointmentStore(db, testLogger(), true)
	_, err := s.UpdateStatus(appointment.ID, models.StatusArrived, "pix", "pago")
	require.NoError(t, err)

	reloaded, err := s.Get(appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusArrived, reloaded.Status)
	assert.Equal(t, "pix", reloaded.PaymentMethod)
	assert.Equal(t, "pago", reloaded.PaymentStatus)
}

func TestUpdateStatus_RejectsIllegalTransition(t *testing.T) {
	db := openTestDB(t)
	clinic := seedClinic(t, db, "Clinica A")
	doctor := seedDoctor(t, db, clinic.ID, "Dra. Souza")
	patient := seedPatient(t, db, clinic.ID, "João Lima")

	s := NewAppointmentStore(db, testLogger(), true)

	scheduled := seedAppointment(t, db, clinic.ID, patient.ID, doctor.ID, "2024-01-10", "09:00", models.StatusScheduled)
	_, err := s.UpdateStatus(scheduled.ID, models.StatusCompleted, "", "")
	assert.ErrorIs(t, err, scheduling.ErrInvalidTransition)

	completed := seedAppointment(t, db, clinic.ID, patient.ID, doctor.ID, "2024-01-10", "10:00", models.StatusCompleted)
	_, err = s.UpdateStatus(completed.ID, models.StatusScheduled, "", "")
	assert.ErrorIs(t, err, scheduling.ErrInvalidTransition)

	reloaded, err := s.Get(completed.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, reloaded.Status)
}

func TestDelete(t *testing.T) {
	db := openTestDB(t)
	clinic := seedClinic(t, db, "Clinica A")
	doctor := seedDoctor(t, db, clinic.ID, "Dra. Souza")
	patient := seedPatient(t, db, clinic.ID, "João Lima")
	appointment := seedAppointment(t, db, clinic.ID, patient.ID, doctor.ID, "2024-01-10", "09:00", models.StatusScheduled)

	s := NewAppointmentStore(db, testLogger(), true)
	require.NoError(t, s.Delete(appointment.ID))
	assert.ErrorIs(t, s.Delete(appointment.ID), ErrNotFound)

	_, err := s.Get(appointment.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBillingSummary(t *testing.T) {
	db := openTestDB(t)
	clinic := seedClinic(t, db, "Clinica A")
	doctor := seedDoctor(t, db, clinic.ID, "Dra. Souza")
	patient := seedPatient(t, db, clinic.ID, "João Lima")

	paid := seedAppointment(t, db, clinic.ID, patient.ID, doctor.ID, "2024-01-10", "09:00", models.StatusCompleted)
	require.NoError(t, db.Model(paid).Updates(map[string]interface{}{"price_cents": 15000, "payment_status": "pago"}).Error)
	pending := seedAppointment(t, db, clinic.ID, patient.ID, doctor.ID, "2024-01-11", "09:00", models.StatusArrived)
	require.NoError(t, db.Model(pending).Updates(map[string]interface{}{"price_cents": 8000, "payment_status": "pendente"}).Error)
	canceled := seedAppointment(t, db, clinic.ID, patient.ID, doctor.ID, "2024-01-12", "09:00", models.StatusCanceled)
	require.NoError(t, db.Model(canceled).Update("price_cents", 99900).Error)

	s := NewAppointmentStore(db, testLogger(), true)
	summary, err := s.BillingSummary(clinic.ID, "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, int64(23000), summary.TotalCents)
	assert.Equal(t, int64(15000), summary.PaidCents)
	assert.Equal(t, int64(8000), summary.PendingCents)
	assert.Equal(t, 2, summary.Appointments)
	assert.Equal(t, 2, summary.CountByType[models.TypeConsultation])
}

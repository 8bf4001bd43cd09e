package utils

import (
	"errors"
	"log"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/models"
)

// IsValidationError reports whether err came from client-side rule checks,
// as opposed to a record store failure.
func IsValidationError(err error) bool {
	var verrs validation.Errors
	return errors.As(err, &verrs)
}

// ValidateAppointmentDraft checks the scheduling form rules before any
// network call: patient, date and time are mandatory; doctor, type and notes
// are optional; status, when present, must be one of the four known values.
func ValidateAppointmentDraft(draft models.AppointmentDraft) error {
	err := validation.ValidateStruct(&draft,
		validation.Field(&draft.Patient, validation.Required.Error("patient selection is required")),
		validation.Field(&draft.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&draft.Time, validation.Required, validation.Date("15:04")),
		validation.Field(&draft.Status, validation.In(
			models.StatusPending, models.StatusConfirmed, models.StatusCompleted, models.StatusCancelled,
		)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidatePatientCreate checks the required patient create fields.
func ValidatePatientCreate(payload models.CreatePatient) error {
	err := validation.ValidateStruct(&payload,
		validation.Field(&payload.FirstName, validation.Required),
		validation.Field(&payload.LastName, validation.Required),
		validation.Field(&payload.Age, validation.Required, validation.Min(0)),
		validation.Field(&payload.Phone, validation.Required),
		validation.Field(&payload.Email, validation.Required, is.Email),
		validation.Field(&payload.Gender, validation.Required),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateDoctorCreate checks the required doctor create fields.
func ValidateDoctorCreate(payload models.CreateDoctor) error {
	err := validation.ValidateStruct(&payload,
		validation.Field(&payload.UserName, validation.Required),
		validation.Field(&payload.UserEmail, validation.Required, is.Email),
		validation.Field(&payload.Specialization, validation.Required),
		validation.Field(&payload.Phone, validation.Required),
		validation.Field(&payload.Availability, validation.Required),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateInventoryCreate checks the required stock create fields.
func ValidateInventoryCreate(payload models.CreateInventoryItem) error {
	err := validation.ValidateStruct(&payload,
		validation.Field(&payload.SKU, validation.Required),
		validation.Field(&payload.Name, validation.Required),
		validation.Field(&payload.Category, validation.Required),
		validation.Field(&payload.Unit, validation.Required),
		validation.Field(&payload.MinStock, validation.Min(0.0)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

package repositories

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/database"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/models"
)

const doctorsPath = "/api/doctors/"

// DoctorRepository reads and creates doctor records in the record store.
type DoctorRepository struct{}

func NewDoctorRepository() *DoctorRepository {
	return &DoctorRepository{}
}

// GetAll fetches the doctor collection and normalizes every record.
func (r *DoctorRepository) GetAll(ctx context.Context) ([]models.Doctor, error) {
	data, err := database.Store.GetList(ctx, doctorsPath)
	if err != nil {
		return nil, err
	}
	doctors, err := models.DecodeDoctors(data)
	if err != nil {
		return nil, errors.Wrapf(database.ErrFetch, "%v", err)
	}
	return doctors, nil
}

// Create posts a new doctor record and returns the created record body.
func (r *DoctorRepository) Create(ctx context.Context, payload models.CreateDoctor) (json.RawMessage, error) {
	return database.Store.PostJSON(ctx, doctorsPath, payload)
}

package services

import (
	"context"
	"encoding/json"

	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/models"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/repositories"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/utils"
)

type PatientService struct {
	repository *repositories.PatientRepository
}

func NewPatientService(repository *repositories.PatientRepository) *PatientService {
	return &PatientService{repository: repository}
}

func (s *PatientService) GetAll(ctx context.Context) ([]models.Patient, error) {
	return s.repository.GetAll(ctx)
}

func (s *PatientService) Create(ctx context.Context, payload models.CreatePatient) (json.RawMessage, error) {
	if err := utils.ValidatePatientCreate(payload); err != nil {
		return nil, err
	}
	return s.repository.Create(ctx, payload)
}

package services

import (
	"context"
	"encoding/json"

	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/models"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/repositories"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/utils"
)

type DoctorService struct {
	repository *repositories.DoctorRepository
}

func NewDoctorService(repository *repositories.DoctorRepository) *DoctorService {
	return &DoctorService{repository: repository}
}

func (s *DoctorService) GetAll(ctx context.Context) ([]models.Doctor, error) {
	return s.repository.GetAll(ctx)
}

func (s *DoctorService) Create(ctx context.Context, payload models.CreateDoctor) (json.RawMessage, error) {
	if err := utils.ValidateDoctorCreate(payload); err != nil {
		return nil, err
	}
	return s.repository.Create(ctx, payload)
}

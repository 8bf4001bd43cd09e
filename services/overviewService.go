package services

import (
	"context"
	"log"

	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/repositories"
)

// Overview carries the dashboard landing-page aggregates. A collection that
// failed to fetch counts as zero and is listed under Degraded.
type Overview struct {
	Patients             int            `json:"patients"`
	Doctors              int            `json:"doctors"`
	Appointments         int            `json:"appointments"`
	InventoryItems       int            `json:"inventory_items"`
	AppointmentsByStatus map[string]int `json:"appointments_by_status"`
	StockSummary         LevelSummary   `json:"stock_summary"`
	Degraded             []string       `json:"degraded,omitempty"`
}

type OverviewService struct {
	patients     *repositories.PatientRepository
	doctors      *repositories.DoctorRepository
	appointments *repositories.AppointmentRepository
	inventory    *repositories.InventoryRepository
}

func NewOverviewService(
	patients *repositories.PatientRepository,
	doctors *repositories.DoctorRepository,
	appointments *repositories.AppointmentRepository,
	inventory *repositories.InventoryRepository,
) *OverviewService {
	return &OverviewService{
		patients:     patients,
		doctors:      doctors,
		appointments: appointments,
		inventory:    inventory,
	}
}

// Build assembles the overview from fresh reads of all four collections.
func (s *OverviewService) Build(ctx context.Context) Overview {
	overview := Overview{AppointmentsByStatus: map[string]int{}}

	patients, err := s.patients.GetAll(ctx)
	if err != nil {
		log.Printf("Overview fetch for patients failed: %v", err)
		overview.Degraded = append(overview.Degraded, "patients")
	}
	overview.Patients = len(patients)

	doctors, err := s.doctors.GetAll(ctx)
	if err != nil {
		log.Printf("Overview fetch for doctors failed: %v", err)
		overview.Degraded = append(overview.Degraded, "doctors")
	}
	overview.Doctors = len(doctors)

	appointments, err := s.appointments.GetAll(ctx)
	if err != nil {
		log.Printf("Overview fetch for appointments failed: %v", err)
		overview.Degraded = append(overview.Degraded, "appointments")
	}
	overview.Appointments = len(appointments)
	overview.AppointmentsByStatus = CountByStatus(appointments)

	items, err := s.inventory.GetAll(ctx)
	if err != nil {
		log.Printf("Overview fetch for inventory failed: %v", err)
		overview.Degraded = append(overview.Degraded, "inventory")
	}
	overview.InventoryItems = len(items)
	overview.StockSummary = SummarizeLevels(StockLevels(items))

	return overview
}

package models

// Patient is the uniform patient shape used by the dashboard views.
type Patient struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
}

// Doctor is the uniform doctor shape used by the dashboard views.
type Doctor struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	Specialty   string `json:"specialty,omitempty"`
}

// Appointment statuses accepted by the scheduling views. Anything else is
// rejected before it reaches the record store.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the four appointment statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment is the uniform appointment shape used by the scheduling view.
// Date is an ISO calendar date (YYYY-MM-DD) and Time a zero-padded 24-hour
// wall clock (HH:MM), so lexicographic order on Time matches clock order.
type Appointment struct {
	ID         int64  `json:"id"`
	PatientRef int64  `json:"patient"`
	DoctorRef  *int64 `json:"doctor,omitempty"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
	Type       string `json:"type,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// InventoryItem is the uniform stock record shape used by the inventory view.
type InventoryItem struct {
	ID         int64   `json:"id"`
	SKU        string  `json:"sku"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Uses       string  `json:"uses,omitempty"`
	Stock      float64 `json:"stock"`
	MinStock   float64 `json:"min_stock"`
	Unit       string  `json:"unit"`
	ExpiryDate string  `json:"expiry_date,omitempty"`
	LowStock   bool    `json:"low_stock"`
}

// AppointmentDraft carries the scheduling form fields before validation.
// Patient, Date and Time are mandatory; everything else is optional.
type AppointmentDraft struct {
	Patient int64  `json:"patient"`
	Doctor  *int64 `json:"doctor,omitempty"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Type    string `json:"type,omitempty"`
	Status  string `json:"status,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// CreateAppointment is the wire shape the appointment collection expects.
type CreateAppointment struct {
	Patient     int64  `json:"patient"`
	Doctor      *int64 `json:"doctor"`
	ScheduledAt string `json:"scheduled_at"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Reason      string `json:"reason"`
}

// CreatePatient is the wire shape the patient collection expects.
type CreatePatient struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Gender    string `json:"gender"`
}

// CreateDoctor is the wire shape the doctor collection expects.
type CreateDoctor struct {
	UserName       string  `json:"user_name"`
	UserEmail      string  `json:"user_email"`
	Specialization string  `json:"specialization"`
	Experience     int     `json:"experience"`
	Phone          string  `json:"phone"`
	Availability   string  `json:"availability"`
	Patients       int     `json:"patients"`
	Rating         float64 `json:"rating"`
}

// CreateInventoryItem is the wire shape the inventory collection expects.
type CreateInventoryItem struct {
	SKU        string  `json:"sku"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Uses       string  `json:"uses"`
	Stock      float64 `json:"stock"`
	MinStock   float64 `json:"min_stock"`
	Unit       string  `json:"unit"`
	ExpiryDate string  `json:"expiry_date"`
}

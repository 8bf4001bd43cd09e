package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// The record store does not return a uniform shape across collections:
// patients may carry a single "name" or split "first_name"/"last_name",
// doctors may carry "name" directly or a nested user object. Each collection
// gets an explicit decode function that either produces normalized records
// or fails with a parse error; the name fallback itself never fails.

type rawPatient struct {
	ID        json.Number     `json:"id"`
	Name      json.RawMessage `json:"name"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
}

type rawDoctorUser struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type rawDoctor struct {
	ID             json.Number     `json:"id"`
	Name           json.RawMessage `json:"name"`
	Specialization string          `json:"specialization"`
	User           *rawDoctorUser  `json:"user"`
}

type rawAppointment struct {
	ID          json.Number `json:"id"`
	Patient     json.Number `json:"patient"`
	Doctor      *int64      `json:"doctor"`
	ScheduledAt string      `json:"scheduled_at"`
	Type        string      `json:"type"`
	Status      string      `json:"status"`
	Reason      string      `json:"reason"`
}

type rawInventoryItem struct {
	ID         json.Number `json:"id"`
	SKU        string      `json:"sku"`
	Name       string      `json:"name"`
	Category   string      `json:"category"`
	Uses       string      `json:"uses"`
	Stock      float64     `json:"stock"`
	MinStock   float64     `json:"min_stock"`
	Unit       string      `json:"unit"`
	ExpiryDate string      `json:"expiry_date"`
}

// DecodePatients parses a patient collection payload into normalized records.
func DecodePatients(data []byte) ([]Patient, error) {
	var raws []rawPatient
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parse patient list: %w", err)
	}
	patients := make([]Patient, 0, len(raws))
	for _, raw := range raws {
		id, err := raw.ID.Int64()
		if err != nil {
			return nil, fmt.Errorf("parse patient id %q: %w", raw.ID.String(), err)
		}
		patients = append(patients, Patient{ID: id, DisplayName: patientDisplayName(raw)})
	}
	return patients, nil
}

// DecodeDoctors parses a doctor collection payload into normalized records.
func DecodeDoctors(data []byte) ([]Doctor, error) {
	var raws []rawDoctor
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parse doctor list: %w", err)
	}
	doctors := make([]Doctor, 0, len(raws))
	for _, raw := range raws {
		id, err := raw.ID.Int64()
		if err != nil {
			return nil, fmt.Errorf("parse doctor id %q: %w", raw.ID.String(), err)
		}
		doctors = append(doctors, Doctor{
			ID:          id,
			DisplayName: doctorDisplayName(raw, id),
			Specialty:   raw.Specialization,
		})
	}
	return doctors, nil
}

// DecodeAppointments parses an appointment collection payload. The upstream
// scheduled_at timestamp ("<date>T<time>") is split into the Date and Time
// fields, with Time normalized to a zero-padded 24-hour clock.
func DecodeAppointments(data []byte) ([]Appointment, error) {
	var raws []rawAppointment
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parse appointment list: %w", err)
	}
	appointments := make([]Appointment, 0, len(raws))
	for _, raw := range raws {
		id, err := raw.ID.Int64()
		if err != nil {
			return nil, fmt.Errorf("parse appointment id %q: %w", raw.ID.String(), err)
		}
		patient, err := raw.Patient.Int64()
		if err != nil {
			return nil, fmt.Errorf("parse appointment %d patient ref %q: %w", id, raw.Patient.String(), err)
		}
		date, clock := SplitSchedule(raw.ScheduledAt)
		appointments = append(appointments, Appointment{
			ID:         id,
			PatientRef: patient,
			DoctorRef:  raw.Doctor,
			Date:       date,
			Time:       clock,
			Status:     raw.Status,
			Type:       raw.Type,
			Notes:      raw.Reason,
		})
	}
	return appointments, nil
}

// DecodeInventory parses an inventory collection payload, marking items whose
// stock sits below their minimum.
func DecodeInventory(data []byte) ([]InventoryItem, error) {
	var raws []rawInventoryItem
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parse inventory list: %w", err)
	}
	items := make([]InventoryItem, 0, len(raws))
	for _, raw := range raws {
		id, err := raw.ID.Int64()
		if err != nil {
			return nil, fmt.Errorf("parse inventory id %q: %w", raw.ID.String(), err)
		}
		items = append(items, InventoryItem{
			ID:         id,
			SKU:        raw.SKU,
			Name:       raw.Name,
			Category:   raw.Category,
			Uses:       raw.Uses,
			Stock:      raw.Stock,
			MinStock:   raw.MinStock,
			Unit:       raw.Unit,
			ExpiryDate: raw.ExpiryDate,
			LowStock:   raw.Stock < raw.MinStock,
		})
	}
	return items, nil
}

func patientDisplayName(raw rawPatient) string {
	if name, ok := stringField(raw.Name); ok {
		return name
	}
	return joinName(raw.FirstName, raw.LastName)
}

func doctorDisplayName(raw rawDoctor, id int64) string {
	if name, ok := stringField(raw.Name); ok {
		return name
	}
	if raw.User != nil {
		if joined := joinName(raw.User.FirstName, raw.User.LastName); joined != "" {
			return joined
		}
	}
	return fmt.Sprintf("Doctor %d", id)
}

// stringField reports whether a loosely-typed JSON field holds a string.
func stringField(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// SplitSchedule breaks a "<date>T<time>" timestamp into its calendar date and
// normalized wall clock. Either half may come back empty when the separator
// is missing.
func SplitSchedule(scheduledAt string) (string, string) {
	date, clock, found := strings.Cut(scheduledAt, "T")
	if !found {
		date, clock, found = strings.Cut(scheduledAt, " ")
		if !found {
			return scheduledAt, ""
		}
	}
	return date, NormalizeClock(clock)
}

var clockLayouts = []string{"15:04", "15:04:05", "3:04 PM", "03:04 PM", "3:04PM"}

// NormalizeClock rewrites a wall-clock string to zero-padded 24-hour "HH:MM"
// so that lexicographic comparison matches clock order. Strings that match no
// known layout are kept verbatim.
func NormalizeClock(clock string) string {
	trimmed := strings.TrimSpace(clock)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("15:04")
		}
	}
	return trimmed
}

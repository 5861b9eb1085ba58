package domain

import (
	"unicode/utf8"

	"github.com/Apurer/petstore-api/internal/shared/failure"
)

// Status represents the lifecycle state of a pet inside the store catalog.
// Pets may carry any status string; only lookups by status are restricted to the known values.
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusSold      Status = "sold"
)

// MaxFieldLength bounds name, category and status, counted in characters.
const MaxFieldLength = 100

var (
	ErrMissingName     = failure.MissingField("name")
	ErrMissingCategory = failure.MissingField("category")
	ErrMissingStatus   = failure.MissingField("status")

	ErrNameTooLong     = failure.FieldTooLong("Name")
	ErrCategoryTooLong = failure.FieldTooLong("Category")
	ErrStatusTooLong   = failure.FieldTooLong("Status")

	ErrDuplicatePet = failure.New(failure.KindDuplicatePet, "Pet with the same name and category already exists")

	ErrStatusParameterMissing = failure.New(failure.KindMissingParameter, "Status parameter is missing")
	ErrStatusParameterInvalid = failure.New(failure.KindInvalidParameter, "Status parameter is invalid; should be available, pending, or sold")

	ErrNoFilePart     = failure.New(failure.KindMissingFilePart, "No file part")
	ErrNoSelectedFile = failure.New(failure.KindEmptyFilename, "No selected file")
)

// Pet is the aggregate managed by the pets bounded context.
type Pet struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Status   Status `json:"status"`
}

// NewPet validates field lengths in name, category, status order and builds an unsaved pet.
func NewPet(name, category, status string) (*Pet, error) {
	pet := &Pet{}
	if err := pet.Rename(name); err != nil {
		return nil, err
	}
	if err := pet.Recategorize(category); err != nil {
		return nil, err
	}
	if err := pet.UpdateStatus(Status(status)); err != nil {
		return nil, err
	}
	return pet, nil
}

// Rename replaces the pet name.
func (p *Pet) Rename(name string) error {
	if tooLong(name) {
		return ErrNameTooLong
	}
	p.Name = name
	return nil
}

// Recategorize replaces the pet category.
func (p *Pet) Recategorize(category string) error {
	if tooLong(category) {
		return ErrCategoryTooLong
	}
	p.Category = category
	return nil
}

// UpdateStatus replaces the pet status without restricting it to the known values.
func (p *Pet) UpdateStatus(status Status) error {
	if tooLong(string(status)) {
		return ErrStatusTooLong
	}
	p.Status = status
	return nil
}

// SameIdentity reports whether the pet collides with the given (name, category) pair.
func (p *Pet) SameIdentity(name, category string) bool {
	return p != nil && p.Name == name && p.Category == category
}

// Clone returns a detached copy.
func (p *Pet) Clone() *Pet {
	if p == nil {
		return nil
	}
	out := *p
	return &out
}

// ParseStatusFilter validates a status query parameter.
func ParseStatusFilter(raw string) (Status, error) {
	if raw == "" {
		return "", ErrStatusParameterMissing
	}
	switch status := Status(raw); status {
	case StatusAvailable, StatusPending, StatusSold:
		return status, nil
	default:
		return "", ErrStatusParameterInvalid
	}
}

func tooLong(value string) bool {
	return utf8.RuneCountInString(value) > MaxFieldLength
}

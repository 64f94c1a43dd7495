package model

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blooddrive-backend/internal/shared/utils"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// RegisterDonorRequest is one donor submission from the public form.
type RegisterDonorRequest struct {
	FullName   string `json:"fullName"`
	BloodGroup string `json:"bloodGroup"`
	Age        int    `json:"age"`
	Year       string `json:"year"`
}

// Normalize collapses whitespace in the submitted name before validation.
func (r *RegisterDonorRequest) Normalize() {
	r.FullName = utils.NormalizeName(r.FullName)
	r.BloodGroup = strings.TrimSpace(r.BloodGroup)
	r.Year = strings.TrimSpace(r.Year)
}

func (r RegisterDonorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName,
			validation.Required.Error("full name is required"),
			validation.By(validTrimmedName),
		),
		validation.Field(&r.BloodGroup,
			validation.Required.Error("blood group is required"),
			validation.In(toValues(BloodGroups)...).
				Error("blood group must be one of A+, A-, B+, B-, AB+, AB-, O+, O-"),
		),
		validation.Field(&r.Age,
			validation.Required.Error("age is required"),
			validation.Min(MinAge).Error("age must be at least 18"),
			validation.Max(MaxAge).Error("age must not exceed 65"),
		),
		validation.Field(&r.Year,
			validation.Required.Error("year is required"),
			validation.In(toValues(AcademicYears)...).
				Error("year must be one of FY, SY, TY, Final Year"),
		),
	)
}

func validTrimmedName(value interface{}) error {
	name, _ := value.(string)
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < MinNameLength {
		return errors.New("full name must be at least 2 characters")
	}
	if len(trimmed) > MaxNameLength {
		return errors.New("full name must not exceed 120 characters")
	}
	return nil
}

func toValues(set []string) []interface{} {
	values := make([]interface{}, len(set))
	for i, v := range set {
		values[i] = v
	}
	return values
}

// ListRecentRequest carries the query parameters of the donors listing.
type ListRecentRequest struct {
	Limit int `form:"limit"`
}

func (r *ListRecentRequest) Validate() error {
	if r.Limit <= 0 {
		r.Limit = DefaultRecentLimit
	}
	if r.Limit > MaxRecentLimit {
		r.Limit = MaxRecentLimit
	}
	return nil
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// RegisteredDonor is the public slice of a donor returned on registration.
type RegisteredDonor struct {
	FullName   string `json:"fullName"`
	BloodGroup string `json:"bloodGroup"`
}

// RegistrationResponse is the payload of a successful registration.
type RegistrationResponse struct {
	Donor      RegisteredDonor `json:"donor"`
	TotalUnits int64           `json:"totalUnits"`
}

// RecentDonorResponse is one entry in the recent-donors feed. Age and year
// are deliberately not exposed here.
type RecentDonorResponse struct {
	FullName   string    `json:"fullName"`
	BloodGroup string    `json:"bloodGroup"`
	DonatedAt  time.Time `json:"donatedAt"`
}

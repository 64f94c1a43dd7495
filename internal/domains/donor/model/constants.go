package model

const (
	// Eligibility
	MinAge = 18
	MaxAge = 65

	// Name length after trimming surrounding whitespace
	MinNameLength = 2
	MaxNameLength = 120

	// Recent-donors listing
	DefaultRecentLimit = 10
	MaxRecentLimit     = 100
)

// BloodGroups is the closed set of accepted blood groups.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// AcademicYears is the closed set of accepted year-of-study values.
var AcademicYears = []string{"FY", "SY", "TY", "Final Year"}

// IsValidBloodGroup reports whether g is in the accepted set.
func IsValidBloodGroup(g string) bool {
	for _, v := range BloodGroups {
		if v == g {
			return true
		}
	}
	return false
}

// IsValidAcademicYear reports whether y is in the accepted set.
func IsValidAcademicYear(y string) bool {
	for _, v := range AcademicYears {
		if v == y {
			return true
		}
	}
	return false
}

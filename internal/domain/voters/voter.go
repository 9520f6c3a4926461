package voters

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/pagination"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"
)

// MaxSearchResults caps a public voter search
const MaxSearchResults = 50

// Voter is an electoral roll entry
type Voter struct {
	ID            string     `json:"id" validate:"required,uuid4"`
	VoterNumber   string     `json:"voter_number" validate:"required,numeric,min=6,max=20"`
	NameEn        string     `json:"name_en" validate:"required_without=NameBn,max=120"`
	NameBn        string     `json:"name_bn" validate:"required_without=NameEn,max=120"`
	FatherName    string     `json:"father_name" validate:"max=120"`
	MotherName    string     `json:"mother_name" validate:"max=120"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	Gender        string     `json:"gender" validate:"omitempty,oneof=male female other"`
	Ward          string     `json:"ward" validate:"max=20"`
	Union         string     `json:"union" validate:"max=120"`
	PollingCenter string     `json:"polling_center" validate:"max=255"`
	Address       string     `json:"address" validate:"max=500"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Validate for validating Voter struct
func (v *Voter) Validate() error {
	return validators.ValidateStruct(v)
}

// SearchQuery is a public voter lookup: an exact voter number, or a name
// substring with an optional ward
type SearchQuery struct {
	VoterNumber string `validate:"omitempty,numeric,max=20"`
	Name        string `validate:"omitempty,min=2,max=120"`
	Ward        string `validate:"max=20"`
}

// Validate for validating SearchQuery struct
func (q *SearchQuery) Validate() error {
	if q.VoterNumber == "" && q.Name == "" {
		return apperr.Validation("voter_number or name is required")
	}
	return validators.ValidateStruct(q)
}

// VoterQuery filters the admin voter listing
type VoterQuery struct {
	pagination.Params
	Ward  string `validate:"max=20"`
	Union string `validate:"max=120"`
}

// NewVoterQuery creates a VoterQuery with default pagination
func NewVoterQuery() *VoterQuery {
	return &VoterQuery{Params: pagination.New(0, 0)}
}

// Validate for validating VoterQuery struct
func (q *VoterQuery) Validate() error {
	return validators.ValidateStruct(q)
}

// ImportResult summarizes a bulk import
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

package module

import (
	"fmt"
	"time"

	"profrate/internal/apperr"
)

var (
	ErrModuleNotFound   = apperr.NotFound("module not found")
	ErrInstanceNotFound = apperr.NotFound("module instance not found")
	ErrDuplicateCode    = apperr.Conflict("a module with this code already exists").WithCode("MODULE_EXISTS")
	ErrDuplicateOffer   = apperr.Conflict("this module is already offered in that year and semester").WithCode("INSTANCE_EXISTS")
	ErrProfessorMissing = apperr.NotFound("professor not found")
)

const (
	MinYear       = 2000
	MaxYear       = 2100
	MaxCodeLength = 10
	DefaultCredit = 20
)

type Semester int

const (
	SemesterOne Semester = 1
	SemesterTwo Semester = 2
)

func (s Semester) Valid() bool {
	return s == SemesterOne || s == SemesterTwo
}

func (s Semester) String() string {
	switch s {
	case SemesterOne:
		return "Semester One"
	case SemesterTwo:
		return "Semester Two"
	}
	return fmt.Sprintf("Semester(%d)", int(s))
}

type Module struct {
	ID          int64     `json:"id"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Credits     int       `json:"credits"`
	CreatedAt   time.Time `json:"created_at"`
}

// Teacher is the professor summary carried on an instance.
type Teacher struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// Instance is one offering of a module in a given academic year and semester.
type Instance struct {
	ID          int64     `json:"id"`
	ModuleID    int64     `json:"module_id"`
	ModuleCode  string    `json:"module_code"`
	ModuleTitle string    `json:"module_title"`
	Year        int       `json:"year"`
	Semester    Semester  `json:"semester"`
	Professors  []Teacher `json:"professors"`
}

func (i Instance) TaughtBy(professorID int64) bool {
	for _, t := range i.Professors {
		if t.ID == professorID {
			return true
		}
	}
	return false
}

// Label renders the instance the way listings show it,
// e.g. "CS101: Programming (2023/2024, Semester One)".
func (i Instance) Label() string {
	return fmt.Sprintf("%s: %s (%d/%d, %s)", i.ModuleCode, i.ModuleTitle, i.Year, i.Year+1, i.Semester)
}

// ListQuery filters and paginates instance listings. Zero values mean "any".
type ListQuery struct {
	ModuleCode string
	Year       int
	Semester   Semester
	Limit      int
	Offset     int
}

// Package rating holds the rating upsert and aggregation services.
package rating

import (
	"errors"
	"time"

	"profrate/internal/apperr"
)

const (
	MinScore = 1
	MaxScore = 5
)

var (
	ErrNotFound          = apperr.NotFound("rating not found")
	ErrInvalidScore      = apperr.Validation("score must be an integer between 1 and 5").WithCode("INVALID_SCORE")
	ErrNotAssigned       = apperr.Validation("professor is not assigned to this module instance").WithCode("PROFESSOR_NOT_ASSIGNED")
	ErrNotTeachingModule = apperr.Conflict("professor does not teach this module").WithCode("PROFESSOR_NOT_TEACHING")
	ErrConcurrentWrite   = apperr.Constraint("rating was written concurrently, please retry")

	// ErrDuplicate is returned by Repository.Insert when the (user, professor,
	// module instance) key already exists. It aborts the enclosing transaction.
	ErrDuplicate = errors.New("rating already exists for this key")

	// ErrWriteConflict is returned by Repository.WithinTx when the store
	// aborted the transaction because of a concurrent writer.
	ErrWriteConflict = errors.New("rating transaction conflicted with a concurrent writer")
)

const NoRatingsMessage = "No ratings yet"

type Rating struct {
	ID               int64     `json:"id"`
	UserID           string    `json:"user_id"`
	ProfessorID      int64     `json:"professor_id"`
	ModuleInstanceID int64     `json:"module_instance_id"`
	Score            int       `json:"score"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Key is the uniqueness key of a rating.
type Key struct {
	UserID           string
	ProfessorID      int64
	ModuleInstanceID int64
}

func (r Rating) Key() Key {
	return Key{UserID: r.UserID, ProfessorID: r.ProfessorID, ModuleInstanceID: r.ModuleInstanceID}
}

type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeUpdated Outcome = "updated"
)

// Stats is the raw aggregate over a set of ratings.
type Stats struct {
	Sum   int64
	Count int64
}

// Average is the mean score rounded half-up to a whole star, or 0 when there
// are no ratings. Integer arithmetic keeps 4.5 from drifting below the tie.
func (s Stats) Average() int {
	if s.Count <= 0 {
		return 0
	}
	return int((2*s.Sum + s.Count) / (2 * s.Count))
}

// ProfessorAverage is one row of the professor ratings overview.
type ProfessorAverage struct {
	ProfessorID   int64  `json:"professor_id"`
	ProfessorName string `json:"professor_name"`
	Department    string `json:"department"`
	AverageRating int    `json:"average_rating"`
	TotalRatings  int64  `json:"total_ratings"`
}

// ModuleAverage is a professor's average across every instance of one module
// they teach.
type ModuleAverage struct {
	ProfessorID   int64  `json:"professor_id"`
	ProfessorName string `json:"professor_name"`
	ModuleCode    string `json:"module_code"`
	ModuleTitle   string `json:"module_title"`
	AverageRating int    `json:"average_rating"`
	TotalRatings  int64  `json:"total_ratings"`
	HasRatings    bool   `json:"has_ratings"`
	Message       string `json:"message,omitempty"`
}

// Entry is a caller's own rating with display names resolved.
type Entry struct {
	Rating
	ProfessorName string `json:"professor_name"`
	InstanceLabel string `json:"module_instance"`
}

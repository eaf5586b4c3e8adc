package entity

import (
	"time"
)

type MPARating string

const (
	MPARatingG    MPARating = "G"
	MPARatingPG   MPARating = "PG"
	MPARatingPG13 MPARating = "PG-13"
	MPARatingR    MPARating = "R"
	MPARatingNC17 MPARating = "NC-17"
)

// EarliestReleaseDate is the premiere date of the first public film screening.
// No film may be released before it.
var EarliestReleaseDate = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

type Film struct {
	ID          int64
	Name        string
	Description *string
	ReleaseDate time.Time
	Duration    int
	Genres      []string
	MPA         *MPARating
}

// UniqueKey is the business key tracked by the film uniqueness index.
func (f *Film) UniqueKey() string {
	return f.Name
}

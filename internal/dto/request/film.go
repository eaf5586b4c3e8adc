package request

type FilmRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=200"`
	ReleaseDate string   `json:"releaseDate" validate:"required,datetime=2006-01-02"`
	Duration    int      `json:"duration" validate:"required,min=1"`
	Genres      []string `json:"genres,omitempty"`
	MPA         *string  `json:"mpa,omitempty" validate:"omitempty,oneof=G PG PG-13 R NC-17"`
}

type FilmUpdateRequest struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=200"`
	ReleaseDate string   `json:"releaseDate" validate:"required,datetime=2006-01-02"`
	Duration    int      `json:"duration" validate:"required,min=1"`
	Genres      []string `json:"genres,omitempty"`
	MPA         *string  `json:"mpa,omitempty" validate:"omitempty,oneof=G PG PG-13 R NC-17"`
}

// FilmPatchRequest carries only the fields being changed; nil means keep the
// stored value.
type FilmPatchRequest struct {
	ID          int64    `json:"id"`
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=200"`
	ReleaseDate *string  `json:"releaseDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Duration    *int     `json:"duration,omitempty" validate:"omitempty,min=1"`
	Genres      []string `json:"genres,omitempty"`
	MPA         *string  `json:"mpa,omitempty" validate:"omitempty,oneof=G PG PG-13 R NC-17"`
}

package response

import (
	"filmorate/internal/data/entity"
)

type FilmResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  *string  `json:"description,omitempty"`
	ReleaseDate  string   `json:"releaseDate"`
	Duration     int      `json:"duration"`
	Genres       []string `json:"genres"`
	MPA          *string  `json:"mpa,omitempty"`
	LikedUserIDs []int64  `json:"likedUsersIds"`
}

func FilmToResponse(film *entity.Film, likedUserIDs []int64) FilmResponse {
	var mpa *string
	if film.MPA != nil {
		rating := string(*film.MPA)
		mpa = &rating
	}

	genres := film.Genres
	if genres == nil {
		genres = []string{}
	}
	if likedUserIDs == nil {
		likedUserIDs = []int64{}
	}

	return FilmResponse{
		ID:           film.ID,
		Name:         film.Name,
		Description:  film.Description,
		ReleaseDate:  film.ReleaseDate.Format("2006-01-02"),
		Duration:     film.Duration,
		Genres:       genres,
		MPA:          mpa,
		LikedUserIDs: likedUserIDs,
	}
}

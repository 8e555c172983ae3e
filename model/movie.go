package model

type MovieShowtime struct {
	ID        uint   `json:"id"`
	TimeStart string `json:"timeStart"`
	TimeEnd   string `json:"timeEnd"`
}

type Movie struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Image       string          `json:"image"`
	Video       string          `json:"video,omitempty"`
	Duration    int             `json:"duration"`
	Rating      string          `json:"rating,omitempty"`
	Language    string          `json:"language,omitempty"`
	Age         string          `json:"age,omitempty"`
	ReleaseDate string          `json:"releaseDate,omitempty"`
	Showtimes   []MovieShowtime `json:"Showtimes,omitempty"`
}

type MovieInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Duration    int    `json:"duration" validate:"required,gt=0"`
	Rating      string `json:"rating"`
	Language    string `json:"language"`
	Age         string `json:"age"`
	ReleaseDate string `json:"releaseDate" validate:"required"`
	Image       string `json:"image" validate:"omitempty,url"`
	Video       string `json:"video" validate:"omitempty,url"`
}

// CinemaMovies là dữ liệu của /movie/public/cinema/{cinemaId}
type CinemaMovies struct {
	Movies []Movie `json:"movies"`
}

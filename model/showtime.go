package model

type Showtime struct {
	ID        uint    `json:"id"`
	TimeStart string  `json:"timeStart"`
	TimeEnd   string  `json:"timeEnd,omitempty"`
	MovieID   uint    `json:"movieId"`
	CinemaID  uint    `json:"cinemaId"`
	Movie     *Movie  `json:"movie,omitempty"`
	Cinema    *Cinema `json:"cinema,omitempty"`
}

type ShowtimeInput struct {
	TimeStart string `json:"timeStart" validate:"required"`
	MovieID   uint   `json:"movieId" validate:"required"`
	CinemaID  uint   `json:"cinemaId" validate:"required"`
}

type AutoGenerateShowtimeInput struct {
	MovieID   uint     `json:"movieId" validate:"required"`
	CinemaIDs []uint   `json:"cinemaIds" validate:"required,min=1"`
	StartDate string   `json:"startDate" validate:"required"`
	EndDate   string   `json:"endDate" validate:"required"`
	TimeSlots []string `json:"timeSlots" validate:"required,min=1,dive,required"`
}

type ConflictingSchedule struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ShowtimeResult: code = 0 là thành công, backend trả cả khi lỗi nghiệp vụ
type ShowtimeResult struct {
	Code                int                  `json:"code"`
	Message             string               `json:"message"`
	ConflictingSchedule *ConflictingSchedule `json:"conflictingSchedule,omitempty"`
	Data                *AutoGenerateResult  `json:"data,omitempty"`
}

type AutoGenerateResult struct {
	Created   []Showtime            `json:"created"`
	Conflicts []ConflictingSchedule `json:"conflicts"`
}

func (r ShowtimeResult) OK() bool {
	return r.Code == 0
}

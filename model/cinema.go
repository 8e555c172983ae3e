package model

type Cinema struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type CinemaInput struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
}

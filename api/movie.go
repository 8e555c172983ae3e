package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"cinema_admin/model"
	"cinema_admin/utils"

	"github.com/gofiber/fiber/v2"
)

func (c *Client) SearchMovies(ctx context.Context, q model.ListQuery) (model.ListResponse[model.Movie], error) {
	var res model.ListResponse[model.Movie]
	err := c.do(ctx, request{method: fiber.MethodGet, path: "/movie/search", query: listValues(q), auth: true}, &res)
	return res, err
}

func (c *Client) CreateMovie(ctx context.Context, input model.MovieInput) (json.RawMessage, error) {
	var res json.RawMessage
	err := c.do(ctx, request{method: fiber.MethodPost, path: "/movie", body: input, auth: true}, &res)
	return res, err
}

func (c *Client) UpdateMovie(ctx context.Context, id uint, input model.MovieInput) (json.RawMessage, error) {
	var res json.RawMessage
	err := c.do(ctx, request{method: fiber.MethodPut, path: fmt.Sprintf("/movie/%d", id), body: input, auth: true}, &res)
	return res, err
}

func (c *Client) DeleteMovie(ctx context.Context, id uint) (json.RawMessage, error) {
	var res json.RawMessage
	err := c.do(ctx, request{method: fiber.MethodDelete, path: fmt.Sprintf("/movie/%d", id), auth: true}, &res)
	return res, err
}

// MoviesByCinema danh sách phim kèm suất chiếu của một rạp trong ngày
func (c *Client) MoviesByCinema(ctx context.Context, cinemaID uint, date utils.CustomDate) (model.CinemaMovies, error) {
	var res struct {
		Data model.CinemaMovies `json:"data"`
	}
	query := url.Values{}
	query.Set("date", date.String())
	err := c.do(ctx, request{
		method: fiber.MethodGet,
		path:   fmt.Sprintf("/movie/public/cinema/%d", cinemaID),
		query:  query,
	}, &res)
	if res.Data.Movies == nil {
		res.Data.Movies = []model.Movie{}
	}
	return res.Data, err
}

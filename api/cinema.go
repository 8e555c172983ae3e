package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"cinema_admin/model"

	"github.com/gofiber/fiber/v2"
)

func listValues(q model.ListQuery) url.Values {
	q = q.Normalize()
	v := url.Values{}
	v.Set("search", q.Search)
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("pageSize", strconv.Itoa(q.PageSize))
	return v
}

func (c *Client) SearchCinemas(ctx context.Context, q model.ListQuery) (model.ListResponse[model.Cinema], error) {
	var res model.ListResponse[model.Cinema]
	err := c.do(ctx, request{method: fiber.MethodGet, path: "/cinema/search", query: listValues(q), auth: true}, &res)
	return res, err
}

func (c *Client) CreateCinema(ctx context.Context, input model.CinemaInput) (json.RawMessage, error) {
	var res json.RawMessage
	err := c.do(ctx, request{method: fiber.MethodPost, path: "/cinema", body: input, auth: true}, &res)
	return res, err
}

func (c *Client) UpdateCinema(ctx context.Context, id uint, input model.CinemaInput) (json.RawMessage, error) {
	var res json.RawMessage
	err := c.do(ctx, request{method: fiber.MethodPut, path: fmt.Sprintf("/cinema/%d", id), body: input, auth: true}, &res)
	return res, err
}

func (c *Client) DeleteCinema(ctx context.Context, id uint) (json.RawMessage, error) {
	var res json.RawMessage
	err := c.do(ctx, request{method: fiber.MethodDelete, path: fmt.Sprintf("/cinema/%d", id), auth: true}, &res)
	return res, err
}

package api

import (
	"context"
	"fmt"

	"cinema_admin/model"

	"github.com/gofiber/fiber/v2"
)

func (c *Client) SearchShowtimes(ctx context.Context, q model.ListQuery) (model.ListResponse[model.Showtime], error) {
	var res model.ListResponse[model.Showtime]
	err := c.do(ctx, request{method: fiber.MethodGet, path: "/show-time/search", query: listValues(q), auth: true}, &res)
	return res, err
}

func (c *Client) CreateShowtime(ctx context.Context, input model.ShowtimeInput) (model.ShowtimeResult, error) {
	return c.showtimeMutation(ctx, request{method: fiber.MethodPost, path: "/show-time/create", body: input, auth: true})
}

func (c *Client) UpdateShowtime(ctx context.Context, id uint, input model.ShowtimeInput) (model.ShowtimeResult, error) {
	return c.showtimeMutation(ctx, request{method: fiber.MethodPut, path: fmt.Sprintf("/show-time/update/%d", id), body: input, auth: true})
}

func (c *Client) DeleteShowtime(ctx context.Context, id uint) (model.ShowtimeResult, error) {
	return c.showtimeMutation(ctx, request{method: fiber.MethodDelete, path: fmt.Sprintf("/show-time/delete/%d", id), auth: true})
}

func (c *Client) AutoGenerateShowtimes(ctx context.Context, input model.AutoGenerateShowtimeInput) (model.ShowtimeResult, error) {
	return c.showtimeMutation(ctx, request{method: fiber.MethodPost, path: "/show-time/create-auto", body: input, auth: true})
}

// showtimeMutation: backend trả {code, message, conflictingSchedule} kể cả khi lỗi nghiệp vụ (409, 400...),
// body đó là kết quả chứ không phải lỗi
func (c *Client) showtimeMutation(ctx context.Context, r request) (model.ShowtimeResult, error) {
	var res model.ShowtimeResult
	err := c.do(ctx, r, &res)
	if err == nil {
		return res, nil
	}
	var fromBody model.ShowtimeResult
	if recoverBody(err, &fromBody) && (fromBody.Code != 0 || fromBody.Message != "") {
		if fromBody.Code == 0 {
			fromBody.Code = -1
		}
		return fromBody, nil
	}
	return model.ShowtimeResult{}, err
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cinema_admin/model"

	"github.com/gofiber/fiber/v2"
)

var ErrStatisticShape = errors.New("api: unexpected statistic/today payload")

// StatisticToday trả về số liệu hôm nay và hôm qua. Backend gửi data là mảng [today, yesterday].
func (c *Client) StatisticToday(ctx context.Context) (model.StatisticToday, model.StatisticYesterday, error) {
	var res struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := c.do(ctx, request{method: fiber.MethodGet, path: "/statistic/today", auth: true}, &res); err != nil {
		return model.StatisticToday{}, model.StatisticYesterday{}, err
	}
	if len(res.Data) < 2 {
		return model.StatisticToday{}, model.StatisticYesterday{}, ErrStatisticShape
	}

	var today model.StatisticToday
	var yesterday model.StatisticYesterday
	if err := json.Unmarshal(res.Data[0], &today); err != nil {
		return today, yesterday, fmt.Errorf("%w: %v", ErrStatisticShape, err)
	}
	if err := json.Unmarshal(res.Data[1], &yesterday); err != nil {
		return today, yesterday, fmt.Errorf("%w: %v", ErrStatisticShape, err)
	}
	return today, yesterday, nil
}

// StatisticByPeriod: period là week, month hoặc year
func (c *Client) StatisticByPeriod(ctx context.Context, period string, input model.StatisticPeriodInput) (json.RawMessage, error) {
	var res json.RawMessage
	err := c.do(ctx, request{method: fiber.MethodPost, path: "/statistic/" + period, body: input, auth: true}, &res)
	return res, err
}

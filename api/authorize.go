package api

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"cinema_admin/model"

	"github.com/gofiber/fiber/v2"
)

func (c *Client) EmployeePermissions(ctx context.Context, page, pageSize int) (model.ListResponse[model.EmployeePermission], error) {
	q := model.ListQuery{Page: page, PageSize: pageSize}.Normalize()
	query := url.Values{}
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("pageSize", strconv.Itoa(q.PageSize))

	var res model.ListResponse[model.EmployeePermission]
	err := c.do(ctx, request{method: fiber.MethodGet, path: "/authorize/getall-employee-permission", query: query, auth: true}, &res)
	return res, err
}

func (c *Client) Permissions(ctx context.Context) ([]model.Permission, error) {
	var res struct {
		Data []model.Permission `json:"data"`
	}
	err := c.do(ctx, request{method: fiber.MethodGet, path: "/authorize/getall-permission", auth: true}, &res)
	return res.Data, err
}

func (c *Client) AssignPermissions(ctx context.Context, input model.AssignPermissionsRequest) (json.RawMessage, error) {
	var res json.RawMessage
	err := c.do(ctx, request{method: fiber.MethodPost, path: "/authorize/assign-permissions", body: input, auth: true}, &res)
	return res, err
}

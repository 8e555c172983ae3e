package handler

import (
	"fmt"

	"cinema_admin/constants"
	"cinema_admin/model"
	"cinema_admin/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetEmployeePermissions(c *fiber.Ctx) error {
	q := c.Locals("listQuery").(model.ListQuery)
	res, err := h.Backend.EmployeePermissions(c.UserContext(), q.Page, q.PageSize)
	if err != nil {
		return h.backendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *Handler) GetPermissions(c *fiber.Ctx) error {
	res, err := h.Backend.Permissions(c.UserContext())
	if err != nil {
		return h.backendError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, res)
}

// AssignPermissions: giao diện chọn quyền theo id, backend nhận theo tên
func (h *Handler) AssignPermissions(c *fiber.Ctx) error {
	input := c.Locals("inputAssignPermissions").(model.AssignPermissionsInput)

	all, err := h.Backend.Permissions(c.UserContext())
	if err != nil {
		return h.backendError(c, err)
	}
	names := make(map[uint]string, len(all))
	for _, p := range all {
		names[p.ID] = p.Name
	}

	req := model.AssignPermissionsRequest{
		UserID:          input.UserID,
		RoleName:        constants.ROLE_EMPLOYEE,
		PermissionNames: make([]string, 0, len(input.PermissionIDs)),
	}
	for _, id := range input.PermissionIDs {
		name, ok := names[id]
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, fmt.Errorf("permission %d not found", id))
		}
		req.PermissionNames = append(req.PermissionNames, name)
	}

	res, err := h.Backend.AssignPermissions(c.UserContext(), req)
	if err != nil {
		return h.backendError(c, err)
	}
	return c.Status(fiber.StatusOK).Type("json").Send(res)
}

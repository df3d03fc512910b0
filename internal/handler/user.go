package handler

import (
	"net/http"

	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/brinto-swe/event-management-system/internal/handler/dto"
	"github.com/brinto-swe/event-management-system/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) Profile(c *ginext.Context) {
	user, err := h.userService.GetProfile(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) UpdateProfile(c *ginext.Context) {
	var req dto.ProfileRequest
	if !bind(c, &req) {
		return
	}

	if _, err := h.userService.UpdateProfile(c.Request.Context(), middleware.PrincipalFrom(c), req.ToInput()); err != nil {
		h.handleError(c, err)
		return
	}

	redirect(c, "/profile/", "Profile updated successfully!")
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

func (h *Handler) SetUserRole(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.RoleRequest
	if !bind(c, &req) {
		return
	}

	user, err := h.userService.SetRole(c.Request.Context(), middleware.PrincipalFrom(c), id, domain.Role(req.Role))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) AdminDashboard(c *ginext.Context) {
	d, err := h.dashboardService.Admin(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminDashboardResponse(d))
}

func (h *Handler) OrganizerDashboard(c *ginext.Context) {
	d, err := h.dashboardService.Organizer(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizerDashboardResponse(d))
}

func (h *Handler) ParticipantDashboard(c *ginext.Context) {
	d, err := h.dashboardService.Participant(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToParticipantDashboardResponse(d))
}

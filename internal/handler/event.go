package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/brinto-swe/event-management-system/internal/handler/dto"
	"github.com/brinto-swe/event-management-system/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListEvents(c *ginext.Context) {
	var q dto.EventFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	filter := domain.EventFilter{Query: q.Query, CategoryID: q.Category}
	fields := make(map[string]string)
	for name, raw := range map[string]string{"from": q.From, "to": q.To} {
		if raw == "" {
			continue
		}
		d, err := time.Parse(domain.DateLayout, raw)
		if err != nil {
			fields[name] = "Enter a valid date."
			continue
		}
		if name == "from" {
			filter.From = &d
		} else {
			filter.To = &d
		}
	}
	if len(fields) > 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed", Fields: fields})
		return
	}

	events, err := h.eventService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) CreateEventForm(c *ginext.Context) {
	categories, err := h.eventService.FormOptions(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EventFormResponse{Categories: dto.ToCategoryResponses(categories)})
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.EventRequest
	if !bind(c, &req) {
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), middleware.PrincipalFrom(c), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	redirect(c, "/events/"+event.ID+"/", "Event created successfully!")
}

func (h *Handler) EditEventForm(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor := middleware.PrincipalFrom(c)

	event, err := h.eventService.GetForEdit(c.Request.Context(), actor, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	// An owner whose editor role was revoked may still edit; they just get no choices.
	categories, err := h.eventService.FormOptions(c.Request.Context(), actor)
	if err != nil && !errors.Is(err, domain.ErrPermissionDenied) {
		h.handleError(c, err)
		return
	}

	resp := dto.ToEventResponse(event)
	c.JSON(http.StatusOK, dto.EventFormResponse{Event: &resp, Categories: dto.ToCategoryResponses(categories)})
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.EventRequest
	if !bind(c, &req) {
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), middleware.PrincipalFrom(c), id, req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	redirect(c, "/events/"+event.ID+"/", "Event updated successfully!")
}

func (h *Handler) DeleteEventConfirm(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	impact, err := h.eventService.DeletePreview(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDeletionImpactResponse(impact))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.DeleteRequest
	if !bind(c, &req) {
		return
	}
	if !req.Confirm {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  "validation failed",
			Fields: map[string]string{"confirm": "Deletion must be confirmed."},
		})
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	redirect(c, "/events/", "Event deleted successfully!")
}

func (h *Handler) RSVP(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	outcome, err := h.rsvpService.Register(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusCreated
	if outcome.Status == domain.RSVPAlreadyRegistered {
		status = http.StatusOK
	}
	c.JSON(status, dto.ToRSVPResponse(outcome))
}

func (h *Handler) MyRSVPs(c *ginext.Context) {
	rsvps, err := h.rsvpService.ListMine(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserRSVPResponses(rsvps))
}

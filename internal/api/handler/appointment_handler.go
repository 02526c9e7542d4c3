package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vitacare/clinic-api/internal/api/metrics"
	"github.com/vitacare/clinic-api/internal/core/domain"
	"github.com/vitacare/clinic-api/internal/core/ports"
)

// AppointmentHandler serves booking and listing. The patient identity always
// comes from the authenticated session, never from the request body.
type AppointmentHandler struct {
	scheduling ports.SchedulingService
}

func NewAppointmentHandler(scheduling ports.SchedulingService) *AppointmentHandler {
	return &AppointmentHandler{scheduling: scheduling}
}

// Book creates an appointment for the authenticated patient.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookAppointmentRequest  true  "Physician, date, time, notes"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/appointments [post]
func (h *AppointmentHandler) Book(c echo.Context) error {
	username, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req bookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	appt, err := h.scheduling.Book(c.Request().Context(), ports.BookingInput{
		PatientUsername:   username,
		PhysicianUsername: req.PhysicianUsername,
		Date:              req.Date,
		Time:              req.Time,
		Notes:             req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPhysicianNotFound):
			return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: "physician not found"})
		case errors.Is(err, domain.ErrEmptyField):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrNoSession):
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "no active session"})
		}
		return err
	}

	metrics.AppointmentsBookedTotal.Inc()
	return c.JSON(http.StatusCreated, appt)
}

// ListMine returns the authenticated patient's appointments, date then time
// ascending.
//
// @Summary      List own appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listAppointmentsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/appointments [get]
func (h *AppointmentHandler) ListMine(c echo.Context) error {
	username, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	appointments, err := h.scheduling.ListForPatient(c.Request().Context(), username)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "no active session"})
		}
		return err
	}
	if appointments == nil {
		appointments = []domain.Appointment{}
	}
	return c.JSON(http.StatusOK, listAppointmentsResponse{Appointments: appointments})
}

// ListAssigned returns the authenticated physician's appointments.
//
// @Summary      List appointments assigned to the physician
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listAppointmentsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/appointments/assigned [get]
func (h *AppointmentHandler) ListAssigned(c echo.Context) error {
	username, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	appointments, err := h.scheduling.ListForPhysician(c.Request().Context(), username)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "no active session"})
		}
		return err
	}
	if appointments == nil {
		appointments = []domain.Appointment{}
	}
	return c.JSON(http.StatusOK, listAppointmentsResponse{Appointments: appointments})
}

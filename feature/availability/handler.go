package availability

import (
	"errors"
	"strconv"

	"poc-availability/core/logger"
	"poc-availability/feature/availability/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// fetchErrorMessage is the body of every failed availability request not
// caused by the caller.
const (
	fetchErrorMessage    = "Error fetching appointment details"
	notFoundErrorMessage = "Client or POC not found"
)

// Handler handles HTTP requests for appointment availability.
type Handler struct {
	service      *Service
	validate     *validator.Validate
	defaultPocID int64
}

// NewHandler creates a new HTTP handler. defaultPocID is used when a request
// does not name a POC; 0 makes the POC id required.
func NewHandler(service *Service, defaultPocID int64) *Handler {
	// Force import for Swagger
	var _ = models.AvailabilityReport{}
	return &Handler{
		service:      service,
		validate:     validator.New(),
		defaultPocID: defaultPocID,
	}
}

// RegisterRoutes registers the availability routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/appointments")
	group.Get("/:clientId", h.HandleGetAvailability)
	group.Get("/:clientId/:pocId", h.HandleGetAvailability)
}

type availabilityParams struct {
	ClientID int64 `validate:"required,gt=0"`
	PocID    int64 `validate:"required,gt=0"`
}

// HandleGetAvailability returns the open appointment slots of a POC.
// @Summary Get Appointment Availability
// @Description Reconciles the POC's upcoming slots with its weekly schedule and returns the slots that still have capacity, numbered from 1.
// @Tags appointments
// @Accept json
// @Produce json
// @Param clientId path int true "Client ID"
// @Param pocId query int false "POC ID (falls back to the configured default)"
// @Success 200 {object} models.AvailabilityReport "Availability Report"
// @Failure 400 {object} map[string]string "Invalid Parameters"
// @Failure 404 {object} map[string]string "Client or POC Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/appointments/{clientId} [get]
func (h *Handler) HandleGetAvailability(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	params, err := h.parseParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	report, err := h.service.GetAvailability(c.Context(), params.PocID, params.ClientID)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			l.Warn("Availability lookup found no match",
				zap.String("entity", nf.Entity),
				zap.Int64("client_id", params.ClientID),
				zap.Int64("poc_id", params.PocID),
			)
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": notFoundErrorMessage,
			})
		}
		l.Error("Availability request failed",
			zap.Int64("client_id", params.ClientID),
			zap.Int64("poc_id", params.PocID),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": fetchErrorMessage,
		})
	}

	return c.JSON(report)
}

func (h *Handler) parseParams(c *fiber.Ctx) (availabilityParams, error) {
	var p availabilityParams

	clientID, err := strconv.ParseInt(c.Params("clientId"), 10, 64)
	if err != nil {
		return p, errors.New("clientId must be an integer")
	}
	p.ClientID = clientID

	raw := c.Params("pocId")
	if raw == "" {
		raw = c.Query("pocId")
	}
	if raw == "" {
		p.PocID = h.defaultPocID
	} else {
		pocID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return p, errors.New("pocId must be an integer")
		}
		p.PocID = pocID
	}

	if err := h.validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return p, errors.New(fieldMessage(verrs[0]))
		}
		return p, err
	}
	return p, nil
}

func fieldMessage(fe validator.FieldError) string {
	name := "clientId"
	if fe.Field() == "PocID" {
		name = "pocId"
	}
	if fe.Tag() == "required" {
		return name + " is required"
	}
	return name + " must be a positive integer"
}

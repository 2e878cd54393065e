package snapshot

import (
	"errors"
	"strconv"

	"poc-availability/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for report snapshots.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the snapshot routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/snapshots")
	group.Get("/:clientId/:pocId", h.HandleList)
	group.Get("/:clientId/:pocId/latest", h.HandleLatest)
	group.Post("/:clientId/:pocId", h.HandleExport)
}

func parseTarget(c *fiber.Ctx) (Target, error) {
	clientID, err := strconv.ParseInt(c.Params("clientId"), 10, 64)
	if err != nil || clientID <= 0 {
		return Target{}, errors.New("clientId must be a positive integer")
	}
	pocID, err := strconv.ParseInt(c.Params("pocId"), 10, 64)
	if err != nil || pocID <= 0 {
		return Target{}, errors.New("pocId must be a positive integer")
	}
	return Target{PocID: pocID, ClientID: clientID}, nil
}

// HandleList lists the stored snapshots of a report.
// @Summary List Snapshots
// @Description Lists the stored availability snapshots of a POC, oldest first.
// @Tags snapshots
// @Produce json
// @Param clientId path int true "Client ID"
// @Param pocId path int true "POC ID"
// @Success 200 {object} map[string]interface{} "Snapshot object names"
// @Failure 400 {object} map[string]string "Invalid Parameters"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots/{clientId}/{pocId} [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	t, err := parseTarget(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	names, err := h.service.List(c.Context(), t)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Snapshot list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if names == nil {
		names = []string{}
	}
	return c.JSON(fiber.Map{"snapshots": names})
}

// HandleLatest returns the newest stored snapshot of a report.
// @Summary Get Latest Snapshot
// @Description Returns the most recently exported availability snapshot of a POC.
// @Tags snapshots
// @Produce json
// @Param clientId path int true "Client ID"
// @Param pocId path int true "POC ID"
// @Success 200 {object} Snapshot "Snapshot"
// @Failure 400 {object} map[string]string "Invalid Parameters"
// @Failure 404 {object} map[string]string "No Snapshot"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots/{clientId}/{pocId}/latest [get]
func (h *Handler) HandleLatest(c *fiber.Ctx) error {
	t, err := parseTarget(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	snap, err := h.service.Latest(c.Context(), t)
	if errors.Is(err, ErrNoSnapshot) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Snapshot read failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(snap)
}

// HandleExport exports a report snapshot now.
// @Summary Export Snapshot
// @Description Computes the POC's availability report and stores it as a new snapshot.
// @Tags snapshots
// @Produce json
// @Param clientId path int true "Client ID"
// @Param pocId path int true "POC ID"
// @Success 201 {object} map[string]string "Object name"
// @Failure 400 {object} map[string]string "Invalid Parameters"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots/{clientId}/{pocId} [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	t, err := parseTarget(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	name, err := h.service.Export(c.Context(), t)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Snapshot export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"object": name})
}

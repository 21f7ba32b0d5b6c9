package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/northstar/goals-api/internal/api/metrics"
	"github.com/northstar/goals-api/internal/core/domain"
	"github.com/northstar/goals-api/internal/core/ports"
)

// GoalHandler handles HTTP requests for goal operations. Every route requires
// the Auth middleware; the owner id always comes from the verified token, never
// from the request body.
type GoalHandler struct {
	service ports.GoalService
}

func NewGoalHandler(service ports.GoalService) *GoalHandler {
	return &GoalHandler{service: service}
}

// List handles GET /goals.
//
// @Summary      List the caller's goals, newest first
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   goalResponse
// @Failure      401  {object}  errorResponse
// @Router       /goals [get]
func (h *GoalHandler) List(c echo.Context) error {
	ownerID, _, err := currentUser(c)
	if err != nil {
		return err
	}

	goals, err := h.service.List(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toGoalListResponse(goals))
}

// Create handles POST /goals.
//
// @Summary      Create a goal
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createGoalRequest  true  "Goal details"
// @Success      201   {object}  goalResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /goals [post]
func (h *GoalHandler) Create(c echo.Context) error {
	ownerID, _, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createGoalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	goal, err := h.service.Create(c.Request().Context(), ownerID, ports.CreateGoalInput{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		TargetDate:    req.TargetDate,
		CurrentAmount: req.CurrentAmount,
	})
	if err != nil {
		return err
	}

	metrics.GoalMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toGoalResponse(goal))
}

// Update handles PUT /goals/:id. Omitted fields are left untouched.
//
// @Summary      Update a goal
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Goal id"
// @Param        body  body      updateGoalRequest  true  "Fields to change"
// @Success      200   {object}  goalResponse
// @Failure      404   {object}  errorResponse
// @Router       /goals/{id} [put]
func (h *GoalHandler) Update(c echo.Context) error {
	ownerID, _, err := currentUser(c)
	if err != nil {
		return err
	}

	goalID, err := goalIDParam(c)
	if err != nil {
		return err
	}

	var req updateGoalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	goal, err := h.service.Update(c.Request().Context(), ownerID, goalID, ports.UpdateGoalInput{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		TargetDate:    req.TargetDate,
		CurrentAmount: req.CurrentAmount,
	})
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "goal not found"})
		}
		return err
	}

	metrics.GoalMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// Delete handles DELETE /goals/:id and echoes the deleted goal.
//
// @Summary      Delete a goal
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Goal id"
// @Success      200  {object}  goalResponse
// @Failure      404  {object}  errorResponse
// @Router       /goals/{id} [delete]
func (h *GoalHandler) Delete(c echo.Context) error {
	ownerID, _, err := currentUser(c)
	if err != nil {
		return err
	}

	goalID, err := goalIDParam(c)
	if err != nil {
		return err
	}

	goal, err := h.service.Delete(c.Request().Context(), ownerID, goalID)
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "goal not found"})
		}
		return err
	}

	metrics.GoalMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// goalIDParam parses the :id path segment. A non-numeric id cannot match any
// stored goal, so it reports not-found rather than bad-request.
func goalIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, "goal not found")
	}
	return uint(id), nil
}

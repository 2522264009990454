package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/brokerdesk/employee-portal/internal/api/metrics"
	"github.com/brokerdesk/employee-portal/internal/api/middleware"
	"github.com/brokerdesk/employee-portal/internal/core/domain"
	"github.com/brokerdesk/employee-portal/internal/core/ports"
)

// CustomerHandler handles HTTP requests for customer record operations.
// All routes sit behind the session middleware.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// List handles GET /api/customers.
//
// @Summary      List customers, most recently updated first
// @Tags         customers
// @Produce      json
// @Param        search       query  string  false  "Substring to match"
// @Param        searchField  query  string  false  "Field to match: name or policy"
// @Success      200  {object}  listCustomersResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	filter := ports.ListCustomersFilter{
		Field: c.QueryParam("searchField"),
		Term:  c.QueryParam("search"),
	}

	customers, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	if customers == nil {
		customers = []*domain.Customer{}
	}

	return c.JSON(http.StatusOK, listCustomersResponse{Success: true, Customers: customers})
}

// Create handles POST /api/customers.
//
// @Summary      Create a customer record
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      customerRequest  true  "Full customer record"
// @Success      201   {object}  createCustomerResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	req, actor, err := h.bindRecord(c)
	if err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), toCustomerInput(req), actor)
	if err != nil {
		metrics.CustomerMutationsTotal.WithLabelValues("create", mutationResult(err)).Inc()
		return err
	}
	metrics.CustomerMutationsTotal.WithLabelValues("create", "ok").Inc()

	return c.JSON(http.StatusCreated, createCustomerResponse{
		Success:    true,
		Message:    "Customer created successfully",
		CustomerID: id,
	})
}

// Update handles PUT /api/customers/:id. Full-replace semantics: every
// mutable field is overwritten from the payload.
//
// @Summary      Replace a customer record
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Customer id"
// @Param        body  body      customerRequest  true  "Full customer record"
// @Success      200   {object}  mutationResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	req, actor, err := h.bindRecord(c)
	if err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), id, toCustomerInput(req), actor); err != nil {
		metrics.CustomerMutationsTotal.WithLabelValues("update", mutationResult(err)).Inc()
		return err
	}
	metrics.CustomerMutationsTotal.WithLabelValues("update", "ok").Inc()

	return c.JSON(http.StatusOK, mutationResponse{Success: true, Message: "Customer updated successfully."})
}

// Delete handles DELETE /api/customers/:id. The row is removed outright;
// there is no tombstone.
//
// @Summary      Delete a customer record
// @Tags         customers
// @Produce      json
// @Param        id  path  int  true  "Customer id"
// @Success      200  {object}  mutationResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		metrics.CustomerMutationsTotal.WithLabelValues("delete", mutationResult(err)).Inc()
		return err
	}
	metrics.CustomerMutationsTotal.WithLabelValues("delete", "ok").Inc()

	return c.JSON(http.StatusOK, mutationResponse{Success: true, Message: "Customer deleted successfully."})
}

// bindRecord decodes and validates the full record payload and resolves the
// acting employee from the session.
func (h *CustomerHandler) bindRecord(c echo.Context) (customerRequest, string, error) {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return customerRequest{}, "", echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return customerRequest{}, "", echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, ok := middleware.SessionUser(c)
	if !ok {
		return customerRequest{}, "", echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized. Please log in.")
	}
	return req, user.Username, nil
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid customer id")
	}
	return id, nil
}

func mutationResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicatePolicy):
		return "duplicate_policy"
	case errors.Is(err, domain.ErrCustomerNotFound):
		return "not_found"
	default:
		return "error"
	}
}

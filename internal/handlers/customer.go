package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/salescrm/internal/middleware"
	"github.com/umalmyha/salescrm/internal/model"
	"github.com/umalmyha/salescrm/internal/service"
)

type identifier struct {
	ID string `json:"id" validate:"required,uuid"`
}

type newCustomer struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
}

type patchCustomer struct {
	ID      string  `param:"id" validate:"required,uuid"`
	Name    *string `json:"name"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
}

type customersQuery struct {
	Search string `query:"search"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit" validate:"lte=100"`
}

type customerPage struct {
	Customers  []*model.Customer `json:"customers"`
	TotalPages int               `json:"totalPages"`
	Page       int               `json:"currentPage"`
}

type customerWithLeads struct {
	Customer *model.Customer `json:"customer"`
	Leads    []*model.Lead   `json:"leads"`
}

// CustomerHTTPHandler is http handler for customer endpoint
type CustomerHTTPHandler struct {
	customerSvc service.CustomerService
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler
func NewCustomerHTTPHandler(customerSvc service.CustomerService) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{customerSvc: customerSvc}
}

// GetAll gets caller's customers page
// @Summary     List customers
// @Description Returns caller's customers matching search, paginated
// @Tags        customers
// @Security	ApiKeyAuth
// @Produce     json
// @Param       search query	string false "Name/email substring, case-insensitive"
// @Param       page   query	int    false "Page number, 1-based"
// @Param       limit  query	int    false "Page size, default 10"
// @Success     200    {object} customerPage
// @Failure     400    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/v1/customers [get]
// @Router      /api/v2/customers [get]
func (h *CustomerHTTPHandler) GetAll(c echo.Context) error {
	var q customersQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&q); err != nil {
		return err
	}

	if q.Page < 1 {
		q.Page = 1
	}

	customers, totalPages, err := h.customerSvc.FindAll(c.Request().Context(), middleware.CallerID(c), q.Search, q.Page, q.Limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &customerPage{
		Customers:  customers,
		TotalPages: totalPages,
		Page:       q.Page,
	})
}

// Get gets single customer together with its leads
// @Summary     Get single customer by id
// @Description Returns caller's customer with provided id and its leads
// @Tags        customers
// @Security	ApiKeyAuth
// @Produce     json
// @Param       id     path 	string true "Customer guid" Format(uuid)
// @Success     200    {object} customerWithLeads
// @Failure     400    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/v1/customers/{id} [get]
// @Router      /api/v2/customers/{id} [get]
func (h *CustomerHTTPHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	customer, leads, err := h.customerSvc.FindByID(c.Request().Context(), middleware.CallerID(c), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &customerWithLeads{Customer: customer, Leads: leads})
}

// Post creates new customer
// @Summary     New Customer
// @Description Creates new customer owned by the caller
// @Tags        customers
// @Security	ApiKeyAuth
// @Accept		json
// @Produce     json
// @Param 		newCustomer body	 newCustomer true "Data for new customer"
// @Success     201    		{object} model.Customer
// @Failure     400    		{object} echo.HTTPError
// @Failure     500    		{object} echo.HTTPError
// @Router      /api/v1/customers [post]
// @Router      /api/v2/customers [post]
func (h *CustomerHTTPHandler) Post(c echo.Context) error {
	var nc newCustomer
	if err := c.Bind(&nc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nc); err != nil {
		return err
	}

	customer, err := h.customerSvc.Create(c.Request().Context(), middleware.CallerID(c), &model.Customer{
		Name:    nc.Name,
		Email:   nc.Email,
		Phone:   nc.Phone,
		Company: nc.Company,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, customer)
}

// Patch updates customer fields
// @Summary     Update Customer
// @Description Applies partial update to caller's customer, owner stays intact
// @Tags        customers
// @Security	ApiKeyAuth
// @Accept		json
// @Produce     json
// @Param       id     		  path 	   string 		 true "Customer guid" Format(uuid)
// @Param 		patchCustomer body	   patchCustomer true "Customer fields to change"
// @Success     200    		  {object} model.Customer
// @Failure     400    		  {object} echo.HTTPError
// @Failure     404    		  {object} echo.HTTPError
// @Failure     500    		  {object} echo.HTTPError
// @Router      /api/v1/customers/{id} [patch]
// @Router      /api/v2/customers/{id} [patch]
func (h *CustomerHTTPHandler) Patch(c echo.Context) error {
	var pc patchCustomer
	if err := c.Bind(&pc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&pc); err != nil {
		return err
	}

	customer, err := h.customerSvc.Merge(c.Request().Context(), middleware.CallerID(c), &model.PatchCustomer{
		ID:      pc.ID,
		Name:    pc.Name,
		Email:   pc.Email,
		Phone:   pc.Phone,
		Company: pc.Company,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customer)
}

// DeleteByID deletes customer and all its leads
// @Summary     Delete customer by id
// @Description Deletes caller's customer with provided id, cascades to leads
// @Tags        customers
// @Security	ApiKeyAuth
// @Produce     json
// @Param       id     path 	string true "Customer guid" Format(uuid)
// @Success     204    "Successful status code"
// @Failure     400    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/v1/customers/{id} [delete]
// @Router      /api/v2/customers/{id} [delete]
func (h *CustomerHTTPHandler) DeleteByID(c echo.Context) error {
	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	if err := h.customerSvc.DeleteByID(c.Request().Context(), middleware.CallerID(c), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

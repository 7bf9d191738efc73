package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/salescrm/internal/middleware"
	"github.com/umalmyha/salescrm/internal/model"
	"github.com/umalmyha/salescrm/internal/service"
)

type newLead struct {
	CustomerID  string            `param:"customerId" validate:"required,uuid"`
	Title       string            `json:"title" validate:"required"`
	Description *string           `json:"description"`
	Status      *model.LeadStatus `json:"status" validate:"omitempty,oneof=New Contacted Converted Lost"`
	Value       *float64          `json:"value" validate:"omitempty,gte=0"`
}

type patchLead struct {
	ID          string            `param:"id" validate:"required,uuid"`
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	Status      *model.LeadStatus `json:"status" validate:"omitempty,oneof=New Contacted Converted Lost"`
	Value       *float64          `json:"value" validate:"omitempty,gte=0"`
}

// LeadHTTPHandler is http handler for lead endpoint
type LeadHTTPHandler struct {
	leadSvc service.LeadService
}

// NewLeadHTTPHandler builds new LeadHTTPHandler
func NewLeadHTTPHandler(leadSvc service.LeadService) *LeadHTTPHandler {
	return &LeadHTTPHandler{leadSvc: leadSvc}
}

// Post creates new lead under a customer
// @Summary     New Lead
// @Description Creates new lead under caller's customer from the path
// @Tags        leads
// @Security	ApiKeyAuth
// @Accept		json
// @Produce     json
// @Param       customerId path 	string  true "Customer guid" Format(uuid)
// @Param 		newLead    body	    newLead true "Data for new lead"
// @Success     201    	   {object} model.Lead
// @Failure     400    	   {object} echo.HTTPError
// @Failure     404    	   {object} echo.HTTPError
// @Failure     500    	   {object} echo.HTTPError
// @Router      /api/v1/customers/{customerId}/leads [post]
// @Router      /api/v2/customers/{customerId}/leads [post]
func (h *LeadHTTPHandler) Post(c echo.Context) error {
	var nl newLead
	if err := c.Bind(&nl); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nl); err != nil {
		return err
	}

	l := &model.Lead{
		Title:       nl.Title,
		Description: nl.Description,
		Value:       nl.Value,
	}
	if nl.Status != nil {
		l.Status = *nl.Status
	}

	lead, err := h.leadSvc.Create(c.Request().Context(), middleware.CallerID(c), nl.CustomerID, l)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, lead)
}

// GetAll gets all leads of a customer
// @Summary     List customer leads
// @Description Returns all leads under caller's customer
// @Tags        leads
// @Security	ApiKeyAuth
// @Produce     json
// @Param       customerId path  string true "Customer guid" Format(uuid)
// @Success     200    {array}  model.Lead
// @Failure     400    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/v1/customers/{customerId}/leads [get]
// @Router      /api/v2/customers/{customerId}/leads [get]
func (h *LeadHTTPHandler) GetAll(c echo.Context) error {
	customerID := c.Param("customerId")
	if err := c.Validate(&identifier{ID: customerID}); err != nil {
		return err
	}

	leads, err := h.leadSvc.FindByCustomerID(c.Request().Context(), middleware.CallerID(c), customerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, leads)
}

// Patch updates lead fields
// @Summary     Update Lead
// @Description Applies partial update to a lead whose parent customer belongs to the caller
// @Tags        leads
// @Security	ApiKeyAuth
// @Accept		json
// @Produce     json
// @Param       id        path 	   string 	 true "Lead guid" Format(uuid)
// @Param 		patchLead body	   patchLead true "Lead fields to change"
// @Success     200       {object} model.Lead
// @Failure     400       {object} echo.HTTPError
// @Failure     401       {object} echo.HTTPError
// @Failure     404       {object} echo.HTTPError
// @Failure     500       {object} echo.HTTPError
// @Router      /api/v1/leads/{id} [patch]
// @Router      /api/v2/leads/{id} [patch]
func (h *LeadHTTPHandler) Patch(c echo.Context) error {
	var pl patchLead
	if err := c.Bind(&pl); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&pl); err != nil {
		return err
	}

	lead, err := h.leadSvc.Merge(c.Request().Context(), middleware.CallerID(c), &model.PatchLead{
		ID:          pl.ID,
		Title:       pl.Title,
		Description: pl.Description,
		Status:      pl.Status,
		Value:       pl.Value,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, lead)
}

// DeleteByID deletes lead
// @Summary     Delete lead by id
// @Description Deletes lead whose parent customer belongs to the caller
// @Tags        leads
// @Security	ApiKeyAuth
// @Produce     json
// @Param       id     path 	string true "Lead guid" Format(uuid)
// @Success     204    "Successful status code"
// @Failure     400    {object} echo.HTTPError
// @Failure     401    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/v1/leads/{id} [delete]
// @Router      /api/v2/leads/{id} [delete]
func (h *LeadHTTPHandler) DeleteByID(c echo.Context) error {
	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	if err := h.leadSvc.DeleteByID(c.Request().Context(), middleware.CallerID(c), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Package http serves the admin REST API and hands websocket upgrades over
// to the connection gateway. The live board protocol itself never travels
// over plain HTTP.
package http

import (
	"errors"
	"net/http"

	"orderboard/internal/adapters/in/ws"
	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/application/usecases/queries"
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/merchant"
	"orderboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and the admin use cases.
type Server struct {
	gateway *ws.Gateway

	// Command handlers
	createMerchantHandler commands.CreateMerchantCommandHandler
	createProductHandler  commands.CreateProductCommandHandler
	reportSalesHandler    commands.ReportSalesCommandHandler

	// Query handlers
	getStorefrontHandler   queries.GetStorefrontQueryHandler
	getSalesReportsHandler queries.GetSalesReportsQueryHandler
}

// NewServer creates an HTTP server with the required handlers.
func NewServer(
	gateway *ws.Gateway,
	createMerchantHandler commands.CreateMerchantCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	reportSalesHandler commands.ReportSalesCommandHandler,
	getStorefrontHandler queries.GetStorefrontQueryHandler,
	getSalesReportsHandler queries.GetSalesReportsQueryHandler,
) *Server {
	return &Server{
		gateway:                gateway,
		createMerchantHandler:  createMerchantHandler,
		createProductHandler:   createProductHandler,
		reportSalesHandler:     reportSalesHandler,
		getStorefrontHandler:   getStorefrontHandler,
		getSalesReportsHandler: getSalesReportsHandler,
	}
}

// RegisterRoutes mounts the health check, the websocket endpoint and the
// admin API on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	e.GET("/ws", s.handleWebsocket)

	api := e.Group("/api/v1")
	api.POST("/merchants", s.createMerchant)
	api.POST("/merchants/:id/products", s.createProduct)
	api.POST("/merchants/:id/sales", s.reportSales)
	api.GET("/merchants/:id/sales", s.getSalesReports)
	api.GET("/storefront/:slug", s.getStorefront)
}

// ErrorResponse is the error body of the admin API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type createMerchantRequest struct {
	ShopName       string `json:"shopName"`
	Slug           string `json:"slug"`
	WhatsappNumber string `json:"whatsappNumber"`
	Currency       string `json:"currency"`
}

type merchantResponse struct {
	ID             string `json:"id"`
	ShopName       string `json:"shopName"`
	Slug           string `json:"slug"`
	WhatsappNumber string `json:"whatsappNumber,omitempty"`
	Currency       string `json:"currency"`
	ExpiryDate     string `json:"expiryDate"`
	IsActive       bool   `json:"isActive"`
}

type createProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Stock       int    `json:"stock"`
}

type reportSalesRequest struct {
	SalesAmount string `json:"salesAmount"`
	ReportMonth string `json:"reportMonth"`
	Notes       string `json:"notes"`
}

func (s *Server) handleWebsocket(c echo.Context) error {
	return s.gateway.HandleConnection(c.Response(), c.Request())
}

func (s *Server) createMerchant(c echo.Context) error {
	var req createMerchantRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewCreateMerchantCommand(
		req.ShopName, req.Slug, req.WhatsappNumber, merchant.Currency(req.Currency))
	if err != nil {
		return badRequest(c, "Invalid merchant data: "+err.Error())
	}

	created, err := s.createMerchantHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrValueIsInvalid) {
			return c.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: "Slug is already taken",
			})
		}
		return internalError(c, "Failed to create merchant")
	}

	return c.JSON(http.StatusCreated, merchantResponse{
		ID:             created.ID().String(),
		ShopName:       created.ShopName(),
		Slug:           created.Slug(),
		WhatsappNumber: created.WhatsappNumber(),
		Currency:       string(created.Currency()),
		ExpiryDate:     created.ExpiryDate().Format("2006-01-02"),
		IsActive:       created.IsActive(),
	})
}

func (s *Server) createProduct(c echo.Context) error {
	merchantID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid merchant id")
	}

	var req createProductRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(
		merchantID, req.Name, req.Description, req.Price, req.ImageURL, req.Stock)
	if err != nil {
		return badRequest(c, "Invalid product data: "+err.Error())
	}

	created, err := s.createProductHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(c, "Merchant not found")
		}
		return internalError(c, "Failed to create product")
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": created.ID().String()})
}

func (s *Server) reportSales(c echo.Context) error {
	merchantID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid merchant id")
	}

	var req reportSalesRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewReportSalesCommand(merchantID, req.SalesAmount, req.ReportMonth, req.Notes)
	if err != nil {
		return badRequest(c, "Invalid report data: "+err.Error())
	}

	created, err := s.reportSalesHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(c, "Merchant not found")
		}
		if errors.Is(err, errs.ErrValueIsInvalid) {
			return badRequest(c, "Invalid report data: "+err.Error())
		}
		return internalError(c, "Failed to report sales")
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"id":               created.ID().String(),
		"commissionAmount": created.CommissionAmount(),
	})
}

func (s *Server) getSalesReports(c echo.Context) error {
	merchantID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid merchant id")
	}

	query, err := queries.NewGetSalesReportsQuery(merchantID)
	if err != nil {
		return badRequest(c, "Invalid merchant id")
	}

	reports, err := s.getSalesReportsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return internalError(c, "Failed to retrieve sales reports")
	}

	response := make([]map[string]string, len(reports))
	for i, report := range reports {
		response[i] = map[string]string{
			"id":               report.ID.String(),
			"salesAmount":      report.SalesAmount,
			"commissionAmount": report.CommissionAmount,
			"reportMonth":      report.ReportMonth,
			"notes":            report.Notes,
		}
	}

	return c.JSON(http.StatusOK, response)
}

func (s *Server) getStorefront(c echo.Context) error {
	query, err := queries.NewGetStorefrontQuery(c.Param("slug"))
	if err != nil {
		return badRequest(c, "Invalid slug")
	}

	storefront, err := s.getStorefrontHandler.Handle(c.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(c, "Shop not found")
		}
		return internalError(c, "Failed to retrieve storefront")
	}

	return c.JSON(http.StatusOK, storefront)
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func internalError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

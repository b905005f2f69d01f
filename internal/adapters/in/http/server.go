// Package http exposes the back office over REST. Every response uses the
// success/error envelope and the error taxonomy drives the status codes.
package http

import (
	"net/http"

	"arkdumpster/internal/core/application/usecases/commands"
	"arkdumpster/internal/core/application/usecases/queries"
	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/core/domain/model/order"
	"arkdumpster/internal/core/domain/model/quote"
	"arkdumpster/internal/core/domain/services"
	"arkdumpster/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createQuoteHandler           commands.CreateQuoteCommandHandler
	updateQuoteStatusHandler     commands.UpdateQuoteStatusCommandHandler
	promoteQuoteHandler          commands.PromoteQuoteCommandHandler
	changeOrderStatusHandler     commands.ChangeOrderStatusCommandHandler
	moveOrderHandler             commands.MoveOrderCommandHandler
	updateOrderDetailsHandler    commands.UpdateOrderDetailsCommandHandler
	adjustLineDescriptionHandler commands.AdjustLineDescriptionCommandHandler
	assignDumpsterHandler        commands.AssignDumpsterCommandHandler
	releaseDumpsterHandler       commands.ReleaseDumpsterCommandHandler
	sendNotificationHandler      commands.SendOrderNotificationCommandHandler
	recordInvoiceEventHandler    commands.RecordInvoiceEventCommandHandler

	// Query handlers
	getActiveOrdersHandler   queries.GetActiveOrdersQueryHandler
	getQuotesHandler         queries.GetQuotesQueryHandler
	getDumpsterBoardHandler  queries.GetDumpsterBoardQueryHandler
	getServiceCatalogHandler queries.GetServiceCatalogQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createQuoteHandler commands.CreateQuoteCommandHandler,
	updateQuoteStatusHandler commands.UpdateQuoteStatusCommandHandler,
	promoteQuoteHandler commands.PromoteQuoteCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	moveOrderHandler commands.MoveOrderCommandHandler,
	updateOrderDetailsHandler commands.UpdateOrderDetailsCommandHandler,
	adjustLineDescriptionHandler commands.AdjustLineDescriptionCommandHandler,
	assignDumpsterHandler commands.AssignDumpsterCommandHandler,
	releaseDumpsterHandler commands.ReleaseDumpsterCommandHandler,
	sendNotificationHandler commands.SendOrderNotificationCommandHandler,
	recordInvoiceEventHandler commands.RecordInvoiceEventCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getQuotesHandler queries.GetQuotesQueryHandler,
	getDumpsterBoardHandler queries.GetDumpsterBoardQueryHandler,
	getServiceCatalogHandler queries.GetServiceCatalogQueryHandler,
) *Server {
	return &Server{
		createQuoteHandler:           createQuoteHandler,
		updateQuoteStatusHandler:     updateQuoteStatusHandler,
		promoteQuoteHandler:          promoteQuoteHandler,
		changeOrderStatusHandler:     changeOrderStatusHandler,
		moveOrderHandler:             moveOrderHandler,
		updateOrderDetailsHandler:    updateOrderDetailsHandler,
		adjustLineDescriptionHandler: adjustLineDescriptionHandler,
		assignDumpsterHandler:        assignDumpsterHandler,
		releaseDumpsterHandler:       releaseDumpsterHandler,
		sendNotificationHandler:      sendNotificationHandler,
		recordInvoiceEventHandler:    recordInvoiceEventHandler,
		getActiveOrdersHandler:       getActiveOrdersHandler,
		getQuotesHandler:             getQuotesHandler,
		getDumpsterBoardHandler:      getDumpsterBoardHandler,
		getServiceCatalogHandler:     getServiceCatalogHandler,
	}
}

// RegisterRoutes binds all handler methods to the echo router.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/quotes", s.CreateQuote)
	api.GET("/quotes", s.GetQuotes)
	api.PATCH("/quotes/:id/status", s.UpdateQuoteStatus)
	api.POST("/quotes/:id/promote", s.PromoteQuote)

	api.GET("/orders/active", s.GetActiveOrders)
	api.PATCH("/orders/:id", s.UpdateOrderDetails)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/:id/move", s.MoveOrder)
	api.PATCH("/orders/:id/lines/:lineId", s.AdjustLineDescription)
	api.POST("/orders/:id/notify", s.NotifyOrder)

	api.GET("/dumpsters", s.GetDumpsterBoard)
	api.POST("/dumpsters/:id/assign", s.AssignDumpster)
	api.POST("/dumpsters/:id/release", s.ReleaseDumpster)

	api.GET("/services", s.GetServiceCatalog)

	e.POST("/webhooks/invoices", s.InvoiceWebhook)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateQuote handles POST /api/v1/quotes - registers a quote request.
func (s *Server) CreateQuote(ctx echo.Context) error {
	var req createQuoteRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	cmd, err := commands.NewCreateQuoteCommand(
		kernel.NewUUID(),
		req.CustomerName, req.CustomerEmail, req.CustomerPhone,
		req.DropoffAddress, req.DumpsterSize, req.Message,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	q, err := s.createQuoteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusCreated, newQuoteResponse(q))
}

// GetQuotes handles GET /api/v1/quotes - lists quote requests, optionally
// filtered by the email query parameter.
func (s *Server) GetQuotes(ctx echo.Context) error {
	query := queries.NewGetQuotesQuery(ctx.QueryParam("email"))

	quotes, err := s.getQuotesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, quotes)
}

// UpdateQuoteStatus handles PATCH /api/v1/quotes/:id/status.
func (s *Server) UpdateQuoteStatus(ctx echo.Context) error {
	quoteID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("id"))
	}

	var req updateQuoteStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	status, err := quote.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateQuoteStatusCommand(quoteID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	q, err := s.updateQuoteStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, newQuoteResponse(q))
}

// PromoteQuote handles POST /api/v1/quotes/:id/promote - converts an
// accepted quote into an order.
func (s *Server) PromoteQuote(ctx echo.Context) error {
	quoteID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("id"))
	}

	var req promoteQuoteRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	selections := make([]commands.ServiceSelection, 0, len(req.Services))
	for _, sel := range req.Services {
		serviceID, selErr := kernel.UUIDFromString(sel.ServiceID)
		if selErr != nil {
			return respondError(ctx, errs.NewValueIsInvalidError("service_id"))
		}
		selections = append(selections, commands.ServiceSelection{
			ServiceID: serviceID,
			Quantity:  sel.Quantity,
		})
	}

	priority, err := order.ParsePriority(req.Priority)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewPromoteQuoteCommand(
		quoteID, kernel.NewUUID(), selections, priority,
		req.QuotedPrice, req.ScheduledDeliveryDate, req.ScheduledPickupDate,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	o, err := s.promoteQuoteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusCreated, newOrderResponse(o))
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, orders)
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status - the
// authoritative status edit.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("id"))
	}

	var req changeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, newStatusChangeResponse(result))
}

// MoveOrder handles POST /api/v1/orders/:id/move - a board move validated
// against the transition table.
func (s *Server) MoveOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("id"))
	}

	var req moveOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	from, err := order.ParseStatus(req.From)
	if err != nil {
		return respondError(ctx, err)
	}

	to, err := order.ParseStatus(req.To)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMoveOrderCommand(orderID, from, to)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.moveOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, newStatusChangeResponse(result))
}

// UpdateOrderDetails handles PATCH /api/v1/orders/:id - edits driver,
// schedule and final price.
func (s *Server) UpdateOrderDetails(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("id"))
	}

	var req updateOrderDetailsRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	cmd, err := commands.NewUpdateOrderDetailsCommand(
		orderID, req.AssignedTo,
		req.ScheduledDeliveryDate, req.ScheduledPickupDate,
		req.FinalPrice,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	o, err := s.updateOrderDetailsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, newOrderResponse(o))
}

// AdjustLineDescription handles PATCH /api/v1/orders/:id/lines/:lineId.
func (s *Server) AdjustLineDescription(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("id"))
	}

	lineID, err := kernel.UUIDFromString(ctx.Param("lineId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("lineId"))
	}

	var req adjustLineDescriptionRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	cmd, err := commands.NewAdjustLineDescriptionCommand(orderID, lineID, req.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	o, err := s.adjustLineDescriptionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, newOrderResponse(o))
}

// NotifyOrder handles POST /api/v1/orders/:id/notify - explicitly sends a
// status notification to the customer.
func (s *Server) NotifyOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("id"))
	}

	var req notifyOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	var attachment *services.Attachment
	if req.Attachment != nil {
		attachment = &services.Attachment{
			Filename:    req.Attachment.Filename,
			ContentType: req.Attachment.ContentType,
			Content:     req.Attachment.Content,
		}
	}

	cmd, err := commands.NewSendOrderNotificationCommand(orderID, status, attachment)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.sendNotificationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, notifyResponse{
		Sent:     result.Sent,
		Template: string(result.Template),
	})
}

// GetDumpsterBoard handles GET /api/v1/dumpsters.
func (s *Server) GetDumpsterBoard(ctx echo.Context) error {
	query := queries.NewGetDumpsterBoardQuery()

	dumpsters, err := s.getDumpsterBoardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, dumpsters)
}

// AssignDumpster handles POST /api/v1/dumpsters/:id/assign.
func (s *Server) AssignDumpster(ctx echo.Context) error {
	dumpsterID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("id"))
	}

	var req assignDumpsterRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("order_id"))
	}

	cmd, err := commands.NewAssignDumpsterCommand(dumpsterID, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	d, err := s.assignDumpsterHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, map[string]any{
		"id":               d.ID().String(),
		"name":             d.Name(),
		"status":           string(d.Status()),
		"current_order_id": orderID.String(),
	})
}

// ReleaseDumpster handles POST /api/v1/dumpsters/:id/release.
func (s *Server) ReleaseDumpster(ctx echo.Context) error {
	dumpsterID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("id"))
	}

	cmd, err := commands.NewReleaseDumpsterCommand(dumpsterID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.releaseDumpsterHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, map[string]any{
		"id":     dumpsterID.String(),
		"status": "available",
	})
}

// GetServiceCatalog handles GET /api/v1/services.
func (s *Server) GetServiceCatalog(ctx echo.Context) error {
	query := queries.NewGetServiceCatalogQuery()

	catalog, err := s.getServiceCatalogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, catalog)
}

// InvoiceWebhook handles POST /webhooks/invoices - the payments provider's
// event feed. Unrecognized events are acknowledged with 200 so the provider
// does not retry them.
func (s *Server) InvoiceWebhook(ctx echo.Context) error {
	var req invoiceWebhookRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	cmd, err := commands.NewRecordInvoiceEventCommand(
		req.EventType, req.EventID, req.OrderNumber, req.InvoiceStatus,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.recordInvoiceEventHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, webhookResponse{Handled: result.Handled})
}

// newStatusChangeResponse shapes a status mutation result, surfacing the
// partial-failure state of a completion whose asset free is still pending.
func newStatusChangeResponse(result commands.ChangeOrderStatusResult) statusChangeResponse {
	resp := statusChangeResponse{
		Order:          newOrderResponse(result.Order),
		ReleasePending: result.ReleasePending,
	}

	if result.FreedDumpsterID != nil {
		s := result.FreedDumpsterID.String()
		resp.FreedDumpsterID = &s
	}
	if result.ReleaseError != nil {
		resp.ReleaseError = result.ReleaseError.Error()
	}

	return resp
}

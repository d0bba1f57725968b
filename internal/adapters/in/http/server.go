package http

import (
	"errors"
	"net/http"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	advanceOrderHandler    commands.AdvanceOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	returnEquipmentHandler commands.ReturnEquipmentCommandHandler
	createStaffHandler     commands.CreateStaffCommandHandler

	// Query handlers
	getKanbanBoardHandler queries.GetKanbanBoardQueryHandler
	getOrderHandler       queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	returnEquipmentHandler commands.ReturnEquipmentCommandHandler,
	createStaffHandler commands.CreateStaffCommandHandler,
	getKanbanBoardHandler queries.GetKanbanBoardQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		advanceOrderHandler:    advanceOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		returnEquipmentHandler: returnEquipmentHandler,
		createStaffHandler:     createStaffHandler,
		getKanbanBoardHandler:  getKanbanBoardHandler,
		getOrderHandler:        getOrderHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/advance", s.AdvanceOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/equipment/return", s.ReturnEquipment)
	api.GET("/kanban", s.GetKanbanBoard)
	api.POST("/staff", s.CreateStaff)
}

// CreateOrder handles POST /api/v1/orders - places a new catering order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrder
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}
	menuID, err := kernel.UUIDFromString(req.MenuID)
	if err != nil {
		return badRequest(ctx, "Invalid menu id: "+err.Error())
	}
	pricePerPerson, err := kernel.MoneyFromString(req.PricePerPerson)
	if err != nil {
		return badRequest(ctx, "Invalid price per person: "+err.Error())
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, menuID,
		req.Headcount, req.MinPersons,
		pricePerPerson,
		req.Street, req.City,
		req.DeliveryAt,
		req.SpecialRequests,
		req.CookingRequired,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with its
// pricing, equipment state, and status history.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromQueryResponse(resp))
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance - moves an order to
// the next workflow stage and assigns the acting staff member to it.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, actorID, err := orderActionIDs(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, actorID)
	if err != nil {
		return badRequest(ctx, "Invalid advance data: "+err.Error())
	}

	if handleErr := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels an order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	var req CancelOrder
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actorID, req.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid cancel data: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReturnEquipment handles POST /api/v1/orders/:id/equipment/return - records
// the return of loaned serving equipment.
func (s *Server) ReturnEquipment(ctx echo.Context) error {
	orderID, actorID, err := orderActionIDs(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewReturnEquipmentCommand(orderID, actorID)
	if err != nil {
		return badRequest(ctx, "Invalid return data: "+err.Error())
	}

	if handleErr := s.returnEquipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetKanbanBoard handles GET /api/v1/kanban - returns the fulfillment board.
// An optional assigned_to query parameter narrows the board to one staff
// member's orders.
func (s *Server) GetKanbanBoard(ctx echo.Context) error {
	var assignedTo *kernel.UUID
	if raw := ctx.QueryParam("assigned_to"); raw != "" {
		staffID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid assigned_to: "+err.Error())
		}
		assignedTo = &staffID
	}

	query, err := queries.NewGetKanbanBoardQuery(assignedTo)
	if err != nil {
		return badRequest(ctx, "Invalid board query: "+err.Error())
	}

	board, err := s.getKanbanBoardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, boardFromProjection(board))
}

// CreateStaff handles POST /api/v1/staff - registers a staff member.
func (s *Server) CreateStaff(ctx echo.Context) error {
	var req NewStaff
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	staffID := kernel.NewUUID()

	cmd, err := commands.NewCreateStaffCommand(staffID, req.Name)
	if err != nil {
		return badRequest(ctx, "Invalid staff data: "+err.Error())
	}

	if handleErr := s.createStaffHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: staffID.String()})
}

func orderActionIDs(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	var req OrderAction
	if err := ctx.Bind(&req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid request body")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid order id: " + err.Error())
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid actor id: " + err.Error())
	}

	return orderID, actorID, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps application errors onto HTTP status codes. Validation
// failures are client errors, missing aggregates are 404, workflow and
// version conflicts are 409, and equipment rule violations are 422.
func domainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, errs.ErrVersionIsInvalid):
		code = http.StatusConflict
	case errors.Is(err, order.ErrEquipmentNotApplicable),
		errors.Is(err, order.ErrEquipmentNotOnLoan),
		errors.Is(err, order.ErrEquipmentAlreadyCharged):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

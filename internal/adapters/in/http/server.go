package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hogtrade/internal/core/application/usecases/commands"
	"hogtrade/internal/core/application/usecases/queries"
	"hogtrade/internal/core/domain/model/delivery"
	"hogtrade/internal/core/domain/model/kernel"
	"hogtrade/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the hog trading API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createTransactionHandler commands.CreateTransactionCommandHandler
	recordDeliveryHandler    commands.RecordDeliveryCommandHandler

	// Query handlers
	getAvailableHogsHandler queries.GetAvailableHogsQueryHandler
	getAllHogsHandler       queries.GetAllHogsQueryHandler
	getDeliveriesHandler    queries.GetDeliveriesQueryHandler
	getTransactionsHandler  queries.GetTransactionsQueryHandler
	getTransactionHandler   queries.GetTransactionQueryHandler
	getCustomersHandler     queries.GetCustomersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createTransactionHandler commands.CreateTransactionCommandHandler,
	recordDeliveryHandler commands.RecordDeliveryCommandHandler,
	getAvailableHogsHandler queries.GetAvailableHogsQueryHandler,
	getAllHogsHandler queries.GetAllHogsQueryHandler,
	getDeliveriesHandler queries.GetDeliveriesQueryHandler,
	getTransactionsHandler queries.GetTransactionsQueryHandler,
	getTransactionHandler queries.GetTransactionQueryHandler,
	getCustomersHandler queries.GetCustomersQueryHandler,
) *Server {
	return &Server{
		createTransactionHandler: createTransactionHandler,
		recordDeliveryHandler:    recordDeliveryHandler,
		getAvailableHogsHandler:  getAvailableHogsHandler,
		getAllHogsHandler:        getAllHogsHandler,
		getDeliveriesHandler:     getDeliveriesHandler,
		getTransactionsHandler:   getTransactionsHandler,
		getTransactionHandler:    getTransactionHandler,
		getCustomersHandler:      getCustomersHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/health", s.Health)
	api.GET("/hogs", s.GetHogs)
	api.GET("/hogs/available", s.GetAvailableHogs)
	api.GET("/deliveries", s.GetDeliveries)
	api.POST("/deliveries", s.RecordDelivery)
	api.GET("/transactions", s.GetTransactions)
	api.GET("/transactions/:id", s.GetTransaction)
	api.POST("/transactions", s.CreateTransaction)
	api.GET("/customers", s.GetCustomers)
}

// Health handles GET /api/v1/health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetAvailableHogs handles GET /api/v1/hogs/available - retrieves unsold hogs.
func (s *Server) GetAvailableHogs(ctx echo.Context) error {
	query := queries.NewGetAvailableHogsQuery()

	hogs, err := s.getAvailableHogsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve available hogs",
		})
	}

	response := make([]Hog, len(hogs))
	for i, h := range hogs {
		response[i] = Hog{
			ID:            h.ID.String(),
			Eartag:        h.Eartag,
			LiveWeight:    h.LiveWeight,
			FarmgatePrice: h.FarmgatePrice,
			DeliveryID:    uuidString(h.DeliveryID),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetHogs handles GET /api/v1/hogs - retrieves the full inventory.
func (s *Server) GetHogs(ctx echo.Context) error {
	query := queries.NewGetAllHogsQuery()

	hogs, err := s.getAllHogsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve hogs",
		})
	}

	response := make([]Hog, len(hogs))
	for i, h := range hogs {
		response[i] = Hog{
			ID:            h.ID.String(),
			Eartag:        h.Eartag,
			LiveWeight:    h.LiveWeight,
			FarmgatePrice: h.FarmgatePrice,
			DeliveryID:    uuidString(h.DeliveryID),
			TransactionID: uuidString(h.TransactionID),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveries handles GET /api/v1/deliveries - retrieves a delivery page
// with reporting summaries. Page and pageSize query parameters are parsed
// leniently: non-numeric or missing values silently fall back to page 1,
// size 10.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	page := intQueryParam(ctx, "page", 1)
	pageSize := intQueryParam(ctx, "pageSize", 10)

	query := queries.NewGetDeliveriesQuery(page, pageSize)

	summaries, err := s.getDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve deliveries",
		})
	}

	response := make([]DeliverySummary, len(summaries))
	for i, summary := range summaries {
		response[i] = DeliverySummary{
			ID:                   summary.ID.String(),
			ArrivalDate:          formatDate(summary.ArrivalDate),
			Supplier:             summary.Supplier,
			ModeOfPayment:        summary.ModeOfPayment,
			NumberOfHogs:         summary.NumberOfHogs,
			TotalLiveWeight:      summary.TotalLiveWeight,
			TotalAmount:          summary.TotalAmount,
			AverageFarmgatePrice: summary.AverageFarmgatePrice,
			AverageWeight:        summary.AverageWeight,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RecordDelivery handles POST /api/v1/deliveries - records a supplier intake.
func (s *Server) RecordDelivery(ctx echo.Context) error {
	var body NewDelivery
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	arrivalDate, err := time.Parse(dateLayout, body.ArrivalDate)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid arrival date",
		})
	}

	supplierID, err := kernel.UUIDFromString(body.SupplierID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid supplier ID",
		})
	}

	intakes := make([]delivery.HogIntake, len(body.Hogs))
	for i, row := range body.Hogs {
		intakes[i] = delivery.HogIntake{
			Eartag:        row.Eartag,
			LiveWeight:    row.LiveWeight,
			FarmgatePrice: row.FarmgatePrice,
		}
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewRecordDeliveryCommand(
		deliveryID, arrivalDate, body.ModeOfPayment, supplierID, intakes,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery data: " + err.Error(),
		})
	}

	if handleErr := s.recordDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeCommandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: deliveryID.String()})
}

// GetTransactions handles GET /api/v1/transactions - retrieves the sale ledger.
func (s *Server) GetTransactions(ctx echo.Context) error {
	query := queries.NewGetTransactionsQuery()

	sales, err := s.getTransactionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve transactions",
		})
	}

	response := make([]TransactionSummary, len(sales))
	for i, sale := range sales {
		response[i] = TransactionSummary{
			ID:              sale.ID.String(),
			TransactionDate: formatDate(sale.TransactionDate),
			Customer:        sale.Customer,
			NumberOfHogs:    sale.NumberOfHogs,
			TotalAmount:     sale.TotalAmount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTransaction handles GET /api/v1/transactions/:id - retrieves one sale.
func (s *Server) GetTransaction(ctx echo.Context) error {
	transactionID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Transaction not found",
		})
	}

	query, err := queries.NewGetTransactionQuery(transactionID)
	if err != nil {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Transaction not found",
		})
	}

	sale, err := s.getTransactionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Transaction not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve transaction",
		})
	}

	hogLines := make([]TransactionHog, len(sale.Hogs))
	for i, line := range sale.Hogs {
		hogLines[i] = TransactionHog{
			ID:            line.ID.String(),
			Eartag:        line.Eartag,
			LiveWeight:    line.LiveWeight,
			FarmgatePrice: line.FarmgatePrice,
			Amount:        line.Amount,
		}
	}

	return ctx.JSON(http.StatusOK, TransactionDetail{
		ID:              sale.ID.String(),
		TransactionDate: formatDate(sale.TransactionDate),
		CustomerID:      sale.CustomerID.String(),
		Customer:        sale.Customer,
		Hogs:            hogLines,
		TotalAmount:     sale.TotalAmount,
	})
}

// CreateTransaction handles POST /api/v1/transactions - validates and creates
// a sale. Shape failures return a single coarse form error; value failures
// return per-field errors with the submitted values echoed back.
func (s *Server) CreateTransaction(ctx echo.Context) error {
	var body NewTransaction
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, MalformedRequestResponse{
			FormError: "request body is not valid JSON",
		})
	}

	transactionID := kernel.NewUUID()
	cmd, err := commands.NewCreateTransactionCommand(transactionID, commands.CreateTransactionForm{
		Customer: body.Customer,
		Date:     body.Date,
		Hogs:     body.Hogs,
	})
	if err != nil {
		return s.writeCommandError(ctx, err)
	}

	if handleErr := s.createTransactionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeCommandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: transactionID.String()})
}

// GetCustomers handles GET /api/v1/customers - retrieves the customer directory.
func (s *Server) GetCustomers(ctx echo.Context) error {
	query := queries.NewGetCustomersQuery()

	customers, err := s.getCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve customers",
		})
	}

	response := make([]Customer, len(customers))
	for i, c := range customers {
		response[i] = Customer{
			ID:   c.ID.String(),
			Name: c.Name,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// writeCommandError maps command failures onto HTTP responses.
// Validation and malformed-request errors are structured data for the
// submitter; not-found means a referenced entity does not exist.
func (s *Server) writeCommandError(ctx echo.Context, err error) error {
	var validationErr *commands.ValidationError
	if errors.As(err, &validationErr) {
		return ctx.JSON(http.StatusBadRequest, ValidationErrorResponse{
			FieldErrors: validationErr.FieldErrors,
			Fields: SubmittedFields{
				Customer: validationErr.Customer,
				Date:     validationErr.Date,
				Hogs:     validationErr.Hogs,
			},
		})
	}

	var malformedErr *commands.MalformedRequestError
	if errors.As(err, &malformedErr) {
		return ctx.JSON(http.StatusBadRequest, MalformedRequestResponse{
			FormError: malformedErr.Message,
		})
	}

	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusConflict, Error{
		Code:    http.StatusConflict,
		Message: err.Error(),
	})
}

// intQueryParam parses an integer query parameter with a silent fallback:
// missing or non-numeric values yield the default instead of an error.
func intQueryParam(ctx echo.Context, name string, fallback int) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}

func uuidString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}

	s := id.String()
	return &s
}

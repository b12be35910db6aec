package finance

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/finance/model"
	"hotel/internal/domains/finance/model/dto"
	"hotel/internal/domains/finance/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var listFilters = map[string]string{
	model.FieldType:        gDto.FilterOperatorEq,
	model.FieldCategory:    gDto.FilterOperatorEq,
	model.FieldDescription: gDto.FilterOperatorLike,
	model.FieldDate:        gDto.FilterOperatorEq,
}

type Handler struct {
	service service.Transaction
	otel    otel.Otel
}

func New(service service.Transaction, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/transactions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTransaction)
		routerGroup.Get("/", handler.GetTransactions)
		routerGroup.Get("/all", handler.ListTransactions)
		routerGroup.Get("/summary", handler.GetSummary)
		routerGroup.Get("/options", handler.GetOptions)
		routerGroup.Get("/{id}", handler.GetTransactionByID)
		routerGroup.Patch("/{id}", handler.UpdateTransaction)
		routerGroup.Delete("/{id}", handler.DeleteTransaction)
	})
}

// CreateTransaction stores a new transaction and returns its generated ID.
// @Summary Create a transaction
// @Description Store a new transaction and return its generated ID.
// @Tags Finance
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Create Transaction Request"
// @Success 201 {object} response.Data[gDto.CreatedResponse] "Transaction created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions [post]
func (handler *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTransaction")
	defer scope.End()

	req := dto.CreateTransactionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create transaction")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transaction created " + id)

	response.WithJSON(w, http.StatusCreated, gDto.CreatedResponse{ID: id})
}

// GetTransactions retrieves one page of transactions with optional filters.
// @Summary Get transactions
// @Description Retrieve one page of transactions with optional filters.
// @Tags Finance
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination and sort parameters"
// @Param type query string false "Filter by type (income, expense)"
// @Param category query string false "Filter by category code"
// @Param description query string false "Filter by description (partial match)"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetTransactionsResponse] "Page of transactions"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions [get]
func (handler *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransactions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	transactions, err := handler.service.GetAll(ctx, queryParams, gDto.FilterFromQuery(r, listFilters))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get transactions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, transactions)
}

// ListTransactions retrieves the whole collection in store order.
// @Summary List all transactions
// @Description Retrieve the whole collection in store order.
// @Tags Finance
// @Produce json
// @Success 200 {object} response.Data[[]dto.TransactionResponse] "All transactions"
// @Failure 500 {object} response.Error
// @Router /v1/transactions/all [get]
func (handler *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListTransactions")
	defer scope.End()

	transactions, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list transactions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, transactions)
}

// GetSummary totals income and expense over the ledger, optionally within an
// inclusive from/to day range.
// @Summary Summarize the ledger
// @Description Total income, expense and net, optionally within an inclusive day range.
// @Tags Finance
// @Produce json
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.SummaryResponse] "Summary"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions/summary [get]
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	req := dto.SummaryRequest{
		From: r.URL.Query().Get(constant.RequestParamFrom),
		To:   r.URL.Query().Get(constant.RequestParamTo),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate summary range")

		response.WithError(w, err)

		return
	}

	summary, err := handler.service.Summary(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to summarise transactions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, summary)
}

// GetOptions lists the transaction types and categories.
// @Summary Get transaction options
// @Description List the transaction types and categories.
// @Tags Finance
// @Produce json
// @Success 200 {object} response.Data[dto.OptionsResponse] "Options"
// @Router /v1/transactions/options [get]
func (handler *Handler) GetOptions(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, handler.service.Options())
}

// GetTransactionByID retrieves a transaction by its ID.
// @Summary Get a transaction
// @Description Retrieve a transaction by its ID.
// @Tags Finance
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} response.Data[dto.TransactionResponse] "Transaction"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions/{id} [get]
func (handler *Handler) GetTransactionByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransactionByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	transaction, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get transaction by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, transaction)
}

// UpdateTransaction applies a partial patch to a transaction.
// @Summary Update a transaction
// @Description Apply a partial patch to a transaction.
// @Tags Finance
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.UpdateTransactionRequest true "Update Transaction Request"
// @Success 200 {object} response.Message "Transaction updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions/{id} [patch]
func (handler *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTransaction")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTransactionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update transaction")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transaction updated " + id)

	response.WithMessage(w, http.StatusOK, "Transaction updated successfully")
}

// DeleteTransaction deletes a transaction by its ID.
// @Summary Delete a transaction
// @Description Delete a transaction by its ID.
// @Tags Finance
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} response.Message "Transaction deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions/{id} [delete]
func (handler *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTransaction")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete transaction")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transaction deleted " + id)

	response.WithMessage(w, http.StatusOK, "Transaction deleted successfully")
}

package customer

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/customer/model"
	"hotel/internal/domains/customer/model/dto"
	"hotel/internal/domains/customer/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var listFilters = map[string]string{
	model.FieldName:     gDto.FilterOperatorLike,
	model.FieldPhoneNum: gDto.FilterOperatorEq,
	model.FieldEmail:    gDto.FilterOperatorLike,
	model.FieldStayDate: gDto.FilterOperatorEq,
}

type Handler struct {
	service service.Customer
	otel    otel.Otel
}

func New(service service.Customer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/customers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCustomer)
		routerGroup.Get("/", handler.GetCustomers)
		routerGroup.Get("/all", handler.ListCustomers)
		routerGroup.Get("/{id}", handler.GetCustomerByID)
		routerGroup.Patch("/{id}", handler.UpdateCustomer)
		routerGroup.Delete("/{id}", handler.DeleteCustomer)
	})
}

// CreateCustomer stores a new customer and returns its generated ID.
// @Summary Create a customer
// @Description Store a new customer and return its generated ID.
// @Tags Customer
// @Accept json
// @Produce json
// @Param request body dto.CreateCustomerRequest true "Create Customer Request"
// @Success 201 {object} response.Data[gDto.CreatedResponse] "Customer created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers [post]
func (handler *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCustomer")
	defer scope.End()

	req := dto.CreateCustomerRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create customer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customer created " + id)

	response.WithJSON(w, http.StatusCreated, gDto.CreatedResponse{ID: id})
}

// GetCustomers retrieves one page of customers with optional filters.
// @Summary Get customers
// @Description Retrieve one page of customers with optional filters.
// @Tags Customer
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination and sort parameters"
// @Param name query string false "Filter by name (partial match)"
// @Param phoneNum query string false "Filter by phone number"
// @Param email query string false "Filter by email"
// @Param stayDate query string false "Filter by stay date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetCustomersResponse] "Page of customers"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers [get]
func (handler *Handler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	customers, err := handler.service.GetAll(ctx, queryParams, gDto.FilterFromQuery(r, listFilters))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, customers)
}

// ListCustomers retrieves the whole collection in store order.
// @Summary List all customers
// @Description Retrieve the whole collection in store order.
// @Tags Customer
// @Produce json
// @Success 200 {object} response.Data[[]dto.CustomerResponse] "All customers"
// @Failure 500 {object} response.Error
// @Router /v1/customers/all [get]
func (handler *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListCustomers")
	defer scope.End()

	customers, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list customers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, customers)
}

// GetCustomerByID retrieves a customer by its ID.
// @Summary Get a customer
// @Description Retrieve a customer by its ID.
// @Tags Customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} response.Data[dto.CustomerResponse] "Customer"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers/{id} [get]
func (handler *Handler) GetCustomerByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomerByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	customer, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customer by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, customer)
}

// UpdateCustomer applies a partial patch to a customer.
// @Summary Update a customer
// @Description Apply a partial patch to a customer.
// @Tags Customer
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param request body dto.UpdateCustomerRequest true "Update Customer Request"
// @Success 200 {object} response.Message "Customer updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers/{id} [patch]
func (handler *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCustomer")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCustomerRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update customer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customer updated " + id)

	response.WithMessage(w, http.StatusOK, "Customer updated successfully")
}

// DeleteCustomer deletes a customer by its ID.
// @Summary Delete a customer
// @Description Delete a customer by its ID.
// @Tags Customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} response.Message "Customer deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers/{id} [delete]
func (handler *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCustomer")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete customer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customer deleted " + id)

	response.WithMessage(w, http.StatusOK, "Customer deleted successfully")
}

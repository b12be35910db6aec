package employee

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/employee/model"
	"hotel/internal/domains/employee/model/dto"
	"hotel/internal/domains/employee/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var listFilters = map[string]string{
	model.FieldName:     gDto.FilterOperatorLike,
	model.FieldPosition: gDto.FilterOperatorEq,
	model.FieldPhoneNum: gDto.FilterOperatorEq,
	model.FieldHireDate: gDto.FilterOperatorEq,
}

type Handler struct {
	service service.Employee
	otel    otel.Otel
}

func New(service service.Employee, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/employees", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEmployee)
		routerGroup.Get("/", handler.GetEmployees)
		routerGroup.Get("/all", handler.ListEmployees)
		routerGroup.Get("/positions", handler.GetPositions)
		routerGroup.Get("/{id}", handler.GetEmployeeByID)
		routerGroup.Patch("/{id}", handler.UpdateEmployee)
		routerGroup.Delete("/{id}", handler.DeleteEmployee)
	})
}

// CreateEmployee stores a new employee and returns its generated ID.
// @Summary Create an employee
// @Description Store a new employee and return its generated ID.
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Create Employee Request"
// @Success 201 {object} response.Data[gDto.CreatedResponse] "Employee created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees [post]
func (handler *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEmployee")
	defer scope.End()

	req := dto.CreateEmployeeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create employee")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee created " + id)

	response.WithJSON(w, http.StatusCreated, gDto.CreatedResponse{ID: id})
}

// GetEmployees retrieves one page of employees with optional filters.
// @Summary Get employees
// @Description Retrieve one page of employees with optional filters.
// @Tags Employee
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination and sort parameters"
// @Param name query string false "Filter by name (partial match)"
// @Param position query string false "Filter by position code"
// @Param phoneNum query string false "Filter by phone number"
// @Param hireDate query string false "Filter by hire date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetEmployeesResponse] "Page of employees"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees [get]
func (handler *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployees")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	employees, err := handler.service.GetAll(ctx, queryParams, gDto.FilterFromQuery(r, listFilters))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employees")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employees)
}

// ListEmployees retrieves the whole collection in store order.
// @Summary List all employees
// @Description Retrieve the whole collection in store order.
// @Tags Employee
// @Produce json
// @Success 200 {object} response.Data[[]dto.EmployeeResponse] "All employees"
// @Failure 500 {object} response.Error
// @Router /v1/employees/all [get]
func (handler *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListEmployees")
	defer scope.End()

	employees, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list employees")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employees)
}

// GetPositions lists the employee position codes with their labels.
// @Summary Get positions
// @Description List the employee position codes with their labels.
// @Tags Employee
// @Produce json
// @Success 200 {object} response.Data[[]enum.Option] "Positions"
// @Router /v1/employees/positions [get]
func (handler *Handler) GetPositions(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, handler.service.Positions())
}

// GetEmployeeByID retrieves an employee by its ID.
// @Summary Get an employee
// @Description Retrieve an employee by its ID.
// @Tags Employee
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Data[dto.EmployeeResponse] "Employee"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/{id} [get]
func (handler *Handler) GetEmployeeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployeeByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	employee, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employee by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employee)
}

// UpdateEmployee applies a partial patch to an employee.
// @Summary Update an employee
// @Description Apply a partial patch to an employee.
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param request body dto.UpdateEmployeeRequest true "Update Employee Request"
// @Success 200 {object} response.Message "Employee updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/{id} [patch]
func (handler *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEmployee")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateEmployeeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update employee")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee updated " + id)

	response.WithMessage(w, http.StatusOK, "Employee updated successfully")
}

// DeleteEmployee deletes an employee by its ID.
// @Summary Delete an employee
// @Description Delete an employee by its ID.
// @Tags Employee
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Message "Employee deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/{id} [delete]
func (handler *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEmployee")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete employee")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee deleted " + id)

	response.WithMessage(w, http.StatusOK, "Employee deleted successfully")
}

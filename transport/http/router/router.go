package router

import (
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/customer"
	"hotel/internal/handlers/dashboard"
	"hotel/internal/handlers/employee"
	"hotel/internal/handlers/finance"
	"hotel/internal/handlers/report"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Booking   booking.Handler
	Customer  customer.Handler
	Employee  employee.Handler
	Finance   finance.Handler
	Report    report.Handler
	Dashboard dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Employee.Router(routerGroup)
		r.DomainHandlers.Finance.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}

//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/redis"
	"hotel/infras/s3"
	"hotel/internal/manager"
	"hotel/shared/cache"
	"hotel/shared/docstore"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"

	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	customerRepository "hotel/internal/domains/customer/repository"
	customerService "hotel/internal/domains/customer/service"
	employeeRepository "hotel/internal/domains/employee/repository"
	employeeService "hotel/internal/domains/employee/service"
	financeRepository "hotel/internal/domains/finance/repository"
	financeService "hotel/internal/domains/finance/service"
	reportService "hotel/internal/domains/report/service"

	bookingHandler "hotel/internal/handlers/booking"
	customerHandler "hotel/internal/handlers/customer"
	dashboardHandler "hotel/internal/handlers/dashboard"
	employeeHandler "hotel/internal/handlers/employee"
	financeHandler "hotel/internal/handlers/finance"
	reportHandler "hotel/internal/handlers/report"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	s3.New,
	docstore.Open,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var employeeDomain = wire.NewSet(
	employeeRepository.New,
	employeeService.New,
)

var financeDomain = wire.NewSet(
	financeRepository.New,
	financeService.New,
)

var reportDomain = wire.NewSet(
	provideShell,
	wire.Bind(new(reportService.Catalog), new(*manager.Shell)),
	reportService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	customerDomain,
	employeeDomain,
	financeDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	customerHandler.New,
	employeeHandler.New,
	financeHandler.New,
	reportHandler.New,
	dashboardHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}

package di

import (
	"hotel/internal/manager"

	bookingService "hotel/internal/domains/booking/service"
	customerService "hotel/internal/domains/customer/service"
	employeeService "hotel/internal/domains/employee/service"
	financeService "hotel/internal/domains/finance/service"
)

// provideShell mounts one manager per collection, in menu order, each backed
// by its domain service.
func provideShell(
	bookings bookingService.Booking,
	customers customerService.Customer,
	employees employeeService.Employee,
	transactions financeService.Transaction,
) *manager.Shell {
	return manager.NewShell(
		manager.NewBookingManager(bookings),
		manager.NewCustomerManager(customers),
		manager.NewEmployeeManager(employees),
		manager.NewTransactionManager(transactions),
	)
}

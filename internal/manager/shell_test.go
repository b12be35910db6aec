package manager_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	bookingDto "hotel/internal/domains/booking/model/dto"
	customerDto "hotel/internal/domains/customer/model/dto"
	"hotel/internal/manager"
	"hotel/internal/manager/mocks"
	"hotel/shared/failure"
)

func newShell(t *testing.T) (*mocks.MockBackend[bookingDto.BookingResponse, bookingDto.CreateBookingRequest, bookingDto.UpdateBookingRequest], *customerBackend, *manager.Shell) {
	t.Helper()

	ctrl := gomock.NewController(t)
	bookings := mocks.NewMockBackend[bookingDto.BookingResponse, bookingDto.CreateBookingRequest, bookingDto.UpdateBookingRequest](ctrl)
	customers := mocks.NewMockBackend[customerDto.CustomerResponse, customerDto.CreateCustomerRequest, customerDto.UpdateCustomerRequest](ctrl)

	shell := manager.NewShell(
		manager.NewBookingManager(bookings),
		manager.NewCustomerManager(customers),
	)

	return bookings, customers, shell
}

func TestShell_StartsOnBooking(t *testing.T) {
	bookings, _, shell := newShell(t)

	bookings.EXPECT().List(gomock.Any()).Return([]bookingDto.BookingResponse{{ID: "b-1", RoomNo: "101"}}, nil)

	assert.Equal(t, manager.MenuBooking, shell.Selected())
	require.True(t, shell.Start(context.Background()).OK())

	view := shell.View()
	assert.Equal(t, manager.MenuBooking, view.Selected)
	assert.Equal(t, "Booking Management", view.Screen.Title)
	require.Len(t, view.Screen.Rows, 1)
	assert.Equal(t, "101", view.Screen.Rows[0].Cells[0])

	require.Len(t, view.Menus, 2)
	assert.True(t, view.Menus[0].Selected)
	assert.False(t, view.Menus[1].Selected)
}

func TestShell_Select(t *testing.T) {
	t.Run("by label", func(t *testing.T) {
		_, customers, shell := newShell(t)

		customers.EXPECT().List(gomock.Any()).Return(nil, nil)

		screen, status, err := shell.Select(context.Background(), "Customer Management")

		require.NoError(t, err)
		assert.True(t, status.OK())
		assert.Equal(t, manager.MenuCustomer, screen.Menu())
		assert.Equal(t, manager.MenuCustomer, shell.Selected())
		assert.Equal(t, screen, shell.Current())
	})

	t.Run("remounts on every switch", func(t *testing.T) {
		bookings, customers, shell := newShell(t)

		customers.EXPECT().List(gomock.Any()).Return(nil, nil)
		bookings.EXPECT().List(gomock.Any()).Return(nil, nil)

		_, _, err := shell.Select(context.Background(), "customer")
		require.NoError(t, err)

		_, _, err = shell.Select(context.Background(), "booking")
		require.NoError(t, err)

		assert.Equal(t, manager.MenuBooking, shell.Selected())
	})

	t.Run("unknown menu", func(t *testing.T) {
		_, _, shell := newShell(t)

		_, _, err := shell.Select(context.Background(), "spa")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, manager.MenuBooking, shell.Selected())
	})

	t.Run("menu without screen", func(t *testing.T) {
		_, _, shell := newShell(t)

		_, _, err := shell.Select(context.Background(), "finance")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestShell_Screen(t *testing.T) {
	_, _, shell := newShell(t)

	screen, err := shell.Screen("CUSTOMER")

	require.NoError(t, err)
	assert.Equal(t, manager.MenuCustomer, screen.Menu())
	assert.Equal(t, manager.MenuBooking, shell.Selected(), "lookup does not switch screens")
}

func TestShell_ScreenByCollection(t *testing.T) {
	_, _, shell := newShell(t)

	screen, err := shell.Screen("customers")
	require.NoError(t, err)
	assert.Equal(t, manager.MenuCustomer, screen.Menu())

	_, err = shell.Screen("invoices")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	screens := shell.Screens()
	require.Len(t, screens, 2)
	assert.Equal(t, manager.MenuBooking, screens[0].Menu())
}

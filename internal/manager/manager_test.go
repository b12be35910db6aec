package manager_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	bookingModel "hotel/internal/domains/booking/model"
	bookingDto "hotel/internal/domains/booking/model/dto"
	customerDto "hotel/internal/domains/customer/model/dto"
	"hotel/internal/manager"
	"hotel/internal/manager/mocks"
	"hotel/shared/failure"
)

type customerBackend = mocks.MockBackend[customerDto.CustomerResponse, customerDto.CreateCustomerRequest, customerDto.UpdateCustomerRequest]

func newCustomerManager(t *testing.T) (*customerBackend, *manager.CustomerManager) {
	t.Helper()

	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend[customerDto.CustomerResponse, customerDto.CreateCustomerRequest, customerDto.UpdateCustomerRequest](ctrl)

	return backend, manager.NewCustomerManager(backend)
}

func customers(n int) []customerDto.CustomerResponse {
	res := make([]customerDto.CustomerResponse, n)
	for i := range res {
		res[i] = customerDto.CustomerResponse{
			ID:          fmt.Sprintf("c-%02d", i+1),
			Name:        fmt.Sprintf("Guest %d", i+1),
			PhoneNum:    "0800000000",
			Email:       "guest@example.com",
			StayDate:    "2024-01-01",
			StayDetails: "two nights",
		}
	}

	return res
}

func validDraft() customerDto.CreateCustomerRequest {
	return customerDto.CreateCustomerRequest{
		Name:        "Somsri",
		PhoneNum:    "0899999999",
		Email:       "somsri@example.com",
		StayDate:    "2024-02-14",
		StayDetails: "late check-in",
	}
}

func TestManager_Pagination(t *testing.T) {
	backend, mgr := newCustomerManager(t)

	backend.EXPECT().List(gomock.Any()).Return(customers(17), nil)

	require.True(t, mgr.Mount(context.Background()).OK())

	view := mgr.View()
	assert.Equal(t, 3, view.TotalPages)
	assert.Equal(t, 17, view.Total)
	assert.Equal(t, 1, view.Page)
	assert.Len(t, view.Rows, manager.PageSize)
	assert.Equal(t, 1, view.ShowingFrom)
	assert.Equal(t, 8, view.ShowingTo)

	assert.False(t, mgr.Paginate(manager.DirectionPrev), "prev on the first page is a no-op")
	assert.Equal(t, 1, mgr.View().Page)

	assert.True(t, mgr.Paginate(manager.DirectionNext))
	assert.True(t, mgr.Paginate(manager.DirectionNext))

	view = mgr.View()
	assert.Equal(t, 3, view.Page)
	require.Len(t, view.Rows, 1)
	assert.Equal(t, "c-17", view.Rows[0].Key)
	assert.Equal(t, 17, view.ShowingFrom)
	assert.False(t, view.HasNext)

	assert.False(t, mgr.Paginate(manager.DirectionNext), "next on the last page is a no-op")
	assert.Equal(t, 3, mgr.View().Page)

	assert.False(t, mgr.GoTo(4))
	assert.False(t, mgr.GoTo(0))
	assert.True(t, mgr.GoTo(2))
	assert.Equal(t, "c-09", mgr.View().Rows[0].Key)
}

func TestManager_EmptyCollection(t *testing.T) {
	backend, mgr := newCustomerManager(t)

	backend.EXPECT().List(gomock.Any()).Return(nil, nil)

	mgr.Mount(context.Background())

	view := mgr.View()
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 1, view.TotalPages)
	assert.Empty(t, view.Rows)
	assert.Equal(t, 0, view.ShowingFrom)
	assert.False(t, mgr.Paginate(manager.DirectionNext))
}

func TestManager_PlaceholderCells(t *testing.T) {
	backend, mgr := newCustomerManager(t)

	backend.EXPECT().List(gomock.Any()).Return([]customerDto.CustomerResponse{{ID: "c-1", Name: "Anan"}}, nil)

	mgr.Mount(context.Background())

	view := mgr.View()
	require.Len(t, view.Rows, 1)
	assert.Equal(t, []string{"Anan", manager.Placeholder, manager.Placeholder, manager.Placeholder, manager.Placeholder}, view.Rows[0].Cells)
	assert.Equal(t, "ชื่อ", view.Headers[0].Title)
}

func TestManager_ListFailureKeepsRecords(t *testing.T) {
	backend, mgr := newCustomerManager(t)

	gomock.InOrder(
		backend.EXPECT().List(gomock.Any()).Return(customers(3), nil),
		backend.EXPECT().List(gomock.Any()).Return(nil, failure.ServiceUnavailable(errors.New("store unreachable"))),
	)

	mgr.Mount(context.Background())
	status := mgr.List(context.Background())

	assert.Equal(t, manager.KindStore, status.Kind)
	assert.Equal(t, http.StatusServiceUnavailable, status.Code)
	assert.Len(t, mgr.Records(), 3)
	assert.False(t, mgr.View().Loading)
	assert.Equal(t, status.Kind, mgr.View().Status.Kind)
}

func TestManager_ListIsRepeatable(t *testing.T) {
	backend, mgr := newCustomerManager(t)

	backend.EXPECT().List(gomock.Any()).Return(customers(5), nil).Times(2)

	mgr.List(context.Background())
	first := mgr.Records()

	mgr.List(context.Background())

	assert.Equal(t, first, mgr.Records())
}

func TestManager_StaleListIsDiscarded(t *testing.T) {
	backend, mgr := newCustomerManager(t)

	release := make(chan struct{})
	entered := make(chan struct{})

	gomock.InOrder(
		backend.EXPECT().
			List(gomock.Any()).
			DoAndReturn(func(context.Context) ([]customerDto.CustomerResponse, error) {
				close(entered)
				<-release

				return customers(2), nil
			}),
		backend.EXPECT().List(gomock.Any()).Return(customers(5), nil),
	)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		mgr.List(context.Background())
	}()

	<-entered

	require.True(t, mgr.List(context.Background()).OK())
	assert.Len(t, mgr.Records(), 5)

	close(release)
	wg.Wait()

	assert.Len(t, mgr.Records(), 5, "the earlier fetch resolved last and must not overwrite")
	assert.Equal(t, 5, mgr.View().Total)
	assert.False(t, mgr.View().Loading)
}

func TestManager_DeleteWithoutKey(t *testing.T) {
	backend, mgr := newCustomerManager(t)

	backend.EXPECT().List(gomock.Any()).Return(customers(2), nil)

	mgr.Mount(context.Background())

	status := mgr.Delete(context.Background(), "")

	assert.Equal(t, manager.KindGuard, status.Kind)
	assert.Equal(t, http.StatusBadRequest, status.Code)
	assert.Len(t, mgr.Records(), 2)
}

func TestManager_CreateRefreshesAndClosesForm(t *testing.T) {
	backend, mgr := newCustomerManager(t)

	created := customerDto.CustomerResponse{ID: "c-new", Name: "Somsri"}

	gomock.InOrder(
		backend.EXPECT().List(gomock.Any()).Return(customers(2), nil),
		backend.EXPECT().Create(gomock.Any(), validDraft()).Return("c-new", nil),
		backend.EXPECT().List(gomock.Any()).Return(append(customers(2), created), nil),
	)

	mgr.Mount(context.Background())
	mgr.OpenDraft()
	require.NotNil(t, mgr.View().Draft)

	status := mgr.Create(context.Background(), validDraft())

	require.True(t, status.OK())
	assert.Equal(t, "c-new", status.Key)
	assert.Contains(t, mgr.Records(), created)
	assert.Nil(t, mgr.View().Draft)
}

func TestManager_CreateFailureKeepsForm(t *testing.T) {
	backend, mgr := newCustomerManager(t)

	gomock.InOrder(
		backend.EXPECT().List(gomock.Any()).Return(customers(2), nil),
		backend.EXPECT().Create(gomock.Any(), gomock.Any()).Return("", errors.New("network down")),
	)

	mgr.Mount(context.Background())

	status := mgr.Create(context.Background(), validDraft())

	assert.Equal(t, manager.KindStore, status.Kind)
	assert.Equal(t, validDraft(), mgr.View().Draft)
	assert.Len(t, mgr.Records(), 2)
}

func TestManager_CreateInvalidDraft(t *testing.T) {
	_, mgr := newCustomerManager(t)

	draft := validDraft()
	draft.Email = "not-an-email"
	draft.Name = ""

	status := mgr.Create(context.Background(), draft)

	assert.Equal(t, manager.KindValidation, status.Kind)
	assert.Contains(t, status.Fields, "email")
	assert.Contains(t, status.Fields, "name")
	assert.Equal(t, draft, mgr.View().Draft)
}

func TestManager_RejectsReentrantCreate(t *testing.T) {
	backend, mgr := newCustomerManager(t)

	release := make(chan struct{})
	entered := make(chan struct{})

	backend.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, customerDto.CreateCustomerRequest) (string, error) {
			close(entered)
			<-release

			return "c-1", nil
		})
	backend.EXPECT().List(gomock.Any()).Return(customers(1), nil)

	var (
		wg    sync.WaitGroup
		first manager.Status
	)

	wg.Add(1)

	go func() {
		defer wg.Done()

		first = mgr.Create(context.Background(), validDraft())
	}()

	<-entered

	assert.Equal(t, []manager.Operation{manager.OperationCreate}, mgr.View().InFlight)

	second := mgr.Create(context.Background(), validDraft())
	assert.Equal(t, manager.KindBusy, second.Kind)
	assert.Equal(t, http.StatusConflict, second.Code)

	close(release)
	wg.Wait()

	assert.True(t, first.OK())
	assert.Empty(t, mgr.View().InFlight)
}

func TestManager_Update(t *testing.T) {
	t.Run("success closes the edit form", func(t *testing.T) {
		backend, mgr := newCustomerManager(t)

		records := customers(2)
		renamed := records[0]
		renamed.Name = "Renamed"

		gomock.InOrder(
			backend.EXPECT().List(gomock.Any()).Return(records, nil),
			backend.EXPECT().Update(gomock.Any(), gomock.Any(), "c-01").Return(nil),
			backend.EXPECT().List(gomock.Any()).Return([]customerDto.CustomerResponse{renamed, records[1]}, nil),
		)

		mgr.Mount(context.Background())
		require.True(t, mgr.OpenEdit("c-01"))

		name := "Renamed"
		status := mgr.Update(context.Background(), "c-01", customerDto.UpdateCustomerRequest{Name: &name})

		require.True(t, status.OK())
		assert.Empty(t, mgr.View().EditKey)
		assert.Nil(t, mgr.View().Edit)
		assert.Equal(t, "Renamed", mgr.Records()[0].Name)
	})

	t.Run("failure keeps the edit form", func(t *testing.T) {
		backend, mgr := newCustomerManager(t)

		gomock.InOrder(
			backend.EXPECT().List(gomock.Any()).Return(customers(2), nil),
			backend.EXPECT().Update(gomock.Any(), gomock.Any(), "c-02").Return(failure.NotFound("customer not found")),
		)

		mgr.Mount(context.Background())
		require.True(t, mgr.OpenEdit("c-02"))

		name := "Renamed"
		status := mgr.Update(context.Background(), "c-02", customerDto.UpdateCustomerRequest{Name: &name})

		assert.Equal(t, manager.KindStore, status.Kind)
		assert.Equal(t, http.StatusNotFound, status.Code)
		assert.Equal(t, "c-02", mgr.View().EditKey)
	})

	t.Run("missing key", func(t *testing.T) {
		_, mgr := newCustomerManager(t)

		status := mgr.Update(context.Background(), "", customerDto.UpdateCustomerRequest{})

		assert.Equal(t, manager.KindGuard, status.Kind)
	})
}

func TestManager_DeleteRefetchesAndClearsSelection(t *testing.T) {
	backend, mgr := newCustomerManager(t)

	records := customers(9)

	gomock.InOrder(
		backend.EXPECT().List(gomock.Any()).Return(records, nil),
		backend.EXPECT().Delete(gomock.Any(), "c-09").Return(nil),
		backend.EXPECT().List(gomock.Any()).Return(records[:8], nil),
	)

	mgr.Mount(context.Background())
	require.True(t, mgr.GoTo(2))
	require.True(t, mgr.Select("c-09"))
	assert.NotNil(t, mgr.View().Selected)

	status := mgr.Delete(context.Background(), "c-09")

	require.True(t, status.OK())

	view := mgr.View()
	assert.Nil(t, view.Selected)
	assert.Equal(t, 1, view.Page, "page is clamped once the last page empties")
	assert.Equal(t, 1, view.TotalPages)
}

func TestManager_DeleteFailureLeavesRecords(t *testing.T) {
	backend, mgr := newCustomerManager(t)

	gomock.InOrder(
		backend.EXPECT().List(gomock.Any()).Return(customers(3), nil),
		backend.EXPECT().Delete(gomock.Any(), "c-02").Return(errors.New("timeout")),
	)

	mgr.Mount(context.Background())

	status := mgr.Delete(context.Background(), "c-02")

	assert.Equal(t, manager.KindStore, status.Kind)
	assert.Equal(t, http.StatusInternalServerError, status.Code)
	assert.Len(t, mgr.Records(), 3)
}

func TestManager_SubmitCreate(t *testing.T) {
	backend, mgr := newCustomerManager(t)

	gomock.InOrder(
		backend.EXPECT().Create(gomock.Any(), validDraft()).Return("c-1", nil),
		backend.EXPECT().List(gomock.Any()).Return(customers(1), nil),
	)

	body := `{"name":"Somsri","phoneNum":"0899999999","email":"somsri@example.com","stayDate":"2024-02-14","stayDetails":"late check-in"}`

	status := mgr.SubmitCreate(context.Background(), strings.NewReader(body))

	assert.True(t, status.OK())
}

func TestManager_SubmitCreateUndecodable(t *testing.T) {
	_, mgr := newCustomerManager(t)

	status := mgr.SubmitCreate(context.Background(), strings.NewReader(`{"name":`))

	assert.Equal(t, manager.KindValidation, status.Kind)
	assert.Contains(t, status.Fields, "body")
}

func TestManager_ReplaceDraftReportsViolations(t *testing.T) {
	_, mgr := newCustomerManager(t)

	fields, err := mgr.ReplaceDraft(strings.NewReader(`{"name":"Anan","stayDate":"14/02/2024"}`))

	require.NoError(t, err)
	assert.Contains(t, fields, "stayDate")
	assert.Contains(t, fields, "email")
	assert.NotContains(t, fields, "name")
	assert.Equal(t, customerDto.CreateCustomerRequest{Name: "Anan", StayDate: "14/02/2024"}, mgr.View().Draft)

	_, err = mgr.ReplaceEdit(strings.NewReader(`{}`))
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestBookingManager_RoomTypeOverwritesRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend[bookingDto.BookingResponse, bookingDto.CreateBookingRequest, bookingDto.UpdateBookingRequest](ctrl)
	mgr := manager.NewBookingManager(backend)

	manual := decimal.NewFromInt(500)

	mgr.OpenDraft()
	mgr.SetDraft(bookingDto.CreateBookingRequest{Type: bookingModel.RoomTypeStandard, PricePerNight: &manual})

	draft, ok := mgr.View().Draft.(bookingDto.CreateBookingRequest)
	require.True(t, ok)
	assert.True(t, draft.PricePerNight.Equal(decimal.NewFromInt(1000)), "choosing Standard sets its rate")

	mgr.SetDraft(bookingDto.CreateBookingRequest{Type: bookingModel.RoomTypeStandard, PricePerNight: &manual})

	draft, _ = mgr.View().Draft.(bookingDto.CreateBookingRequest)
	assert.True(t, draft.PricePerNight.Equal(manual), "a rate typed after choosing the type is kept")

	_, err := mgr.ReplaceDraft(strings.NewReader(`{"type":"Deluxe","pricePerNight":500}`))
	require.NoError(t, err)

	draft, _ = mgr.View().Draft.(bookingDto.CreateBookingRequest)
	assert.Equal(t, bookingModel.RoomTypeDeluxe, draft.Type)
	assert.True(t, draft.PricePerNight.Equal(decimal.NewFromInt(2000)), "choosing Deluxe overwrites the manual rate")
}

func TestManager_Schema(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend[bookingDto.BookingResponse, bookingDto.CreateBookingRequest, bookingDto.UpdateBookingRequest](ctrl)
	mgr := manager.NewBookingManager(backend)

	schema := mgr.Schema()

	require.NotNil(t, schema.Create)
	assert.Contains(t, schema.Create.Required, "roomNo")
	assert.NotContains(t, schema.Create.Required, "pricePerNight")

	roomType, ok := schema.Create.Properties.Get("type")
	require.True(t, ok)
	require.Len(t, roomType.OneOf, 3)
	assert.Equal(t, "Standard", roomType.OneOf[0].Const)

	rate, ok := schema.Create.Properties.Get("pricePerNight")
	require.True(t, ok)
	assert.Equal(t, "number", rate.Type)

	assert.Empty(t, schema.Update.Required)
}

func TestManager_Table(t *testing.T) {
	backend, mgr := newCustomerManager(t)

	gomock.InOrder(
		backend.EXPECT().List(gomock.Any()).Return(customers(2), nil),
		backend.EXPECT().List(gomock.Any()).Return(customers(12), nil),
	)

	mgr.Mount(context.Background())

	table, err := mgr.Table(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "customers", table.Collection)
	assert.Len(t, table.Headers, 5)
	assert.Len(t, table.Rows, 12)
	assert.Equal(t, "Guest 12", table.Rows[11][0])
	assert.Len(t, mgr.Records(), 2, "exporting does not replace the screen records")
}

func TestManager_TableError(t *testing.T) {
	backend, mgr := newCustomerManager(t)

	backend.EXPECT().List(gomock.Any()).Return(nil, failure.ServiceUnavailable(errors.New("offline")))

	_, err := mgr.Table(context.Background())

	assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
}

package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/docstore"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gModel "hotel/shared/model"
)

type fixture struct {
	repo  *bookingMocks.MockBooking
	cache *cacheMocks.MockRedisCache
	svc   service.Booking
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return fixture{
		repo:  mockRepo,
		cache: mockCache,
		svc:   service.New(mockRepo, cfg, mockCache, mocks.NewOtel()),
	}
}

func (f fixture) expectInvalidation() {
	f.cache.EXPECT().Clear(gomock.Any(), "booking:gets*").Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), "booking:count*").Return(nil)
}

func stored() model.Booking {
	return model.Booking{
		Metadata:      gModel.Metadata{ID: "b-1"},
		RoomNo:        "101",
		Type:          model.RoomTypeStandard,
		Name:          "Somchai",
		PhoneNum:      "0812345678",
		Amount:        2,
		CheckIn:       "2024-01-01",
		CheckOut:      "2024-01-04",
		PricePerNight: decimal.NewFromInt(1000),
		Total:         decimal.NewFromInt(3000),
	}
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(f fixture)
		wantID    string
		wantErr   bool
	}{
		{
			name: "successful creation computes total",
			req: dto.CreateBookingRequest{
				RoomNo:   "101",
				Type:     model.RoomTypeStandard,
				Name:     "Somchai",
				PhoneNum: "0812345678",
				Amount:   2,
				CheckIn:  "2024-01-01",
				CheckOut: "2024-01-04",
			},
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) (string, error) {
						assert.True(t, booking.PricePerNight.Equal(decimal.NewFromInt(1000)))
						assert.True(t, booking.Total.Equal(decimal.NewFromInt(3000)))

						return "b-1", nil
					})
				f.expectInvalidation()
			},
			wantID: "b-1",
		},
		{
			name: "manual rate overrides room type",
			req: dto.CreateBookingRequest{
				Type:          model.RoomTypeSuite,
				CheckIn:       "2024-01-01",
				CheckOut:      "2024-01-03",
				PricePerNight: func() *decimal.Decimal { d := decimal.NewFromInt(2500); return &d }(),
			},
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) (string, error) {
						assert.True(t, booking.Total.Equal(decimal.NewFromInt(5000)))

						return "b-2", nil
					})
				f.expectInvalidation()
			},
			wantID: "b-2",
		},
		{
			name: "repository error",
			req:  dto.CreateBookingRequest{Type: model.RoomTypeDeluxe},
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return("", errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			id, err := f.svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestBookingService_List(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().List(gomock.Any()).Return([]model.Booking{stored()}, nil)

	res, err := f.svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "b-1", res[0].ID)
	assert.Equal(t, "Standard", res[0].TypeLabel)
	assert.Equal(t, 2, res[0].Amount)
}

func TestBookingService_List_Error(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("unavailable"))

	_, err := f.svc.List(context.Background())

	assert.Error(t, err)
}

func TestBookingService_GetAll(t *testing.T) {
	params := gDto.QueryParams{Limit: 8, Page: 1}

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantErr   bool
		wantPages int
		wantData  int
	}{
		{
			name: "successful get all",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
				f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(17, nil)
				f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Booking{stored()}, nil)
				f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).Return(nil).Times(2)
			},
			wantPages: 3,
			wantData:  17,
		},
		{
			name: "cache hit",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res, ok := value.(*dto.GetBookingsResponse)
						require.True(t, ok)

						res.TotalData = 4
						res.TotalPage = 1

						return nil
					})
			},
			wantPages: 1,
			wantData:  4,
		},
		{
			name: "count error",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
				f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name: "get all error",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
				f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("get all error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPages, res.TotalPage)
			assert.Equal(t, tt.wantData, res.TotalData)
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "found",
			id:   "b-1",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "booking:get:b-1", gomock.Any()).Return(errors.New("miss"))
				f.repo.EXPECT().Get(gomock.Any(), "b-1").Return(stored(), nil)
				f.cache.EXPECT().Save(gomock.Any(), "booking:get:b-1", gomock.Any(), 3600).Return(nil)
			},
		},
		{
			name: "not found",
			id:   "missing",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				f.repo.EXPECT().Get(gomock.Any(), "missing").Return(model.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "empty id",
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Get(context.Background(), tt.id)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.id, res.ID)
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	suite := model.RoomTypeSuite
	checkOut := "2024-01-02"

	tests := []struct {
		name      string
		id        string
		req       dto.UpdateBookingRequest
		setupMock func(f fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "room type change recomputes rate and total",
			id:   "b-1",
			req:  dto.UpdateBookingRequest{Type: &suite},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), "b-1").Return(stored(), nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), "b-1").
					DoAndReturn(func(_ context.Context, fields map[string]any, _ string) error {
						assert.Equal(t, suite, fields[model.FieldType])
						assert.True(t, decimal.NewFromInt(3000).Equal(fields[model.FieldPricePerNight].(decimal.Decimal)))
						assert.True(t, decimal.NewFromInt(9000).Equal(fields[model.FieldTotal].(decimal.Decimal)))

						return nil
					})
				f.cache.EXPECT().Delete(gomock.Any(), "booking:get:b-1").Return(nil)
				f.expectInvalidation()
			},
		},
		{
			name: "date change keeps rate",
			id:   "b-1",
			req:  dto.UpdateBookingRequest{CheckOut: &checkOut},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), "b-1").Return(stored(), nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), "b-1").
					DoAndReturn(func(_ context.Context, fields map[string]any, _ string) error {
						assert.True(t, decimal.NewFromInt(1000).Equal(fields[model.FieldTotal].(decimal.Decimal)))

						return nil
					})
				f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				f.expectInvalidation()
			},
		},
		{
			name:      "empty id makes no store call",
			req:       dto.UpdateBookingRequest{Type: &suite},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "empty patch",
			id:        "b-1",
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "not found",
			id:   "missing",
			req:  dto.UpdateBookingRequest{Type: &suite},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), "missing").Return(model.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "removed concurrently",
			id:   "b-1",
			req:  dto.UpdateBookingRequest{Type: &suite},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), "b-1").Return(stored(), nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), "b-1").Return(docstore.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			id:   "b-1",
			req:  dto.UpdateBookingRequest{Type: &suite},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), "b-1").Return(stored(), nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), "b-1").Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Update(context.Background(), tt.req, tt.id)

			switch {
			case tt.wantCode != 0:
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			case tt.wantErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(f fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful deletion",
			id:   "b-1",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), "b-1").Return(true, nil)
				f.repo.EXPECT().Delete(gomock.Any(), "b-1").Return(nil)
				f.cache.EXPECT().Delete(gomock.Any(), "booking:get:b-1").Return(nil)
				f.expectInvalidation()
			},
		},
		{
			name:      "empty id makes no store call",
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "not found",
			id:   "missing",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), "missing").Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "exist error",
			id:   "b-1",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), "b-1").Return(false, errors.New("exist error"))
			},
			wantErr: true,
		},
		{
			name: "cache failure does not fail the deletion",
			id:   "b-1",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), "b-1").Return(true, nil)
				f.repo.EXPECT().Delete(gomock.Any(), "b-1").Return(nil)
				f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Delete(context.Background(), tt.id)

			switch {
			case tt.wantCode != 0:
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			case tt.wantErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_ErrorsAreTraced(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	recorder := mocks.NewRecorder()
	svc := service.New(mockRepo, &config.Config{}, cacheMocks.NewMockRedisCache(ctrl), recorder)

	mockRepo.EXPECT().Exist(gomock.Any(), "gone").Return(false, nil)

	err := svc.Delete(context.Background(), "gone")
	require.Error(t, err)

	scope := recorder.Scope("service.Delete")
	require.NotNil(t, scope)
	require.Len(t, scope.Errors(), 1)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(scope.Errors()[0]))
	assert.True(t, scope.Ended())
}

func TestBookingService_Quote(t *testing.T) {
	f := newFixture(t)

	res := f.svc.Quote(dto.QuoteRequest{Type: model.RoomTypeDeluxe, CheckIn: "2024-01-01", CheckOut: "2024-01-04"})

	assert.Equal(t, "Deluxe", res.TypeLabel)
	assert.True(t, res.Nights.Equal(decimal.NewFromInt(3)))
	assert.True(t, res.PricePerNight.Equal(decimal.NewFromInt(2000)))
	assert.True(t, res.Total.Equal(decimal.NewFromInt(6000)))

	assert.Len(t, f.svc.RoomTypes(), 3)
}

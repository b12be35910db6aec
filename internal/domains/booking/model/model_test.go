package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/internal/domains/booking/model"
	"hotel/shared/timezone"
)

func TestCalculateTotal(t *testing.T) {
	rate := decimal.NewFromInt(1000)

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int64
	}{
		{name: "three nights", checkIn: "2024-01-01", checkOut: "2024-01-04", want: 3000},
		{name: "equal dates", checkIn: "2024-01-01", checkOut: "2024-01-01", want: 0},
		{name: "check-out before check-in", checkIn: "2024-01-04", checkOut: "2024-01-01", want: 0},
		{name: "across a month", checkIn: "2024-01-30", checkOut: "2024-02-02", want: 3000},
		{name: "leap day", checkIn: "2024-02-28", checkOut: "2024-03-01", want: 2000},
		{name: "unparsable", checkIn: "soon", checkOut: "2024-01-04", want: 0},
		{name: "missing check-out", checkIn: "2024-01-01", checkOut: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.CalculateTotal(tt.checkIn, tt.checkOut, rate)

			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)
		})
	}
}

func TestCalculateTotal_AcrossDaylightSaving(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	timezone.SetLocation(newYork)
	t.Cleanup(func() { timezone.SetLocation(time.UTC) })

	rate := decimal.NewFromInt(1000)

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int64
	}{
		{name: "fall back inside the stay", checkIn: "2024-11-02", checkOut: "2024-11-04", want: 2000},
		{name: "fall back night", checkIn: "2024-11-03", checkOut: "2024-11-04", want: 1000},
		{name: "spring forward night", checkIn: "2024-03-10", checkOut: "2024-03-11", want: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.CalculateTotal(tt.checkIn, tt.checkOut, rate)

			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)
		})
	}
}

func TestNights_PartialDayRoundsUp(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, model.Nights(start, start.Add(25*time.Hour)).Equal(decimal.NewFromInt(2)))
	assert.True(t, model.Nights(start, start.Add(time.Millisecond)).Equal(decimal.NewFromInt(1)))
	assert.True(t, model.Nights(start, start.Add(-time.Hour)).IsZero())
}

func TestSelectRoomType(t *testing.T) {
	booking := model.Booking{PricePerNight: decimal.NewFromInt(500)}

	booking.SelectRoomType(model.RoomTypeDeluxe)

	assert.Equal(t, model.RoomTypeDeluxe, booking.Type)
	assert.Equal(t, "Deluxe", model.RoomTypes.Label(booking.Type))
	assert.True(t, booking.PricePerNight.Equal(decimal.NewFromInt(2000)))

	booking.SelectRoomType(model.RoomTypeSuite)
	assert.True(t, booking.PricePerNight.Equal(decimal.NewFromInt(3000)))

	booking.SelectRoomType("Penthouse")
	assert.True(t, booking.PricePerNight.Equal(decimal.NewFromInt(3000)))
	assert.False(t, booking.Type.IsValid())
}

func TestRecalculate(t *testing.T) {
	booking := model.Booking{CheckIn: "2024-01-01", CheckOut: "2024-01-04"}
	booking.SelectRoomType(model.RoomTypeStandard)
	booking.Recalculate()

	assert.True(t, booking.Total.Equal(decimal.NewFromInt(3000)))

	booking.CheckOut = "2024-01-01"
	booking.Recalculate()
	assert.True(t, booking.Total.IsZero())
}

func TestBooking_DecodesLegacyDocument(t *testing.T) {
	raw := `{"roomNo":"101","type":"deluxe","name":"Somchai","phoneNum":"0812345678",
		"amount":"2","checkIn":"2024-01-01","checkOut":"2024-01-04","pricePerNight":2000,"total":6000}`

	var booking model.Booking
	require.NoError(t, json.Unmarshal([]byte(raw), &booking))

	assert.Equal(t, model.RoomTypeDeluxe, booking.Type)
	assert.Equal(t, 2, int(booking.Amount))
	assert.True(t, booking.Total.Equal(decimal.NewFromInt(6000)))
}

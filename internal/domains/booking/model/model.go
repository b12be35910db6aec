package model

import (
	"time"

	"hotel/shared/enum"
	"hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/shopspring/decimal"
)

const (
	CollectionName = "bookings"
	EntityName     = "booking"

	FieldRoomNo        = "roomNo"
	FieldType          = "type"
	FieldName          = "name"
	FieldPhoneNum      = "phoneNum"
	FieldAmount        = "amount"
	FieldCheckIn       = "checkIn"
	FieldCheckOut      = "checkOut"
	FieldPricePerNight = "pricePerNight"
	FieldTotal         = "total"
)

// RoomType codes are the labels stored by earlier versions of the dashboard.
type RoomType string

const (
	RoomTypeStandard RoomType = "Standard"
	RoomTypeDeluxe   RoomType = "Deluxe"
	RoomTypeSuite    RoomType = "Suite"
)

var RoomTypes = enum.NewSet(
	enum.Entry[RoomType]{Code: RoomTypeStandard, Label: "Standard"},
	enum.Entry[RoomType]{Code: RoomTypeDeluxe, Label: "Deluxe"},
	enum.Entry[RoomType]{Code: RoomTypeSuite, Label: "Suite"},
)

var rates = map[RoomType]decimal.Decimal{
	RoomTypeStandard: decimal.NewFromInt(1000),
	RoomTypeDeluxe:   decimal.NewFromInt(2000),
	RoomTypeSuite:    decimal.NewFromInt(3000),
}

func (t RoomType) IsValid() bool {
	return RoomTypes.Valid(t)
}

// Options lists every choice of the set the value belongs to.
func (RoomType) Options() []enum.Option {
	return RoomTypes.Options()
}

func (t *RoomType) UnmarshalJSON(data []byte) error {
	return enum.Unmarshal(RoomTypes, data, t)
}

// Rate is the nightly rate of the room type.
func (t RoomType) Rate() (decimal.Decimal, bool) {
	rate, ok := rates[t]

	return rate, ok
}

type Booking struct {
	model.Metadata
	RoomNo        string          `json:"roomNo"`
	Type          RoomType        `json:"type"`
	Name          string          `json:"name"`
	PhoneNum      string          `json:"phoneNum"`
	Amount        model.Count     `json:"amount"`
	CheckIn       string          `json:"checkIn"`
	CheckOut      string          `json:"checkOut"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	Total         decimal.Decimal `json:"total"`
}

// SelectRoomType sets the type and overwrites the nightly rate with the
// rate of that type. Unknown types leave the rate untouched.
func (b *Booking) SelectRoomType(roomType RoomType) {
	b.Type = roomType

	if rate, ok := roomType.Rate(); ok {
		b.PricePerNight = rate
	}
}

// Recalculate derives Total from the current dates and nightly rate.
func (b *Booking) Recalculate() {
	b.Total = CalculateTotal(b.CheckIn, b.CheckOut, b.PricePerNight)
}

var millisPerDay = decimal.NewFromInt(int64(24 * time.Hour / time.Millisecond))

// Nights counts started days between check-in and check-out. Spans that are
// not positive count as zero.
func Nights(checkIn, checkOut time.Time) decimal.Decimal {
	span := decimal.NewFromInt(checkOut.Sub(checkIn).Milliseconds())
	if !span.IsPositive() {
		return decimal.Zero
	}

	return span.Div(millisPerDay).Ceil()
}

// CalculateTotal is nights times rate. Dates that do not parse yield zero.
// Days are compared as calendar dates, so a daylight saving change inside
// the stay does not add or remove a night.
func CalculateTotal(checkIn, checkOut string, rate decimal.Decimal) decimal.Decimal {
	start, err := timezone.ParseCalendarDay(checkIn)
	if err != nil {
		return decimal.Zero
	}

	end, err := timezone.ParseCalendarDay(checkOut)
	if err != nil {
		return decimal.Zero
	}

	return Nights(start, end).Mul(rate)
}

package dto

import (
	"hotel/internal/domains/booking/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"

	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	RoomNo        string           `json:"roomNo"                  validate:"required,max=20"`
	Type          model.RoomType   `json:"type"                    validate:"required,enum"`
	Name          string           `json:"name"                    validate:"required,max=100"`
	PhoneNum      string           `json:"phoneNum"                validate:"required,max=20"`
	Amount        gModel.Count     `json:"amount"                  validate:"required,gte=1"`
	CheckIn       string           `json:"checkIn"                 validate:"required,day"`
	CheckOut      string           `json:"checkOut"                validate:"required,day"`
	PricePerNight *decimal.Decimal `json:"pricePerNight,omitempty"`
}

// ToModel derives the nightly rate from the room type unless a rate was
// entered after choosing it, then computes the total.
func (c *CreateBookingRequest) ToModel() model.Booking {
	booking := model.Booking{
		RoomNo:   c.RoomNo,
		Name:     c.Name,
		PhoneNum: c.PhoneNum,
		Amount:   c.Amount,
		CheckIn:  c.CheckIn,
		CheckOut: c.CheckOut,
	}

	booking.SelectRoomType(c.Type)

	if c.PricePerNight != nil {
		booking.PricePerNight = *c.PricePerNight
	}

	booking.Recalculate()

	return booking
}

type UpdateBookingRequest struct {
	RoomNo        *string          `json:"roomNo,omitempty"        validate:"omitempty,min=1,max=20"`
	Type          *model.RoomType  `json:"type,omitempty"          validate:"omitempty,enum"`
	Name          *string          `json:"name,omitempty"          validate:"omitempty,min=1,max=100"`
	PhoneNum      *string          `json:"phoneNum,omitempty"      validate:"omitempty,min=1,max=20"`
	Amount        *gModel.Count    `json:"amount,omitempty"        validate:"omitempty,gte=1"`
	CheckIn       *string          `json:"checkIn,omitempty"       validate:"omitempty,day"`
	CheckOut      *string          `json:"checkOut,omitempty"      validate:"omitempty,day"`
	PricePerNight *decimal.Decimal `json:"pricePerNight,omitempty"`
}

// ApplyTo merges the patch onto a stored booking. Choosing a room type
// overwrites the rate unless a rate is part of the same patch, and the
// total is always recomputed.
func (u *UpdateBookingRequest) ApplyTo(booking *model.Booking) {
	if u.RoomNo != nil {
		booking.RoomNo = *u.RoomNo
	}

	if u.Type != nil {
		booking.SelectRoomType(*u.Type)
	}

	if u.Name != nil {
		booking.Name = *u.Name
	}

	if u.PhoneNum != nil {
		booking.PhoneNum = *u.PhoneNum
	}

	if u.Amount != nil {
		booking.Amount = *u.Amount
	}

	if u.CheckIn != nil {
		booking.CheckIn = *u.CheckIn
	}

	if u.CheckOut != nil {
		booking.CheckOut = *u.CheckOut
	}

	if u.PricePerNight != nil {
		booking.PricePerNight = *u.PricePerNight
	}

	booking.Recalculate()
}

// Fields returns the document patch for a booking after ApplyTo.
func (u *UpdateBookingRequest) Fields(booking model.Booking) map[string]any {
	fields := shared.TransformFields(*u)

	fields[model.FieldPricePerNight] = booking.PricePerNight
	fields[model.FieldTotal] = booking.Total

	return fields
}

type QuoteRequest struct {
	Type          model.RoomType   `json:"type"                    validate:"required,enum"`
	CheckIn       string           `json:"checkIn"                 validate:"required,day"`
	CheckOut      string           `json:"checkOut"                validate:"required,day"`
	PricePerNight *decimal.Decimal `json:"pricePerNight,omitempty"`
}

type QuoteResponse struct {
	Type          model.RoomType  `json:"type"`
	TypeLabel     string          `json:"typeLabel"`
	Nights        decimal.Decimal `json:"nights"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	Total         decimal.Decimal `json:"total"`
}

type RoomTypeResponse struct {
	Code          model.RoomType  `json:"code"`
	Label         string          `json:"label"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
}

func RoomTypesResponse() []RoomTypeResponse {
	res := make([]RoomTypeResponse, 0, len(model.RoomTypes.Codes()))

	for _, code := range model.RoomTypes.Codes() {
		rate, _ := code.Rate()
		res = append(res, RoomTypeResponse{Code: code, Label: model.RoomTypes.Label(code), PricePerNight: rate})
	}

	return res
}

type BookingResponse struct {
	ID            string          `json:"id"`
	RoomNo        string          `json:"roomNo"`
	Type          model.RoomType  `json:"type"`
	TypeLabel     string          `json:"typeLabel"`
	Name          string          `json:"name"`
	PhoneNum      string          `json:"phoneNum"`
	Amount        int             `json:"amount"`
	CheckIn       string          `json:"checkIn"`
	CheckOut      string          `json:"checkOut"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	Total         decimal.Decimal `json:"total"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomNo = model.RoomNo
	r.Type = model.Type
	r.TypeLabel = typeLabel(model.Type)
	r.Name = model.Name
	r.PhoneNum = model.PhoneNum
	r.Amount = int(model.Amount)
	r.CheckIn = model.CheckIn
	r.CheckOut = model.CheckOut
	r.PricePerNight = model.PricePerNight
	r.Total = model.Total
	r.Metadata.FromModel(model.Metadata)
}

func typeLabel(roomType model.RoomType) string {
	return model.RoomTypes.Label(roomType)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

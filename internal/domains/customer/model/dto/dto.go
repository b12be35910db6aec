package dto

import (
	"hotel/internal/domains/customer/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
)

type CreateCustomerRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	PhoneNum    string `json:"phoneNum"    validate:"required,max=20"`
	Email       string `json:"email"       validate:"required,email,max=100"`
	StayDate    string `json:"stayDate"    validate:"required,day"`
	StayDetails string `json:"stayDetails" validate:"required,max=500"`
}

func (c *CreateCustomerRequest) ToModel() model.Customer {
	return model.Customer{
		Name:        c.Name,
		PhoneNum:    c.PhoneNum,
		Email:       c.Email,
		StayDate:    c.StayDate,
		StayDetails: c.StayDetails,
	}
}

type UpdateCustomerRequest struct {
	Name        *string `json:"name,omitempty"        validate:"omitempty,min=1,max=100"`
	PhoneNum    *string `json:"phoneNum,omitempty"    validate:"omitempty,min=1,max=20"`
	Email       *string `json:"email,omitempty"       validate:"omitempty,email,max=100"`
	StayDate    *string `json:"stayDate,omitempty"    validate:"omitempty,day"`
	StayDetails *string `json:"stayDetails,omitempty" validate:"omitempty,min=1,max=500"`
}

func (u *UpdateCustomerRequest) Fields() map[string]any {
	return shared.TransformFields(*u)
}

type CustomerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PhoneNum    string `json:"phoneNum"`
	Email       string `json:"email"`
	StayDate    string `json:"stayDate"`
	StayDetails string `json:"stayDetails"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.Name = model.Name
	r.PhoneNum = model.PhoneNum
	r.Email = model.Email
	r.StayDate = model.StayDate
	r.StayDetails = model.StayDetails
	r.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}

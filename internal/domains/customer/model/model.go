package model

import "hotel/shared/model"

const (
	CollectionName = "customers"
	EntityName     = "customer"

	FieldName        = "name"
	FieldPhoneNum    = "phoneNum"
	FieldEmail       = "email"
	FieldStayDate    = "stayDate"
	FieldStayDetails = "stayDetails"
)

type Customer struct {
	model.Metadata
	Name        string `json:"name"`
	PhoneNum    string `json:"phoneNum"`
	Email       string `json:"email"`
	StayDate    string `json:"stayDate"`
	StayDetails string `json:"stayDetails"`
}

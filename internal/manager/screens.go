package manager

import (
	"strconv"

	bookingModel "hotel/internal/domains/booking/model"
	bookingDto "hotel/internal/domains/booking/model/dto"
	customerModel "hotel/internal/domains/customer/model"
	customerDto "hotel/internal/domains/customer/model/dto"
	employeeModel "hotel/internal/domains/employee/model"
	employeeDto "hotel/internal/domains/employee/model/dto"
	financeModel "hotel/internal/domains/finance/model"
	financeDto "hotel/internal/domains/finance/model/dto"
	"hotel/shared/enum"
	gModel "hotel/shared/model"

	"github.com/shopspring/decimal"
)

type (
	BookingManager     = Manager[bookingDto.BookingResponse, bookingDto.CreateBookingRequest, bookingDto.UpdateBookingRequest]
	CustomerManager    = Manager[customerDto.CustomerResponse, customerDto.CreateCustomerRequest, customerDto.UpdateCustomerRequest]
	EmployeeManager    = Manager[employeeDto.EmployeeResponse, employeeDto.CreateEmployeeRequest, employeeDto.UpdateEmployeeRequest]
	TransactionManager = Manager[financeDto.TransactionResponse, financeDto.CreateTransactionRequest, financeDto.UpdateTransactionRequest]
)

func amount(value decimal.Decimal) string {
	if value.IsZero() {
		return ""
	}

	return value.String()
}

func count(value int) string {
	if value == 0 {
		return ""
	}

	return strconv.Itoa(value)
}

func NewBookingManager(backend Backend[bookingDto.BookingResponse, bookingDto.CreateBookingRequest, bookingDto.UpdateBookingRequest]) *BookingManager {
	return New(Config[bookingDto.BookingResponse, bookingDto.CreateBookingRequest, bookingDto.UpdateBookingRequest]{
		Menu:       MenuBooking,
		Title:      "Booking Management",
		Collection: bookingModel.CollectionName,
		Columns: []Column[bookingDto.BookingResponse]{
			{Key: bookingModel.FieldRoomNo, Title: "หมายเลขห้อง", Value: func(r bookingDto.BookingResponse) string { return r.RoomNo }},
			{Key: bookingModel.FieldType, Title: "ประเภทห้องพัก", Value: func(r bookingDto.BookingResponse) string { return r.TypeLabel }},
			{Key: bookingModel.FieldName, Title: "ผู้เข้าพัก", Value: func(r bookingDto.BookingResponse) string { return r.Name }},
			{Key: bookingModel.FieldAmount, Title: "จำนวนผู้เข้าพัก", Value: func(r bookingDto.BookingResponse) string { return count(r.Amount) }},
			{Key: bookingModel.FieldCheckIn, Title: "วันที่เช็คอิน", Value: func(r bookingDto.BookingResponse) string { return r.CheckIn }},
			{Key: bookingModel.FieldCheckOut, Title: "วันที่เช็คเอาท์", Value: func(r bookingDto.BookingResponse) string { return r.CheckOut }},
			{Key: bookingModel.FieldPricePerNight, Title: "ราคาห้องพักต่อคืน", Value: func(r bookingDto.BookingResponse) string { return amount(r.PricePerNight) }},
			{Key: bookingModel.FieldTotal, Title: "ราคารวม", Value: func(r bookingDto.BookingResponse) string { return amount(r.Total) }},
		},
		Key: func(r bookingDto.BookingResponse) string { return r.ID },
		NewDraft: func() bookingDto.CreateBookingRequest { return bookingDto.CreateBookingRequest{} },
		EditDraft: func(r bookingDto.BookingResponse) bookingDto.UpdateBookingRequest {
			guests := gModel.Count(r.Amount)

			return bookingDto.UpdateBookingRequest{
				RoomNo:        &r.RoomNo,
				Type:          &r.Type,
				Name:          &r.Name,
				PhoneNum:      &r.PhoneNum,
				Amount:        &guests,
				CheckIn:       &r.CheckIn,
				CheckOut:      &r.CheckOut,
				PricePerNight: &r.PricePerNight,
			}
		},
		ReviseDraft: func(prev, next bookingDto.CreateBookingRequest) bookingDto.CreateBookingRequest {
			if prev.Type != next.Type {
				if rate, ok := next.Type.Rate(); ok {
					next.PricePerNight = &rate
				}
			}

			return next
		},
		ReviseEdit: func(prev, next bookingDto.UpdateBookingRequest) bookingDto.UpdateBookingRequest {
			if next.Type != nil && (prev.Type == nil || *prev.Type != *next.Type) {
				if rate, ok := next.Type.Rate(); ok {
					next.PricePerNight = &rate
				}
			}

			return next
		},
		Options: map[string][]enum.Option{
			bookingModel.FieldType: bookingModel.RoomTypes.Options(),
		},
	}, backend)
}

func NewCustomerManager(backend Backend[customerDto.CustomerResponse, customerDto.CreateCustomerRequest, customerDto.UpdateCustomerRequest]) *CustomerManager {
	return New(Config[customerDto.CustomerResponse, customerDto.CreateCustomerRequest, customerDto.UpdateCustomerRequest]{
		Menu:       MenuCustomer,
		Title:      "Customer Management",
		Collection: customerModel.CollectionName,
		Columns: []Column[customerDto.CustomerResponse]{
			{Key: customerModel.FieldName, Title: "ชื่อ", Value: func(r customerDto.CustomerResponse) string { return r.Name }},
			{Key: customerModel.FieldPhoneNum, Title: "เบอร์โทรศัพท์", Value: func(r customerDto.CustomerResponse) string { return r.PhoneNum }},
			{Key: customerModel.FieldEmail, Title: "อีเมล", Value: func(r customerDto.CustomerResponse) string { return r.Email }},
			{Key: customerModel.FieldStayDetails, Title: "ข้อมูลการเข้าพัก", Value: func(r customerDto.CustomerResponse) string { return r.StayDetails }},
			{Key: customerModel.FieldStayDate, Title: "วันที่เข้าพัก", Value: func(r customerDto.CustomerResponse) string { return r.StayDate }},
		},
		Key:      func(r customerDto.CustomerResponse) string { return r.ID },
		NewDraft: func() customerDto.CreateCustomerRequest { return customerDto.CreateCustomerRequest{} },
		EditDraft: func(r customerDto.CustomerResponse) customerDto.UpdateCustomerRequest {
			return customerDto.UpdateCustomerRequest{
				Name:        &r.Name,
				PhoneNum:    &r.PhoneNum,
				Email:       &r.Email,
				StayDate:    &r.StayDate,
				StayDetails: &r.StayDetails,
			}
		},
	}, backend)
}

func NewEmployeeManager(backend Backend[employeeDto.EmployeeResponse, employeeDto.CreateEmployeeRequest, employeeDto.UpdateEmployeeRequest]) *EmployeeManager {
	return New(Config[employeeDto.EmployeeResponse, employeeDto.CreateEmployeeRequest, employeeDto.UpdateEmployeeRequest]{
		Menu:       MenuEmployee,
		Title:      "Employee Management",
		Collection: employeeModel.CollectionName,
		Columns: []Column[employeeDto.EmployeeResponse]{
			{Key: employeeModel.FieldName, Title: "ชื่อพนักงาน", Value: func(r employeeDto.EmployeeResponse) string { return r.Name }},
			{Key: employeeModel.FieldPosition, Title: "ตำแหน่ง", Value: func(r employeeDto.EmployeeResponse) string { return r.PositionLabel }},
			{Key: employeeModel.FieldPhoneNum, Title: "เบอร์โทรศัพท์", Value: func(r employeeDto.EmployeeResponse) string { return r.PhoneNum }},
			{Key: employeeModel.FieldSalary, Title: "เงินเดือน", Value: func(r employeeDto.EmployeeResponse) string { return amount(r.Salary) }},
			{Key: employeeModel.FieldHireDate, Title: "วันที่เริ่มงาน", Value: func(r employeeDto.EmployeeResponse) string { return r.HireDate }},
		},
		Key:      func(r employeeDto.EmployeeResponse) string { return r.ID },
		NewDraft: func() employeeDto.CreateEmployeeRequest { return employeeDto.CreateEmployeeRequest{} },
		EditDraft: func(r employeeDto.EmployeeResponse) employeeDto.UpdateEmployeeRequest {
			return employeeDto.UpdateEmployeeRequest{
				Name:     &r.Name,
				Position: &r.Position,
				PhoneNum: &r.PhoneNum,
				Salary:   &r.Salary,
				HireDate: &r.HireDate,
			}
		},
		Options: map[string][]enum.Option{
			employeeModel.FieldPosition: employeeModel.Positions.Options(),
		},
	}, backend)
}

func NewTransactionManager(backend Backend[financeDto.TransactionResponse, financeDto.CreateTransactionRequest, financeDto.UpdateTransactionRequest]) *TransactionManager {
	return New(Config[financeDto.TransactionResponse, financeDto.CreateTransactionRequest, financeDto.UpdateTransactionRequest]{
		Menu:       MenuFinance,
		Title:      "Finance Management",
		Collection: financeModel.CollectionName,
		Columns: []Column[financeDto.TransactionResponse]{
			{Key: financeModel.FieldDate, Title: "วันที่", Value: func(r financeDto.TransactionResponse) string { return r.Date }},
			{Key: financeModel.FieldType, Title: "ประเภท", Value: func(r financeDto.TransactionResponse) string { return r.TypeLabel }},
			{Key: financeModel.FieldAmount, Title: "จำนวนเงิน", Value: func(r financeDto.TransactionResponse) string { return amount(r.Amount) }},
			{Key: financeModel.FieldCategory, Title: "หมวดหมู่", Value: func(r financeDto.TransactionResponse) string { return r.CategoryLabel }},
			{Key: financeModel.FieldDescription, Title: "คำอธิบาย", Value: func(r financeDto.TransactionResponse) string { return r.Description }},
		},
		Key: func(r financeDto.TransactionResponse) string { return r.ID },
		NewDraft: func() financeDto.CreateTransactionRequest {
			return financeDto.CreateTransactionRequest{Type: financeModel.TransactionTypeIncome}
		},
		EditDraft: func(r financeDto.TransactionResponse) financeDto.UpdateTransactionRequest {
			return financeDto.UpdateTransactionRequest{
				Type:        &r.Type,
				Amount:      &r.Amount,
				Category:    &r.Category,
				Description: &r.Description,
				Date:        &r.Date,
			}
		},
		Options: map[string][]enum.Option{
			financeModel.FieldType:     financeModel.TransactionTypes.Options(),
			financeModel.FieldCategory: financeModel.Categories.Options(),
		},
	}, backend)
}

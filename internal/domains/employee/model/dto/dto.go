package dto

import (
	"hotel/internal/domains/employee/model"
	"hotel/shared"
	gDto "hotel/shared/dto"

	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name     string          `json:"name"     validate:"required,max=100"`
	Position model.Position  `json:"position" validate:"required,enum"`
	PhoneNum string          `json:"phoneNum" validate:"required,max=20"`
	Salary   decimal.Decimal `json:"salary"   validate:"required"`
	HireDate string          `json:"hireDate" validate:"required,day"`
}

func (c *CreateEmployeeRequest) ToModel() model.Employee {
	return model.Employee{
		Name:     c.Name,
		Position: c.Position,
		PhoneNum: c.PhoneNum,
		Salary:   c.Salary,
		HireDate: c.HireDate,
	}
}

type UpdateEmployeeRequest struct {
	Name     *string          `json:"name,omitempty"     validate:"omitempty,min=1,max=100"`
	Position *model.Position  `json:"position,omitempty" validate:"omitempty,enum"`
	PhoneNum *string          `json:"phoneNum,omitempty" validate:"omitempty,min=1,max=20"`
	Salary   *decimal.Decimal `json:"salary,omitempty"`
	HireDate *string          `json:"hireDate,omitempty" validate:"omitempty,day"`
}

func (u *UpdateEmployeeRequest) Fields() map[string]any {
	return shared.TransformFields(*u)
}

type EmployeeResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Position      model.Position  `json:"position"`
	PositionLabel string          `json:"positionLabel"`
	PhoneNum      string          `json:"phoneNum"`
	Salary        decimal.Decimal `json:"salary"`
	HireDate      string          `json:"hireDate"`
	gDto.Metadata
}

func (r *EmployeeResponse) FromModel(model model.Employee) {
	r.ID = model.ID
	r.Name = model.Name
	r.Position = model.Position
	r.PositionLabel = model.Position.Label()
	r.PhoneNum = model.PhoneNum
	r.Salary = model.Salary
	r.HireDate = model.HireDate
	r.Metadata.FromModel(model.Metadata)
}

type GetEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetEmployeesResponse) FromModels(models []model.Employee, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Employees = make([]EmployeeResponse, len(models))
	for i, mod := range models {
		r.Employees[i].FromModel(mod)
	}
}

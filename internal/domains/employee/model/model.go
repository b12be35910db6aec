package model

import (
	"hotel/shared/enum"
	"hotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	CollectionName = "employees"
	EntityName     = "employee"

	FieldName     = "name"
	FieldPosition = "position"
	FieldPhoneNum = "phoneNum"
	FieldSalary   = "salary"
	FieldHireDate = "hireDate"
)

type Position string

const (
	PositionManager      Position = "manager"
	PositionReceptionist Position = "receptionist"
	PositionRoomService  Position = "room_service"
	PositionKitchen      Position = "kitchen"
	PositionHousekeeping Position = "housekeeping"
	PositionDriver       Position = "driver"
)

// Positions accepts the Thai titles stored by earlier versions as labels.
var Positions = enum.NewSet(
	enum.Entry[Position]{Code: PositionManager, Label: "ผู้จัดการโรงแรม", Aliases: []string{"hotel manager"}},
	enum.Entry[Position]{Code: PositionReceptionist, Label: "พนักงานต้อนรับ"},
	enum.Entry[Position]{Code: PositionRoomService, Label: "พนักงานบริการห้อง", Aliases: []string{"room service"}},
	enum.Entry[Position]{Code: PositionKitchen, Label: "พนักงานครัว"},
	enum.Entry[Position]{Code: PositionHousekeeping, Label: "พนักงานทำความสะอาด"},
	enum.Entry[Position]{Code: PositionDriver, Label: "พนักงานขับรถ"},
)

func (p Position) IsValid() bool {
	return Positions.Valid(p)
}

// Options lists every choice of the set the value belongs to.
func (Position) Options() []enum.Option {
	return Positions.Options()
}

func (p Position) Label() string {
	return Positions.Label(p)
}

func (p *Position) UnmarshalJSON(data []byte) error {
	return enum.Unmarshal(Positions, data, p)
}

type Employee struct {
	model.Metadata
	Name     string          `json:"name"`
	Position Position        `json:"position"`
	PhoneNum string          `json:"phoneNum"`
	Salary   decimal.Decimal `json:"salary"`
	HireDate string          `json:"hireDate"`
}

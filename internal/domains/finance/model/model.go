package model

import (
	"hotel/shared/enum"
	"hotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	CollectionName = "transactions"
	EntityName     = "transaction"

	FieldType        = "type"
	FieldAmount      = "amount"
	FieldCategory    = "category"
	FieldDescription = "description"
	FieldDate        = "date"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

var TransactionTypes = enum.NewSet(
	enum.Entry[TransactionType]{Code: TransactionTypeIncome, Label: "รายรับ"},
	enum.Entry[TransactionType]{Code: TransactionTypeExpense, Label: "รายจ่าย"},
)

func (t TransactionType) IsValid() bool {
	return TransactionTypes.Valid(t)
}

// Options lists every choice of the set the value belongs to.
func (TransactionType) Options() []enum.Option {
	return TransactionTypes.Options()
}

func (t TransactionType) Label() string {
	return TransactionTypes.Label(t)
}

func (t *TransactionType) UnmarshalJSON(data []byte) error {
	return enum.Unmarshal(TransactionTypes, data, t)
}

type Category string

const (
	CategoryAccommodation Category = "accommodation"
	CategoryUtilities     Category = "utilities"
	CategorySalary        Category = "salary"
	CategoryMaintenance   Category = "maintenance"
	CategoryOther         Category = "other"
)

var Categories = enum.NewSet(
	enum.Entry[Category]{Code: CategoryAccommodation, Label: "ที่พัก"},
	enum.Entry[Category]{Code: CategoryUtilities, Label: "ค่าสาธารณูปโภค"},
	enum.Entry[Category]{Code: CategorySalary, Label: "เงินเดือน"},
	enum.Entry[Category]{Code: CategoryMaintenance, Label: "ค่าบำรุงรักษา"},
	enum.Entry[Category]{Code: CategoryOther, Label: "อื่นๆ"},
)

func (c Category) IsValid() bool {
	return Categories.Valid(c)
}

// Options lists every choice of the set the value belongs to.
func (Category) Options() []enum.Option {
	return Categories.Options()
}

func (c Category) Label() string {
	return Categories.Label(c)
}

func (c *Category) UnmarshalJSON(data []byte) error {
	return enum.Unmarshal(Categories, data, c)
}

type Transaction struct {
	model.Metadata
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

// Totals accumulates a ledger. Entries of unknown type count toward
// neither side.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Count   int
}

func (t *Totals) Add(transaction Transaction) {
	switch transaction.Type {
	case TransactionTypeIncome:
		t.Income = t.Income.Add(transaction.Amount)
	case TransactionTypeExpense:
		t.Expense = t.Expense.Add(transaction.Amount)
	default:
		return
	}

	t.Count++
}

func (t *Totals) Net() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

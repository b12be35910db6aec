package dto

import (
	"hotel/internal/domains/finance/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	"hotel/shared/enum"

	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	Type        model.TransactionType `json:"type"        validate:"required,enum"`
	Amount      decimal.Decimal       `json:"amount"      validate:"required"`
	Category    model.Category        `json:"category"    validate:"required,enum"`
	Description string                `json:"description" validate:"required,max=500"`
	Date        string                `json:"date"        validate:"required,day"`
}

func (c *CreateTransactionRequest) ToModel() model.Transaction {
	return model.Transaction{
		Type:        c.Type,
		Amount:      c.Amount,
		Category:    c.Category,
		Description: c.Description,
		Date:        c.Date,
	}
}

type UpdateTransactionRequest struct {
	Type        *model.TransactionType `json:"type,omitempty"        validate:"omitempty,enum"`
	Amount      *decimal.Decimal       `json:"amount,omitempty"`
	Category    *model.Category        `json:"category,omitempty"    validate:"omitempty,enum"`
	Description *string                `json:"description,omitempty" validate:"omitempty,min=1,max=500"`
	Date        *string                `json:"date,omitempty"        validate:"omitempty,day"`
}

func (u *UpdateTransactionRequest) Fields() map[string]any {
	return shared.TransformFields(*u)
}

type TransactionResponse struct {
	ID            string                `json:"id"`
	Type          model.TransactionType `json:"type"`
	TypeLabel     string                `json:"typeLabel"`
	Amount        decimal.Decimal       `json:"amount"`
	Category      model.Category        `json:"category"`
	CategoryLabel string                `json:"categoryLabel"`
	Description   string                `json:"description"`
	Date          string                `json:"date"`
	gDto.Metadata
}

func (r *TransactionResponse) FromModel(model model.Transaction) {
	r.ID = model.ID
	r.Type = model.Type
	r.TypeLabel = model.Type.Label()
	r.Amount = model.Amount
	r.Category = model.Category
	r.CategoryLabel = model.Category.Label()
	r.Description = model.Description
	r.Date = model.Date
	r.Metadata.FromModel(model.Metadata)
}

type GetTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetTransactionsResponse) FromModels(models []model.Transaction, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Transactions = make([]TransactionResponse, len(models))
	for i, mod := range models {
		r.Transactions[i].FromModel(mod)
	}
}

// SummaryRequest bounds the ledger by transaction date, both ends inclusive.
// An empty bound is open.
type SummaryRequest struct {
	From string `json:"from" validate:"omitempty,day"`
	To   string `json:"to"   validate:"omitempty,day"`
}

type SummaryResponse struct {
	From    string          `json:"from,omitempty"`
	To      string          `json:"to,omitempty"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
	Count   int             `json:"count"`
}

func (r *SummaryResponse) FromTotals(req SummaryRequest, totals model.Totals) {
	r.From = req.From
	r.To = req.To
	r.Income = totals.Income
	r.Expense = totals.Expense
	r.Net = totals.Net()
	r.Count = totals.Count
}

type OptionsResponse struct {
	Types      []enum.Option `json:"types"`
	Categories []enum.Option `json:"categories"`
}

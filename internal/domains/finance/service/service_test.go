package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	financeMocks "hotel/internal/domains/finance/mocks"
	"hotel/internal/domains/finance/model"
	"hotel/internal/domains/finance/model/dto"
	"hotel/internal/domains/finance/service"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/failure"
)

func setup(t *testing.T) (*financeMocks.MockTransaction, *cacheMocks.MockRedisCache, service.Transaction) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := financeMocks.NewMockTransaction(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return mockRepo, mockCache, service.New(mockRepo, cfg, mockCache, mocks.NewOtel())
}

func ledger() []model.Transaction {
	return []model.Transaction{
		{Type: model.TransactionTypeIncome, Amount: decimal.RequireFromString("3000"), Date: "2024-01-05"},
		{Type: model.TransactionTypeExpense, Amount: decimal.RequireFromString("450.25"), Date: "2024-01-10"},
		{Type: model.TransactionTypeIncome, Amount: decimal.RequireFromString("1000"), Date: "2024-02-01"},
		{Type: model.TransactionTypeExpense, Amount: decimal.RequireFromString("99.75"), Date: "not a date"},
	}
}

func TestTransactionService_Summary(t *testing.T) {
	tests := []struct {
		name        string
		req         dto.SummaryRequest
		wantIncome  string
		wantExpense string
		wantNet     string
		wantCount   int
	}{
		{
			name:        "whole ledger",
			wantIncome:  "4000",
			wantExpense: "550",
			wantNet:     "3450",
			wantCount:   4,
		},
		{
			name:        "january",
			req:         dto.SummaryRequest{From: "2024-01-01", To: "2024-01-31"},
			wantIncome:  "3000",
			wantExpense: "450.25",
			wantNet:     "2549.75",
			wantCount:   2,
		},
		{
			name:        "inclusive bounds",
			req:         dto.SummaryRequest{From: "2024-01-10", To: "2024-02-01"},
			wantIncome:  "1000",
			wantExpense: "450.25",
			wantNet:     "549.75",
			wantCount:   2,
		},
		{
			name:        "open start",
			req:         dto.SummaryRequest{To: "2024-01-05"},
			wantIncome:  "3000",
			wantExpense: "0",
			wantNet:     "3000",
			wantCount:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo, mockCache, svc := setup(t)

			mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
			mockRepo.EXPECT().List(gomock.Any()).Return(ledger(), nil)
			mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).Return(nil)

			res, err := svc.Summary(context.Background(), tt.req)

			require.NoError(t, err)
			assert.True(t, res.Income.Equal(decimal.RequireFromString(tt.wantIncome)), "income %s", res.Income)
			assert.True(t, res.Expense.Equal(decimal.RequireFromString(tt.wantExpense)), "expense %s", res.Expense)
			assert.True(t, res.Net.Equal(decimal.RequireFromString(tt.wantNet)), "net %s", res.Net)
			assert.Equal(t, tt.wantCount, res.Count)
		})
	}
}

func TestTransactionService_Summary_InvalidRange(t *testing.T) {
	_, _, svc := setup(t)

	_, err := svc.Summary(context.Background(), dto.SummaryRequest{From: "2024-02-01", To: "2024-01-01"})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = svc.Summary(context.Background(), dto.SummaryRequest{From: "yesterday"})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestTransactionService_Summary_ListError(t *testing.T) {
	mockRepo, mockCache, svc := setup(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
	mockRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("unavailable"))

	_, err := svc.Summary(context.Background(), dto.SummaryRequest{})

	assert.Error(t, err)
}

func TestTransactionService_MutationsInvalidateSummary(t *testing.T) {
	mockRepo, mockCache, svc := setup(t)

	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return("t-1", nil)
	mockCache.EXPECT().Clear(gomock.Any(), "transaction:gets*").Return(nil)
	mockCache.EXPECT().Clear(gomock.Any(), "transaction:count*").Return(nil)
	mockCache.EXPECT().Clear(gomock.Any(), "transaction:summary*").Return(nil)

	_, err := svc.Create(context.Background(), dto.CreateTransactionRequest{
		Type:        model.TransactionTypeIncome,
		Amount:      decimal.NewFromInt(500),
		Category:    model.CategoryAccommodation,
		Description: "room 101",
		Date:        "2024-01-01",
	})

	assert.NoError(t, err)
}

func TestTransactionService_Options(t *testing.T) {
	_, _, svc := setup(t)

	options := svc.Options()

	require.Len(t, options.Types, 2)
	require.Len(t, options.Categories, 5)
	assert.Equal(t, "รายรับ", options.Types[0].Label)
	assert.Equal(t, "อื่นๆ", options.Categories[4].Label)
}

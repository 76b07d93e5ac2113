package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stockroom/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockInventoryService is a mock implementation of InventoryService.
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) AdjustStock(ctx context.Context, productID int, req *model.AdjustStockRequest) (*model.Product, *model.StockTransaction, error) {
	args := m.Called(ctx, productID, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.Product), args.Get(1).(*model.StockTransaction), args.Error(2)
}

func (m *MockInventoryService) QuickSale(ctx context.Context, productID, qty int) (*model.Product, *model.StockTransaction, error) {
	args := m.Called(ctx, productID, qty)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.Product), args.Get(1).(*model.StockTransaction), args.Error(2)
}

func TestStockHandler_Adjust(t *testing.T) {
	logger := zerolog.Nop()

	product := &model.Product{ID: 1, Name: "Widget", Quantity: 8, MinStock: 10}
	record := &model.StockTransaction{ID: 5, ProductID: 1, Type: model.TxRestock, Quantity: 3, Reason: "Weekly delivery"}

	tests := []struct {
		name           string
		id             string
		body           string
		mockError      error
		expectService  bool
		expectedStatus int
	}{
		{
			name:           "Adjustment applied",
			id:             "1",
			body:           `{"quantity":3,"type":"restock","reason":"Weekly delivery"}`,
			expectService:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Type defaults to adjustment",
			id:             "1",
			body:           `{"quantity":3,"reason":"Recount"}`,
			expectService:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Insufficient stock",
			id:             "1",
			body:           `{"quantity":-8,"type":"sale","reason":"Customer purchase"}`,
			mockError:      model.ErrInsufficientStock,
			expectService:  true,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "Invalid product ID",
			id:             "abc",
			body:           `{"quantity":3,"reason":"x"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed JSON",
			id:             "1",
			body:           `{"quantity":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockInventoryService)
			handler := NewStockHandler(mockService, logger)

			if tt.expectService {
				if tt.mockError != nil {
					mockService.On("AdjustStock", mock.Anything, 1, mock.AnythingOfType("*model.AdjustStockRequest")).
						Return(nil, nil, tt.mockError)
				} else {
					mockService.On("AdjustStock", mock.Anything, 1, mock.AnythingOfType("*model.AdjustStockRequest")).
						Return(product, record, nil)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/products/"+tt.id+"/adjust", bytes.NewBufferString(tt.body))
			req.SetPathValue("id", tt.id)
			rec := httptest.NewRecorder()

			handler.Adjust(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp adjustResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, product.ID, resp.Product.ID)
				assert.Equal(t, record.ID, resp.Transaction.ID)
			}
		})
	}
}

func TestStockHandler_Adjust_DefaultsTypeToAdjustment(t *testing.T) {
	mockService := new(MockInventoryService)
	handler := NewStockHandler(mockService, zerolog.Nop())

	mockService.On("AdjustStock", mock.Anything, 1, mock.MatchedBy(func(req *model.AdjustStockRequest) bool {
		return req.Type == model.TxAdjustment
	})).Return(&model.Product{ID: 1}, &model.StockTransaction{ID: 1}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/products/1/adjust", bytes.NewBufferString(`{"quantity":3,"reason":"Recount"}`))
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()

	handler.Adjust(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockService.AssertExpectations(t)
}

func TestStockHandler_Sale(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Sale applied", func(t *testing.T) {
		mockService := new(MockInventoryService)
		handler := NewStockHandler(mockService, logger)

		product := &model.Product{ID: 1, Quantity: 3}
		record := &model.StockTransaction{ID: 9, ProductID: 1, Type: model.TxSale, Quantity: -2}
		mockService.On("QuickSale", mock.Anything, 1, 2).Return(product, record, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/products/1/sale", bytes.NewBufferString(`{"quantity":2}`))
		req.SetPathValue("id", "1")
		rec := httptest.NewRecorder()

		handler.Sale(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Oversized sale rejected", func(t *testing.T) {
		mockService := new(MockInventoryService)
		handler := NewStockHandler(mockService, logger)

		mockService.On("QuickSale", mock.Anything, 1, 8).Return(nil, nil, model.ErrInsufficientStock)

		req := httptest.NewRequest(http.MethodPost, "/api/products/1/sale", bytes.NewBufferString(`{"quantity":8}`))
		req.SetPathValue("id", "1")
		rec := httptest.NewRecorder()

		handler.Sale(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, model.ErrCodeInsufficientStock, resp.Error)
	})
}

// MockTransactionService is a mock implementation of TransactionService.
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) List(ctx context.Context, productID, limit int) ([]model.StockTransaction, error) {
	args := m.Called(ctx, productID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StockTransaction), args.Error(1)
}

func (m *MockTransactionService) Recent(ctx context.Context, limit int) ([]model.StockTransaction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StockTransaction), args.Error(1)
}

func TestTransactionHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	entries := []model.StockTransaction{
		{ID: 2, ProductID: 1, Type: model.TxSale, Quantity: -2, Reason: "Customer purchase"},
		{ID: 1, ProductID: 1, Type: model.TxRestock, Quantity: 10, Reason: "Initial stock"},
	}

	tests := []struct {
		name           string
		target         string
		productID      int
		limit          int
		expectService  bool
		expectedStatus int
	}{
		{
			name:           "All transactions",
			target:         "/api/transactions",
			expectService:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Filtered by product with limit",
			target:         "/api/transactions?productId=1&limit=50",
			productID:      1,
			limit:          50,
			expectService:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid productId",
			target:         "/api/transactions?productId=abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid limit",
			target:         "/api/transactions?limit=ten",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockTransactionService)
			handler := NewTransactionHandler(mockService, logger)

			if tt.expectService {
				mockService.On("List", mock.Anything, tt.productID, tt.limit).Return(entries, nil)
			}

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			handler.List(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestTransactionHandler_Recent(t *testing.T) {
	mockService := new(MockTransactionService)
	handler := NewTransactionHandler(mockService, zerolog.Nop())

	mockService.On("Recent", mock.Anything, 5).Return([]model.StockTransaction{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/recent?limit=5", nil)
	rec := httptest.NewRecorder()

	handler.Recent(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

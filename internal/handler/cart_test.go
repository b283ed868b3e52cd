package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/supermall/internal/entities"
	"github.com/SergeyBogomolovv/supermall/internal/handler"
	"github.com/SergeyBogomolovv/supermall/internal/handler/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCartHandler_GetCart(t *testing.T) {
	view := entities.CartView{
		UserID: customerID,
		Items: []entities.CartLine{{
			ProductID: productID,
			Quantity:  2,
			Product:   &entities.Product{ID: productID, Name: "Mug", Price: decimal.RequireFromString("4.50"), Stock: 10},
			Subtotal:  decimal.NewFromInt(9),
		}},
		TotalItems: 2,
		TotalPrice: decimal.NewFromInt(9),
	}

	testCases := []struct {
		name         string
		mockBehavior func(svc *mocks.MockCartService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().GetCart(mock.Anything, customerID).Return(view, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"totalPrice":"9"`,
		},
		{
			name: "internal error",
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().GetCart(mock.Anything, customerID).Return(entities.CartView{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCartService(t)
			tc.mockBehavior(svc)

			h := handler.NewCartHandler(testLogger(), svc, fakeAuth(customerClaims))
			rr := serve(h, http.MethodGet, "/cart", "")

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestCartHandler_UpdateCart(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockCartService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "add",
			body: `{"productId":"` + productID + `","quantity":2,"action":"add"}`,
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().
					ApplyCartAction(mock.Anything, customerID, entities.CartActionAdd, productID, 2).
					Return(entities.CartView{TotalItems: 2}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"totalItems":2`,
		},
		{
			name:         "unknown action",
			body:         `{"productId":"` + productID + `","quantity":1,"action":"explode"}`,
			mockBehavior: func(svc *mocks.MockCartService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `explode`,
		},
		{
			name:         "invalid product id",
			body:         `{"productId":"nope","quantity":1,"action":"add"}`,
			mockBehavior: func(svc *mocks.MockCartService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"productId":"uuid"`,
		},
		{
			name:         "malformed body",
			body:         `{"productId":`,
			mockBehavior: func(svc *mocks.MockCartService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name: "product not found",
			body: `{"productId":"` + productID + `","quantity":1,"action":"add"}`,
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().
					ApplyCartAction(mock.Anything, customerID, entities.CartActionAdd, productID, 1).
					Return(entities.CartView{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"product not found"`,
		},
		{
			name: "non-positive add quantity",
			body: `{"productId":"` + productID + `","quantity":0,"action":"add"}`,
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().
					ApplyCartAction(mock.Anything, customerID, entities.CartActionAdd, productID, 0).
					Return(entities.CartView{}, entities.NewValidationError("quantity must be positive")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"quantity must be positive"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCartService(t)
			tc.mockBehavior(svc)

			h := handler.NewCartHandler(testLogger(), svc, fakeAuth(customerClaims))
			rr := serve(h, http.MethodPost, "/cart", tc.body)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

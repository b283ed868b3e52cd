package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/supermall/internal/entities"
	"github.com/SergeyBogomolovv/supermall/internal/handler"
	"github.com/SergeyBogomolovv/supermall/internal/handler/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createOrderBody(customer string, total float64) string {
	customerField := ""
	if customer != "" {
		customerField = fmt.Sprintf(`"customerId":%q,`, customer)
	}
	return fmt.Sprintf(`{
		%s
		"vendorId": %q,
		"items": [{"productId": %q, "quantity": 2, "price": 10.5}],
		"totalAmount": %v,
		"shippingCost": 5,
		"tax": 1.25,
		"discount": 3,
		"shippingAddress": {"street": "1 Main St", "city": "Springfield", "state": "IL", "zip": "62701", "country": "US"},
		"paymentMethod": "card"
	}`, customerField, vendorID, productID, total)
}

func createdOrder(customer string) entities.Order {
	return entities.Order{
		OrderID:       "ORDER-1700000000000-AB12CD",
		CustomerID:    customer,
		VendorID:      vendorID,
		Items:         []entities.OrderItem{{ProductID: productID, Quantity: 2, Price: decimal.RequireFromString("10.5")}},
		TotalAmount:   decimal.RequireFromString("24.25"),
		Status:        entities.StatusPending,
		PaymentStatus: entities.PaymentPending,
		PaymentMethod: entities.PaymentMethodCard,
	}
}

func forCustomer(id string) any {
	return mock.MatchedBy(func(in entities.NewOrder) bool { return in.CustomerID == id })
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	testCases := []struct {
		name         string
		claims       entities.Claims
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "success",
			claims: customerClaims,
			body:   createOrderBody("", 24.25),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, forCustomer(customerID)).Return(createdOrder(customerID), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"orderId":"ORDER-1700000000000-AB12CD"`,
		},
		{
			name:   "amounts kept exact",
			claims: customerClaims,
			body:   strings.Replace(createOrderBody("", 0), `"totalAmount": 0`, `"totalAmount": "24.25"`, 1),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(in entities.NewOrder) bool {
					return in.TotalAmount.Equal(decimal.RequireFromString("24.25")) &&
						in.Tax.String() == "1.25" &&
						in.Items[0].Price.String() == "10.5"
				})).Return(createdOrder(customerID), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"totalAmount":"24.25"`,
		},
		{
			name:         "negative tax rejected",
			claims:       customerClaims,
			body:         strings.Replace(createOrderBody("", 24.25), `"tax": 1.25`, `"tax": -1.25`, 1),
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"tax":"gte"`,
		},
		{
			name:   "customer cannot order for someone else",
			claims: customerClaims,
			body:   createOrderBody(merchantID, 24.25),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, forCustomer(customerID)).Return(createdOrder(customerID), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"customerId":"` + customerID + `"`,
		},
		{
			name:   "admin orders on behalf of customer",
			claims: adminClaims,
			body:   createOrderBody(customerID, 24.25),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, forCustomer(customerID)).Return(createdOrder(customerID), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"customerId":"` + customerID + `"`,
		},
		{
			name:         "total mismatch",
			claims:       customerClaims,
			body:         createOrderBody("", 30),
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"total amount does not match order items"`,
		},
		{
			name:         "merchant may not order",
			claims:       merchantClaims,
			body:         createOrderBody("", 24.25),
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusForbidden,
			wantBody:     `"forbidden"`,
		},
		{
			name:         "missing items",
			claims:       customerClaims,
			body:         `{"vendorId":"` + vendorID + `","items":[],"paymentMethod":"card","shippingAddress":{"street":"a","city":"b","state":"c","zip":"d","country":"e"}}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"items":"min"`,
		},
		{
			name:   "collision retried",
			claims: customerClaims,
			body:   createOrderBody("", 24.25),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(entities.Order{}, entities.ErrDuplicateKey).Once()
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(createdOrder(customerID), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"status":"pending"`,
		},
		{
			name:   "collisions exhausted",
			claims: customerClaims,
			body:   createOrderBody("", 24.25),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(entities.Order{}, entities.ErrDuplicateKey).Times(3)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"resource already exists"`,
		},
		{
			name:   "unknown vendor",
			claims: customerClaims,
			body:   createOrderBody("", 24.25),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.NewValidationError("referenced vendor does not exist")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"referenced vendor does not exist"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			h := handler.NewOrderHandler(testLogger(), svc, fakeAuth(tc.claims))
			rr := serve(h, http.MethodPost, "/orders", tc.body)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestOrderHandler_GetOrder(t *testing.T) {
	view := entities.OrderView{
		Order:        createdOrder(customerID),
		CustomerName: "Ada",
		VendorName:   "Acme",
		ItemNames:    map[string]string{productID: "Mug"},
	}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: view.OrderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderView(mock.Anything, customerClaims, view.OrderID).Return(view, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"vendorName":"Acme"`,
		},
		{
			name:    "not visible",
			orderID: view.OrderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderView(mock.Anything, customerClaims, view.OrderID).Return(entities.OrderView{}, entities.ErrForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"forbidden"`,
		},
		{
			name:    "not found",
			orderID: "ORDER-0-NOPE00",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderView(mock.Anything, customerClaims, "ORDER-0-NOPE00").Return(entities.OrderView{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			h := handler.NewOrderHandler(testLogger(), svc, fakeAuth(customerClaims))
			rr := serve(h, http.MethodGet, "/orders/"+tc.orderID, "")

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	t.Run("passes paging", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().ListOrders(mock.Anything, merchantClaims, 10, 20).
			Return([]entities.Order{createdOrder(customerID)}, nil).Once()

		h := handler.NewOrderHandler(testLogger(), svc, fakeAuth(merchantClaims))
		rr := serve(h, http.MethodGet, "/orders?limit=10&offset=20", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"orderId":"ORDER-1700000000000-AB12CD"`)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().ListOrders(mock.Anything, customerClaims, 0, 0).Return(nil, nil).Once()

		h := handler.NewOrderHandler(testLogger(), svc, fakeAuth(customerClaims))
		rr := serve(h, http.MethodGet, "/orders", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("bad limit", func(t *testing.T) {
		h := handler.NewOrderHandler(testLogger(), mocks.NewMockOrderService(t), fakeAuth(customerClaims))
		rr := serve(h, http.MethodGet, "/orders?limit=-1", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	shipped := entities.StatusShipped

	testCases := []struct {
		name         string
		claims       entities.Claims
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "ships with tracking",
			claims: merchantClaims,
			body:   `{"status":"shipped","tracking":{"carrier":"UPS","trackingNumber":"1Z999"}}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				upd := entities.StatusUpdate{
					OrderID:  "ORDER-1",
					Status:   &shipped,
					Tracking: &entities.Tracking{Carrier: "UPS", TrackingNumber: "1Z999"},
				}
				o := createdOrder(customerID)
				o.Status = entities.StatusShipped
				o.Tracking = upd.Tracking
				svc.EXPECT().UpdateOrderStatus(mock.Anything, merchantClaims, upd).Return(o, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"trackingNumber":"1Z999"`,
		},
		{
			name:   "invalid transition",
			claims: merchantClaims,
			body:   `{"status":"shipped"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateOrderStatus(mock.Anything, merchantClaims, mock.Anything).
					Return(entities.Order{}, fmt.Errorf("%w: cancelled -> shipped", entities.ErrInvalidTransition)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `cancelled -> shipped`,
		},
		{
			name:         "unknown status",
			claims:       merchantClaims,
			body:         `{"status":"teleported"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"status":"oneof"`,
		},
		{
			name:         "customer may not update",
			claims:       customerClaims,
			body:         `{"status":"cancelled"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusForbidden,
		},
		{
			name:   "service error",
			claims: adminClaims,
			body:   `{"paymentStatus":"refunded"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateOrderStatus(mock.Anything, adminClaims, mock.Anything).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			h := handler.NewOrderHandler(testLogger(), svc, fakeAuth(tc.claims))
			rr := serve(h, http.MethodPatch, "/orders/ORDER-1/status", tc.body)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

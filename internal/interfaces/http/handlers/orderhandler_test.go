package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhadat/marketplace/internal/application/order/dto"
	"github.com/nhadat/marketplace/internal/application/order/usecases"
	"github.com/nhadat/marketplace/internal/interfaces/http/handlers/testutil"
	"github.com/nhadat/marketplace/internal/shared/authorization"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

type mockListPackagesUC struct {
	result []*dto.PackageResponse
	err    error
}

func (m *mockListPackagesUC) Execute(ctx context.Context) ([]*dto.PackageResponse, error) {
	return m.result, m.err
}

type mockCreateOrderUC struct {
	result *dto.OrderResponse
	err    error
	got    usecases.CreateOrderCommand
	calls  int
}

func (m *mockCreateOrderUC) Execute(ctx context.Context, cmd usecases.CreateOrderCommand) (*dto.OrderResponse, error) {
	m.calls++
	m.got = cmd
	return m.result, m.err
}

type mockListMyOrdersUC struct {
	result []*dto.OrderResponse
	err    error
	gotID  uint
}

func (m *mockListMyOrdersUC) Execute(ctx context.Context, userID uint) ([]*dto.OrderResponse, error) {
	m.gotID = userID
	return m.result, m.err
}

type mockListOrdersUC struct {
	result *dto.ListOrdersResult
	err    error
	got    usecases.ListOrdersQuery
}

func (m *mockListOrdersUC) Execute(ctx context.Context, query usecases.ListOrdersQuery) (*dto.ListOrdersResult, error) {
	m.got = query
	return m.result, m.err
}

type mockMarkPaidUC struct {
	result *dto.OrderResponse
	err    error
	got    usecases.MarkPaidCommand
}

func (m *mockMarkPaidUC) Execute(ctx context.Context, cmd usecases.MarkPaidCommand) (*dto.OrderResponse, error) {
	m.got = cmd
	return m.result, m.err
}

type orderMocks struct {
	packages *mockListPackagesUC
	create   *mockCreateOrderUC
	listMine *mockListMyOrdersUC
	list     *mockListOrdersUC
	markPaid *mockMarkPaidUC
}

func newOrderMocks() *orderMocks {
	order := &dto.OrderResponse{ID: "ord_abc", Amount: 150000, Status: "pending"}
	return &orderMocks{
		packages: &mockListPackagesUC{result: []*dto.PackageResponse{
			{ID: "pkg_starter", Slug: "starter-3", Price: 150000, ListingCredits: 3},
		}},
		create:   &mockCreateOrderUC{result: order},
		listMine: &mockListMyOrdersUC{result: []*dto.OrderResponse{order}},
		list:     &mockListOrdersUC{result: &dto.ListOrdersResult{Items: []*dto.OrderResponse{order}, Total: 1, Page: 1, PageSize: 20}},
		markPaid: &mockMarkPaidUC{result: &dto.OrderResponse{ID: "ord_abc", Amount: 150000, Status: "paid"}},
	}
}

func (m *orderMocks) handler() *OrderHandler {
	return NewOrderHandler(m.packages, m.create, m.listMine, m.list, m.markPaid, logger.NewNopLogger())
}

func TestOrderHandler_ListPackages(t *testing.T) {
	m := newOrderMocks()

	c, w := testutil.NewTestContext(http.MethodGet, "/api/packages", nil)
	m.handler().ListPackages(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var pkgs []dto.PackageResponse
	require.NoError(t, json.Unmarshal(resp.Data, &pkgs))
	require.Len(t, pkgs, 1)
	assert.Equal(t, "starter-3", pkgs[0].Slug)
	assert.Equal(t, 3, pkgs[0].ListingCredits)
}

func TestOrderHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		authed     bool
		body       any
		ucErr      error
		wantStatus int
		wantCalls  int
	}{
		{
			name:       "success",
			authed:     true,
			body:       dto.CreateOrderRequest{PackageSlug: "starter-3", Notes: "chuyển khoản VCB"},
			wantStatus: http.StatusCreated,
			wantCalls:  1,
		},
		{
			name:       "anonymous",
			body:       dto.CreateOrderRequest{PackageSlug: "starter-3"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing slug",
			authed:     true,
			body:       map[string]string{"notes": "x"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown package",
			authed:     true,
			body:       dto.CreateOrderRequest{PackageSlug: "gold-99"},
			ucErr:      errors.NewNotFoundError("Package not found"),
			wantStatus: http.StatusNotFound,
			wantCalls:  1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newOrderMocks()
			m.create.err = tt.ucErr

			c, w := testutil.NewTestContext(http.MethodPost, "/api/orders", tt.body)
			if tt.authed {
				testutil.SetAuthContext(c, 7, authorization.RoleUser)
			}
			m.handler().Create(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCalls, m.create.calls)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, uint(7), m.create.got.UserID)
				assert.Equal(t, "starter-3", m.create.got.PackageSlug)
				assert.Equal(t, "chuyển khoản VCB", m.create.got.Notes)
			}
		})
	}
}

func TestOrderHandler_ListMine(t *testing.T) {
	m := newOrderMocks()

	c, w := testutil.NewTestContext(http.MethodGet, "/api/orders/me", nil)
	testutil.SetAuthContext(c, 7, authorization.RoleUser)
	m.handler().ListMine(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), m.listMine.gotID)
}

func TestOrderHandler_List(t *testing.T) {
	m := newOrderMocks()

	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/orders", nil)
	testutil.SetAuthContext(c, 2, authorization.RoleStaff)
	testutil.SetQueryParams(c, map[string]string{"status": "pending", "page": "3"})
	m.handler().List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pending", m.list.got.Status)
	assert.Equal(t, 3, m.list.got.Page)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var list testutil.ListData
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, int64(1), list.Total)
}

func TestOrderHandler_MarkPaid(t *testing.T) {
	tests := []struct {
		name       string
		orderID    string
		ucErr      error
		wantStatus int
	}{
		{"paid", "ord_abc", nil, http.StatusOK},
		{"wrong prefix", "prop_abc", nil, http.StatusBadRequest},
		{"missing order", "ord_missing", errors.NewNotFoundError("Order not found"), http.StatusNotFound},
		{"cancelled order", "ord_abc", errors.NewConflictError("Cancelled orders cannot be paid"), http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newOrderMocks()
			m.markPaid.err = tt.ucErr

			c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/orders/"+tt.orderID+"/mark-paid", nil)
			testutil.SetAuthContext(c, 2, authorization.RoleStaff)
			testutil.SetURLParam(c, "id", tt.orderID)
			m.handler().MarkPaid(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "ord_abc", m.markPaid.got.OrderSID)
				assert.Equal(t, uint(2), m.markPaid.got.StaffID)
			}
		})
	}
}

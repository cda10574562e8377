package client_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/twosvc/notification-service/internal/client"
	"github.com/twosvc/notification-service/internal/config"
	"github.com/twosvc/notification-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserClient(t *testing.T, h http.HandlerFunc) *client.UserClient {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return client.NewUserClient(logger, config.Peer{
		UserBase:  srv.URL + "/api/users",
		OrderBase: srv.URL + "/api/orders",
		Timeout:   time.Second,
	})
}

// Клиент недоступного peer: все методы отдают нейтральные значения.
func newBrokenUserClient(t *testing.T) *client.UserClient {
	t.Helper()

	srv := httptest.NewServer(nil)
	srv.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return client.NewUserClient(logger, config.Peer{
		UserBase:  srv.URL + "/api/users",
		OrderBase: srv.URL + "/api/orders",
		Timeout:   time.Second,
	})
}

func TestUserClient_GetUserByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newUserClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/users/7", r.URL.Path)
			w.Write([]byte(`{"id": 7, "username": "alice", "email": "a@x"}`))
		})

		user := c.GetUserByID(context.Background(), 7)
		require.NotNil(t, user)
		require.NotNil(t, user.ID)
		assert.Equal(t, int64(7), *user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "a@x", user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		c := newUserClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		assert.Nil(t, c.GetUserByID(context.Background(), 7))
	})

	t.Run("broken body", func(t *testing.T) {
		c := newUserClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{`))
		})

		assert.Nil(t, c.GetUserByID(context.Background(), 7))
	})

	t.Run("peer down", func(t *testing.T) {
		c := newBrokenUserClient(t)

		assert.Nil(t, c.GetUserByID(context.Background(), 7))
	})
}

func TestUserClient_UserExists(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		c := newUserClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id": 7, "username": "alice", "email": "a@x"}`))
		})

		assert.True(t, c.UserExists(context.Background(), 7))
	})

	t.Run("record without id", func(t *testing.T) {
		c := newUserClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"username": "alice", "email": "a@x"}`))
		})

		assert.False(t, c.UserExists(context.Background(), 7))
	})

	t.Run("peer down", func(t *testing.T) {
		c := newBrokenUserClient(t)

		assert.False(t, c.UserExists(context.Background(), 7))
	})
}

func TestUserClient_CreateUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newUserClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "alice", r.URL.Query().Get("username"))
			assert.Equal(t, "a@x.io", r.URL.Query().Get("email"))
			w.Write([]byte(`{"id": 1, "username": "alice", "email": "a@x.io"}`))
		})

		user := c.CreateUser(context.Background(), "alice", "a@x.io")
		require.NotNil(t, user)
		assert.True(t, user.Present())
	})

	t.Run("query params are escaped", func(t *testing.T) {
		c := newUserClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "a b&c", r.URL.Query().Get("username"))
			w.Write([]byte(`{"id": 1, "username": "a b&c", "email": "a@x.io"}`))
		})

		user := c.CreateUser(context.Background(), "a b&c", "a@x.io")
		require.NotNil(t, user)
	})

	t.Run("with phone", func(t *testing.T) {
		c := newUserClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "+70000000001", r.URL.Query().Get("phoneNumber"))
			w.Write([]byte(`{"id": 1, "username": "alice", "email": "a@x.io", "phoneNumber": "+70000000001"}`))
		})

		user := c.CreateUserWithPhone(context.Background(), "alice", "a@x.io", "+70000000001")
		require.NotNil(t, user)
		assert.Equal(t, "+70000000001", user.Phone)
	})

	t.Run("peer down", func(t *testing.T) {
		c := newBrokenUserClient(t)

		assert.Nil(t, c.CreateUser(context.Background(), "alice", "a@x.io"))
	})
}

func TestUserClient_GetUserWithOrders(t *testing.T) {
	c := newUserClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/7", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("includeOrders"))
		w.Write([]byte(`{"id": 7, "username": "alice", "email": "a@x",
			"orders": [{"id": 42, "userId": 7, "orderNumber": "O-1", "totalAmount": 19.5, "status": 2}]}`))
	})

	user := c.GetUserWithOrders(context.Background(), 7)
	require.NotNil(t, user)
	require.Len(t, user.Orders, 1)
	assert.Equal(t, "O-1", user.Orders[0].OrderNumber)
}

func TestUserClient_GetUserOrders(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newUserClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/orders/by-user/7", r.URL.Path)
			w.Write([]byte(`[{"id": 42, "userId": 7, "orderNumber": "O-1", "totalAmount": 19.5, "status": 2}]`))
		})

		orders := c.GetUserOrders(context.Background(), 7)
		require.Len(t, orders, 1)
		assert.Equal(t, int64(42), orders[0].ID)
	})

	t.Run("peer down returns empty list", func(t *testing.T) {
		c := newBrokenUserClient(t)

		orders := c.GetUserOrders(context.Background(), 7)
		assert.Empty(t, orders)
		assert.NotNil(t, orders)
	})
}

func TestUserClient_GetOrderByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newUserClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/orders/42", r.URL.Path)
			w.Write([]byte(`{"id": 42, "userId": 7, "orderNumber": "O-1", "totalAmount": 19.5, "status": 2}`))
		})

		order := c.GetOrderByID(context.Background(), 42)
		require.NotNil(t, order)
		assert.Equal(t, "O-1", order.OrderNumber)
		assert.Equal(t, 19.5, order.TotalAmount)
	})

	t.Run("peer down", func(t *testing.T) {
		c := newBrokenUserClient(t)

		assert.Nil(t, c.GetOrderByID(context.Background(), 42))
	})
}

func TestUserClient_GetOrderStatusText(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newUserClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/orders/42/status-text", r.URL.Path)
			w.Write([]byte("已发货"))
		})

		assert.Equal(t, "已发货", c.GetOrderStatusText(context.Background(), 42))
	})

	t.Run("peer down returns fallback", func(t *testing.T) {
		c := newBrokenUserClient(t)

		assert.Equal(t, entities.UnknownStatusText, c.GetOrderStatusText(context.Background(), 42))
	})
}

func TestUserClient_GetOrderDetails(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newUserClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/orders/42/details", r.URL.Path)
			assert.Equal(t, "true", r.URL.Query().Get("includeUser"))
			w.Write([]byte("订单 O-1"))
		})

		details, ok := c.GetOrderDetails(context.Background(), 42, true)
		require.True(t, ok)
		assert.Equal(t, "订单 O-1", details)
	})

	t.Run("peer down", func(t *testing.T) {
		c := newBrokenUserClient(t)

		_, ok := c.GetOrderDetails(context.Background(), 42, false)
		assert.False(t, ok)
	})
}

package client

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/twosvc/notification-service/internal/entities"
)

// Стенд сервиса заказов для bufconn: отвечает заранее заданными данными
// либо заданной ошибкой.
type orderServiceStub struct {
	order      *orderDTO
	statusText string
	details    string
	err        error
}

func stubUnaryHandler(reply func(s *orderServiceStub) any) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, _ context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
		in := new(orderRequest)
		if err := dec(in); err != nil {
			return nil, err
		}
		s := srv.(*orderServiceStub)
		if s.err != nil {
			return nil, s.err
		}
		return reply(s), nil
	}
}

var orderServiceStubDesc = grpc.ServiceDesc{
	ServiceName: orderServiceName,
	HandlerType: (*any)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetOrderById",
			Handler: stubUnaryHandler(func(s *orderServiceStub) any {
				return &orderReply{Order: s.order}
			}),
		},
		{
			MethodName: "GetOrderStatusText",
			Handler: stubUnaryHandler(func(s *orderServiceStub) any {
				return &statusTextReply{StatusText: s.statusText}
			}),
		},
		{
			MethodName: "GetOrderDetails",
			Handler: stubUnaryHandler(func(s *orderServiceStub) any {
				return &detailsReply{Details: s.details}
			}),
		},
	},
	Streams: []grpc.StreamDesc{},
}

func newOrderClient(t *testing.T, stub *orderServiceStub) *OrderClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)

	srv := grpc.NewServer()
	srv.RegisterService(&orderServiceStubDesc, stub)

	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(jsonCodecName)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &OrderClient{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		conn:        conn,
		callTimeout: time.Second,
	}
}

func TestOrderClient_GetOrderByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newOrderClient(t, &orderServiceStub{
			order: &orderDTO{ID: 42, UserID: 7, OrderNumber: "O-1", TotalAmount: 19.5, Status: 2},
		})

		order, err := c.GetOrderByID(context.Background(), 42)
		require.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, entities.Order{ID: 42, UserID: 7, OrderNumber: "O-1", TotalAmount: 19.5, Status: 2}, *order)
	})

	t.Run("missing order is nil without error", func(t *testing.T) {
		c := newOrderClient(t, &orderServiceStub{})

		order, err := c.GetOrderByID(context.Background(), 42)
		require.NoError(t, err)
		assert.Nil(t, order)
	})

	t.Run("transport fault propagates", func(t *testing.T) {
		c := newOrderClient(t, &orderServiceStub{
			err: status.Error(codes.Unavailable, "peer down"),
		})

		_, err := c.GetOrderByID(context.Background(), 42)
		require.Error(t, err)
		assert.Equal(t, codes.Unavailable, status.Code(errors.Unwrap(err)))
	})
}

func TestOrderClient_GetOrderStatusText(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newOrderClient(t, &orderServiceStub{statusText: "已发货"})

		text, err := c.GetOrderStatusText(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, "已发货", text)
	})

	t.Run("empty reply falls back to stub text", func(t *testing.T) {
		c := newOrderClient(t, &orderServiceStub{})

		text, err := c.GetOrderStatusText(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, entities.UnknownStatusText, text)
	})

	t.Run("transport fault propagates", func(t *testing.T) {
		c := newOrderClient(t, &orderServiceStub{
			err: status.Error(codes.Internal, "boom"),
		})

		_, err := c.GetOrderStatusText(context.Background(), 42)
		assert.Error(t, err)
	})
}

func TestOrderClient_GetOrderDetails(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newOrderClient(t, &orderServiceStub{details: "订单 O-1 - 状态: 已发货"})

		details, err := c.GetOrderDetails(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, "订单 O-1 - 状态: 已发货", details)
	})

	t.Run("missing marker passes through untouched", func(t *testing.T) {
		// интерпретация маркера — дело композера, порт его не трогает
		c := newOrderClient(t, &orderServiceStub{details: "订单不存在"})

		details, err := c.GetOrderDetails(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, "订单不存在", details)
	})

	t.Run("transport fault propagates", func(t *testing.T) {
		c := newOrderClient(t, &orderServiceStub{
			err: status.Error(codes.Unavailable, "peer down"),
		})

		_, err := c.GetOrderDetails(context.Background(), 42)
		assert.Error(t, err)
	})
}

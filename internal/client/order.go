package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"

	"github.com/twosvc/notification-service/internal/config"
	"github.com/twosvc/notification-service/internal/entities"
)

// Методы OrderService сервиса A. Стабы не генерируются: поверхность из трёх
// унарных вызовов, сообщения кодируются JSON-кодеком.
const (
	orderServiceName = "servicea.OrderService"

	methodGetOrderByID       = "/" + orderServiceName + "/GetOrderById"
	methodGetOrderStatusText = "/" + orderServiceName + "/GetOrderStatusText"
	methodGetOrderDetails    = "/" + orderServiceName + "/GetOrderDetails"
)

const jsonCodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type orderRequest struct {
	OrderID int64 `json:"orderId"`
}

type orderReply struct {
	Order *orderDTO `json:"order"`
}

type statusTextReply struct {
	StatusText string `json:"statusText"`
}

type detailsReply struct {
	Details string `json:"details"`
}

// OrderClient — RPC-порт к сервису A. В отличие от HTTP-порта ошибки
// транспорта не гасятся: неудавшийся вызов прерывает операцию композера.
// Отсутствие данных при успешном вызове — это nil без ошибки.
type OrderClient struct {
	logger      *slog.Logger
	conn        *grpc.ClientConn
	callTimeout time.Duration
}

func NewOrderClient(logger *slog.Logger, cfg config.OrderRPC) (*OrderClient, error) {
	conn, err := grpc.NewClient(
		cfg.Addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(jsonCodecName)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create order rpc client: %w", err)
	}

	return &OrderClient{
		logger:      logger.With(slog.String("client", "order")),
		conn:        conn,
		callTimeout: cfg.CallTimeout,
	}, nil
}

func (c *OrderClient) GetOrderByID(ctx context.Context, orderID int64) (*entities.Order, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	var reply orderReply
	if err := c.conn.Invoke(ctx, methodGetOrderByID, &orderRequest{OrderID: orderID}, &reply); err != nil {
		return nil, fmt.Errorf("failed to call GetOrderById: %w", err)
	}
	if reply.Order == nil {
		return nil, nil
	}

	order := orderDTOToEntity(*reply.Order)
	return &order, nil
}

// GetOrderStatusText при успешном вызове всегда отдаёт непустой текст:
// если peer ничего не вернул, подставляется заглушка.
func (c *OrderClient) GetOrderStatusText(ctx context.Context, orderID int64) (string, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	var reply statusTextReply
	if err := c.conn.Invoke(ctx, methodGetOrderStatusText, &orderRequest{OrderID: orderID}, &reply); err != nil {
		return "", fmt.Errorf("failed to call GetOrderStatusText: %w", err)
	}
	if reply.StatusText == "" {
		return entities.UnknownStatusText, nil
	}
	return reply.StatusText, nil
}

func (c *OrderClient) GetOrderDetails(ctx context.Context, orderID int64) (string, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	var reply detailsReply
	if err := c.conn.Invoke(ctx, methodGetOrderDetails, &orderRequest{OrderID: orderID}, &reply); err != nil {
		return "", fmt.Errorf("failed to call GetOrderDetails: %w", err)
	}
	return reply.Details, nil
}

func (c *OrderClient) Close() error {
	return c.conn.Close()
}

func (c *OrderClient) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.callTimeout)
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/twosvc/notification-service/internal/config"
	"github.com/twosvc/notification-service/internal/entities"
)

// UserClient — HTTP-порт к сервису A. Ошибки транспорта не покидают порт:
// они логируются, наружу уходит нейтральное значение (nil, пустой список,
// заглушка статуса). Композер проверяет данные, а не транспорт.
type UserClient struct {
	logger    *slog.Logger
	http      *http.Client
	userBase  string
	orderBase string
}

func NewUserClient(logger *slog.Logger, cfg config.Peer) *UserClient {
	return &UserClient{
		logger:    logger.With(slog.String("client", "user")),
		http:      &http.Client{Timeout: cfg.Timeout},
		userBase:  strings.TrimRight(cfg.UserBase, "/"),
		orderBase: strings.TrimRight(cfg.OrderBase, "/"),
	}
}

func (c *UserClient) GetUserByID(ctx context.Context, userID int64) *entities.User {
	var dto userDTO
	if err := c.getJSON(ctx, fmt.Sprintf("%s/%d", c.userBase, userID), &dto); err != nil {
		c.logger.Error("failed to get user", slog.Int64("user_id", userID), slog.Any("error", err))
		return nil
	}
	user := userDTOToEntity(dto)
	return &user
}

// UserExists проверяет существование пользователя: запись получена
// и идентификатор установлен.
func (c *UserClient) UserExists(ctx context.Context, userID int64) bool {
	return c.GetUserByID(ctx, userID).Present()
}

func (c *UserClient) CreateUser(ctx context.Context, username, email string) *entities.User {
	q := url.Values{}
	q.Set("username", username)
	q.Set("email", email)
	return c.postUser(ctx, q)
}

func (c *UserClient) CreateUserWithPhone(ctx context.Context, username, email, phone string) *entities.User {
	q := url.Values{}
	q.Set("username", username)
	q.Set("email", email)
	q.Set("phoneNumber", phone)
	return c.postUser(ctx, q)
}

func (c *UserClient) GetUserWithOrders(ctx context.Context, userID int64) *entities.User {
	var dto userDTO
	if err := c.getJSON(ctx, fmt.Sprintf("%s/%d?includeOrders=true", c.userBase, userID), &dto); err != nil {
		c.logger.Error("failed to get user with orders", slog.Int64("user_id", userID), slog.Any("error", err))
		return nil
	}
	user := userDTOToEntity(dto)
	return &user
}

func (c *UserClient) GetUserOrders(ctx context.Context, userID int64) []entities.Order {
	var dtos []orderDTO
	if err := c.getJSON(ctx, fmt.Sprintf("%s/by-user/%d", c.orderBase, userID), &dtos); err != nil {
		c.logger.Error("failed to get user orders", slog.Int64("user_id", userID), slog.Any("error", err))
		return []entities.Order{}
	}
	orders := make([]entities.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, orderDTOToEntity(dto))
	}
	return orders
}

func (c *UserClient) GetOrderByID(ctx context.Context, orderID int64) *entities.Order {
	var dto orderDTO
	if err := c.getJSON(ctx, fmt.Sprintf("%s/%d", c.orderBase, orderID), &dto); err != nil {
		c.logger.Error("failed to get order", slog.Int64("order_id", orderID), slog.Any("error", err))
		return nil
	}
	order := orderDTOToEntity(dto)
	return &order
}

// GetOrderStatusText никогда не возвращает пустой результат: при любой
// ошибке отдаётся заглушка, чтобы композер всё равно собрал сообщение.
func (c *UserClient) GetOrderStatusText(ctx context.Context, orderID int64) string {
	text, err := c.getText(ctx, fmt.Sprintf("%s/%d/status-text", c.orderBase, orderID))
	if err != nil {
		c.logger.Error("failed to get order status text", slog.Int64("order_id", orderID), slog.Any("error", err))
		return entities.UnknownStatusText
	}
	return text
}

func (c *UserClient) GetOrderDetails(ctx context.Context, orderID int64, includeUser bool) (string, bool) {
	u := fmt.Sprintf("%s/%d/details?includeUser=%t", c.orderBase, orderID, includeUser)
	text, err := c.getText(ctx, u)
	if err != nil {
		c.logger.Error("failed to get order details", slog.Int64("order_id", orderID), slog.Any("error", err))
		return "", false
	}
	return text, true
}

func (c *UserClient) postUser(ctx context.Context, q url.Values) *entities.User {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.userBase+"?"+q.Encode(), nil)
	if err != nil {
		c.logger.Error("failed to build create user request", slog.Any("error", err))
		return nil
	}

	var dto userDTO
	if err := c.do(req, &dto); err != nil {
		c.logger.Error("failed to create user", slog.String("username", q.Get("username")), slog.Any("error", err))
		return nil
	}
	user := userDTOToEntity(dto)
	return &user
}

func (c *UserClient) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	return c.do(req, v)
}

func (c *UserClient) getText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}
	return string(body), nil
}

func (c *UserClient) do(req *http.Request, v any) error {
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode body: %w", err)
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/twosvc/notification-service/internal/entities"
)

// UserPort — HTTP-порт пользовательского домена сервиса A.
// Ошибки транспорта порт гасит сам, наружу уходит только nil или false.
type UserPort interface {
	GetUserByID(ctx context.Context, userID int64) *entities.User
	UserExists(ctx context.Context, userID int64) bool
}

// OrderPort — RPC-порт доменa заказов. Ошибка здесь означает отказ
// транспорта и прерывает операцию; отсутствие данных — это nil без ошибки.
type OrderPort interface {
	GetOrderByID(ctx context.Context, orderID int64) (*entities.Order, error)
	GetOrderStatusText(ctx context.Context, orderID int64) (string, error)
	GetOrderDetails(ctx context.Context, orderID int64) (string, error)
}

type notificationService struct {
	logger *slog.Logger
	users  UserPort
	orders OrderPort
}

func NewNotificationService(logger *slog.Logger, users UserPort, orders OrderPort) *notificationService {
	return &notificationService{
		logger: logger.With(slog.String("service", "notification")),
		users:  users,
		orders: orders,
	}
}

// SendEmailNotification — конечная точка всех сценариев: проверяет
// существование пользователя (если у него задан id), эмулирует отправку
// письма в лог и возвращает строку результата.
func (s *notificationService) SendEmailNotification(ctx context.Context, user entities.User, message string) (string, error) {
	if user.ID != nil && !s.users.UserExists(ctx, *user.ID) {
		return "", entities.ErrUserNotExists
	}

	s.logger.InfoContext(ctx, "sending email",
		slog.String("to", user.Email),
		slog.String("message", message),
	)

	return fmt.Sprintf("Email sent to %s at %s", user.Username, user.Email), nil
}

func (s *notificationService) SendWelcomeEmail(ctx context.Context, user entities.User) (string, error) {
	message := fmt.Sprintf(
		"Welcome %s! Your account has been created successfully. "+
			"We've sent a confirmation email to %s",
		user.Username, user.Email,
	)
	return s.SendEmailNotification(ctx, user, message)
}

// SendNotification вызывается сервисом A; семантика совпадает
// с SendEmailNotification.
func (s *notificationService) SendNotification(ctx context.Context, user entities.User, message string) (string, error) {
	return s.SendEmailNotification(ctx, user, message)
}

func (s *notificationService) SendBulkNotification(ctx context.Context, userID int64, message string) (string, error) {
	user := s.users.GetUserByID(ctx, userID)
	if user == nil {
		return "", entities.ErrUserNotFound
	}
	return s.SendEmailNotification(ctx, *user, message)
}

func (s *notificationService) SendOrderNotification(ctx context.Context, userID int64, orderNumber string) (string, error) {
	user := s.users.GetUserByID(ctx, userID)
	if user == nil {
		return "", entities.ErrUserNotFound
	}

	message := fmt.Sprintf("Your order %s has been processed successfully", orderNumber)
	return s.SendEmailNotification(ctx, *user, message)
}

// SendOrderNotificationByOrderID — многошаговый сценарий: заказ по RPC,
// пользователь по HTTP, текст статуса по RPC. Первое отсутствующее
// значение обрывает цепочку, последующие вызовы не выполняются.
func (s *notificationService) SendOrderNotificationByOrderID(ctx context.Context, orderID int64) (string, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return "", entities.ErrOrderNotFound
	}

	user := s.users.GetUserByID(ctx, order.UserID)
	if user == nil {
		return "", entities.ErrUserNotFoundForOrder
	}

	statusText, err := s.orders.GetOrderStatusText(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("failed to get order status text: %w", err)
	}

	message := fmt.Sprintf("订单 %s - 金额: ¥%.2f - 状态: %s", order.OrderNumber, order.TotalAmount, statusText)
	return s.SendEmailNotification(ctx, *user, message)
}

// SendOrderStatusChangeNotification повторяет цепочку выше с другим
// шаблоном. newStatus намеренно не попадает в сообщение: текст статуса
// всегда берётся у peer, параметр только логируется.
func (s *notificationService) SendOrderStatusChangeNotification(ctx context.Context, orderID int64, newStatus int) (string, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return "", entities.ErrOrderNotFound
	}

	user := s.users.GetUserByID(ctx, order.UserID)
	if user == nil {
		return "", entities.ErrUserNotFound
	}

	statusText, err := s.orders.GetOrderStatusText(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("failed to get order status text: %w", err)
	}

	s.logger.DebugContext(ctx, "order status changed",
		slog.Int64("order_id", orderID),
		slog.Int("new_status", newStatus),
	)

	message := fmt.Sprintf("您的订单 %s 状态已更新为: %s", order.OrderNumber, statusText)
	return s.SendEmailNotification(ctx, *user, message)
}

// SendOrderDetailsNotification сначала запрашивает текстовый блок деталей:
// это дешёвая проверка существования заказа, заказ и пользователь
// запрашиваются только после неё.
func (s *notificationService) SendOrderDetailsNotification(ctx context.Context, orderID int64) (string, error) {
	details, err := s.orders.GetOrderDetails(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("failed to get order details: %w", err)
	}
	if strings.Contains(details, entities.OrderMissingMarker) {
		return "", entities.ErrOrderNotFound
	}

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return "", entities.ErrOrderNotFound
	}

	user := s.users.GetUserByID(ctx, order.UserID)
	if user == nil {
		return "", entities.ErrUserNotFound
	}

	message := fmt.Sprintf("订单详情通知:\n%s", details)
	return s.SendEmailNotification(ctx, *user, message)
}

// SendBatchNotifications обходит список строго последовательно: peer
// рассчитан на N одиночных запросов, параллелизм изменил бы наблюдаемый
// порядок обращений. Пользователь без id считается неудачей.
func (s *notificationService) SendBatchNotifications(ctx context.Context, users []entities.User, message string) (string, error) {
	var succeeded, failed int

	for _, user := range users {
		if user.ID != nil && s.users.UserExists(ctx, *user.ID) {
			s.SendEmailNotification(ctx, user, message)
			succeeded++
		} else {
			failed++
		}
	}

	return fmt.Sprintf("Batch notification sent: %d succeeded, %d failed", succeeded, failed), nil
}

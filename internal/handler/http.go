package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/twosvc/notification-service/internal/entities"
	"github.com/twosvc/notification-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Notifier interface {
	SendWelcomeEmail(ctx context.Context, user entities.User) (string, error)
	SendNotification(ctx context.Context, user entities.User, message string) (string, error)
	SendOrderNotification(ctx context.Context, userID int64, orderNumber string) (string, error)
	SendBatchNotifications(ctx context.Context, users []entities.User, message string) (string, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      Notifier
}

func NewHTTPHandler(logger *slog.Logger, svc Notifier) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api/notifications", func(r chi.Router) {
		r.Post("/welcome", h.SendWelcomeEmail)
		r.Post("/send", h.SendNotification)
		r.Post("/order", h.SendOrderNotification)
		r.Post("/batch", h.SendBatchNotifications)
	})
}

// SendWelcomeEmail отправляет приветственное письмо.
// @Summary      Приветственное письмо
// @Description  Формирует приветственное сообщение и отправляет его пользователю
// @Tags         notifications
// @Accept       json
// @Param        user  body  User  true  "Пользователь"
// @Success      200  {string}  string  "Строка результата"
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/notifications/welcome [post]
func (h *HTTPHandler) SendWelcomeEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user User
	if err := utils.DecodeBody(r, &user); err != nil {
		utils.WriteError(w, "invalid body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(user); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	result, err := h.svc.SendWelcomeEmail(ctx, UserJSONToEntity(user))
	h.writeResult(ctx, w, result, err)
}

// SendNotification отправляет произвольное уведомление пользователю.
// @Summary      Уведомление пользователю
// @Tags         notifications
// @Accept       json
// @Param        user     body   User    true  "Пользователь"
// @Param        message  query  string  true  "Текст сообщения"
// @Success      200  {string}  string  "Строка результата"
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/notifications/send [post]
func (h *HTTPHandler) SendNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	message := r.URL.Query().Get("message")
	if err := h.validate.Var(message, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var user User
	if err := utils.DecodeBody(r, &user); err != nil {
		utils.WriteError(w, "invalid body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(user); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	result, err := h.svc.SendNotification(ctx, UserJSONToEntity(user), message)
	h.writeResult(ctx, w, result, err)
}

// SendOrderNotification уведомляет пользователя об обработанном заказе.
// @Summary      Уведомление о заказе
// @Tags         notifications
// @Param        userId       query  int     true  "Идентификатор пользователя"
// @Param        orderNumber  query  string  true  "Номер заказа"
// @Success      200  {string}  string  "Строка результата"
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/notifications/order [post]
func (h *HTTPHandler) SendOrderNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid userId", http.StatusBadRequest)
		return
	}

	orderNumber := r.URL.Query().Get("orderNumber")
	if err := h.validate.Var(orderNumber, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	result, err := h.svc.SendOrderNotification(ctx, userID, orderNumber)
	h.writeResult(ctx, w, result, err)
}

// SendBatchNotifications отправляет уведомление списку пользователей.
// @Summary      Пакетная отправка
// @Tags         notifications
// @Accept       json
// @Param        users    body   []User  true  "Пользователи"
// @Param        message  query  string  true  "Текст сообщения"
// @Success      200  {string}  string  "Строка результата"
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/notifications/batch [post]
func (h *HTTPHandler) SendBatchNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	message := r.URL.Query().Get("message")
	if err := h.validate.Var(message, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var users []User
	if err := utils.DecodeBody(r, &users); err != nil {
		utils.WriteError(w, "invalid body", http.StatusBadRequest)
		return
	}

	result, err := h.svc.SendBatchNotifications(ctx, UsersJSONToEntities(users), message)
	h.writeResult(ctx, w, result, err)
}

// Бизнес-ошибки по контракту с peer уходят строкой "Error: ..." со статусом
// 200; отказ RPC-транспорта — единственное, что отдаётся как 500.
func (h *HTTPHandler) writeResult(ctx context.Context, w http.ResponseWriter, result string, err error) {
	if err == nil {
		utils.WriteText(w, result, http.StatusOK)
		notificationsSent.Inc()
		return
	}

	var notifyErr *entities.NotifyError
	if errors.As(err, &notifyErr) {
		utils.WriteText(w, "Error: "+notifyErr.Reason, http.StatusOK)
		notificationsRejected.Inc()
		return
	}

	h.logger.ErrorContext(ctx, "failed to send notification", slog.Any("error", err))
	utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	notificationsFailed.Inc()
}

package handler

import (
	"github.com/twosvc/notification-service/internal/entities"
)

// User — пользователь в формате peer-сервиса
type User struct {
	ID       *int64 `json:"id,omitempty"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phoneNumber,omitempty"`
}

// OrderEvent — событие заказа из kafka
type OrderEvent struct {
	Type      string `json:"type" validate:"required,oneof=order_processed status_changed order_details user_message"`
	OrderID   int64  `json:"order_id,omitempty" validate:"gte=0"`
	NewStatus int    `json:"new_status,omitempty"`
	UserID    int64  `json:"user_id,omitempty" validate:"gte=0"`
	Message   string `json:"message,omitempty"`
}

const (
	EventOrderProcessed = "order_processed"
	EventStatusChanged  = "status_changed"
	EventOrderDetails   = "order_details"
	EventUserMessage    = "user_message"
)

func UserJSONToEntity(u User) entities.User {
	return entities.User{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
	}
}

func UserEntityToJSON(u entities.User) User {
	return User{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
	}
}

func UsersJSONToEntities(users []User) []entities.User {
	result := make([]entities.User, 0, len(users))
	for _, u := range users {
		result = append(result, UserJSONToEntity(u))
	}
	return result
}

package client

import "github.com/twosvc/notification-service/internal/entities"

// DTO peer-сервиса. Поля совпадают с JSON сервиса A.
type userDTO struct {
	ID       *int64     `json:"id"`
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Phone    string     `json:"phoneNumber,omitempty"`
	Orders   []orderDTO `json:"orders,omitempty"`
}

type orderDTO struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId"`
	OrderNumber string  `json:"orderNumber"`
	TotalAmount float64 `json:"totalAmount"`
	Status      int     `json:"status"`
}

func userDTOToEntity(dto userDTO) entities.User {
	orders := make([]entities.Order, 0, len(dto.Orders))
	for _, o := range dto.Orders {
		orders = append(orders, orderDTOToEntity(o))
	}
	if len(orders) == 0 {
		orders = nil
	}

	return entities.User{
		ID:       dto.ID,
		Username: dto.Username,
		Email:    dto.Email,
		Phone:    dto.Phone,
		Orders:   orders,
	}
}

func orderDTOToEntity(dto orderDTO) entities.Order {
	return entities.Order{
		ID:          dto.ID,
		UserID:      dto.UserID,
		OrderNumber: dto.OrderNumber,
		TotalAmount: dto.TotalAmount,
		Status:      dto.Status,
	}
}

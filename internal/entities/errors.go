package entities

// NotifyError — бизнес-ошибка уведомления. На HTTP-границе рендерится
// как строка "Error: <Reason>" (совместимость с существующим контрактом).
type NotifyError struct {
	Reason string
}

func (e *NotifyError) Error() string {
	return e.Reason
}

var (
	ErrUserNotExists        = &NotifyError{Reason: "User does not exist"}
	ErrUserNotFound         = &NotifyError{Reason: "User not found"}
	ErrUserNotFoundForOrder = &NotifyError{Reason: "User not found for order"}
	ErrOrderNotFound        = &NotifyError{Reason: "Order not found"}
)

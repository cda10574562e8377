package entities

type Order struct {
	ID          int64
	UserID      int64
	OrderNumber string
	TotalAmount float64
	Status      int
}

// OrderMissingMarker — подстрока, которой peer помечает отсутствующий заказ
// внутри текстового блока деталей.
const OrderMissingMarker = "订单不存在"

// UnknownStatusText возвращается HTTP-портом, если статус получить не удалось.
const UnknownStatusText = "未知状态"

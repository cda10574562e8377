package entities

type User struct {
	// ID отсутствует, если peer вернул запись без идентификатора
	ID       *int64
	Username string
	Email    string
	Phone    string

	// Orders заполняется только при запросе пользователя вместе с заказами.
	Orders []Order
}

// Present сообщает, считается ли пользователь существующим:
// запись получена и идентификатор установлен.
func (u *User) Present() bool {
	return u != nil && u.ID != nil
}

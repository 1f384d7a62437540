package register_vehicle

// Request модель запроса на регистрацию автомобиля
type Request struct {
	CustomerName string // Имя владельца
	Description  string // Описание автомобиля, уникально в пределах владельца
}

// Response модель ответа с зарегистрированным автомобилем
type Response struct {
	ID          int64  // ID автомобиля
	CustomerID  int64  // ID владельца
	Description string // Описание автомобиля
}

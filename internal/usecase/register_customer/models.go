package register_customer

// Request модель запроса на регистрацию клиента
type Request struct {
	Name string // Имя клиента, уникально в пределах мастерской
}

// Response модель ответа с зарегистрированным клиентом
type Response struct {
	ID   int64  // ID клиента
	Name string // Имя клиента
}

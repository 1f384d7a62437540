package models

// Line строка ведомости: заработок одного механика за неделю
type Line struct {
	MechanicName string  `json:"mechanic_name"`
	BayID        int64   `json:"bay_id"`
	Amount       float64 `json:"amount"`
}

// WeekPayroll ведомость одной недели
type WeekPayroll struct {
	Week  int    `json:"week"`
	Lines []Line `json:"lines"`
}

// PayrollResponse ведомости всех недель, покрытых календарями
type PayrollResponse struct {
	Weeks []WeekPayroll `json:"weeks"`
}

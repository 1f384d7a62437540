package payroll

import (
	"github.com/m04kA/SMC-WorkshopService/internal/catalog"
	"github.com/m04kA/SMC-WorkshopService/internal/schedule"
	"github.com/m04kA/SMC-WorkshopService/internal/service/payroll/models"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Service сервис расчета зарплатных ведомостей. Механики получают оплату
// только за занятые слоты, поэтому ведомость считается прямо по доске
type Service struct {
	catalog  *catalog.Catalog
	board    *schedule.Board
	slotSize int
	logger   Logger
}

// NewService создает новый экземпляр сервиса ведомостей
func NewService(cat *catalog.Catalog, board *schedule.Board, slotSize int, logger Logger) *Service {
	return &Service{
		catalog:  cat,
		board:    board,
		slotSize: slotSize,
		logger:   logger,
	}
}

// Report строит ведомости по всем неделям, до которых дорос хотя бы один
// календарь. Каждая неделя содержит строку для каждого механика, в том
// числе нулевую: пустая неделя тоже попадает в ведомость
func (s *Service) Report() *models.PayrollResponse {
	weeks := 0
	for i := 0; i < s.board.LaneCount(); i++ {
		if wc := s.board.Lane(i).WeekCount(); wc > weeks {
			weeks = wc
		}
	}

	resp := &models.PayrollResponse{}
	for week := 0; week < weeks; week++ {
		wp := models.WeekPayroll{Week: week}
		for i, lane := range s.catalog.Lanes() {
			reserved := s.board.Lane(i).ReservedCount(week)
			wp.Lines = append(wp.Lines, models.Line{
				MechanicName: lane.Mechanic.Name,
				BayID:        lane.Bay.ID,
				Amount:       schedule.WeeklyWage(s.slotSize, lane.Mechanic.HourlyRate, reserved),
			})
		}
		resp.Weeks = append(resp.Weeks, wp)
	}

	s.logger.Info("Payroll: report built for %d weeks", weeks)

	return resp
}

// Package ingest разбирает поток заявок мастерской: по одной заявке на
// строку, поля разделены табуляцией. Первое поле задает тип заявки:
//
//	C<TAB>имя клиента
//	V<TAB>имя клиента<TAB>описание автомобиля
//	S<TAB>имя клиента<TAB>описание автомобиля<TAB>название услуги
//
// Пустые строки пропускаются. Заявки обрабатываются в порядке следования,
// поэтому порядок строк определяет порядок бронирования.
package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/m04kA/SMC-WorkshopService/internal/usecase/register_customer"
	"github.com/m04kA/SMC-WorkshopService/internal/usecase/register_vehicle"
	"github.com/m04kA/SMC-WorkshopService/internal/usecase/schedule_appointment"
)

// Типы заявок во входном потоке
const (
	lineCustomer    = "C"
	lineVehicle     = "V"
	lineAppointment = "S"
)

// Summary итоги обработки потока заявок
type Summary struct {
	Processed int // Заявок выполнено
	Failed    int // Заявок отклонено
}

// Processor обрабатывает поток заявок через use cases мастерской
type Processor struct {
	customers       CustomerRegistrar
	vehicles        VehicleRegistrar
	scheduler       Scheduler
	continueOnError bool
	logger          Logger
}

// NewProcessor создает новый обработчик заявок. При continueOnError
// ошибочные строки пишутся в лог и пропускаются, иначе обработка
// останавливается на первой ошибке
func NewProcessor(
	customers CustomerRegistrar,
	vehicles VehicleRegistrar,
	scheduler Scheduler,
	continueOnError bool,
	logger Logger,
) *Processor {
	return &Processor{
		customers:       customers,
		vehicles:        vehicles,
		scheduler:       scheduler,
		continueOnError: continueOnError,
		logger:          logger,
	}
}

// Run обрабатывает заявки из r построчно
func (p *Processor) Run(ctx context.Context, r io.Reader) (*Summary, error) {
	summary := &Summary{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		if err := p.handleLine(ctx, line); err != nil {
			summary.Failed++
			if p.continueOnError {
				p.logger.Warn("Ingest: line %d rejected: %v", lineNo, err)
				continue
			}
			return summary, fmt.Errorf("%w: line %d: %v", ErrLineFailed, lineNo, err)
		}
		summary.Processed++
	}

	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("%w: %v", ErrRead, err)
	}

	p.logger.Info("Ingest: %d requests processed, %d rejected", summary.Processed, summary.Failed)

	return summary, nil
}

// handleLine разбирает и выполняет одну заявку
func (p *Processor) handleLine(ctx context.Context, line string) error {
	fields := strings.Split(line, "\t")

	switch fields[0] {
	case lineCustomer:
		if len(fields) != 2 {
			return fmt.Errorf("%w: C needs 1 field, got %d", ErrBadLine, len(fields)-1)
		}
		_, err := p.customers.Execute(ctx, &register_customer.Request{Name: fields[1]})
		return err

	case lineVehicle:
		if len(fields) != 3 {
			return fmt.Errorf("%w: V needs 2 fields, got %d", ErrBadLine, len(fields)-1)
		}
		_, err := p.vehicles.Execute(ctx, &register_vehicle.Request{
			CustomerName: fields[1],
			Description:  fields[2],
		})
		return err

	case lineAppointment:
		if len(fields) != 4 {
			return fmt.Errorf("%w: S needs 3 fields, got %d", ErrBadLine, len(fields)-1)
		}
		_, err := p.scheduler.Execute(ctx, &schedule_appointment.Request{
			CustomerName:       fields[1],
			VehicleDescription: fields[2],
			ServiceName:        fields[3],
		})
		return err

	default:
		return fmt.Errorf("%w: unknown request type %q", ErrBadLine, fields[0])
	}
}

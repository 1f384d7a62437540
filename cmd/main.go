package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/m04kA/SMC-WorkshopService/internal/api/handlers/create_appointment"
	getPayrollHandler "github.com/m04kA/SMC-WorkshopService/internal/api/handlers/get_payroll"
	getScheduleHandler "github.com/m04kA/SMC-WorkshopService/internal/api/handlers/get_schedule"
	"github.com/m04kA/SMC-WorkshopService/internal/api/middleware"
	"github.com/m04kA/SMC-WorkshopService/internal/catalog"
	"github.com/m04kA/SMC-WorkshopService/internal/config"
	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	"github.com/m04kA/SMC-WorkshopService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-WorkshopService/internal/infra/storage/bootstrap"
	customerRepo "github.com/m04kA/SMC-WorkshopService/internal/infra/storage/customer"
	mechanicRepo "github.com/m04kA/SMC-WorkshopService/internal/infra/storage/mechanic"
	"github.com/m04kA/SMC-WorkshopService/internal/infra/storage/servicecatalog"
	vehicleRepo "github.com/m04kA/SMC-WorkshopService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-WorkshopService/internal/ingest"
	"github.com/m04kA/SMC-WorkshopService/internal/schedule"
	payrollService "github.com/m04kA/SMC-WorkshopService/internal/service/payroll"
	timetableService "github.com/m04kA/SMC-WorkshopService/internal/service/timetable"
	timetableModels "github.com/m04kA/SMC-WorkshopService/internal/service/timetable/models"
	"github.com/m04kA/SMC-WorkshopService/internal/usecase/rebuild_calendars"
	registerCustomerUC "github.com/m04kA/SMC-WorkshopService/internal/usecase/register_customer"
	registerVehicleUC "github.com/m04kA/SMC-WorkshopService/internal/usecase/register_vehicle"
	scheduleAppointmentUC "github.com/m04kA/SMC-WorkshopService/internal/usecase/schedule_appointment"
	"github.com/m04kA/SMC-WorkshopService/pkg/logger"
	"github.com/m04kA/SMC-WorkshopService/pkg/metrics"
)

// catalogLoader собирает загрузчик справочников из двух репозиториев
type catalogLoader struct {
	services  *servicecatalog.Repository
	mechanics *mechanicRepo.Repository
}

func (l catalogLoader) LoadServices(ctx context.Context) ([]*domain.Service, error) {
	return l.services.LoadServices(ctx)
}

func (l catalogLoader) LoadMechanics(ctx context.Context) ([]*domain.Mechanic, error) {
	return l.mechanics.LoadMechanics(ctx)
}

func (l catalogLoader) LoadBays(ctx context.Context) ([]*domain.Bay, error) {
	return l.mechanics.LoadBays(ctx)
}

func main() {
	configPath := flag.String("config", "config.toml", "путь к файлу конфигурации")
	dropTables := flag.Bool("drop", false, "удалить таблицы сервиса и выйти")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-WorkshopService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var schedulerMetrics scheduleAppointmentUC.Metrics = metrics.Nop{}
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		schedulerMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	ctx := context.Background()

	// Схема и стартовые данные
	bootstrapRepo := bootstrap.NewRepository(db)
	if *dropTables {
		if err := bootstrapRepo.Drop(ctx); err != nil {
			log.Fatal("Failed to drop tables: %v", err)
		}
		log.Info("Tables dropped")
		return
	}
	if err := bootstrapRepo.Build(ctx); err != nil {
		log.Fatal("Failed to build schema: %v", err)
	}

	// Загружаем справочники: услуги, механики, боксы
	loader := catalogLoader{
		services:  servicecatalog.NewRepository(db),
		mechanics: mechanicRepo.NewRepository(db),
	}
	cat, err := catalog.Load(ctx, loader)
	if err != nil {
		log.Fatal("Failed to load shop catalog: %v", err)
	}
	log.Info("Catalog loaded: %d services, %d bays", len(cat.Services()), cat.LaneCount())

	// Размер слота подбирается под длительности услуг
	quant, err := schedule.NewQuantizer(cat.Durations())
	if err != nil {
		log.Fatal("Failed to build quantizer: %v", err)
	}
	log.Info("Slot size is %d minutes (%d slots per day)", quant.SlotSize(), quant.SlotsPerDay())

	board := schedule.NewBoard(cat.LaneCount(), quant.SlotsPerDay())
	timeline := schedule.NewTimeline(time.Now(), quant.SlotSize())
	log.Info("Calendars anchored at %s", timeline.Anchor().Format(domain.StampFormat))

	// Инициализируем репозитории
	customerRepository := customerRepo.NewRepository(db)
	vehicleRepository := vehicleRepo.NewRepository(db)
	appointmentRepository := appointment.NewRepository(db)

	// Инициализируем use cases
	scheduleAppointmentUseCase := scheduleAppointmentUC.NewUseCase(
		cat,
		board,
		timeline,
		quant.SlotSize(),
		customerRepository,
		vehicleRepository,
		appointmentRepository,
		schedulerMetrics,
		log,
	)
	registerCustomerUseCase := registerCustomerUC.NewUseCase(customerRepository, log)
	registerVehicleUseCase := registerVehicleUC.NewUseCase(customerRepository, vehicleRepository, log)

	// Восстанавливаем календари из сохраненных записей
	rebuildUseCase := rebuild_calendars.NewUseCase(
		cat,
		timeline.Anchor(),
		appointmentRepository,
		vehicleRepository,
		customerRepository,
		scheduleAppointmentUseCase,
		log,
	)
	rebuilt, err := rebuildUseCase.Execute(ctx)
	if err != nil {
		log.Fatal("Failed to rebuild calendars: %v", err)
	}
	log.Info("Calendars rebuilt: %d appointments replayed, %d in the past",
		rebuilt.Replayed, rebuilt.Skipped)

	// Инициализируем сервисы чтения
	timetableSvc := timetableService.NewService(
		cat,
		appointmentRepository,
		vehicleRepository,
		customerRepository,
		log,
	)
	payrollSvc := payrollService.NewService(cat, board, quant.SlotSize(), log)

	// Обрабатываем файл заявок (если задан)
	if cfg.Ingest.File != "" {
		processor := ingest.NewProcessor(
			registerCustomerUseCase,
			registerVehicleUseCase,
			scheduleAppointmentUseCase,
			cfg.Ingest.ContinueOnError,
			log,
		)

		f, err := os.Open(cfg.Ingest.File)
		if err != nil {
			log.Fatal("Failed to open ingest file %s: %v", cfg.Ingest.File, err)
		}
		summary, err := processor.Run(ctx, f)
		f.Close()
		if err != nil {
			log.Fatal("Ingest failed: %v", err)
		}
		log.Info("Ingest finished: %d requests processed, %d rejected",
			summary.Processed, summary.Failed)

		printTimetable(ctx, timetableSvc, log)
		printPayroll(payrollSvc)
	}

	// Без HTTP сервера сессия заканчивается после обработки заявок
	if !cfg.Server.Enabled {
		log.Info("Server disabled, session finished")
		return
	}

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(scheduleAppointmentUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(timetableSvc, log)
	getPayroll := getPayrollHandler.NewHandler(payrollSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Планирование обслуживания
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Расписание мастерской
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Зарплатные ведомости
	api.HandleFunc("/payroll", getPayroll.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// printTimetable печатает расписание каждого механика
func printTimetable(ctx context.Context, svc *timetableService.Service, log *logger.Logger) {
	resp, err := svc.Get(ctx, &timetableModels.GetTimetableRequest{SortBy: timetableModels.SortByTime})
	if err != nil {
		log.Error("Failed to build timetable: %v", err)
		return
	}

	for _, mech := range resp.Mechanics {
		fmt.Printf("Schedule for %s (bay %d):\n", mech.MechanicName, mech.BayID)
		for _, appt := range mech.Appointments {
			fmt.Printf("  %s - %s  %s  %s (%s)\n",
				appt.StartTime.Format(domain.StampFormat),
				appt.EndTime.Format(domain.TimeFormat),
				appt.ServiceName,
				appt.CustomerName,
				appt.Vehicle,
			)
		}
		fmt.Println()
	}
}

// printPayroll печатает зарплатные ведомости по неделям. Нулевые строки
// не печатаются: механик без записей на неделе не получает чек
func printPayroll(svc *payrollService.Service) {
	resp := svc.Report()
	for _, week := range resp.Weeks {
		fmt.Printf("Payroll for week %d:\n", week.Week)
		for _, line := range week.Lines {
			if line.Amount == 0 {
				continue
			}
			fmt.Printf("  %s: $%.2f\n", line.MechanicName, line.Amount)
		}
		fmt.Println()
	}
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createCareOrderHandler "github.com/Munkh976/caremuch-sub000/internal/api/handlers/create_care_order"
	deleteOrderHandler "github.com/Munkh976/caremuch-sub000/internal/api/handlers/delete_order"
	getCaregiverShiftsHandler "github.com/Munkh976/caremuch-sub000/internal/api/handlers/get_caregiver_shifts"
	getCaregiverSlotsHandler "github.com/Munkh976/caremuch-sub000/internal/api/handlers/get_caregiver_slots"
	getClientOrdersHandler "github.com/Munkh976/caremuch-sub000/internal/api/handlers/get_client_orders"
	getOrderHandler "github.com/Munkh976/caremuch-sub000/internal/api/handlers/get_order"
	getOrderShiftsHandler "github.com/Munkh976/caremuch-sub000/internal/api/handlers/get_order_shifts"
	getSlotCatalogHandler "github.com/Munkh976/caremuch-sub000/internal/api/handlers/get_slot_catalog"
	matchCaregiversHandler "github.com/Munkh976/caremuch-sub000/internal/api/handlers/match_caregivers"
	"github.com/Munkh976/caremuch-sub000/internal/api/middleware"
	"github.com/Munkh976/caremuch-sub000/internal/config"
	orderRepo "github.com/Munkh976/caremuch-sub000/internal/infra/storage/order"
	shiftRepo "github.com/Munkh976/caremuch-sub000/internal/infra/storage/shift"
	directoryClient "github.com/Munkh976/caremuch-sub000/internal/integrations/directory"
	ordersService "github.com/Munkh976/caremuch-sub000/internal/service/orders"
	createCareOrderUC "github.com/Munkh976/caremuch-sub000/internal/usecase/create_care_order"
	getCaregiverSlotsUC "github.com/Munkh976/caremuch-sub000/internal/usecase/get_caregiver_slots"
	matchCaregiversUC "github.com/Munkh976/caremuch-sub000/internal/usecase/match_caregivers"
	"github.com/Munkh976/caremuch-sub000/pkg/logger"
	"github.com/Munkh976/caremuch-sub000/pkg/metrics"
	"github.com/Munkh976/caremuch-sub000/pkg/ordernum"
	"github.com/Munkh976/caremuch-sub000/pkg/txmanager"
)

// meteredCreateOrder увеличивает счётчики заказов и смен при успешной материализации
type meteredCreateOrder struct {
	inner   *createCareOrderUC.UseCase
	metrics *metrics.Metrics
}

func (m *meteredCreateOrder) Execute(ctx context.Context, req *createCareOrderUC.Request) (*createCareOrderUC.Response, error) {
	resp, err := m.inner.Execute(ctx, req)
	if err == nil {
		m.metrics.OrdersCreated.Inc()
		m.metrics.ShiftsCreated.Add(float64(len(resp.Shifts)))
	}
	return resp, err
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting CareMuch scheduling service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
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

	// Клиент справочного сервиса агентства (клиенты, сиделки, каталог услуг)
	directory := directoryClient.NewClient(
		cfg.Directory.URL,
		time.Duration(cfg.Directory.Timeout)*time.Second,
		log,
	)
	log.Info("Directory client initialized (url=%s, timeout=%ds)",
		cfg.Directory.URL, cfg.Directory.Timeout)

	// Инициализируем репозитории и transaction manager
	orderRepository := orderRepo.NewRepository(db)
	shiftRepository := shiftRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Генератор номеров заказов
	orderNumGen := ordernum.NewGenerator(cfg.Orders.NumberPrefix)

	// Инициализируем сервис заказов
	ordersSvc := ordersService.NewService(
		orderRepository,
		shiftRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createCareOrderUseCase := createCareOrderUC.NewUseCase(
		orderRepository,
		shiftRepository,
		directory,
		orderNumGen,
		txMgr,
		log,
	)
	matchCaregiversUseCase := matchCaregiversUC.NewUseCase(directory, log)
	getCaregiverSlotsUseCase := getCaregiverSlotsUC.NewUseCase(directory, log)

	// Инициализируем handlers
	var createOrderExec createCareOrderHandler.CreateCareOrderUseCase = createCareOrderUseCase
	if cfg.Metrics.Enabled {
		createOrderExec = &meteredCreateOrder{inner: createCareOrderUseCase, metrics: metricsCollector}
	}
	createCareOrder := createCareOrderHandler.NewHandler(createOrderExec, log)
	matchCaregivers := matchCaregiversHandler.NewHandler(matchCaregiversUseCase, log)
	getCaregiverSlots := getCaregiverSlotsHandler.NewHandler(getCaregiverSlotsUseCase, log)
	getSlotCatalog := getSlotCatalogHandler.NewHandler()
	getOrder := getOrderHandler.NewHandler(ordersSvc, log)
	getClientOrders := getClientOrdersHandler.NewHandler(ordersSvc, log)
	getOrderShifts := getOrderShiftsHandler.NewHandler(ordersSvc, log)
	getCaregiverShifts := getCaregiverShiftsHandler.NewHandler(ordersSvc, log)
	deleteOrder := deleteOrderHandler.NewHandler(ordersSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог кандидатных времён начала визита
	api.HandleFunc("/slot-catalog", getSlotCatalog.Handle).Methods(http.MethodGet)

	// Подбор сиделок для клиента на день недели
	api.HandleFunc("/clients/{clientId}/caregiver-matches",
		matchCaregivers.Handle).Methods(http.MethodGet)

	// Выполнимые слоты сиделки с учётом длительности визита
	api.HandleFunc("/caregivers/{caregiverId}/slots",
		getCaregiverSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Заказы ---
	// Материализация заказа из завершённого черновика бронирования
	protected.HandleFunc("/orders", createCareOrder.Handle).Methods(http.MethodPost)

	// Получение заказа по ID
	protected.HandleFunc("/orders/{orderId}", getOrder.Handle).Methods(http.MethodGet)

	// Удаление заказа вместе со сменами (компенсация)
	protected.HandleFunc("/orders/{orderId}", deleteOrder.Handle).Methods(http.MethodDelete)

	// Смены заказа
	protected.HandleFunc("/orders/{orderId}/shifts", getOrderShifts.Handle).Methods(http.MethodGet)

	// История заказов клиента
	protected.HandleFunc("/clients/{clientId}/orders", getClientOrders.Handle).Methods(http.MethodGet)

	// --- График сиделки ---
	protected.HandleFunc("/caregivers/{caregiverId}/shifts",
		getCaregiverShifts.Handle).Methods(http.MethodGet)

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

	// Ожидаем сигнал завершения
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

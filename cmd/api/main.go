package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Werneck0live/office-admin/internal/broker"
	"github.com/Werneck0live/office-admin/internal/config"
	"github.com/Werneck0live/office-admin/internal/db"
	"github.com/Werneck0live/office-admin/internal/handlers"
	"github.com/Werneck0live/office-admin/internal/report"
	"github.com/Werneck0live/office-admin/internal/repository"
	"github.com/Werneck0live/office-admin/internal/store"
)

// cmd/api/main.go
func main() {
	cfg := config.Load() // .env

	// Logger JSON "global" - permite usar slog.Info/slog.Error/Warn em qualquer lugar
	_ = config.InitLogger(os.Stdout, cfg.LogLevel)
	log := slog.Default().With("svc", "api")
	log.Info("starting", "port", cfg.Port, "mongo_db", cfg.MongoDB)

	client, err := db.NewMongoClient(cfg.MongoURI)
	if err != nil {
		log.Error("mongo_connect_error", "err", err)
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	database := client.Database(cfg.MongoDB)

	if err := repository.EnsureIndexes(context.Background(), database); err != nil {
		log.Warn("ensure_indexes_error", "err", err)
	}

	// publisher (Rabbit) é opcional
	var events handlers.Notifier
	if cfg.RabbitURI != "" {
		pub, err := broker.NewPublisher(cfg.RabbitURI, cfg.RabbitQueue)
		if err != nil {
			log.Error("rabbitmq_connect_error", "err", err)
			os.Exit(1)
		}
		defer pub.Close()
		events = broker.NewNotifier(pub, log)
	}

	repos := repository.NewRepositories(database)
	engine := report.NewEngine(store.NewMongoSource(database, cfg.OpTimeout), cfg.Location)

	employees := handlers.NewEmployeeHandler(repos.Employees, events)
	reports := handlers.NewReportHandler(engine, cfg.OpTimeout)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", handlers.Health)
	mux.HandleFunc("/api/employees", employees.Employees)
	mux.HandleFunc("/api/employees/", employees.EmployeeByID)
	mux.HandleFunc("/api/reports/", reports.Report)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           logMiddleware(mux),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	go func() {
		log.Info("http_listen", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http_server_error", "err", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful_shutdown_error", "err", err)
	}
	log.Info("stopped")
}

type statusRW struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusRW) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRW) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusRW{ResponseWriter: w}
		next.ServeHTTP(srw, r)
		slog.Info("http_request",
			"method", r.Method, "path", r.URL.Path,
			"status", srw.status, "bytes", srw.bytes,
			"duration", fmtDuration(time.Since(start)),
		)
	})
}

func fmtDuration(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Milliseconds())
}

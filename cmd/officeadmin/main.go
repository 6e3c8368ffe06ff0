package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Werneck0live/office-admin/internal/admin"
	"github.com/Werneck0live/office-admin/internal/broker"
	"github.com/Werneck0live/office-admin/internal/cli"
	"github.com/Werneck0live/office-admin/internal/config"
	"github.com/Werneck0live/office-admin/internal/db"
	"github.com/Werneck0live/office-admin/internal/presenter"
	"github.com/Werneck0live/office-admin/internal/report"
	"github.com/Werneck0live/office-admin/internal/repository"
	"github.com/Werneck0live/office-admin/internal/store"
)

// cmd/officeadmin/main.go
func main() {
	cfg := config.Load() // .env

	_ = config.InitLogger(os.Stderr, cfg.LogLevel)
	log := slog.Default().With("svc", "officeadmin")

	// HOOK: tarefas one-off
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Error("invalid_flags", "err", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch opts.task {
	case taskNone:
	case taskSeed, taskReport:
		// aqui o ping tem que passar
		client, err := db.NewMongoClient(cfg.MongoURI)
		if err != nil {
			log.Error("mongo_connect_error", "err", err)
			os.Exit(1)
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		database := client.Database(cfg.MongoDB)

		if opts.task == taskSeed {
			if err := repository.EnsureIndexes(ctx, database); err != nil {
				log.Warn("ensure_indexes_error", "err", err)
			}
			if err := admin.SeedBuilding(ctx, repository.NewRepositories(database), log); err != nil {
				log.Error("seed_failed", "err", err)
				os.Exit(1)
			}
			log.Info("seed_done")
			return
		}

		engine := report.NewEngine(store.NewMongoSource(database, cfg.OpTimeout), cfg.Location)
		if err := runReport(ctx, os.Stdout, engine, opts); err != nil {
			log.Error("report_failed", "report", opts.report, "err", err)
			os.Exit(1)
		}
		return
	}

	// sessão interativa: falha no ping não derruba o processo
	client, err := db.OpenMongoClient(cfg.MongoURI)
	if client == nil {
		log.Error("mongo_connect_error", "err", err)
		os.Exit(1)
	}
	if err != nil {
		log.Error("mongo_connect_error", "err", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	database := client.Database(cfg.MongoDB)

	if err == nil {
		if err := repository.EnsureIndexes(ctx, database); err != nil {
			log.Warn("ensure_indexes_error", "err", err)
		}
	}

	repos := repository.NewRepositories(database)
	menu := cli.NewMenu(os.Stdin, os.Stdout, log)
	menu.Employees = repos.Employees
	menu.Reports = report.NewEngine(store.NewMongoSource(database, cfg.OpTimeout), cfg.Location)
	menu.Location = cfg.Location
	menu.OpTimeout = cfg.OpTimeout

	if cfg.RabbitURI != "" {
		pub, err := broker.NewPublisher(cfg.RabbitURI, cfg.RabbitQueue)
		if err != nil {
			log.Warn("rabbitmq_connect_error", "err", err)
		} else {
			defer pub.Close()
			menu.Events = broker.NewNotifier(pub, log)
		}
	}

	if err := menu.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("menu_error", "err", err)
		os.Exit(1)
	}
}

const (
	taskNone   = ""
	taskSeed   = "seed"
	taskReport = "report"
)

var errUnknownTask = errors.New("unknown task")

type options struct {
	task   string
	report string
	date   string
	xlsx   string
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("officeadmin", flag.ContinueOnError)
	fs.StringVar(&o.task, "task", "", "one-off task: seed | report")
	fs.StringVar(&o.report, "report", "", "report name: costs | daily | revenue | salary")
	fs.StringVar(&o.date, "date", "", "day for the daily report (YYYY-MM-DD)")
	fs.StringVar(&o.xlsx, "xlsx", "", "write the report as .xlsx to this path")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	switch o.task {
	case taskNone, taskSeed:
	case taskReport:
		if o.report == "" {
			return options{}, errors.New("-task report requires -report")
		}
	default:
		return options{}, fmt.Errorf("%w: %q", errUnknownTask, o.task)
	}
	return o, nil
}

// runReport executa um relatório e escreve o texto em out ou o .xlsx em opts.xlsx.
func runReport(ctx context.Context, out io.Writer, engine *report.Engine, opts options) error {
	name := opts.report
	var day time.Time
	if name == report.NameDailyEntries {
		d, err := report.ParseDay(opts.date, engine.Location())
		if err != nil {
			return err
		}
		day = d
	}

	result, err := engine.Run(ctx, name, day)
	if err != nil {
		return err
	}

	if opts.xlsx == "" {
		return presenter.WriteText(out, result, engine.Location())
	}
	data, err := presenter.WriteXLSX(result, engine.Location())
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.xlsx, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.xlsx, err)
	}
	slog.Info("report_written", "report", name, "path", opts.xlsx)
	return nil
}

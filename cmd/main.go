package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lugorito/pedidos-http/internal/app"
	"github.com/lugorito/pedidos-http/internal/config"
	"github.com/lugorito/pedidos-http/internal/handler"
	"github.com/lugorito/pedidos-http/internal/service"
	"github.com/lugorito/pedidos-http/internal/sinks"

	"github.com/joho/godotenv"
)

// @title           Pedidos API
// @version         1.0
// @description     Intake de pedidos da loja: valida, grava e avisa o operador
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	sheet, err := sinks.NewSheetsSink(ctx, conf.Sheets)
	panicIfErr("failed to create sheets sink", err)
	logger.Info("sheets client ready", slog.String("spreadsheet_id", conf.Sheets.SpreadsheetID))

	backup, err := sinks.NewFileBackup(conf.Backup.Dir)
	panicIfErr("failed to create backup sink", err)

	mailer, err := sinks.NewSMTPMailer(conf.SMTP)
	panicIfErr("failed to create smtp client", err)

	orderService := service.NewOrderService(logger, conf.Origem, sheet, backup, mailer)
	httpHandler := handler.NewHTTPHandler(logger, orderService)

	handler.RegisterMetrics()

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler)
	app.SetDrainers(orderService)

	app.Start()
	<-ctx.Done()
	app.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

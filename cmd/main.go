package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/twosvc/notification-service/internal/app"
	"github.com/twosvc/notification-service/internal/client"
	"github.com/twosvc/notification-service/internal/config"
	"github.com/twosvc/notification-service/internal/handler"
	"github.com/twosvc/notification-service/internal/service"

	_ "github.com/twosvc/notification-service/docs"

	"github.com/joho/godotenv"
)

// @title           Notification Service API
// @version         1.0
// @description     HTTP API сервиса уведомлений (service-b)
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	userClient := client.NewUserClient(logger, conf.Peer)

	orderClient, err := client.NewOrderClient(logger, conf.OrderRPC)
	panicIfErr("failed to create order rpc client", err)

	notificationService := service.NewNotificationService(logger, userClient, orderClient)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, notificationService)
	httpHandler := handler.NewHTTPHandler(logger, notificationService)

	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHttpHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetClosers(orderClient)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app.Start(ctx)
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

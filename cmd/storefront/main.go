package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	storefront "github.com/Ubarrionuevo/distribuidora-leo"
	"github.com/Ubarrionuevo/distribuidora-leo/cart"
	"github.com/Ubarrionuevo/distribuidora-leo/category"
	"github.com/Ubarrionuevo/distribuidora-leo/driver"
	"github.com/Ubarrionuevo/distribuidora-leo/httpx"
	"github.com/Ubarrionuevo/distribuidora-leo/order"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	httpAddr := getEnv("HTTP_ADDR", ":8080")
	redisAddr := getEnv("REDIS_ADDR", "localhost:6379")
	redisPassword := getEnv("REDIS_PASSWORD", "")
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	natsURL := getEnv("NATS_URL", "")
	waBaseURL := getEnv("WHATSAPP_BASE_URL", order.DefaultBaseURL)
	waContact := getEnv("WHATSAPP_CONTACT_ID", order.DefaultContactID)

	// Redis es best effort: sin snapshot store el carrito vive solo en
	// memoria y el storefront sigue funcionando.
	var redisClient *redis.Client
	if c, err := driver.ConnectRedis(redisAddr, redisPassword, redisDB); err != nil {
		logger.Warn("Redis unavailable, carts will not survive restarts", zap.Error(err))
	} else {
		redisClient = c
		defer redisClient.Close()
	}

	var cartRepo cart.Repository
	var categoryRepo category.Repository
	if redisClient != nil {
		cartRepo = cart.NewRepository(redisClient, logger)
		categoryRepo = category.NewRepository(redisClient, logger)
	}

	// NATS también es opcional: sin broker no hay eventos.
	var natsConn *nats.Conn
	if natsURL != "" {
		if nc, err := driver.ConnectNATS(natsURL); err != nil {
			logger.Warn("NATS unavailable, eventing disabled", zap.Error(err))
		} else {
			natsConn = nc
			defer natsConn.Close()
		}
	}

	svc := storefront.NewService(cartRepo, categoryRepo, natsConn,
		order.NewLinkBuilder(waBaseURL, waContact), logger)
	defer svc.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc.WarmCategoryImages(ctx)

	server := &http.Server{
		Addr:    httpAddr,
		Handler: httpx.NewRouter(httpx.NewHandler(svc, logger)),
	}

	go func() {
		logger.Info("Storefront listening", zap.String("addr", httpAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown failed", zap.Error(err))
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sokopay/sokotrack/internal/adapter/auth"
	"github.com/sokopay/sokotrack/internal/adapter/client/marketplace"
	"github.com/sokopay/sokotrack/internal/adapter/config"
	"github.com/sokopay/sokotrack/internal/adapter/handler/http"
	"github.com/sokopay/sokotrack/internal/adapter/logger"
	"github.com/sokopay/sokotrack/internal/core/domain"
	"github.com/sokopay/sokotrack/internal/core/tracking"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	confirm, err := auth.New(conf.Tracking.ConfirmTokenTTL)
	if err != nil {
		log.Error("confirmation service creating error", zap.Error(err))
		return
	}

	client, err := marketplace.NewClient(conf.Marketplace, log.Named("Marketplace"))
	if err != nil {
		log.Error("marketplace client creating error", zap.Error(err))
		return
	}

	// The celebratory cue the presentation layer renders as confetti.
	celebration := func(order *domain.OrderRecord) {
		log.Info("order completed, funds released to seller",
			zap.String("order", string(order.ID)),
			zap.String("seller", order.SellerName))
	}

	manager, err := tracking.NewManager(client, confirm,
		conf.Tracking.PollInterval, conf.Tracking.PaymentPollInterval,
		celebration, log.Named("Tracking"))
	if err != nil {
		log.Error("tracking manager creating error", zap.Error(err))
		return
	}

	orderHandler, err := http.NewOrderHandler(manager, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, orderHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.Serve(conf.HTTP.HostString)
	})
	g.Go(func() error {
		<-gctx.Done()
		manager.CloseAll()
		return gctx.Err()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("service stopped", zap.Error(err))
	}
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/priyanshudas00/zippgo/internal/notifier"
	"github.com/priyanshudas00/zippgo/internal/worker"
	"github.com/priyanshudas00/zippgo/pkg/config"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func parseCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func main() {
	ncfg := must(config.LoadNotify())

	cfg := worker.Config{
		RabbitURL:   ncfg.RabbitURL,
		Exchange:    ncfg.BookingExchange,
		Queue:       ncfg.NotifyQueue,
		Bindings:    parseCSV(ncfg.NotifyBindings),
		Prefetch:    ncfg.Prefetch,
		UseDLX:      true,
		DLXName:     ncfg.NotifyDLX,
		DLXQueue:    ncfg.NotifyDLQ,
		ServiceName: "zippgo-notify",
	}

	cons := worker.NewConsumer(cfg, notifier.NewConsole())
	for {
		if err := cons.Connect(); err != nil {
			log.Printf("[notify] connect failed: %v; retry in 2s", err)
			time.Sleep(2 * time.Second)
			continue
		}
		break
	}
	defer cons.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := cons.Run(ctx); err != nil {
			log.Printf("[notify] run error: %v", err)
		}
	}()

	log.Printf("[notify] started. queue=%s exchange=%s bindings=%v", cfg.Queue, cfg.Exchange, cfg.Bindings)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	cancel()
	time.Sleep(200 * time.Millisecond)
}

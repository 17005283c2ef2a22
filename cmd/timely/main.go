package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/timely-app/timely/config"
	"github.com/timely-app/timely/internal/scheduler"
	"github.com/timely-app/timely/internal/server"
	"github.com/timely-app/timely/internal/service"
	"github.com/timely-app/timely/internal/storage"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	configPath := flag.String("config", defaultConfigPath(), "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := storage.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to init storage: %v", err)
	}
	defer store.Close()

	notifier := scheduler.LogNotifier{}

	eventSvc := service.NewEventService(store, service.NewSequence(0))
	if err := eventSvc.Load(); err != nil {
		log.Fatalf("Failed to load events: %v", err)
	}

	settingsSvc := service.NewSettingsService(store)
	if err := settingsSvc.Load(); err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	clockSvc := service.NewClockService()
	pomodoroSvc := service.NewPomodoroService(notifier)

	sched := scheduler.New(cfg, eventSvc, notifier)
	srv := server.New(cfg.ListenAddr, eventSvc, settingsSvc, clockSvc, pomodoroSvc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := sched.Start(ctx); err != nil {
			log.Printf("Scheduler error: %v", err)
		}
	}()

	go pomodoroSvc.Run(ctx)

	go func() {
		if err := srv.Start(ctx); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Println("timely started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down...")

	cancel()
	sched.Stop()
}

func defaultConfigPath() string {
	if p := os.Getenv("TIMELY_CONFIG"); p != "" {
		return p
	}
	return "./config.yaml"
}

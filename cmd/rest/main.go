package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"manasfit-be/internal/bootstrap"
	"manasfit-be/internal/config"
	"manasfit-be/internal/server"
	"manasfit-be/internal/tracer"
	"manasfit-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer(cfg.App)
	defer shutdownTracer(context.Background())

	// 3. Initialize Database (optional: chats fall back to the local store)
	gormDB, err := database.OpenOptional(cfg.Database.Connection, cfg.Database.Debug)
	if err != nil {
		log.Printf("[WARN] Unable to connect to GORM DB: %v (using local storage)", err)
		gormDB = nil
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Close()

	// 5. Start Background Services
	if err := container.ConsumerService.Consume(context.Background()); err != nil {
		log.Printf("Background Consumer Error: %v", err)
	}

	// 6. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Shutdown Error: %v", err)
		}
	}()

	// 7. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server Error: %v", err)
	}
}

// Утилита обслуживания: удаляет все бронирования.
// Использует ту же конфигурацию, что и сервис.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-SlotBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-SlotBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SlotBookingService/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := bookingRepo.NewRepository(db, cfg.Database.QueryTimeoutDuration()).DeleteAll(ctx)
	if err != nil {
		log.Error("ClearBookings: %v", err)
		os.Exit(1)
	}

	log.Info("ClearBookings: deleted %d booking(s)", deleted)
	fmt.Printf("Deleted %d appointment(s).\n", deleted)
}

package main // Entry point package

import (
    "log"
    "os"
    "time"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-property-management/internal/allocation"
    "github.com/iliyamo/hotel-property-management/internal/config"
    "github.com/iliyamo/hotel-property-management/internal/database"
    "github.com/iliyamo/hotel-property-management/internal/handler"
    "github.com/iliyamo/hotel-property-management/internal/middleware"
    "github.com/iliyamo/hotel-property-management/internal/queue"
    "github.com/iliyamo/hotel-property-management/internal/repository"
    "github.com/iliyamo/hotel-property-management/internal/router"
)

func main() {
    // .env is optional; real deployments set the environment directly.
    _ = godotenv.Load()

    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    defer db.Close()

    rdb := config.NewRedisClient() // nil means cache + limiter degrade
    if rdb == nil {
        log.Printf("redis unavailable; rate limiting and availability cache disabled")
    }

    // Repositories.
    hotels := repository.NewHotelRepo(db)
    rooms := repository.NewRoomRepo(db)
    details := repository.NewDetailRepo(db)
    reservations := repository.NewReservationRepo(db)
    parking := repository.NewParkingRepo(db)
    users := repository.NewUserRepo(db)
    tokens := repository.NewTokenRepo(db)

    // Allocation engine.
    defaults := allocation.Defaults{
        TempBlockClientID:      cfg.TempBlockClientID,
        PermanentBlockClientID: cfg.PermanentBlockClientID,
        PeopleCount:            cfg.DefaultPeopleCount,
        ParkingUnitPrice:       cfg.DefaultParkingPrice,
        RoomMode:               allocation.ParseMode(cfg.RoomAllocationMode),
    }
    blockWorkflow := &allocation.BlockWorkflow{
        DB:           db,
        Hotels:       hotels,
        Reservations: reservations,
        Details:      details,
        Rooms:        allocation.NewRoomAllocator(rooms),
        Parking:      allocation.NewParkingAllocator(parking),
        ParkingStore: parking,
        Defaults:     defaults,
    }
    calendarWorkflow := &allocation.CalendarWorkflow{
        DB:           db,
        Hotels:       hotels,
        Rooms:        rooms,
        Details:      details,
        Reservations: reservations,
        Inventory:    allocation.NewInventory(details),
        Defaults:     defaults,
    }
    mergeWorkflow := &allocation.MergeWorkflow{
        DB:           db,
        Reservations: reservations,
        Details:      details,
    }

    // Background consumer logs committed blocks and merges.
    go func() {
        if err := queue.StartOperationsConsumer(); err != nil {
            log.Printf("ops consumer stopped: %v", err)
        }
    }()

    e := echo.New()
    e.HideBanner = true

    limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

    router.RegisterRoutes(e)
    router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens), cfg.JWTSecret)
    router.RegisterEngine(e, router.Engine{
        Availability: handler.NewAvailabilityHandler(rooms, rdb, availabilityTTL()),
        Blocks:       handler.NewBlockHandler(blockWorkflow),
        Calendar:     handler.NewCalendarHandler(calendarWorkflow),
        Reservations: handler.NewReservationHandler(db, reservations, allocation.NewOverlapChecker(details), mergeWorkflow),
    }, cfg.JWTSecret, limiter)

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)
    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}

// availabilityTTL reads the cache TTL override; zero falls back to the
// handler default.
func availabilityTTL() time.Duration {
    if v := os.Getenv("AVAILABILITY_CACHE_TTL"); v != "" {
        if d, err := time.ParseDuration(v); err == nil {
            return d
        }
    }
    return 0
}

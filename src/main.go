package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "attendance-sf2/docs"
	"attendance-sf2/src/config"
	"attendance-sf2/src/controllers"
	"attendance-sf2/src/database"
	"attendance-sf2/src/jobs"
	"attendance-sf2/src/middleware"
	"attendance-sf2/src/routes"
	"attendance-sf2/src/services/attendance"
	"attendance-sf2/src/services/cache"
	"attendance-sf2/src/services/exports"
	"attendance-sf2/src/services/reports"
	"attendance-sf2/src/services/sf2"
	"attendance-sf2/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// @title        Attendance SF2 API
// @version      1.0
// @description  School attendance aggregation and SF2 export
// @BasePath     /api
func main() {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.AppEnv)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tieBreak, err := attendance.ParseTieBreaker(cfg.RankingTieBreak)
	if err != nil {
		logger.Fatal("invalid RANKING_TIE_BREAK", zap.Error(err))
	}
	overflow, err := sf2.ParseOverflowPolicy(cfg.SF2Overflow)
	if err != nil {
		logger.Fatal("invalid SF2_OVERFLOW", zap.Error(err))
	}
	loc := cfg.Location()

	// เชื่อมต่อ store ตาม STORE_DRIVER
	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal("Error connecting to the database", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer database.DisconnectMongoDB(context.Background())

	rdb, err := database.InitRedis(cfg.RedisURI)
	if err != nil {
		logger.Warn("⚠️ Redis unavailable, cache and export queue disabled", zap.Error(err))
	}
	asynqClient := database.InitAsynq(cfg.RedisURI)
	if asynqClient != nil {
		defer asynqClient.Close()
	}

	layout := sf2.DefaultLayout()
	layout.Overflow = overflow
	if _, err := os.Stat(cfg.SF2TemplatePath); err != nil {
		logger.Warn("⚠️ SF2 template not found; run cmd/sf2template to create one", zap.String("path", cfg.SF2TemplatePath))
	}
	renderer := sf2.NewRenderer(cfg.SF2TemplatePath, layout, cfg.SF2RenderTimeout, logger.Named("sf2"))

	reportCache := cache.NewReportCache(rdb, cfg.ReportCacheTTL)
	builder := exports.NewBuilder(store, store, reportCache, loc, logger.Named("exports"))

	// interface ที่ถือ nil pointer ไม่นับว่า nil จึงต้องตั้งเฉพาะตอนมี client
	var dispatcher exports.Dispatcher
	var migrations controllers.MigrationQueue
	if queue := jobs.NewClient(asynqClient); queue != nil {
		dispatcher = queue
		migrations = queue
	}
	exportSvc := exports.NewService(builder, renderer, cache.NewJobStore(rdb, cfg.ExportTTL), dispatcher, logger.Named("exports"))
	reportSvc := reports.NewService(store, store, loc, tieBreak, logger.Named("reports"))

	// worker รันใน process เดียวกับ API เมื่อมี Redis
	if rdb != nil {
		worker := jobs.NewServer(cfg.RedisURI, cfg.WorkerConcurrency, logger.Named("worker"))
		mux := jobs.NewMux(jobs.Handlers{Exports: exportSvc, Roster: store, Cache: reportCache}, logger.Named("worker"))
		if err := worker.Start(mux); err != nil {
			logger.Fatal("❌ Failed to start worker", zap.Error(err))
		}
		defer worker.Shutdown()
		logger.Info("✅ Worker started", zap.Int("concurrency", cfg.WorkerConcurrency))
	}

	validate := validator.New()

	// สร้าง app instance
	app := fiber.New(fiber.Config{
		AppName:               "attendance-sf2",
		DisableStartupMessage: cfg.IsProduction(),
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          cfg.SF2RenderTimeout + 10*time.Second,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(middleware.Metrics())

	// ✅ เปิดใช้งาน CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Content-Disposition",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app, routes.Controllers{
		SF2:        controllers.NewSF2Controller(renderer, exportSvc, validate, logger),
		Reports:    controllers.NewReportsController(reportSvc, logger),
		Sections:   controllers.NewSectionsController(store, logger),
		ExportJobs: controllers.NewExportJobsController(exportSvc, validate, logger),
		AdminJobs:  controllers.NewAdminJobsController(migrations, store, reportCache, logger),
	}, cfg.JWTSecret)
	if cfg.JWTSecret == "" {
		logger.Warn("⚠️ JWT_SECRET not set, /api is open")
	}

	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("server shutdown", zap.Error(err))
		}
	}()

	// เริ่มเซิร์ฟเวอร์
	logger.Info("Server is running", zap.String("port", cfg.AppURI), zap.String("store", cfg.StoreDriver))
	if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.AppURI))); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
}

func openStore(ctx context.Context, cfg config.Config) (database.Store, error) {
	if err := database.ValidateDriver(cfg.StoreDriver); err != nil {
		return nil, err
	}

	if cfg.StoreDriver == database.DriverFirestore {
		fs, err := database.InitFirestore(ctx, cfg.FirestoreProjectID, cfg.GoogleCredentials)
		if err != nil {
			return nil, err
		}
		return database.NewFirestoreStore(fs), nil
	}

	if err := database.ConnectMongoDB(cfg.MongoURI, cfg.MongoDB); err != nil {
		return nil, err
	}
	indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(indexCtx); err != nil {
		log.Println("⚠️ Could not create indexes:", err)
	}
	return database.NewDefaultMongoStore(), nil
}

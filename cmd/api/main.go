package main

import (
	"context"
	"time"

	"app/internal/catalog"
	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	repo "app/internal/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	//.envは無くてもよい（デモはデフォルト設定で動く）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	//カート保存先を設定に従って選ぶ
	var snapshots repo.CartSnapshotRepository
	switch cfg.StorageDriver {
	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		})
		snapshots = infraRepo.NewCartSnapshotRedisRepository(client)
	default:
		gormDB, err := db.Connect(cfg)
		if err != nil {
			log.Fatal("db connect failed", zap.Error(err))
		}
		gormRepo := infraRepo.NewCartSnapshotGormRepository(gormDB)
		if err := gormRepo.Migrate(); err != nil {
			log.Fatal("db migrate failed", zap.Error(err))
		}
		snapshots = gormRepo
	}

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//Usecase生成
	notifier := usecase.NewNotifier(idGen, clock, cfg.NotifyTTL)
	cat := catalog.Default()
	productUC := usecase.NewProductUsecase(cat)
	cartUC := usecase.NewCartUsecase(cat, snapshots, notifier, log)
	contactUC := usecase.NewContactUsecase(notifier)

	//保存済みカートから復元（無ければ空）
	cartUC.Restore(context.Background())

	//Handler生成
	handlers := server.Handlers{
		Page:         handler.NewPageHandler("Aurelia Jewelry", productUC, cartUC, notifier),
		Product:      handler.NewProductHandler(productUC),
		Cart:         handler.NewCartHandler(cartUC),
		Contact:      handler.NewContactHandler(contactUC),
		Notification: handler.NewNotificationHandler(notifier),
	}

	//Server起動
	addr := ":" + cfg.Port
	log.Info("storefront starting", zap.String("addr", addr), zap.String("storage", cfg.StorageDriver))

	if err := server.Start(addr, log, handlers); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.GoEnv == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

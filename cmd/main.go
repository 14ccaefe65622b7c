package main

import (
	"context"
	"database/sql"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"gobeer/config"
	_ "gobeer/docs" // registra o Swagger gerado
	"gobeer/internal/api/beer"
	"gobeer/internal/api/router"
	"gobeer/internal/api/user"
	"gobeer/internal/domain"
	"gobeer/internal/events"
	"gobeer/internal/pkg/cache"
	"gobeer/internal/pkg/database"
	"gobeer/internal/pkg/logger"
	"gobeer/internal/pkg/token"
	"gobeer/internal/repository/beerrepo"
	"gobeer/internal/repository/userrepo"
	"gobeer/internal/service/beerservice"
	"gobeer/internal/service/userservice"
)

// @title GoBeer API
// @version 1.0
// @description Catálogo de cervejas: consulta, criação, atualização e listagem paginada.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	if err := godotenv.Load(); err != nil {
		stdlog.Println("⚠️ Aviso: Arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	var log logger.Logger
	if cfg.Environment == "development" {
		log = logger.NewDevelopmentLogger(cfg.LogLevel)
	} else {
		log = logger.NewLogger(cfg.LogLevel)
	}
	defer func() { _ = log.Sync() }()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Configuração inválida.", err)
	}
	log.Info("⚡ Inicializando serviço GoBeer...", map[string]interface{}{"env": cfg.Environment, "storage": cfg.StorageDriver})

	// 1. Cache (Redis, com fallback em memória)
	cacheClient := cache.NewClient(cfg.RedisAddr, cfg.CacheTimeout, log)

	// 2. Repositórios
	var (
		beerRepo domain.BeerRepository
		userRepo domain.UserRepository
	)
	if cfg.UsesSQL() {
		db := openDatabase(cfg, log)
		defer db.Close()
		beerRepo = beerrepo.NewSQLRepository(db, cfg.StorageDriver, cacheClient, cfg.DBTimeout, cfg.CacheTTL, log)
		userRepo = userrepo.NewUserRepository(db, cfg.StorageDriver, cfg.DBTimeout, log)
	} else {
		log.Warn("STORAGE_DRIVER=memory: os dados não sobrevivem a reinicializações.", nil)
		beerRepo = beerrepo.NewMemoryRepository()
		userRepo = userrepo.NewMemoryRepository()
	}

	// 3. Eventos
	var publisher events.Publisher = events.NewLogPublisher(log)
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPub, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopicBeers, log)
		if err != nil {
			log.Fatal("Falha ao conectar ao Kafka.", err)
		}
		defer kafkaPub.Close()
		publisher = kafkaPub
		log.Info("Publisher Kafka inicializado.", map[string]interface{}{"topic": cfg.KafkaTopicBeers})
	}

	// 4. Serviços e Handlers
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	beerHandler := beer.NewHandler(beerservice.NewService(beerRepo, publisher, log), log)
	userHandler := user.NewHandler(userservice.NewService(userRepo, tokenSvc, log), log)

	r := router.NewRouter(beerHandler, userHandler, router.Options{
		AuthRequired:         cfg.AuthRequired,
		TokenService:         tokenSvc,
		RateLimitCache:       cacheClient,
		RateLimitMaxRequests: cfg.RateLimitMaxRequests,
		RateLimitPeriod:      cfg.RateLimitPeriod,
		Logger:               log,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor GoBeer ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}
	log.Info("Servidor encerrado com sucesso.", nil)
}

func openDatabase(cfg *config.Config, log logger.Logger) *sql.DB {
	db, err := database.NewSQLDB(cfg.StorageDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	log.Info("Pool de conexões configurado.", map[string]interface{}{"driver": cfg.StorageDriver})

	if cfg.AutoMigrate {
		if err := database.Migrate(db, cfg.StorageDriver, "", "up"); err != nil {
			log.Fatal("Falha ao aplicar migrações.", err)
		}
		log.Info("Migrações aplicadas.", nil)
	}
	return db
}

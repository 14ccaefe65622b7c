package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"gobeer/config"
	"gobeer/internal/pkg/database"
)

// Uso: go run ./cmd/migrate [-dir migrations/postgres] [up|down|status|...] [args]
// Sem -dir usa os scripts embarcados do dialeto em STORAGE_DRIVER.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ Aviso: arquivo .env não encontrado, usando apenas o ambiente: %v", err)
	}

	cfg := config.LoadConfig()
	if !cfg.UsesSQL() {
		log.Fatalf("goose: STORAGE_DRIVER=%q não usa banco SQL", cfg.StorageDriver)
	}

	var migrationsDir string
	var verbose bool
	flag.StringVar(&migrationsDir, "dir", "", "diretório com as migrações (vazio = embarcadas)")
	flag.BoolVar(&verbose, "v", false, "log detalhado do goose")
	flag.Parse()

	db, err := database.NewSQLDB(cfg.StorageDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("goose: falha ao conectar ao DB: %v\n", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose: falha ao fechar o DB: %v\n", err)
		}
	}()

	if !verbose {
		goose.SetLogger(goose.NopLogger())
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}
	command, args := arguments[0], arguments[1:]

	if err := database.Migrate(db, cfg.StorageDriver, migrationsDir, command, args...); err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Printf("goose %s concluído (%s)\n", command, cfg.StorageDriver)
}

package database

import (
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"gobeer/migrations"
)

// Migrate executa um comando goose ("up", "down", "status", ...) com os scripts do dialeto.
// Com dir vazio usa os scripts embarcados em migrations.FS; caso contrário lê do disco.
func Migrate(db *sql.DB, driver, dir, command string, args ...string) error {
	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("goose: dialeto %q não suportado: %w", driver, err)
	}

	var fsys fs.FS
	if dir == "" {
		fsys = migrations.FS
		dir = driver // postgres/ ou mysql/ dentro do FS embarcado
	}
	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.Run(command, db, dir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq" // registra o driver postgres
)

// NewSQLDB inicializa e configura o pool de conexões para o driver informado
// ("postgres" ou "mysql").
func NewSQLDB(driver, dataSourceName string) (*sql.DB, error) {
	dsn, err := normalizeDSN(driver, dataSourceName)
	if err != nil {
		return nil, err
	}

	// 1. Abrir a Conexão
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir a conexão com o DB (%s): %w", driver, err)
	}

	// 2. Testar a Conexão Imediatamente
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("falha ao realizar o ping inicial no DB (%s): %w", driver, err)
	}

	// 3. Configuração do Connection Pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	return db, nil
}

// normalizeDSN força parseTime=true no MySQL; sem ele DATETIME não é lido como time.Time.
func normalizeDSN(driver, dataSourceName string) (string, error) {
	if driver != DialectMySQL {
		return dataSourceName, nil
	}
	cfg, err := mysql.ParseDSN(dataSourceName)
	if err != nil {
		return "", fmt.Errorf("DSN do MySQL inválida: %w", err)
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

// Package migrations embarca os scripts goose de cada dialeto SQL suportado.
package migrations

import "embed"

// FS contém os diretórios "postgres" e "mysql".
//
//go:embed postgres/*.sql mysql/*.sql
var FS embed.FS

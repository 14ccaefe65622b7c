package beerrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gobeer/internal/domain"
	"gobeer/internal/errors"
	"gobeer/internal/pkg/cache"
	"gobeer/internal/pkg/clock"
	"gobeer/internal/pkg/database"
	"gobeer/internal/pkg/logger"
)

// Dialetos aceitos em NewSQLRepository.
const (
	DialectPostgres = database.DialectPostgres
	DialectMySQL    = database.DialectMySQL
)

// Define a chave de cache para cervejas.
const beerCacheKey = "beer:%s"

const beerColumns = `id, version, created_date, last_modified_date, beer_name, beer_style, upc, price, quantity_on_hand`

// sortColumns traduz a propriedade do DTO para a coluna da tabela.
var sortColumns = map[string]string{
	"beerName":         "beer_name",
	"beerStyle":        "beer_style",
	"upc":              "upc",
	"price":            "price",
	"createdDate":      "created_date",
	"lastModifiedDate": "last_modified_date",
}

// SQLRepository implementa domain.BeerRepository sobre database/sql (PostgreSQL ou MySQL),
// com estratégia Cache-Aside no FindByID.
type SQLRepository struct {
	DB        *sql.DB
	Cache     cache.Client
	Dialect   string
	DBTimeout time.Duration
	CacheTTL  time.Duration
	Clock     clock.Clock
	logger    logger.Logger
}

// NewSQLRepository cria o repositório. As queries são escritas com "?" e reescritas para
// "$n" quando o dialeto é PostgreSQL.
func NewSQLRepository(db *sql.DB, dialect string, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, log logger.Logger) *SQLRepository {
	return &SQLRepository{
		DB:        db,
		Cache:     cacheClient,
		Dialect:   dialect,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		Clock:     clock.RealClock{},
		logger:    log,
	}
}

func (r *SQLRepository) q(query string) string {
	return database.Rebind(r.Dialect, query)
}

// now trunca em microssegundos, a precisão de TIMESTAMPTZ e DATETIME(6).
func (r *SQLRepository) now() time.Time {
	return r.Clock.Now().UTC().Truncate(time.Microsecond)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBeer(row rowScanner) (domain.Beer, error) {
	var (
		beer  domain.Beer
		style string
	)
	err := row.Scan(
		&beer.ID,
		&beer.Version,
		&beer.CreatedDate,
		&beer.LastModifiedDate,
		&beer.BeerName,
		&style,
		&beer.Upc,
		&beer.Price,
		&beer.QuantityOnHand,
	)
	if err != nil {
		return domain.Beer{}, err
	}
	beer.BeerStyle = domain.BeerStyle(style)
	beer.CreatedDate = beer.CreatedDate.UTC()
	beer.LastModifiedDate = beer.LastModifiedDate.UTC()
	return beer, nil
}

// FindByID busca uma cerveja pelo ID. Um ID inexistente devolve found=false, sem erro.
func (r *SQLRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Beer, bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	key := fmt.Sprintf(beerCacheKey, id)

	// --- 1. Cache-Aside (READ) ---
	cachedData, err := r.Cache.Get(ctxTimeout, key)
	if err == nil {
		var beer domain.Beer
		if json.Unmarshal([]byte(cachedData), &beer) == nil {
			r.logger.Debug("Cerveja encontrada no cache.", map[string]interface{}{"id": id.String()})
			return beer, true, nil
		}
		r.logger.Warn("Entrada de cache corrompida, consultando o DB.", map[string]interface{}{"key": key})
	} else if !stderrors.Is(err, cache.ErrCacheMiss) {
		r.logger.Warn("Falha ao ler do cache, consultando o DB.", map[string]interface{}{"key": key, "error": err.Error()})
	}

	// --- 2. Busca no Banco de Dados ---
	row := r.DB.QueryRowContext(ctxTimeout, r.q(`SELECT `+beerColumns+` FROM beers WHERE id = ?`), id)
	beer, err := scanBeer(row)
	if stderrors.Is(err, sql.ErrNoRows) {
		r.logger.Debug("Cerveja não encontrada.", map[string]interface{}{"id": id.String()})
		return domain.Beer{}, false, nil
	}
	if err != nil {
		r.logger.Error("Falha ao buscar cerveja no DB.", err)
		return domain.Beer{}, false, errors.NewDBError("Falha ao buscar cerveja", err)
	}

	// --- 3. Cache-Aside (WRITE) ---
	if payload, marshalErr := json.Marshal(beer); marshalErr == nil {
		if setErr := r.Cache.Set(ctxTimeout, key, payload, r.CacheTTL); setErr != nil {
			r.logger.Warn("Falha ao gravar cerveja no cache.", map[string]interface{}{"key": key, "error": setErr.Error()})
		}
	}

	return beer, true, nil
}

// Save insere (ID nulo) ou atualiza a cerveja.
// A atualização só acontece se a versão gravada for igual a beer.Version (OCC).
func (r *SQLRepository) Save(ctx context.Context, beer domain.Beer) (domain.Beer, error) {
	if beer.IsNew() {
		return r.insert(ctx, beer)
	}
	return r.update(ctx, beer)
}

func (r *SQLRepository) insert(ctx context.Context, beer domain.Beer) (domain.Beer, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	now := r.now()
	beer.ID = uuid.New()
	beer.Version = 0
	beer.CreatedDate = now
	beer.LastModifiedDate = now

	query := r.q(`INSERT INTO beers (` + beerColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := r.DB.ExecContext(ctxTimeout, query,
		beer.ID,
		beer.Version,
		beer.CreatedDate,
		beer.LastModifiedDate,
		beer.BeerName,
		string(beer.BeerStyle),
		beer.Upc,
		beer.Price,
		beer.QuantityOnHand,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.Beer{}, errors.NewConflictError(fmt.Sprintf("Já existe uma cerveja com o UPC %d.", beer.Upc))
		}
		r.logger.Error("Falha ao inserir cerveja no DB.", err)
		return domain.Beer{}, errors.NewDBError("Falha ao inserir cerveja", err)
	}

	r.logger.Info("Cerveja inserida.", map[string]interface{}{"id": beer.ID.String(), "upc": beer.Upc})
	return beer, nil
}

func (r *SQLRepository) update(ctx context.Context, beer domain.Beer) (domain.Beer, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	now := r.now()
	query := r.q(`
		UPDATE beers
		SET version = version + 1, last_modified_date = ?, beer_name = ?, beer_style = ?,
		    upc = ?, price = ?, quantity_on_hand = ?
		WHERE id = ? AND version = ?`)

	result, err := r.DB.ExecContext(ctxTimeout, query,
		now,
		beer.BeerName,
		string(beer.BeerStyle),
		beer.Upc,
		beer.Price,
		beer.QuantityOnHand,
		beer.ID,
		beer.Version,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.Beer{}, errors.NewConflictError(fmt.Sprintf("Já existe uma cerveja com o UPC %d.", beer.Upc))
		}
		r.logger.Error("Falha ao atualizar cerveja no DB.", err)
		return domain.Beer{}, errors.NewDBError("Falha ao atualizar cerveja", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return domain.Beer{}, errors.NewDBError("Falha ao verificar linhas afetadas", err)
	}

	if rowsAffected == 0 {
		// Nenhuma linha: ou a cerveja não existe, ou a versão está desatualizada.
		// A entrada de cache pode ser a origem da versão velha, então sai nos dois casos.
		r.invalidate(ctxTimeout, beer.ID)

		var current int64
		err := r.DB.QueryRowContext(ctxTimeout, r.q(`SELECT version FROM beers WHERE id = ?`), beer.ID).Scan(&current)
		if stderrors.Is(err, sql.ErrNoRows) {
			return domain.Beer{}, errors.NewNotFoundError(fmt.Sprintf("Cerveja com ID %s não existe.", beer.ID))
		}
		if err != nil {
			return domain.Beer{}, errors.NewDBError("Falha ao verificar versão da cerveja", err)
		}
		r.logger.Warn("Falha no controle de concorrência otimista (OCC).", map[string]interface{}{
			"id":               beer.ID.String(),
			"expected_version": beer.Version,
			"current_version":  current,
		})
		return domain.Beer{}, errors.NewConflictError("A cerveja foi modificada por outra operação. Tente novamente.")
	}

	beer.Version++
	beer.LastModifiedDate = now

	// Invalida o cache; a próxima leitura repopula.
	r.invalidate(ctxTimeout, beer.ID)

	r.logger.Info("Cerveja atualizada.", map[string]interface{}{"id": beer.ID.String(), "version": beer.Version})
	return beer, nil
}

func (r *SQLRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.Cache.Delete(ctx, fmt.Sprintf(beerCacheKey, id)); err != nil {
		r.logger.Warn("Falha ao invalidar cache da cerveja.", map[string]interface{}{"id": id.String(), "error": err.Error()})
	}
}

// FindAll devolve a página pedida, com filtros opcionais por nome (substring) e estilo.
func (r *SQLRepository) FindAll(ctx context.Context, page domain.PageRequest) (domain.BeerPage, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	orderBy, err := orderByClause(page.Sort)
	if err != nil {
		return domain.BeerPage{}, err
	}

	var (
		conditions []string
		args       []interface{}
	)
	if page.BeerName != "" {
		conditions = append(conditions, "LOWER(beer_name) LIKE ? ESCAPE '!'")
		args = append(args, "%"+escapeLike(strings.ToLower(page.BeerName))+"%")
	}
	if page.BeerStyle != "" {
		conditions = append(conditions, "beer_style = ?")
		args = append(args, string(page.BeerStyle))
	}
	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.DB.QueryRowContext(ctxTimeout, r.q(`SELECT COUNT(*) FROM beers`+where), args...).Scan(&total); err != nil {
		r.logger.Error("Falha ao contar cervejas.", err)
		return domain.BeerPage{}, errors.NewDBError("Falha ao contar cervejas", err)
	}

	query := r.q(`SELECT ` + beerColumns + ` FROM beers` + where + ` ORDER BY ` + orderBy + ` LIMIT ? OFFSET ?`)
	rows, err := r.DB.QueryContext(ctxTimeout, query, append(args, page.PageSize, page.Offset())...)
	if err != nil {
		r.logger.Error("Falha ao listar cervejas.", err)
		return domain.BeerPage{}, errors.NewDBError("Falha ao listar cervejas", err)
	}
	defer rows.Close()

	beers := make([]domain.Beer, 0, page.PageSize)
	for rows.Next() {
		beer, err := scanBeer(rows)
		if err != nil {
			return domain.BeerPage{}, errors.NewDBError("Falha ao mapear cervejas do DB", err)
		}
		beers = append(beers, beer)
	}
	if err := rows.Err(); err != nil {
		return domain.BeerPage{}, errors.NewDBError("Erro após iteração de cervejas", err)
	}

	r.logger.Debug("FindAll concluído.", map[string]interface{}{"count": len(beers), "total": total})
	return domain.BeerPage{
		Content:       beers,
		PageNumber:    page.PageNumber,
		PageSize:      page.PageSize,
		TotalElements: total,
	}, nil
}

// likeEscaper faz % e _ do filtro casarem literalmente; '!' evita as regras de barra do MySQL.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// orderByClause monta o ORDER BY a partir de propriedades conhecidas; id fecha o desempate.
func orderByClause(orders []domain.SortOrder) (string, error) {
	if len(orders) == 0 {
		return "beer_name ASC, id ASC", nil
	}
	parts := make([]string, 0, len(orders)+1)
	for _, o := range orders {
		column, ok := sortColumns[o.Property]
		if !ok {
			return "", errors.NewValidationError(fmt.Sprintf("Propriedade de ordenação desconhecida: %s", o.Property))
		}
		dir := "ASC"
		if o.Direction == domain.SortDesc {
			dir = "DESC"
		}
		parts = append(parts, column+" "+dir)
	}
	parts = append(parts, "id ASC")
	return strings.Join(parts, ", "), nil
}

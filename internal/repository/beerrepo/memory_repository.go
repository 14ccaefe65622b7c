package beerrepo

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"gobeer/internal/domain"
	"gobeer/internal/errors"
	"gobeer/internal/pkg/clock"
)

// MemoryRepository implementa domain.BeerRepository num mapa protegido por RWMutex.
// Usado com STORAGE_DRIVER=memory e nos testes de ponta a ponta.
type MemoryRepository struct {
	mu    sync.RWMutex
	beers map[uuid.UUID]domain.Beer
	Clock clock.Clock
}

// NewMemoryRepository cria um repositório vazio.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		beers: make(map[uuid.UUID]domain.Beer),
		Clock: clock.RealClock{},
	}
}

// FindByID devolve found=false quando o ID não existe.
func (r *MemoryRepository) FindByID(_ context.Context, id uuid.UUID) (domain.Beer, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	beer, ok := r.beers[id]
	return beer, ok, nil
}

// Save segue o mesmo contrato do SQLRepository (insert com ID nulo, update com OCC).
func (r *MemoryRepository) Save(ctx context.Context, beer domain.Beer) (domain.Beer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Beer{}, errors.NewInternalError("Contexto cancelado.", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.Clock.Now().UTC()

	if beer.IsNew() {
		if r.upcTaken(beer.Upc, uuid.Nil) {
			return domain.Beer{}, duplicateUpc(beer.Upc)
		}
		beer.ID = uuid.New()
		beer.Version = 0
		beer.CreatedDate = now
		beer.LastModifiedDate = now
		r.beers[beer.ID] = beer
		return beer, nil
	}

	current, ok := r.beers[beer.ID]
	if !ok {
		return domain.Beer{}, errors.NewNotFoundError(fmt.Sprintf("Cerveja com ID %s não existe.", beer.ID))
	}
	if current.Version != beer.Version {
		return domain.Beer{}, errors.NewConflictError("A cerveja foi modificada por outra operação. Tente novamente.")
	}
	if r.upcTaken(beer.Upc, beer.ID) {
		return domain.Beer{}, duplicateUpc(beer.Upc)
	}

	beer.Version++
	beer.CreatedDate = current.CreatedDate
	beer.LastModifiedDate = now
	r.beers[beer.ID] = beer
	return beer, nil
}

func duplicateUpc(upc int64) error {
	return errors.NewConflictError(fmt.Sprintf("Já existe uma cerveja com o UPC %d.", upc))
}

func (r *MemoryRepository) upcTaken(upc int64, owner uuid.UUID) bool {
	for id, b := range r.beers {
		if b.Upc == upc && id != owner {
			return true
		}
	}
	return false
}

// FindAll filtra, ordena e fatia em memória.
func (r *MemoryRepository) FindAll(_ context.Context, page domain.PageRequest) (domain.BeerPage, error) {
	for _, o := range page.Sort {
		if !domain.IsSortableBeerProperty(o.Property) {
			return domain.BeerPage{}, errors.NewValidationError(fmt.Sprintf("Propriedade de ordenação desconhecida: %s", o.Property))
		}
	}

	r.mu.RLock()
	matched := make([]domain.Beer, 0, len(r.beers))
	nameFilter := strings.ToLower(page.BeerName)
	for _, b := range r.beers {
		if nameFilter != "" && !strings.Contains(strings.ToLower(b.BeerName), nameFilter) {
			continue
		}
		if page.BeerStyle != "" && b.BeerStyle != page.BeerStyle {
			continue
		}
		matched = append(matched, b)
	}
	r.mu.RUnlock()

	orders := page.Sort
	if len(orders) == 0 {
		orders = []domain.SortOrder{{Property: "beerName", Direction: domain.SortAsc}}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		for _, o := range orders {
			c := compareBeers(matched[i], matched[j], o.Property)
			if c == 0 {
				continue
			}
			if o.Direction == domain.SortDesc {
				return c > 0
			}
			return c < 0
		}
		return matched[i].ID.String() < matched[j].ID.String()
	})

	total := int64(len(matched))
	start := page.Offset()
	if start < 0 || start > len(matched) {
		start = len(matched)
	}
	end := start + page.PageSize
	if end > len(matched) {
		end = len(matched)
	}

	return domain.BeerPage{
		Content:       matched[start:end],
		PageNumber:    page.PageNumber,
		PageSize:      page.PageSize,
		TotalElements: total,
	}, nil
}

func compareBeers(a, b domain.Beer, property string) int {
	switch property {
	case "beerName":
		return strings.Compare(a.BeerName, b.BeerName)
	case "beerStyle":
		return strings.Compare(string(a.BeerStyle), string(b.BeerStyle))
	case "upc":
		return compareInt64(a.Upc, b.Upc)
	case "price":
		return a.Price.Cmp(b.Price)
	case "createdDate":
		return a.CreatedDate.Compare(b.CreatedDate)
	case "lastModifiedDate":
		return a.LastModifiedDate.Compare(b.LastModifiedDate)
	}
	return 0
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Beer representa a cerveja persistida (a Entidade).
// ID, Version, CreatedDate, LastModifiedDate e QuantityOnHand são mantidos pelo servidor.
type Beer struct {
	ID               uuid.UUID
	Version          int64 // Controle de Concorrência Otimista (OCC)
	CreatedDate      time.Time
	LastModifiedDate time.Time

	BeerName       string
	BeerStyle      BeerStyle
	Upc            int64 // Universal Product Code
	Price          decimal.Decimal
	QuantityOnHand int // Alterado apenas pela lógica de inventário
}

// IsNew indica que a cerveja ainda não foi persistida.
func (b Beer) IsNew() bool {
	return b.ID == uuid.Nil
}

// BeerStyle é a categoria enumerada da cerveja.
type BeerStyle string

const (
	BeerStyleLager   BeerStyle = "LAGER"
	BeerStylePilsner BeerStyle = "PILSNER"
	BeerStyleStout   BeerStyle = "STOUT"
	BeerStyleGose    BeerStyle = "GOSE"
	BeerStylePorter  BeerStyle = "PORTER"
	BeerStyleAle     BeerStyle = "ALE"
	BeerStyleWheat   BeerStyle = "WHEAT"
	BeerStyleIPA     BeerStyle = "IPA"
	BeerStylePaleAle BeerStyle = "PALE_ALE"
	BeerStyleSaison  BeerStyle = "SAISON"
)

// BeerStyles lista os estilos aceitos, na ordem de declaração.
var BeerStyles = []BeerStyle{
	BeerStyleLager, BeerStylePilsner, BeerStyleStout, BeerStyleGose, BeerStylePorter,
	BeerStyleAle, BeerStyleWheat, BeerStyleIPA, BeerStylePaleAle, BeerStyleSaison,
}

// ParseBeerStyle normaliza o texto (sem diferenciar maiúsculas) para um BeerStyle conhecido.
func ParseBeerStyle(s string) (BeerStyle, bool) {
	candidate := BeerStyle(strings.ToUpper(strings.TrimSpace(s)))
	for _, style := range BeerStyles {
		if style == candidate {
			return style, true
		}
	}
	return "", false
}

// Valid informa se o estilo pertence ao enum.
func (s BeerStyle) Valid() bool {
	for _, style := range BeerStyles {
		if style == s {
			return true
		}
	}
	return false
}

// BeerPatch carrega uma atualização parcial; campos nil não são alterados.
type BeerPatch struct {
	BeerName  *string
	BeerStyle *BeerStyle
	Upc       *int64
	Price     *decimal.Decimal
}

// --- Paginação ---

// SortDirection é a direção de ordenação de uma propriedade.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortOrder ordena pela propriedade (nome do campo no DTO, e.g. "beerName").
type SortOrder struct {
	Property  string
	Direction SortDirection
}

// BeerSortProperties são as propriedades aceitas em SortOrder.Property.
var BeerSortProperties = []string{"beerName", "beerStyle", "upc", "price", "createdDate", "lastModifiedDate"}

// IsSortableBeerProperty informa se a propriedade pode ser usada na ordenação.
func IsSortableBeerProperty(property string) bool {
	for _, p := range BeerSortProperties {
		if p == property {
			return true
		}
	}
	return false
}

// PageRequest descreve a fatia desejada: página (base 0), tamanho e ordenação.
type PageRequest struct {
	PageNumber int
	PageSize   int
	Sort       []SortOrder

	// Filtros opcionais
	BeerName  string
	BeerStyle BeerStyle
}

// Offset é a posição do primeiro elemento da página na coleção completa.
func (p PageRequest) Offset() int {
	return p.PageNumber * p.PageSize
}

// BeerPage é uma página de cervejas mais o total de elementos da coleção.
type BeerPage struct {
	Content       []Beer
	PageNumber    int
	PageSize      int
	TotalElements int64
}

// --- Interfaces de Contrato ---

// BeerRepository é o contrato de persistência da entidade Beer.
// FindByID devolve found=false (sem erro) quando o ID não existe.
// Save insere quando o ID é uuid.Nil; caso contrário atualiza respeitando Version.
type BeerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (Beer, bool, error)
	Save(ctx context.Context, beer Beer) (Beer, error)
	FindAll(ctx context.Context, page PageRequest) (BeerPage, error)
}

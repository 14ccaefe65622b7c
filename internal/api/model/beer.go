package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BeerDto é a representação de uma cerveja na API.
// As datas usam date-time com offset (RFC 3339); todos os campos aparecem na resposta.
// @Description Cerveja. id, version, createdDate, lastModifiedDate e quantityOnHand são ignorados na entrada.
type BeerDto struct {
	ID               *uuid.UUID      `json:"id" swaggertype:"string" format:"uuid" example:"9e2e7a8c-4b7b-4a39-9d7b-6a0f9f1c2d11"`
	Version          *int64          `json:"version" example:"1"`
	CreatedDate      *time.Time      `json:"createdDate" example:"2024-05-01T12:00:00Z"`
	LastModifiedDate *time.Time      `json:"lastModifiedDate" example:"2024-05-02T08:30:00Z"`
	BeerName         string          `json:"beerName" minLength:"3" maxLength:"100" example:"Mango Bobs"`
	BeerStyle        string          `json:"beerStyle" enums:"LAGER,PILSNER,STOUT,GOSE,PORTER,ALE,WHEAT,IPA,PALE_ALE,SAISON" example:"LAGER"`
	Upc              int64           `json:"upc" minimum:"1" example:"12345678"`
	Price            decimal.Decimal `json:"price" swaggertype:"string" example:"9.99"`
	QuantityOnHand   int             `json:"quantityOnHand" example:"120"`
}

// BeerPatchDto é o payload do PATCH; só os campos presentes são aplicados.
type BeerPatchDto struct {
	BeerName  *string          `json:"beerName,omitempty" example:"Mango Bobs"`
	BeerStyle *string          `json:"beerStyle,omitempty" example:"IPA"`
	Upc       *int64           `json:"upc,omitempty" example:"12345678"`
	Price     *decimal.Decimal `json:"price,omitempty" swaggertype:"string" example:"10.49"`
}

package mapper

import (
	"github.com/google/uuid"

	"gobeer/internal/api/model"
	"gobeer/internal/domain"
)

var dates DateMapper

// BeerToBeerDto converte a entidade para o modelo da API, campo a campo.
// Uma cerveja ainda não persistida (ID nulo) sai com id e version nulos.
func BeerToBeerDto(beer domain.Beer) model.BeerDto {
	dto := model.BeerDto{
		CreatedDate:      dates.AsOffsetDateTime(beer.CreatedDate),
		LastModifiedDate: dates.AsOffsetDateTime(beer.LastModifiedDate),
		BeerName:         beer.BeerName,
		BeerStyle:        string(beer.BeerStyle),
		Upc:              beer.Upc,
		Price:            beer.Price,
		QuantityOnHand:   beer.QuantityOnHand,
	}

	if beer.ID != uuid.Nil {
		id := beer.ID
		version := beer.Version
		dto.ID = &id
		dto.Version = &version
	}
	return dto
}

// BeerDtoToBeer converte o modelo da API para a entidade.
func BeerDtoToBeer(dto model.BeerDto) domain.Beer {
	beer := domain.Beer{
		CreatedDate:      dates.AsTimestamp(dto.CreatedDate),
		LastModifiedDate: dates.AsTimestamp(dto.LastModifiedDate),
		BeerName:         dto.BeerName,
		BeerStyle:        domain.BeerStyle(dto.BeerStyle),
		Upc:              dto.Upc,
		Price:            dto.Price,
		QuantityOnHand:   dto.QuantityOnHand,
	}

	if dto.ID != nil {
		beer.ID = *dto.ID
	}
	if dto.Version != nil {
		beer.Version = *dto.Version
	}
	return beer
}

// BeerPatchDtoToBeerPatch converte o payload do PATCH.
func BeerPatchDtoToBeerPatch(dto model.BeerPatchDto) domain.BeerPatch {
	patch := domain.BeerPatch{
		BeerName: dto.BeerName,
		Upc:      dto.Upc,
		Price:    dto.Price,
	}
	if dto.BeerStyle != nil {
		style := domain.BeerStyle(*dto.BeerStyle)
		patch.BeerStyle = &style
	}
	return patch
}

// BeerPageToBeerPagedList converte uma página do repositório para a lista paginada da API.
func BeerPageToBeerPagedList(page domain.BeerPage) model.BeerPagedList {
	content := make([]model.BeerDto, 0, len(page.Content))
	for _, beer := range page.Content {
		content = append(content, BeerToBeerDto(beer))
	}
	return model.NewBeerPagedList(content, page.PageNumber, page.PageSize, page.TotalElements)
}

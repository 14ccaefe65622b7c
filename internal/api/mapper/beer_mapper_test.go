package mapper_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gobeer/internal/api/mapper"
	"gobeer/internal/api/model"
	"gobeer/internal/domain"
)

func newBeer() domain.Beer {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	return domain.Beer{
		ID:               uuid.New(),
		Version:          3,
		CreatedDate:      time.Date(2024, 5, 1, 9, 0, 0, 0, saoPaulo),
		LastModifiedDate: time.Date(2024, 5, 2, 18, 30, 15, 0, saoPaulo),
		BeerName:         "Mango Bobs",
		BeerStyle:        domain.BeerStyleIPA,
		Upc:              337010000001,
		Price:            decimal.RequireFromString("12.95"),
		QuantityOnHand:   42,
	}
}

func TestBeerToBeerDto_AllFields(t *testing.T) {
	beer := newBeer()

	dto := mapper.BeerToBeerDto(beer)

	require.NotNil(t, dto.ID)
	assert.Equal(t, beer.ID, *dto.ID)
	require.NotNil(t, dto.Version)
	assert.Equal(t, int64(3), *dto.Version)
	require.NotNil(t, dto.CreatedDate)
	assert.Equal(t, time.UTC, dto.CreatedDate.Location())
	assert.True(t, dto.CreatedDate.Equal(beer.CreatedDate))
	assert.Equal(t, "IPA", dto.BeerStyle)
	assert.Equal(t, beer.Upc, dto.Upc)
	assert.True(t, beer.Price.Equal(dto.Price))
	assert.Equal(t, 42, dto.QuantityOnHand)
}

// TestRoundTrip_PreservesDomainFields garante que BeerDtoToBeer(BeerToBeerDto(b)) preserva b.
func TestRoundTrip_PreservesDomainFields(t *testing.T) {
	beer := newBeer()

	back := mapper.BeerDtoToBeer(mapper.BeerToBeerDto(beer))

	assert.Equal(t, beer.ID, back.ID)
	assert.Equal(t, beer.Version, back.Version)
	assert.True(t, beer.CreatedDate.Equal(back.CreatedDate))
	assert.True(t, beer.LastModifiedDate.Equal(back.LastModifiedDate))
	assert.Equal(t, beer.BeerName, back.BeerName)
	assert.Equal(t, beer.BeerStyle, back.BeerStyle)
	assert.Equal(t, beer.Upc, back.Upc)
	assert.True(t, beer.Price.Equal(back.Price))
	assert.Equal(t, beer.QuantityOnHand, back.QuantityOnHand)
}

func TestRoundTrip_EmptyBeer(t *testing.T) {
	dto := mapper.BeerToBeerDto(domain.Beer{})

	assert.Nil(t, dto.ID)
	assert.Nil(t, dto.Version)
	assert.Nil(t, dto.CreatedDate)
	assert.Nil(t, dto.LastModifiedDate)

	back := mapper.BeerDtoToBeer(dto)
	assert.True(t, back.IsNew())
	assert.True(t, back.CreatedDate.IsZero())
}

func TestDateMapper(t *testing.T) {
	var dm mapper.DateMapper

	assert.Nil(t, dm.AsOffsetDateTime(time.Time{}))
	assert.True(t, dm.AsTimestamp(nil).IsZero())

	ts := time.Date(2023, 12, 31, 23, 59, 59, 123456000, time.FixedZone("CET", 3600))
	odt := dm.AsOffsetDateTime(ts)
	require.NotNil(t, odt)
	assert.Equal(t, "2023-12-31T22:59:59.123456Z", odt.Format(time.RFC3339Nano))
	assert.True(t, dm.AsTimestamp(odt).Equal(ts))
}

func TestBeerPatchDtoToBeerPatch(t *testing.T) {
	style := "stout"
	price := decimal.RequireFromString("7.50")

	patch := mapper.BeerPatchDtoToBeerPatch(model.BeerPatchDto{BeerStyle: &style, Price: &price})

	assert.Nil(t, patch.BeerName)
	assert.Nil(t, patch.Upc)
	require.NotNil(t, patch.BeerStyle)
	assert.Equal(t, domain.BeerStyle("stout"), *patch.BeerStyle)
	assert.Equal(t, &price, patch.Price)
}

func TestBeerPageToBeerPagedList(t *testing.T) {
	page := domain.BeerPage{
		Content:       []domain.Beer{newBeer(), newBeer()},
		PageNumber:    1,
		PageSize:      2,
		TotalElements: 5,
	}

	list := mapper.BeerPageToBeerPagedList(page)

	assert.Len(t, list.Content, 2)
	assert.Equal(t, 1, list.Number)
	assert.Equal(t, int64(5), list.TotalElements)
	assert.Equal(t, 3, list.TotalPages)
	assert.False(t, list.First)
	assert.False(t, list.Last)
}

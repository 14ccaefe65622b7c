package beerrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gobeer/internal/domain"
	apperror "gobeer/internal/errors"
	"gobeer/internal/pkg/clock"
	"gobeer/internal/repository/beerrepo"
)

func newMemoryRepo() (*beerrepo.MemoryRepository, *clock.FakeClock) {
	repo := beerrepo.NewMemoryRepository()
	clk := clock.NewFake(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	repo.Clock = clk
	return repo, clk
}

func beer(name string, style domain.BeerStyle, upc int64, price string) domain.Beer {
	return domain.Beer{
		BeerName:  name,
		BeerStyle: style,
		Upc:       upc,
		Price:     decimal.RequireFromString(price),
	}
}

func TestMemoryRepository_SaveNewAssignsServerFields(t *testing.T) {
	repo, clk := newMemoryRepo()
	ctx := context.Background()

	saved, err := repo.Save(ctx, beer("Galaxy Cat", domain.BeerStylePaleAle, 1001, "9.99"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.Equal(t, int64(0), saved.Version)
	assert.Equal(t, clk.Now(), saved.CreatedDate)
	assert.Equal(t, clk.Now(), saved.LastModifiedDate)

	found, ok, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, saved, found)
}

func TestMemoryRepository_FindByIDMissing(t *testing.T) {
	repo, _ := newMemoryRepo()

	_, ok, err := repo.FindByID(context.Background(), uuid.New())

	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryRepository_UpdateBumpsVersion(t *testing.T) {
	repo, clk := newMemoryRepo()
	ctx := context.Background()

	saved, err := repo.Save(ctx, beer("Pinball Porter", domain.BeerStylePorter, 2002, "11.50"))
	require.NoError(t, err)
	created := saved.CreatedDate

	clk.Advance(time.Hour)
	saved.BeerName = "Pinball Porter Reserve"
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)

	assert.Equal(t, int64(1), updated.Version)
	assert.Equal(t, created, updated.CreatedDate)
	assert.Equal(t, clk.Now(), updated.LastModifiedDate)
	assert.Equal(t, "Pinball Porter Reserve", updated.BeerName)
}

func TestMemoryRepository_StaleVersionConflict(t *testing.T) {
	repo, _ := newMemoryRepo()
	ctx := context.Background()

	saved, err := repo.Save(ctx, beer("No Hammers On The Bar", domain.BeerStyleWheat, 3003, "8.00"))
	require.NoError(t, err)

	_, err = repo.Save(ctx, saved) // versão 0 -> 1
	require.NoError(t, err)

	_, err = repo.Save(ctx, saved) // ainda com versão 0
	assert.IsType(t, &apperror.ConflictError{}, err)
}

func TestMemoryRepository_UpdateMissingIsNotFound(t *testing.T) {
	repo, _ := newMemoryRepo()
	b := beer("Ghost", domain.BeerStyleAle, 4004, "5.00")
	b.ID = uuid.New()

	_, err := repo.Save(context.Background(), b)

	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestMemoryRepository_DuplicateUpc(t *testing.T) {
	repo, _ := newMemoryRepo()
	ctx := context.Background()

	_, err := repo.Save(ctx, beer("A", domain.BeerStyleLager, 5005, "5.00"))
	require.NoError(t, err)

	_, err = repo.Save(ctx, beer("B", domain.BeerStyleLager, 5005, "6.00"))
	assert.IsType(t, &apperror.ConflictError{}, err)
}

func TestMemoryRepository_FindAllPagingSortingFiltering(t *testing.T) {
	repo, _ := newMemoryRepo()
	ctx := context.Background()

	for i, name := range []string{"Delta", "Alpha", "Echo", "Charlie", "Bravo"} {
		style := domain.BeerStyleLager
		if i%2 == 0 {
			style = domain.BeerStyleIPA
		}
		_, err := repo.Save(ctx, beer(name, style, int64(100+i), "4.00"))
		require.NoError(t, err)
	}

	page, err := repo.FindAll(ctx, domain.PageRequest{PageNumber: 0, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.TotalElements)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "Alpha", page.Content[0].BeerName)
	assert.Equal(t, "Bravo", page.Content[1].BeerName)

	page, err = repo.FindAll(ctx, domain.PageRequest{
		PageNumber: 0,
		PageSize:   10,
		Sort:       []domain.SortOrder{{Property: "upc", Direction: domain.SortDesc}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(104), page.Content[0].Upc)

	page, err = repo.FindAll(ctx, domain.PageRequest{PageNumber: 0, PageSize: 10, BeerStyle: domain.BeerStyleIPA})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalElements)

	page, err = repo.FindAll(ctx, domain.PageRequest{PageNumber: 0, PageSize: 10, BeerName: "ar"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalElements)
	assert.Equal(t, "Charlie", page.Content[0].BeerName)

	page, err = repo.FindAll(ctx, domain.PageRequest{PageNumber: 9, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Content)

	_, err = repo.FindAll(ctx, domain.PageRequest{PageSize: 10, Sort: []domain.SortOrder{{Property: "quantityOnHand"}}})
	assert.IsType(t, &apperror.ValidationError{}, err)
}

func TestMemoryRepository_FindAllOverflowingOffset(t *testing.T) {
	repo, _ := newMemoryRepo()
	ctx := context.Background()
	_, err := repo.Save(ctx, beer("Overflow Ale", domain.BeerStyleAle, 6006, "5.00"))
	require.NoError(t, err)

	var page domain.BeerPage
	assert.NotPanics(t, func() {
		page, err = repo.FindAll(ctx, domain.PageRequest{PageNumber: 368934881474191033, PageSize: 25})
	})
	require.NoError(t, err)
	assert.Empty(t, page.Content)
}

func TestMemoryRepository_FindAllNameFilterIsLiteral(t *testing.T) {
	repo, _ := newMemoryRepo()
	ctx := context.Background()
	_, err := repo.Save(ctx, beer("Half_Pint", domain.BeerStyleAle, 7007, "5.00"))
	require.NoError(t, err)
	_, err = repo.Save(ctx, beer("HalfXPint", domain.BeerStyleAle, 7008, "5.00"))
	require.NoError(t, err)

	page, err := repo.FindAll(ctx, domain.PageRequest{PageSize: 10, BeerName: "f_p"})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Half_Pint", page.Content[0].BeerName)
}

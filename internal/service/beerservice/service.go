package beerservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gobeer/internal/domain"
	apperror "gobeer/internal/errors"
	"gobeer/internal/events"
	"gobeer/internal/pkg/clock"
	"gobeer/internal/pkg/logger"
)

// Limites de paginação da listagem. MaxPageNumber mantém page*size dentro de um int32.
const (
	DefaultPageSize = 25
	MaxPageSize     = 100
	MaxPageNumber   = math.MaxInt32 / MaxPageSize
)

// maxPrice é o limite exclusivo de NUMERIC(12,2).
var maxPrice = decimal.New(1, 10)

// Service implementa os casos de uso de cerveja sobre domain.BeerRepository.
type Service struct {
	repo      domain.BeerRepository
	publisher events.Publisher
	clock     clock.Clock
	logger    logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Cervejas.
func NewService(repo domain.BeerRepository, publisher events.Publisher, log logger.Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		clock:     clock.RealClock{},
		logger:    log,
	}
}

// WithClock troca o relógio usado no carimbo dos eventos.
func (s *Service) WithClock(c clock.Clock) *Service {
	s.clock = c
	return s
}

func (s *Service) parseID(id string) (uuid.UUID, error) {
	beerID, err := uuid.Parse(id)
	if err != nil {
		s.logger.Warn("ID de cerveja inválido fornecido.", map[string]interface{}{"id": id, "error": err.Error()})
		return uuid.Nil, apperror.NewValidationError("O ID da cerveja deve ser um UUID válido.")
	}
	return beerID, nil
}

// repoError preserva erros já classificados e embrulha o resto como erro interno.
func repoError(msg string, err error) error {
	var appErr apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.NewInternalError(msg, err)
}

// GetBeerByID busca uma cerveja pelo ID. ID inexistente resulta em NotFoundError.
func (s *Service) GetBeerByID(ctx context.Context, id string) (domain.Beer, error) {
	s.logger.Debug("Iniciando busca de cerveja por ID no serviço.", map[string]interface{}{"id": id})

	beerID, err := s.parseID(id)
	if err != nil {
		return domain.Beer{}, err
	}

	beer, found, err := s.repo.FindByID(ctx, beerID)
	if err != nil {
		s.logger.Error("Falha ao buscar cerveja no repositório.", err)
		return domain.Beer{}, repoError("Falha interna ao buscar cerveja.", err)
	}
	if !found {
		return domain.Beer{}, apperror.NewNotFoundError(fmt.Sprintf("Cerveja com ID %s não foi encontrada.", id))
	}

	return beer, nil
}

// SaveNewBeer cria uma cerveja. ID, versão, datas e estoque vindos do cliente são ignorados.
func (s *Service) SaveNewBeer(ctx context.Context, beer domain.Beer) (domain.Beer, error) {
	s.logger.Debug("Iniciando criação de cerveja no serviço.", map[string]interface{}{"beer_name": beer.BeerName})

	candidate := domain.Beer{
		BeerName:  strings.TrimSpace(beer.BeerName),
		BeerStyle: beer.BeerStyle,
		Upc:       beer.Upc,
		Price:     beer.Price,
	}
	if err := validateBeer(&candidate); err != nil {
		s.logger.Warn("Falha na validação da cerveja.", map[string]interface{}{"error": err.Error()})
		return domain.Beer{}, err
	}

	saved, err := s.repo.Save(ctx, candidate)
	if err != nil {
		s.logger.Error("Falha ao salvar cerveja no repositório.", err)
		return domain.Beer{}, repoError("Falha interna ao criar cerveja.", err)
	}

	s.publish(ctx, events.NewBeerCreatedEvent(saved, s.clock.Now()))
	s.logger.Info("Cerveja criada com sucesso.", map[string]interface{}{"id": saved.ID.String(), "beer_name": saved.BeerName})
	return saved, nil
}

// UpdateBeer substitui os campos editáveis (nome, estilo, UPC e preço) da cerveja existente.
func (s *Service) UpdateBeer(ctx context.Context, id string, beer domain.Beer) (domain.Beer, error) {
	s.logger.Debug("Iniciando atualização de cerveja no serviço.", map[string]interface{}{"id": id})

	beerID, err := s.parseID(id)
	if err != nil {
		return domain.Beer{}, err
	}

	existing, err := s.load(ctx, beerID)
	if err != nil {
		return domain.Beer{}, err
	}

	existing.BeerName = strings.TrimSpace(beer.BeerName)
	existing.BeerStyle = beer.BeerStyle
	existing.Upc = beer.Upc
	existing.Price = beer.Price
	if err := validateBeer(&existing); err != nil {
		s.logger.Warn("Falha na validação da cerveja para atualização.", map[string]interface{}{"id": id, "error": err.Error()})
		return domain.Beer{}, err
	}

	return s.store(ctx, existing)
}

// PatchBeer aplica apenas os campos presentes no patch.
func (s *Service) PatchBeer(ctx context.Context, id string, patch domain.BeerPatch) (domain.Beer, error) {
	s.logger.Debug("Iniciando atualização parcial de cerveja no serviço.", map[string]interface{}{"id": id})

	beerID, err := s.parseID(id)
	if err != nil {
		return domain.Beer{}, err
	}

	existing, err := s.load(ctx, beerID)
	if err != nil {
		return domain.Beer{}, err
	}

	if patch.BeerName != nil {
		existing.BeerName = strings.TrimSpace(*patch.BeerName)
	}
	if patch.BeerStyle != nil {
		existing.BeerStyle = *patch.BeerStyle
	}
	if patch.Upc != nil {
		existing.Upc = *patch.Upc
	}
	if patch.Price != nil {
		existing.Price = *patch.Price
	}
	if err := validateBeer(&existing); err != nil {
		s.logger.Warn("Falha na validação do patch de cerveja.", map[string]interface{}{"id": id, "error": err.Error()})
		return domain.Beer{}, err
	}

	return s.store(ctx, existing)
}

func (s *Service) load(ctx context.Context, id uuid.UUID) (domain.Beer, error) {
	existing, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao buscar cerveja no repositório.", err)
		return domain.Beer{}, repoError("Falha interna ao buscar cerveja.", err)
	}
	if !found {
		s.logger.Warn("Tentativa de atualizar cerveja inexistente.", map[string]interface{}{"id": id.String()})
		return domain.Beer{}, apperror.NewNotFoundError(fmt.Sprintf("Cerveja com ID %s não foi encontrada.", id))
	}
	return existing, nil
}

// store grava com a versão carregada; uma escrita concorrente resulta em ConflictError.
func (s *Service) store(ctx context.Context, beer domain.Beer) (domain.Beer, error) {
	updated, err := s.repo.Save(ctx, beer)
	if err != nil {
		s.logger.Error("Falha ao atualizar cerveja no repositório.", err)
		return domain.Beer{}, repoError("Falha interna ao atualizar cerveja.", err)
	}

	s.publish(ctx, events.NewBeerUpdatedEvent(updated, s.clock.Now()))
	s.logger.Info("Cerveja atualizada com sucesso.", map[string]interface{}{"id": updated.ID.String(), "version": updated.Version})
	return updated, nil
}

// ListBeers normaliza a paginação (tamanho padrão 25, máximo 100) e consulta o repositório.
func (s *Service) ListBeers(ctx context.Context, req domain.PageRequest) (domain.BeerPage, error) {
	if req.PageNumber < 0 {
		req.PageNumber = 0
	}
	if req.PageNumber > MaxPageNumber {
		return domain.BeerPage{}, apperror.NewValidationError(fmt.Sprintf("O parâmetro page deve ser no máximo %d.", MaxPageNumber))
	}
	if req.PageSize <= 0 {
		req.PageSize = DefaultPageSize
	}
	if req.PageSize > MaxPageSize {
		req.PageSize = MaxPageSize
	}

	for _, o := range req.Sort {
		if !domain.IsSortableBeerProperty(o.Property) {
			return domain.BeerPage{}, apperror.NewValidationError(fmt.Sprintf("Não é possível ordenar por %q.", o.Property))
		}
	}
	if req.BeerStyle != "" {
		style, ok := domain.ParseBeerStyle(string(req.BeerStyle))
		if !ok {
			return domain.BeerPage{}, apperror.NewValidationError(fmt.Sprintf("Estilo de cerveja desconhecido: %s", req.BeerStyle))
		}
		req.BeerStyle = style
	}

	page, err := s.repo.FindAll(ctx, req)
	if err != nil {
		s.logger.Error("Falha ao listar cervejas no repositório.", err)
		return domain.BeerPage{}, repoError("Falha interna ao listar cervejas.", err)
	}

	s.logger.Debug("Cervejas listadas.", map[string]interface{}{"count": len(page.Content), "total": page.TotalElements})
	return page, nil
}

// publish é best-effort: a escrita já foi confirmada, então falhas só são registradas.
func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	// O evento sobrevive ao cancelamento da requisição depois do commit.
	if err := s.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		s.logger.Warn("Falha ao publicar evento de cerveja.", map[string]interface{}{
			"event_type": event.EventType(),
			"key":        event.PartitionKey(),
			"error":      err.Error(),
		})
	}
}

// validateBeer normaliza o estilo e valida os campos editáveis.
func validateBeer(beer *domain.Beer) error {
	n := utf8.RuneCountInString(beer.BeerName)
	if n < 3 || n > 100 {
		return apperror.NewValidationError("O nome da cerveja deve ter entre 3 e 100 caracteres.")
	}

	style, ok := domain.ParseBeerStyle(string(beer.BeerStyle))
	if !ok {
		return apperror.NewValidationError(fmt.Sprintf("Estilo de cerveja inválido: %q.", beer.BeerStyle))
	}
	beer.BeerStyle = style

	if beer.Upc <= 0 {
		return apperror.NewValidationError("O UPC deve ser um número positivo.")
	}
	if !beer.Price.IsPositive() {
		return apperror.NewValidationError("O preço da cerveja deve ser positivo.")
	}
	if !beer.Price.Equal(beer.Price.Round(2)) {
		return apperror.NewValidationError("O preço da cerveja deve ter no máximo duas casas decimais.")
	}
	if beer.Price.GreaterThanOrEqual(maxPrice) {
		return apperror.NewValidationError("O preço da cerveja deve ser menor que 10000000000.")
	}
	return nil
}

package beer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"gobeer/internal/api/mapper"
	"gobeer/internal/api/model"
	"gobeer/internal/domain"
	apperror "gobeer/internal/errors"
	"gobeer/internal/pkg/logger"
)

// BasePath é o prefixo das rotas de cerveja.
const BasePath = "/api/v1/beer/"

// BeerService define o contrato que o Handler espera da camada de Serviço.
type BeerService interface {
	GetBeerByID(ctx context.Context, id string) (domain.Beer, error)
	SaveNewBeer(ctx context.Context, beer domain.Beer) (domain.Beer, error)
	UpdateBeer(ctx context.Context, id string, beer domain.Beer) (domain.Beer, error)
	PatchBeer(ctx context.Context, id string, patch domain.BeerPatch) (domain.Beer, error)
	ListBeers(ctx context.Context, req domain.PageRequest) (domain.BeerPage, error)
}

// Handler agrupa todos os métodos de Handler de cervejas.
type Handler struct {
	Service BeerService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc BeerService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// handleServiceResponse processa erros de serviço e envia respostas padronizadas ao cliente.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		if data == nil {
			w.WriteHeader(successStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
			h.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
		}
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		h.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	})
}

// GetBeerByIDHandler lida com a requisição GET /api/v1/beer/{beerId}/.
// @Summary Obtém uma cerveja por ID
// @Description Busca uma cerveja pelo seu UUID. O parâmetro isCold é aceito e não altera a resposta.
// @Tags beers
// @Produce json
// @Param beerId path string true "ID da cerveja (UUID)"
// @Param isCold query string false "Aceito e ignorado"
// @Success 200 {object} model.BeerDto "Cerveja encontrada"
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Cerveja não encontrada"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /api/v1/beer/{beerId}/ [get]
func (h *Handler) GetBeerByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("beerId")
	if isCold := r.URL.Query().Get("isCold"); isCold != "" {
		h.Logger.Debug("Parâmetro isCold recebido.", map[string]interface{}{"is_cold": isCold})
	}

	beer, err := h.Service.GetBeerByID(r.Context(), id)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, mapper.BeerToBeerDto(beer), nil, http.StatusOK)
}

// ListBeersHandler lida com a requisição GET /api/v1/beer/.
// @Summary Lista cervejas paginadas
// @Description Página base 0; tamanho padrão 25 e máximo 100. sort no formato propriedade[,asc|desc].
// @Tags beers
// @Produce json
// @Param page query int false "Número da página (base 0)"
// @Param size query int false "Tamanho da página"
// @Param sort query []string false "Ordenação, e.g. beerName,desc" collectionFormat(multi)
// @Param beerName query string false "Filtro por trecho do nome"
// @Param beerStyle query string false "Filtro por estilo"
// @Success 200 {object} model.BeerPagedList "Página de cervejas"
// @Failure 400 {object} domain.ErrorResponse "Parâmetros inválidos"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /api/v1/beer/ [get]
func (h *Handler) ListBeersHandler(w http.ResponseWriter, r *http.Request) {
	req, err := parsePageRequest(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	page, err := h.Service.ListBeers(r.Context(), req)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, mapper.BeerPageToBeerPagedList(page), nil, http.StatusOK)
}

// CreateBeerHandler lida com a requisição POST /api/v1/beer/.
// @Summary Cria uma nova cerveja
// @Description id, version, createdDate, lastModifiedDate e quantityOnHand do payload são ignorados.
// @Tags beers
// @Accept json
// @Produce json
// @Param beer body model.BeerDto true "Dados da cerveja"
// @Success 201 {object} model.BeerDto "Cerveja criada"
// @Header 201 {string} Location "URL da nova cerveja"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 409 {object} domain.ErrorResponse "UPC já cadastrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Security ApiKeyAuth
// @Router /api/v1/beer/ [post]
func (h *Handler) CreateBeerHandler(w http.ResponseWriter, r *http.Request) {
	var dto model.BeerDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusOK)
		return
	}

	saved, err := h.Service.SaveNewBeer(r.Context(), mapper.BeerDtoToBeer(dto))
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	w.Header().Set("Location", BasePath+saved.ID.String())
	h.handleServiceResponse(w, r, mapper.BeerToBeerDto(saved), nil, http.StatusCreated)
}

// UpdateBeerHandler lida com a requisição PUT /api/v1/beer/{beerId}.
// @Summary Atualiza uma cerveja
// @Description Substitui beerName, beerStyle, upc e price. Responde sem corpo.
// @Tags beers
// @Accept json
// @Param beerId path string true "ID da cerveja (UUID)"
// @Param beer body model.BeerDto true "Novos dados da cerveja"
// @Success 204 "Cerveja atualizada"
// @Failure 400 {object} domain.ErrorResponse "Payload ou ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Cerveja não encontrada"
// @Failure 409 {object} domain.ErrorResponse "Modificação concorrente ou UPC duplicado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Security ApiKeyAuth
// @Router /api/v1/beer/{beerId} [put]
func (h *Handler) UpdateBeerHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("beerId")

	var dto model.BeerDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusOK)
		return
	}

	_, err := h.Service.UpdateBeer(r.Context(), id, mapper.BeerDtoToBeer(dto))
	h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
}

// PatchBeerHandler lida com a requisição PATCH /api/v1/beer/{beerId}.
// @Summary Atualiza parcialmente uma cerveja
// @Description Aplica somente os campos informados. Responde sem corpo.
// @Tags beers
// @Accept json
// @Param beerId path string true "ID da cerveja (UUID)"
// @Param patch body model.BeerPatchDto true "Campos a alterar"
// @Success 204 "Cerveja atualizada"
// @Failure 400 {object} domain.ErrorResponse "Payload ou ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Cerveja não encontrada"
// @Failure 409 {object} domain.ErrorResponse "Modificação concorrente ou UPC duplicado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Security ApiKeyAuth
// @Router /api/v1/beer/{beerId} [patch]
func (h *Handler) PatchBeerHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("beerId")

	var dto model.BeerPatchDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusOK)
		return
	}

	_, err := h.Service.PatchBeer(r.Context(), id, mapper.BeerPatchDtoToBeerPatch(dto))
	h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
}

// parsePageRequest lê page, size, sort, beerName e beerStyle da query string.
func parsePageRequest(r *http.Request) (domain.PageRequest, error) {
	q := r.URL.Query()
	req := domain.PageRequest{
		BeerName:  strings.TrimSpace(q.Get("beerName")),
		BeerStyle: domain.BeerStyle(strings.TrimSpace(q.Get("beerStyle"))),
	}

	var err error
	if req.PageNumber, err = intParam(q.Get("page"), "page"); err != nil {
		return domain.PageRequest{}, err
	}
	if req.PageSize, err = intParam(q.Get("size"), "size"); err != nil {
		return domain.PageRequest{}, err
	}
	if req.Sort, err = parseSort(q["sort"]); err != nil {
		return domain.PageRequest{}, err
	}
	return req, nil
}

func intParam(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.NewValidationError(fmt.Sprintf("O parâmetro %s deve ser numérico.", name))
	}
	return n, nil
}

// parseSort aceita "prop", "prop,desc" e "prop1,prop2,asc"; a direção final vale para todas
// as propriedades do mesmo parâmetro.
func parseSort(values []string) ([]domain.SortOrder, error) {
	var orders []domain.SortOrder
	for _, v := range values {
		parts := strings.Split(v, ",")
		dir := domain.SortAsc
		if last := strings.ToLower(strings.TrimSpace(parts[len(parts)-1])); last == "asc" || last == "desc" {
			dir = domain.SortDirection(last)
			parts = parts[:len(parts)-1]
		}
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if !domain.IsSortableBeerProperty(p) {
				return nil, apperror.NewValidationError(fmt.Sprintf("Não é possível ordenar por %q.", p))
			}
			orders = append(orders, domain.SortOrder{Property: p, Direction: dir})
		}
	}
	return orders, nil
}

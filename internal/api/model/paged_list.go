package model

// BeerPagedList empacota uma página de BeerDto com os metadados de paginação.
// É imutável depois de construída; os campos são expostos apenas para serialização.
type BeerPagedList struct {
	Content          []BeerDto `json:"content"`
	Number           int       `json:"number"`
	Size             int       `json:"size"`
	TotalElements    int64     `json:"totalElements"`
	TotalPages       int       `json:"totalPages"`
	NumberOfElements int       `json:"numberOfElements"`
	First            bool      `json:"first"`
	Last             bool      `json:"last"`
	Empty            bool      `json:"empty"`
}

// NewBeerPagedList monta a página pageNumber (base 0) de tamanho pageSize.
// Se a página não está cheia e ultrapassa total, o total é corrigido para offset+len(content).
func NewBeerPagedList(content []BeerDto, pageNumber, pageSize int, total int64) BeerPagedList {
	if content == nil {
		content = []BeerDto{}
	}

	offset := int64(pageNumber) * int64(pageSize)
	if len(content) > 0 && pageSize > 0 && offset+int64(pageSize) > total {
		total = offset + int64(len(content))
	}

	totalPages := 1
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}

	return BeerPagedList{
		Content:          content,
		Number:           pageNumber,
		Size:             pageSize,
		TotalElements:    total,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
		First:            pageNumber == 0,
		Last:             pageNumber+1 >= totalPages,
		Empty:            len(content) == 0,
	}
}

// NewUnpagedBeerPagedList cria uma lista com todo o conteúdo numa única página.
func NewUnpagedBeerPagedList(content []BeerDto) BeerPagedList {
	if content == nil {
		content = []BeerDto{}
	}
	return BeerPagedList{
		Content:          content,
		Number:           0,
		Size:             len(content),
		TotalElements:    int64(len(content)),
		TotalPages:       1,
		NumberOfElements: len(content),
		First:            true,
		Last:             true,
		Empty:            len(content) == 0,
	}
}

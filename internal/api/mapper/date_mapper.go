package mapper

import "time"

// DateMapper converte entre o timestamp de armazenamento e o date-time com offset usado na API.
type DateMapper struct{}

// AsOffsetDateTime devolve o instante em UTC; o valor zero vira nil (campo nulo no JSON).
func (DateMapper) AsOffsetDateTime(ts time.Time) *time.Time {
	if ts.IsZero() {
		return nil
	}
	odt := ts.UTC()
	return &odt
}

// AsTimestamp é o inverso de AsOffsetDateTime.
func (DateMapper) AsTimestamp(odt *time.Time) time.Time {
	if odt == nil {
		return time.Time{}
	}
	return odt.UTC()
}

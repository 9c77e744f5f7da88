package dtos

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/interaction"
	"github.com/claimdesk/claimdesk/pkg/composables"
	"github.com/claimdesk/claimdesk/pkg/serrors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FeedQueryDTO carries the recognized feed query parameters. Anything not
// listed here never reaches the query compiler. Sort fields deliberately
// carry no validation tag; an unrecognized field falls back to the default
// sort instead of failing the request.
type FeedQueryDTO struct {
	CaseNumber       string   `validate:"omitempty,max=100"`
	CaseID           string   `validate:"omitempty,uuid"`
	Types            []string `validate:"omitempty,dive,oneof=call email meeting note sms"`
	Priorities       []string `validate:"omitempty,dive,oneof=low normal high urgent"`
	Statuses         []string `validate:"omitempty,dive,oneof=open pending resolved closed"`
	DateFrom         string   `validate:"omitempty"`
	DateTo           string   `validate:"omitempty"`
	Search           string   `validate:"omitempty,max=500"`
	Tags             []string `validate:"omitempty,dive,max=100"`
	InsuranceCompany string   `validate:"omitempty,max=255"`
	LawyerAssigned   string   `validate:"omitempty,max=255"`
	RentalCompany    string   `validate:"omitempty,max=255"`
	SortBy           string
	SortDir          string
	// The page-size ceiling lives in Configuration.MaxPageSize;
	// composables.UsePaginated clamps before validation runs.
	Page     int `validate:"min=1"`
	PageSize int `validate:"min=1"`
}

// ParseFeedQuery reads the feed DTO from URL query parameters.
func ParseFeedQuery(r *http.Request) *FeedQueryDTO {
	q := r.URL.Query()
	pagination := composables.UsePaginated(r)
	return &FeedQueryDTO{
		CaseNumber:       strings.TrimSpace(q.Get("caseNumber")),
		CaseID:           strings.TrimSpace(q.Get("caseId")),
		Types:            splitCSV(q.Get("type")),
		Priorities:       splitCSV(q.Get("priority")),
		Statuses:         splitCSV(q.Get("status")),
		DateFrom:         strings.TrimSpace(q.Get("dateFrom")),
		DateTo:           strings.TrimSpace(q.Get("dateTo")),
		Search:           strings.TrimSpace(q.Get("search")),
		Tags:             splitCSV(q.Get("tags")),
		InsuranceCompany: strings.TrimSpace(q.Get("insuranceCompany")),
		LawyerAssigned:   strings.TrimSpace(q.Get("lawyerAssigned")),
		RentalCompany:    strings.TrimSpace(q.Get("rentalCompany")),
		SortBy:           strings.TrimSpace(q.Get("sortBy")),
		SortDir:          strings.TrimSpace(q.Get("sortDir")),
		Page:             pagination.Page,
		PageSize:         pagination.PageSize,
	}
}

// Validate checks the DTO, returning coded validation errors.
func (d *FeedQueryDTO) Validate() error {
	if err := validateStruct(d); err != nil {
		return err
	}
	if _, err := parseDate(d.DateFrom); err != nil {
		return serrors.NewValidationError("dateFrom must be an RFC 3339 timestamp or YYYY-MM-DD date")
	}
	if _, err := parseDate(d.DateTo); err != nil {
		return serrors.NewValidationError("dateTo must be an RFC 3339 timestamp or YYYY-MM-DD date")
	}
	return nil
}

// ToFindParams converts the validated DTO to repository find parameters.
func (d *FeedQueryDTO) ToFindParams() *interaction.FindParams {
	filter := interaction.Filter{
		CaseNumber:       d.CaseNumber,
		Types:            toTyped[interaction.Type](d.Types),
		Priorities:       toTyped[interaction.Priority](d.Priorities),
		Statuses:         toTyped[interaction.Status](d.Statuses),
		SearchQuery:      d.Search,
		Tags:             d.Tags,
		InsuranceCompany: d.InsuranceCompany,
		LawyerAssigned:   d.LawyerAssigned,
		RentalCompany:    d.RentalCompany,
	}
	if id, err := uuid.Parse(d.CaseID); err == nil {
		filter.CaseID = &id
	}
	if ts, err := parseDate(d.DateFrom); err == nil && ts != nil {
		filter.DateFrom = ts
	}
	if ts, err := parseDate(d.DateTo); err == nil && ts != nil {
		filter.DateTo = ts
	}
	return &interaction.FindParams{
		Filter:   filter,
		Sort:     interaction.Sort{Field: interaction.SortField(d.SortBy), Direction: interaction.SortDirection(d.SortDir)},
		Page:     d.Page,
		PageSize: d.PageSize,
	}
}

func splitCSV(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return &ts, nil
	}
	ts, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func toTyped[T ~string](values []string) []T {
	if len(values) == 0 {
		return nil
	}
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(v)
	}
	return out
}

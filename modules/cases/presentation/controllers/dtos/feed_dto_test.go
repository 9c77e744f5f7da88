package dtos_test

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/interaction"
	"github.com/claimdesk/claimdesk/modules/cases/presentation/controllers/dtos"
	"github.com/claimdesk/claimdesk/pkg/configuration"
)

func TestParseFeedQuery(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET",
		"/cases/feed?caseNumber=CASE-1&type=call,email&priority=high&search=whiplash"+
			"&tags=urgent,callback&dateFrom=2026-01-01&sortBy=priority&sortDir=asc&page=2&pageSize=10", nil)

	dto := dtos.ParseFeedQuery(r)
	require.NoError(t, dto.Validate())

	params := dto.ToFindParams()
	assert.Equal(t, "CASE-1", params.Filter.CaseNumber)
	assert.Equal(t, []interaction.Type{interaction.TypeCall, interaction.TypeEmail}, params.Filter.Types)
	assert.Equal(t, []interaction.Priority{interaction.PriorityHigh}, params.Filter.Priorities)
	assert.Equal(t, "whiplash", params.Filter.SearchQuery)
	assert.Equal(t, []string{"urgent", "callback"}, params.Filter.Tags)
	require.NotNil(t, params.Filter.DateFrom)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *params.Filter.DateFrom)
	assert.Equal(t, interaction.SortByPriority, params.Sort.Field)
	assert.Equal(t, interaction.SortAsc, params.Sort.Direction)
	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 10, params.PageSize)
}

func TestParseFeedQuery_Defaults(t *testing.T) {
	t.Parallel()

	dto := dtos.ParseFeedQuery(httptest.NewRequest("GET", "/cases/feed", nil))
	require.NoError(t, dto.Validate())

	params := dto.ToFindParams()
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.PageSize)
	assert.Nil(t, params.Filter.Types)
	assert.Nil(t, params.Filter.DateFrom)
	assert.Nil(t, params.Filter.CaseID)
}

func TestFeedQueryDTO_RejectsUnknownEnumValues(t *testing.T) {
	t.Parallel()

	dto := dtos.ParseFeedQuery(httptest.NewRequest("GET", "/cases/feed?priority=catastrophic", nil))
	assert.Error(t, dto.Validate())

	dto = dtos.ParseFeedQuery(httptest.NewRequest("GET", "/cases/feed?type=carrier-pigeon", nil))
	assert.Error(t, dto.Validate())
}

func TestFeedQueryDTO_UnknownSortFieldIsNotAnError(t *testing.T) {
	t.Parallel()

	dto := dtos.ParseFeedQuery(httptest.NewRequest("GET", "/cases/feed?sortBy=casenumber%3BDROP", nil))
	require.NoError(t, dto.Validate())

	// Falls back to default ordering downstream instead of failing here.
	sort := dto.ToFindParams().Sort.Normalize()
	assert.Equal(t, interaction.SortByTimestamp, sort.Field)
	assert.Equal(t, interaction.SortDesc, sort.Direction)
}

func TestFeedQueryDTO_RejectsMalformedDates(t *testing.T) {
	t.Parallel()

	dto := dtos.ParseFeedQuery(httptest.NewRequest("GET", "/cases/feed?dateFrom=yesterday", nil))
	assert.Error(t, dto.Validate())
}

func TestFeedQueryDTO_PageSizeClamped(t *testing.T) {
	t.Parallel()

	// The ceiling is owned by configuration, not hard-coded in the DTO.
	maxPageSize := configuration.Use().MaxPageSize

	dto := dtos.ParseFeedQuery(httptest.NewRequest("GET", "/cases/feed?pageSize=5000", nil))
	require.NoError(t, dto.Validate())
	assert.Equal(t, maxPageSize, dto.PageSize)

	overMax := httptest.NewRequest("GET", fmt.Sprintf("/cases/feed?pageSize=%d", maxPageSize+1), nil)
	dto = dtos.ParseFeedQuery(overMax)
	require.NoError(t, dto.Validate(), "a clamped page size must never produce a validation failure")
	assert.Equal(t, maxPageSize, dto.PageSize)
}

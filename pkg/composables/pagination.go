package composables

import (
	"net/http"
	"strconv"

	"github.com/claimdesk/claimdesk/pkg/configuration"
)

type PageParams struct {
	Page     int
	PageSize int
}

func (p PageParams) Limit() int  { return p.PageSize }
func (p PageParams) Offset() int { return (p.Page - 1) * p.PageSize }

// UsePaginated reads page/pageSize query parameters, clamping page to >= 1
// and pageSize to [1, MAX_PAGE_SIZE].
func UsePaginated(r *http.Request) PageParams {
	conf := configuration.Use()
	params := PageParams{Page: 1, PageSize: conf.PageSize}
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 1 {
		params.Page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("pageSize")); err == nil && v > 0 {
		params.PageSize = min(v, conf.MaxPageSize)
	}
	return params
}

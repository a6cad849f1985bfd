package queryparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateClamps(t *testing.T) {
	p := ListParams{Page: -3, PerPage: 500, OrderBy: " ASC ", Search: "  shoes "}
	p.Validate()

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, MaxPerPage, p.PerPage)
	assert.Equal(t, "asc", p.OrderBy)
	assert.Equal(t, "shoes", p.Search)

	p = ListParams{OrderBy: "sideways"}
	p.Validate()
	assert.Equal(t, DefaultPerPage, p.PerPage)
	assert.Equal(t, "desc", p.OrderBy)
}

func TestPagingMath(t *testing.T) {
	p := ListParams{Page: 3, PerPage: 20}
	assert.Equal(t, 40, p.CalculateOffset())

	assert.Equal(t, 0, CalculateTotalPages(0, 20))
	assert.Equal(t, 1, CalculateTotalPages(20, 20))
	assert.Equal(t, 2, CalculateTotalPages(21, 20))

	res := NewResult([]string{"a"}, p, 41)
	assert.Equal(t, 3, res.Meta.TotalPages)
	assert.Equal(t, 3, res.Meta.CurrentPage)
}

package turkishsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSQLFilter(t *testing.T) {
	frag, args := SQLFilter("cert.given", "  Ali ")
	assert.Equal(t, "cert.given ILIKE ?", frag)
	assert.Equal(t, []interface{}{"%ali%"}, args)
}

func TestAnyColumn(t *testing.T) {
	frag, args := AnyColumn("veli", "cert.given", "cert.head")
	assert.Equal(t, "(cert.given ILIKE ? OR cert.head ILIKE ?)", frag)
	assert.Len(t, args, 2)
	assert.Equal(t, "%veli%", args[0])
}

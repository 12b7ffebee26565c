package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "created_at desc", DefaultOrder.Clause())
	assert.Equal(t, "filename asc", Order{Column: "filename"}.Clause())
	assert.Equal(t, "version desc", Order{Column: "version", Desc: true}.Clause())
	// 未在白名单中的列回退到 created_at
	assert.Equal(t, "created_at asc", Order{Column: "id; drop table files"}.Clause())
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	p := NewPage[File](nil, 1, 6, 0)
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
	assert.Equal(t, 0, p.TotalPages)

	p = NewPage([]File{{}, {}}, 2, 6, 13)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 2, p.Page)

	assert.Equal(t, 1, NewPage([]File{{}}, 1, 6, 6).TotalPages)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 6))
	assert.Equal(t, 12, Offset(3, 6))
	assert.Equal(t, 0, Offset(0, 6))
	assert.Equal(t, 0, Offset(-4, 6))
}

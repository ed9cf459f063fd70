package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageMeta_Navigation(t *testing.T) {
	meta := PageMeta{CurrentPage: 2, PageSize: 5, Total: 12, LastPage: 3}

	assert.True(t, meta.HasPrev())
	assert.True(t, meta.HasNext())
	assert.Equal(t, 1, meta.PrevPage())
	assert.Equal(t, 3, meta.NextPage())
	assert.Equal(t, []int{1, 2, 3}, meta.PageNumbers())
}

func TestPageMeta_SinglePage(t *testing.T) {
	meta := PageMeta{CurrentPage: 1, PageSize: 5, Total: 2, LastPage: 1}

	assert.False(t, meta.HasPrev())
	assert.False(t, meta.HasNext())
	assert.Equal(t, []int{1}, meta.PageNumbers())
}

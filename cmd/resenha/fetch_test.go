package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/resenha-br/resenha/internal/model"
)

func TestApplyCategory(t *testing.T) {
	products := []model.Product{
		{ID: "p1", SKU: "sku-1"},
		{ID: "p2", SKU: "sku-2"},
	}

	applyCategory(products, "eletroportateis")
	assert.Equal(t, "eletroportateis", products[0].Category)
	assert.Equal(t, "eletroportateis", products[1].Category)
}

func TestApplyCategoryEmptyKeepsExisting(t *testing.T) {
	products := []model.Product{{ID: "p1", Category: "moveis"}}

	applyCategory(products, "")
	assert.Equal(t, "moveis", products[0].Category)
}

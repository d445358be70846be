package constructor

import (
	"testing"

	"github.com/magabrotheeeer/giftoutfit/internal/models"
	"github.com/stretchr/testify/assert"
)

func sampleCollection() []models.ConstructorGift {
	return []models.ConstructorGift{
		{GiftNumber: 1, Model: "Gold", Backdrop: "Black", Symbol: "Star", URL: "u1"},
		{GiftNumber: 2, Model: "Gold", Backdrop: "Black", Symbol: "Moon", URL: "u2"},
		{GiftNumber: 3, Model: "Gold", Backdrop: "Azure", Symbol: "Star", URL: "u3"},
		{GiftNumber: 4, Model: "Silver", Backdrop: "Black", Symbol: "Heart", URL: "u4"},
		{GiftNumber: 5, Model: "Silver", Backdrop: "Black", Symbol: "", URL: "u5"},
	}
}

func TestBuildTree(t *testing.T) {
	tree := BuildTree(sampleCollection())

	assert.Equal(t, []string{"Gold", "Silver"}, tree.Models())
	assert.Equal(t, []string{"Black", "Azure"}, tree.Backdrops("Gold"))
	assert.Equal(t, []Symbol{
		{Symbol: "Star", GiftNumber: 1, URL: "u1"},
		{Symbol: "Moon", GiftNumber: 2, URL: "u2"},
	}, tree.Symbols("Gold", "Black"))
	assert.Empty(t, tree.Backdrops("Bronze"))
	assert.Empty(t, tree.Symbols("Gold", "Red"))
}

func TestTree_AllSymbolsKeepsFirstOccurrence(t *testing.T) {
	tree := BuildTree(sampleCollection())

	all := tree.AllSymbols()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.Symbol)
	}
	assert.Equal(t, []string{"Star", "Moon", "Heart", ""}, names)
	assert.Equal(t, int64(1), all[0].GiftNumber)
}

func TestTree_Lookup(t *testing.T) {
	tree := BuildTree(sampleCollection())

	s, ok := tree.Lookup("Gold", "Azure", "Star")
	assert.True(t, ok)
	assert.Equal(t, int64(3), s.GiftNumber)

	_, ok = tree.Lookup("Silver", "Azure", "Star")
	assert.False(t, ok)
}

package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MayerAttila/Gifty/models"
	"github.com/MayerAttila/Gifty/storage"
)

func seedAnn(t *testing.T, members storage.MemberRepository) {
	t.Helper()
	require.NoError(t, members.Save([]models.Member{
		{ID: 1, Name: "Ann", Gender: "female", Connection: "sister"},
	}))
}

func TestCreateMemberProduct(t *testing.T) {
	router, members, _ := newTestRouter(t)
	seedAnn(t, members)

	w := doJSON(t, router, http.MethodPost, "/api/v1/members/ann/products", gin.H{
		"name":  "Fountain pen",
		"url":   "https://example.com/pen",
		"price": "24,99 €",
		"notes": "blue ink",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.MemberProduct
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 1, created.MemberID)
	assert.Equal(t, "Fountain pen", created.Name)
	assert.Equal(t, "24,99 €", created.PriceDisplay)
	require.NotNil(t, created.PriceValue)
	assert.InDelta(t, 24.99, *created.PriceValue, 0.001)
	assert.NotEmpty(t, created.CreatedAt)
}

func TestCreateMemberProductUnknownSlug(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/members/nobody/products", gin.H{
		"name": "Pen",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateMemberProductRequiresName(t *testing.T) {
	router, members, _ := newTestRouter(t)
	seedAnn(t, members)

	w := doJSON(t, router, http.MethodPost, "/api/v1/members/ann/products", gin.H{
		"url": "https://example.com/pen",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListMemberProductsNewestFirst(t *testing.T) {
	router, members, products := newTestRouter(t)
	seedAnn(t, members)
	require.NoError(t, products.Save([]models.MemberProduct{
		{ID: "old", MemberID: 1, Name: "Old", CreatedAt: "2024-01-01T10:00:00Z"},
		{ID: "new", MemberID: 1, Name: "New", CreatedAt: "2024-03-01T10:00:00Z"},
		{ID: "other", MemberID: 2, Name: "Other", CreatedAt: "2024-02-01T10:00:00Z"},
	}))

	w := doJSON(t, router, http.MethodGet, "/api/v1/members/ann/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.MemberProduct
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "new", listed[0].ID)
	assert.Equal(t, "old", listed[1].ID)
}

func TestUpdateProductClearsOmittedFields(t *testing.T) {
	router, _, products := newTestRouter(t)
	price := 10.0
	require.NoError(t, products.Save([]models.MemberProduct{
		{ID: "p1", MemberID: 1, Name: "Pen", Notes: "blue", PriceDisplay: "10", PriceValue: &price,
			CreatedAt: "2024-01-01T10:00:00Z"},
	}))

	w := doJSON(t, router, http.MethodPut, "/api/v1/products/p1", gin.H{
		"name": "Better pen",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.MemberProduct
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Better pen", updated.Name)
	assert.Empty(t, updated.Notes)
	assert.Empty(t, updated.PriceDisplay)
	assert.Nil(t, updated.PriceValue)
	assert.NotEmpty(t, updated.UpdatedAt)

	w = doJSON(t, router, http.MethodPut, "/api/v1/products/missing", gin.H{"name": "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProduct(t *testing.T) {
	router, _, products := newTestRouter(t)
	require.NoError(t, products.Save([]models.MemberProduct{
		{ID: "p1", MemberID: 1, Name: "Pen", CreatedAt: "2024-01-01T10:00:00Z"},
	}))

	w := doJSON(t, router, http.MethodDelete, "/api/v1/products/p1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	loaded, err := products.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/products/p1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListProductsIncludesOrphans(t *testing.T) {
	router, _, products := newTestRouter(t)
	require.NoError(t, products.Save([]models.MemberProduct{
		{ID: "orphan", MemberID: 99, Name: "Orphan", CreatedAt: "2024-01-01T10:00:00Z"},
	}))

	w := doJSON(t, router, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.MemberProduct
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "orphan", listed[0].ID)
}

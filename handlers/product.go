package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/MayerAttila/Gifty/models"
	"github.com/MayerAttila/Gifty/storage"
)

type ProductHandler struct {
	Members  storage.MemberRepository
	Products storage.ProductRepository
}

// resolveMember maps the slug route param to a member, writing the
// not-found body itself when the slug matches nothing.
func (h *ProductHandler) resolveMember(c *gin.Context) *models.Member {
	members, err := h.Members.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load members"})
		return nil
	}
	member := models.FindMemberBySlug(members, c.Param("slug"))
	if member == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return nil
	}
	return member
}

// ListMemberProducts returns one member's gift ideas, newest first.
func (h *ProductHandler) ListMemberProducts(c *gin.Context) {
	member := h.resolveMember(c)
	if member == nil {
		return
	}

	products, err := h.Products.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	owned := make([]models.MemberProduct, 0)
	for _, p := range products {
		if p.MemberID == member.ID {
			owned = append(owned, p)
		}
	}
	// RFC 3339 strings order chronologically.
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].CreatedAt > owned[j].CreatedAt
	})

	c.JSON(http.StatusOK, owned)
}

// CreateMemberProduct adds a gift idea for a member.
func (h *ProductHandler) CreateMemberProduct(c *gin.Context) {
	member := h.resolveMember(c)
	if member == nil {
		return
	}

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := h.Products.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	product := models.NewMemberProduct(member.ID, req)
	products = append(products, product)
	if err := h.Products.Save(products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save products"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// ListProducts returns every stored product, orphans included.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.Products.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// UpdateProduct replaces a product's editable fields.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := h.Products.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	var updated *models.MemberProduct
	for i := range products {
		if products[i].ID == id {
			products[i].ApplyUpdate(req)
			updated = &products[i]
			break
		}
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if err := h.Products.Save(products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save products"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteProduct removes a product by id.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	products, err := h.Products.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	remaining := make([]models.MemberProduct, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(products) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if err := h.Products.Save(remaining); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

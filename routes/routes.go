package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/MayerAttila/Gifty/handlers"
	"github.com/MayerAttila/Gifty/storage"
)

// SetupMemberRoutes wires the member CRUD surface.
func SetupMemberRoutes(rg *gin.RouterGroup, members storage.MemberRepository) {
	h := &handlers.MemberHandler{Members: members}

	rg.GET("/members", h.ListMembers)
	rg.POST("/members", h.CreateMember)
	rg.GET("/members/:slug", h.GetMemberBySlug)
	rg.PUT("/members/:id", h.UpdateMember)
	rg.DELETE("/members/:id", h.DeleteMember)
}

// SetupProductRoutes wires the gift-idea routes. Per-member listing and
// creation are addressed through the member slug.
func SetupProductRoutes(rg *gin.RouterGroup, members storage.MemberRepository, products storage.ProductRepository) {
	h := &handlers.ProductHandler{Members: members, Products: products}

	rg.GET("/members/:slug/products", h.ListMemberProducts)
	rg.POST("/members/:slug/products", h.CreateMemberProduct)
	rg.GET("/products", h.ListProducts)
	rg.PUT("/products/:id", h.UpdateProduct)
	rg.DELETE("/products/:id", h.DeleteProduct)
}

// SetupCalendarRoutes wires the calendar aggregation views and the ICS
// feed.
func SetupCalendarRoutes(rg *gin.RouterGroup, members storage.MemberRepository) {
	h := &handlers.CalendarHandler{Members: members}

	rg.GET("/calendar", h.GetWindow)
	rg.GET("/calendar/upcoming", h.GetUpcoming)
	rg.GET("/calendar/feed.ics", h.GetFeed)
	rg.GET("/calendar/:year/:month", h.GetMonth)
}

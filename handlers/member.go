package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MayerAttila/Gifty/models"
	"github.com/MayerAttila/Gifty/services"
	"github.com/MayerAttila/Gifty/storage"
)

type MemberHandler struct {
	Members storage.MemberRepository
}

// ListMembers returns the full collection. With ?sort=upcoming the list
// is ordered closest-occasion-first, the ordering the member cards use.
func (h *MemberHandler) ListMembers(c *gin.Context) {
	members, err := h.Members.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load members"})
		return
	}

	if c.Query("sort") == "upcoming" {
		members = services.SortMembersByUpcoming(members, time.Now())
	}

	c.JSON(http.StatusOK, members)
}

// CreateMember adds a member from validated form values. The id is
// assigned as max(existing)+1 and the occasion set is deduplicated by
// case-insensitive label, with the birthday field folded in under the
// reserved label.
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req models.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	members, err := h.Members.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load members"})
		return
	}

	member := models.Member{
		ID:           models.NextMemberID(members),
		Name:         strings.TrimSpace(req.Name),
		Gender:       req.Gender,
		Connection:   req.Connection,
		Likings:      strings.TrimSpace(req.Likings),
		SpecialDates: req.Occasions(),
	}

	members = append(members, member)
	if err := h.Members.Save(members); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save members"})
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetMemberBySlug resolves a member through its slugified name. An
// unknown slug is a terminal not-found state, not an error.
func (h *MemberHandler) GetMemberBySlug(c *gin.Context) {
	members, err := h.Members.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load members"})
		return
	}

	member := models.FindMemberBySlug(members, c.Param("slug"))
	if member == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	c.JSON(http.StatusOK, member)
}

// UpdateMember replaces the whole record, keeping the id.
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member id"})
		return
	}

	var req models.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	members, err := h.Members.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load members"})
		return
	}

	var replacement *models.Member
	for i := range members {
		if members[i].ID != id {
			continue
		}
		members[i] = models.Member{
			ID:           id,
			Name:         strings.TrimSpace(req.Name),
			Gender:       req.Gender,
			Connection:   req.Connection,
			Likings:      strings.TrimSpace(req.Likings),
			SpecialDates: req.Occasions(),
		}
		replacement = &members[i]
		break
	}

	if replacement == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	if err := h.Members.Save(members); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save members"})
		return
	}

	c.JSON(http.StatusOK, replacement)
}

// DeleteMember removes a member by id. Products referencing the member
// are left in place.
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member id"})
		return
	}

	members, err := h.Members.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load members"})
		return
	}

	remaining := make([]models.Member, 0, len(members))
	for _, m := range members {
		if m.ID != id {
			remaining = append(remaining, m)
		}
	}
	if len(remaining) == len(members) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	if err := h.Members.Save(remaining); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save members"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}

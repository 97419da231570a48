package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/himanshu221/medium-backend/internal/middleware"
	"github.com/himanshu221/medium-backend/internal/models"
	"github.com/himanshu221/medium-backend/internal/validation"
)

type createBlogRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type updateBlogRequest struct {
	ID      int64  `json:"id" validate:"required,gt=0"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// CreateBlog creates a blog owned by the authenticated user
func (h *Handler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.UserID(r.Context())
	if !ok {
		respondMessage(w, http.StatusForbidden, "User Not Authorized")
		return
	}

	var req createBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, statusClientError, "Invalid request body")
		return
	}
	if err := validation.Validate(req); err != nil {
		respondMessage(w, statusClientError, err.Error())
		return
	}

	if _, err := h.svc.CreateBlog(r.Context(), authorID, req.Title, req.Content); err != nil {
		h.log.Warnf("Blog creation failed for user %d: %v", authorID, err)
		respondMessage(w, statusClientError, "Error occurred while saving blog")
		return
	}

	respondMessage(w, http.StatusOK, "Successfully created blog")
}

// UpdateBlog updates a blog if it belongs to the authenticated user
func (h *Handler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.UserID(r.Context())
	if !ok {
		respondMessage(w, http.StatusForbidden, "User Not Authorized")
		return
	}

	var req updateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, statusClientError, "Invalid request body")
		return
	}
	if err := validation.Validate(req); err != nil {
		respondMessage(w, statusClientError, err.Error())
		return
	}

	if err := h.svc.UpdateBlog(r.Context(), req.ID, authorID, req.Title, req.Content); err != nil {
		h.log.Warnf("Blog update failed for user %d, blog %d: %v", authorID, req.ID, err)
		respondMessage(w, statusClientError, "Error occurred while updating blog")
		return
	}

	respondMessage(w, http.StatusOK, "Successfully updated blog")
}

// ListBlogs returns all blogs with their author names
func (h *Handler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.svc.ListBlogs(r.Context())
	if err != nil {
		h.log.Warnf("Blog listing failed: %v", err)
		respondMessage(w, statusClientError, "Error occurred while retrieving blogs")
		return
	}

	respondJSON(w, http.StatusOK, map[string][]models.Blog{"blogList": blogs})
}

// GetBlog returns a single blog by id. A missing record is a success with a
// null payload, not an error.
func (h *Handler) GetBlog(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respondMessage(w, statusClientError, fmt.Sprintf("Error occurred while retrieving blog with id: %s", idStr))
		return
	}

	blog, err := h.svc.GetBlog(r.Context(), id)
	if err != nil {
		h.log.Warnf("Blog lookup failed for id %d: %v", id, err)
		respondMessage(w, statusClientError, fmt.Sprintf("Error occurred while retrieving blog with id: %s", idStr))
		return
	}

	respondJSON(w, http.StatusOK, map[string]*models.Blog{"blog": blog})
}

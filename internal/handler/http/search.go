package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adithya2152/devconnect/internal/service"
)

// SearchHandler serves free-text developer and project search.
type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	if searchService == nil {
		panic("SearchService cannot be nil for SearchHandler")
	}
	return &SearchHandler{searchService: searchService}
}

// Devs handles GET /search/devs?q=.
func (h *SearchHandler) Devs(c *gin.Context) {
	if _, ok := authenticatedUserID(c); !ok {
		return
	}
	profiles, err := h.searchService.Devs(c.Request.Context(), c.Query("q"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, profiles)
}

// Projects handles GET /search/projects?q=.
func (h *SearchHandler) Projects(c *gin.Context) {
	if _, ok := authenticatedUserID(c); !ok {
		return
	}
	projects, err := h.searchService.Projects(c.Request.Context(), c.Query("q"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, projects)
}

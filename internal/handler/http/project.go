package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adithya2152/devconnect/internal/service"
)

// ProjectHandler serves project listings and applications.
type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	if projectService == nil {
		panic("ProjectService cannot be nil for ProjectHandler")
	}
	return &ProjectHandler{projectService: projectService}
}

// List handles GET /api/app_projects_with_members.
func (h *ProjectHandler) List(c *gin.Context) {
	if _, ok := authenticatedUserID(c); !ok {
		return
	}
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, projects)
}

type createProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// Create handles POST /api/app_projects.
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	project, err := h.projectService.Create(c.Request.Context(), userID, req.Title, req.Description)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, project)
}

type applyProjectRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
}

// Apply handles POST /api/app_project_members. Applications always start
// pending regardless of any status the client submits.
func (h *ProjectHandler) Apply(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}
	var req applyProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	member, err := h.projectService.Apply(c.Request.Context(), req.ProjectID, userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, member)
}

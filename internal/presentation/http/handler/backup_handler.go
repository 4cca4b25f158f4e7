package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/application/service"
	"github.com/freshbasket/storefront-api/internal/presentation/http/dto/response"
)

// BackupHandler handles database backup HTTP requests
type BackupHandler struct {
	backupService *service.BackupService
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backupService *service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// Run triggers a manual database backup
// @Summary Run manual backup
// @Tags backups
// @Produce json
// @Security BearerAuth
// @Success 201 {object} response.APIResponse
// @Router /admin/backups [post]
func (h *BackupHandler) Run(c *gin.Context) {
	log, err := h.backupService.RunBackup(c.Request.Context(), "manual", GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Backup completed", log)
}

// List lists recent backup logs
// @Summary List backups
// @Tags backups
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max entries"
// @Success 200 {object} response.APIResponse
// @Router /admin/backups [get]
func (h *BackupHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	logs, err := h.backupService.ListBackups(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Backups retrieved", logs)
}

// Get retrieves a backup log entry
// @Summary Get backup
// @Tags backups
// @Produce json
// @Security BearerAuth
// @Param id path string true "Backup ID"
// @Success 200 {object} response.APIResponse
// @Router /admin/backups/{id} [get]
func (h *BackupHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid backup ID")
		return
	}

	log, err := h.backupService.GetBackup(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Backup retrieved", log)
}

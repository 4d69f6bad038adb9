package handler

import (
	"net/http"
	"strconv"

	"hospital-bed-backend/internal/service"
	"hospital-bed-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BedAssignHandler struct {
	assignService *service.BedAssignService
}

func NewBedAssignHandler(assignService *service.BedAssignService) *BedAssignHandler {
	return &BedAssignHandler{
		assignService: assignService,
	}
}

// ListAssignments retrieves assignments, optionally filtered by
// ?status=active|inactive, most recent first
func (h *BedAssignHandler) ListAssignments(c *gin.Context) {
	var isActive *bool
	switch c.Query("status") {
	case "":
	case "active":
		active := true
		isActive = &active
	case "inactive":
		inactive := false
		isActive = &inactive
	default:
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid status filter, expected active or inactive")
		return
	}

	assigns, err := h.assignService.ListAssignments(isActive)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch assignments")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"assignments": assigns,
		"count":       len(assigns),
	})
}

// GetAssignment retrieves a specific assignment by ID
func (h *BedAssignHandler) GetAssignment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid assignment ID")
		return
	}

	assign, err := h.assignService.GetAssignment(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, assign)
}

// CreateAssignment creates a new bed assignment (admin only)
func (h *BedAssignHandler) CreateAssignment(c *gin.Context) {
	var input service.BedAssignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID, _ := c.Get("userID")

	assign, err := h.assignService.CreateAssignment(input, userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":    "Bed assigned successfully",
		"assignment": assign,
	})
}

// UpdateAssignment updates an existing assignment (admin only)
func (h *BedAssignHandler) UpdateAssignment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid assignment ID")
		return
	}

	var input service.BedAssignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID, _ := c.Get("userID")

	assign, err := h.assignService.UpdateAssignment(uint(id), input, userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":    "Assignment updated successfully",
		"assignment": assign,
	})
}

type statusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// SetStatus toggles the active flag of an assignment (admin only)
func (h *BedAssignHandler) SetStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid assignment ID")
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "is_active is required")
		return
	}

	userID, _ := c.Get("userID")

	assign, err := h.assignService.SetActive(uint(id), *req.IsActive, userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":    "Assignment status updated",
		"assignment": assign,
	})
}

// DeleteAssignment removes an assignment (admin only)
func (h *BedAssignHandler) DeleteAssignment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid assignment ID")
		return
	}

	userID, _ := c.Get("userID")

	if err := h.assignService.DeleteAssignment(uint(id), userID.(uint)); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Assignment deleted successfully")
}

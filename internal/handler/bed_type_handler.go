package handler

import (
	"net/http"
	"strconv"

	"hospital-bed-backend/internal/service"
	"hospital-bed-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BedTypeHandler struct {
	bedTypeService      *service.BedTypeService
	availabilityService *service.AvailabilityService
}

func NewBedTypeHandler(
	bedTypeService *service.BedTypeService,
	availabilityService *service.AvailabilityService,
) *BedTypeHandler {
	return &BedTypeHandler{
		bedTypeService:      bedTypeService,
		availabilityService: availabilityService,
	}
}

// ListBedTypes retrieves all bed types
func (h *BedTypeHandler) ListBedTypes(c *gin.Context) {
	bedTypes, err := h.bedTypeService.ListBedTypes()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch bed types")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"bed_types": bedTypes,
		"count":     len(bedTypes),
	})
}

// GetBedType retrieves a specific bed type by ID
func (h *BedTypeHandler) GetBedType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid bed type ID")
		return
	}

	bedType, err := h.bedTypeService.GetBedType(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, bedType)
}

// GetAvailability evaluates current availability for every bed under the
// bed type, using discharge-date occupancy. Never cached.
func (h *BedTypeHandler) GetAvailability(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid bed type ID")
		return
	}

	bedType, err := h.bedTypeService.GetBedType(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	beds, err := h.availabilityService.BedAvailability(uint(id))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to compute availability")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"bed_type": bedType,
		"beds":     beds,
		"count":    len(beds),
	})
}

// CreateBedType creates a new bed type (admin only)
func (h *BedTypeHandler) CreateBedType(c *gin.Context) {
	var input service.BedTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID, _ := c.Get("userID")

	bedType, err := h.bedTypeService.CreateBedType(input, userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  "Bed type created successfully",
		"bed_type": bedType,
	})
}

// UpdateBedType updates an existing bed type (admin only)
func (h *BedTypeHandler) UpdateBedType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid bed type ID")
		return
	}

	var input service.BedTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID, _ := c.Get("userID")

	bedType, err := h.bedTypeService.UpdateBedType(uint(id), input, userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  "Bed type updated successfully",
		"bed_type": bedType,
	})
}

// DeleteBedType removes a bed type (admin only)
func (h *BedTypeHandler) DeleteBedType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid bed type ID")
		return
	}

	userID, _ := c.Get("userID")

	if err := h.bedTypeService.DeleteBedType(uint(id), userID.(uint)); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Bed type deleted successfully")
}

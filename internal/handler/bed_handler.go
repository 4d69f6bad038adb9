package handler

import (
	"net/http"
	"strconv"

	"hospital-bed-backend/internal/service"
	"hospital-bed-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BedHandler struct {
	bedService          *service.BedService
	availabilityService *service.AvailabilityService
}

func NewBedHandler(
	bedService *service.BedService,
	availabilityService *service.AvailabilityService,
) *BedHandler {
	return &BedHandler{
		bedService:          bedService,
		availabilityService: availabilityService,
	}
}

// ListBeds retrieves all beds, optionally filtered by ?bed_type_id=
func (h *BedHandler) ListBeds(c *gin.Context) {
	bedTypeID, err := optionalUintQuery(c, "bed_type_id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid bed_type_id")
		return
	}

	beds, err := h.bedService.ListBeds(bedTypeID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch beds")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"beds":  beds,
		"count": len(beds),
	})
}

// GetBed retrieves a specific bed by ID
func (h *BedHandler) GetBed(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid bed ID")
		return
	}

	bed, err := h.bedService.GetBed(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, bed)
}

// CreateBed creates a new bed (admin only)
func (h *BedHandler) CreateBed(c *gin.Context) {
	var input service.BedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID, _ := c.Get("userID")

	bed, err := h.bedService.CreateBed(input, userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Bed created successfully",
		"bed":     bed,
	})
}

// UpdateBed updates an existing bed (admin only)
func (h *BedHandler) UpdateBed(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid bed ID")
		return
	}

	var input service.BedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID, _ := c.Get("userID")

	bed, err := h.bedService.UpdateBed(uint(id), input, userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Bed updated successfully",
		"bed":     bed,
	})
}

// DeleteBed removes a bed (admin only)
func (h *BedHandler) DeleteBed(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid bed ID")
		return
	}

	userID, _ := c.Get("userID")

	if err := h.bedService.DeleteBed(uint(id), userID.(uint)); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Bed deleted successfully")
}

// AutoSelectBed returns the first free bed in list order, optionally
// restricted by ?bed_type_id=. An empty selection is advisory: the response
// carries a warning instead of an error.
func (h *BedHandler) AutoSelectBed(c *gin.Context) {
	bedTypeID, err := optionalUintQuery(c, "bed_type_id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid bed_type_id")
		return
	}

	bed, err := h.availabilityService.AutoSelectBed(bedTypeID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to select bed")
		return
	}

	if bed == nil {
		utils.SuccessResponse(c, gin.H{
			"bed":     nil,
			"warning": "No available beds for the selected criteria",
		})
		return
	}

	utils.SuccessResponse(c, gin.H{"bed": bed})
}

// optionalUintQuery parses an optional unsigned integer query parameter
func optionalUintQuery(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, err
	}
	value := uint(parsed)
	return &value, nil
}

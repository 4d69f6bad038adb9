package handler

import (
	"net/http"
	"strconv"

	"hospital-bed-backend/internal/service"
	"hospital-bed-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patientService *service.PatientService
	assignService  *service.BedAssignService
}

func NewPatientHandler(
	patientService *service.PatientService,
	assignService *service.BedAssignService,
) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
		assignService:  assignService,
	}
}

// ListPatients retrieves all patients for the patient selector
func (h *PatientHandler) ListPatients(c *gin.Context) {
	patients, err := h.patientService.ListPatients()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch patients")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"patients": patients,
		"count":    len(patients),
	})
}

// GetPatient retrieves a specific patient by ID
func (h *PatientHandler) GetPatient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	patient, err := h.patientService.GetPatient(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, patient)
}

// GetAdmissionNumber returns the patient's current IPD number, used to
// auto-populate the assignment form
func (h *PatientHandler) GetAdmissionNumber(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	ipdNo, err := h.assignService.GetAdmissionNumber(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"ipd_no": ipdNo})
}

// CreatePatient creates a new patient (admin only)
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var input service.PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID, _ := c.Get("userID")

	patient, err := h.patientService.CreatePatient(input, userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Patient created successfully",
		"patient": patient,
	})
}

package handler

import (
	"net/http"

	"github.com/MichaelOwusu007/vdlpro/internal/apierror"
	"github.com/MichaelOwusu007/vdlpro/internal/config"
	"github.com/MichaelOwusu007/vdlpro/internal/dto"
	"github.com/MichaelOwusu007/vdlpro/internal/infra"
	"github.com/MichaelOwusu007/vdlpro/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const defaultDistanceKm = 10

type ShipmentsHandler struct {
	svc service.ShipmentService
	cfg *config.Config
}

func NewShipmentsHandler(svc service.ShipmentService, cfg *config.Config) *ShipmentsHandler {
	return &ShipmentsHandler{svc: svc, cfg: cfg}
}

func (h *ShipmentsHandler) List(c *gin.Context) {
	shipments, err := h.svc.Shipments(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipments)
}

func (h *ShipmentsHandler) Get(c *gin.Context) {
	shipment, err := h.svc.Shipment(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipment)
}

func (h *ShipmentsHandler) Create(c *gin.Context) {
	var req dto.CreateShipmentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	shipment, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shipment)
}

func (h *ShipmentsHandler) Update(c *gin.Context) {
	var req dto.UpdateShipmentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	shipment, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipment)
}

func (h *ShipmentsHandler) SetStatus(c *gin.Context) {
	var req dto.SetShipmentStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	shipment, err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipment)
}

func (h *ShipmentsHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *ShipmentsHandler) Carriers(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Carriers())
}

// Quote prices a hypothetical shipment without creating one.
// Distance defaults to 10 km when omitted.
func (h *ShipmentsHandler) Quote(c *gin.Context) {
	var req dto.ShippingQuoteRequest
	if !bindAndValidate(c, &req) {
		return
	}

	distance := float64(defaultDistanceKm)
	if req.DistanceKm != nil {
		distance = *req.DistanceKm
	}

	cost := h.svc.CalcShippingCost(req.Carrier, req.WeightKg, distance)
	c.JSON(http.StatusOK, dto.ShippingQuoteResponse{Carrier: req.Carrier, Cost: cost})
}

func (h *ShipmentsHandler) Activity(c *gin.Context) {
	entries, err := h.svc.Activity(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// PackingSlip renders the shipment as an A5 PDF and streams it back.
func (h *ShipmentsHandler) PackingSlip(c *gin.Context) {
	shipment, err := h.svc.Shipment(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	path, err := infra.GeneratePackingSlip(shipment, h.cfg.PDFStoragePath)
	if err != nil {
		log.Error().Err(err).Str("shipment_id", shipment.ID).Msg("packing slip generation failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Could not generate packing slip"))
		return
	}

	c.Header("Content-Disposition", "attachment; filename=slip_"+shipment.ID+".pdf")
	c.File(path)
}

package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/pairlink/internal/ctrl"
	"github.com/JMURv/pairlink/internal/dto"
	"github.com/JMURv/pairlink/internal/hdl"
	"github.com/JMURv/pairlink/internal/hdl/http/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) RegisterDeviceRoutes() {
	h.router.Post("/devices/pairing-code", h.generatePairingCode)
	h.router.Post("/devices/connect", h.connectDevice)
	h.router.Get("/devices/{code}", h.getDeviceByCode)
	h.router.Get("/devices/{code}/bundle", h.getDeviceBundle)
}

// generatePairingCode godoc
//
//	@Summary		Issue a pairing code
//	@Description	Creates an unclaimed device and returns its short-lived pairing code
//	@Tags			Device
//	@Produce		json
//	@Success		201	{object}	dto.GeneratePairingCodeResponse
//	@Failure		500	{object}	utils.ErrorResponse	"code allocation exhausted or internal error"
//	@Router			/devices/pairing-code [post]
func (h *Handler) generatePairingCode(w http.ResponseWriter, r *http.Request) {
	res, err := h.ctrl.GeneratePairingCode(r.Context())
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, res)
}

// connectDevice godoc
//
//	@Summary		Redeem a pairing code
//	@Description	Claims the device behind the code for the user owning the phone number
//	@Tags			Device
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.ConnectDeviceRequest	true	"Phone and pairing code"
//	@Success		200		{object}	dto.DeviceResponse
//	@Failure		404		{object}	utils.ErrorResponse	"user or device not found"
//	@Failure		409		{object}	utils.ErrorResponse	"code expired or device claimed by another user"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/devices/connect [post]
func (h *Handler) connectDevice(w http.ResponseWriter, r *http.Request) {
	req := &dto.ConnectDeviceRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.ConnectDevice(r.Context(), req.Phone, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, ctrl.ErrUserNotFound) || errors.Is(err, ctrl.ErrNotFound):
			utils.ErrResponse(w, http.StatusNotFound, err)
		case errors.Is(err, ctrl.ErrCodeExpired) || errors.Is(err, ctrl.ErrAlreadyConnected):
			utils.ErrResponse(w, http.StatusConflict, err)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// getDeviceByCode godoc
//
//	@Summary		Get a device by pairing code
//	@Description	Returns the device projection including its current connection status
//	@Tags			Device
//	@Produce		json
//	@Param			code	path		string	true	"Pairing code"
//	@Success		200		{object}	dto.DeviceResponse
//	@Failure		404		{object}	utils.ErrorResponse	"malformed or unknown code"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/devices/{code} [get]
func (h *Handler) getDeviceByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	res, err := h.ctrl.GetDeviceByCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// getDeviceBundle godoc
//
//	@Summary		Get a device's bundle validity
//	@Description	Returns the validity projection of the device's newest bundle
//	@Tags			Bundle
//	@Produce		json
//	@Param			code	path		string	true	"Pairing code"
//	@Success		200		{object}	dto.BundleStatusResponse
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/devices/{code}/bundle [get]
func (h *Handler) getDeviceBundle(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	res, err := h.ctrl.LoadActiveBundle(r.Context(), code)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

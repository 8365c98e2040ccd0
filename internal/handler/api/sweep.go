package api

import (
	"net/http"

	resdto "rentloop/internal/handler/dto/response"
	"rentloop/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SweepHandler exposes the periodic sweeps to an external scheduler. The
// same code paths run on the in-process cron; triggering one by hand is
// safe because every sweep is idempotent.
type SweepHandler struct {
	sweepUseCase usecase.SweepUseCase
}

func NewSweepHandler(sweepUseCase usecase.SweepUseCase) *SweepHandler {
	return &SweepHandler{
		sweepUseCase: sweepUseCase,
	}
}

// @Summary Run payment reminder sweep
// @Description Deliver due payment reminders and retire stale ones
// @Tags sweeps
// @Produce json
// @Success 200 {object} resdto.SweepReportResponse
// @Failure 401 {object} map[string]string
// @Router /sweeps/payment-reminders [post]
func (h *SweepHandler) PaymentReminders(c *gin.Context) {
	report, err := h.sweepUseCase.RunReminderSweep(c.Request.Context())
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSweepReportRM(report))
}

// @Summary Run auto-cancel sweep
// @Description Cancel confirmed-unpaid bookings whose start date has arrived
// @Tags sweeps
// @Produce json
// @Success 200 {object} resdto.SweepReportResponse
// @Failure 401 {object} map[string]string
// @Router /sweeps/auto-cancel [post]
func (h *SweepHandler) AutoCancel(c *gin.Context) {
	report, err := h.sweepUseCase.RunAutoCancelSweep(c.Request.Context())
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSweepReportRM(report))
}

// @Summary Run refund reminder sweep
// @Description Chase owners who still owe a refund, throttled per booking
// @Tags sweeps
// @Produce json
// @Success 200 {object} resdto.SweepReportResponse
// @Failure 401 {object} map[string]string
// @Router /sweeps/refund-reminders [post]
func (h *SweepHandler) RefundReminders(c *gin.Context) {
	report, err := h.sweepUseCase.RunRefundReminderSweep(c.Request.Context())
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSweepReportRM(report))
}

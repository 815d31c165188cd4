package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"yanails-backend/models"
	"yanails-backend/utils"
)

type OpenDraftInput struct {
	ServiceID string `json:"serviceId" binding:"required,uuid"`
}

// UpdateDraftInput only touches the fields that are present.
type UpdateDraftInput struct {
	Date    *string `json:"date"`
	Time    *string `json:"time"`
	PayFull *bool   `json:"payFull"`
}

type draftResponse struct {
	Open       bool          `json:"open"`
	Draft      *models.Draft `json:"draft,omitempty"`
	Quote      *models.Quote `json:"quote,omitempty"`
	SlotTaken  bool          `json:"slotTaken"`
	Processing bool          `json:"processing"`
}

func (ctl *Controller) draftView() draftResponse {
	resp := draftResponse{Processing: ctl.store.Processing()}
	d, ok := ctl.store.Draft()
	if !ok {
		return resp
	}
	q := d.Quote()
	resp.Open = true
	resp.Draft = &d
	resp.Quote = &q
	resp.SlotTaken = ctl.store.IsSlotTaken(d.Date, d.Time)
	return resp
}

// GetSlots lists the offered times for ?date= (default today) and whether
// each is taken.
func (ctl *Controller) GetSlots(c *gin.Context) {
	date := ctl.store.Today()
	if raw := c.Query("date"); raw != "" {
		d, err := models.ParseDate(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = d
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": ctl.store.AvailableSlots(date),
	})
}

func (ctl *Controller) OpenDraft(c *gin.Context) {
	var input OpenDraftInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if _, err := ctl.store.OpenBooking(uuid.MustParse(input.ServiceID)); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ctl.draftView())
}

func (ctl *Controller) GetDraft(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.draftView())
}

func (ctl *Controller) UpdateDraft(c *gin.Context) {
	var input UpdateDraftInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// parse everything before touching the draft
	var (
		date *models.Date
		tod  *models.TimeOfDay
	)
	if input.Date != nil {
		d, err := models.ParseDate(*input.Date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = &d
	}
	if input.Time != nil {
		t, err := models.ParseTimeOfDay(*input.Time)
		if err != nil || !models.IsOffered(t) {
			utils.RespondWithError(c, http.StatusBadRequest, "Time must be one of the offered slots")
			return
		}
		tod = &t
	}

	if date != nil {
		if err := ctl.store.SetDate(*date); err != nil {
			respondStoreError(c, err)
			return
		}
	}
	if tod != nil {
		if err := ctl.store.SetTime(*tod); err != nil {
			respondStoreError(c, err)
			return
		}
	}
	if input.PayFull != nil {
		if err := ctl.store.SetPaymentOption(*input.PayFull); err != nil {
			respondStoreError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, ctl.draftView())
}

func (ctl *Controller) CloseDraft(c *gin.Context) {
	if err := ctl.store.CloseBooking(); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking closed"})
}

// ConfirmDraft blocks for the payment round-trip. A dropped connection
// cancels the request context, which abandons the payment.
func (ctl *Controller) ConfirmDraft(c *gin.Context) {
	booking, err := ctl.store.ConfirmAndPay(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (ctl *Controller) GetBookings(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.store.Bookings())
}

// CancelBooking always succeeds for a well-formed id, known or not.
func (ctl *Controller) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}
	ctl.store.Cancel(id)
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

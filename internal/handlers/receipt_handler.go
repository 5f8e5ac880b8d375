package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/httpresp"
	"github.com/alanfo18/stcd/internal/middleware"
	ucReceipt "github.com/alanfo18/stcd/internal/usecase/receipt"
)

type ReceiptHandler struct {
	issue    *ucReceipt.IssueReceipt
	receipts *ucReceipt.Receipts
}

func NewReceiptHandler(issue *ucReceipt.IssueReceipt, receipts *ucReceipt.Receipts) *ReceiptHandler {
	return &ReceiptHandler{issue: issue, receipts: receipts}
}

type IssueReceiptRequest struct {
	PaymentID uint   `json:"payment_id" binding:"required"`
	URL       string `json:"url"`
}

func (h *ReceiptHandler) Issue(c *gin.Context) {
	var req IssueReceiptRequest
	if !bindJSON(c, &req) {
		return
	}

	receipt, err := h.issue.Execute(c.Request.Context(), middleware.Actor(c), req.PaymentID, req.URL)
	if err != nil {
		httperr.FromError(c, err, "failed_to_issue_receipt")
		return
	}
	httpresp.Created(c, receipt)
}

func (h *ReceiptHandler) List(c *gin.Context) {
	receipts, err := h.receipts.List(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_receipts")
		return
	}
	httpresp.List(c, receipts)
}

func (h *ReceiptHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	receipt, err := h.receipts.Get(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_get_receipt")
		return
	}
	httpresp.OK(c, receipt)
}

func (h *ReceiptHandler) Sign(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	receipt, err := h.receipts.Sign(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_sign_receipt")
		return
	}
	httpresp.OK(c, receipt)
}

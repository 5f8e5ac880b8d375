package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/httpresp"
	"github.com/alanfo18/stcd/internal/middleware"
	"github.com/alanfo18/stcd/internal/money"
	"github.com/alanfo18/stcd/internal/storage"
	ucPayment "github.com/alanfo18/stcd/internal/usecase/payment"
)

// ======================================================
// HANDLER
// ======================================================

type PaymentHandler struct {
	create    *ucPayment.CreatePayment
	update    *ucPayment.UpdatePayment
	list      *ucPayment.ListPayments
	upload    *ucPayment.UploadProof
	reconcile *ucPayment.ReconcilePayment
}

func NewPaymentHandler(
	create *ucPayment.CreatePayment,
	update *ucPayment.UpdatePayment,
	list *ucPayment.ListPayments,
	upload *ucPayment.UploadProof,
	reconcile *ucPayment.ReconcilePayment,
) *PaymentHandler {
	return &PaymentHandler{
		create:    create,
		update:    update,
		list:      list,
		upload:    upload,
		reconcile: reconcile,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreatePaymentRequest struct {
	StaffID     uint    `json:"staff_id" binding:"required"`
	BookingID   *uint   `json:"booking_id"`
	Amount      int64   `json:"amount"`
	PaidAt      string  `json:"paid_at" binding:"required"`
	Method      string  `json:"method" binding:"required"`
	Status      *string `json:"status"`
	Description string  `json:"description"`
	ProofRef    string  `json:"proof_ref"`
}

type UpdatePaymentRequest struct {
	Amount      *int64  `json:"amount"`
	PaidAt      *string `json:"paid_at"`
	Method      *string `json:"method"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
	ProofRef    *string `json:"proof_ref"`
}

type ExtractAmountRequest struct {
	Text string `json:"text" binding:"required"`
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.create.Execute(c.Request.Context(), ucPayment.CreatePaymentInput{
		Actor:       middleware.Actor(c),
		StaffID:     req.StaffID,
		BookingID:   req.BookingID,
		Amount:      req.Amount,
		PaidAt:      req.PaidAt,
		Method:      req.Method,
		Status:      req.Status,
		Description: req.Description,
		ProofRef:    req.ProofRef,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_payment")
		return
	}

	httpresp.Created(c, payment)
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.update.Execute(c.Request.Context(), ucPayment.UpdatePaymentInput{
		Actor:       middleware.Actor(c),
		ID:          id,
		Amount:      req.Amount,
		PaidAt:      req.PaidAt,
		Method:      req.Method,
		Status:      req.Status,
		Description: req.Description,
		ProofRef:    req.ProofRef,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_update_payment")
		return
	}
	httpresp.OK(c, payment)
}

// ======================================================
// QUERIES
// ======================================================

func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.list.Execute(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_payments")
		return
	}
	httpresp.List(c, payments)
}

func (h *PaymentHandler) ListForStaff(c *gin.Context) {
	staffID, ok := paramID(c, "id")
	if !ok {
		return
	}

	payments, err := h.list.ForStaff(c.Request.Context(), middleware.Actor(c), staffID)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_payments")
		return
	}
	httpresp.List(c, payments)
}

func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	payment, err := h.list.Get(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_get_payment")
		return
	}
	httpresp.OK(c, payment)
}

// ======================================================
// PROOF FILES
// ======================================================

// UploadProof recebe multipart/form-data com o campo "file".
func (h *PaymentHandler) UploadProof(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "Arquivo inválido.")
		return
	}
	if header.Size > storage.MaxProofBytes {
		httperr.BadRequest(c, "invalid_file", "Arquivo excede 10MB.")
		return
	}

	f, err := header.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "Arquivo inválido.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, storage.MaxProofBytes+1))
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "Arquivo inválido.")
		return
	}

	proof, err := h.upload.Execute(c.Request.Context(), middleware.Actor(c), id, header.Filename, data)
	if err != nil {
		httperr.FromError(c, err, "failed_to_upload_proof")
		return
	}
	httpresp.Created(c, proof)
}

func (h *PaymentHandler) ListProofs(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	files, err := h.list.Proofs(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_proofs")
		return
	}
	httpresp.List(c, files)
}

// ======================================================
// GATEWAY / OCR
// ======================================================

func (h *PaymentHandler) Reconcile(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	res, err := h.reconcile.Execute(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_reconcile_payment")
		return
	}
	httpresp.OK(c, res)
}

// ExtractAmount recebe o texto do OCR feito no cliente e devolve o valor em centavos.
func (h *PaymentHandler) ExtractAmount(c *gin.Context) {
	var req ExtractAmountRequest
	if !bindJSON(c, &req) {
		return
	}

	cents, found := money.ExtractAmount(req.Text)
	if !found {
		httperr.FromError(c, httperr.ErrValidation("amount_not_found"), "failed_to_extract_amount")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"amount":    cents,
		"formatted": money.FormatBRL(cents),
	})
}

package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	service "github.com/kchowhan/propvestor-sub002/internal/services/reconciliation"
	"github.com/kchowhan/propvestor-sub002/internal/statement"
)

const dateLayout = "2006-01-02"

type ReconciliationHandler struct {
	service       *service.ReconciliationService
	defaultSource string
}

func NewReconciliationHandler(s *service.ReconciliationService, defaultSource string) *ReconciliationHandler {
	return &ReconciliationHandler{service: s, defaultSource: defaultSource}
}

func (h *ReconciliationHandler) source(requested string) string {
	if requested != "" {
		return requested
	}
	return h.defaultSource
}

// writeError maps service errors onto status codes.
func writeError(c *gin.Context, err error) {
	var verr *service.ValidationError
	var perr *statement.ParseError
	switch {
	case errors.As(err, &verr), errors.As(err, &perr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// parseRange reads YYYY-MM-DD bounds. The end date covers its whole day.
func parseRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid start_date format, expected yyyy-mm-dd")
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid end_date format, expected yyyy-mm-dd")
	}
	return start, end.Add(24*time.Hour - time.Millisecond), nil
}

func parseReconciledFilter(c *gin.Context) (*bool, error) {
	raw := c.Query("reconciled")
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.New("invalid reconciled filter, expected true or false")
	}
	return &v, nil
}

func (h *ReconciliationHandler) RecordPayment(c *gin.Context) {
	var payload service.PaymentInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	payment, err := h.service.RecordPayment(c.Request.Context(), c.Param("orgId"), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "payment recorded", "payment": payment})
}

func (h *ReconciliationHandler) ListPayments(c *gin.Context) {
	start, end, err := parseRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reconciled, err := parseReconciledFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := h.service.ListPayments(c.Request.Context(), c.Param("orgId"), start, end, reconciled)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *ReconciliationHandler) ImportTransactions(c *gin.Context) {
	var payload struct {
		Source       string                     `json:"source"`
		Transactions []service.TransactionInput `json:"transactions" binding:"required,dive"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	result, err := h.service.ImportBankTransactions(c.Request.Context(), c.Param("orgId"), payload.Transactions, h.source(payload.Source))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UploadStatement imports a CSV statement sent as the multipart "file" field.
func (h *ReconciliationHandler) UploadStatement(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	defer file.Close()

	result, err := h.service.ImportStatement(c.Request.Context(), c.Param("orgId"), file, h.source(c.PostForm("source")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"file":       header.Filename,
		"imported":   result.Imported,
		"duplicates": result.Duplicates,
	})
}

func (h *ReconciliationHandler) ListTransactions(c *gin.Context) {
	start, end, err := parseRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reconciled, err := parseReconciledFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := h.service.ListBankTransactions(c.Request.Context(), c.Param("orgId"), start, end, reconciled)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type rangePayload struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

func (h *ReconciliationHandler) AutoMatch(c *gin.Context) {
	var payload rangePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	start, end, err := parseRange(payload.StartDate, payload.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.AutoMatchPayments(c.Request.Context(), c.Param("orgId"), start, end)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ReconciliationHandler) CreateReconciliation(c *gin.Context) {
	var payload rangePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	start, end, err := parseRange(payload.StartDate, payload.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.CreateReconciliation(c.Request.Context(), c.Param("orgId"), start, end)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *ReconciliationHandler) ListReconciliations(c *gin.Context) {
	items, err := h.service.ListReconciliations(c.Request.Context(), c.Param("orgId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *ReconciliationHandler) ListSuggestedMatches(c *gin.Context) {
	items, err := h.service.ListSuggestedMatches(c.Request.Context(), c.Param("orgId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *ReconciliationHandler) GetReconciliation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reconciliation ID"})
		return
	}

	rec, err := h.service.GetReconciliation(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *ReconciliationHandler) ManualMatch(c *gin.Context) {
	recID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reconciliation ID"})
		return
	}

	var payload struct {
		PaymentID         string `json:"payment_id"`
		BankTransactionID string `json:"bank_transaction_id"`
		PerformedBy       string `json:"performed_by"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	paymentID, err := uuid.Parse(payload.PaymentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment ID"})
		return
	}
	txID, err := uuid.Parse(payload.BankTransactionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bank transaction ID"})
		return
	}

	if err := h.service.ManualMatch(c.Request.Context(), recID, paymentID, txID, payload.PerformedBy); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "transaction manually matched"})
}

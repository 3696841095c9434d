package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/solforge/fairmint/internal/api/shared/constants"
	"github.com/solforge/fairmint/internal/api/shared/dto"
	"github.com/solforge/fairmint/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetPrice returns the current USD price of a mint
	// GET /api/v1/prices/:mint
	GetPrice(c *gin.Context)

	// IssueQuote issues a burn quote and holds its USD value against the caps
	// POST /api/v1/quotes
	IssueQuote(c *gin.Context)

	// CancelQuote releases an open quote of the wallet
	// DELETE /api/v1/quotes/:quote_id?wallet=<address>
	CancelQuote(c *gin.Context)

	// SettleBurn records a burn transaction against a quote
	// POST /api/v1/burns
	SettleBurn(c *gin.Context)

	// GetActiveEvent retrieves the active event
	// GET /api/v1/events/active
	GetActiveEvent(c *gin.Context)

	// GetEvent retrieves an event with its totals
	// GET /api/v1/events/:event_id
	GetEvent(c *gin.Context)

	// ListEventTokens retrieves the accepted tokens of an event with their burn stats
	// GET /api/v1/events/:event_id/tokens
	ListEventTokens(c *gin.Context)

	// ListAllocations retrieves the leaderboard of an event
	// GET /api/v1/events/:event_id/allocations?limit=<limit>&offset=<offset>
	ListAllocations(c *gin.Context)

	// GetAllocation retrieves the allocation of a wallet
	// GET /api/v1/events/:event_id/allocations/:wallet
	GetAllocation(c *gin.Context)

	// GetClaimable computes what a wallet can claim now
	// GET /api/v1/events/:event_id/allocations/:wallet/claimable
	GetClaimable(c *gin.Context)

	// Claim records a claim of a tranche
	// POST /api/v1/events/:event_id/claims
	Claim(c *gin.Context)

	// FinalizeEvent finalizes an event (requires authentication)
	// POST /api/v1/events/:event_id/finalize
	FinalizeEvent(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

func (h *handler) GetPrice(c *gin.Context) {
	mint := c.Param("mint")

	price, err := h.executor.GetPrice(c.Request.Context(), mint)
	if err != nil {
		respondError(c, err, zap.String("mint", mint))
		return
	}

	c.JSON(http.StatusOK, price)
}

func (h *handler) IssueQuote(c *gin.Context) {
	var req dto.IssueQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	quote, err := h.executor.IssueQuote(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, zap.String("wallet", req.Wallet), zap.String("mint", req.Mint))
		return
	}

	c.JSON(http.StatusCreated, quote)
}

func (h *handler) CancelQuote(c *gin.Context) {
	quoteID := c.Param("quote_id")
	wallet := c.Query("wallet")
	if wallet == "" {
		respondBadRequest(c, "wallet is required")
		return
	}

	quote, err := h.executor.CancelQuote(c.Request.Context(), quoteID, wallet)
	if err != nil {
		respondError(c, err, zap.String("quoteID", quoteID))
		return
	}

	c.JSON(http.StatusOK, quote)
}

func (h *handler) SettleBurn(c *gin.Context) {
	var req dto.SettleBurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	burn, err := h.executor.SettleBurn(c.Request.Context(), req)
	if err != nil {
		respondError(c, err,
			zap.String("quoteID", req.QuoteID),
			zap.String("signature", req.TransactionSignature))
		return
	}

	c.JSON(http.StatusOK, burn)
}

func (h *handler) GetActiveEvent(c *gin.Context) {
	event, err := h.executor.GetActiveEvent(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if event == nil {
		respondNotFound(c, "No active event")
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *handler) GetEvent(c *gin.Context) {
	eventID, err := parseEventID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	event, err := h.executor.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, err, zap.Uint64("eventID", eventID))
		return
	}
	if event == nil {
		respondNotFound(c, "Event not found")
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *handler) ListEventTokens(c *gin.Context) {
	eventID, err := parseEventID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	tokens, err := h.executor.ListEventTokens(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, err, zap.Uint64("eventID", eventID))
		return
	}

	c.JSON(http.StatusOK, tokens)
}

func (h *handler) ListAllocations(c *gin.Context) {
	eventID, err := parseEventID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	queryParams, err := ParseListAllocationsQuery(c)
	if err != nil {
		respondValidationError(c, err)
		return
	}
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	allocations, err := h.executor.ListAllocations(c.Request.Context(), eventID, &queryParams.Limit, &queryParams.Offset)
	if err != nil {
		respondError(c, err, zap.Uint64("eventID", eventID))
		return
	}

	c.JSON(http.StatusOK, allocations)
}

func (h *handler) GetAllocation(c *gin.Context) {
	eventID, err := parseEventID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	wallet := c.Param("wallet")

	allocation, err := h.executor.GetAllocation(c.Request.Context(), eventID, wallet)
	if err != nil {
		respondError(c, err, zap.Uint64("eventID", eventID), zap.String("wallet", wallet))
		return
	}
	if allocation == nil {
		respondNotFound(c, "Allocation not found")
		return
	}

	c.JSON(http.StatusOK, allocation)
}

func (h *handler) GetClaimable(c *gin.Context) {
	eventID, err := parseEventID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	wallet := c.Param("wallet")

	claimable, err := h.executor.GetClaimable(c.Request.Context(), eventID, wallet)
	if err != nil {
		respondError(c, err, zap.Uint64("eventID", eventID), zap.String("wallet", wallet))
		return
	}

	c.JSON(http.StatusOK, claimable)
}

func (h *handler) Claim(c *gin.Context) {
	eventID, err := parseEventID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	claim, err := h.executor.Claim(c.Request.Context(), eventID, req)
	if err != nil {
		respondError(c, err, zap.Uint64("eventID", eventID), zap.String("wallet", req.Wallet))
		return
	}

	c.JSON(http.StatusCreated, claim)
}

func (h *handler) FinalizeEvent(c *gin.Context) {
	eventID, err := parseEventID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.executor.FinalizeEvent(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, err, zap.Uint64("eventID", eventID))
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": constants.SERVICE_NAME,
	})
}

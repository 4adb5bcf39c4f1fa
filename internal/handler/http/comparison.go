package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cmlabs-hris/device-benefit-calculator/internal/domain/comparison"
	"github.com/cmlabs-hris/device-benefit-calculator/internal/domain/tax"
	"github.com/cmlabs-hris/device-benefit-calculator/internal/handler/http/response"
	"github.com/cmlabs-hris/device-benefit-calculator/internal/pkg/validator"
)

const maxRequestBodyBytes = 1 << 20

type ComparisonHandler interface {
	// Comparison
	Compare(w http.ResponseWriter, r *http.Request)
	CompareQuery(w http.ResponseWriter, r *http.Request)

	// Tax
	ComputeTax(w http.ResponseWriter, r *http.Request)
	ComputeTaxQuery(w http.ResponseWriter, r *http.Request)
	GetSchedule(w http.ResponseWriter, r *http.Request)
}

type comparisonHandlerImpl struct {
	comparisonService comparison.ComparisonService
}

func NewComparisonHandler(comparisonService comparison.ComparisonService) ComparisonHandler {
	return &comparisonHandlerImpl{comparisonService: comparisonService}
}

// decodeBody reads an optional JSON body. An empty body leaves dst untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", comparison.ErrInvalidRequestBody, err)
	}
	return nil
}

func wantsDisplay(r *http.Request) bool {
	return r.URL.Query().Get("format") == "inr"
}

// ========== COMPARISON ==========

// Compare handles POST /comparisons
func (h *comparisonHandlerImpl) Compare(w http.ResponseWriter, r *http.Request) {
	var req comparison.CompareRequest
	if err := decodeBody(w, r, &req); err != nil {
		response.HandleError(w, err)
		return
	}
	req.WithDisplay = wantsDisplay(r)

	response.Success(w, h.comparisonService.Compare(r.Context(), req))
}

// CompareQuery handles GET /comparisons?gross_salary=&device_price=
func (h *comparisonHandlerImpl) CompareQuery(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := comparison.CompareRequest{
		GrossAnnualSalary: validator.NewAmount(validator.ParseAmount(query.Get("gross_salary"))),
		DevicePrice:       validator.NewAmount(validator.ParseAmount(query.Get("device_price"))),
		WithDisplay:       wantsDisplay(r),
	}

	response.Success(w, h.comparisonService.Compare(r.Context(), req))
}

// ========== TAX ==========

// ComputeTax handles POST /tax
func (h *comparisonHandlerImpl) ComputeTax(w http.ResponseWriter, r *http.Request) {
	var req tax.TaxRequest
	if err := decodeBody(w, r, &req); err != nil {
		response.HandleError(w, err)
		return
	}
	req.WithDisplay = wantsDisplay(r)

	response.Success(w, h.comparisonService.ComputeTax(r.Context(), req))
}

// ComputeTaxQuery handles GET /tax?income=
func (h *comparisonHandlerImpl) ComputeTaxQuery(w http.ResponseWriter, r *http.Request) {
	req := tax.TaxRequest{
		AnnualIncome: validator.NewAmount(validator.ParseAmount(r.URL.Query().Get("income"))),
		WithDisplay:  wantsDisplay(r),
	}

	response.Success(w, h.comparisonService.ComputeTax(r.Context(), req))
}

// GetSchedule handles GET /schedule
func (h *comparisonHandlerImpl) GetSchedule(w http.ResponseWriter, r *http.Request) {
	resp, err := h.comparisonService.GetSchedule(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

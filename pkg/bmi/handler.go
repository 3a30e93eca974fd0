/*
Copyright © 2025 Soma Health Authors
SPDX-License-Identifier: Apache-2.0
*/
package bmi

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/somahealth/soma/pkg/errors"
	"github.com/somahealth/soma/pkg/serializer"
)

// Query parameter names for the BMI endpoint.
const (
	QueryParamHeight = "height"
	QueryParamWeight = "weight"
	QueryParamUnit   = "unit"
)

// Handler serves BMI computation requests over HTTP.
type Handler struct{}

// NewHandler creates a new BMI request handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Handle responds to GET /v1/bmi?height=1.75&weight=70[&unit=m|cm].
// Invalid input yields 400 with a structured error body; the engine itself
// never writes to the response.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		slog.Error("method not allowed", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	m, err := ParseQuery(r.URL.Query())
	if err != nil {
		slog.Error("failed to parse bmi query", "error", err)
		http.Error(w, fmt.Sprintf("Bad Request: %v", err), http.StatusBadRequest)
		return
	}

	res, err := Compute(m)
	if err != nil {
		// Compute only fails on input the parser let through (e.g. overflow
		// to +Inf), so this is still the client's error.
		slog.Error("failed to compute bmi", "error", err)
		http.Error(w, fmt.Sprintf("Bad Request: %v", err), http.StatusBadRequest)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, res)
}

// ParseQuery extracts and validates a Measurement from URL query parameters.
func ParseQuery(values url.Values) (Measurement, error) {
	height, err := parseFloatParam(values, QueryParamHeight)
	if err != nil {
		return Measurement{}, err
	}
	weight, err := parseFloatParam(values, QueryParamWeight)
	if err != nil {
		return Measurement{}, err
	}

	unit := UnitMeters
	if u := strings.ToLower(strings.TrimSpace(values.Get(QueryParamUnit))); u != "" {
		unit = HeightUnit(u)
	}

	return NewMeasurement(height, weight, unit)
}

func parseFloatParam(values url.Values, name string) (float64, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return 0, errors.Newf(errors.ErrCodeInvalidInput, "missing required parameter %q", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput,
			fmt.Sprintf("parameter %q is not a number: %q", name, raw), err)
	}
	return v, nil
}

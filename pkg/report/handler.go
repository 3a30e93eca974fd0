/*
Copyright © 2025 Soma Health Authors
SPDX-License-Identifier: Apache-2.0
*/
package report

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/somahealth/soma/pkg/bmi"
	"github.com/somahealth/soma/pkg/errors"
	"github.com/somahealth/soma/pkg/serializer"
)

// Query parameter names for the report endpoint. Height and weight reuse the
// BMI endpoint's parameter names.
const (
	QueryParamAge      = "age"
	QueryParamSex      = "sex"
	QueryParamActivity = "activity"
)

// Handler serves health report requests over HTTP.
type Handler struct{}

// NewHandler creates a new report request handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Handle responds to
// GET /v1/report?height=1.75&weight=70&age=30&sex=female[&activity=light][&unit=m|cm].
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		slog.Error("method not allowed", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	s, err := ParseQuery(r.URL.Query())
	if err != nil {
		slog.Error("failed to parse report query", "error", err)
		http.Error(w, fmt.Sprintf("Bad Request: %v", err), http.StatusBadRequest)
		return
	}

	rep, err := Build(s)
	if err != nil {
		slog.Error("failed to build report", "error", err)
		http.Error(w, fmt.Sprintf("Bad Request: %v", err), http.StatusBadRequest)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, rep)
}

// ParseQuery extracts and validates a Subject from URL query parameters.
// Activity defaults to light when omitted, matching the CLI default.
func ParseQuery(values url.Values) (Subject, error) {
	m, err := bmi.ParseQuery(values)
	if err != nil {
		return Subject{}, err
	}

	rawAge := strings.TrimSpace(values.Get(QueryParamAge))
	if rawAge == "" {
		return Subject{}, errors.Newf(errors.ErrCodeInvalidInput,
			"missing required parameter %q", QueryParamAge)
	}
	age, err := strconv.Atoi(rawAge)
	if err != nil {
		return Subject{}, errors.Wrap(errors.ErrCodeInvalidInput,
			fmt.Sprintf("parameter %q is not an integer: %q", QueryParamAge, rawAge), err)
	}

	sex := Sex(strings.ToLower(strings.TrimSpace(values.Get(QueryParamSex))))

	activity := ActivityLight
	if a := strings.ToLower(strings.TrimSpace(values.Get(QueryParamActivity))); a != "" {
		activity = ActivityLevel(a)
	}

	s := Subject{
		Measurement: m,
		Age:         age,
		Sex:         sex,
		Activity:    activity,
	}
	if err := s.Validate(); err != nil {
		return Subject{}, err
	}
	return s, nil
}

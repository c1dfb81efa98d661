// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	cnserrors "github.com/NVIDIA/ingredi/pkg/errors"
	"github.com/NVIDIA/ingredi/pkg/serializer"
)

// ErrorResponse is the body of every error returned by the server.
type ErrorResponse struct {
	Code      string         `json:"code" yaml:"code"`
	Message   string         `json:"message" yaml:"message"`
	Details   map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	RequestID string         `json:"requestId" yaml:"requestId"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	Retryable bool           `json:"retryable" yaml:"retryable"`
}

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code cnserrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestID(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteRequestError reports a request whose query or body could not be
// decoded. A body cut off by the size limit is answered with 413, anything
// else with 400 and message.
func WriteRequestError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		bodyLimitRejects.Inc()
		WriteError(w, r, http.StatusRequestEntityTooLarge, cnserrors.ErrCodeInvalidRequest,
			"Request body too large", false, map[string]any{"limit": tooLarge.Limit})
		return
	}

	WriteError(w, r, http.StatusBadRequest, cnserrors.ErrCodeInvalidRequest, message, false,
		map[string]any{"error": err.Error()})
}

// WriteErrorFromErr writes an error response derived from err. A
// StructuredError supplies the code, message and context; any other error is
// reported as INTERNAL with fallbackMessage. The cause, if any, is added to
// the details under "error".
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extraDetails map[string]any) {
	var se *cnserrors.StructuredError
	if !stderrors.As(err, &se) {
		details := mergeDetails(extraDetails, map[string]any{"error": err.Error()})
		WriteError(w, r, http.StatusInternalServerError, cnserrors.ErrCodeInternal,
			fallbackMessage, true, details)
		return
	}

	details := mergeDetails(se.Context, extraDetails)
	if se.Cause != nil {
		details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
	}

	WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message,
		retryableFromCode(se.Code), details)
}

// HTTPStatusFromCode maps an error code to an HTTP status.
func HTTPStatusFromCode(code cnserrors.ErrorCode) int {
	switch code {
	case cnserrors.ErrCodeInvalidRequest, cnserrors.ErrCodeMalformedNumber,
		cnserrors.ErrCodeAmbiguousUnit, cnserrors.ErrCodeIncompatibleUnits,
		cnserrors.ErrCodeUnknownUnit:
		return http.StatusBadRequest
	case cnserrors.ErrCodeNotFound:
		return http.StatusNotFound
	case cnserrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case cnserrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case cnserrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case cnserrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code cnserrors.ErrorCode) bool {
	switch code {
	case cnserrors.ErrCodeTimeout, cnserrors.ErrCodeUnavailable,
		cnserrors.ErrCodeRateLimitExceeded, cnserrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns the union of a and b, b winning on conflicts, or nil
// when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

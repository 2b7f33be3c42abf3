package handler

import (
	"encoding/json"
	"net/http"
)

// JSONResponse is the standard JSON response envelope.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON creates a 200 response with v under "data".
func JSON(v any) Response {
	return jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
}

// JSONError creates an error response. HTTPError values keep their status
// code and key; other errors become 500 internal_error.
func JSONError(err error) Response {
	if httpErr, ok := err.(HTTPError); ok {
		return jsonResponse{
			status: httpErr.Code,
			body: JSONResponse{Error: &ErrorDetail{
				Code:    httpErr.Key,
				Message: http.StatusText(httpErr.Code),
			}},
		}
	}
	return jsonResponse{
		status: http.StatusInternalServerError,
		body: JSONResponse{Error: &ErrorDetail{
			Code:    "internal_error",
			Message: err.Error(),
		}},
	}
}

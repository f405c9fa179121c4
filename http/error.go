package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fwojciec/documind"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	documind.EINVALID:      http.StatusBadRequest,
	documind.EFETCH:        http.StatusBadRequest,
	documind.EEXTRACT:      http.StatusBadRequest,
	documind.EUNSUPPORTED:  http.StatusBadRequest,
	documind.EIDENTITY:     http.StatusBadRequest,
	documind.EUNAUTHORIZED: http.StatusUnauthorized,
	documind.ENOTFOUND:     http.StatusNotFound,
	documind.EINTERNAL:     http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// errorResponse is the JSON envelope for failed requests.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Error writes err as a JSON envelope with the mapped status code. Internal
// errors are logged and their details are not sent to the client.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := documind.ErrorCode(err), documind.ErrorMessage(err)
	if code == documind.EINTERNAL {
		s.logger().ErrorContext(r.Context(), "request failed",
			"method", r.Method, "path", r.URL.Path, "err", err)
	}
	writeJSON(w, ErrorStatusCode(code), &errorResponse{Error: message, Details: code})
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads the request body into v.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return documind.Errorf(documind.EINVALID, "Invalid JSON body")
	}
	return nil
}

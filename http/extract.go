package http

import (
	"net/http"

	"github.com/fwojciec/documind"
)

func (s *Server) handleProcessURL(w http.ResponseWriter, r *http.Request) {
	var req documind.ExtractionRequest
	if err := decodeJSON(r, &req); err != nil {
		s.Error(w, r, err)
		return
	}

	doc, err := s.URLProcessor.ProcessURL(r.Context(), req)
	if err != nil {
		if documind.ErrorCode(err) != documind.EINVALID {
			s.logger().ErrorContext(r.Context(), "process url", "url", req.URL, "err", err)
		}
		s.Error(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleProcessURLMethod(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"message": "This endpoint requires the POST method",
	})
}

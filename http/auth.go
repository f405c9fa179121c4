package http

import (
	"net/http"

	"github.com/fwojciec/documind"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req documind.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.Error(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, &errorResponse{Error: documind.ErrorMessage(err)})
		return
	}

	result, err := s.Authenticator.Authenticate(r.Context(), req)
	if err != nil {
		s.logger().ErrorContext(r.Context(), "login", "provider", req.Provider, "err", err)
		writeJSON(w, http.StatusBadRequest, &errorResponse{
			Error:   "Authentication failed",
			Details: documind.ErrorMessage(err),
		})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleMe returns the user named by the session token. A token whose user
// has since been removed is unauthorized.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	user, err := s.Users.FindUserByID(r.Context(), claims.UserID)
	if documind.ErrorCode(err) == documind.ENOTFOUND {
		err = documind.Errorf(documind.EUNAUTHORIZED, "User not found")
	}
	if err != nil {
		s.Error(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    user,
	})
}

package http

import (
	"net/http"
	"strconv"

	"github.com/fwojciec/documind"
)

// saveDocumentRequest is the body of a save-document call. A client-supplied
// word count is not accepted.
type saveDocumentRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	OriginalURL string `json:"original_url"`
}

func (s *Server) handleSaveDocument(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	var req saveDocumentRequest
	if err := decodeJSON(r, &req); err != nil {
		s.Error(w, r, err)
		return
	}

	doc := &documind.Document{
		UserID:      claims.UserID,
		Title:       req.Title,
		Content:     req.Content,
		OriginalURL: req.OriginalURL,
	}
	if err := doc.Validate(); err != nil {
		s.Error(w, r, err)
		return
	}
	if err := s.Documents.CreateDocument(r.Context(), doc); err != nil {
		s.Error(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":  true,
		"document": doc,
	})
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	q := r.URL.Query()
	filter := documind.DocumentFilter{UserID: claims.UserID}
	if v := q.Get("original_url"); v != "" {
		filter.OriginalURL = &v
	}
	var err error
	if filter.Limit, err = pageParam(q.Get("limit"), "limit"); err != nil {
		s.Error(w, r, err)
		return
	}
	if filter.Offset, err = pageParam(q.Get("offset"), "offset"); err != nil {
		s.Error(w, r, err)
		return
	}

	docs, err := s.Documents.FindDocuments(r.Context(), filter)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	if docs == nil {
		docs = []*documind.Document{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"documents": docs,
		"count":     len(docs),
	})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.findDocument(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"document": doc,
	})
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	id, err := documentID(r)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	if err := s.Documents.DeleteDocument(r.Context(), claims.UserID, id); err != nil {
		s.Error(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Document deleted successfully",
		"deletedId": id,
	})
}

func (s *Server) handleDocumentMarkdown(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.findDocument(w, r)
	if !ok {
		return
	}

	md, err := s.Converter.Convert(doc.Content, doc.OriginalURL)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write([]byte(md))
}

// findDocument loads the owner-scoped document named by the path and writes
// the error response itself on failure.
func (s *Server) findDocument(w http.ResponseWriter, r *http.Request) (*documind.Document, bool) {
	claims := claimsFromContext(r.Context())

	id, err := documentID(r)
	if err != nil {
		s.Error(w, r, err)
		return nil, false
	}
	doc, err := s.Documents.FindDocumentByID(r.Context(), claims.UserID, id)
	if err != nil {
		s.Error(w, r, err)
		return nil, false
	}
	return doc, true
}

// documentID parses the {id} path value as a positive integer.
func documentID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, documind.Errorf(documind.EINVALID, "Invalid document ID")
	}
	return id, nil
}

// pageParam parses an optional non-negative pagination value. Empty means
// zero, which leaves the list unbounded.
func pageParam(v, name string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, documind.Errorf(documind.EINVALID, "Invalid %s", name)
	}
	return n, nil
}

package book

import (
	"errors"
	"fmt"
	"net/http"

	"bookstore/internal/httpx"

	"github.com/rs/zerolog"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type listResponse struct {
	Books []Book `json:"books"`
}

type bookResponse struct {
	Book Book `json:"book"`
}

// Register mounts the book routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("POST /books", h.Create)
	mux.HandleFunc("GET /books/{isbn}", h.GetByISBN)
	mux.HandleFunc("PUT /books/{isbn}", h.Update)
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(w, r, "", err)
		return
	}
	httpx.JSON(w, http.StatusOK, listResponse{Books: books})
}

// GetByISBN handles GET /books/{isbn}
func (h *HTTPHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")
	b, err := h.service.GetByISBN(r.Context(), isbn)
	if err != nil {
		h.writeError(w, r, isbn, err)
		return
	}
	httpx.JSON(w, http.StatusOK, bookResponse{Book: b})
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, err := DecodeCreate(r.Body)
	if err != nil {
		h.writeError(w, r, "", err)
		return
	}
	b, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, in.ISBN, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, bookResponse{Book: b})
}

// Update handles PUT /books/{isbn}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")
	f, err := DecodeUpdate(r.Body)
	if err != nil {
		h.writeError(w, r, isbn, err)
		return
	}
	b, err := h.service.Update(r.Context(), isbn, f)
	if err != nil {
		h.writeError(w, r, isbn, err)
		return
	}
	httpx.JSON(w, http.StatusOK, bookResponse{Book: b})
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, isbn string, err error) {
	var verr *ValidationError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &verr):
		httpx.JSONErrors(w, http.StatusBadRequest, verr.Messages)
	case errors.As(err, &maxErr):
		httpx.JSONError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request body must not exceed %d bytes", maxErr.Limit))
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, fmt.Sprintf("book with isbn '%s' not found", isbn))
	case errors.Is(err, ErrConflict):
		httpx.JSONError(w, http.StatusConflict, fmt.Sprintf("book with isbn '%s' already exists", isbn))
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("book request failed")
		httpx.JSONError(w, http.StatusInternalServerError, "internal server error")
	}
}

package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BoardRequest struct {
	Name        string  `json:"name" validate:"min=1,max=255" message:"Name must be between 1 and 255 characters"`
	Description *string `json:"description"`
}

// boardPath resolves the caller and the org_id path variable shared by all
// board routes.
func (h *Handlers) boardPath(r *http.Request) (userID, orgID uuid.UUID, err error) {
	if userID, err = UserIDFromContext(r.Context()); err != nil {
		return
	}
	orgID, err = pathUUID(r, "org_id")
	return
}

func (h *Handlers) ListBoards(w http.ResponseWriter, r *http.Request) {
	userID, orgID, err := h.boardPath(r)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	boards, err := h.BoardService.List(r.Context(), orgID, userID)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	response := make([]BoardResponse, 0, len(boards))
	for _, b := range boards {
		response = append(response, toBoardListResponse(b))
	}

	writeSuccess(w, response, http.StatusOK)
}

func (h *Handlers) CreateBoard(w http.ResponseWriter, r *http.Request) {
	userID, orgID, err := h.boardPath(r)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	var req BoardRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	board, err := h.BoardService.Create(r.Context(), orgID, userID, req.Name, req.Description)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeSuccess(w, toBoardResponse(board), http.StatusCreated)
}

func (h *Handlers) GetBoard(w http.ResponseWriter, r *http.Request) {
	userID, orgID, err := h.boardPath(r)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	board, err := h.BoardService.GetBySlug(r.Context(), orgID, userID, mux.Vars(r)["slug"])
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeSuccess(w, toBoardResponse(board), http.StatusOK)
}

func (h *Handlers) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	userID, orgID, err := h.boardPath(r)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	var req BoardRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	board, err := h.BoardService.Update(r.Context(), orgID, userID, mux.Vars(r)["slug"], req.Name, req.Description)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeSuccess(w, toBoardResponse(board), http.StatusOK)
}

func (h *Handlers) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	userID, orgID, err := h.boardPath(r)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	if err := h.BoardService.Delete(r.Context(), orgID, userID, mux.Vars(r)["slug"]); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

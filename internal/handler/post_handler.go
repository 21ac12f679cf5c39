package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"rivvo/internal/models"
)

type PostRequest struct {
	Title       string  `json:"title" validate:"min=1,max=500" message:"Title must be between 1 and 500 characters"`
	Description *string `json:"description"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required" message:"Status is required"`
}

func (h *Handlers) boardPostPath(r *http.Request) (userID, boardID, postID uuid.UUID, err error) {
	if userID, err = UserIDFromContext(r.Context()); err != nil {
		return
	}
	if boardID, err = pathUUID(r, "board_id"); err != nil {
		return
	}
	postID, err = pathUUID(r, "post_id")
	return
}

func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	boardID, err := pathUUID(r, "board_id")
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	filter := models.PostListFilter{
		Sort:   r.URL.Query().Get("sort"),
		Status: r.URL.Query().Get("status"),
	}

	posts, err := h.PostService.List(r.Context(), boardID, userID, filter)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	response := make([]PostListResponse, 0, len(posts))
	for _, p := range posts {
		response = append(response, toPostListResponse(p))
	}

	writeSuccess(w, response, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	boardID, err := pathUUID(r, "board_id")
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	var req PostRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	post, err := h.PostService.Create(r.Context(), boardID, userID, req.Title, req.Description)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeSuccess(w, toPostDetailResponse(post), http.StatusCreated)
}

func (h *Handlers) GetBoardPost(w http.ResponseWriter, r *http.Request) {
	userID, boardID, postID, err := h.boardPostPath(r)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	post, err := h.PostService.GetInBoard(r.Context(), boardID, postID, userID)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeSuccess(w, toPostDetailResponse(post), http.StatusOK)
}

// GetPost serves the direct lookup, the board is derived from the post.
func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	postID, err := pathUUID(r, "post_id")
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	post, err := h.PostService.Get(r.Context(), postID, userID)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeSuccess(w, toPostDetailResponse(post), http.StatusOK)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	userID, boardID, postID, err := h.boardPostPath(r)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	var req PostRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	post, err := h.PostService.Update(r.Context(), boardID, postID, userID, req.Title, req.Description)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeSuccess(w, toPostDetailResponse(post), http.StatusOK)
}

func (h *Handlers) UpdatePostStatus(w http.ResponseWriter, r *http.Request) {
	userID, boardID, postID, err := h.boardPostPath(r)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	var req UpdateStatusRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	post, err := h.PostService.UpdateStatus(r.Context(), boardID, postID, userID, req.Status)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeSuccess(w, toPostDetailResponse(post), http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, boardID, postID, err := h.boardPostPath(r)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	if err := h.PostService.Delete(r.Context(), boardID, postID, userID); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

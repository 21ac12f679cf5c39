package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type CommentRequest struct {
	Body string `json:"body" validate:"min=1,max=10000" message:"Comment must be between 1 and 10000 characters"`
}

type TagRequest struct {
	Name  string  `json:"name" validate:"min=1,max=100" message:"Tag name must be between 1 and 100 characters"`
	Color *string `json:"color" validate:"omitempty,hexcolor" message:"Color must be a hex color such as #6366f1"`
}

func (h *Handlers) ToggleVote(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.VoteService.Toggle(r.Context(), postID, userID)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeSuccess(w, result, http.StatusOK)
}

func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
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

	comments, err := h.CommentService.List(r.Context(), postID, userID)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	response := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		response = append(response, toCommentResponse(c))
	}

	writeSuccess(w, response, http.StatusOK)
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
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

	var req CommentRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	comment, err := h.CommentService.Create(r.Context(), postID, userID, req.Body)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeSuccess(w, toCommentResponse(*comment), http.StatusCreated)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	commentID, err := pathUUID(r, "comment_id")
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	if err := h.CommentService.Delete(r.Context(), commentID, userID); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListTags(w http.ResponseWriter, r *http.Request) {
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

	tags, err := h.TagService.List(r.Context(), boardID, userID)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeSuccess(w, toTagResponses(tags), http.StatusOK)
}

func (h *Handlers) CreateTag(w http.ResponseWriter, r *http.Request) {
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

	var req TagRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	tag, err := h.TagService.Create(r.Context(), boardID, userID, req.Name, req.Color)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeSuccess(w, TagResponse{ID: tag.ID, Name: tag.Name, Color: tag.Color}, http.StatusCreated)
}

func (h *Handlers) DeleteTag(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	tagID, err := pathUUID(r, "tag_id")
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	if err := h.TagService.Delete(r.Context(), tagID, userID); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) AssignTag(w http.ResponseWriter, r *http.Request) {
	h.postTag(w, r, h.TagService.Assign)
}

func (h *Handlers) UnassignTag(w http.ResponseWriter, r *http.Request) {
	h.postTag(w, r, h.TagService.Unassign)
}

func (h *Handlers) postTag(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, postID, tagID, callerID uuid.UUID) error) {
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

	tagID, err := pathUUID(r, "tag_id")
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	if err := op(r.Context(), postID, tagID, userID); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email" message:"Invalid email address"`
	Name     string `json:"name" validate:"min=2,max=255" message:"Name must be between 2 and 255 characters"`
	Password string `json:"password" validate:"min=8,max=128" message:"Password must be between 8 and 128 characters"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" message:"Invalid email address"`
	Password string `json:"password" validate:"required" message:"Password is required"`
}

var allowedAvatarTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	user, token, err := h.AuthService.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeSuccess(w, AuthResponse{Token: token, User: toUserResponse(user)}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeSuccess(w, AuthResponse{Token: token, User: toUserResponse(user)}, http.StatusOK)
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	user, err := h.AuthService.CurrentUser(r.Context(), userID)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeSuccess(w, toUserResponse(user), http.StatusOK)
}

func (h *Handlers) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	tooLarge := fmt.Sprintf("File too large (max %d MB)", h.Cfg.MaxUploadSize/(1024*1024))

	// leave room for the multipart envelope around the file itself
	limit := h.Cfg.MaxUploadSize + 64*1024
	if r.ContentLength > limit {
		WriteError(w, tooLarge, http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			WriteError(w, tooLarge, http.StatusBadRequest)
		} else {
			WriteError(w, "Failed to parse upload", http.StatusBadRequest)
		}
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		WriteError(w, "Missing avatar file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > h.Cfg.MaxUploadSize {
		WriteError(w, tooLarge, http.StatusBadRequest)
		return
	}

	sniff := make([]byte, 512)
	n, err := io.ReadFull(file, sniff)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		WriteError(w, "Failed to read upload", http.StatusBadRequest)
		return
	}
	contentType := http.DetectContentType(sniff[:n])
	if !allowedAvatarTypes[contentType] {
		WriteError(w, "Unsupported file type. Allowed: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		h.Logger.Error("Failed to rewind upload", zap.Error(err))
		WriteError(w, "Failed to read upload", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.UploadAvatar(r.Context(), userID, header.Filename, contentType, file, header.Size)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeSuccess(w, toUserResponse(user), http.StatusOK)
}

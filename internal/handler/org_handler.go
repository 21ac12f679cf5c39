package handlers

import (
	"net/http"

	"rivvo/internal/models"
)

type CreateOrgRequest struct {
	Name string `json:"name" validate:"min=1,max=255" message:"Name must be between 1 and 255 characters"`
}

type AddMemberRequest struct {
	Email string `json:"email" validate:"required,email" message:"Invalid email address"`
	Role  string `json:"role" validate:"omitempty,oneof=admin member" message:"Role must be admin or member"`
}

func (h *Handlers) ListOrgs(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	orgs, err := h.OrgService.ListMine(r.Context(), userID)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	response := make([]OrgResponse, 0, len(orgs))
	for _, o := range orgs {
		response = append(response, toOrgResponse(o))
	}

	writeSuccess(w, response, http.StatusOK)
}

func (h *Handlers) CreateOrg(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	var req CreateOrgRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	org, err := h.OrgService.Create(r.Context(), userID, req.Name)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeSuccess(w, OrgResponse{
		ID:      org.ID,
		Name:    org.Name,
		Slug:    org.Slug,
		LogoURL: org.LogoURL,
		Role:    models.RoleAdmin,
	}, http.StatusCreated)
}

func (h *Handlers) AddMember(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	orgID, err := pathUUID(r, "org_id")
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	var req AddMemberRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	member, err := h.OrgService.AddMember(r.Context(), orgID, userID, req.Email, req.Role)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeSuccess(w, toMemberResponse(member), http.StatusCreated)
}

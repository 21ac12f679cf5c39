package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handlers) Router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	api.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", h.GetCurrentUser).Methods(http.MethodGet)
	api.HandleFunc("/auth/me/avatar", h.UploadAvatar).Methods(http.MethodPut)

	api.HandleFunc("/orgs", h.ListOrgs).Methods(http.MethodGet)
	api.HandleFunc("/orgs", h.CreateOrg).Methods(http.MethodPost)
	api.HandleFunc("/orgs/{org_id}/members", h.AddMember).Methods(http.MethodPost)

	api.HandleFunc("/orgs/{org_id}/boards", h.ListBoards).Methods(http.MethodGet)
	api.HandleFunc("/orgs/{org_id}/boards", h.CreateBoard).Methods(http.MethodPost)
	api.HandleFunc("/orgs/{org_id}/boards/{slug}", h.GetBoard).Methods(http.MethodGet)
	api.HandleFunc("/orgs/{org_id}/boards/{slug}", h.UpdateBoard).Methods(http.MethodPut)
	api.HandleFunc("/orgs/{org_id}/boards/{slug}", h.DeleteBoard).Methods(http.MethodDelete)

	api.HandleFunc("/boards/{board_id}/posts", h.ListPosts).Methods(http.MethodGet)
	api.HandleFunc("/boards/{board_id}/posts", h.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/boards/{board_id}/posts/{post_id}", h.GetBoardPost).Methods(http.MethodGet)
	api.HandleFunc("/boards/{board_id}/posts/{post_id}", h.UpdatePost).Methods(http.MethodPut)
	api.HandleFunc("/boards/{board_id}/posts/{post_id}", h.DeletePost).Methods(http.MethodDelete)
	api.HandleFunc("/boards/{board_id}/posts/{post_id}/status", h.UpdatePostStatus).Methods(http.MethodPut)
	api.HandleFunc("/posts/{post_id}", h.GetPost).Methods(http.MethodGet)

	api.HandleFunc("/posts/{post_id}/vote", h.ToggleVote).Methods(http.MethodPost)

	api.HandleFunc("/posts/{post_id}/comments", h.ListComments).Methods(http.MethodGet)
	api.HandleFunc("/posts/{post_id}/comments", h.CreateComment).Methods(http.MethodPost)
	api.HandleFunc("/comments/{comment_id}", h.DeleteComment).Methods(http.MethodDelete)

	api.HandleFunc("/boards/{board_id}/tags", h.ListTags).Methods(http.MethodGet)
	api.HandleFunc("/boards/{board_id}/tags", h.CreateTag).Methods(http.MethodPost)
	api.HandleFunc("/tags/{tag_id}", h.DeleteTag).Methods(http.MethodDelete)
	api.HandleFunc("/posts/{post_id}/tags/{tag_id}", h.AssignTag).Methods(http.MethodPost)
	api.HandleFunc("/posts/{post_id}/tags/{tag_id}", h.UnassignTag).Methods(http.MethodDelete)

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "Not found", http.StatusNotFound)
	})
	methodNotAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// mux resolves these on the router that owns the matched route
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = methodNotAllowed
	api.NotFoundHandler = notFound
	api.MethodNotAllowedHandler = methodNotAllowed

	return r
}

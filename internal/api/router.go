package api

import (
	"net/http"

	"dmdstore-be/internal/middleware"
)

// NewRouter wires the REST surface. Session resolution happens in the
// outer middleware chain; only the gating wrappers live here.
func NewRouter(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/me", h.Me)
	mux.HandleFunc("POST /api/signup", h.Signup)
	mux.HandleFunc("POST /api/login", h.Login)
	mux.HandleFunc("POST /api/logout", h.Logout)

	mux.HandleFunc("GET /api/products", h.ListProducts)
	mux.HandleFunc("GET /api/products/{id}", h.GetProduct)
	mux.Handle("POST /api/products", middleware.RequireAdmin(http.HandlerFunc(h.CreateProduct)))
	mux.Handle("PUT /api/products/{id}", middleware.RequireAdmin(http.HandlerFunc(h.UpdateProduct)))
	mux.Handle("DELETE /api/products/{id}", middleware.RequireAdmin(http.HandlerFunc(h.DeleteProduct)))

	mux.Handle("POST /api/upload", middleware.RequireAdmin(http.HandlerFunc(h.Upload)))

	mux.Handle("POST /api/orders", middleware.RequireAuth(http.HandlerFunc(h.CreateOrder)))
	mux.Handle("GET /api/orders", middleware.RequireAdmin(http.HandlerFunc(h.ListOrders)))

	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.Uploads.Dir()))))

	return mux
}

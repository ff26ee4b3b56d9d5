package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"dmdstore-be/internal/logger"
	"dmdstore-be/internal/middleware"
	"dmdstore-be/internal/order"
	"dmdstore-be/internal/product"
	"dmdstore-be/internal/session"
	"dmdstore-be/internal/upload"
	"dmdstore-be/internal/user"

	"go.uber.org/zap"
)

// maxBodySize caps JSON request bodies at 2MB.
const maxBodySize = 2 << 20

type Handler struct {
	Users    user.Service
	Products product.Service
	Orders   order.Service
	Sessions session.Store
	Uploads  *upload.Saver
}

func NewHandler(
	users user.Service,
	products product.Service,
	orders order.Service,
	sessions session.Store,
	uploads *upload.Saver,
) *Handler {
	return &Handler{
		Users:    users,
		Products: products,
		Orders:   orders,
		Sessions: sessions,
		Uploads:  uploads,
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(session.DefaultTTL / time.Second),
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// ---------- AUTH ----------

type credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	if identity, ok := middleware.IdentityFrom(r.Context()); ok {
		writeJSON(w, http.StatusOK, map[string]any{"user": identity})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": nil})
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := decodeBody(w, r, &creds); err != nil || creds.Login == "" || creds.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "login/password required")
		return
	}

	u, err := h.Users.Register(r.Context(), creds.Login, creds.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	token, err := h.Sessions.Create(session.Identity{
		UserID: u.ID,
		Login:  u.Login,
		Role:   u.Role,
	})
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to create session", zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "session error")
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "role": u.Role})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := decodeBody(w, r, &creds); err != nil || creds.Login == "" || creds.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "login/password required")
		return
	}

	u, err := h.Users.Login(r.Context(), creds.Login, creds.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	token, err := h.Sessions.Create(session.Identity{
		UserID: u.ID,
		Login:  u.Login,
		Role:   u.Role,
	})
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to create session", zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "session error")
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "role": u.Role})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.CookieName); err == nil && cookie.Value != "" {
		h.Sessions.Delete(cookie.Value)
	}
	h.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// ---------- PRODUCTS ----------

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "not found")
		return
	}

	p, err := h.Products.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var p product.Product
	if err := decodeBody(w, r, &p); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid body")
		return
	}

	id, err := h.Products.Create(r.Context(), p)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id})
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "not found")
		return
	}

	var p product.Product
	if err := decodeBody(w, r, &p); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid body")
		return
	}
	p.ID = id

	if err := h.Products.Update(r.Context(), p); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.Products.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// ---------- UPLOAD ----------

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	// Generous ceiling for the whole multipart body; the saver checks
	// the file size itself so the error message stays precise.
	r.Body = http.MaxBytesReader(w, r.Body, upload.MaxFileSize+(2<<20))

	file, header, err := r.FormFile("image")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeDomainError(w, upload.ErrFileTooLarge)
			return
		}
		writeDomainError(w, upload.ErrNoFile)
		return
	}
	defer file.Close()

	path, err := h.Uploads.Save(file, header)
	if err != nil {
		logger.FromCtx(r.Context()).Warn("upload rejected", zap.Error(err))
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "path": path})
}

// ---------- ORDERS ----------

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// PlaceInput has no total field: whatever total the client sends
	// is dropped at decode time and recomputed from the lines.
	var input order.PlaceInput
	if err := decodeBody(w, r, &input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid order data")
		return
	}

	orderID, err := h.Orders.Place(r.Context(), identity.Login, input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "orderId": orderID})
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListWithItems(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

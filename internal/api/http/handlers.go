package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"food-order/internal/domain"
	"food-order/internal/service"
	"food-order/internal/storage"

	"github.com/gorilla/mux"
)

type SessionManager interface {
	Start(ctx context.Context, userID int) (string, error)
	UserID(ctx context.Context, token string) (int, bool, error)
}

type Handler struct {
	Auth        service.AuthServiceInterface
	Restaurants service.RestaurantServiceInterface
	Dishes      service.DishServiceInterface
	Orders      service.OrderServiceInterface
	Analytics   service.AnalyticsServiceInterface
	// Sessions may be nil; the user is then taken from the X-User-ID header.
	Sessions SessionManager
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// placeOrderRequest leaves TotalPrice nil when the client omits it.
type placeOrderRequest struct {
	domain.Order
	TotalPrice *float64 `json:"total_price"`
}

type sessionResponse struct {
	UserID int    `json:"user_id"`
	Token  string `json:"token,omitempty"`
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/users", h.register).Methods("POST")
	r.HandleFunc("/api/sessions", h.login).Methods("POST")

	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/nearest", h.getNearestRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")

	r.HandleFunc("/api/restaurants/{restaurantId}/dishes", h.createDish).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes", h.getRestaurantDishes).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/popular", h.getPopularDishes).Methods("GET")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "food-order",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID, err := h.Auth.Register(r.Context(), creds.Username, creds.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	h.startSession(w, r, userID, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID, ok, err := h.Auth.Login(r.Context(), creds.Username, creds.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}
	h.startSession(w, r, userID, http.StatusOK)
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, userID, status int) {
	resp := sessionResponse{UserID: userID}
	if h.Sessions != nil {
		token, err := h.Sessions.Start(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}
		resp.Token = token
	}
	writeJSON(w, status, resp)
}

// currentUser resolves the caller from a bearer session token, or from the
// X-User-ID header when sessions are disabled.
func (h *Handler) currentUser(r *http.Request) (int, bool, error) {
	if h.Sessions == nil {
		userID, err := strconv.Atoi(r.Header.Get("X-User-ID"))
		if err != nil || userID <= 0 {
			return 0, false, nil
		}
		return userID, true, nil
	}
	token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || token == "" {
		return 0, false, nil
	}
	return h.Sessions.UserID(r.Context(), token)
}

// requireUser writes 401 when the caller is anonymous.
func (h *Handler) requireUser(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok, err := h.currentUser(r)
	if err != nil {
		writeError(w, err)
		return 0, false
	}
	if !ok {
		http.Error(w, "Login required", http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

// pathID parses a positive numeric route variable, writing 400 otherwise.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		http.Error(w, "Invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Restaurants.Create(r.Context(), &rest); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Restaurants.Categories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) getNearestRestaurant(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	lat, latErr := strconv.ParseFloat(query.Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(query.Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		http.Error(w, "lat and lon are required", http.StatusBadRequest)
		return
	}
	rest, err := h.Restaurants.Nearest(r.Context(), query.Get("category"),
		domain.Coordinates{Latitude: lat, Longitude: lon})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	rest, err := h.Restaurants.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := pathID(w, r, "restaurantId")
	if !ok {
		return
	}
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dish.RestaurantID = restaurantID
	if err := h.Dishes.Create(r.Context(), &dish); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) getRestaurantDishes(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := pathID(w, r, "restaurantId")
	if !ok {
		return
	}
	dishes, err := h.Dishes.List(r.Context(), restaurantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) getPopularDishes(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := pathID(w, r, "restaurantId")
	if !ok {
		return
	}
	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		if limit, err = strconv.Atoi(raw); err != nil {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
	}
	top, err := h.Analytics.TopDishes(r.Context(), restaurantID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, top)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	order := req.Order
	order.UserID = userID
	if err := h.Orders.Place(r.Context(), &order, req.TotalPrice); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	orders, err := h.Orders.History(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	order, err := h.Orders.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	qr, err := h.Orders.ReceiptQR(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(qr)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidOrder),
		errors.Is(err, service.ErrInvalidPayment),
		errors.Is(err, service.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Printf("ERROR: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

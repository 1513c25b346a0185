package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/finledger/finledger/internal/common"
	"github.com/finledger/finledger/internal/logging"
	"github.com/finledger/finledger/internal/server/config"
	"github.com/finledger/finledger/internal/server/models"
	"github.com/finledger/finledger/internal/server/services"
	"github.com/gorilla/mux"
)

// Handler bundles the HTTP endpoints with their dependencies.
type Handler struct {
	logger        logging.Logger
	users         *services.UserService
	expenses      *services.ExpenseService
	investments   *services.InvestmentService
	secretKey     []byte
	tokenValidity time.Duration
}

func NewHandler(logger logging.Logger, users *services.UserService, expenses *services.ExpenseService, investments *services.InvestmentService, cfg *config.Config) *Handler {
	return &Handler{
		logger:        logger,
		users:         users,
		expenses:      expenses,
		investments:   investments,
		secretKey:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Routes builds the public router. Everything under the protected
// subrouter passes through RequireAuth first.
func (h *Handler) Routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.requestLogger)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/register", h.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", h.handleLogout).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(RequireAuth(h.secretKey))
	protected.HandleFunc("/auth/validate", h.handleValidate).Methods(http.MethodGet)
	protected.HandleFunc("/expenses", h.handleListExpenses).Methods(http.MethodGet)
	protected.HandleFunc("/expenses", h.handleCreateExpense).Methods(http.MethodPost)
	protected.HandleFunc("/expenses/{id}", h.handleDeleteExpense).Methods(http.MethodDelete)
	protected.HandleFunc("/investments", h.handleListInvestments).Methods(http.MethodGet)
	protected.HandleFunc("/investments", h.handleCreateInvestment).Methods(http.MethodPost)
	protected.HandleFunc("/investments/{id}", h.handleDeleteInvestment).Methods(http.MethodDelete)

	return r
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeFailure(w, http.StatusBadRequest, "username, email, and password are required")
		return
	}
	if !strings.Contains(req.Email, "@") {
		writeFailure(w, http.StatusBadRequest, "email is not valid")
		return
	}

	if _, err := h.users.Register(r.Context(), req.Username, req.Email, req.Password); err != nil {
		if errors.Is(err, common.ErrEmailAlreadyExists) {
			writeFailure(w, http.StatusConflict, "user already registered")
			return
		}
		h.logger.Error(r.Context(), "register failed", "error", err.Error())
		writeFailure(w, http.StatusInternalServerError, "error while registering")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Success: true, Message: "registered successfully"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeFailure(w, http.StatusBadRequest, "email and password are required")
		return
	}

	token, user, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			// Unknown email and wrong password answer identically.
			writeFailure(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.logger.Error(r.Context(), "login failed", "error", err.Error())
		writeFailure(w, http.StatusInternalServerError, "error while logging in")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenValidity.Seconds()),
		HttpOnly: true,
		Secure:   false,
	})

	writeJSON(w, http.StatusOK, authResponse{
		Success: true,
		Message: "logged in successfully",
		Token:   token,
		User:    user,
	})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	// Tokens are stateless; logging out only clears the cookie.
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	writeJSON(w, http.StatusOK, authResponse{Success: true, Message: "logged out"})
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	// The token is self-contained; the user view is rebuilt from claims
	// without touching the credential store.
	writeJSON(w, http.StatusOK, authResponse{
		Success: true,
		User: &models.PublicUser{
			ID:       claims.Subject,
			Email:    claims.Email,
			Username: claims.Username,
			Role:     claims.Role,
		},
	})
}

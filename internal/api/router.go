package api

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"healthcare/internal/auth"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth        *AuthHandler
	Hospitals   *HospitalHandler
	Appointment *AppointmentHandler
	HomeVisits  *HomeVisitHandler
	Emergency   *EmergencyHandler
	Stripe      *StripeWebhookHandler
}

type RouterConfig struct {
	JWTSecret      []byte
	AllowedOrigins []string
	Limiter        *RateLimiter
}

func NewRouter(h Handlers, cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.Use(RequestLogger)
	r.NotFoundHandler = RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respondWithJSON(w, http.StatusNotFound, Envelope{Success: false, Message: "Not found"})
	}))

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondOK(w, "ok", nil)
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	limited := func(f http.HandlerFunc) http.Handler {
		if cfg.Limiter == nil {
			return f
		}
		return cfg.Limiter.Middleware(f)
	}

	// Public endpoints
	api.Handle("/auth/register", limited(h.Auth.Register)).Methods("POST")
	api.Handle("/auth/login", limited(h.Auth.Login)).Methods("POST")
	api.HandleFunc("/hospitals", h.Hospitals.ListHospitals).Methods("GET")
	api.HandleFunc("/hospitals/{hospitalId}/doctors", h.Hospitals.HospitalDoctors).Methods("GET")
	api.HandleFunc("/doctors/{doctorId}/availability", h.Hospitals.DoctorAvailability).Methods("GET")
	api.HandleFunc("/home-visits", h.HomeVisits.List).Methods("GET")
	api.Handle("/emergency/request",
		auth.OptionalMiddleware(cfg.JWTSecret)(limited(h.Emergency.Request))).Methods("POST")
	if h.Stripe != nil {
		api.HandleFunc("/stripe/webhook", h.Stripe.HandleWebhook).Methods("POST")
	}

	// Authenticated endpoints
	private := api.NewRoute().Subrouter()
	private.Use(auth.Middleware(cfg.JWTSecret))
	private.HandleFunc("/auth/logout", h.Auth.Logout).Methods("POST")
	private.HandleFunc("/user/profile", h.Auth.Profile).Methods("GET")
	private.HandleFunc("/appointments", h.Appointment.Create).Methods("POST")
	private.HandleFunc("/appointments", h.Appointment.List).Methods("GET")
	private.HandleFunc("/home-visits/book", h.HomeVisits.Book).Methods("POST")
	private.HandleFunc("/home-visits/bookings", h.HomeVisits.MyBookings).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "Stripe-Signature", requestIDHeader}),
		handlers.ExposedHeaders([]string{requestIDHeader}),
	)
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{}),
		handlers.PrintRecoveryStack(true),
	)(cors(r))
}

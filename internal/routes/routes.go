package routes

import (
	"net/http"
	"time"

	"github.com/nzoschke/productivity/internal/app"
	"github.com/nzoschke/productivity/internal/handler"
	"github.com/nzoschke/productivity/internal/metrics"
	"github.com/nzoschke/productivity/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	dashboard := handler.NewDashboardHandler(app.DashboardService, app.Cfg.Currency)
	images := handler.NewImageHandler(app.ImageService)
	tasks := handler.NewTaskHandler(app.TaskService)
	goals := handler.NewGoalHandler(app.GoalService)
	vision := handler.NewVisionHandler(app.VisionService)
	notes := handler.NewNoteHandler(app.NoteService, app.Parser)
	books := handler.NewBookHandler(app.BookService)
	finances := handler.NewFinanceHandler(app.FinanceService)
	prayers := handler.NewPrayerHandler(app.PrayerService, app.Clock)
	recitations := handler.NewRecitationHandler(app.RecitationService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", handler.Healthz)
	if app.Cfg.MetricsEnabled {
		mux.Handle("GET /metrics", metrics.Handler())
	}

	// Auth (login is rate limited)
	rateLimiter := middleware.RateLimit(5, 15*time.Minute)
	mux.HandleFunc("POST /auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /auth/logout", auth.Logout)
	mux.HandleFunc("GET /auth/session", auth.Session)

	// ============================================================================
	// PROTECTED ROUTES
	// ============================================================================

	// Pages
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	})
	mux.HandleFunc("GET /dashboard", middleware.RequireAuth(dashboard.DashboardPage))
	mux.HandleFunc("GET /notes", middleware.RequireAuth(notes.NotesPage))
	mux.HandleFunc("GET /notes/{id}", middleware.RequireAuth(notes.NotePage))

	// Dashboard & images
	mux.HandleFunc("GET /api/dashboard", middleware.RequireAuth(dashboard.Summary))
	mux.HandleFunc("POST /api/images", middleware.RequireAuth(images.Upload))

	// Tasks
	mux.HandleFunc("GET /api/tasks", middleware.RequireAuth(tasks.List))
	mux.HandleFunc("POST /api/tasks", middleware.RequireAuth(tasks.Create))
	mux.HandleFunc("POST /api/tasks/reload", middleware.RequireAuth(tasks.Reload))
	mux.HandleFunc("DELETE /api/tasks/error", middleware.RequireAuth(tasks.DismissError))
	mux.HandleFunc("PATCH /api/tasks/{id}", middleware.RequireAuth(tasks.Update))
	mux.HandleFunc("POST /api/tasks/{id}/toggle", middleware.RequireAuth(tasks.Toggle))
	mux.HandleFunc("DELETE /api/tasks/{id}", middleware.RequireAuth(tasks.Delete))

	// Goals
	mux.HandleFunc("GET /api/goals", middleware.RequireAuth(goals.List))
	mux.HandleFunc("POST /api/goals", middleware.RequireAuth(goals.Create))
	mux.HandleFunc("POST /api/goals/reload", middleware.RequireAuth(goals.Reload))
	mux.HandleFunc("DELETE /api/goals/error", middleware.RequireAuth(goals.DismissError))
	mux.HandleFunc("PATCH /api/goals/{id}", middleware.RequireAuth(goals.Update))
	mux.HandleFunc("POST /api/goals/{id}/image-failed", middleware.RequireAuth(goals.ImageFailed))
	mux.HandleFunc("DELETE /api/goals/{id}", middleware.RequireAuth(goals.Delete))

	// Vision board
	mux.HandleFunc("GET /api/vision", middleware.RequireAuth(vision.List))
	mux.HandleFunc("POST /api/vision", middleware.RequireAuth(vision.Create))
	mux.HandleFunc("POST /api/vision/reload", middleware.RequireAuth(vision.Reload))
	mux.HandleFunc("DELETE /api/vision/error", middleware.RequireAuth(vision.DismissError))
	mux.HandleFunc("PATCH /api/vision/{id}", middleware.RequireAuth(vision.Update))
	mux.HandleFunc("POST /api/vision/{id}/image-failed", middleware.RequireAuth(vision.ImageFailed))
	mux.HandleFunc("DELETE /api/vision/{id}", middleware.RequireAuth(vision.Delete))

	// Notes
	mux.HandleFunc("GET /api/notes", middleware.RequireAuth(notes.List))
	mux.HandleFunc("POST /api/notes", middleware.RequireAuth(notes.Create))
	mux.HandleFunc("POST /api/notes/reload", middleware.RequireAuth(notes.Reload))
	mux.HandleFunc("DELETE /api/notes/error", middleware.RequireAuth(notes.DismissError))
	mux.HandleFunc("PATCH /api/notes/{id}", middleware.RequireAuth(notes.Update))
	mux.HandleFunc("DELETE /api/notes/{id}", middleware.RequireAuth(notes.Delete))

	// Books
	mux.HandleFunc("GET /api/books", middleware.RequireAuth(books.List))
	mux.HandleFunc("POST /api/books", middleware.RequireAuth(books.Create))
	mux.HandleFunc("POST /api/books/reload", middleware.RequireAuth(books.Reload))
	mux.HandleFunc("DELETE /api/books/error", middleware.RequireAuth(books.DismissError))
	mux.HandleFunc("PATCH /api/books/{id}", middleware.RequireAuth(books.Update))
	mux.HandleFunc("POST /api/books/{id}/complete", middleware.RequireAuth(books.Complete))
	mux.HandleFunc("POST /api/books/{id}/image-failed", middleware.RequireAuth(books.ImageFailed))
	mux.HandleFunc("DELETE /api/books/{id}", middleware.RequireAuth(books.Delete))

	// Finances
	mux.HandleFunc("GET /api/finances", middleware.RequireAuth(finances.List))
	mux.HandleFunc("POST /api/finances", middleware.RequireAuth(finances.Create))
	mux.HandleFunc("POST /api/finances/reload", middleware.RequireAuth(finances.Reload))
	mux.HandleFunc("DELETE /api/finances/error", middleware.RequireAuth(finances.DismissError))
	mux.HandleFunc("PATCH /api/finances/{id}", middleware.RequireAuth(finances.Update))
	mux.HandleFunc("DELETE /api/finances/{id}", middleware.RequireAuth(finances.Delete))

	// Prayers
	mux.HandleFunc("GET /api/prayers", middleware.RequireAuth(prayers.List))
	mux.HandleFunc("POST /api/prayers/reload", middleware.RequireAuth(prayers.Reload))
	mux.HandleFunc("DELETE /api/prayers/error", middleware.RequireAuth(prayers.DismissError))
	mux.HandleFunc("POST /api/prayers/{date}/{prayer}/toggle", middleware.RequireAuth(prayers.Toggle))
	mux.HandleFunc("DELETE /api/prayers/{date}", middleware.RequireAuth(prayers.Clear))

	// Recitations
	mux.HandleFunc("GET /api/recitations", middleware.RequireAuth(recitations.List))
	mux.HandleFunc("POST /api/recitations", middleware.RequireAuth(recitations.Create))
	mux.HandleFunc("POST /api/recitations/reload", middleware.RequireAuth(recitations.Reload))
	mux.HandleFunc("DELETE /api/recitations/error", middleware.RequireAuth(recitations.DismissError))
	mux.HandleFunc("PATCH /api/recitations/{id}", middleware.RequireAuth(recitations.Update))
	mux.HandleFunc("POST /api/recitations/{id}/toggle", middleware.RequireAuth(recitations.Toggle))
	mux.HandleFunc("DELETE /api/recitations/{id}", middleware.RequireAuth(recitations.Delete))

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg), // Config must be first (needed by SecurityHeaders for S3 endpoint)
		middleware.NonceMiddleware, // Generate CSP nonce for each request (must be before SecurityHeaders)
		middleware.SecurityHeaders, // Security headers for all responses
		middleware.RequestLogging,
		middleware.CSRFProtection, // CSRF protection for cookie sessions
		middleware.AuthMiddleware(app.AuthService),
		middleware.WithURLPath,
	)

	return handler
}

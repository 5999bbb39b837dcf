// internal/handler/router.go
package handler

import (
	"net/http"

	"github.com/Ar-Dante/Quiz-platform/internal/auth"
	"github.com/Ar-Dante/Quiz-platform/internal/middleware"
	"github.com/Ar-Dante/Quiz-platform/internal/obs"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Handlers groups every route handler the API mounts.
type Handlers struct {
	Auth          *AuthHandler
	Users         *UserHandler
	Companies     *CompanyHandler
	Quizzes       *QuizHandler
	Results       *ResultHandler
	Analytics     *AnalyticsHandler
	Notifications *NotificationHandler
}

// Mount registers the API routes on r. Everything except sign up, sign in,
// health and metrics requires a bearer token.
func Mount(r chi.Router, h Handlers, tokenManager *auth.TokenManager) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})
	r.Handle("/metrics", obs.Handler())

	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(chimw.AllowContentType("application/json"))

		r.Post("/users/SignUp", h.Auth.SignUp)
		r.Post("/auth/SingIn", h.Auth.SignIn)
		r.Post("/auth/external", h.Auth.External)
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(tokenManager))

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.Users.List)
			r.Get("/{id}", h.Users.Get)
			r.Put("/{id}", h.Users.Update)
			r.Delete("/{id}", h.Users.Delete)
			r.Get("/{id}/invitations", h.Companies.UserInvitations)
			r.Get("/{id}/requests", h.Companies.UserRequests)
		})

		r.Route("/companies", func(r chi.Router) {
			r.Post("/CreateCompany", h.Companies.Create)
			r.Get("/", h.Companies.List)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Companies.Get)
				r.Put("/", h.Companies.Update)
				r.Delete("/", h.Companies.Delete)

				r.Get("/members", h.Companies.Members)
				r.Get("/admins", h.Companies.Admins)
				r.Post("/exit", h.Companies.Exit)
				r.Post("/members/{user}/remove", h.Companies.RemoveMember)
				r.Post("/admins/{user}", h.Companies.PromoteAdmin)
				r.Delete("/admins/{user}", h.Companies.DemoteAdmin)

				r.Get("/invitations", h.Companies.CompanyInvitations)
				r.Post("/invitations/accept", h.Companies.AcceptInvitation)
				r.Post("/invitations/refuse", h.Companies.RefuseInvitation)
				r.Post("/invitations/{user}", h.Companies.SendInvitation)
				r.Post("/invitations/{user}/cancel", h.Companies.CancelInvitation)

				r.Get("/requests", h.Companies.CompanyRequests)
				r.Post("/requests", h.Companies.SendRequest)
				r.Post("/requests/cancel", h.Companies.CancelRequest)
				r.Post("/requests/{user}/accept", h.Companies.AcceptRequest)
				r.Post("/requests/{user}/refuse", h.Companies.RefuseRequest)
			})
		})

		r.Route("/quizzes", func(r chi.Router) {
			r.Post("/createQuiz", h.Quizzes.CreateQuiz)
			r.Post("/createQuestion", h.Quizzes.CreateQuestion)
			r.Post("/SubmitQuestion", h.Quizzes.Submit)
			r.Get("/Quizzes", h.Quizzes.Quizzes)
			r.Get("/Questions", h.Quizzes.Questions)
			r.Put("/UpdateQuiz/{company}/{quiz}", h.Quizzes.UpdateQuiz)
			r.Put("/UpdateQuestion/{quiz}/{question}", h.Quizzes.UpdateQuestion)
			r.Delete("/RemoveQuiz/{company}/{quiz}", h.Quizzes.RemoveQuiz)
			r.Delete("/RemoveQuestion/{company}/{quiz}/{question}", h.Quizzes.RemoveQuestion)

			r.Post("/import", h.Quizzes.Import)
			r.Put("/{quiz}/import", h.Quizzes.Reimport)
			r.Get("/{quiz}/export", h.Quizzes.Export)
		})

		r.Route("/results", func(r chi.Router) {
			r.Get("/{user}/system-average-rating", h.Results.SystemAverage)
			r.Get("/{company}/{user}/average-rating", h.Results.CompanyAverage)
			r.Post("/user_results/{user}", h.Results.UserResults)
			r.Post("/user_company_results/{user}/{company}", h.Results.UserCompanyResults)
			r.Post("/all_company_results/{company}", h.Results.CompanyResults)
			r.Post("/quizz_company_results/{company}/{quiz}", h.Results.QuizResults)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/quizzes/last-attempts", h.Analytics.QuizLastAttempts)
			r.Get("/quizzes/averages", h.Analytics.QuizAverages)
			r.Get("/companies/{id}/users/last-attempts", h.Analytics.UserLastAttempts)
			r.Get("/companies/{id}/users/averages", h.Analytics.UserAverages)
			r.Get("/companies/{id}/users/{user}/quiz-averages", h.Analytics.UserQuizAverages)
		})

		r.Get("/notifications/{user}", h.Notifications.List)
		r.Put("/notifications/{user}/{notification}/read", h.Notifications.MarkRead)
	})
}

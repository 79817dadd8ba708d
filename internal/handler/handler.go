package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/natarchives/visitordesk/backend/internal/config"
	"github.com/natarchives/visitordesk/backend/internal/domain"
	"github.com/natarchives/visitordesk/backend/internal/repository"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	repository *repository.Repository
	translator ut.Translator

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		repository: repo,
		translator: trans,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Login)
			r.Get("/logout", h.Logout)
			r.With(h.auth).Get("/me", h.Me)
		})

		// everything below requires a session
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Route("/my-info", func(r chi.Router) {
				r.Use(h.myInfo)
				r.Get("/", h.GetMyInfo)
				r.Patch("/password", h.UpdateMyPassword)
			})

			r.Route("/users", func(r chi.Router) {
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateUser)
				r.Get("/", h.GetAllUserInfo)
				r.Route("/{id}", func(r chi.Router) {
					r.Use(h.userInfo)
					r.Get("/", h.GetUserInfo)
					r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateUser)
					r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/password", h.UpdateUserPassword)
				})
			})

			r.Route("/visitors", func(r chi.Router) {
				r.Get("/", h.GetVisitors)
				r.Get("/checkedin", h.GetCheckedInVisitors)
				r.Get("/idnumber/{idNumber}", h.GetActiveVisitorByIDNumber)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleReceptionist})).Post("/", h.CheckInVisitor)
				r.Route("/{id}", func(r chi.Router) {
					r.Use(h.visitor)
					r.Get("/", h.GetVisitor)
					r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleReceptionist})).Patch("/checkout", h.CheckOutVisitor)
					r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleReceptionist, domain.RoleAccountant})).Patch("/fee", h.UpdateResearcherFee)
				})
			})

			r.Route("/library/visits", func(r chi.Router) {
				r.Get("/", h.GetLibraryVisits)
				r.Get("/checkedin", h.GetCheckedInLibraryVisits)
				r.Get("/visitor/{visitorId}", h.GetLibraryVisitsByVisitor)
				r.Get("/ticket/{ticketNumber}", h.GetActiveLibraryVisitByTicket)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleLibraryOfficer})).Post("/", h.CheckInLibraryVisit)
				r.Route("/{id}", func(r chi.Router) {
					r.Use(h.libraryVisit)
					r.Get("/", h.GetLibraryVisit)
					r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleLibraryOfficer})).Patch("/checkout", h.CheckOutLibraryVisit)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/daily-summary", h.GetDailySummary)
				r.Get("/daily-summary/export", h.ExportDailySummary)
			})
		})
	})
}

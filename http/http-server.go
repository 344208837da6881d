package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"

	"github.com/hacknight-dev/backend/admission"
	"github.com/hacknight-dev/backend/applicant"
	"github.com/hacknight-dev/backend/auth"
	"github.com/hacknight-dev/backend/export"
	"github.com/hacknight-dev/backend/scoring"
	"github.com/hacknight-dev/backend/user"
)

type HttpServer struct {
	applSrvc  *applicant.ApplicantSrvc
	scoreSrvc *scoring.ScoringSrvc
	admSrvc   *admission.AdmissionSrvc
	userSrvc  *user.UserSrvc
	exporter  *export.Exporter // nil when no export bucket is configured
	router    *chi.Mux
}

func NewHttpServer(
	applSrvc *applicant.ApplicantSrvc,
	scoreSrvc *scoring.ScoringSrvc,
	admSrvc *admission.AdmissionSrvc,
	userSrvc *user.UserSrvc,
	exporter *export.Exporter,
	jwtKey []byte,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("hacknight", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
		Tags: map[string]string{
			"env": "dev",
		},
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "https://admin.hacknight.dev"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(jwtKey))

	server := &HttpServer{
		applSrvc:  applSrvc,
		scoreSrvc: scoreSrvc,
		admSrvc:   admSrvc,
		userSrvc:  userSrvc,
		exporter:  exporter,
		router:    router,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

func (httpserver *HttpServer) Router() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router
	r.Post("/auth/login", httpserver.authLogin)
	r.Post("/users", httpserver.authRegister)

	r.Route("/editions/{edition}", func(r chi.Router) {
		r.Get("/applicants", httpserver.listApplicants)
		r.Get("/applicants/{applicantId}", httpserver.getApplicant)
		r.Post("/applicants/{applicantId}/scores", httpserver.setScore)
		r.Post("/applicants/{applicantId}/comment", httpserver.saveComment)
		r.Post("/applicants/{applicantId}/save", httpserver.saveApplicant)
		r.Post("/normalize", httpserver.runNormalization)
		r.Post("/admission/preview", httpserver.previewAdmission)
		r.Post("/admission/commit", httpserver.commitAdmission)
		r.Post("/admission/status", httpserver.bulkStatusChange)
		r.Get("/export/csv", httpserver.exportCsv)
		r.Post("/export/s3", httpserver.exportToS3)
		r.Get("/updates", httpserver.listenUpdates)
	})
}

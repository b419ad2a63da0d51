package main

import (
	"net/http"
	"os"

	"github.com/ClinicaVitalis/api-repasses/internal/auth"
	"github.com/ClinicaVitalis/api-repasses/internal/despesa"
	"github.com/ClinicaVitalis/api-repasses/internal/medico"
	"github.com/ClinicaVitalis/api-repasses/internal/notificacao"
	"github.com/ClinicaVitalis/api-repasses/internal/relatorio"
	"github.com/ClinicaVitalis/api-repasses/internal/repasse"
	"github.com/ClinicaVitalis/api-repasses/internal/usuario"
	"github.com/ClinicaVitalis/api-repasses/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("arquivo .env não encontrado, usando variáveis de ambiente")
	}

	database, err := db.GetDB()
	if err != nil {
		logrus.WithError(err).Fatal("erro ao conectar no banco")
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&usuario.Usuario{},
		&repasse.Repasse{},
		&despesa.Despesa{},
	); err != nil {
		logrus.WithError(err).Fatal("erro no AutoMigrate")
	}

	// Repositories
	repasseRepo := repasse.NewRepository(database)
	despesaRepo := despesa.NewRepository(database)

	// Handlers
	usuarioHandler := usuario.NewHandler(database)
	repasseHandler := repasse.NewHandler(repasseRepo)
	despesaHandler := despesa.NewHandler(despesaRepo)
	medicoHandler := medico.NewHandler(repasseRepo, despesaRepo)
	relatorioHandler := relatorio.NewHandler(repasseRepo, despesaRepo)
	notificacaoHandler := notificacao.NewHandler()

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/usuarios", usuarioHandler.CriarUsuario).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/me", usuarioHandler.Me).Methods("GET")

	// Rotas de repasses
	api.HandleFunc("/repasses", repasseHandler.Criar).Methods("POST")
	api.HandleFunc("/repasses", repasseHandler.Listar).Methods("GET")
	api.HandleFunc("/repasses/{id}", repasseHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/repasses/{id}", repasseHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/repasses/{id}", repasseHandler.Deletar).Methods("DELETE")

	// Rotas de despesas avulsas
	api.HandleFunc("/despesas", despesaHandler.Criar).Methods("POST")
	api.HandleFunc("/despesas", despesaHandler.Listar).Methods("GET")
	api.HandleFunc("/despesas/{id}", despesaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/despesas/{id}", despesaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/despesas/{id}", despesaHandler.Deletar).Methods("DELETE")

	// Rotas de médicos e relatório
	api.HandleFunc("/medicos", medicoHandler.Listar).Methods("GET")
	api.HandleFunc("/medicos/{nome}/relatorio", relatorioHandler.GerarRelatorio).Methods("GET")

	// Rota de notificação (alerta de médico não cadastrado)
	api.HandleFunc("/notificar", notificacaoHandler.EnviarAlerta).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.WithField("port", port).Info("servidor rodando")
	logrus.Fatal(http.ListenAndServe(":"+port, c.Handler(r)))
}

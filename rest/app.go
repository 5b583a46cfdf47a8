package rest

import (
	"log"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"

	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/gorilla/mux"

	"github.com/juanFRANvelilla/backendTFG/config"
	"github.com/juanFRANvelilla/backendTFG/repository"
	"github.com/juanFRANvelilla/backendTFG/service"
)

type App struct {
	Router   *mux.Router
	Access   *service.AccessService
	Contacts *service.ContactService
	Debts    *service.DebtService

	Validator  *validator.Validate
	Translator ut.Translator

	jwtSecret []byte
}

func (a *App) Init(cfg *config.Config) {
	db, err := repository.OpenMysql(cfg.DBUser, cfg.DBPassword, cfg.DBName)
	if err != nil {
		log.Fatal(err)
	}
	redisClient, err := repository.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		log.Fatal(err)
	}

	users := repository.NewUserRepoMysql(db)
	contacts := repository.NewContactRepoMysql(db)
	requests := repository.NewContactRequestRepoMysql(db)
	debts := repository.NewDebtRepoMysql(db)
	notifications := repository.NewNotificationRepoMysql(db)
	validations := repository.NewPhoneValidationRepoRedis(redisClient, cfg.CodeTTL)

	a.jwtSecret = []byte(cfg.JWTSecret)
	a.Access = service.NewAccessService(users, validations, a.jwtSecret)
	a.Contacts = service.NewContactService(users, contacts, requests)
	a.Debts = service.NewDebtService(debts, users, notifications)

	a.Validator = validator.New()
	eng := en.New()
	uni := ut.New(eng, eng)

	var found bool
	a.Translator, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}
	if err := en_translations.RegisterDefaultTranslations(a.Validator, a.Translator); err != nil {
		log.Fatal(err)
	}

	a.Router = mux.NewRouter()
	a.initializeRoutes()
}

func (a *App) Run(addr string) {
	log.Fatal(http.ListenAndServe(addr, a.Router))
}

func (a *App) initializeRoutes() {
	a.Router.HandleFunc("/login", a.login).Methods(http.MethodPost)
	a.Router.HandleFunc("/confirmPhone", a.confirmPhone).Methods(http.MethodPost)
	a.Router.HandleFunc("/validatePhone", a.validatePhone).Methods(http.MethodPost)

	// Auth routes
	s := a.Router.PathPrefix("/api").Subrouter()
	s.Use(a.JwtVerify)
	s.HandleFunc("/welcome", a.welcome).Methods(http.MethodGet)
	s.HandleFunc("/showContacts", a.showContacts).Methods(http.MethodGet)
	s.HandleFunc("/requestContact", a.requestContact).Methods(http.MethodPost)
	s.HandleFunc("/showRequestContact", a.showRequestContact).Methods(http.MethodGet)
	s.HandleFunc("/acceptRequestContact", a.acceptRequestContact).Methods(http.MethodPost)
	s.HandleFunc("/getBalance", a.getBalance).Methods(http.MethodGet)
	s.HandleFunc("/getCurrentDebts", a.getCurrentDebts).Methods(http.MethodGet)
	s.HandleFunc("/getHistoricalDebts", a.getHistoricalDebts).Methods(http.MethodPost)
	s.HandleFunc("/saveDebt", a.saveDebt).Methods(http.MethodPost)
	s.HandleFunc("/payOffDebt/{id:[0-9]+}", a.payOffDebt).Methods(http.MethodPost)
	s.HandleFunc("/showNotifications", a.showNotifications).Methods(http.MethodGet)
}

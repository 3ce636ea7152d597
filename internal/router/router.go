package routes

import (
	"net/http"

	_ "github.com/rwizi/clickatellhttp/internal/docs" // swagger docs
	"github.com/rwizi/clickatellhttp/internal/response"
	swaggerHandler "github.com/swaggo/http-swagger"
)

type AppDeps struct {
	Home    HomeHandler
	Message MessageHandler
}

type HomeHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type MessageHandler interface {
	SendMessage(w http.ResponseWriter, r *http.Request)
	GetMessageStatus(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
}

func Register(mux *http.ServeMux, d AppDeps) {
	mux.HandleFunc("GET /{$}", d.Home.Index)
	mux.HandleFunc("GET /health", d.Home.Health)

	mux.HandleFunc("POST /messages", d.Message.SendMessage)
	mux.HandleFunc("GET /messages/{id}/status", d.Message.GetMessageStatus)
	mux.HandleFunc("GET /balance", d.Message.GetBalance)

	//Swagger
	mux.HandleFunc("GET /swagger/", swaggerHandler.WrapHandler)

	// Fallback handler for undefined routes (404)
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.RespondError(w, http.StatusNotFound, "route not found")
	}))
}

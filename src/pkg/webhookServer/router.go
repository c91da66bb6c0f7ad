package webhookServer

import (
    "github.com/NoodleFinder/LocationHandlers/src/pkg/lineEventProcessor"
    "github.com/google/uuid"
    "github.com/gorilla/handlers"
    "github.com/gorilla/mux"
    "go.uber.org/zap"
    "io"
    "net/http"
)

// maxBodyBytes bounds a single webhook delivery
const maxBodyBytes = 1 << 20

// NewRouter serves the webhook over plain HTTP for local development. Access logs are written to w.
func NewRouter(processor *lineEventProcessor.Processor, log *zap.SugaredLogger, w io.Writer) http.Handler {
    r := mux.NewRouter()

    r.Path("/callback").Methods(http.MethodPost).Handler(handleCallback(processor, log))
    r.Path("/healthz").Methods(http.MethodGet).HandlerFunc(handleHealthz)

    return handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(handlers.CombinedLoggingHandler(w, r))
}

func handleCallback(processor *lineEventProcessor.Processor, log *zap.SugaredLogger) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        requestLog := log.With("requestId", uuid.NewString())

        body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
        if err != nil {
            requestLog.Error("Error reading request body: ", err)
            writeJson(w, http.StatusBadRequest, `{"error": "Failed to read request body"}`)
            return
        }

        result := processor.WithLogger(requestLog).HandleWebhook(r.Context(), r.Header, body)
        writeJson(w, result.StatusCode, result.Body)
    })
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
    writeJson(w, http.StatusOK, `{"message": "OK"}`)
}

func writeJson(w http.ResponseWriter, code int, body string) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(code)
    _, _ = io.WriteString(w, body)
}

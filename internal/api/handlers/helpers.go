package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
	"github.com/YahelOmesi/Variable-Elimination/internal/service"
)

// maxBodyBytes caps request bodies; network sources are the largest.
const maxBodyBytes = 4 << 20

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("netformat", func(fl validator.FieldLevel) bool {
		return domain.ValidNetworkFormat(fl.Field().String())
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeBody decodes the JSON body into dst and runs its validation tags.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return errors.New(describe(verrs))
		}
		return err
	}
	return nil
}

func describe(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "netformat":
			msgs = append(msgs, field+" must be xml or yaml")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s needs at least %s", field, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s exceeds the limit of %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

func networkID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

func limitParam(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0
	}
	return n
}

// writeServiceError maps service and domain errors to status codes.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNetworkNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNetworkConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNetworkNameEmpty), errors.Is(err, service.ErrNoQueries):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidNetwork):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case domain.IsQueryError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

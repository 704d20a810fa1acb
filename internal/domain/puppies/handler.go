package puppies

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	msgInvalidJSON   = "Invalid JSON body"
	msgInvalidID     = "Invalid puppy id"
	msgNotFound      = "Puppy not found"
	msgAddFailed     = "Failed to add puppy"
	msgInternalError = "Internal server error"
	msgDeleted       = "Puppy deleted"
)

// maxBodyBytes acota el body de POST/PUT; lo que exceda se responde como JSON inválido.
const maxBodyBytes = 1 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/puppies", func(pr chi.Router) {
		pr.Get("/", listPuppiesHandler(svc))
		pr.Post("/", createPuppyHandler(svc))

		pr.Get("/{puppyID}", getPuppyHandler(svc))
		pr.Put("/{puppyID}", updatePuppyHandler(svc))
		pr.Delete("/{puppyID}", deletePuppyHandler(svc))
	})
}

// createPuppyRequest es el cuerpo para registrar un cachorro.
type createPuppyRequest struct {
	Name        string              `json:"name" example:"Rex"`
	Breed       *string             `json:"breed" example:"beagle"`
	WeightLbs   decimal.NullDecimal `json:"weight_lbs" swaggertype:"string" example:"12.50"`
	ArrivalDate *time.Time          `json:"arrival_date"` // RFC3339 opcional, default = ahora
	Vaccinated  *bool               `json:"vaccinated"`
}

// updatePuppyRequest solo documenta el cuerpo de PUT; el decode real es por presencia de campo.
type updatePuppyRequest struct {
	Name        *string    `json:"name"`
	Breed       *string    `json:"breed"`
	WeightLbs   *string    `json:"weight_lbs" example:"12.50"`
	ArrivalDate *time.Time `json:"arrival_date"`
	Vaccinated  *bool      `json:"vaccinated"`
}

// puppyResponse representa un cachorro devuelto por la API.
type puppyResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Breed       *string    `json:"breed"`
	WeightLbs   *string    `json:"weight_lbs" example:"12.50"`
	ArrivalDate *time.Time `json:"arrival_date"`
	Vaccinated  bool       `json:"vaccinated"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// listPuppiesHandler godoc
// @Summary Listar cachorros
// @Description Devuelve todos los cachorros ordenados por id.
// @Tags puppies
// @Produce json
// @Success 200 {array} puppyResponse
// @Failure 500 {object} errorResponse
// @Router /puppies [get]
func listPuppiesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err, msgInternalError)
			return
		}

		out := make([]puppyResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPuppyResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getPuppyHandler godoc
// @Summary Obtener cachorro
// @Tags puppies
// @Produce json
// @Param id path int true "ID del cachorro"
// @Success 200 {object} puppyResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /puppies/{id} [get]
func getPuppyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := puppyIDParam(w, r)
		if !ok {
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, toPuppyResponse(p))
	}
}

// createPuppyHandler godoc
// @Summary Registrar cachorro
// @Description Crea un cachorro. Solo `name` es obligatorio; `vaccinated` es false y `arrival_date` es la fecha actual si no se envían.
// @Tags puppies
// @Accept json
// @Produce json
// @Param body body createPuppyRequest true "Cachorro"
// @Success 201 {object} puppyResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /puppies [post]
func createPuppyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		var req createPuppyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidJSON)
			return
		}

		in := CreateInput{
			Name:        req.Name,
			Breed:       req.Breed,
			ArrivalDate: req.ArrivalDate,
			Vaccinated:  req.Vaccinated,
		}
		if req.WeightLbs.Valid {
			weight := req.WeightLbs.Decimal
			in.WeightLbs = &weight
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, err, msgAddFailed)
			return
		}

		writeJSON(w, http.StatusCreated, toPuppyResponse(p))
	}
}

// updatePuppyHandler godoc
// @Summary Actualizar cachorro
// @Description Actualización parcial: solo se modifican los campos enviados. `null` limpia breed, weight_lbs y arrival_date. Campos desconocidos se ignoran.
// @Tags puppies
// @Accept json
// @Produce json
// @Param id path int true "ID del cachorro"
// @Param body body updatePuppyRequest true "Campos a modificar"
// @Success 200 {object} puppyResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /puppies/{id} [put]
func updatePuppyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := puppyIDParam(w, r)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		// Decodificamos a map para distinguir "no enviado" de null.
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil || raw == nil {
			writeError(w, http.StatusBadRequest, msgInvalidJSON)
			return
		}

		patch, err := decodePatch(raw)
		if err != nil {
			writeServiceError(w, r, err, msgInternalError)
			return
		}

		updated, err := svc.Update(r.Context(), id, patch)
		if err != nil {
			writeServiceError(w, r, err, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, toPuppyResponse(updated))
	}
}

// deletePuppyHandler godoc
// @Summary Eliminar cachorro
// @Tags puppies
// @Produce json
// @Param id path int true "ID del cachorro"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /puppies/{id} [delete]
func deletePuppyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := puppyIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, err, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, messageResponse{Message: msgDeleted})
	}
}

// decodePatch arma el Patch a partir de los campos presentes en el body.
// Campos desconocidos (incluido "id") se ignoran.
func decodePatch(raw map[string]json.RawMessage) (Patch, error) {
	var p Patch

	if v, ok := raw["name"]; ok {
		if isNull(v) {
			return Patch{}, invalid("Name is required")
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return Patch{}, invalid("name must be a string")
		}
		p.Name = &s
	}

	if v, ok := raw["breed"]; ok {
		if isNull(v) {
			p.Breed = Null[string]()
		} else {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return Patch{}, invalid("breed must be a string or null")
			}
			p.Breed = Set(s)
		}
	}

	if v, ok := raw["weight_lbs"]; ok {
		if isNull(v) {
			p.WeightLbs = Null[decimal.Decimal]()
		} else {
			var d decimal.Decimal
			if err := d.UnmarshalJSON(v); err != nil {
				return Patch{}, invalid("weight_lbs must be a number or null")
			}
			p.WeightLbs = Set(d)
		}
	}

	if v, ok := raw["arrival_date"]; ok {
		if isNull(v) {
			p.ArrivalDate = Null[time.Time]()
		} else {
			var t time.Time
			if err := json.Unmarshal(v, &t); err != nil {
				return Patch{}, invalid("arrival_date must be an RFC3339 timestamp or null")
			}
			p.ArrivalDate = Set(t)
		}
	}

	if v, ok := raw["vaccinated"]; ok {
		var b bool
		if isNull(v) || json.Unmarshal(v, &b) != nil {
			return Patch{}, invalid("vaccinated must be a boolean")
		}
		p.Vaccinated = &b
	}

	return p, nil
}

func isNull(v json.RawMessage) bool {
	return string(v) == "null"
}

func puppyIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "puppyID"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, msgInvalidID)
		return 0, false
	}
	return id, true
}

func toPuppyResponse(p Puppy) puppyResponse {
	out := puppyResponse{
		ID:          p.ID,
		Name:        p.Name,
		Breed:       p.Breed,
		ArrivalDate: p.ArrivalDate,
		Vaccinated:  p.Vaccinated,
	}
	if p.WeightLbs.Valid {
		s := p.WeightLbs.Decimal.StringFixed(WeightScale)
		out.WeightLbs = &s
	}
	return out
}

// writeServiceError traduce errores del service a status HTTP.
// Los 5xx se loguean con el error original; al cliente solo va el mensaje genérico.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, internalMsg string) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, msgNotFound)
	default:
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msgf("puppies: %s", internalMsg)
		writeError(w, http.StatusInternalServerError, internalMsg)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

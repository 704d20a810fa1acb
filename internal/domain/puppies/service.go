package puppies

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("puppy not found")
)

// ValidationError lleva el mensaje que se devuelve tal cual al cliente.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

const DefaultCallTimeout = 5 * time.Second

type Service struct {
	repo        Repository
	now         func() time.Time
	validate    *validator.Validate
	callTimeout time.Duration
}

type Option func(*Service)

// WithCallTimeout acota cada llamada al store. <= 0 => sin límite.
func WithCallTimeout(d time.Duration) Option {
	return func(s *Service) { s.callTimeout = d }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:        repo,
		now:         time.Now,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		callTimeout: DefaultCallTimeout,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

type CreateInput struct {
	Name        string  `validate:"required,max=100"`
	Breed       *string `validate:"omitempty,max=100"`
	WeightLbs   *decimal.Decimal
	ArrivalDate *time.Time
	Vaccinated  *bool
}

func (s *Service) List(ctx context.Context) ([]Puppy, error) {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list puppies: %w", err)
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Puppy, error) {
	if !validID(id) {
		return Puppy{}, ErrNotFound
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Puppy{}, fmt.Errorf("get puppy %d: %w", id, err)
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Puppy, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Breed = normalizeBreed(in.Breed)

	if err := s.validate.StructCtx(ctx, in); err != nil {
		return Puppy{}, toValidationError(err)
	}

	p := Puppy{
		Name:  in.Name,
		Breed: in.Breed,
	}

	if in.WeightLbs != nil {
		w, err := normalizeWeight(*in.WeightLbs)
		if err != nil {
			return Puppy{}, err
		}
		p.WeightLbs = decimal.NewNullDecimal(w)
	}

	// arrival_date por defecto = momento de creación
	arrival := s.now()
	if in.ArrivalDate != nil {
		arrival = *in.ArrivalDate
	}
	p.ArrivalDate = &arrival

	if in.Vaccinated != nil {
		p.Vaccinated = *in.Vaccinated
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return Puppy{}, fmt.Errorf("create puppy: %w", err)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, patch Patch) (Puppy, error) {
	if !validID(id) {
		return Puppy{}, ErrNotFound
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if err := s.validateVar(ctx, name, "required,max=100", "Name"); err != nil {
			return Puppy{}, err
		}
		patch.Name = &name
	}

	if patch.Breed.Present {
		patch.Breed.Value = normalizeBreed(patch.Breed.Value)
		if patch.Breed.Value != nil {
			if err := s.validateVar(ctx, *patch.Breed.Value, "max=100", "Breed"); err != nil {
				return Puppy{}, err
			}
		}
	}

	if patch.WeightLbs.Present && patch.WeightLbs.Value != nil {
		w, err := normalizeWeight(*patch.WeightLbs.Value)
		if err != nil {
			return Puppy{}, err
		}
		patch.WeightLbs.Value = &w
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return Puppy{}, fmt.Errorf("update puppy %d: %w", id, err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if !validID(id) {
		return ErrNotFound
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete puppy %d: %w", id, err)
	}
	return nil
}

// validID: la columna id es SERIAL (int4); fuera de rango no puede existir.
func validID(id int64) bool {
	return id > 0 && id <= MaxID
}

// storeContext desacopla la llamada al store de la cancelación del cliente:
// si el cliente corta la conexión, la operación en curso termina igual.
func (s *Service) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = context.WithoutCancel(ctx)
	if s.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.callTimeout)
}

func (s *Service) validateVar(ctx context.Context, v any, tag, field string) error {
	err := s.validate.VarCtx(ctx, v, tag)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		return invalid(fieldMessage(field, ves[0].Tag(), ves[0].Param()))
	}
	return invalid(err.Error())
}

func toValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return invalid(fieldMessage(fe.StructField(), fe.Tag(), fe.Param()))
	}
	return invalid(err.Error())
}

func fieldMessage(field, tag, param string) string {
	switch tag {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, param)
	default:
		return field + " is invalid"
	}
}

// breed vacío se guarda como NULL
func normalizeBreed(b *string) *string {
	if b == nil {
		return nil
	}
	v := strings.TrimSpace(*b)
	if v == "" {
		return nil
	}
	return &v
}

// normalizeWeight acota la magnitud antes de redondear: Round reescala el
// coeficiente y con exponentes enormes eso es O(10^exp).
func normalizeWeight(w decimal.Decimal) (decimal.Decimal, error) {
	if w.IsZero() {
		return decimal.New(0, -WeightScale), nil
	}

	// dígitos enteros de |w|; <= 0 => |w| < 1
	intDigits := int(w.Exponent()) + w.NumDigits()
	switch {
	case intDigits > maxWeightIntDigits && w.IsNegative():
		return decimal.Decimal{}, invalid("weight_lbs must not be negative")
	case intDigits > maxWeightIntDigits:
		return decimal.Decimal{}, invalid("weight_lbs must be less than 1000")
	case intDigits < -WeightScale:
		// |w| < 0.001 redondea a cero
		return decimal.New(0, -WeightScale), nil
	case w.NumDigits() > maxWeightDigits:
		return decimal.Decimal{}, invalid("weight_lbs is invalid")
	}

	w = w.Round(WeightScale)
	if w.IsNegative() {
		return decimal.Decimal{}, invalid("weight_lbs must not be negative")
	}
	if w.GreaterThanOrEqual(MaxWeightLbs) {
		return decimal.Decimal{}, invalid("weight_lbs must be less than 1000")
	}
	return w, nil
}

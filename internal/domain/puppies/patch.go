package puppies

import (
	"time"

	"github.com/shopspring/decimal"
)

// Nullable marca un campo de PATCH que admite null:
// Present=false => no tocar; Present=true && Value=nil => limpiar (NULL).
type Nullable[T any] struct {
	Present bool
	Value   *T
}

// Set devuelve un Nullable presente con valor.
func Set[T any](v T) Nullable[T] {
	return Nullable[T]{Present: true, Value: &v}
}

// Null devuelve un Nullable presente sin valor.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Present: true}
}

// Patch es una actualización parcial de un Puppy.
// Punteros nil = no tocar (name y vaccinated no admiten NULL).
type Patch struct {
	Name        *string
	Breed       Nullable[string]
	WeightLbs   Nullable[decimal.Decimal]
	ArrivalDate Nullable[time.Time]
	Vaccinated  *bool
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil &&
		!p.Breed.Present &&
		!p.WeightLbs.Present &&
		!p.ArrivalDate.Present &&
		p.Vaccinated == nil
}

// Apply devuelve una copia de cur con los campos del patch aplicados.
func (p Patch) Apply(cur Puppy) Puppy {
	out := cur.Clone()

	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Breed.Present {
		out.Breed = clonePtr(p.Breed.Value)
	}
	if p.WeightLbs.Present {
		if p.WeightLbs.Value == nil {
			out.WeightLbs = decimal.NullDecimal{}
		} else {
			out.WeightLbs = decimal.NewNullDecimal(*p.WeightLbs.Value)
		}
	}
	if p.ArrivalDate.Present {
		out.ArrivalDate = clonePtr(p.ArrivalDate.Value)
	}
	if p.Vaccinated != nil {
		out.Vaccinated = *p.Vaccinated
	}
	return out
}

// Clone copia los campos puntero para que el llamador no comparta memoria con el store.
func (p Puppy) Clone() Puppy {
	out := p
	out.Breed = clonePtr(p.Breed)
	out.ArrivalDate = clonePtr(p.ArrivalDate)
	return out
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

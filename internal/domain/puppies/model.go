package puppies

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Puppy representa un registro de la tabla puppies.
type Puppy struct {
	ID int64

	Name  string
	Breed *string

	// DECIMAL(5,2); Valid=false => NULL
	WeightLbs decimal.NullDecimal

	ArrivalDate *time.Time
	Vaccinated  bool
}

const (
	// id es SERIAL (int4)
	MaxID = math.MaxInt32

	MaxNameLen  = 100
	MaxBreedLen = 100

	// DECIMAL(5,2): 3 dígitos enteros, 2 fraccionarios.
	WeightScale = 2

	maxWeightIntDigits = 3
	// dígitos significativos admitidos antes de redondear
	maxWeightDigits = 32
)

// MaxWeightLbs es el límite exclusivo que admite la columna weight_lbs.
var MaxWeightLbs = decimal.NewFromInt(1000)

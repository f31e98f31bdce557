// Package builder assembles a Car step by step and validates it once, at Build.
//
// Brand and model are mandatory. Everything else has a declared default:
// year 2023, color "Black", horsepower 150. Build reports a missing mandatory
// field as an *InvalidConfigError (errors.Is(err, ErrInvalidConfig)) and returns
// no Car. No other validation is done; setter inputs are trusted.
package builder

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Declared defaults for optional fields.
const (
	DefaultYear       = 2023
	DefaultColor      = "Black"
	DefaultHorsepower = 150
)

// ErrInvalidConfig is the sentinel matched by every *InvalidConfigError.
var ErrInvalidConfig = errors.New("builder: invalid configuration")

// InvalidConfigError lists the mandatory fields left unset at Build time.
type InvalidConfigError struct {
	Missing []string
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	// Example: builder: invalid configuration: missing brand, model
	return ErrInvalidConfig.Error() + ": missing " + strings.Join(e.Missing, ", ")
}

// Is makes errors.Is(err, ErrInvalidConfig) true.
func (e *InvalidConfigError) Is(target error) bool { return target == ErrInvalidConfig }

// Car is an assembled, immutable car. Obtain one from CarBuilder.Build.
type Car struct {
	brand      string
	model      string
	year       int
	color      string
	horsepower int
}

func (c Car) Brand() string   { return c.brand }
func (c Car) Model() string   { return c.model }
func (c Car) Year() int       { return c.year }
func (c Car) Color() string   { return c.color }
func (c Car) Horsepower() int { return c.horsepower }

// ShowDetails writes a human-readable description of the car.
func (c Car) ShowDetails(w io.Writer) {
	_, _ = fmt.Fprintf(w,
		"Car Details:\nBrand: %s\nModel: %s\nYear: %d\nColor: %s\nHorsepower: %d HP\n",
		c.brand, c.model, c.year, c.color, c.horsepower)
}

// CarBuilder collects car fields. Setters return the builder for chaining.
type CarBuilder struct {
	car Car
}

// NewCarBuilder returns a builder with the declared defaults applied.
func NewCarBuilder() *CarBuilder {
	return &CarBuilder{car: Car{
		year:       DefaultYear,
		color:      DefaultColor,
		horsepower: DefaultHorsepower,
	}}
}

func (b *CarBuilder) Brand(brand string) *CarBuilder {
	b.car.brand = brand
	return b
}

func (b *CarBuilder) Model(model string) *CarBuilder {
	b.car.model = model
	return b
}

func (b *CarBuilder) Year(year int) *CarBuilder {
	b.car.year = year
	return b
}

func (b *CarBuilder) Color(color string) *CarBuilder {
	b.car.color = color
	return b
}

func (b *CarBuilder) Horsepower(hp int) *CarBuilder {
	b.car.horsepower = hp
	return b
}

// Build validates the mandatory fields and returns the car.
// On failure the returned Car is the zero value.
func (b *CarBuilder) Build() (Car, error) {
	var missing []string
	if b.car.brand == "" {
		missing = append(missing, "brand")
	}
	if b.car.model == "" {
		missing = append(missing, "model")
	}
	if len(missing) > 0 {
		return Car{}, &InvalidConfigError{Missing: missing}
	}
	return b.car, nil
}

// MustBuild returns the car or panics with the Build error.
// Useful in examples/tests where a bad configuration should fail fast.
func (b *CarBuilder) MustBuild() Car {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

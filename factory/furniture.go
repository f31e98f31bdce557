package factory

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrUnknownStyle is returned by FactoryFor for an unrecognized style.
var ErrUnknownStyle = errors.New("factory: unknown furniture style")

type Chair interface {
	SitOn(w io.Writer)
}

type Table interface {
	Use(w io.Writer)
}

// FurnitureFactory creates a family of matching furniture.
type FurnitureFactory interface {
	CreateChair() Chair
	CreateTable() Table
}

type ModernChair struct{}

func (ModernChair) SitOn(w io.Writer) { _, _ = fmt.Fprintln(w, "Sitting on a modern chair.") }

type ModernTable struct{}

func (ModernTable) Use(w io.Writer) { _, _ = fmt.Fprintln(w, "Using a modern table.") }

type ClassicChair struct{}

func (ClassicChair) SitOn(w io.Writer) { _, _ = fmt.Fprintln(w, "Sitting on a classic chair.") }

type ClassicTable struct{}

func (ClassicTable) Use(w io.Writer) { _, _ = fmt.Fprintln(w, "Using a classic table.") }

// ModernFactory creates modern furniture.
type ModernFactory struct{}

func (ModernFactory) CreateChair() Chair { return ModernChair{} }
func (ModernFactory) CreateTable() Table { return ModernTable{} }

// ClassicFactory creates classic furniture.
type ClassicFactory struct{}

func (ClassicFactory) CreateChair() Chair { return ClassicChair{} }
func (ClassicFactory) CreateTable() Table { return ClassicTable{} }

// FurnitureStyle selects a FurnitureFactory.
type FurnitureStyle string

const (
	StyleModern  FurnitureStyle = "modern"
	StyleClassic FurnitureStyle = "classic"
)

// FactoryFor returns the factory for style.
func FactoryFor(style FurnitureStyle) (FurnitureFactory, error) {
	switch style {
	case StyleModern:
		return ModernFactory{}, nil
	case StyleClassic:
		return ClassicFactory{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStyle, strconv.Quote(string(style)))
	}
}

// Room owns one chair and one table from the same family.
type Room struct {
	chair Chair
	table Table
}

// NewRoom furnishes a room from f.
func NewRoom(f FurnitureFactory) *Room {
	return &Room{chair: f.CreateChair(), table: f.CreateTable()}
}

// Furnish uses the room's furniture.
func (r *Room) Furnish(w io.Writer) {
	r.chair.SitOn(w)
	r.table.Use(w)
}

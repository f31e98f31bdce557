package factory_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/patterns/factory"
)

func TestPlanDelivery(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		logistics factory.Logistics
		wantType  factory.Transport
		want      string
	}{
		{"road", factory.RoadLogistics{}, factory.Truck{}, "Delivering goods by land in a truck.\n"},
		{"sea", factory.SeaLogistics{}, factory.Ship{}, "Delivering goods by sea in a ship.\n"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.IsType(t, tc.wantType, tc.logistics.CreateTransport())

			var out bytes.Buffer
			factory.PlanDelivery(tc.logistics, &out)
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestFactoryFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		style     factory.FurnitureStyle
		wantChair factory.Chair
		wantTable factory.Table
		want      string
	}{
		{
			style:     factory.StyleModern,
			wantChair: factory.ModernChair{},
			wantTable: factory.ModernTable{},
			want:      "Sitting on a modern chair.\nUsing a modern table.\n",
		},
		{
			style:     factory.StyleClassic,
			wantChair: factory.ClassicChair{},
			wantTable: factory.ClassicTable{},
			want:      "Sitting on a classic chair.\nUsing a classic table.\n",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(string(tc.style), func(t *testing.T) {
			t.Parallel()

			f, err := factory.FactoryFor(tc.style)
			require.NoError(t, err)
			assert.IsType(t, tc.wantChair, f.CreateChair())
			assert.IsType(t, tc.wantTable, f.CreateTable())

			var out bytes.Buffer
			factory.NewRoom(f).Furnish(&out)
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestFactoryFor_Unknown(t *testing.T) {
	t.Parallel()

	f, err := factory.FactoryFor("baroque")
	require.Error(t, err)
	assert.Nil(t, f)
	assert.True(t, errors.Is(err, factory.ErrUnknownStyle))
	assert.Equal(t, `factory: unknown furniture style: "baroque"`, err.Error())
}

package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/recordwire/codec/vtype"
)

func TestMapSchemaLookup(t *testing.T) {
	s := MapSchema{
		0: {Name: "prop", Type: vtype.TagString},
		1: {Name: "count", Type: vtype.TagInt},
	}

	p, ok := s.Property(0)
	require.True(t, ok)
	require.Equal(t, "prop", p.Name)
	require.Equal(t, vtype.TagString, p.Type)

	_, ok = s.Property(99)
	require.False(t, ok)
}

func TestNilMapSchemaLookupMisses(t *testing.T) {
	var s MapSchema
	_, ok := s.Property(0)
	require.False(t, ok)
}

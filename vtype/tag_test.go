package vtype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTagIsDefined(t *testing.T) {
	defined := []Tag{
		TagBoolean, TagInt, TagShort, TagLong, TagFloat, TagDouble, TagDateTime,
		TagString, TagBinary, TagEmbeddedDocument, TagEmbeddedList, TagEmbeddedSet,
		TagEmbeddedMap, TagLink, TagLinkList, TagLinkSet, TagLinkMap, TagLinkBag,
		TagDecimal, TagDate, TagAny,
	}
	for _, tag := range defined {
		require.True(t, tag.IsDefined(), "tag %d should be defined", tag)
	}
}

func TestTagGapsUndefined(t *testing.T) {
	for _, tag := range []Tag{18, 20, 21} {
		require.False(t, tag.IsDefined(), "tag %d should not be defined", tag)
	}
}

func TestTagUnknownString(t *testing.T) {
	require.Equal(t, "unknown", Tag(250).String())
}

func TestTagUniqueness(t *testing.T) {
	seen := map[Tag]string{}
	defined := []Tag{
		TagBoolean, TagInt, TagShort, TagLong, TagFloat, TagDouble, TagDateTime,
		TagString, TagBinary, TagEmbeddedDocument, TagEmbeddedList, TagEmbeddedSet,
		TagEmbeddedMap, TagLink, TagLinkList, TagLinkSet, TagLinkMap, TagLinkBag,
		TagDecimal, TagDate, TagAny,
	}
	for _, tag := range defined {
		name := tag.String()
		require.NotEqual(t, "unknown", name)
		if prev, ok := seen[tag]; ok {
			t.Fatalf("tag %d used by both %q and %q", tag, prev, name)
		}
		seen[tag] = name
	}
}

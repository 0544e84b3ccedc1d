package record

import (
	"bytes"

	"github.com/recordwire/codec/vtype"
)

// Equal reports whether a and b represent the same value, honoring the
// unordered-collection comparison rule for link-sets and embedded sets
// (spec §8 Invariant 1).
func Equal(a, b Value) bool {
	if a.tag != b.tag {
		return false
	}

	switch a.tag {
	case vtype.TagBoolean, vtype.TagInt, vtype.TagShort, vtype.TagLong,
		vtype.TagFloat, vtype.TagDouble, vtype.TagString:
		return a.data == b.data
	case vtype.TagBinary:
		ab, _ := a.AsBinary()
		bb, _ := b.AsBinary()
		return bytes.Equal(ab, bb)
	case vtype.TagDateTime:
		av, _ := a.AsDateTime()
		bv, _ := b.AsDateTime()
		return av.Equal(bv)
	case vtype.TagDate:
		av, _ := a.AsDate()
		bv, _ := b.AsDate()
		return av.Equal(bv)
	case vtype.TagDecimal:
		av, _ := a.AsDecimal()
		bv, _ := b.AsDecimal()
		return av.Equal(bv)
	case vtype.TagLink:
		av, _ := a.AsLink()
		bv, _ := b.AsLink()
		return av == bv
	case vtype.TagLinkList:
		return linkListEqual(a, b)
	case vtype.TagLinkSet:
		av, _ := a.AsLinkSet()
		bv, _ := b.AsLinkSet()
		return av.Equal(bv)
	case vtype.TagLinkMap:
		return linkMapEqual(a, b)
	case vtype.TagLinkBag:
		return linkBagEqual(a, b)
	case vtype.TagEmbeddedDocument:
		av, _ := a.AsEmbeddedDocument()
		bv, _ := b.AsEmbeddedDocument()
		return av.Equal(bv)
	case vtype.TagEmbeddedList:
		return embeddedListEqual(a, b)
	case vtype.TagEmbeddedSet:
		av, _ := a.AsEmbeddedSet()
		bv, _ := b.AsEmbeddedSet()
		return av.Equal(bv)
	case vtype.TagEmbeddedMap:
		return embeddedMapEqual(a, b)
	default:
		return false
	}
}

func linkListEqual(a, b Value) bool {
	al, _ := a.AsLinkList()
	bl, _ := b.AsLinkList()
	if len(al) != len(bl) {
		return false
	}
	for i := range al {
		if al[i] != bl[i] {
			return false
		}
	}

	return true
}

func linkBagEqual(a, b Value) bool {
	al, _ := a.AsLinkBag()
	bl, _ := b.AsLinkBag()
	if len(al) != len(bl) {
		return false
	}
	for i := range al {
		if al[i] != bl[i] {
			return false
		}
	}

	return true
}

func linkMapEqual(a, b Value) bool {
	am, _ := a.AsLinkMap()
	bm, _ := b.AsLinkMap()
	if len(am) != len(bm) {
		return false
	}
	for k, v := range am {
		bv, ok := bm[k]
		if !ok || v != bv {
			return false
		}
	}

	return true
}

func embeddedListEqual(a, b Value) bool {
	al, _ := a.AsEmbeddedList()
	bl, _ := b.AsEmbeddedList()
	if len(al) != len(bl) {
		return false
	}
	for i := range al {
		if !Equal(al[i], bl[i]) {
			return false
		}
	}

	return true
}

func embeddedMapEqual(a, b Value) bool {
	am, _ := a.AsEmbeddedMap()
	bm, _ := b.AsEmbeddedMap()
	if len(am) != len(bm) {
		return false
	}
	for k, v := range am {
		bv, ok := bm[k]
		if !ok {
			return false
		}
		if (v == nil) != (bv == nil) {
			return false
		}
		if v != nil && !Equal(*v, *bv) {
			return false
		}
	}

	return true
}

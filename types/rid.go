// Package types defines the record-format's compound value types that sit
// below the tagged-value dispatch: record identifiers (RID), the link
// collection kinds, the embedded link bag, arbitrary-precision decimals,
// and calendar timestamps (spec §3 "Entities").
//
// These are plain data types; the wire encoding for each lives in the
// record package's value codec, which is where the tagged-value dispatch
// and the mutual recursion with Document live.
package types

import "fmt"

// RID is a record identifier: a (cluster_id, position) pair. RIDs are value
// types; equality is structural, which Go's == already gives a comparable
// struct like this one.
type RID struct {
	ClusterID uint16
	Position  uint64
}

// String renders the conventional "#cluster:position" form.
func (r RID) String() string {
	return fmt.Sprintf("#%d:%d", r.ClusterID, r.Position)
}

// LinkList is an ordered, duplicate-preserving sequence of RIDs (spec §3
// "Link collections").
type LinkList []RID

// LinkMap is a string-keyed map of RIDs (spec §3 "Link collections").
type LinkMap map[string]RID

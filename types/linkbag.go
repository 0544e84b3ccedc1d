package types

// LinkBag is a bulk container of RIDs used for edges/large relationships
// (spec §3 "Link bag", glossary). Only the embedded form is supported: all
// RIDs held inline. The tree-based form (an external B-tree reference) is
// explicitly out of scope (spec §1 Non-goals, Invariant 8) and is rejected
// by the value codec's decoder rather than represented by any Go type here.
type LinkBag []RID

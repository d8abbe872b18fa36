// Package njd implements the node-Japanese-dictionary pipeline: the ordered
// sequence of morpheme nodes produced from tokenizer output, and the five
// rewrite passes that resolve pronunciation, digit reading, accent-phrase
// boundaries, accent nucleus position, and vowel devoicing.
package njd

import (
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/mora"
	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/pos"
)

// WordDetails carries every dictionary-derived attribute of a morpheme.
type WordDetails struct {
	POS       pos.POS
	CType     pos.CType
	CForm     pos.CForm
	Read      string
	Pron      mora.Pronunciation
	Accent    int
	ChainRule pos.ChainRules
	ChainFlag *bool
}

// WordEntry is a dictionary row: either a single morpheme (Single) or one
// row that must be split across several NJDNodes at tokenization time
// (Multiple), as IPAdic-style dictionaries record for compound readings.
type WordEntry struct {
	Single   *WordDetails
	Multiple []MultiplePart
}

// MultiplePart is one (surface fragment, details) pair of a Multiple entry.
type MultiplePart struct {
	SurfacePart string
	Details     WordDetails
}

// DefaultWordEntry is the fallback for an unresolved/unknown token:
// Single(WordDetails{pos=Meishi(None), ...}).
func DefaultWordEntry() WordEntry {
	return WordEntry{Single: &WordDetails{POS: pos.Default(), CType: pos.CType{Raw: "*"}, CForm: pos.CForm{Raw: "*"}}}
}

// ExpandWithSurface materializes the (surface, WordDetails) pairs this entry
// expands to against an actual tokenizer surface string. For Single, this is
// the trivial one-pair expansion. For Multiple, each recorded part supplies
// its own surface fragment except the last, which absorbs whatever bytes of
// surface remain after the earlier parts' lengths are consumed.
func (e WordEntry) ExpandWithSurface(surface string) []struct {
	Surface string
	Details WordDetails
} {
	if e.Single != nil {
		return []struct {
			Surface string
			Details WordDetails
		}{{Surface: surface, Details: *e.Single}}
	}
	out := make([]struct {
		Surface string
		Details WordDetails
	}, 0, len(e.Multiple))
	consumed := 0
	runes := []rune(surface)
	for i, part := range e.Multiple {
		if i == len(e.Multiple)-1 {
			s := ""
			if consumed <= len(runes) {
				s = string(runes[consumed:])
			}
			out = append(out, struct {
				Surface string
				Details WordDetails
			}{Surface: s, Details: part.Details})
			continue
		}
		out = append(out, struct {
			Surface string
			Details WordDetails
		}{Surface: part.SurfacePart, Details: part.Details})
		consumed += len([]rune(part.SurfacePart))
	}
	return out
}

// WordID identifies a dictionary entry as seen by a tokenizer: an integer
// index plus the unknown/system predicates the tokenizer's own id type
// exposes.
type WordID struct {
	Index      int
	Unknown    bool
	SystemDict bool
}

func (w WordID) IsUnknown() bool { return w.Unknown }
func (w WordID) IsSystem() bool  { return w.SystemDict }

// WordEntryLookup resolves a tokenizer word id (plus the observed surface,
// since some dictionaries key sub-entries off of it) to a WordEntry. This is
// the sole external collaborator the njd package depends on.
type WordEntryLookup interface {
	Lookup(id WordID, surface string) (WordEntry, error)
}

// Node is one morpheme of the pipeline.
type Node struct {
	Surface string
	WordDetails
}

// Acc returns the node's accent nucleus.
func (n *Node) Acc() int { return n.Accent }

// SetAcc overwrites the node's accent nucleus.
func (n *Node) SetAcc(a int) { n.Accent = a }

// MoraSize returns the count of real (non-sentinel) morae in the node's
// pronunciation.
func (n *Node) MoraSize() int { return n.Pron.MoraSize() }

// Reset clears the node's pronunciation, marking it silent so a later
// RemoveSilent call drops it.
func (n *Node) Reset() {
	n.Pron = nil
	n.Read = ""
	n.Accent = 0
}

// IsSilent reports whether the node carries no pronunciation.
func (n *Node) IsSilent() bool { return len(n.Pron) == 0 }

// NJD is the ordered sequence of Nodes a pass mutates in place.
type NJD struct {
	Nodes []*Node
}

// New wraps an initial node slice.
func New(nodes []*Node) *NJD {
	return &NJD{Nodes: nodes}
}

// RemoveSilent drops every node whose pronunciation is empty.
func (n *NJD) RemoveSilent() {
	out := n.Nodes[:0]
	for _, node := range n.Nodes {
		if !node.IsSilent() {
			out = append(out, node)
		}
	}
	n.Nodes = out
}

// InsertAfter splices newNode immediately after index i.
func (n *NJD) InsertAfter(i int, newNode *Node) {
	n.Nodes = append(n.Nodes[:i+1], append([]*Node{newNode}, n.Nodes[i+1:]...)...)
}

// Package ud holds Universal Dependencies tagset constants shared by the
// engine normalizers.
package ud

// Universal POS tags (UD v2). Both spaCy and Stanza emit this tagset for
// their coarse pos/upos field on German models.
const (
	POSAdjective    = "ADJ"
	POSAdposition   = "ADP"
	POSAdverb       = "ADV"
	POSAuxiliary    = "AUX"
	POSCoordConj    = "CCONJ"
	POSDeterminer   = "DET"
	POSInterjection = "INTJ"
	POSNoun         = "NOUN"
	POSNumeral      = "NUM"
	POSParticle     = "PART"
	POSPronoun      = "PRON"
	POSProperNoun   = "PROPN"
	POSPunctuation  = "PUNCT"
	POSSubordConj   = "SCONJ"
	POSSymbol       = "SYM"
	POSVerb         = "VERB"
	POSOther        = "X"
)

var uposTags = map[string]struct{}{
	POSAdjective: {}, POSAdposition: {}, POSAdverb: {}, POSAuxiliary: {},
	POSCoordConj: {}, POSDeterminer: {}, POSInterjection: {}, POSNoun: {},
	POSNumeral: {}, POSParticle: {}, POSPronoun: {}, POSProperNoun: {},
	POSPunctuation: {}, POSSubordConj: {}, POSSymbol: {}, POSVerb: {}, POSOther: {},
}

// Known reports whether tag is part of the UD v2 universal POS tagset.
// Tags are passed through to the response either way; unknown tags are only
// counted for observability.
func Known(tag string) bool {
	_, ok := uposTags[tag]
	return ok
}

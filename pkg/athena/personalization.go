package athena

// CardKind distinguishes registered cards from bearer cards.
type CardKind int

const (
	KindUnknown CardKind = iota
	KindAnonymous
	KindPersonalised
)

func (k CardKind) String() string {
	switch k {
	case KindAnonymous:
		return "anonymous"
	case KindPersonalised:
		return "personalised"
	default:
		return "unknown"
	}
}

// Layout of the personalization file. Personalised cards open with an
// ASCII marker; the byte after it can override the identity category.
const (
	persMarker      = "PER"
	offPersOverride = 3
	persMinLen      = len(persMarker)
)

// decodePersonalization classifies the card and reports a category
// override (zero means none).
func decodePersonalization(b []byte) (kind CardKind, override byte, ok bool) {
	if len(b) < persMinLen {
		return KindUnknown, 0, false
	}
	kind = KindAnonymous
	if string(b[:len(persMarker)]) == persMarker {
		kind = KindPersonalised
	}
	if len(b) > offPersOverride {
		override = b[offPersOverride]
	}
	return kind, override, true
}

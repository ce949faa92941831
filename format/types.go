package format

type (
	Status    uint8
	ErrorKind uint8
)

const (
	StatusValid   Status = 0x1 // StatusValid marks a structurally complete and sane interpretation.
	StatusInvalid Status = 0x2 // StatusInvalid marks a structurally complete interpretation that failed its sanity check.
	StatusFailed  Status = 0x3 // StatusFailed marks a range that could not be carved out.

	KindNone               ErrorKind = 0x0 // KindNone means no error.
	KindInsufficientLength ErrorKind = 0x1 // KindInsufficientLength means too few bytes remained for the parse.
	KindInvalidValue       ErrorKind = 0x2 // KindInvalidValue means the bytes were consumed but the value is not sane.
	KindRange              ErrorKind = 0x3 // KindRange means an offset or split violated buffer or view bounds.
	KindLayoutMismatch     ErrorKind = 0x4 // KindLayoutMismatch means a record layout disagrees with its fields.
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "Valid"
	case StatusInvalid:
		return "Invalid"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Parsed reports whether the status is structurally successful, i.e. Valid or Invalid.
func (s Status) Parsed() bool {
	return s == StatusValid || s == StatusInvalid
}

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindInsufficientLength:
		return "InsufficientLength"
	case KindInvalidValue:
		return "InvalidValue"
	case KindRange:
		return "RangeError"
	case KindLayoutMismatch:
		return "LayoutMismatch"
	default:
		return "Unknown"
	}
}

// Recoverable reports whether a parse that failed with this kind still produced a usable value.
func (k ErrorKind) Recoverable() bool {
	return k == KindNone || k == KindInvalidValue
}

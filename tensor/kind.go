package tensor

// Scalar is the set of element types the facade can hand to a backend.
// The types are exact so a type switch on a zero value always resolves.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// Real is the subset of Scalar accepted by the real-only LAPACK routines.
type Real interface {
	float32 | float64
}

// Complex is the subset of Scalar with complex elements.
type Complex interface {
	complex64 | complex128
}

// Kind is the runtime tag of a Scalar type.
type Kind int

// Supported scalar kinds.
const (
	Float32 Kind = iota
	Float64
	Complex64
	Complex128
)

// Size returns the byte size of one element.
func (k Kind) Size() int {
	switch k {
	case Float32:
		return 4
	case Float64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		panic("unknown scalar kind")
	}
}

// IsComplex reports whether the kind is a complex type.
func (k Kind) IsComplex() bool {
	return k == Complex64 || k == Complex128
}

// String returns the Go name of the scalar type.
func (k Kind) String() string {
	switch k {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// KindOf returns the Kind of the type parameter T.
func KindOf[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	default:
		return Complex128
	}
}

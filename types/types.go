package types

// ValueType is the runtime type of a column value.
type ValueType int

const (
	// Invalid is the zero ValueType
	Invalid ValueType = iota
	// Boolean value type
	Boolean
	// TinyInt value type
	TinyInt
	// SmallInt value type
	SmallInt
	// Integer value type
	Integer
	// BigInt value type
	BigInt
	// Double value type
	Double
	// Timestamp value type
	Timestamp
	// Char value type
	Char
	// Varchar value type
	Varchar
	// Varbinary value type
	Varbinary
)

// Size returns the fixed byte width of t, 0 for variable-length types.
func (t ValueType) Size() int {
	switch t {
	case Boolean, TinyInt:
		return 1
	case SmallInt:
		return 2
	case Integer:
		return 4
	case BigInt, Double, Timestamp:
		return 8
	case Char:
		return 1
	default:
		return 0
	}
}

// Variable reports whether values of t have no fixed width.
func (t ValueType) Variable() bool {
	return t == Varchar || t == Varbinary
}

func (t ValueType) String() string {
	switch t {
	case Boolean:
		return "BOOLEAN"
	case TinyInt:
		return "TINYINT"
	case SmallInt:
		return "SMALLINT"
	case Integer:
		return "INTEGER"
	case BigInt:
		return "BIGINT"
	case Double:
		return "DOUBLE"
	case Timestamp:
		return "TIMESTAMP"
	case Char:
		return "CHAR"
	case Varchar:
		return "VARCHAR"
	case Varbinary:
		return "VARBINARY"
	default:
		return "INVALID"
	}
}

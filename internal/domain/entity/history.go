package entity

// TransactionType identifies whether a transaction added or removed points
type TransactionType string

// Transaction types
const (
	TypeCharge TransactionType = "CHARGE"
	TypeUse    TransactionType = "USE"
)

// IsValid reports whether the transaction type is one of the allowed values
func (t TransactionType) IsValid() bool {
	return t == TypeCharge || t == TypeUse
}

// Action returns the verb used in validation messages for this type
func (t TransactionType) Action() string {
	if t == TypeUse {
		return "use"
	}
	return "charge"
}

// PointHistory is one immutable entry in a user's transaction log.
// Point carries the balance resulting from the transaction, not the delta.
type PointHistory struct {
	ID         int64           // Sequence id assigned by the history store at insert time
	UserID     uint64          // User this entry belongs to
	Point      int64           // Balance after the transaction was applied
	Type       TransactionType // CHARGE or USE
	TimeMillis int64           // Timestamp of the balance write, milliseconds
}

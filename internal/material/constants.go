package material

// MaxDurability is the largest durability (data value) an item can carry.
const MaxDurability = 32767

// Parse failure reasons
const (
	ErrMsgAmountNotAllowed = "an amount is not allowed here"
	ErrMsgAmountPositive   = "the amount must be a positive integer"
	ErrMsgDurabilityRange  = "the durability must be an integer between 0 and 32767"
)

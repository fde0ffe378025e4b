package inventory

// Log messages
const (
	LogMsgStockLoaded  = "Shop stocked"
	LogMsgItemAdded    = "Item added to stock"
	LogMsgDayAdvanced  = "Day advanced"
	LogMsgTickRejected = "Day tick rejected"
	LogMsgItemRejected = "Item rejected"
)

// Tick failure reasons, used as metric labels
const (
	ReasonInvalidInput   = "invalid_input"
	ReasonInvalidItem    = "invalid_item"
	ReasonInvalidQuality = "invalid_quality"
	ReasonUnknown        = "unknown"
)

// ErrFmtDayNotFound is used with fmt.Errorf when a day is not in the history
const ErrFmtDayNotFound = "%w: day %d"

package enum

// ── Group A: Order lifecycle (set upstream, read-only here) ──

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusRejected  = "rejected"
)

// ── Group B: Review screens ──

const (
	ReviewKindOrder = "order" // single order detail
	ReviewKindDraft = "draft" // grouped draft delivery plan lines
)

// ── Group C: Scripted user actions (reviewctl replay) ──

const (
	ActionSetQuantity  = "set_quantity"
	ActionOutOfStock   = "out_of_stock"
	ActionSetDate      = "set_date"  // display form, DD/MM/YYYY
	ActionPickDate     = "pick_date" // native picker, YYYY-MM-DD
	ActionSetNotes     = "set_notes"
	ActionRejectReason = "reject_reason"
	ActionOpenReject   = "open_reject"
	ActionCloseReject  = "close_reject"
	ActionConfirm      = "confirm"
	ActionReject       = "reject"
	ActionBack         = "back"
)

// ── Group D: Export sinks ──

const (
	ExportJSON = "json"
	ExportXLSX = "xlsx"
)

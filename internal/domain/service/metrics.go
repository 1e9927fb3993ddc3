package service

// CheckoutMetrics records operational counters of the checkout core.
type CheckoutMetrics interface {
	// SubmissionCompleted counts a finished submission by outcome label.
	SubmissionCompleted(outcome string)
	// ResolutionCompleted counts a customer lookup by resulting state.
	ResolutionCompleted(state string)
	// StockMirrorFailed counts a stock mirror update that could not be applied.
	StockMirrorFailed()
	// EventPublishFailed counts a sale event that could not be published.
	EventPublishFailed()
}

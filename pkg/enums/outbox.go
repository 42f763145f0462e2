package enums

// OutboxEventType names a domain event stored in the transactional outbox.
type OutboxEventType string

const (
	EventOrderFinalized     OutboxEventType = "order.finalized"
	EventOrderItemCancelled OutboxEventType = "order.item_cancelled"
	EventOrderItemReturned  OutboxEventType = "order.item_returned"
	EventOrderPaid          OutboxEventType = "order.paid"
)

// OutboxAggregateType names the aggregate an outbox event belongs to.
type OutboxAggregateType string

const (
	AggregateOrder OutboxAggregateType = "order"
)

// OutboxStatus tracks publication progress of an outbox row.
type OutboxStatus string

const (
	OutboxStatusPending   OutboxStatus = "pending"
	OutboxStatusPublished OutboxStatus = "published"
	OutboxStatusFailed    OutboxStatus = "failed"
	OutboxStatusTerminal  OutboxStatus = "terminal"
)

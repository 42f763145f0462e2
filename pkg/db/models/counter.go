package models

// Counter is a named monotonic sequence. Rows are incremented inside the
// finalize transaction so allocated numbers are gap-free per committed order.
type Counter struct {
	Name  string `gorm:"column:name;primaryKey"`
	Value int64  `gorm:"column:value;not null;default:0"`
}

// Counter names.
const (
	CounterOrderNumber  = "order_number"
	CounterSerialNumber = "serial_number"
)

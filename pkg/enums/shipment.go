package enums

// ShipmentStatus tracks a shipment from creation to delivery.
type ShipmentStatus string

const (
	ShipmentStatusPending   ShipmentStatus = "pending"
	ShipmentStatusShipped   ShipmentStatus = "shipped"
	ShipmentStatusDelivered ShipmentStatus = "delivered"
)

func (s ShipmentStatus) String() string {
	return string(s)
}

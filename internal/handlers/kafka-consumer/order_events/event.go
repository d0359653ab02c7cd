package order_events

// orderEvent — сырой формат события из топика заказов. Координаты и
// детали ресторана присутствуют только в событии создания.
type orderEvent struct {
	OrderID        string   `json:"order_id"`
	Status         string   `json:"status"`
	RestaurantName *string  `json:"restaurant_name,omitempty"`
	PickupAddress  *string  `json:"pickup_address,omitempty"`
	DropoffAddress *string  `json:"dropoff_address,omitempty"`
	PickupLat      *float64 `json:"pickup_lat,omitempty"`
	PickupLng      *float64 `json:"pickup_lng,omitempty"`
	DropoffLat     *float64 `json:"dropoff_lat,omitempty"`
	DropoffLng     *float64 `json:"dropoff_lng,omitempty"`
	PayoutCents    *int64   `json:"payout_cents,omitempty"`
}

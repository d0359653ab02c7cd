package dispatch

import "strings"

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidDriverID(driverID string) bool {
	return strings.TrimSpace(driverID) != ""
}

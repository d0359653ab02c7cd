package queue

import "strings"

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

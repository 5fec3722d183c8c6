// Package providers contains adapters for external collaborators
package providers

// EmailProvider delivers one message to a list of recipients
type EmailProvider interface {
	SendEmail(to []string, subject, body string, isHTML bool) error
}

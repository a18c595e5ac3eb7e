// Package notifier provides delivery channels for calendar notifications.
//
// Every channel implements Notifier. Telegram is the primary channel; an SNS
// topic can mirror the same message as plain text, and the dry-run notifier
// prints the message instead of sending it.
package notifier

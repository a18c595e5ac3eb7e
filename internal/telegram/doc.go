// Package telegram provides Telegram Bot API integration for sending Vaiṣṇava
// calendar notifications.
//
// The package formats a date range of calendar events as an HTML message and
// delivers it with sendMessage, attaching an inline keyboard that links to the
// calendar resources. Requests are plain JSON over net/http.
//
// Authentication requires a bot token (from @BotFather) and chat ID.
package telegram

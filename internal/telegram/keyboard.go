package telegram

const (
	CalendarURL     = "https://www.purebhakti.com/resources/vaisnava-calendar"
	CalendarInfoURL = "https://www.purebhakti.com/calendar-information"
)

// CalendarKeyboard returns the single row of link buttons attached to every notification
func CalendarKeyboard() *InlineKeyboardMarkup {
	return &InlineKeyboardMarkup{
		InlineKeyboard: [][]InlineKeyboardButton{
			{
				{Text: "Vaiṣṇava Calendar", URL: CalendarURL},
				{Text: "Calendar Information", URL: CalendarInfoURL},
			},
		},
	}
}

package bot

// Команды, на которые отвечает бот
const (
	CommandLocalTime = "localtime"
	CommandHelp      = "help"
	CommandStart     = "start"
)

// ParseModeHTML включает HTML разметку в ответах
const ParseModeHTML = "HTML"

// Тексты ответов
const (
	HelpMessage = `
<b>Time Zone Bot Help</b>
Available commands:
• /localTime - Shows the current local time for all team members
• /help - Shows this help message
This bot helps you coordinate with team members across different time zones.
`

	WelcomeMessage = `
<b>Welcome to the Time Zone Bot!</b>
This bot helps you coordinate with team members across different time zones.
Use /localTime to see the current time for all team members.
Use /help for more information.
`

	ErrorMessage = "Sorry, an error occurred while processing your request."
)

package domain

// TeamMember представляет участника команды и его часовой пояс
type TeamMember struct {
	Name     string `json:"name"`
	City     string `json:"city"`     // Подпись локации, на вычисление времени не влияет
	Timezone string `json:"timezone"` // Идентификатор IANA, например "Europe/Moscow"
}

// MemberTime представляет участника вместе с его текущим локальным временем
type MemberTime struct {
	TeamMember
	LocalTime string `json:"local_time"`
}

// DefaultRoster возвращает встроенный состав команды.
// Используется целиком, если файл конфигурации отсутствует или поврежден.
func DefaultRoster() []TeamMember {
	return []TeamMember{
		{Name: "mayer", City: "Иркутск", Timezone: "Asia/Irkutsk"},
		{Name: "Antonio_Margaretti", City: "Златоуст", Timezone: "Asia/Yekaterinburg"},
		{Name: "Deadhoko", City: "Волгоград", Timezone: "Europe/Volgograd"},
		{Name: "Чайковский", City: "Москва", Timezone: "Europe/Moscow"},
		{Name: "seregatipich", City: "Испания", Timezone: "Europe/Madrid"},
	}
}

// CloneRoster возвращает копию состава, чтобы вызывающий код не мог изменить исходный
func CloneRoster(roster []TeamMember) []TeamMember {
	out := make([]TeamMember, len(roster))
	copy(out, roster)
	return out
}

package generator

import "time"

type Mode string

// Режим генерации по умолчанию
const defaultMode = RegularMode

// Режимы генерации событий
const (
	RegularMode  Mode = "regular" // Постоянный поток событий
	PickLoadMode Mode = "pick"    // Пиковая нагрузка
	NightMode    Mode = "night"   // Ночные редкие события
)

// Интервалы между событиями для разных режимов
const (
	regularModeInterval  = 100 * time.Millisecond
	pickLoadModeInterval = 2 * time.Millisecond
	nightModeInterval    = 5 * time.Second
)

func (m Mode) interval() (time.Duration, bool) {
	switch m {
	case RegularMode:
		return regularModeInterval, true
	case PickLoadMode:
		return pickLoadModeInterval, true
	case NightMode:
		return nightModeInterval, true
	}
	return 0, false
}

package rebuild_calendars

// Response итоги восстановления календарей
type Response struct {
	Replayed int // Записей размещено на доске
	Skipped  int // Записей в прошлом, доской не покрываются
}

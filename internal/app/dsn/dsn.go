package dsn

import "os"

// FromEnv собирает строку подключения к базе из переменных окружения.
// DATABASE_URL задаёт полный DSN Postgres; без него используется локальный
// файл SQLite (путь из STUDIO_DB_PATH или studio.db рядом с бинарником).
func FromEnv() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	if path := os.Getenv("STUDIO_DB_PATH"); path != "" {
		return path
	}
	return "studio.db"
}

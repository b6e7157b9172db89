package ingest

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RejectionRecorder учитывает отклонённые записи (метрики)
type RejectionRecorder interface {
	RecordRejected(reason string, count int)
}

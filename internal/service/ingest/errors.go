package ingest

import "errors"

var (
	// ErrMalformedRecord возвращается для пустой записи или записи неподдерживаемого вида
	ErrMalformedRecord = errors.New("ingest: malformed record")

	// ErrMissingDate возвращается, когда в записи нет ни одного поля с датой
	ErrMissingDate = errors.New("ingest: record rejected: missing required field date")

	// ErrMalformedDate возвращается, когда первое заполненное поле с датой не разбирается
	ErrMalformedDate = errors.New("ingest: record rejected: malformed date")
)

package file

import "errors"

var (
	// ErrReadFile возвращается, когда файл выгрузки не читается
	ErrReadFile = errors.New("file.source: failed to read file")

	// ErrDecode возвращается, когда содержимое файла не JSON-массив заявок
	ErrDecode = errors.New("file.source: failed to decode records")
)

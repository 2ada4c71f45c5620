package create_booking

import "errors"

var (
	// ErrSlotTaken возвращается, когда слот уже занят (только для одиночного бронирования;
	// в серии занятые дни молча пропускаются)
	ErrSlotTaken = errors.New("create_booking: booking already exists for this timeslot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationKind класс ошибки валидации запроса
type ValidationKind int

const (
	// KindMissingField отсутствует обязательное поле
	KindMissingField ValidationKind = iota
	// KindInvalidFormat поле не соответствует ожидаемому формату
	KindInvalidFormat
	// KindInvalidValue формат корректен, но значение недопустимо
	KindInvalidValue
)

// ValidationError ошибка валидации с классом и человекочитаемой причиной.
// Обработчики ветвятся по Kind, Message уходит клиенту как есть.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

// Error возвращает причину ошибки
func (e *ValidationError) Error() string {
	return e.Message
}

func missingField(msg string) error {
	return &ValidationError{Kind: KindMissingField, Message: msg}
}

func invalidFormat(msg string) error {
	return &ValidationError{Kind: KindInvalidFormat, Message: msg}
}

func invalidValue(msg string) error {
	return &ValidationError{Kind: KindInvalidValue, Message: msg}
}

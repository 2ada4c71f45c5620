package create_booking

import (
	"fmt"
	"regexp"
	"time"

	"github.com/bookline/shopify-booking-service/internal/domain"
)

var (
	// durationRegexp допускает только цифры, пробелы и буквенно-цифровые символы
	durationRegexp = regexp.MustCompile(`^[\d\s\w]+$`)

	// timestampRegexp требует явной временной зоны (Z или смещение)
	timestampRegexp = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?(Z|[+-]\d{2}:\d{2})$`)
)

// validateRequest валидирует запрос и возвращает нормализованные значения.
// Проверки применяются по порядку, первая ошибка завершает валидацию.
func validateRequest(req *Request, now time.Time) (*validated, error) {
	// 1. Обязательные поля
	if req.ProductTitle == "" || req.Duration == "" || req.StartDatetime == "" || req.ShopifyProductID == 0 {
		return nil, missingField("missing fields in request body")
	}

	// 2. Формат длительности
	if !durationRegexp.MatchString(req.Duration) {
		return nil, invalidFormat("invalid duration format")
	}

	// 3. Формат и парсинг момента начала
	if !timestampRegexp.MatchString(req.StartDatetime) {
		return nil, invalidFormat("invalid start_datetime format")
	}

	start, err := time.Parse(time.RFC3339, req.StartDatetime)
	if err != nil {
		return nil, invalidValue("invalid start_datetime")
	}

	// 4. Момент начала строго в будущем
	if !start.After(now) {
		return nil, invalidValue("start_datetime must be in the future")
	}

	// 5. Положительный ID товара
	if req.ShopifyProductID < 1 {
		return nil, invalidValue("shopify_product_id must be a positive integer")
	}

	v := &validated{start: start}

	// 6. Конец серии, если указан
	if req.FixedDate != nil {
		if !timestampRegexp.MatchString(*req.FixedDate) {
			return nil, invalidValue("invalid fixed_date format")
		}

		end, err := time.Parse(time.RFC3339, *req.FixedDate)
		if err != nil {
			return nil, invalidValue("invalid fixed_date")
		}

		// Серия не длиннее шести календарных месяцев
		maxEnd := start.AddDate(0, domain.MaxSeriesMonths, 0)
		if end.After(maxEnd) {
			return nil, invalidValue(fmt.Sprintf("fixed_date cannot exceed %d months", domain.MaxSeriesMonths))
		}

		if !end.After(start) {
			return nil, invalidValue("fixed_date must be after start_datetime")
		}

		v.seriesEnd = &end
	}

	return v, nil
}

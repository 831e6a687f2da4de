package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// 404 Not Found
	ErrCategoryNotFound = fmt.Errorf("category not found")
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrServiceNotFound  = fmt.Errorf("service not found")

	// 400 Bad Request
	ErrNameRequired         = fmt.Errorf("name is required")
	ErrImageRequired        = fmt.Errorf("image is required")
	ErrCategoryRequired     = fmt.Errorf("category is required")
	ErrCategoryCycle        = fmt.Errorf("category cannot be parented under its own descendant")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrFileTooLarge         = fmt.Errorf("file is too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrStatusBadRequest     = fmt.Errorf("bad request")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

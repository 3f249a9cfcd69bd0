package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"

	LogFormatText = "text"
	LogFormatJSON = "json"

	JournalNone     = "none"
	JournalMemory   = "memory"
	JournalPostgres = "postgres"

	DBAdapterPGX  = "pgx"
	DBAdapterSQL  = "sql"
	DBAdapterSQLX = "sqlx"

	EnvDBAdapter = "DB_ADAPTER"

	DefaultCollectionPath = "collection.txt"
	DefaultJournalTable   = "circulation_journal"
)

// ErrInvalidConfig is returned when the configuration does not validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the complete runtime configuration of one desk session.
type Config struct {
	CollectionPath string `validate:"required"`
	LogLevel       string `validate:"oneof=debug info warn error"`
	LogFormat      string `validate:"oneof=text json"`
	JournalMode    string `validate:"oneof=none memory postgres"`
	JournalDSN     string `validate:"required_if=JournalMode postgres"`
	JournalTable   string `validate:"required,max=63"`
	DBAdapter      string `validate:"oneof=pgx sql sqlx"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		CollectionPath: DefaultCollectionPath,
		LogLevel:       LogLevelWarn,
		LogFormat:      LogFormatText,
		JournalMode:    JournalNone,
		JournalTable:   DefaultJournalTable,
		DBAdapter:      DBAdapterPGX,
	}
}

// FieldError is one readable validation failure.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldErrors lists all validation failures of a Config.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, err := range e {
		messages = append(messages, err.Error())
	}

	return strings.Join(messages, "; ")
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports every invalid field, wrapped with ErrInvalidConfig.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Join(ErrInvalidConfig, err)
	}

	return errors.Join(ErrInvalidConfig, translateValidationErrors(validationErrs))
}

func translateValidationErrors(errs validator.ValidationErrors) FieldErrors {
	fieldErrors := make(FieldErrors, 0, len(errs))

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = "must not be empty"
		case "required_if":
			message = "is required when " + strings.Replace(err.Param(), " ", " is ", 1)
		case "oneof":
			message = fmt.Sprintf("%q is not one of: %s", err.Value(), strings.ReplaceAll(err.Param(), " ", ", "))
		case "max":
			message = "must be at most " + err.Param() + " characters"
		}

		fieldErrors = append(fieldErrors, FieldError{Field: err.Field(), Message: message})
	}

	return fieldErrors
}
